package domain

import (
	"fmt"
	"strconv"
)

// Revision is a VHDL language revision (standard year)
type Revision int

const (
	// VHDL1993 is IEEE 1076-1993
	VHDL1993 Revision = 1993
	// VHDL2008 is IEEE 1076-2008
	VHDL2008 Revision = 2008
)

// DefaultRevision is used when a manifest entry does not select one
const DefaultRevision = VHDL1993

// String returns the revision year, e.g. "1993"
func (r Revision) String() string {
	return strconv.Itoa(int(r))
}

// MarshalText implements encoding.TextMarshaler
func (r Revision) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *Revision) UnmarshalText(text []byte) error {
	switch string(text) {
	case "1993", "93":
		*r = VHDL1993
	case "2008", "08":
		*r = VHDL2008
	default:
		return fmt.Errorf("unknown VHDL revision %q", string(text))
	}
	return nil
}

// Registration is a source file handed to a library sink
type Registration struct {
	Path     string   `json:"path" yaml:"path"`
	Revision Revision `json:"vhdl_standard" yaml:"vhdl_standard"`
}

// LibrarySpec names a library and the directory holding its dirs.txt
type LibrarySpec struct {
	Name string `mapstructure:"name" yaml:"name" json:"name"`
	Path string `mapstructure:"path" yaml:"path" json:"path"`
}
