package manifest

import "github.com/quantmind-br/grlibsrc/internal/domain"

// Default manifest file names
const (
	DefaultDirList            = "dirs.txt"
	DefaultSynthesisManifest  = "vhdlsyn.txt"
	DefaultSimulationManifest = "vhdlsim.txt"
)

// Technology mapping library defaults
const (
	DefaultTechmapLibrary = "techmap"
	DefaultTechmapDir     = "maps"
)

// AttrVHDLStd selects the VHDL revision of a manifest entry
const AttrVHDLStd = "vhdlstd"

// Attributes holds the raw key=value pairs of a manifest entry
type Attributes map[string]string

// Entry is one decoded manifest line
type Entry struct {
	Name       string
	Attributes Attributes
}

// Revision resolves the VHDL revision selected by the vhdlstd attribute.
// Unrecognized or missing values keep the default.
func (a Attributes) Revision() domain.Revision {
	switch a[AttrVHDLStd] {
	case "93":
		return domain.VHDL1993
	case "2008":
		return domain.VHDL2008
	default:
		return domain.DefaultRevision
	}
}

// Revision returns the VHDL revision of the entry
func (e Entry) Revision() domain.Revision {
	return e.Attributes.Revision()
}

// DefaultManifests returns the per-directory manifest names in processing order
func DefaultManifests() []string {
	return []string{DefaultSynthesisManifest, DefaultSimulationManifest}
}
