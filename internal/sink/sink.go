package sink

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/quantmind-br/grlibsrc/internal/domain"
)

// Output formats
const (
	FormatModelSim = "script-modelsim"
	FormatGHDL     = "script-ghdl"
	FormatYAML     = "yaml"
	FormatJSON     = "json"
	FormatList     = "list"
)

// Formats lists every supported output format
var Formats = []string{FormatModelSim, FormatGHDL, FormatYAML, FormatJSON, FormatList}

// Emitter is a LibrarySink that renders everything it received on Flush
type Emitter interface {
	domain.LibrarySink
	Flush(w io.Writer) error
}

// Options configures an Emitter
type Options struct {
	Format string
	// Env holds tool environment assignments rendered by script and
	// project formats, e.g. VUNIT_MODELSIM_INI
	Env map[string]string
}

// New creates an Emitter for the given format
func New(opts Options) (Emitter, error) {
	switch opts.Format {
	case FormatModelSim:
		return NewScript(ModelSim, opts.Env), nil
	case FormatGHDL:
		return NewScript(GHDL, opts.Env), nil
	case FormatYAML, FormatJSON:
		return NewProject(opts.Format, opts.Env), nil
	case FormatList:
		return NewList(), nil
	default:
		return nil, fmt.Errorf("%w: %q (use %s)", domain.ErrUnknownFormat, opts.Format, strings.Join(Formats, ", "))
	}
}

// sortedKeys returns env keys in a stable order
func sortedKeys(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
