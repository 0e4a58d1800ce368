package sink

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/quantmind-br/grlibsrc/internal/domain"
)

// Dialect selects the simulator command syntax of a Script
type Dialect int

const (
	// ModelSim renders vlib/vmap/vcom commands (ModelSim, Questa)
	ModelSim Dialect = iota
	// GHDL renders ghdl -a commands
	GHDL
)

// Script renders a POSIX shell compile script
type Script struct {
	*Recorder
	dialect Dialect
	env     map[string]string
}

// NewScript creates a Script emitter
func NewScript(dialect Dialect, env map[string]string) *Script {
	return &Script{
		Recorder: NewRecorder(),
		dialect:  dialect,
		env:      env,
	}
}

// Flush writes the script to w
func (s *Script) Flush(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "#!/bin/sh")
	fmt.Fprintln(bw, "# Generated by grlibsrc. Do not edit.")
	fmt.Fprintln(bw, "set -e")
	for _, k := range sortedKeys(s.env) {
		fmt.Fprintf(bw, "export %s=%s\n", k, shellQuote(s.env[k]))
	}

	for _, lib := range s.Libraries() {
		fmt.Fprintln(bw)
		fmt.Fprintf(bw, "# library %s (%d files)\n", lib.Name(), len(lib.Files()))
		name := shellQuote(lib.Name())
		if s.dialect == ModelSim {
			fmt.Fprintf(bw, "vlib %s\n", name)
			fmt.Fprintf(bw, "vmap %s %s\n", name, name)
		}
		for _, f := range lib.Files() {
			fmt.Fprintln(bw, s.compileCommand(name, f))
		}
	}

	return bw.Flush()
}

func (s *Script) compileCommand(lib string, f domain.Registration) string {
	path := shellQuote(f.Path)
	switch s.dialect {
	case GHDL:
		return fmt.Sprintf("ghdl -a --std=%s --work=%s %s", ghdlStd(f.Revision), lib, path)
	default:
		return fmt.Sprintf("vcom -quiet -%s -work %s %s", vcomStd(f.Revision), lib, path)
	}
}

func vcomStd(rev domain.Revision) string {
	if rev == domain.VHDL2008 {
		return "2008"
	}
	return "93"
}

func ghdlStd(rev domain.Revision) string {
	if rev == domain.VHDL2008 {
		return "08"
	}
	return "93c"
}

var shellSafe = regexp.MustCompile(`^[A-Za-z0-9_./=:+,@%-]+$`)

// shellQuote quotes s for a POSIX shell when needed
func shellQuote(s string) string {
	if shellSafe.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
