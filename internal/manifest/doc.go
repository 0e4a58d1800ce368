// Package manifest resolves the VHDL source files of a GRLIB-style library
// from its manifest files.
//
// # Manifest Layout
//
// A library root carries a directory list, one directory name per line:
//
//	lib/grlib/dirs.txt
//	    stdlib
//	    amba
//	    sparc
//
// Each listed directory may carry a synthesis manifest (vhdlsyn.txt) and a
// simulation manifest (vhdlsim.txt). Either may be absent. Manifest lines
// name a source file followed by optional key=value attributes:
//
//	# AMBA bus
//	amba.vhd
//	devices.vhd vhdlstd=2008
//
// Blank lines and lines starting with '#' are ignored. The only recognized
// attribute is vhdlstd, selecting the VHDL revision ("93" or "2008").
//
// # Usage
//
//	r := manifest.NewResolver(manifest.ResolverOptions{})
//	regs, err := r.Resolve("grlib", "/src/grlib/lib/grlib", sink)
//	if err != nil {
//	    return err
//	}
//
// # Error Handling
//
// A missing directory list is fatal (domain.ErrDirListNotFound). Missing
// per-directory manifests and manifest entries whose file does not exist are
// skipped silently. Any other I/O failure is returned.
package manifest
