package sink

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// List prints one line per registration: library, revision, path
type List struct {
	*Recorder
}

// NewList creates a List emitter
func NewList() *List {
	return &List{Recorder: NewRecorder()}
}

// Flush writes the listing to w
func (l *List) Flush(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, lib := range l.Libraries() {
		for _, f := range lib.Files() {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", lib.Name(), f.Revision, f.Path)
		}
	}
	return tw.Flush()
}
