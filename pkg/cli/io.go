package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// IO bundles the command streams so commands never touch os.Stdout directly,
// which keeps them testable.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Println writes a line to stdout.
func (o *IO) Println(args ...any) {
	fmt.Fprintln(o.Out, args...)
}

// Printf writes formatted output to stdout.
func (o *IO) Printf(format string, args ...any) {
	fmt.Fprintf(o.Out, format, args...)
}

// Print writes to stdout without a trailing newline.
func (o *IO) Print(s string) {
	fmt.Fprint(o.Out, s)
}

// ErrPrintln writes a line to stderr.
func (o *IO) ErrPrintln(args ...any) {
	fmt.Fprintln(o.Err, args...)
}

// Warn writes a recoverable-warning line to stderr. Warnings never change
// the exit code.
func (o *IO) Warn(format string, args ...any) {
	fmt.Fprintf(o.Err, "warning: "+format+"\n", args...)
}

// OutputJSON writes v to stdout as indented JSON.
func (o *IO) OutputJSON(v any) error {
	enc := json.NewEncoder(o.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
