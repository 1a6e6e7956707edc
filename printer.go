package etched

import (
	"fmt"
	"io"
	"os"
)

// Printer is where terminal output, like help and version text, is written.
// It writes to STDOUT unless redirected.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer that writes to STDOUT.
// Help and version text are requested output, not diagnostics, so they go where a user can pipe them.
func NewPrinter() *Printer {
	return &Printer{out: os.Stdout}
}

// Redirect sends output to writer instead, which is mostly useful in tests and for embedding programs.
// Passing nil will panic.
func (p *Printer) Redirect(writer io.Writer) {
	if writer == nil {
		panic("nil writer")
	}
	p.out = writer
}

func (p *Printer) Writer() io.Writer {
	return p.out
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}
