// Package console is the host side of the console object installed into the
// engines: it decides whether script logging is dropped or printed.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Mode how script console calls are handled
type Mode string

const (
	// Silent console calls are swallowed
	Silent Mode = "silent"

	// Stdout console calls are formatted and written out
	Stdout Mode = "stdout"
)

// Printer prints the formatted console arguments
type Printer struct {
	Mode   Mode
	Writer io.Writer
}

// ParseMode parse the console mode
func ParseMode(mode string) (Mode, error) {
	switch Mode(strings.ToLower(mode)) {
	case Silent, "":
		return Silent, nil
	case Stdout:
		return Stdout, nil
	}
	return Silent, fmt.Errorf("console: unknown mode %q (silent, stdout)", mode)
}

// New create a printer, a nil writer means os.Stdout
func New(mode Mode, writer io.Writer) *Printer {
	if writer == nil {
		writer = os.Stdout
	}
	if mode == "" {
		mode = Silent
	}
	return &Printer{Mode: mode, Writer: writer}
}

// Enabled check if the console output is printed
func (p *Printer) Enabled() bool {
	return p != nil && p.Mode == Stdout
}

// Print write the arguments joined with a single space
func (p *Printer) Print(args ...string) error {
	if !p.Enabled() {
		return nil
	}
	_, err := io.WriteString(p.Writer, strings.Join(args, " ")+"\n")
	return err
}
