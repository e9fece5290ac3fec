// Package prompt asks the operator yes/no questions on a line-based
// terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lakshaymaurya-felt/rust-cleanup/internal/ui"
)

// ErrNoAnswer is returned when input ends or fails before a valid answer
// was read.
var ErrNoAnswer = errors.New("no answer")

// Prompter reads answers from one input stream and writes prompts to one
// output stream.
type Prompter struct {
	in  *bufio.Reader
	out *ui.Printer
}

// New returns a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: ui.NewPrinter(out)}
}

// Confirm asks whether the project at path should be cleaned. Only "y" and
// "n" are accepted (case-insensitive, surrounding whitespace ignored);
// anything else re-prompts. End of input yields ErrNoAnswer.
func (p *Prompter) Confirm(path, displayName string) (bool, error) {
	p.out.Print(ui.StylePrompt, "%s is a %s project. Do you want to clean it? (y/n): ", path, displayName)

	for {
		line, err := p.in.ReadString('\n')

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}

		if err != nil {
			// Terminate the dangling prompt line.
			p.out.Println(ui.StylePlain, "")
			return false, fmt.Errorf("%w: %w", ErrNoAnswer, err)
		}

		p.out.Print(ui.StyleWarning, "Invalid input. Try one of (y/n): ")
	}
}
