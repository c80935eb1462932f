// Package console reads interactive answers from a line-oriented terminal.
package console

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
)

// Prompter writes a label and reads one line of input per call.
type Prompter struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter over in and out, defaulting to stdin and stdout.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Prompt implements ports.Prompter.
// A final line without a trailing newline is still returned; io.EOF follows on the next call.
func (p *Prompter) Prompt(label string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := io.WriteString(p.out, label); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
