package interaction

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Terminal implements Provider over a line oriented reader and writer.
// Tests can substitute the streams to avoid interactive TTY requirements.
type Terminal struct {
	mux    sync.Mutex
	reader *bufio.Reader
	out    io.Writer
}

// NewTerminal returns a Terminal that reads from stdin and writes to stdout.
func NewTerminal() *Terminal {
	return NewTerminalWithIO(os.Stdin, os.Stdout)
}

// NewTerminalWithIO lets callers override the input/output streams.
func NewTerminalWithIO(in io.Reader, out io.Writer) *Terminal {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Terminal{reader: bufio.NewReader(in), out: out}
}

// Notify prints message followed by a blank line.
func (t *Terminal) Notify(_ context.Context, message string) {
	t.mux.Lock()
	defer t.mux.Unlock()
	fmt.Fprintf(t.out, "%s\n\n", strings.TrimRight(message, "\n"))
}

// Confirm prints message with a [y/N] suffix and reads one line. Only y or
// yes (any case) accept; an empty line, EOF or a read error decline.
func (t *Terminal) Confirm(_ context.Context, message string) bool {
	t.mux.Lock()
	defer t.mux.Unlock()
	fmt.Fprintf(t.out, "%s [y/N]: ", strings.TrimRight(message, "\n"))
	response, err := t.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false
	}
	if response == "" && err == io.EOF {
		fmt.Fprintln(t.out)
	}
	switch strings.ToLower(strings.TrimSpace(response)) {
	case "y", "yes":
		return true
	}
	return false
}
