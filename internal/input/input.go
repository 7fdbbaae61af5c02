// Package input provides sources of raw command lines for the engine, from a
// terminal or from any generic stream.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Reader is a source of command lines. ReadCommand blocks until a non-blank
// line is available and returns it with surrounding whitespace trimmed. At
// end of input it returns io.EOF.
type Reader interface {
	ReadCommand() (string, error)

	// Close releases any resources held by the reader. It must be called
	// before disposal.
	Close() error
}

// DirectReader reads commands from a generic stream. It does not strip
// control or escape sequences, so it suits scripted input rather than a live
// terminal.
type DirectReader struct {
	r *bufio.Reader
}

// NewDirectReader returns a DirectReader buffering the given stream.
func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{r: bufio.NewReader(r)}
}

// ReadCommand reads the next non-blank line from the stream.
func (dr *DirectReader) ReadCommand() (string, error) {
	for {
		line, err := dr.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
		if err == io.EOF {
			return "", io.EOF
		}
	}
}

// Close implements Reader. A DirectReader holds no resources of its own, but
// callers should treat it as if it did.
func (dr *DirectReader) Close() error {
	return nil
}

// InteractiveReader reads commands from stdin through a readline
// implementation, which gives line editing and command history and keeps
// typing escape sequences out of the returned text. Use it when input is a
// real TTY.
type InteractiveReader struct {
	rl *readline.Instance
}

// NewInteractiveReader initializes readline with the given prompt.
func NewInteractiveReader(prompt string) (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("create readline instance: %w", err)
	}
	return &InteractiveReader{rl: rl}, nil
}

// ReadCommand reads the next non-blank line from the terminal.
func (ir *InteractiveReader) ReadCommand() (string, error) {
	for {
		line, err := ir.rl.Readline()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
		if err == io.EOF {
			return "", io.EOF
		}
	}
}

// SetPrompt updates the prompt to the given text.
func (ir *InteractiveReader) SetPrompt(p string) {
	ir.rl.SetPrompt(p)
}

// Close tears down readline resources.
func (ir *InteractiveReader) Close() error {
	return ir.rl.Close()
}
