package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads one line of input after showing a prompt
// *liner.State satisfies this interface
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// LineReader is a Prompter for input that isn't a terminal, such as a pipe
type LineReader struct {
	out    io.Writer
	reader *bufio.Reader
}

// NewLineReader returns a prompter reading lines from in
func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	return &LineReader{
		out:    out,
		reader: bufio.NewReader(in),
	}
}

// Prompt writes the prompt and returns the next line without its line ending
// io.EOF is only returned once there is nothing left to read
func (l *LineReader) Prompt(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(l.out, prompt)
	}

	str, err := l.reader.ReadString('\n')
	if err != nil && (err != io.EOF || str == "") {
		return "", err
	}

	return strings.TrimRight(str, "\r\n"), nil
}
