package console

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Conn reads lines from an input stream and writes text to an output stream.
// It is used by a single goroutine and does no locking.
type Conn struct {
	Painter

	reader *bufio.Reader
	out    io.Writer
}

// NewConn wraps in and out for line-based interaction.
//
// Postcondition: Returns a Conn ready for reading and writing.
func NewConn(in io.Reader, out io.Writer, color bool) *Conn {
	return &Conn{
		Painter: Painter{Enabled: color},
		reader:  bufio.NewReaderSize(in, 4096),
		out:     out,
	}
}

// ReadLine reads a single line of input. The trailing \n or \r\n is removed
// and control characters other than tab are dropped.
//
// Postcondition: Returns the next line. A final unterminated line is returned
// with a nil error; io.EOF is returned only when no input remains.
func (c *Conn) ReadLine() (string, error) {
	var line bytes.Buffer
	for {
		b, err := c.reader.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && line.Len() > 0 {
				return line.String(), nil
			}
			return line.String(), err
		}

		if b == '\n' {
			break
		}
		if b == '\r' {
			next, err := c.reader.Peek(1)
			if err == nil && len(next) > 0 && next[0] == '\n' {
				_, _ = c.reader.ReadByte()
			}
			break
		}

		if b < 32 && b != '\t' {
			continue
		}

		line.WriteByte(b)
	}

	return line.String(), nil
}

// WriteLine writes text followed by a newline.
//
// Precondition: text should not contain trailing newline characters.
func (c *Conn) WriteLine(text string) error {
	_, err := fmt.Fprintf(c.out, "%s\n", text)
	return err
}

// WritePrompt writes a prompt string without a trailing newline.
func (c *Conn) WritePrompt(prompt string) error {
	_, err := fmt.Fprint(c.out, prompt)
	return err
}

// Prompt writes prompt and reads the reply line.
//
// Postcondition: Returns the reply, or the write/read error.
func (c *Conn) Prompt(prompt string) (string, error) {
	if err := c.WritePrompt(prompt); err != nil {
		return "", err
	}
	return c.ReadLine()
}
