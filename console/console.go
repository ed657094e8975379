// Package console implements game.Console for line-oriented text input.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// LineConsole reads answers line by line from any reader.
type LineConsole struct {
	r *bufio.Reader
	w io.Writer
}

func NewLineConsole(r io.Reader, w io.Writer) *LineConsole {
	return &LineConsole{r: bufio.NewReader(r), w: w}
}

// ReadLine writes prompt and blocks until a line is read. A last line without
// a newline is returned before io.EOF.
func (c *LineConsole) ReadLine(prompt string) (string, error) {
	fmt.Fprintf(c.w, "%s\n> ", prompt)
	line, err := c.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return trimNewline(line), nil
}

func (c *LineConsole) Notify(msg string) {
	fmt.Fprintln(c.w, msg)
}

// InteractiveConsole asks through pterm's interactive text input.
type InteractiveConsole struct{}

func NewInteractiveConsole() *InteractiveConsole {
	return &InteractiveConsole{}
}

func (InteractiveConsole) ReadLine(prompt string) (string, error) {
	answer, err := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
	if err != nil {
		return "", err
	}
	return trimNewline(answer), nil
}

func (InteractiveConsole) Notify(msg string) {
	pterm.Warning.Println(msg)
}

func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
