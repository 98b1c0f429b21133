// Package prompt asks user for parameters missing from the command line
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter writes questions to Out and reads answers line by line from In.
// Empty answer or closed input selects the default.
type Prompter struct {
	In  io.Reader
	Out io.Writer

	scanner *bufio.Scanner
}

// String asks for a free text answer
func (p *Prompter) String(question, def string) string {
	answer, ok := p.ask(question)
	if !ok || answer == "" {
		return def
	}
	return answer
}

// Int asks for a non-negative number, repeats the question on invalid answer
func (p *Prompter) Int(question string, def int) int {
	for {
		answer, ok := p.ask(question)
		if !ok || answer == "" {
			return def
		}
		if v, err := strconv.Atoi(answer); err == nil && v >= 0 {
			return v
		}
		fmt.Fprintf(p.Out, "%q is not a valid number\n", answer)
	}
}

// Bool asks for y/n answer, repeats the question on anything else
func (p *Prompter) Bool(question string, def bool) bool {
	for {
		answer, ok := p.ask(question)
		if !ok || answer == "" {
			return def
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		fmt.Fprintf(p.Out, "please answer y or n\n")
	}
}

func (p *Prompter) ask(question string) (string, bool) {
	fmt.Fprint(p.Out, question)
	if p.scanner == nil {
		p.scanner = bufio.NewScanner(p.In)
	}
	if !p.scanner.Scan() {
		fmt.Fprintln(p.Out)
		return "", false
	}
	return strings.TrimSpace(p.scanner.Text()), true
}
