package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// prompter asks on the terminal whether an existing file may be replaced.
type prompter struct {
	in  io.Reader
	out io.Writer
}

func (p *prompter) Confirm(path string) (bool, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: fmt.Sprintf("Overwrite ‘%s’? [y/N] ", displayPath(path)),
		Stdin:  io.NopCloser(p.in),
		Stdout: p.out,
		Stderr: p.out,
	})
	if err != nil {
		return false, err
	}
	defer rl.Close()

	line, err := rl.Readline()
	if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
		// Ctrl-D or Ctrl-C at the prompt keep the file.
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return isYes(line), nil
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
