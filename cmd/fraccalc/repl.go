package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/terminal"
)

type lineReader interface {
	ReadLine() (string, error)
}

type scanner struct {
	s *bufio.Scanner
}

func newScanner(r io.Reader) *scanner {
	return &scanner{s: bufio.NewScanner(r)}
}

func (s *scanner) ReadLine() (string, error) {
	if s.s.Scan() {
		return s.s.Text(), nil
	}
	if err := s.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// loop evaluates lines until EOF or "quit". Evaluation errors are printed
// and do not stop the loop.
func loop(calc *Calculator, r lineReader, w io.Writer) error {
	for {
		line, err := r.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read line: %w", err)
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		}

		out, err := calc.Eval(line)
		if err != nil {
			out = "error: " + err.Error()
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
}

type readWriter struct {
	io.Reader
	io.Writer
}

func interact(calc *Calculator, stdin *os.File, stdout io.Writer) error {
	fd := int(stdin.Fd())
	oldState, err := terminal.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		_ = terminal.Restore(fd, oldState)
	}()

	t := terminal.NewTerminal(readWriter{stdin, stdout}, "> ")
	return loop(calc, t, t)
}
