package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

const sqlPrompt = "Enter SQL command (or 'close'/'exit' to quit): "

// Console reads SQL lines and hands them to the session until an exit
// keyword or the end of input.
type Console struct {
	session *Session
	in      *bufio.Reader
	out     io.Writer
}

func NewConsole(session *Session, in *bufio.Reader, out io.Writer) *Console {
	return &Console{
		session: session,
		in:      in,
		out:     out,
	}
}

func (c *Console) Loop(ctx context.Context) error {
	for {
		cont, err := c.ProcessOne(ctx)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// ProcessOne handles a single line. It reports false once the console
// should stop. Statement failures are printed by the session and never
// returned.
func (c *Console) ProcessOne(ctx context.Context) (bool, error) {
	fmt.Fprint(c.out, sqlPrompt)

	line, err := readLine(c.in)
	if err != nil {
		fmt.Fprintln(c.out)
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("stdin read: %w", err)
	}

	input := parseInput(line)
	if input.Terminate {
		return false, nil
	}

	_ = c.session.Execute(ctx, input.Sql)
	return true, nil
}
