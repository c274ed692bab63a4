package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Stream is a plain line console over a reader and a writer.
type Stream struct {
	ctx   context.Context
	out   io.Writer
	lines <-chan string
}

// NewStream starts reading lines from in. Cancelling ctx makes the pending
// and every later Prompt return ErrQuit; so does end of input.
func NewStream(ctx context.Context, in io.Reader, out io.Writer) *Stream {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case ch <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return &Stream{ctx: ctx, out: out, lines: ch}
}

func (s *Stream) Display(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Stream) Prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	select {
	case <-s.ctx.Done():
		fmt.Fprintln(s.out)
		return "", ErrQuit
	case line, ok := <-s.lines:
		if !ok {
			fmt.Fprintln(s.out)
			return "", ErrQuit
		}
		return strings.TrimSpace(line), nil
	}
}
