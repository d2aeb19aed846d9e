package rpncalc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/repr"
)

const (
	Prompt   = "Expression (return to quit):"
	Farewell = "Bye! Thanks for the math!"

	DefaultMaxLineSize = 1 << 20
)

var ErrLineTooLong = errors.New("line too long")

// Calculator evaluates RPN lines and writes one "<infix> => <value>" line
// per resulting tree to Out. Per-line failures go to Err.
type Calculator struct {
	Out io.Writer
	Err io.Writer

	// Canonical also prints the canonical form of each tree.
	Canonical bool
	// Dump also prints the Go structure of each tree.
	Dump bool
	// MaxLineSize bounds a line read by Run. Zero means DefaultMaxLineSize.
	MaxLineSize int
}

func NewCalculator() *Calculator {
	return &Calculator{
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

func (c *Calculator) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Calculator) errOut() io.Writer {
	if c.Err == nil {
		return c.out()
	}
	return c.Err
}

// Calc processes a single line. Trees are printed in the order they were
// completed; evaluation stops at the first tree that fails.
func (c *Calculator) Calc(line string) error {
	trees, err := Parse(strings.NewReader(line))
	if err != nil {
		var lerr *LexicalError
		if errors.As(err, &lerr) {
			return fmt.Errorf("invalid expression: %w", err)
		}
		return err
	}
	out := c.out()
	if len(trees) == 0 {
		fmt.Fprintln(out, "(No expression)")
		return nil
	}
	for _, tree := range trees {
		v, err := tree.Eval()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%v => %v\n", tree, v)
		if c.Canonical {
			fmt.Fprintf(out, "\t%s\n", tree.Canonical())
		}
		if c.Dump {
			fmt.Fprintln(out, repr.String(tree, repr.Indent("\t"), repr.IgnoreGoStringer()))
		}
	}
	return nil
}

func (c *Calculator) maxLineSize() int {
	if c.MaxLineSize <= 0 {
		return DefaultMaxLineSize
	}
	return c.MaxLineSize
}

// readLine returns the next line without its terminator. A line longer
// than limit is consumed to its end and reported as ErrLineTooLong.
func readLine(b *bufio.Reader, limit int) (string, error) {
	var buf []byte
	read, long := false, false
	for {
		chunk, isPrefix, err := b.ReadLine()
		if err != nil {
			if err == io.EOF && read {
				break
			}
			return "", err
		}
		read = true
		if !long {
			buf = append(buf, chunk...)
			if len(buf) > limit {
				long, buf = true, nil
			}
		}
		if !isPrefix {
			break
		}
	}
	if long {
		return "", fmt.Errorf("%w: more than %d bytes", ErrLineTooLong, limit)
	}
	return string(buf), nil
}

// Run reads lines from r until EOF. With prompt set it behaves as an
// interactive session: each line is prompted for and a blank line ends it.
// Errors on a line, including an oversized one, are reported and do not
// stop the loop; only read errors are returned.
func (c *Calculator) Run(r io.Reader, prompt bool) error {
	out := c.out()
	br := bufio.NewReader(r)
	limit := c.maxLineSize()
	var rerr error
	for {
		if prompt {
			fmt.Fprint(out, Prompt)
		}
		line, err := readLine(br, limit)
		if err != nil {
			if errors.Is(err, ErrLineTooLong) {
				fmt.Fprintln(c.errOut(), err)
				continue
			}
			if err != io.EOF {
				rerr = err
			}
			break
		}
		if strings.TrimSpace(line) == "" {
			if prompt {
				break
			}
			continue
		}
		if err := c.Calc(line); err != nil {
			fmt.Fprintln(c.errOut(), err)
		}
	}
	if prompt {
		fmt.Fprintln(out, Farewell)
	}
	return rerr
}
