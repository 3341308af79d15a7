package subtitle

import (
	"fmt"
	"io"
	"strings"
)

// Cursor is an in-memory forward iterator over decoded text lines with
// exactly one line of pushback.
type Cursor struct {
	lines  []string
	pos    int
	pushed bool
}

// reads every line from r, stripping \n, \r\n and lone \r terminators
func Load(r io.Reader) (*Cursor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read subtitle text: %w", err)
	}
	return NewCursor(splitLines(string(data)))
}

// wraps already split lines
func NewCursor(lines []string) (*Cursor, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}
	lines = append([]string(nil), lines...)
	lines[0] = strings.TrimPrefix(lines[0], "\ufeff")
	return &Cursor{lines: lines}, nil
}

func splitLines(text string) []string {
	var lines []string
	for len(text) > 0 {
		idx := strings.IndexAny(text, "\r\n")
		if idx == -1 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:idx])
		if text[idx] == '\r' && idx+1 < len(text) && text[idx+1] == '\n' {
			idx++
		}
		text = text[idx+1:]
	}
	return lines
}

// returns the next line and advances; false at end of input
func (c *Cursor) Next() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	line := c.lines[c.pos]
	c.pos++
	c.pushed = false
	return line, true
}

// re-presents the last consumed line; one level only, until the next Next
func (c *Cursor) PushBack() {
	if c.pushed || c.pos == 0 {
		return
	}
	c.pos--
	c.pushed = true
}

// returns to the first line
func (c *Cursor) Rewind() {
	c.pos = 0
	c.pushed = false
}

// reports whether every line has been consumed
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.lines)
}

func (c *Cursor) Len() int {
	return len(c.lines)
}
