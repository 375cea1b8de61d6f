package basis

import (
	"bufio"
	"io"
	"regexp"
)

var skipLine = regexp.MustCompile(`^(\s*|\s*#.*)$`)

// Cursor walks the lines of a basis-set or pseudopotential file, skipping
// blank and comment (#) lines, and remembers the physical line number of
// the last line it handed out so parse errors can point at the input. A
// Cursor is a single forward pass: once exhausted it stays exhausted.
type Cursor struct {
	lines []string
	nums  []int
	pos   int
	last  int
}

// NewCursor reads all lines from r. The formats this library handles are
// small, line-oriented text files, so slurping keeps the parsers simple and
// lets the block parsers index freely within a block.
func NewCursor(r io.Reader) (*Cursor, error) {
	c := new(Cursor)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if skipLine.MatchString(line) {
			continue
		}
		c.lines = append(c.lines, line)
		c.nums = append(c.nums, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

// Peek returns the next content line without consuming it. The second
// return is false at EOF.
func (c *Cursor) Peek() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	return c.lines[c.pos], true
}

// Next consumes and returns the next content line.
func (c *Cursor) Next() (string, bool) {
	line, ok := c.Peek()
	if !ok {
		return "", false
	}
	c.last = c.nums[c.pos]
	c.pos++
	return line, true
}

// TakeN consumes the next n content lines. It returns false (and consumes
// nothing) if fewer than n lines remain.
func (c *Cursor) TakeN(n int) ([]string, bool) {
	if c.pos+n > len(c.lines) {
		return nil, false
	}
	lines := c.lines[c.pos : c.pos+n]
	c.pos += n
	if n > 0 {
		c.last = c.nums[c.pos-1]
	}
	return lines, true
}

// Line returns the physical (1-based) line number of the last consumed
// line, or 0 if nothing has been consumed yet.
func (c *Cursor) Line() int { return c.last }
