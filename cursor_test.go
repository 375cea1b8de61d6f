package basis

import (
	"strings"
	"testing"
)

func TestCursor(Te *testing.T) {
	in := "# a comment\n\nfirst\nsecond\n   \nthird\n"
	c, err := NewCursor(strings.NewReader(in))
	if err != nil {
		Te.Fatal(err)
	}
	if line, ok := c.Peek(); !ok || line != "first" {
		Te.Errorf("Peek = %q, %v", line, ok)
	}
	if c.Line() != 0 {
		Te.Error("Line should be 0 before anything is consumed")
	}
	if line, ok := c.Next(); !ok || line != "first" {
		Te.Errorf("Next = %q, %v", line, ok)
	}
	if c.Line() != 3 {
		Te.Errorf("Line = %d, want 3", c.Line())
	}
	if _, ok := c.TakeN(3); ok {
		Te.Error("TakeN should refuse to over-consume")
	}
	lines, ok := c.TakeN(2)
	if !ok || lines[0] != "second" || lines[1] != "third" {
		Te.Errorf("TakeN = %v, %v", lines, ok)
	}
	if c.Line() != 6 {
		Te.Errorf("Line = %d, want 6", c.Line())
	}
	if _, ok := c.Next(); ok {
		Te.Error("expected EOF")
	}
}
