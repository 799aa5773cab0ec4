package scanner

import (
	"strings"
	"unicode/utf8"
)

// cursor tracks the scan position over the line-split view of the input.
// offset is a byte offset into the full text and equals the number of
// bytes consumed so far; (row, col) is its unique decomposition against
// the line lengths, each line boundary consuming one extra offset
// position for the newline. The cursor never moves backward.
type cursor struct {
	lines  []string
	length int

	offset, row, col int
}

func newCursor(text string) *cursor {
	return &cursor{lines: strings.Split(text, "\n"), length: len(text)}
}

func (c *cursor) done() bool {
	return c.offset >= c.length
}

// remainder returns the current line's content from the cursor column
// to the end of the line. Line terminators are never part of it.
func (c *cursor) remainder() string {
	return c.lines[c.row][c.col:]
}

func (c *cursor) atLineEnd() bool {
	return c.col >= len(c.lines[c.row])
}

func (c *cursor) lastRow() bool {
	return c.row >= len(c.lines)-1
}

// position returns the 1-based line and rune column of the cursor.
func (c *cursor) position() (line, col int) {
	return c.row + 1, utf8.RuneCountInString(c.lines[c.row][:c.col]) + 1
}

// advance moves the cursor n bytes forward within the current line.
func (c *cursor) advance(n int) {
	c.col += n
	c.offset += n
}

// nextLine moves the cursor past the newline onto the next row.
func (c *cursor) nextLine() {
	c.row++
	c.col = 0
	c.offset++
}
