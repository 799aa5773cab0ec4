package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorDecomposition(t *testing.T) {
	c := newCursor("ab\ncd\n\nx")

	type state struct{ offset, row, col int }
	check := func(expected state) {
		t.Helper()
		assert.Equal(t, expected, state{c.offset, c.row, c.col})
	}

	check(state{0, 0, 0})
	assert.Equal(t, "ab", c.remainder())

	c.advance(2)
	check(state{2, 0, 2})
	assert.True(t, c.atLineEnd())
	assert.False(t, c.done())

	c.nextLine()
	check(state{3, 1, 0})
	assert.Equal(t, "cd", c.remainder())

	c.advance(1)
	check(state{4, 1, 1})
	assert.Equal(t, "d", c.remainder())

	c.advance(1)
	c.nextLine()
	check(state{6, 2, 0})
	assert.True(t, c.atLineEnd())

	c.nextLine()
	check(state{7, 3, 0})
	assert.True(t, c.lastRow())

	c.advance(1)
	check(state{8, 3, 1})
	assert.True(t, c.done())
}

func TestCursorPosition(t *testing.T) {
	c := newCursor("πx\ny")
	line, col := c.position()
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	c.advance(2) // past the two-byte rune
	line, col = c.position()
	assert.Equal(t, 1, line)
	assert.Equal(t, 2, col, "column counts runes, not bytes")
}

func TestCursorEmptyInput(t *testing.T) {
	c := newCursor("")
	assert.True(t, c.done())
	assert.True(t, c.atLineEnd())
	assert.True(t, c.lastRow())
}
