package textpos

import (
	"fmt"
	"strings"
)

// Offset is an absolute byte position in a buffer.
type Offset = int

// Point represents a line and column position.
// Both Line and Column are 0-indexed.
// Column is measured in bytes from the start of the line.
type Point struct {
	Line   uint32 // 0-indexed line number
	Column uint32 // 0-indexed column (byte offset within line)
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// ToOffset converts a point to an absolute offset in buffer.
//
// Each line before p.Line contributes its length plus one for the newline
// that delimits it; p.Column is then added within the target line. No
// bounds checking is performed: a point beyond the buffer's extent yields
// an offset that may exceed the buffer length. Points obtained from a
// source that can drift out of sync with the buffer must go through
// Clamp first.
func ToOffset(buffer string, p Point) Offset {
	lines := strings.Split(buffer, "\n")
	off := 0
	for i := range lines {
		if uint32(i) < p.Line {
			off += len(lines[i]) + 1
			continue
		}
		off += int(p.Column)
		break
	}
	return off
}

// ToPosition converts an absolute offset in buffer to a point.
//
// The line is the number of newlines before off; the column is the
// distance from off back to the start of its line. Offsets outside
// [0, len(buffer)] are truncated to the nearest buffer boundary.
func ToPosition(buffer string, off Offset) Point {
	if off < 0 {
		off = 0
	}
	if off > len(buffer) {
		off = len(buffer)
	}

	prefix := buffer[:off]
	line := strings.Count(prefix, "\n")
	lastNL := strings.LastIndexByte(prefix, '\n')

	return Point{
		Line:   uint32(line),
		Column: uint32(off - lastNL - 1),
	}
}

// Clamp returns the nearest valid point in buffer for p.
//
// The line is limited to the last line of the buffer and the column to the
// target line's length. The line length is a valid column: the caret may
// sit after the last character.
func Clamp(buffer string, p Point) Point {
	lines := strings.Split(buffer, "\n")

	line := p.Line
	if max := uint32(len(lines) - 1); line > max {
		line = max
	}

	col := p.Column
	if max := uint32(len(lines[line])); col > max {
		col = max
	}

	return Point{Line: line, Column: col}
}
