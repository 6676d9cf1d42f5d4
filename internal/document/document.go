// Package document implements the text buffer behind every open document:
// UTF-16 position translation, ordered edit application and the version
// counter that ties a parse result to the exact text it was computed from.
package document

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"
)

// ErrInvalidRange reports an edit whose coordinates fall outside the current
// buffer bounds or are not a well-formed half-open range.
var ErrInvalidRange = errors.New("invalid range")

// Position is a zero-based (line, character) pair. Character counts UTF-16
// code units, the LSP default encoding.
type Position struct {
	Line      uint32
	Character uint32
}

// Range is a half-open [Start, End) text range.
type Range struct {
	Start Position
	End   Position
}

// Change is a single edit operation. A nil Range replaces the whole document.
type Change struct {
	Range *Range
	Text  string
}

// Point is a tree-sitter position: row plus byte column within the row.
type Point struct {
	Row    uint32
	Column uint32
}

// Edit is the byte-level record of an applied change, in the shape the
// incremental parser needs to adjust a previous syntax tree.
type Edit struct {
	StartByte   uint32
	OldEndByte  uint32
	NewEndByte  uint32
	StartPoint  Point
	OldEndPoint Point
	NewEndPoint Point
}

// Buffer holds a document's text, a line-start index and a version counter.
// It is not safe for concurrent use; the store serializes writers.
type Buffer struct {
	text    []byte
	lines   []uint32 // byte offset of each line start
	version int32
}

// New creates a Buffer at version 0 containing text.
func New(text string) *Buffer {
	b := &Buffer{text: []byte(text)}
	b.reindex()
	return b
}

// Text returns the current content.
func (b *Buffer) Text() string {
	return string(b.text)
}

// Bytes returns the current content without copying. Callers must not
// mutate the result.
func (b *Buffer) Bytes() []byte {
	return b.text
}

// Version returns the number of successful Apply calls since creation.
func (b *Buffer) Version() int32 {
	return b.version
}

// Apply applies changes in order, each against the buffer state left by its
// predecessors. On success the version advances by exactly one, regardless
// of how many changes the call carried, and the byte-level edit records are
// returned for the parser. On failure the buffer is left untouched.
func (b *Buffer) Apply(changes []Change) ([]Edit, error) {
	work := &Buffer{
		text:  append([]byte(nil), b.text...),
		lines: append([]uint32(nil), b.lines...),
	}

	edits := make([]Edit, 0, len(changes))
	for _, change := range changes {
		edit, err := work.splice(change)
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit)
	}

	b.text = work.text
	b.lines = work.lines
	b.version++
	return edits, nil
}

// ReplaceAll substitutes the entire content, with the same versioning
// behavior as Apply.
func (b *Buffer) ReplaceAll(text string) []Edit {
	// A whole-document change cannot be out of range.
	edits, _ := b.Apply([]Change{{Text: text}})
	return edits
}

// splice applies one change to the working copy and reports the byte edit.
func (b *Buffer) splice(change Change) (Edit, error) {
	var start, end uint32
	if change.Range == nil {
		start, end = 0, uint32(len(b.text))
	} else {
		var err error
		start, err = b.ByteOffset(change.Range.Start)
		if err != nil {
			return Edit{}, err
		}
		end, err = b.ByteOffset(change.Range.End)
		if err != nil {
			return Edit{}, err
		}
		if end < start {
			return Edit{}, fmt.Errorf("%w: end %d:%d before start %d:%d",
				ErrInvalidRange,
				change.Range.End.Line, change.Range.End.Character,
				change.Range.Start.Line, change.Range.Start.Character)
		}
	}

	edit := Edit{
		StartByte:   start,
		OldEndByte:  end,
		NewEndByte:  start + uint32(len(change.Text)),
		StartPoint:  b.pointFor(start),
		OldEndPoint: b.pointFor(end),
	}

	next := make([]byte, 0, len(b.text)-int(end-start)+len(change.Text))
	next = append(next, b.text[:start]...)
	next = append(next, change.Text...)
	next = append(next, b.text[end:]...)
	b.text = next
	b.reindex()

	edit.NewEndPoint = b.pointFor(edit.NewEndByte)
	return edit, nil
}

// ByteOffset translates a UTF-16 position to a byte offset into the buffer.
func (b *Buffer) ByteOffset(pos Position) (uint32, error) {
	if int(pos.Line) >= len(b.lines) {
		return 0, fmt.Errorf("%w: line %d out of bounds", ErrInvalidRange, pos.Line)
	}
	lineStart := b.lines[pos.Line]
	lineEnd := b.lineEnd(pos.Line)

	col, err := utf16ColumnToByte(b.text[lineStart:lineEnd], pos.Character)
	if err != nil {
		return 0, fmt.Errorf("%w: position %d:%d", ErrInvalidRange, pos.Line, pos.Character)
	}
	return lineStart + col, nil
}

// PositionFor translates a byte offset back to a UTF-16 position. Offsets
// past the end of the buffer clamp to the final position.
func (b *Buffer) PositionFor(offset uint32) Position {
	if offset > uint32(len(b.text)) {
		offset = uint32(len(b.text))
	}
	line := b.lineAt(offset)
	lineStart := b.lines[line]

	var units uint32
	for i := lineStart; i < offset; {
		r, size := utf8.DecodeRune(b.text[i:])
		units += utf16Len(r)
		i += uint32(size)
	}
	return Position{Line: uint32(line), Character: units}
}

// pointFor translates a byte offset to a tree-sitter point. Tree-sitter
// columns are byte offsets within the row, not character counts.
func (b *Buffer) pointFor(offset uint32) Point {
	line := b.lineAt(offset)
	return Point{Row: uint32(line), Column: offset - b.lines[line]}
}

func (b *Buffer) lineAt(offset uint32) int {
	return sort.Search(len(b.lines), func(i int) bool {
		return b.lines[i] > offset
	}) - 1
}

// lineEnd returns the offset just past the last content byte of the line,
// excluding its newline.
func (b *Buffer) lineEnd(line uint32) uint32 {
	if int(line)+1 < len(b.lines) {
		return b.lines[line+1] - 1
	}
	return uint32(len(b.text))
}

func (b *Buffer) reindex() {
	b.lines = b.lines[:0]
	b.lines = append(b.lines, 0)
	for i, c := range b.text {
		if c == '\n' {
			b.lines = append(b.lines, uint32(i)+1)
		}
	}
}

// OffsetInText translates a UTF-16 position to a byte offset into text
// without building a Buffer. Used on read-only snapshots.
func OffsetInText(text []byte, pos Position) (uint32, error) {
	var lineStart uint32
	for line := uint32(0); line < pos.Line; line++ {
		next := indexByte(text, lineStart, '\n')
		if next < 0 {
			return 0, fmt.Errorf("%w: line %d out of bounds", ErrInvalidRange, pos.Line)
		}
		lineStart = uint32(next) + 1
	}
	lineEnd := uint32(len(text))
	if next := indexByte(text, lineStart, '\n'); next >= 0 {
		lineEnd = uint32(next)
	}
	col, err := utf16ColumnToByte(text[lineStart:lineEnd], pos.Character)
	if err != nil {
		return 0, fmt.Errorf("%w: position %d:%d", ErrInvalidRange, pos.Line, pos.Character)
	}
	return lineStart + col, nil
}

func indexByte(text []byte, from uint32, c byte) int {
	for i := int(from); i < len(text); i++ {
		if text[i] == c {
			return i
		}
	}
	return -1
}

// utf16ColumnToByte walks line counting UTF-16 code units until character
// units have been consumed, returning the byte offset reached.
func utf16ColumnToByte(line []byte, character uint32) (uint32, error) {
	var i uint32
	remaining := character
	for remaining > 0 {
		if i >= uint32(len(line)) {
			return 0, ErrInvalidRange
		}
		r, size := utf8.DecodeRune(line[i:])
		units := utf16Len(r)
		if units > remaining {
			// Position splits a surrogate pair.
			return 0, ErrInvalidRange
		}
		remaining -= units
		i += uint32(size)
	}
	return i, nil
}

func utf16Len(r rune) uint32 {
	if r > 0xFFFF {
		return 2
	}
	return 1
}
