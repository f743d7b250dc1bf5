package jsast

import "sort"

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this
	// equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// BuildLines constructs line metadata from file content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Last line may not have a trailing newline.
	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// LineCount returns the number of lines in the file.
func (f *FileSnapshot) LineCount() int {
	return len(f.Lines)
}

// PositionAt converts a byte offset to a Position (1-based line,
// 0-based column). Returns an invalid Position if offset is out of range.
func (f *FileSnapshot) PositionAt(offset int) Position {
	if offset < 0 || len(f.Lines) == 0 {
		return Position{}
	}

	if offset >= len(f.Content) {
		last := f.Lines[len(f.Lines)-1]
		return Position{Line: len(f.Lines), Col: len(f.Content) - last.StartOffset}
	}

	lineIdx := sort.Search(len(f.Lines), func(i int) bool {
		return f.Lines[i].EndOffset > offset
	})
	if lineIdx >= len(f.Lines) {
		lineIdx = len(f.Lines) - 1
	}

	info := f.Lines[lineIdx]
	if offset < info.StartOffset {
		return Position{}
	}

	return Position{Line: lineIdx + 1, Col: offset - info.StartOffset}
}

// OffsetOf converts a Position to a byte offset.
// Returns (offset, true) on success, or (0, false) if the position does
// not address a line that exists in the snapshot. The column may point
// one past the last byte of the line (exclusive end positions).
func (f *FileSnapshot) OffsetOf(pos Position) (int, bool) {
	if pos.Line < 1 || pos.Line > len(f.Lines) || pos.Col < 0 {
		return 0, false
	}

	info := f.Lines[pos.Line-1]
	offset := info.StartOffset + pos.Col
	if offset > info.EndOffset {
		return 0, false
	}
	return offset, true
}

// LineContent returns the content of a 1-based line number, excluding the
// newline. Returns "" if the line number is out of range.
func (f *FileSnapshot) LineContent(line int) string {
	if line < 1 || line > len(f.Lines) {
		return ""
	}
	info := f.Lines[line-1]
	return string(f.Content[info.StartOffset:info.NewlineStart])
}
