// Package jsast provides the JavaScript AST representation for jsuplift.
// It defines an immutable view of a source file:
//   - FileSnapshot: the file content plus its line index
//   - Node: a closed tagged-variant tree referencing source positions
//
// Positions use 1-based lines and 0-based byte columns throughout.
package jsast

// FileSnapshot is an immutable view of a source file at a specific time.
// It is the fixed coordinate system every node position and every autofix
// edit is anchored to.
type FileSnapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo

	// Root is the AST root node (Program), or nil if the file was not
	// tree-parseable.
	Root *Node
}

// NewFileSnapshot creates a FileSnapshot from content.
// It builds the line index but does not parse (that requires a Parser).
func NewFileSnapshot(path string, content []byte) *FileSnapshot {
	return &FileSnapshot{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
		Root:    nil,
	}
}

// Slice returns the source text covered by pos, or "" if pos does not
// address lines that exist in the snapshot.
func (f *FileSnapshot) Slice(pos SourcePosition) string {
	start, ok := f.OffsetOf(pos.Start())
	if !ok {
		return ""
	}
	end, ok := f.OffsetOf(pos.End())
	if !ok || end < start {
		return ""
	}
	return string(f.Content[start:end])
}
