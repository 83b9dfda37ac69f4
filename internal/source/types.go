package source

type (
	// FileID uniquely identifies a source text within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source text.
	FileFlags uint8
)

const (
	// FileVirtual indicates the text was added from memory (test, stdin, scenario).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single expression text.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Flags   FileFlags
}

// LineCol represents a human-readable position: both fields are 1-based.
type LineCol struct {
	Line uint32
	Col  uint32
}

// Position is the coordinate pair FEEL diagnostics carry: a 1-based line and
// a 0-based column.
type Position struct {
	Line   int
	Column int
}
