package flatfile

import "fmt"

// MalformedRecordError reports an unparseable line in the flat file.
// Line numbers are 1-based. A single malformed line aborts the whole
// parse; no partial record sequence is ever returned.
type MalformedRecordError struct {
	Line   int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record on line %d: %s", e.Line, e.Reason)
}

// OverwriteError reports that a write would clobber an existing file and
// was not explicitly forced. The caller decides how to resolve it
// (prompt, force, abort); the codec never overwrites silently.
type OverwriteError struct {
	Path string
}

func (e *OverwriteError) Error() string {
	return fmt.Sprintf("%s already exists; overwrite not authorized", e.Path)
}
