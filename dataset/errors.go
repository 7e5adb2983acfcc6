package dataset

import "errors"

var (
	// ErrBadRecord signals a dataset line that is neither a comment nor a
	// well-formed key or miss record.
	ErrBadRecord = errors.New("dataset: malformed record")
	// ErrNotRegular signals that the named file is not a regular file.
	ErrNotRegular = errors.New("dataset: not a regular file")
)
