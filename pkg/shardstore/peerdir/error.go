package peerdir

import "fmt"

// Op identifies the failing stage of a codec operation.
type Op string

const (
	// OpEnumerate is the directory listing stage of Read.
	OpEnumerate Op = "enumerate"
	// OpRead is the per-entry file reading stage of Read.
	OpRead Op = "read"
	// OpParse is the per-entry JSON decoding stage of Read.
	OpParse Op = "parse"
	// OpSerialize is the per-entry JSON encoding stage of Write.
	OpSerialize Op = "serialize"
	// OpWrite is the per-entry file writing stage of Write.
	OpWrite Op = "write"
)

// Error describes the failure of a single codec stage. Name is empty
// for directory-level failures.
type Error struct {
	Op   Op
	Dir  string
	Name string
	Err  error
}

func (e *Error) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s directory %q: %v", e.Op, e.Dir, e.Err)
	}

	return fmt.Sprintf("%s entry %q in %q: %v", e.Op, e.Name, e.Dir, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
