package tidy

import "fmt"

// ValidationKind classifies argument validation failures.
type ValidationKind int

const (
	// ConflictingModes means --recursive and --inplace were combined
	ConflictingModes ValidationKind = iota
	// InvalidRecursiveArgs means --recursive arguments were not one
	// existing directory
	InvalidRecursiveArgs
	// InvalidInplaceArgs means an --inplace argument was not an
	// existing file
	InvalidInplaceArgs
	// InvalidDefaultArgs means default mode arguments were not an
	// existing input file plus an optional output path
	InvalidDefaultArgs
	// InvalidFormat means the output format was not txt or robot
	InvalidFormat
	// InvalidLineSeparator means the line separator symbol was not
	// native, windows or unix
	InvalidLineSeparator
	// InvalidSpaceCount means the space count was not an integer
	// greater than one
	InvalidSpaceCount
)

// ValidationError reports an invalid argument or option combination.
// Validation happens before any transform, so a ValidationError never
// leaves partial side effects behind.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DataError reports a parse or write failure on a given input. It is
// fatal: in a multi-file or recursive run, files rewritten before the
// failure stay rewritten and files not yet reached stay untouched.
type DataError struct {
	Path string
	Err  error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("processing '%s' failed: %v", e.Path, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}
