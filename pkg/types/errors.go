package types

import "fmt"

// Stage identifies the pipeline stage where a per-file failure occurred.
type Stage string

const (
	StageRead  Stage = "read"
	StageParse Stage = "parse"
)

// ExtractError is a per-file extraction failure. Read failures carry no
// position; parse failures point at the first syntax error.
type ExtractError struct {
	Stage   Stage
	File    string
	Line    int
	Column  int
	Message string
	Err     error // underlying cause, if any
}

// Error implements the error interface
func (e *ExtractError) Error() string {
	if e.Stage == StageParse && e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *ExtractError) Unwrap() error {
	return e.Err
}

// NewReadError wraps a file read failure.
func NewReadError(file string, err error) *ExtractError {
	return &ExtractError{
		Stage:   StageRead,
		File:    file,
		Message: err.Error(),
		Err:     err,
	}
}

// NewParseError wraps a syntax failure at a known position.
func NewParseError(file string, line, col int, msg string, err error) *ExtractError {
	return &ExtractError{
		Stage:   StageParse,
		File:    file,
		Line:    line,
		Column:  col,
		Message: msg,
		Err:     err,
	}
}
