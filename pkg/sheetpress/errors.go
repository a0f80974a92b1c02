package sheetpress

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// EncodeError represents a failure while encoding a workbook.
type EncodeError struct {
	File  string
	Stage string // "load", "config", "encode"
	Err   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode error for %q (%s): %v", e.File, e.Stage, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// NewEncodeError creates a new EncodeError.
func NewEncodeError(file, stage string, err error) *EncodeError {
	return &EncodeError{File: file, Stage: stage, Err: err}
}
