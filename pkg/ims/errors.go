package ims

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// SheetError wraps a failure confined to one worksheet.
type SheetError struct {
	SheetName string
	Stage     string // "columns", "rows"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
