package importer

import (
	"errors"
	"fmt"
)

// User-facing messages for fatal ingestion failures.
const (
	MsgInvalidFileType = "Invalid file type. Please upload a .csv file."
	MsgEmptyFile       = "CSV file is empty."
)

var (
	ErrInvalidFileType = errors.New("invalid file type")
	ErrEmptyFile       = errors.New("empty csv file")
	ErrMalformedCSV    = errors.New("malformed csv")
)

// ImportError is a fatal ingestion failure. Error returns the message shown
// to the user; Kind is one of the Err* sentinels above.
type ImportError struct {
	Kind    error
	Message string
	Err     error
}

func (e *ImportError) Error() string {
	return e.Message
}

func (e *ImportError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func invalidFileType() *ImportError {
	return &ImportError{Kind: ErrInvalidFileType, Message: MsgInvalidFileType}
}

func emptyFile() *ImportError {
	return &ImportError{Kind: ErrEmptyFile, Message: MsgEmptyFile}
}

func malformed(err error) *ImportError {
	return &ImportError{
		Kind:    ErrMalformedCSV,
		Message: fmt.Sprintf("CSV parsing error: %s", err.Error()),
		Err:     err,
	}
}

// RowError formats the message recorded for a data row failing validation.
// rowNumber counts the header as row 1.
func RowError(rowNumber int) string {
	return fmt.Sprintf("Row %d: Missing required fields (First Name and/or Last Name)", rowNumber)
}
