package csvparser

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHeader is returned when the input contains no header line.
	ErrNoHeader = errors.New("csvparser: no records found in input")
	// ErrMalformedField is returned when the closing quote of a quoted field
	// is followed by a character that is neither another quote nor a comma.
	ErrMalformedField = errors.New("csvparser: unexpected character after closing quote")
	// ErrFieldCount is returned when a data row has fewer fields than the header defined.
	ErrFieldCount = errors.New("csvparser: too few fields in row")
	// ErrColumnIndex is returned when a column index is outside [1, ColumnCount].
	ErrColumnIndex = errors.New("csvparser: column index out of range")
	// ErrUnknownColumn is returned when a column name is empty or not present in the header.
	ErrUnknownColumn = errors.New("csvparser: unknown column name")
	// ErrNoRow is returned by getters when the cursor is not positioned on a row.
	ErrNoRow = errors.New("csvparser: no current row")
	// ErrTypeMismatch is returned when a field value cannot be converted to the requested type.
	ErrTypeMismatch = errors.New("csvparser: value cannot be converted to the requested type")
)

// ParseError reports the position of a tokenizing error within a line.
type ParseError struct {
	Column int
	Err    error
}

// Error formats the parse error message with the stored column and Err values.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("csvparser: parse error at column %d: %v", e.Column, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Is.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
