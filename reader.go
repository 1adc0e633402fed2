package csvparser

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"
)

// DefaultDateFormat is the layout used to parse and render date fields
// when no other layout has been configured.
const DefaultDateFormat = "2006-01-02"

const (
	readerBufferSize = 1 << 16 // 64 KiB
	maxLineSize      = 1 << 24 // 16 MiB
)

// Reader is a forward-only cursor over comma-separated text, with an API
// in the manner of a database result set: Next advances the cursor one
// row, typed getters read values from the current row by 1-based column
// index or by column name, and WasNull reports whether the most recent
// get found an empty value.
//
// The first line of the input is always interpreted as column headers.
type Reader struct {
	src     io.Reader
	scanner *bufio.Scanner

	// DateFormat is the time layout used by GetDate. Default is DefaultDateFormat.
	DateFormat string

	names       []string
	columns     map[string]int
	columnCount int

	values  []string
	eof     bool
	closed  bool
	wasNull bool
}

// NewReader creates a cursor over src and consumes its first line as the
// column headers. It returns ErrNoHeader if src yields no lines.
//
// When two header fields carry the same name, the later column silently
// wins the name lookup; both columns remain addressable by index. The
// column count is the number of header fields.
//
// A single line may be up to 16 MiB long; longer lines surface a read
// error from Next.
func NewReader(src io.Reader) (*Reader, error) {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, readerBufferSize), maxLineSize)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("csvparser: read header: %w", err)
		}
		return nil, ErrNoHeader
	}

	names, err := Parse(scanner.Text())
	if err != nil {
		return nil, err
	}

	columns := make(map[string]int, len(names))
	for i, name := range names {
		columns[name] = i + 1
	}

	return &Reader{
		src:         src,
		scanner:     scanner,
		DateFormat:  DefaultDateFormat,
		names:       names,
		columns:     columns,
		columnCount: len(names),
	}, nil
}

// Next advances the cursor one row. It returns true when a row is
// available, and false when the input is exhausted or the reader has been
// closed. A row with fewer fields than the header is reported as an error
// wrapping ErrFieldCount; the cursor stays usable, so a caller may skip
// the bad row and call Next again.
func (r *Reader) Next() (bool, error) {
	if r.closed || r.eof {
		return false, nil
	}

	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return false, fmt.Errorf("csvparser: read: %w", err)
		}
		// The last row is not retained past exhaustion.
		r.eof = true
		r.values = nil
		return false, nil
	}

	fields, err := Parse(r.scanner.Text())
	if err != nil {
		return false, err
	}
	if len(fields) < r.columnCount {
		return false, fmt.Errorf("%w: expected %d columns, found only %d",
			ErrFieldCount, r.columnCount, len(fields))
	}

	// Fields beyond the header width are kept but not addressable.
	r.values = fields
	return true, nil
}

// ColumnCount returns the number of columns defined by the header row.
func (r *Reader) ColumnCount() int {
	return r.columnCount
}

// ColumnIndex returns the 1-based index of the named column. The lookup
// is case sensitive. It returns an error wrapping ErrUnknownColumn when
// the name is empty or not present in the header.
func (r *Reader) ColumnIndex(columnName string) (int, error) {
	if columnName == "" {
		return 0, fmt.Errorf("%w: column name is empty", ErrUnknownColumn)
	}
	index, ok := r.columns[columnName]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, columnName)
	}
	return index, nil
}

// ColumnName returns the header name at the given 1-based index.
func (r *Reader) ColumnName(columnIndex int) (string, error) {
	if err := r.checkColumnIndex(columnIndex); err != nil {
		return "", err
	}
	return r.names[columnIndex-1], nil
}

// ColumnNames returns the header names in column order.
func (r *Reader) ColumnNames() []string {
	return slices.Clone(r.names)
}

// GetString returns the field at the given 1-based index as a string. No
// trimming of leading or trailing whitespace is done. WasNull is set when
// the field is empty.
func (r *Reader) GetString(columnIndex int) (string, error) {
	if err := r.checkColumnIndex(columnIndex); err != nil {
		return "", err
	}
	if r.values == nil {
		return "", ErrNoRow
	}
	value := r.values[columnIndex-1]
	r.wasNull = value == ""
	return value, nil
}

// GetStringByName is GetString addressed by column name.
func (r *Reader) GetStringByName(columnName string) (string, error) {
	columnIndex, err := r.ColumnIndex(columnName)
	if err != nil {
		return "", err
	}
	return r.GetString(columnIndex)
}

// GetInt returns the field at the given 1-based index as an integer. The
// field is trimmed first; an empty trimmed field sets WasNull and yields
// zero. A non-numeric field is reported as an error wrapping
// ErrTypeMismatch.
func (r *Reader) GetInt(columnIndex int) (int, error) {
	if err := r.checkColumnIndex(columnIndex); err != nil {
		return 0, err
	}
	if r.values == nil {
		return 0, ErrNoRow
	}
	value := strings.TrimSpace(r.values[columnIndex-1])
	r.wasNull = value == ""
	if r.wasNull {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: value of column %d was %q, not an integer",
			ErrTypeMismatch, columnIndex, value)
	}
	return n, nil
}

// GetIntByName is GetInt addressed by column name.
func (r *Reader) GetIntByName(columnName string) (int, error) {
	columnIndex, err := r.ColumnIndex(columnName)
	if err != nil {
		return 0, err
	}
	return r.GetInt(columnIndex)
}

// GetDate returns the field at the given 1-based index as a time.Time,
// parsed with the DateFormat layout. The field is trimmed first; an empty
// trimmed field sets WasNull and yields the zero time. A field that does
// not match the layout is reported as an error wrapping ErrTypeMismatch.
func (r *Reader) GetDate(columnIndex int) (time.Time, error) {
	if err := r.checkColumnIndex(columnIndex); err != nil {
		return time.Time{}, err
	}
	if r.values == nil {
		return time.Time{}, ErrNoRow
	}
	value := strings.TrimSpace(r.values[columnIndex-1])
	r.wasNull = value == ""
	if r.wasNull {
		return time.Time{}, nil
	}
	layout := r.DateFormat
	if layout == "" {
		layout = DefaultDateFormat
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: value of column %d was %q, not a valid date",
			ErrTypeMismatch, columnIndex, value)
	}
	return t, nil
}

// GetDateByName is GetDate addressed by column name.
func (r *Reader) GetDateByName(columnName string) (time.Time, error) {
	columnIndex, err := r.ColumnIndex(columnName)
	if err != nil {
		return time.Time{}, err
	}
	return r.GetDate(columnIndex)
}

// WasNull reports whether the most recent get operation found an empty
// value. It reflects only the last get, not the whole row.
func (r *Reader) WasNull() bool {
	return r.wasNull
}

// Close marks the cursor closed and closes the underlying source when it
// implements io.Closer. Close is idempotent.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.values = nil
	if c, ok := r.src.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("csvparser: close: %w", err)
		}
	}
	return nil
}

func (r *Reader) checkColumnIndex(columnIndex int) error {
	if columnIndex < 1 || columnIndex > r.columnCount {
		return fmt.Errorf("%w: %d is not between 1 and %d",
			ErrColumnIndex, columnIndex, r.columnCount)
	}
	return nil
}
