package csvparser

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
)

const writerBufferSize = 1 << 16 // 64 KiB

// Writer emits rows of typed values as comma-separated text. Column
// names, when set before the first row is written, are emitted once as an
// unquoted header line. String and date fields are quoted when the
// QuoteAllStrings policy is on or when the text contains a comma or a
// quote character; embedded quotes are doubled. Numeric fields are never
// quoted, and Null renders as an empty unquoted field.
type Writer struct {
	sink io.Writer
	dst  *bufio.Writer

	// QuoteAllStrings forces quoting of every string and date field.
	QuoteAllStrings bool
	// DateFormat is the time layout used to render Date values.
	// Default is DefaultDateFormat.
	DateFormat string

	columnNames []string
	rowCount    int
	closed      bool
	err         error
}

// NewWriter creates a buffered Writer over sink, panicking if sink is nil.
func NewWriter(sink io.Writer) *Writer {
	if sink == nil {
		panic("csvparser: writer destination cannot be nil")
	}
	return &Writer{
		sink:       sink,
		dst:        bufio.NewWriterSize(sink, writerBufferSize),
		DateFormat: DefaultDateFormat,
	}
}

// SetColumnNames sets the column names to emit as the header line. The
// call is ignored if the names have already been set, and has no effect
// on output once a row has been written.
func (w *Writer) SetColumnNames(columnNames []string) {
	if w.columnNames == nil && columnNames != nil {
		w.columnNames = slices.Clone(columnNames)
	}
}

// ColumnNames returns the column names, or nil if none have been set.
func (w *Writer) ColumnNames() []string {
	return slices.Clone(w.columnNames)
}

// RowCount returns the number of data rows written so far, excluding the
// header line.
func (w *Writer) RowCount() int {
	return w.rowCount
}

// Write emits one row. Writing no values is a no-op. If this is the
// first row and column names have been set, the header line is emitted
// first. The first error encountered by the writer is sticky and is
// returned by every subsequent call.
func (w *Writer) Write(values ...Value) error {
	if w.err != nil {
		return w.err
	}
	if len(values) == 0 {
		return nil
	}

	// The header goes out at most once, and only ahead of the first row.
	if w.rowCount == 0 && w.columnNames != nil {
		if err := w.writeLine(w.columnNames); err != nil {
			return w.fail(err)
		}
	}
	w.rowCount++

	layout := w.DateFormat
	if layout == "" {
		layout = DefaultDateFormat
	}
	for i, value := range values {
		if i > 0 {
			if err := w.dst.WriteByte(','); err != nil {
				return w.fail(err)
			}
		}
		if err := w.writeField(value, layout); err != nil {
			return w.fail(err)
		}
	}
	if err := w.dst.WriteByte('\n'); err != nil {
		return w.fail(err)
	}
	return nil
}

// Flush flushes pending buffered data to the underlying sink.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.dst.Flush(); err != nil {
		w.err = fmt.Errorf("csvparser: flush: %w", err)
		return w.err
	}
	return nil
}

// Close flushes the writer and closes the underlying sink when it
// implements io.Closer. Close is idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	flushErr := w.dst.Flush()
	if c, ok := w.sink.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("csvparser: close: %w", err)
		}
	}
	if flushErr != nil {
		return fmt.Errorf("csvparser: close: %w", flushErr)
	}
	return nil
}

// writeLine joins fields with commas, unquoted, and terminates the line.
func (w *Writer) writeLine(fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := w.dst.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.dst.WriteString(field); err != nil {
			return err
		}
	}
	return w.dst.WriteByte('\n')
}

func (w *Writer) writeField(value Value, layout string) error {
	field := value.render(layout)
	needsQuote := value.quotable() &&
		(w.QuoteAllStrings || strings.ContainsAny(field, `,"`))
	if !needsQuote {
		_, err := w.dst.WriteString(field)
		return err
	}

	if err := w.dst.WriteByte('"'); err != nil {
		return err
	}
	start := 0
	for i := 0; i < len(field); i++ {
		if field[i] == '"' {
			if _, err := w.dst.WriteString(field[start:i]); err != nil {
				return err
			}
			if _, err := w.dst.WriteString(`""`); err != nil {
				return err
			}
			start = i + 1
		}
	}
	if start < len(field) {
		if _, err := w.dst.WriteString(field[start:]); err != nil {
			return err
		}
	}
	return w.dst.WriteByte('"')
}

func (w *Writer) fail(err error) error {
	w.err = fmt.Errorf("csvparser: write: %w", err)
	return w.err
}
