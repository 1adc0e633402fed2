package csvparser

import (
	"strconv"
	"time"
)

type valueKind int

const (
	kindNull valueKind = iota
	kindText
	kindInteger
	kindFloat
	kindDate
)

// Value is one cell of a row passed to Writer.Write. The zero Value is
// Null, which renders as an empty unquoted field. Numeric values are
// never quoted; text and date values follow the writer's quoting policy.
type Value struct {
	kind    valueKind
	text    string
	integer int64
	float   float64
	date    time.Time
}

// Null is the absent value. It renders as an empty unquoted field.
var Null = Value{}

// Text returns a string Value.
func Text(s string) Value {
	return Value{kind: kindText, text: s}
}

// Integer returns an integer Value.
func Integer(n int64) Value {
	return Value{kind: kindInteger, integer: n}
}

// Float returns a floating-point Value.
func Float(f float64) Value {
	return Value{kind: kindFloat, float: f}
}

// Date returns a date Value. How it renders depends on the writer's
// DateFormat layout.
func Date(t time.Time) Value {
	return Value{kind: kindDate, date: t}
}

// IsNull reports whether v is the absent value.
func (v Value) IsNull() bool {
	return v.kind == kindNull
}

// text form of v before any quoting, using layout for dates.
func (v Value) render(layout string) string {
	switch v.kind {
	case kindText:
		return v.text
	case kindInteger:
		return strconv.FormatInt(v.integer, 10)
	case kindFloat:
		return strconv.FormatFloat(v.float, 'g', -1, 64)
	case kindDate:
		return v.date.Format(layout)
	default:
		return ""
	}
}

// quotable reports whether v is subject to the quoting policy.
// Numbers and Null are always written bare.
func (v Value) quotable() bool {
	return v.kind == kindText || v.kind == kindDate
}
