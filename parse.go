package csvparser

import "strings"

// Tokenizer states. A quote is structural only as the first character of a
// field or when doubled inside a quoted field; anywhere else it is literal
// text. This is a deliberate departure from RFC 4180.
type parseState int

const (
	stateStart parseState = iota
	stateUnquoted
	stateQuoted
	stateQuoteSeen
)

// Parse splits one line of comma-separated text into its fields.
//
// Consecutive commas produce empty fields, as do leading and trailing
// commas. The empty line yields a single empty field. Commas inside a
// quoted field are literal, and a doubled quote inside a quoted field
// represents one literal quote character. Any other character following
// the closing quote of a quoted field produces a *ParseError wrapping
// ErrMalformedField.
//
// The input must not contain line terminators; splitting text into lines
// is the caller's concern.
func Parse(input string) ([]string, error) {
	fields := make([]string, 0, 8)
	var sb strings.Builder

	state := stateStart
	for i := 0; i < len(input); i++ {
		// The delimiters are ASCII, so byte-wise scanning leaves
		// multi-byte UTF-8 sequences intact.
		c := input[i]
		switch state {
		case stateStart:
			switch c {
			case ',':
				fields = append(fields, sb.String())
				sb.Reset()
			case '"':
				sb.Reset()
				state = stateQuoted
			default:
				sb.WriteByte(c)
				state = stateUnquoted
			}

		case stateUnquoted:
			if c == ',' {
				fields = append(fields, sb.String())
				sb.Reset()
				state = stateStart
			} else {
				sb.WriteByte(c)
			}

		case stateQuoted:
			if c == '"' {
				state = stateQuoteSeen
			} else {
				sb.WriteByte(c)
			}

		case stateQuoteSeen:
			switch c {
			case '"':
				sb.WriteByte('"')
				state = stateQuoted
			case ',':
				fields = append(fields, sb.String())
				sb.Reset()
				state = stateStart
			default:
				return nil, &ParseError{Column: i + 1, Err: ErrMalformedField}
			}
		}
	}

	// The field in progress, even an empty one, terminates at end of line.
	fields = append(fields, sb.String())
	return fields, nil
}
