// # csvparser: cursor-style access to comma-separated text
//
// Package csvparser reads and writes a comma-separated text dialect in
// which the first line always names the columns. Reading follows the
// advance-then-get pattern of a forward-only query result:
//
//	r, err := csvparser.Open("stooges.csv")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//
//	for {
//		ok, err := r.Next()
//		if err != nil {
//			log.Printf("skipping row: %v", err)
//			continue
//		}
//		if !ok {
//			break
//		}
//		name, _ := r.GetStringByName("StoogeName")
//		films, _ := r.GetIntByName("Films")
//		if r.WasNull() {
//			// the Films field was empty
//		}
//		_ = name
//		_ = films
//	}
//
// Writing is the inverse: rows of typed values go in, quoted and escaped
// field text comes out.
//
//	w := csvparser.NewWriter(&buf)
//	w.SetColumnNames([]string{"Team", "Player"})
//	err := w.Write(csvparser.Text("NYY"), csvparser.Text(`George Herman "Babe" Ruth`))
//	...
//	err = w.Flush()
//
// # Dialect
//
// The format deviates from RFC 4180 on purpose. A field is quoted only
// when its first character is a quote; a quote anywhere else in an
// unquoted field is literal text. Inside a quoted field a doubled quote
// is one literal quote character, and anything else after a closing
// quote is malformed. Fields never span lines.
//
// # Errors
//
// Failures are reported through a closed set of sentinel errors
// (ErrNoHeader, ErrMalformedField, ErrFieldCount, ErrColumnIndex,
// ErrUnknownColumn, ErrNoRow, ErrTypeMismatch) that callers match with
// errors.Is. Tokenizing errors additionally carry their column position
// via ParseError.
package csvparser
