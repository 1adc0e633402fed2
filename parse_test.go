package csvparser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "basicFields",
			input: "a,b,c",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "emptyInput",
			input: "",
			want:  []string{""},
		},
		{
			name:  "leadingTrailingAndConsecutiveSeparators",
			input: ",,a,b,",
			want:  []string{"", "", "a", "b", ""},
		},
		{
			name:  "singleField",
			input: "larry",
			want:  []string{"larry"},
		},
		{
			name:  "onlySeparators",
			input: ",,,",
			want:  []string{"", "", "", ""},
		},
		{
			name:  "quotedComma",
			input: `"Lions, Tigers, Bears",oh my`,
			want:  []string{"Lions, Tigers, Bears", "oh my"},
		},
		{
			name:  "escapedQuoteInQuotedField",
			input: `"say ""cheese""",done`,
			want:  []string{`say "cheese"`, "done"},
		},
		{
			name:  "bareQuoteInUnquotedFieldIsLiteral",
			input: `Larry,George Herman "Babe" Ruth,Moe`,
			want:  []string{"Larry", `George Herman "Babe" Ruth`, "Moe"},
		},
		{
			name:  "quotedEmptyField",
			input: `a,"",c`,
			want:  []string{"a", "", "c"},
		},
		{
			name:  "quotedFieldAtEndOfLine",
			input: `a,"b"`,
			want:  []string{"a", "b"},
		},
		{
			name:  "utf8PassesThrough",
			input: "naïve,日本語,ok",
			want:  []string{"naïve", "日本語", "ok"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tc.input, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		wantColumn int
	}{
		{
			name:       "characterAfterClosingQuote",
			input:      "30hvb,\"xx\"\",wn\"\\",
			wantColumn: 16,
		},
		{
			name:       "letterAfterClosingQuote",
			input:      `"abc"def`,
			wantColumn: 6,
		},
		{
			name:       "spaceAfterClosingQuote",
			input:      `"abc" ,d`,
			wantColumn: 6,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tc.input)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", tc.input, got)
			}
			if !errors.Is(err, ErrMalformedField) {
				t.Errorf("Parse(%q) error = %v, want ErrMalformedField", tc.input, err)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Parse(%q) error = %T, want *ParseError", tc.input, err)
			}
			if parseErr.Column != tc.wantColumn {
				t.Errorf("Parse(%q) error column = %d, want %d", tc.input, parseErr.Column, tc.wantColumn)
			}
		})
	}
}
