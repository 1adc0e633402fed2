package csvparser

import (
	stdcsv "encoding/csv"
	"strings"
	"testing"
)

var benchmarkLines = []string{
	"Larry,190,1934-05-05",
	`"Lions, Tigers, Bears",oh my,3`,
	`NYY,"George Herman ""Babe"" Ruth",BOS`,
	",,a,b,",
	strings.Repeat("field,", 30) + "last",
}

func BenchmarkParse(b *testing.B) {
	var total int64
	for _, line := range benchmarkLines {
		total += int64(len(line))
	}
	b.ReportAllocs()
	b.SetBytes(total)

	for i := 0; i < b.N; i++ {
		for _, line := range benchmarkLines {
			fields, err := Parse(line)
			if err != nil {
				b.Fatal(err)
			}
			if len(fields) == 0 {
				b.Fatal("no fields")
			}
		}
	}
}

func BenchmarkStdlibCSV(b *testing.B) {
	data := strings.Join(benchmarkLines, "\n") + "\n"
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for i := 0; i < b.N; i++ {
		r := stdcsv.NewReader(strings.NewReader(data))
		r.FieldsPerRecord = -1
		r.LazyQuotes = true
		if _, err := r.ReadAll(); err != nil {
			b.Fatal(err)
		}
	}
}
