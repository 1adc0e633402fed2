// Command csvcat reads a headered CSV file through the cursor API and
// renders it as an ASCII table or re-emits it as CSV. Rows that fail to
// parse or that are shorter than the header are logged and skipped.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"

	"github.com/philhanna/csvparser"
)

type options struct {
	Format   string   `long:"format" default:"table" choice:"table" choice:"csv" description:"Output format."`
	Columns  []string `long:"column" short:"c" description:"Column to include, by header name. May be repeated; default is all columns."`
	Limit    int      `long:"limit" short:"n" description:"Stop after this many data rows."`
	QuoteAll bool     `long:"quote-all" description:"Quote every string field in csv output."`
	Args     struct {
		File string `positional-arg-name:"FILE" required:"yes" description:"Input .csv file."`
	} `positional-args:"yes"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}

	if err := run(&opts); err != nil {
		slog.Error("csvcat failed", "err", err)
		os.Exit(1)
	}
}

func run(opts *options) error {
	r, err := csvparser.Open(opts.Args.File)
	if err != nil {
		return err
	}
	defer r.Close()

	indexes, err := selectColumns(r, opts.Columns)
	if err != nil {
		return err
	}
	header := lo.Map(indexes, func(index int, _ int) string {
		name, _ := r.ColumnName(index)
		return name
	})

	rows, err := collectRows(r, indexes, opts.Limit)
	if err != nil {
		return err
	}

	switch opts.Format {
	case "csv":
		return printCSV(header, rows, opts.QuoteAll)
	default:
		return printTable(header, rows)
	}
}

// selectColumns resolves the requested column names to 1-based indexes,
// defaulting to every column in header order.
func selectColumns(r *csvparser.Reader, names []string) ([]int, error) {
	if len(names) == 0 {
		return lo.RangeFrom(1, r.ColumnCount()), nil
	}
	indexes := make([]int, 0, len(names))
	for _, name := range names {
		index, err := r.ColumnIndex(name)
		if err != nil {
			return nil, err
		}
		indexes = append(indexes, index)
	}
	return indexes, nil
}

// collectRows drains the cursor, keeping only the selected columns.
// Malformed and short rows are logged and skipped; the cursor supports
// advancing past them.
func collectRows(r *csvparser.Reader, indexes []int, limit int) ([][]string, error) {
	var rows [][]string
	for limit <= 0 || len(rows) < limit {
		ok, err := r.Next()
		if err != nil {
			var parseErr *csvparser.ParseError
			if errors.Is(err, csvparser.ErrFieldCount) || errors.As(err, &parseErr) {
				slog.Warn("skipping bad row", "err", err)
				continue
			}
			return nil, err
		}
		if !ok {
			break
		}

		row := make([]string, 0, len(indexes))
		for _, index := range indexes {
			value, err := r.GetString(index)
			if err != nil {
				return nil, err
			}
			row = append(row, value)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func printTable(header []string, rows [][]string) error {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header(header)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("append row: %w", err)
		}
	}
	return table.Render()
}

func printCSV(header []string, rows [][]string, quoteAll bool) error {
	w := csvparser.NewWriter(os.Stdout)
	w.QuoteAllStrings = quoteAll
	w.SetColumnNames(header)
	for _, row := range rows {
		values := lo.Map(row, func(field string, _ int) csvparser.Value {
			return csvparser.Text(field)
		})
		if err := w.Write(values...); err != nil {
			return err
		}
	}
	return w.Flush()
}
