package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"gitlab.com/tinyland/lab/boxkit/pkg/box"
)

// table is the records read from one input.
type table [][]string

// readInputs reads one table per file, or a single table from stdin when
// no files are named. "-" also names stdin.
func readInputs(files []string, stdin io.Reader, format string) ([]table, error) {
	if len(files) == 0 {
		t, err := readTable(stdin, format)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return []table{t}, nil
	}
	tables := make([]table, 0, len(files))
	for _, name := range files {
		t, err := readFile(name, stdin, format)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func readFile(name string, stdin io.Reader, format string) (table, error) {
	if name == "-" {
		return readTable(stdin, format)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readTable(f, format)
}

// readTable parses CSV or TSV. Records may have differing lengths; the
// box pads short rows.
func readTable(r io.Reader, format string) (table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	if strings.EqualFold(format, "tsv") {
		cr.Comma = '\t'
		cr.LazyQuotes = true
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return records, nil
}

// addRecords appends one data section per table. With header set the
// first record of each table names the columns.
func addRecords(b *box.Builder, tables []table, header bool) {
	for _, t := range tables {
		if len(t) == 0 {
			continue
		}
		if header {
			b.Data(t[0], t[1:]...)
		} else {
			b.Data(nil, t...)
		}
	}
}
