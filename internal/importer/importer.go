package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	productsvc "quickcheck/internal/service/product"
)

// ProductWriter applies one status write, creating the product when it is missing.
type ProductWriter interface {
	Upsert(ctx context.Context, code, status string) (*productsvc.UpsertResult, error)
}

// Stats counts what an import run did.
type Stats struct {
	Created int
	Updated int
}

// Total is the number of rows written.
func (s Stats) Total() int {
	return s.Created + s.Updated
}

// CSVImporter reads `code,status` rows and writes them through the upsert resolver.
type CSVImporter struct {
	reader *csv.Reader
	writer ProductWriter
}

func NewCSVImporter(r io.Reader, w ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.Comment = '#'
	return &CSVImporter{
		reader: csvr,
		writer: w,
	}
}

// Run applies rows in file order and stops at the first invalid row or
// failed write. Stats reflect the rows written before the failure.
func (i *CSVImporter) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	headers, err := i.reader.Read()
	if err != nil {
		return stats, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, col := range []string{"code", "status"} {
		if _, ok := index[col]; !ok {
			return stats, fmt.Errorf("missing %q column in header %v", col, headers)
		}
	}

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("read row: %w", err)
		}
		line, _ := i.reader.FieldPos(0)

		code := pick(record, index, "code")
		status := pick(record, index, "status")
		if code == "" && status == "" {
			continue
		}

		res, err := i.writer.Upsert(ctx, code, status)
		if err != nil {
			return stats, fmt.Errorf("line %d: product %q: %w", line, code, err)
		}
		if res.Created {
			stats.Created++
		} else {
			stats.Updated++
		}
	}

	return stats, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	return idx
}

// pick returns the trimmed cell. Codes are stored verbatim, so surrounding
// CSV padding is the only whitespace removed.
func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
