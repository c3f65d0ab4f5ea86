package signs

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadTable decodes a CSV table whose first record is the header. Header
// names are matched exactly; extra columns are kept but ignored by the
// generator. Records shorter than the header lack the trailing columns, so
// looking those up fails with ErrMissingField. Quotes inside unquoted cells
// are kept as written.
func ReadTable(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("signs: table has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("signs: read header: %w", err)
	}
	header = trimBOM(header)

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("signs: read table: %w", err)
		}
		line, _ := reader.FieldPos(0)

		fields := make(map[string]string, len(header))
		for i, name := range header {
			if i >= len(record) {
				break
			}
			fields[name] = record[i]
		}
		rows = append(rows, Row{Line: line, Fields: fields})
	}
	return rows, nil
}

// ParseTable is ReadTable over an in-memory payload.
func ParseTable(data []byte) ([]Row, error) {
	return ReadTable(bytes.NewReader(data))
}

func trimBOM(header []string) []string {
	if len(header) == 0 {
		return header
	}
	const bom = "\ufeff"
	header[0] = strings.TrimPrefix(header[0], bom)
	return header
}
