package fileio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"campaign-analyst/internal/campaign/model"
)

// Open reads the file at path, picking the parser by extension:
// .csv → delimited text, .xls → legacy binary workbook, anything else →
// OOXML workbook (first sheet only). headerRow is 1-based.
func Open(path string, headerRow int) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	t, err := ReadAny(f, path, headerRow)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// ReadAny parses r according to the extension of filename.
func ReadAny(r io.Reader, filename string, headerRow int) (*model.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return readCSV(r, headerRow)
	case ".xls":
		return readXLS(r, headerRow)
	default:
		return readXLSX(r, headerRow)
	}
}

// pickHeader takes the header row and substitutes "Column N" for blanks.
func pickHeader(rows [][]string, headerRow int) []string {
	idx := headerRow - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(rows) {
		idx = 0
	}
	h := rows[idx]
	out := make([]string, len(h))
	for i, v := range h {
		v = strings.TrimSpace(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

// toTable converts cell rows into a Table keyed by header, skipping fully
// empty rows. Rows above and including headerRow are not data.
func toTable(rows [][]string, headerRow int) *model.Table {
	if len(rows) == 0 {
		return &model.Table{}
	}
	headers := pickHeader(rows, headerRow)
	t := &model.Table{Headers: headers}
	for r := headerRow; r < len(rows); r++ {
		rec := rows[r]
		m := make(map[string]string, len(headers))
		empty := true
		for c := 0; c < len(headers); c++ {
			var v string
			if c < len(rec) {
				v = rec[c]
			}
			m[headers[c]] = v
			if strings.TrimSpace(v) != "" {
				empty = false
			}
		}
		if !empty {
			t.Records = append(t.Records, m)
		}
	}
	return t
}
