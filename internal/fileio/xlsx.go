package fileio

import (
	"bytes"
	"io"

	excelize "github.com/xuri/excelize/v2"

	"campaign-analyst/internal/campaign/model"
)

func readXLSX(r io.Reader, headerRow int) (*model.Table, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return toTable(rows, headerRow), nil
}
