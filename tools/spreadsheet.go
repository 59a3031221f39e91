package tools

import (
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ContactRow is one valid data row from an uploaded contacts spreadsheet.
type ContactRow struct {
	Name      string
	Phone     string
	Category  string
	Region    string
	Subregion string
}

var ErrEmptyWorkbook = errors.New("workbook has no sheets")

// ParseContactRows reads an xlsx upload into contact rows.
// Row 1 is the header and is skipped. A data row needs name, phone and
// category (columns 0-2); rows missing any of them are silently dropped.
// Columns 3 (region) and 4 (subregion) are optional. All cells are trimmed.
//
// Only a file-level parse failure returns an error.
func ParseContactRows(r io.Reader) ([]ContactRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	var out []ContactRow
	for i, row := range rows {
		if i == 0 {
			continue
		}
		name := cell(row, 0)
		phone := cell(row, 1)
		category := cell(row, 2)
		if name == "" || phone == "" || category == "" {
			continue
		}
		out = append(out, ContactRow{
			Name:      name,
			Phone:     phone,
			Category:  category,
			Region:    cell(row, 3),
			Subregion: cell(row, 4),
		})
	}
	return out, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
