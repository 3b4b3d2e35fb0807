package export

import (
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"impactio/internal/dashboard"
	"impactio/internal/models"
)

const sheetName = "Leads"

// WriteXLSX writes a single-sheet workbook with the same rows as the CSV export.
func WriteXLSX(w io.Writer, leads []models.Lead, df dashboard.DateFormat) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(sheetName)
	if err != nil {
		return eris.Wrap(err, "xlsx: add sheet")
	}
	addRow(sheet, Header)
	for _, rec := range Records(leads, df) {
		addRow(sheet, rec)
	}
	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "xlsx: write")
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, cells []string) {
	row := sheet.AddRow()
	for _, v := range cells {
		row.AddCell().SetString(v)
	}
}
