// Package export serialises the filtered lead table into downloadable documents.
package export

import (
	"strings"

	"github.com/rotisserie/eris"

	"impactio/internal/dashboard"
	"impactio/internal/models"
)

// BaseName is the download file name without extension.
const BaseName = "leads"

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

var ErrUnknownFormat = eris.New("unknown export format")

// Header is the fixed column order of every export.
var Header = []string{"Name", "Email", "Phone", "Company", "Source", "Status", "Priority", "Date"}

// ParseFormat accepts csv, xlsx or pdf; empty means csv.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", eris.Wrapf(ErrUnknownFormat, "format %q", s)
}

func (f Format) Filename() string {
	return BaseName + "." + string(f)
}

func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/csv"
	}
}

// Record renders one lead in Header order. Absent optional fields become "".
func Record(l models.Lead, df dashboard.DateFormat) []string {
	return []string{
		l.Name,
		l.Email,
		l.PhoneOr(""),
		l.CompanyOr(""),
		string(l.Source),
		string(l.Status),
		string(l.Priority),
		df.Format(l.CreatedAt),
	}
}

func Records(leads []models.Lead, df dashboard.DateFormat) [][]string {
	out := make([][]string, 0, len(leads))
	for _, l := range leads {
		out = append(out, Record(l, df))
	}
	return out
}
