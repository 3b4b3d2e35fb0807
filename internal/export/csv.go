package export

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/rotisserie/eris"

	"impactio/internal/dashboard"
	"impactio/internal/models"
)

// WriteCSV writes the header and one quoted row per lead.
func WriteCSV(w io.Writer, leads []models.Lead, df dashboard.DateFormat) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return eris.Wrap(err, "csv: write header")
	}
	for _, l := range leads {
		if err := cw.Write(Record(l, df)); err != nil {
			return eris.Wrapf(err, "csv: write lead %s", l.ID)
		}
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "csv: flush")
}

func CSV(leads []models.Lead, df dashboard.DateFormat) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, leads, df); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
