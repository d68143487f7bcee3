package parser

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/ukaji3/fitstandards-go/pkg/fitstandards/models"
)

// ReadCSV reads one page of rows from CSV data. Rows may have differing
// field counts; a leading UTF-8 byte order mark is ignored.
func ReadCSV(r io.Reader, name string) (models.Page, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	page := models.Page{Name: name}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.Page{}, err
		}
		if len(page.Rows) == 0 && len(record) > 0 {
			record[0] = strings.TrimPrefix(record[0], "\ufeff")
		}
		page.Rows = append(page.Rows, models.RawRow(record))
	}
	return page, nil
}
