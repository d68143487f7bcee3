package parser

import "github.com/ukaji3/fitstandards-go/pkg/fitstandards/models"

// PageResult holds the standards extracted from one page together with
// the per-row outcomes.
type PageResult struct {
	Standards models.SexStandards
	Rows      []RowResult
}

// Skipped returns the rows that produced no record.
func (p PageResult) Skipped() []RowResult {
	var out []RowResult
	for _, r := range p.Rows {
		if !r.Extracted() {
			out = append(out, r)
		}
	}
	return out
}

// ParsePage extracts every row of a page in document order. A repeated
// age bracket overwrites the earlier record of the same category.
func ParsePage(rows []models.RawRow) PageResult {
	result := PageResult{
		Standards: models.NewSexStandards(),
		Rows:      make([]RowResult, 0, len(rows)),
	}

	for i, row := range rows {
		r := ExtractRow(row)
		r.Index = i
		result.Rows = append(result.Rows, r)
		if !r.Extracted() {
			continue
		}

		switch r.Schema {
		case SchemaRangePair:
			result.Standards.Cardio[r.Age] = models.NewCardioRecord(r.Metrics)
		case SchemaFlat:
			result.Standards.Muscular[r.Age] = models.NewMuscularRecord(r.Metrics)
		}
	}

	return result
}
