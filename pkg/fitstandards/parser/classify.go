package parser

import "github.com/ukaji3/fitstandards-go/pkg/fitstandards/models"

// SchemaKind identifies which row layout a data row follows.
type SchemaKind int

const (
	// SchemaNone is used for rows that were never classified.
	SchemaNone SchemaKind = iota
	// SchemaRangePair marks cardio rows, which contain colon-range cells.
	SchemaRangePair
	// SchemaFlat marks muscular rows made of plain numeric columns.
	SchemaFlat
)

func (k SchemaKind) String() string {
	switch k {
	case SchemaRangePair:
		return "range-pair"
	case SchemaFlat:
		return "flat"
	default:
		return "none"
	}
}

// SkipReason explains why a row produced no record.
type SkipReason string

const (
	// SkipNotDataRow is used when the first cell is not an age bracket.
	SkipNotDataRow SkipReason = "not a data row"
	// SkipNoValues is used when a flat row carries no numeric value.
	SkipNoValues SkipReason = "no values"
	// SkipInsufficientValues is used when a flat row is too short.
	SkipInsufficientValues SkipReason = "insufficient values"
)

// RowResult is the outcome of classifying and extracting one row.
type RowResult struct {
	// Index is the 0-based position of the row in its page.
	Index int
	// Age is the row's age bracket (empty for non-data rows).
	Age models.AgeBracket
	// Schema is the layout the row was classified as.
	Schema SchemaKind
	// Metrics holds the retained metrics when the row was extracted.
	Metrics map[string]models.MetricRange
	// Skip is empty when the row was extracted.
	Skip SkipReason
}

// Extracted reports whether the row produced a record.
func (r RowResult) Extracted() bool {
	return r.Skip == ""
}

// Classify picks the schema for a row's post-label values: any range
// cell selects the range-pair layout, otherwise the flat layout.
func Classify(values []models.NormalizedCell) RowSchema {
	for _, v := range values {
		if v.IsRange() {
			return CardioSchema
		}
	}
	return MuscularSchema
}

// ExtractRow classifies a raw row and extracts its metrics.
func ExtractRow(row models.RawRow) RowResult {
	if len(row) == 0 {
		return RowResult{Skip: SkipNotDataRow}
	}
	age, ok := ParseAgeBracket(row[0])
	if !ok {
		return RowResult{Skip: SkipNotDataRow}
	}

	values := NormalizeRow(row[1:])
	schema := Classify(values)
	metrics, skip := schema.Extract(values)
	return RowResult{
		Age:     age,
		Schema:  schema.Kind,
		Metrics: metrics,
		Skip:    skip,
	}
}
