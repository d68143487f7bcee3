package parser

import "github.com/ukaji3/fitstandards-go/pkg/fitstandards/models"

// RangeMode controls how a column pair becomes a MetricRange.
type RangeMode int

const (
	// RangeAsIs takes min and max from their columns unchanged.
	RangeAsIs RangeMode = iota
	// RangeOrdered sorts the two bounds. A lone min stands in for both;
	// a missing min yields an empty range.
	RangeOrdered
	// RangeMinOnly reads only the min column.
	RangeMinOnly
)

// ColumnPair binds a metric to the value positions holding its bounds.
type ColumnPair struct {
	// Metric is the output metric name.
	Metric string
	// Min is the position of the lower bound.
	Min int
	// Max is the position of the upper bound, -1 for RangeMinOnly.
	Max int
	// Mode selects how the bounds are combined.
	Mode RangeMode
	// Retained is false for metrics that are read but left out of the record.
	Retained bool
}

// RowSchema declares how the values of one row layout map to metrics.
type RowSchema struct {
	// Kind identifies the layout.
	Kind SchemaKind
	// Category is where extracted records are stored.
	Category models.Category
	// Dense schemas index into the row's numeric values only, after
	// absent cells have been dropped, and require Width() of them.
	// Other schemas index raw post-label positions and tolerate short rows.
	Dense bool
	// Columns is the ordered column-to-metric mapping.
	Columns []ColumnPair
}

// CardioSchema is the range-pair layout carrying PACER and BMI bands.
var CardioSchema = RowSchema{
	Kind:     SchemaRangePair,
	Category: models.CategoryCardio,
	Columns: []ColumnPair{
		{Metric: models.MetricPacer20, Min: 2, Max: 3, Mode: RangeAsIs, Retained: true},
		{Metric: models.MetricBMI, Min: 12, Max: 13, Mode: RangeOrdered, Retained: true},
	},
}

// MuscularSchema is the flat layout carrying strength and flexibility bands.
// The modpull and hang columns are not part of the published record.
var MuscularSchema = RowSchema{
	Kind:     SchemaFlat,
	Category: models.CategoryMuscular,
	Dense:    true,
	Columns: []ColumnPair{
		{Metric: models.MetricCurlup, Min: 0, Max: 1, Mode: RangeAsIs, Retained: true},
		{Metric: models.MetricTrunkLift, Min: 2, Max: 3, Mode: RangeAsIs, Retained: true},
		{Metric: models.MetricPushup90, Min: 4, Max: 5, Mode: RangeAsIs, Retained: true},
		{Metric: models.MetricModpull, Min: 6, Max: 7, Mode: RangeAsIs},
		{Metric: models.MetricHang, Min: 8, Max: 9, Mode: RangeAsIs},
		{Metric: models.MetricSitAndReach, Min: 10, Max: -1, Mode: RangeMinOnly, Retained: true},
	},
}

// Width returns the number of value positions the schema reads.
func (s RowSchema) Width() int {
	w := 0
	for _, c := range s.Columns {
		if c.Min+1 > w {
			w = c.Min + 1
		}
		if c.Max+1 > w {
			w = c.Max + 1
		}
	}
	return w
}

// Extract maps post-label values to retained metrics. For dense schemas
// it reports SkipNoValues or SkipInsufficientValues when the row is too
// short to fill every column.
func (s RowSchema) Extract(values []models.NormalizedCell) (map[string]models.MetricRange, SkipReason) {
	if s.Dense {
		values = numericOnly(values)
		if len(values) == 0 {
			return nil, SkipNoValues
		}
		if len(values) < s.Width() {
			return nil, SkipInsufficientValues
		}
	}

	out := make(map[string]models.MetricRange, len(s.Columns))
	for _, col := range s.Columns {
		r := col.extract(values)
		if col.Retained {
			out[col.Metric] = r
		}
	}
	return out, ""
}

func (c ColumnPair) extract(values []models.NormalizedCell) models.MetricRange {
	lo := cellAt(values, c.Min)
	switch c.Mode {
	case RangeMinOnly:
		return models.MetricRange{Min: lo.Ptr()}
	case RangeOrdered:
		a, ok := lo.Float()
		if !ok {
			return models.MetricRange{}
		}
		b, ok := cellAt(values, c.Max).Float()
		if !ok {
			b = a
		}
		if b < a {
			a, b = b, a
		}
		return models.MetricRange{Min: &a, Max: &b}
	default:
		return models.MetricRange{Min: lo.Ptr(), Max: cellAt(values, c.Max).Ptr()}
	}
}
