package models

// Sex identifies one of the two halves of the standards document.
type Sex string

const (
	// SexBoys is the key for the boys' standards page.
	SexBoys Sex = "boys"
	// SexGirls is the key for the girls' standards page.
	SexGirls Sex = "girls"
)

// Sexes lists every sex key in output order.
var Sexes = []Sex{SexBoys, SexGirls}

// Valid reports whether s is one of the known sex keys.
func (s Sex) Valid() bool {
	return s == SexBoys || s == SexGirls
}

// Category is a metric category within a sex's standards.
type Category string

const (
	// CategoryCardio holds aerobic capacity and body composition rows.
	CategoryCardio Category = "cardio"
	// CategoryMuscular holds strength, endurance and flexibility rows.
	CategoryMuscular Category = "muscular"
)

// Metric names as they appear in the output record.
const (
	MetricPacer20     = "pacer20"
	MetricBMI         = "bmi"
	MetricCurlup      = "curlup"
	MetricTrunkLift   = "trunkLift"
	MetricPushup90    = "pushup90"
	MetricModpull     = "modpull"
	MetricHang        = "hang"
	MetricSitAndReach = "sitAndReach"
)

// MetricRange is the healthy band for one metric.
type MetricRange struct {
	// Min is the lower bound (nil when absent).
	Min *float64 `json:"min"`
	// Max is the upper bound (nil when absent).
	Max *float64 `json:"max"`
}

// MinBound is a one-sided threshold with no upper limit.
type MinBound struct {
	// Min is the lower bound (nil when absent).
	Min *float64 `json:"min"`
}

// CardioRecord holds the cardio thresholds of one age bracket.
type CardioRecord struct {
	Pacer20 MetricRange `json:"pacer20"`
	BMI     MetricRange `json:"bmi"`
}

// MuscularRecord holds the muscular thresholds of one age bracket.
type MuscularRecord struct {
	Curlup      MetricRange `json:"curlup"`
	TrunkLift   MetricRange `json:"trunkLift"`
	Pushup90    MetricRange `json:"pushup90"`
	SitAndReach MinBound    `json:"sitAndReach"`
}

// NewCardioRecord builds a cardio record from extracted metrics keyed by
// metric name. Metrics not present in m stay absent.
func NewCardioRecord(m map[string]MetricRange) CardioRecord {
	return CardioRecord{
		Pacer20: m[MetricPacer20],
		BMI:     m[MetricBMI],
	}
}

// NewMuscularRecord builds a muscular record from extracted metrics keyed
// by metric name. Only the lower bound of sitAndReach is kept.
func NewMuscularRecord(m map[string]MetricRange) MuscularRecord {
	return MuscularRecord{
		Curlup:      m[MetricCurlup],
		TrunkLift:   m[MetricTrunkLift],
		Pushup90:    m[MetricPushup90],
		SitAndReach: MinBound{Min: m[MetricSitAndReach].Min},
	}
}

// SexStandards represents the two category mappings of one sex.
type SexStandards struct {
	// Cardio maps age bracket to cardio thresholds.
	Cardio map[AgeBracket]CardioRecord `json:"cardio"`
	// Muscular maps age bracket to muscular thresholds.
	Muscular map[AgeBracket]MuscularRecord `json:"muscular"`
}

// NewSexStandards returns a SexStandards with empty, non-nil mappings so
// that an empty category serializes as {} rather than null.
func NewSexStandards() SexStandards {
	return SexStandards{
		Cardio:   make(map[AgeBracket]CardioRecord),
		Muscular: make(map[AgeBracket]MuscularRecord),
	}
}

// StandardsTable is the document-level container keyed by sex.
type StandardsTable map[Sex]SexStandards
