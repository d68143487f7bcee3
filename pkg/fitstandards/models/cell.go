// Package models defines data structures for standards extraction.
package models

// CellKind classifies a normalized cell.
type CellKind int

const (
	// CellAbsent is an empty or unparseable cell.
	CellAbsent CellKind = iota
	// CellNumber is a cell holding a finite number.
	CellNumber
	// CellRange is a colon-delimited range such as "19:25".
	CellRange
)

// NormalizedCell is a raw cell reduced to a number, a range string or
// nothing.
type NormalizedCell struct {
	// Kind tells which of the other fields is meaningful.
	Kind CellKind
	// Number is set when Kind is CellNumber.
	Number float64
	// Range is set when Kind is CellRange.
	Range string
}

// Absent returns the absent cell.
func Absent() NormalizedCell { return NormalizedCell{} }

// Num returns a numeric cell.
func Num(v float64) NormalizedCell { return NormalizedCell{Kind: CellNumber, Number: v} }

// RangeCell returns a range-string cell.
func RangeCell(s string) NormalizedCell { return NormalizedCell{Kind: CellRange, Range: s} }

// IsRange reports whether the cell is a colon-delimited range string.
func (c NormalizedCell) IsRange() bool { return c.Kind == CellRange }

// Float returns the numeric value and whether the cell is numeric.
// Range strings are not numeric.
func (c NormalizedCell) Float() (float64, bool) {
	if c.Kind != CellNumber {
		return 0, false
	}
	return c.Number, true
}

// Ptr returns a pointer to the numeric value, or nil when the cell is not
// numeric.
func (c NormalizedCell) Ptr() *float64 {
	v, ok := c.Float()
	if !ok {
		return nil
	}
	return &v
}
