// Package parser turns raw standards table rows into metric records.
package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/fitstandards-go/pkg/fitstandards/models"
)

// NormalizeCell converts one raw cell into a NormalizedCell.
// Empty cells and values that do not parse as numbers become absent.
// Cells containing a colon are kept as range strings and not parsed.
func NormalizeCell(raw string) models.NormalizedCell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return models.Absent()
	}
	if strings.Contains(s, ":") {
		return models.RangeCell(s)
	}
	return parseValue(s)
}

// NormalizeRow normalizes every cell of a row, preserving positions.
func NormalizeRow(cells []string) []models.NormalizedCell {
	out := make([]models.NormalizedCell, len(cells))
	for i, c := range cells {
		out[i] = NormalizeCell(c)
	}
	return out
}

// parseValue attempts to parse a string value as a number.
// Non-finite values are treated as absent since they cannot be encoded.
func parseValue(s string) models.NormalizedCell {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Num(float64(i))
	}
	// Try float, decimal notation only
	if isHexLiteral(s) {
		return models.Absent()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return models.Absent()
	}
	return models.Num(f)
}

func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// numericOnly drops every non-numeric cell, keeping column order.
func numericOnly(values []models.NormalizedCell) []models.NormalizedCell {
	var out []models.NormalizedCell
	for _, v := range values {
		if v.Kind == models.CellNumber {
			out = append(out, v)
		}
	}
	return out
}

// cellAt returns values[i], or the absent cell when i is out of range.
func cellAt(values []models.NormalizedCell, i int) models.NormalizedCell {
	if i < 0 || i >= len(values) {
		return models.Absent()
	}
	return values[i]
}
