// Package output serializes extracted standards to JSON.
package output

import (
	"encoding/json"

	"github.com/ukaji3/fitstandards-go/pkg/fitstandards/models"
)

// ToJSON serializes the standards table. Absent bounds are written as
// null and map keys are sorted, so output is deterministic.
func ToJSON(table models.StandardsTable, pretty bool) ([]byte, error) {
	return marshal(table, pretty)
}

// SexToJSON serializes the standards of a single sex.
func SexToJSON(s *models.SexStandards, pretty bool) ([]byte, error) {
	return marshal(s, pretty)
}

// FromJSON parses a standards table previously written by ToJSON.
func FromJSON(data []byte) (models.StandardsTable, error) {
	var table models.StandardsTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, err
	}
	return table, nil
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
