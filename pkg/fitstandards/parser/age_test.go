package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/fitstandards-go/pkg/fitstandards/models"
)

func TestParseAgeBracket(t *testing.T) {
	accepted := map[string]models.AgeBracket{
		"5":    "5",
		"10":   "10",
		"17+":  "17+",
		" 12 ": "12",
		"007":  "007",
	}
	for in, want := range accepted {
		got, ok := ParseAgeBracket(in)
		assert.True(t, ok, "expected %q to be an age bracket", in)
		assert.Equal(t, want, got)
	}

	rejected := []string{"", "Age", "+", "17++", "1 7", "10-12", "12.5", "+17", "17 +", "Boys"}
	for _, in := range rejected {
		_, ok := ParseAgeBracket(in)
		assert.False(t, ok, "expected %q to be rejected", in)
	}
}
