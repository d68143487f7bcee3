package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/fitstandards-go/pkg/fitstandards/models"
)

var ageBracketPattern = regexp.MustCompile(`^\d+\+?$`)

// ParseAgeBracket returns the age bracket labelled by cell, or false when
// the cell is not an age label (header rows, blank rows, notes).
func ParseAgeBracket(cell string) (models.AgeBracket, bool) {
	s := strings.TrimSpace(cell)
	if !ageBracketPattern.MatchString(s) {
		return "", false
	}
	return models.AgeBracket(s), true
}
