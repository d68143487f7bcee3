package parser

import (
	"strings"

	"github.com/ukaji3/fitstandards-go/pkg/fitstandards/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// ExtractTableRegions returns the table region of every sheet that
// defines a print area. A sheet with several print areas uses the first.
func ExtractTableRegions(f *excelize.File) map[string]models.PrintArea {
	result := make(map[string]models.PrintArea)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		sheetName, area, ok := parsePrintAreaReference(dn.RefersTo)
		if !ok {
			continue
		}
		if sheetName == "" {
			sheetName = dn.Scope
		}
		if _, seen := result[sheetName]; !seen && sheetName != "" {
			result[sheetName] = area
		}
	}

	return result
}

// parsePrintAreaReference parses the first range of a print area reference.
// Format: 'Sheet Name'!$A$1:$D$10 or SheetName!$A$1:$D$10,SheetName!$F$1:$G$4
func parsePrintAreaReference(ref string) (string, models.PrintArea, bool) {
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		sheet := strings.Trim(part[:idx], "'")
		if area, ok := parseRangeToArea(part[idx+1:]); ok {
			return sheet, area, true
		}
	}
	return "", models.PrintArea{}, false
}

// parseRangeToArea parses a range string like $A$1:$D$10.
func parseRangeToArea(rangeStr string) (models.PrintArea, bool) {
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if len(parts) != 2 {
		return models.PrintArea{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.PrintArea{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.PrintArea{}, false
	}

	return models.PrintArea{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, true
}
