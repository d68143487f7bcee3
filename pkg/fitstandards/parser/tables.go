package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/fitstandards-go/pkg/fitstandards/models"
	"github.com/xuri/excelize/v2"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// DetectTable finds the table-like region of a sheet's rows.
// It returns nil when the non-empty cells are too few or too sparse.
func DetectTable(rows [][]string, params TableDetectionParams) *models.PrintArea {
	if len(rows) == 0 {
		return nil
	}

	// Find the bounding box of non-empty cells
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)

	if nonEmptyCells < params.MinNonemptyCells {
		return nil
	}

	density := float64(nonEmptyCells) / float64(totalCells)
	if density < params.DensityMin {
		return nil
	}

	return &models.PrintArea{
		R1: minRow + 1,
		C1: minCol + 1,
		R2: maxRow + 1,
		C2: maxCol + 1,
	}
}

// AreaRef converts an area to Excel range notation (e.g. "A1:D10").
func AreaRef(area models.PrintArea) string {
	startCell, err := excelize.CoordinatesToCellName(area.C1, area.R1)
	if err != nil {
		return ""
	}
	endCell, err := excelize.CoordinatesToCellName(area.C2, area.R2)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// CropRows restricts rows to an area. Rows outside the area are dropped
// and each kept row starts at the area's first column. A nil area keeps
// every row unchanged.
func CropRows(rows [][]string, area *models.PrintArea) []models.RawRow {
	result := make([]models.RawRow, 0, len(rows))
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1
		if area == nil {
			result = append(result, models.RawRow(row))
			continue
		}
		if rowNum < area.R1 || rowNum > area.R2 {
			continue
		}
		result = append(result, cropColumns(row, area.C1, area.C2))
	}
	return result
}

// cropColumns returns the 1-based inclusive column span of row.
func cropColumns(row []string, c1, c2 int) models.RawRow {
	start := c1 - 1
	if start >= len(row) {
		return models.RawRow{}
	}
	end := c2
	if end > len(row) {
		end = len(row)
	}
	return models.RawRow(row[start:end])
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if strings.TrimSpace(row[colIdx]) != "" {
				count++
			}
		}
	}
	return count
}
