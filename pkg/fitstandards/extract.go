package fitstandards

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/fitstandards-go/pkg/fitstandards/models"
	"github.com/ukaji3/fitstandards-go/pkg/fitstandards/parser"
	"github.com/xuri/excelize/v2"
)

// Diagnostic describes a row that produced no record.
type Diagnostic struct {
	Sex    models.Sex        `json:"sex"`
	Page   string            `json:"page"`
	Row    int               `json:"row"` // 1-based within the page
	Age    models.AgeBracket `json:"age,omitempty"`
	Reason parser.SkipReason `json:"reason"`
}

// Result is the outcome of one extraction run.
type Result struct {
	Table       models.StandardsTable
	Diagnostics []Diagnostic
}

// Extract extracts the standards table from input files: either a
// single workbook (one sheet per page) or one CSV file per page.
func Extract(paths []string, opts Options) (*Result, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no input files", ErrFileNotFound)
	}
	if len(paths) == 1 && isWorkbook(paths[0]) {
		return ExtractWorkbook(paths[0], opts)
	}
	for _, p := range paths {
		if !strings.EqualFold(filepath.Ext(p), ".csv") {
			return nil, fmt.Errorf("%w: %s (expected one .xlsx workbook or .csv pages)", ErrInvalidFormat, p)
		}
	}
	return ExtractCSV(paths, opts)
}

// ExtractWorkbook extracts the standards table from an Excel workbook.
func ExtractWorkbook(path string, opts Options) (*Result, error) {
	if err := checkExists(path); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	logger := opts.logger()

	var regions map[string]models.PrintArea
	if opts.ShouldUsePrintAreas() {
		regions = parser.ExtractTableRegions(f)
	}

	var pages []models.Page
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			// Continue with an empty page; a bound page still resolves
			logger.Warn("failed to read sheet rows", "sheet", sheetName, "error", err)
			rows = nil
		}

		var region *models.PrintArea
		if area, ok := regions[sheetName]; ok {
			region = &area
			logger.Debug("using print area", "sheet", sheetName, "range", parser.AreaRef(area))
		} else if opts.ShouldDetectTables() {
			region = parser.DetectTable(rows, opts.tableParams())
			if region != nil {
				logger.Debug("detected table", "sheet", sheetName, "range", parser.AreaRef(*region))
			}
		}

		pages = append(pages, models.Page{
			Name: sheetName,
			Rows: parser.CropRows(rows, region),
		})
	}

	return Build(pages, opts)
}

// ExtractCSV extracts the standards table from CSV files, one per page.
// Page names are the file names without extension.
func ExtractCSV(paths []string, opts Options) (*Result, error) {
	pages := make([]models.Page, 0, len(paths))
	for _, p := range paths {
		page, err := readCSVPage(p)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return Build(pages, opts)
}

func readCSVPage(path string) (models.Page, error) {
	if err := checkExists(path); err != nil {
		return models.Page{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return models.Page{}, err
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	page, err := parser.ReadCSV(f, name)
	if err != nil {
		return models.Page{}, NewExtractionError("", name, "csv", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	return page, nil
}

// Build binds pages to sexes and extracts each bound page. Every sex must
// resolve to its own page; a missing page is fatal.
func Build(pages []models.Page, opts Options) (*Result, error) {
	bindings := opts.bindings()
	if err := ValidateBindings(bindings); err != nil {
		return nil, err
	}

	logger := opts.logger()
	result := &Result{Table: make(models.StandardsTable, len(bindings))}
	boundTo := make(map[int]models.Sex, len(bindings))

	for _, b := range bindings {
		idx, ok := resolvePage(pages, b.Page)
		if !ok {
			return nil, NewExtractionError(b.Sex, b.Page, "pages", ErrPageNotFound)
		}
		page := pages[idx]
		if other, dup := boundTo[idx]; dup {
			return nil, NewExtractionError(b.Sex, b.Page, "pages",
				fmt.Errorf("%w: page %q is already bound to %s", ErrInvalidBinding, page.Name, other))
		}
		boundTo[idx] = b.Sex

		pr := parser.ParsePage(page.Rows)
		result.Table[b.Sex] = pr.Standards

		for _, r := range pr.Skipped() {
			d := Diagnostic{
				Sex:    b.Sex,
				Page:   page.Name,
				Row:    r.Index + 1,
				Age:    r.Age,
				Reason: r.Skip,
			}
			result.Diagnostics = append(result.Diagnostics, d)
			if r.Skip != parser.SkipNotDataRow {
				logger.Debug("skipped row", "sex", d.Sex, "page", d.Page, "row", d.Row, "age", d.Age, "reason", d.Reason)
			}
		}

		logger.Info("page extracted",
			"sex", b.Sex,
			"page", page.Name,
			"cardio", len(pr.Standards.Cardio),
			"muscular", len(pr.Standards.Muscular))
	}

	return result, nil
}

func checkExists(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return nil
}

func isWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return true
	}
	return false
}
