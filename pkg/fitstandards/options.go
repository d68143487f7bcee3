// Package fitstandards extracts fitness assessment standards tables into
// a structured record keyed by sex, category and age bracket.
package fitstandards

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ukaji3/fitstandards-go/pkg/fitstandards/models"
	"github.com/ukaji3/fitstandards-go/pkg/fitstandards/parser"
)

var validate = validator.New()

// PageBinding assigns one page of the input to a sex.
type PageBinding struct {
	// Sex is the output key the page's standards are stored under.
	Sex models.Sex `yaml:"sex" validate:"required,oneof=boys girls"`
	// Page is a 1-based page position ("2") or a sheet/file name ("Girls").
	Page string `yaml:"page" validate:"required"`
}

// DefaultBindings binds the first page to boys and the second to girls.
func DefaultBindings() []PageBinding {
	return []PageBinding{
		{Sex: models.SexBoys, Page: "1"},
		{Sex: models.SexGirls, Page: "2"},
	}
}

// BindingsFromMap converts a sex→page map (as found in config files and
// flags) into bindings ordered by sex.
func BindingsFromMap(m map[string]string) ([]PageBinding, error) {
	for k := range m {
		if !models.Sex(k).Valid() {
			return nil, fmt.Errorf("%w: unknown sex %q", ErrInvalidBinding, k)
		}
	}

	var bindings []PageBinding
	for _, sex := range models.Sexes {
		if ref, ok := m[string(sex)]; ok {
			bindings = append(bindings, PageBinding{Sex: sex, Page: ref})
		}
	}
	return bindings, ValidateBindings(bindings)
}

// ValidateBindings checks that every sex is bound to exactly one page.
func ValidateBindings(bindings []PageBinding) error {
	seen := make(map[models.Sex]bool, len(bindings))
	for _, b := range bindings {
		if err := validate.Struct(b); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidBinding, err)
		}
		if seen[b.Sex] {
			return fmt.Errorf("%w: %s bound more than once", ErrInvalidBinding, b.Sex)
		}
		seen[b.Sex] = true
	}
	for _, sex := range models.Sexes {
		if !seen[sex] {
			return fmt.Errorf("%w: no page bound to %s", ErrInvalidBinding, sex)
		}
	}
	return nil
}

// Options configures extraction behavior.
type Options struct {
	// Pages binds input pages to sexes. If empty, DefaultBindings is used.
	Pages []PageBinding
	// UsePrintAreas restricts workbook sheets to their print area.
	// If nil, defaults to true.
	UsePrintAreas *bool
	// DetectTables crops workbook sheets to the detected table region
	// when no print area applies. If nil, defaults to true.
	DetectTables *bool
	// TableParams tunes table detection. Zero value means DefaultTableParams.
	TableParams parser.TableDetectionParams
	// Logger receives progress and skipped-row diagnostics. If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Pages:       DefaultBindings(),
		TableParams: parser.DefaultTableParams(),
	}
}

// ShouldUsePrintAreas returns whether sheet print areas bound the table.
func (o Options) ShouldUsePrintAreas() bool {
	if o.UsePrintAreas != nil {
		return *o.UsePrintAreas
	}
	return true
}

// ShouldDetectTables returns whether the table region is detected.
func (o Options) ShouldDetectTables() bool {
	if o.DetectTables != nil {
		return *o.DetectTables
	}
	return true
}

func (o Options) bindings() []PageBinding {
	if len(o.Pages) == 0 {
		return DefaultBindings()
	}
	return o.Pages
}

func (o Options) tableParams() parser.TableDetectionParams {
	if o.TableParams == (parser.TableDetectionParams{}) {
		return parser.DefaultTableParams()
	}
	return o.TableParams
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// resolvePage finds the page a reference names. An all-digit reference
// is a 1-based position; when out of range it is tried as a name.
func resolvePage(pages []models.Page, ref string) (int, bool) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(pages) && isDigits(ref) {
		return n - 1, true
	}
	for i, p := range pages {
		if p.Name == ref {
			return i, true
		}
	}
	return -1, false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
