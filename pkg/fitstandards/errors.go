package fitstandards

import (
	"errors"
	"fmt"

	"github.com/ukaji3/fitstandards-go/pkg/fitstandards/models"
)

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates an input file is not a readable workbook or CSV file.
var ErrInvalidFormat = errors.New("invalid input format")

// ErrPageNotFound indicates a page bound to a sex is missing from the input.
var ErrPageNotFound = errors.New("page not found")

// ErrInvalidBinding indicates the page bindings do not cover each sex exactly once.
var ErrInvalidBinding = errors.New("invalid page binding")

// ExtractionError represents an error while reading the page of one sex.
type ExtractionError struct {
	Sex       models.Sex
	Page      string
	Component string // "pages", "csv"
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.Sex == "" {
		return fmt.Sprintf("extraction error in page %q (%s): %v", e.Page, e.Component, e.Err)
	}
	return fmt.Sprintf("extraction error for %s page %q (%s): %v", e.Sex, e.Page, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sex models.Sex, page, component string, err error) *ExtractionError {
	return &ExtractionError{
		Sex:       sex,
		Page:      page,
		Component: component,
		Err:       err,
	}
}
