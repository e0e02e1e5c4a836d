package snapshot

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/codr1/careerbuilder/internal/models"
	"github.com/codr1/careerbuilder/internal/sections"
)

// FieldError is one strict-validation failure, named by JSON path.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v, err := newValidator()
		if err != nil {
			panic(fmt.Sprintf("snapshot validator setup: %v", err))
		}
		validateInst = v
	})
	return validateInst
}

func newValidator() (*validator.Validate, error) {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("hex6", func(fl validator.FieldLevel) bool {
		return models.IsHexColor(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("register hex6: %w", err)
	}
	return v, nil
}

// Validate checks every field of a snapshot, not just the structural ones
// Normalize repairs. It is stricter than anything the renderers need and is
// only applied to snapshots about to be published. The returned error joins
// FieldErrors.
func Validate(state models.BuilderState) error {
	var errs []error

	if err := validatorInstance().Struct(state); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) {
			for _, fe := range ves {
				errs = append(errs, FieldError{
					Field:  jsonPath(fe.Namespace()),
					Reason: fmt.Sprintf("failed validation for tag '%s'", fe.Tag()),
				})
			}
		} else {
			errs = append(errs, err)
		}
	}

	if err := state.Colors.Validate(); err != nil {
		errs = append(errs, FieldError{Field: "colors", Reason: err.Error()})
	}

	if state.Pages.Len() == 0 {
		errs = append(errs, FieldError{Field: "pages", Reason: "must contain at least one page"})
	}
	if !state.Pages.Has(state.ActivePage) {
		errs = append(errs, FieldError{Field: "activePage", Reason: fmt.Sprintf("%q is not a page", state.ActivePage)})
	}
	jobsListed := false
	for _, key := range state.Pages.Keys() {
		if strings.TrimSpace(key) == "" {
			errs = append(errs, FieldError{Field: "pages", Reason: "page keys must not be blank"})
			continue
		}
		list, _ := state.Pages.Get(key)
		errs = append(errs, validateSectionList("pages."+key, list)...)
		jobsListed = jobsListed || containsRequired(list)
	}
	if state.SinglePageSectionOrder != nil {
		errs = append(errs, validateSectionList("singlePageSectionOrder", state.SinglePageSectionOrder)...)
	}

	rendered := "pages"
	if !state.MultiPageLayout {
		rendered = "pages." + state.ActivePage
		if state.SinglePageSectionOrder != nil {
			rendered = "singlePageSectionOrder"
		}
		jobsListed = containsRequired(state.CurrentSections(state.ActivePage))
	}
	if !jobsListed {
		errs = append(errs, FieldError{Field: rendered, Reason: fmt.Sprintf("must include %q", models.SectionJobs)})
	}

	return errors.Join(errs...)
}

func validateSectionList(field string, list []models.SectionID) []error {
	var errs []error
	seen := make(map[models.SectionID]bool, len(list))
	for _, id := range list {
		if !id.Valid() {
			errs = append(errs, FieldError{Field: field, Reason: fmt.Sprintf("unknown section %q", id)})
			continue
		}
		if seen[id] {
			errs = append(errs, FieldError{Field: field, Reason: fmt.Sprintf("duplicate section %q", id)})
		}
		seen[id] = true
	}
	return errs
}

func containsRequired(list []models.SectionID) bool {
	for _, id := range list {
		if sections.IsRequired(id) {
			return true
		}
	}
	return false
}

// jsonPath drops the root type name: "BuilderState.layout.sectionPadding"
// becomes "layout.sectionPadding".
func jsonPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
