// Package editor applies builder edits to a BuilderState. Every operation
// works on a clone and returns the edited copy.
package editor

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/codr1/careerbuilder/internal/models"
	"github.com/codr1/careerbuilder/internal/sections"
)

var (
	ErrInvalidPageName = errors.New("invalid page name")
	ErrPageExists      = errors.New("page already exists")
	ErrPageNotFound    = errors.New("page not found")
	ErrLastPage        = errors.New("cannot delete the only page")
)

// PageKey turns a display name into a page key: "About Us!" becomes
// "about-us".
func PageKey(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// AddPage appends an empty page named name and makes it active. The name is
// kept as the page label when it differs from the key's default label.
func AddPage(state models.BuilderState, name string) (models.BuilderState, string, error) {
	key := PageKey(name)
	if key == "" {
		return state, "", fmt.Errorf("%w: %q", ErrInvalidPageName, name)
	}
	if state.Pages.Has(key) {
		return state, "", fmt.Errorf("%w: %s", ErrPageExists, key)
	}

	out := state.Clone()
	out.Pages.Set(key, nil)
	if label := strings.TrimSpace(name); label != models.FormatPageKey(key) {
		if out.PageLabels == nil {
			out.PageLabels = map[string]string{}
		}
		out.PageLabels[key] = label
	}
	out.ActivePage = key
	return out, key, nil
}

// DeletePage removes a page and its label. Deleting the active page
// activates the first remaining page.
func DeletePage(state models.BuilderState, key string) (models.BuilderState, error) {
	if !state.Pages.Has(key) {
		return state, fmt.Errorf("%w: %s", ErrPageNotFound, key)
	}
	if state.Pages.Len() == 1 {
		return state, ErrLastPage
	}

	out := state.Clone()
	out.Pages.Delete(key)
	delete(out.PageLabels, key)
	if out.ActivePage == key {
		out.ActivePage, _ = out.Pages.First()
	}
	return out, nil
}

func ActivatePage(state models.BuilderState, key string) (models.BuilderState, error) {
	if !state.Pages.Has(key) {
		return state, fmt.Errorf("%w: %s", ErrPageNotFound, key)
	}
	out := state.Clone()
	out.ActivePage = key
	return out, nil
}

// AddSection, RemoveSection and MoveSection edit the list CurrentSections
// returns for page, so single-page mode edits the flat order.
func AddSection(state models.BuilderState, page string, id models.SectionID) (models.BuilderState, error) {
	return editSections(state, page, func(current []models.SectionID) ([]models.SectionID, error) {
		return sections.Add(current, id)
	})
}

func RemoveSection(state models.BuilderState, page string, id models.SectionID) (models.BuilderState, error) {
	return editSections(state, page, func(current []models.SectionID) ([]models.SectionID, error) {
		return sections.Remove(current, id)
	})
}

func MoveSection(state models.BuilderState, page string, from, to int) (models.BuilderState, error) {
	return editSections(state, page, func(current []models.SectionID) ([]models.SectionID, error) {
		return sections.Move(current, from, to)
	})
}

func editSections(state models.BuilderState, page string, edit func([]models.SectionID) ([]models.SectionID, error)) (models.BuilderState, error) {
	if !state.Pages.Has(page) {
		return state, fmt.Errorf("%w: %s", ErrPageNotFound, page)
	}
	updated, err := edit(state.CurrentSections(page))
	if err != nil {
		return state, err
	}
	out := state.Clone()
	out.SetCurrentSections(page, updated)
	return out, nil
}
