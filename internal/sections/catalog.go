// Package sections is the fixed library of page sections: catalog metadata,
// render templates and the operations the builder applies to a page's
// section list.
package sections

import (
	"errors"
	"fmt"

	"github.com/codr1/careerbuilder/internal/models"
)

var (
	ErrRequired        = errors.New("section is required")
	ErrUnknownSection  = errors.New("unknown section")
	ErrDuplicate       = errors.New("section already on page")
	ErrIndexOutOfRange = errors.New("section index out of range")
)

const GenericIcon = "square"

// Meta is the display record for one catalog entry.
type Meta struct {
	ID          models.SectionID `json:"id"`
	Label       string           `json:"label"`
	Icon        string           `json:"icon"`
	Description string           `json:"description"`
	Required    bool             `json:"required"`
}

var catalog = []Meta{
	{ID: models.SectionHero, Label: "Hero", Icon: "sparkles", Description: "Headline banner with call to action"},
	{ID: models.SectionAbout, Label: "About Us", Icon: "building", Description: "Company story and mission"},
	{ID: models.SectionBenefits, Label: "Benefits", Icon: "gift", Description: "Perks and benefits grid"},
	{ID: models.SectionLocations, Label: "Locations", Icon: "map-pin", Description: "Offices and remote hubs"},
	{ID: models.SectionHiring, Label: "Hiring Process", Icon: "list-checks", Description: "Steps from application to offer"},
	{ID: models.SectionFAQ, Label: "FAQ", Icon: "help-circle", Description: "Frequently asked questions"},
	{ID: models.SectionDEI, Label: "Diversity & Inclusion", Icon: "heart", Description: "Commitments and employee groups"},
	{ID: models.SectionVideos, Label: "Videos", Icon: "video", Description: "Life at the company in video"},
	{ID: models.SectionTestimonials, Label: "Testimonials", Icon: "quote", Description: "Quotes from employees"},
	{ID: models.SectionTeam, Label: "Team", Icon: "users", Description: "Meet the team"},
	{ID: models.SectionJobs, Label: "Open Positions", Icon: "briefcase", Description: "Current job openings", Required: true},
	{ID: models.SectionAlerts, Label: "Job Alerts", Icon: "bell", Description: "Sign up for new job notifications"},
	{ID: models.SectionApply, Label: "Apply", Icon: "send", Description: "General application call to action"},
	{ID: models.SectionAnalytics, Label: "Analytics", Icon: "bar-chart", Description: "Tracking snippet placeholder"},
	{ID: models.SectionFooter, Label: "Footer", Icon: "layout", Description: "Links and social profiles"},
}

// Catalog returns every section in canonical order.
func Catalog() []Meta {
	return append([]Meta{}, catalog...)
}

func Lookup(id models.SectionID) (Meta, bool) {
	for _, meta := range catalog {
		if meta.ID == id {
			return meta, true
		}
	}
	return Meta{}, false
}

// MetaOrGeneric never fails: unknown ids get the generic icon and their raw id
// as label.
func MetaOrGeneric(id models.SectionID) Meta {
	if meta, ok := Lookup(id); ok {
		return meta
	}
	return Meta{ID: id, Label: string(id), Icon: GenericIcon}
}

func IsRequired(id models.SectionID) bool {
	meta, ok := Lookup(id)
	return ok && meta.Required
}

// Addable returns catalog entries not yet on the page, in catalog order.
func Addable(current []models.SectionID) []Meta {
	present := make(map[models.SectionID]bool, len(current))
	for _, id := range current {
		present[id] = true
	}
	out := make([]Meta, 0, len(catalog))
	for _, meta := range catalog {
		if !present[meta.ID] {
			out = append(out, meta)
		}
	}
	return out
}

// Add appends a section. The footer stays last when present.
func Add(current []models.SectionID, id models.SectionID) ([]models.SectionID, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, id)
	}
	for _, existing := range current {
		if existing == id {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, id)
		}
	}

	out := make([]models.SectionID, 0, len(current)+1)
	out = append(out, current...)
	if n := len(out); n > 0 && out[n-1] == models.SectionFooter && id != models.SectionFooter {
		out = append(out[:n-1], id, models.SectionFooter)
		return out, nil
	}
	return append(out, id), nil
}

// Remove drops a section. Required sections are refused.
func Remove(current []models.SectionID, id models.SectionID) ([]models.SectionID, error) {
	if IsRequired(id) {
		return nil, fmt.Errorf("%w: %s", ErrRequired, id)
	}
	out := make([]models.SectionID, 0, len(current))
	for _, existing := range current {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out, nil
}

// Move relocates the section at index from to index to.
func Move(current []models.SectionID, from, to int) ([]models.SectionID, error) {
	if from < 0 || from >= len(current) || to < 0 || to >= len(current) {
		return nil, fmt.Errorf("%w: move %d to %d of %d", ErrIndexOutOfRange, from, to, len(current))
	}
	out := append([]models.SectionID{}, current...)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]models.SectionID{moved}, out[to:]...)...)
	return out, nil
}
