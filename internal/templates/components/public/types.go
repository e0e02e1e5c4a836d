package public

import (
	"github.com/codr1/careerbuilder/internal/models"
	"github.com/codr1/careerbuilder/internal/style"
)

// PageData is what the careers page needs to render one page of a snapshot.
type PageData struct {
	State   models.BuilderState
	PageKey string
	// BasePath prefixes page links, e.g. "/p" links to "/p/{page}".
	BasePath string
	// FAQURL enables the interactive FAQ accordion when set.
	FAQURL string
}

type NavLink struct {
	Key    string
	Label  string
	Href   string
	Active bool
}

func (d PageData) Style() style.Resolved {
	return style.Resolve(d.State)
}

// NavLinks lists every page in pages order with its display label.
func (d PageData) NavLinks() []NavLink {
	keys := d.State.Pages.Keys()
	links := make([]NavLink, 0, len(keys))
	for _, key := range keys {
		links = append(links, NavLink{
			Key:    key,
			Label:  d.State.PageLabel(key),
			Href:   d.BasePath + "/" + key,
			Active: key == d.PageKey,
		})
	}
	return links
}

// ShowHeader and ShowSidebar only apply in multi-page mode.
func (d PageData) ShowHeader() bool {
	return d.State.MultiPageLayout && d.State.Navigation.ShowsHeader()
}

func (d PageData) ShowSidebar() bool {
	return d.State.MultiPageLayout && d.State.Navigation.ShowsSidebar()
}

// FAQ fragment sources. A fragment must read the same snapshot as the page
// it was clicked on.
const (
	FAQSourcePublished = "published"
	FAQSourceDirect    = "direct"
	FAQSourceBuilder   = "builder"
)

const faqPath = "/api/v1/sections/faq/"

// FAQURL returns the FAQ accordion fragment endpoint for a source.
func FAQURL(source string) string {
	return faqPath + source
}
