package public

import (
	"context"

	"github.com/a-h/templ"

	"github.com/codr1/careerbuilder/internal/models"
	"github.com/codr1/careerbuilder/internal/sections"
	"github.com/codr1/careerbuilder/internal/style"
	"github.com/codr1/careerbuilder/internal/templates/markup"
)

// CareerPage renders the navigation chrome and the page's sections.
func CareerPage(data PageData) templ.Component {
	return markup.Func(func(ctx context.Context, m *markup.Writer) {
		resolved := data.Style()
		props := sections.Props{
			Style:  resolved,
			Logo:   data.State.Logo,
			FAQURL: data.FAQURL,
		}
		links := data.NavLinks()

		m.Raw(`<div class="cb-page">`)
		if data.ShowHeader() {
			header(m, data, resolved, links)
		}
		m.Raw(`<div class="cb-page-body" style="display:flex;">`)
		if data.ShowSidebar() {
			sidebar(m, resolved, links)
		}
		m.Raw(`<main style="flex:1;min-width:0;">`)
		m.Component(ctx, sections.RenderAll(data.State.CurrentSections(data.PageKey), props))
		m.Raw(`</main></div></div>`)
	})
}

func header(m *markup.Writer, data PageData, s style.Resolved, links []NavLink) {
	fg := models.ReadableTextColor(s.Colors.Secondary)
	m.Rawf(`<header class="cb-nav-header" style="display:flex;align-items:center;gap:24px;padding:16px 24px;background:%s;color:%s;">`,
		s.Colors.Secondary, fg)
	if data.State.Logo != "" {
		m.Raw(`<img alt="Company logo" style="height:32px;" src="`)
		m.URL(data.State.Logo)
		m.Raw(`">`)
	}
	m.Raw(`<nav style="display:flex;gap:16px;">`)
	for _, link := range links {
		navLink(m, link, s, fg)
	}
	m.Raw(`</nav></header>`)
}

func sidebar(m *markup.Writer, s style.Resolved, links []NavLink) {
	m.Raw(`<aside class="cb-nav-sidebar" style="width:220px;flex-shrink:0;padding:24px 16px;border-right:1px solid #e5e7eb;background:#f9fafb;">`)
	m.Raw(`<nav style="display:flex;flex-direction:column;gap:8px;">`)
	for _, link := range links {
		navLink(m, link, s, s.Colors.Text)
	}
	m.Raw(`</nav></aside>`)
}

func navLink(m *markup.Writer, link NavLink, s style.Resolved, color string) {
	weight := 400
	if link.Active {
		weight = 700
		color = s.Colors.Accent
	}
	m.Rawf(`<a class="cb-nav-link" style="font-size:%dpx;font-weight:%d;color:%s;text-decoration:none;" href="`, s.NavLinkSize, weight, color)
	m.URL(link.Href)
	m.Raw(`"`)
	if link.Active {
		m.Raw(` aria-current="page"`)
	}
	m.Raw(`>`)
	m.Text(link.Label)
	m.Raw(`</a>`)
}

// Fallback is the message shown when there is nothing to render.
func Fallback(title, message string) templ.Component {
	return markup.Func(func(_ context.Context, m *markup.Writer) {
		m.Raw(`<div class="cb-fallback" style="min-height:100vh;display:flex;flex-direction:column;align-items:center;justify-content:center;gap:12px;text-align:center;padding:24px;">`)
		m.Raw(`<h1 style="margin:0;">`)
		m.Text(title)
		m.Raw(`</h1><p style="margin:0;color:#6b7280;">`)
		m.Text(message)
		m.Raw(`</p><a href="/builder">Open the builder</a></div>`)
	})
}
