package sections

import (
	"context"
	"fmt"

	"github.com/a-h/templ"

	"github.com/codr1/careerbuilder/internal/models"
	"github.com/codr1/careerbuilder/internal/style"
	"github.com/codr1/careerbuilder/internal/templates/markup"
)

// Props is what every section template receives.
type Props struct {
	Style style.Resolved
	Logo  string
	FAQ   Accordion
	// FAQURL is the fragment endpoint FAQ buttons call; empty renders a
	// static accordion.
	FAQURL string
}

type template func(ctx context.Context, m *markup.Writer, p Props)

var templates = map[models.SectionID]template{
	models.SectionHero:         renderHero,
	models.SectionAbout:        renderAbout,
	models.SectionBenefits:     renderBenefits,
	models.SectionLocations:    renderLocations,
	models.SectionHiring:       renderHiring,
	models.SectionFAQ:          renderFAQ,
	models.SectionDEI:          renderDEI,
	models.SectionVideos:       renderVideos,
	models.SectionTestimonials: renderTestimonials,
	models.SectionTeam:         renderTeam,
	models.SectionJobs:         renderJobs,
	models.SectionAlerts:       renderAlerts,
	models.SectionApply:        renderApply,
	models.SectionAnalytics:    renderAnalytics,
	models.SectionFooter:       renderFooter,
}

// Render returns the component for a section. Unknown ids render nothing.
func Render(id models.SectionID, p Props) templ.Component {
	render, ok := templates[id]
	if !ok {
		return templ.NopComponent
	}
	return markup.Func(func(ctx context.Context, m *markup.Writer) {
		render(ctx, m, p)
	})
}

// RenderAll renders sections in order.
func RenderAll(ids []models.SectionID, p Props) templ.Component {
	return markup.Func(func(ctx context.Context, m *markup.Writer) {
		for _, id := range ids {
			m.Component(ctx, Render(id, p))
		}
	})
}

func open(m *markup.Writer, id models.SectionID, p Props, background string) {
	class := "cb-section"
	if p.Style.AnimationClass != "" {
		class += " " + p.Style.AnimationClass
	}
	if p.Style.HoverEffects {
		class += " cb-hover"
	}
	m.Rawf(`<section id="section-%s" class="%s" style="padding:%dpx 24px;background:%s;">`,
		id, class, p.Style.Padding, background)
	m.Rawf(`<div class="cb-container" style="max-width:%s;margin:0 auto;">`, p.Style.ContentWidth)
}

func closeSection(m *markup.Writer) {
	m.Raw(`</div></section>`)
}

func heading(m *markup.Writer, p Props, level int, text string) {
	size := p.Style.Fonts.H2
	if level == 3 {
		size = p.Style.Fonts.H3
	}
	m.Rawf(`<h%d style="font-family:'%s',sans-serif;font-size:%dpx;color:%s;margin:0 0 16px;">`,
		level, p.Style.HeadingFont, size, p.Style.Colors.Heading)
	m.Text(text)
	m.Rawf(`</h%d>`, level)
}

func paragraph(m *markup.Writer, p Props, text string) {
	m.Rawf(`<p style="font-family:'%s',sans-serif;font-size:%dpx;color:%s;line-height:1.6;">`,
		p.Style.BodyFont, p.Style.Fonts.Body, p.Style.Colors.Text)
	m.Text(text)
	m.Raw(`</p>`)
}

func cardStyle(p Props) string {
	return fmt.Sprintf("background:#ffffff;border-radius:%dpx;box-shadow:%s;padding:24px;", p.Style.Radius, p.Style.Shadow)
}

func cardGrid(m *markup.Writer, p Props, cards []card, columns int) {
	m.Rawf(`<div class="cb-grid" style="display:grid;grid-template-columns:repeat(auto-fit,minmax(%dpx,1fr));gap:24px;">`, 960/columns-24)
	for _, c := range cards {
		m.Rawf(`<div class="cb-card" style="%s">`, cardStyle(p))
		m.Rawf(`<div class="cb-card-icon" style="font-size:28px;color:%s;">`, p.Style.Colors.Accent)
		m.Text(c.Icon)
		m.Raw(`</div>`)
		heading(m, p, 3, c.Title)
		paragraph(m, p, c.Body)
		m.Raw(`</div>`)
	}
	m.Raw(`</div>`)
}

func button(m *markup.Writer, css string, href string, label string) {
	m.Rawf(`<a class="cb-button" style="%sdisplay:inline-block;padding:12px 24px;text-decoration:none;font-weight:600;" href="`, css)
	m.URL(href)
	m.Raw(`">`)
	m.Text(label)
	m.Raw(`</a>`)
}

func renderHero(_ context.Context, m *markup.Writer, p Props) {
	fg := models.ReadableTextColor(p.Style.Colors.Primary)
	open(m, models.SectionHero, p, p.Style.HeroBackground)
	if p.Logo != "" {
		m.Raw(`<img class="cb-logo" alt="Company logo" style="height:48px;margin-bottom:24px;" src="`)
		m.URL(p.Logo)
		m.Raw(`">`)
	}
	m.Rawf(`<h1 style="font-family:'%s',sans-serif;font-size:%dpx;color:%s;margin:0 0 16px;">Build what matters with us</h1>`,
		p.Style.HeadingFont, p.Style.Fonts.H1, fg)
	m.Rawf(`<p style="font-family:'%s',sans-serif;font-size:%dpx;color:%s;max-width:640px;">We're a team of builders, thinkers and doers shaping the future of work. Find your place here.</p>`,
		p.Style.BodyFont, p.Style.Fonts.Body+2, fg)
	m.Raw(`<div style="display:flex;gap:12px;margin-top:24px;">`)
	button(m, p.Style.Button.Primary, "#section-jobs", "View open roles")
	button(m, p.Style.Button.Secondary, "#section-about", "Learn more")
	m.Raw(`</div>`)
	closeSection(m)
}

func renderAbout(_ context.Context, m *markup.Writer, p Props) {
	open(m, models.SectionAbout, p, "#ffffff")
	heading(m, p, 2, "About us")
	paragraph(m, p, "Founded in 2015, we help growing companies hire, onboard and support their people. Today more than 400 teammates across three continents work on products used by thousands of businesses.")
	paragraph(m, p, "Our mission is simple: make work better for everyone, starting with our own team.")
	closeSection(m)
}

func renderBenefits(_ context.Context, m *markup.Writer, p Props) {
	open(m, models.SectionBenefits, p, "#f9fafb")
	heading(m, p, 2, "Benefits & perks")
	cardGrid(m, p, benefits, 3)
	closeSection(m)
}

func renderLocations(_ context.Context, m *markup.Writer, p Props) {
	open(m, models.SectionLocations, p, "#ffffff")
	heading(m, p, 2, "Where we work")
	cardGrid(m, p, locations, 4)
	closeSection(m)
}

func renderHiring(_ context.Context, m *markup.Writer, p Props) {
	open(m, models.SectionHiring, p, "#f9fafb")
	heading(m, p, 2, "Our hiring process")
	cardGrid(m, p, hiringSteps, 4)
	closeSection(m)
}

func renderFAQ(_ context.Context, m *markup.Writer, p Props) {
	open(m, models.SectionFAQ, p, "#ffffff")
	heading(m, p, 2, "Frequently asked questions")
	for i, item := range sampleFAQ {
		m.Rawf(`<div class="cb-faq-item" style="%smargin-bottom:12px;">`, cardStyle(p))
		m.Rawf(`<button type="button" class="cb-faq-question" aria-expanded="%t" style="display:flex;justify-content:space-between;width:100%%;background:none;border:none;cursor:pointer;font-size:%dpx;color:%s;"`,
			p.FAQ.IsOpen(i), p.Style.Fonts.Body+2, p.Style.Colors.Heading)
		if p.FAQURL != "" {
			m.Raw(` hx-get="`)
			m.Text(fmt.Sprintf("%s?current=%d&toggle=%d", p.FAQURL, p.FAQ.Open(), i))
			m.Raw(`" hx-target="#section-faq" hx-swap="outerHTML"`)
		}
		m.Raw(`><span>`)
		m.Text(item.Question)
		m.Rawf(`</span><span class="cb-faq-glyph" style="color:%s;">%s</span></button>`, p.Style.Colors.Primary, p.FAQ.Glyph(i))
		if p.FAQ.IsOpen(i) {
			m.Raw(`<div class="cb-faq-answer">`)
			paragraph(m, p, item.Answer)
			m.Raw(`</div>`)
		}
		m.Raw(`</div>`)
	}
	closeSection(m)
}

func renderDEI(_ context.Context, m *markup.Writer, p Props) {
	open(m, models.SectionDEI, p, "#f9fafb")
	heading(m, p, 2, "Diversity, equity & inclusion")
	paragraph(m, p, "We build better products when our team reflects the people we serve.")
	cardGrid(m, p, deiCommitments, 3)
	closeSection(m)
}

func renderVideos(_ context.Context, m *markup.Writer, p Props) {
	open(m, models.SectionVideos, p, "#ffffff")
	heading(m, p, 2, "Life at the company")
	m.Raw(`<div class="cb-grid" style="display:grid;grid-template-columns:repeat(auto-fit,minmax(260px,1fr));gap:24px;">`)
	for _, v := range videos {
		m.Rawf(`<div class="cb-video" style="%s">`, cardStyle(p))
		m.Rawf(`<div style="aspect-ratio:16/9;background:%s;border-radius:%dpx;display:flex;align-items:center;justify-content:center;color:#fff;font-size:32px;">%s</div>`,
			p.Style.Colors.Secondary, p.Style.Radius, v.Icon)
		heading(m, p, 3, v.Title)
		paragraph(m, p, v.Body)
		m.Raw(`</div>`)
	}
	m.Raw(`</div>`)
	closeSection(m)
}

func renderTestimonials(_ context.Context, m *markup.Writer, p Props) {
	open(m, models.SectionTestimonials, p, "#f9fafb")
	heading(m, p, 2, "What our people say")
	m.Raw(`<div class="cb-grid" style="display:grid;grid-template-columns:repeat(auto-fit,minmax(260px,1fr));gap:24px;">`)
	for _, t := range testimonials {
		m.Rawf(`<figure class="cb-testimonial" style="%smargin:0;">`, cardStyle(p))
		m.Raw(`<blockquote style="margin:0;">`)
		paragraph(m, p, "“"+t.Body+"”")
		m.Raw(`</blockquote><figcaption>`)
		m.Rawf(`<strong style="color:%s;">`, p.Style.Colors.Heading)
		m.Text(t.Icon)
		m.Raw(`</strong> · `)
		m.Text(t.Title)
		m.Raw(`</figcaption></figure>`)
	}
	m.Raw(`</div>`)
	closeSection(m)
}

func renderTeam(_ context.Context, m *markup.Writer, p Props) {
	open(m, models.SectionTeam, p, "#ffffff")
	heading(m, p, 2, "Meet the team")
	m.Raw(`<div class="cb-grid" style="display:grid;grid-template-columns:repeat(auto-fit,minmax(200px,1fr));gap:24px;">`)
	for _, member := range team {
		m.Rawf(`<div class="cb-team-member" style="%stext-align:center;">`, cardStyle(p))
		m.Rawf(`<div style="width:72px;height:72px;border-radius:9999px;background:%s;color:%s;display:flex;align-items:center;justify-content:center;margin:0 auto 12px;font-weight:700;">`,
			p.Style.Colors.Primary, models.ReadableTextColor(p.Style.Colors.Primary))
		m.Text(member.Icon)
		m.Raw(`</div>`)
		heading(m, p, 3, member.Title)
		paragraph(m, p, member.Body)
		m.Raw(`</div>`)
	}
	m.Raw(`</div>`)
	closeSection(m)
}

func renderJobs(_ context.Context, m *markup.Writer, p Props) {
	open(m, models.SectionJobs, p, "#f9fafb")
	heading(m, p, 2, "Open positions")
	m.Raw(`<ul class="cb-jobs" style="list-style:none;padding:0;margin:0;">`)
	for _, job := range sampleJobs {
		m.Rawf(`<li class="cb-job" style="%sdisplay:flex;justify-content:space-between;align-items:center;margin-bottom:12px;">`, cardStyle(p))
		m.Raw(`<div>`)
		heading(m, p, 3, job.Title)
		m.Rawf(`<span style="color:%s;font-size:%dpx;">`, p.Style.Colors.Text, p.Style.Fonts.Body-2)
		m.Text(job.Department + " · " + job.Location + " · " + job.Type)
		m.Raw(`</span></div>`)
		button(m, p.Style.Button.Primary, "#section-apply", "Apply")
		m.Raw(`</li>`)
	}
	m.Raw(`</ul>`)
	closeSection(m)
}

func renderAlerts(_ context.Context, m *markup.Writer, p Props) {
	open(m, models.SectionAlerts, p, "#ffffff")
	heading(m, p, 2, "Get job alerts")
	paragraph(m, p, "Not seeing the right role? Leave your email and we'll let you know when something opens up.")
	m.Rawf(`<form class="cb-alerts" onsubmit="return false;" style="display:flex;gap:12px;"><input type="email" placeholder="you@example.com" style="flex:1;padding:12px;border:1px solid #d1d5db;border-radius:%dpx;">`, p.Style.Radius)
	m.Rawf(`<button type="submit" class="cb-button" style="%spadding:12px 24px;">Subscribe</button></form>`, p.Style.Button.Primary)
	closeSection(m)
}

func renderApply(_ context.Context, m *markup.Writer, p Props) {
	open(m, models.SectionApply, p, p.Style.Colors.Secondary)
	fg := models.ReadableTextColor(p.Style.Colors.Secondary)
	m.Rawf(`<h2 style="font-family:'%s',sans-serif;font-size:%dpx;color:%s;">Ready to join us?</h2>`, p.Style.HeadingFont, p.Style.Fonts.H2, fg)
	m.Rawf(`<p style="color:%s;">Send us a general application and we'll reach out when there's a match.</p>`, fg)
	button(m, p.Style.Button.Primary, "#section-apply", "Apply now")
	closeSection(m)
}

func renderAnalytics(_ context.Context, m *markup.Writer, p Props) {
	open(m, models.SectionAnalytics, p, "#ffffff")
	heading(m, p, 3, "Analytics")
	m.Rawf(`<textarea class="cb-analytics" readonly rows="4" style="width:100%%;font-family:monospace;border-radius:%dpx;">&lt;!-- tracking snippet --&gt;</textarea>`, p.Style.Radius)
	closeSection(m)
}

func renderFooter(_ context.Context, m *markup.Writer, p Props) {
	open(m, models.SectionFooter, p, p.Style.Colors.Secondary)
	fg := models.ReadableTextColor(p.Style.Colors.Secondary)
	m.Rawf(`<footer style="display:flex;justify-content:space-between;flex-wrap:wrap;gap:16px;color:%s;">`, fg)
	m.Raw(`<nav class="cb-footer-links" style="display:flex;gap:16px;">`)
	for _, link := range footerLinks {
		m.Rawf(`<a href="#" style="color:%s;text-decoration:none;">`, fg)
		m.Text(link)
		m.Raw(`</a>`)
	}
	m.Raw(`</nav><span>© Careers</span></footer>`)
	closeSection(m)
}
