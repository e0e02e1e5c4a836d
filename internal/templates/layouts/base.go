package layouts

import (
	"context"

	"github.com/a-h/templ"

	"github.com/codr1/careerbuilder/internal/templates/markup"
)

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

// Page is the document shell every surface renders into.
type Page struct {
	Title string
	// BodyClass is set on <body>; the builder uses it for the chrome theme.
	BodyClass string
	// CSSVars is a :root rule from ThemeCSSVars.
	CSSVars string
	Body    templ.Component
	// Scripts is trusted inline script appended before </body>.
	Scripts string
}

func Base(p Page) templ.Component {
	return markup.Func(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		m.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.Raw(`<title>`)
		m.Text(p.Title)
		m.Raw(`</title>`)
		m.Rawf(`<script src="%s"></script>`, htmxScript)
		m.Raw(`<style>`)
		m.Raw(p.CSSVars)
		m.Raw(baseCSS)
		m.Raw(`</style></head><body class="`)
		m.Text(p.BodyClass)
		m.Raw(`">`)
		m.Component(ctx, p.Body)
		if p.Scripts != "" {
			m.Raw(`<script>`)
			m.Raw(p.Scripts)
			m.Raw(`</script>`)
		}
		m.Raw(`</body></html>`)
	})
}

const baseCSS = `
*{box-sizing:border-box}
body{margin:0;font-family:var(--cb-body-font),system-ui,sans-serif;color:var(--cb-text)}
.cb-anim-fade{animation:cb-fade .6s ease both}
.cb-anim-slide{animation:cb-slide .6s ease both}
.cb-anim-zoom{animation:cb-zoom .6s ease both}
@keyframes cb-fade{from{opacity:0}to{opacity:1}}
@keyframes cb-slide{from{opacity:0;transform:translateY(24px)}to{opacity:1;transform:none}}
@keyframes cb-zoom{from{opacity:0;transform:scale(.96)}to{opacity:1;transform:none}}
.cb-hover .cb-card{transition:transform .2s ease}
.cb-hover .cb-card:hover{transform:translateY(-4px)}
.cb-chrome-light{background:#f3f4f6;color:#111827}
.cb-chrome-dark{background:#111827;color:#f9fafb}
@media (prefers-color-scheme:dark){.cb-chrome-system{background:#111827;color:#f9fafb}}
.cb-overlay{position:fixed;inset:0;display:flex;flex-direction:column;align-items:center;justify-content:center;gap:16px;background:rgba(17,24,39,.85);color:#fff;z-index:50}
.cb-spinner{width:48px;height:48px;border:4px solid rgba(255,255,255,.3);border-top-color:#fff;border-radius:50%;animation:cb-spin 1s linear infinite}
@keyframes cb-spin{to{transform:rotate(360deg)}}
.cb-feedback{padding:8px 12px;border-radius:6px;background:#ecfdf5;color:#065f46}
.cb-feedback-error{background:#fef2f2;color:#991b1b}
`
