package builder

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/codr1/careerbuilder/internal/templates/markup"
)

const (
	ShellURL = "/builder/shell"
	RetryURL = "/builder/shell/retry"
)

// Page is the builder document body: the chrome bar and the shell slot,
// which starts out loading.
func Page(chrome ChromeData) templ.Component {
	return markup.Func(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<div id="builder-root" style="min-height:100vh;display:flex;flex-direction:column;">`)
		m.Component(ctx, Chrome(chrome))
		m.Component(ctx, Loading())
		m.Raw(`</div>`)
	})
}

// Chrome is the top bar. Its mode control changes only the chrome class.
func Chrome(data ChromeData) templ.Component {
	return markup.Func(func(_ context.Context, m *markup.Writer) {
		m.Raw(`<header class="cb-chrome-bar" style="display:flex;align-items:center;gap:16px;padding:12px 24px;border-bottom:1px solid rgba(127,127,127,.3);">`)
		m.Raw(`<strong style="flex:1;">Career Page Builder</strong>`)
		m.Raw(`<label>Builder theme <select name="mode" hx-post="/api/v1/ui-theme" hx-trigger="change" hx-swap="none">`)
		for _, mode := range data.Modes {
			m.Raw(`<option value="`)
			m.Text(string(mode))
			m.Raw(`"`)
			if mode == data.Mode {
				m.Raw(` selected`)
			}
			m.Raw(`>`)
			m.Text(titleCase(string(mode)))
			m.Raw(`</option>`)
		}
		m.Raw(`</select></label>`)
		m.Raw(`<a href="/p" target="_blank">Open page</a>`)
		m.Raw(`<a href="/published" target="_blank">Published</a>`)
		m.Raw(`<button type="button" hx-post="/api/v1/publish" hx-target="#publish-feedback" hx-swap="innerHTML">Publish</button>`)
		m.Raw(`<span id="publish-feedback" aria-live="polite"></span>`)
		m.Raw(`</header>`)
	})
}

// Loading blocks the builder while modules load and polls for the result.
func Loading() templ.Component {
	return markup.Func(func(_ context.Context, m *markup.Writer) {
		m.Rawf(`<div id="builder-shell" hx-get="%s" hx-trigger="load delay:300ms" hx-swap="outerHTML">`, ShellURL)
		m.Raw(`<div class="cb-overlay" role="status" aria-live="polite"><div class="cb-spinner"></div><p>Loading builder…</p></div>`)
		m.Raw(`</div>`)
	})
}

// Retry reports a failed load and offers to try again.
func Retry(message string) templ.Component {
	return markup.Func(func(_ context.Context, m *markup.Writer) {
		m.Raw(`<div id="builder-shell"><div class="cb-overlay" role="alert">`)
		m.Raw(`<h2 style="margin:0;">The builder failed to load</h2><p class="cb-load-error">`)
		m.Text(message)
		m.Rawf(`</p><button type="button" hx-post="%s" hx-target="#builder-shell" hx-swap="outerHTML">Retry</button>`, RetryURL)
		m.Raw(`</div></div>`)
	})
}

// Shell wraps loaded content in the shell slot.
func Shell(content templ.Component) templ.Component {
	return markup.Func(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<div id="builder-shell" style="flex:1;display:flex;">`)
		m.Component(ctx, content)
		m.Raw(`</div>`)
	})
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
