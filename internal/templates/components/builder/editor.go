package builder

import (
	"context"
	"fmt"
	"net/url"

	"github.com/a-h/templ"

	"github.com/codr1/careerbuilder/internal/models"
	"github.com/codr1/careerbuilder/internal/templates/components/themes"
	"github.com/codr1/careerbuilder/internal/templates/markup"
)

const (
	SettingsURL = "/api/v1/settings"
	PresetURL   = "/api/v1/theme/preset"
	PagesURL    = "/api/v1/pages"
	PreviewURL  = "/preview?embed=1"
	PreviewWS   = "/preview/ws"
)

type option struct {
	value string
	label string
}

func options[T ~string](values ...T) []option {
	out := make([]option, len(values))
	for i, v := range values {
		out[i] = option{value: string(v), label: titleCase(string(v))}
	}
	return out
}

var (
	fontScaleOptions = options(models.FontScaleSmall, models.FontScaleMedium, models.FontScaleLarge, models.FontScaleDisplay)
	buttonOptions    = options(models.ButtonSolid, models.ButtonOutline, models.ButtonPill, models.ButtonRounded)
	paddingOptions   = options(models.PaddingCompact, models.PaddingComfortable, models.PaddingSpacious)
	widthOptions     = options(models.WidthNarrow, models.WidthStandard, models.WidthWide, models.WidthFull)
	radiusOptions    = options(models.RadiusNone, models.RadiusSmall, models.RadiusMedium, models.RadiusLarge)
	shadowOptions    = options(models.ShadowNone, models.ShadowSubtle, models.ShadowMedium, models.ShadowStrong)
	animationOptions = options(models.AnimationNone, models.AnimationFade, models.AnimationSlide, models.AnimationZoom)
	gradientOptions  = options(models.GradientLinear, models.GradientRadial)
	navStyleOptions  = options(models.NavHeader, models.NavSidebar, models.NavBoth)
	fontOptions      = []option{{"Inter", "Inter"}, {"Roboto", "Roboto"}, {"Lato", "Lato"}, {"Merriweather", "Merriweather"}, {"Playfair Display", "Playfair Display"}, {"Source Sans Pro", "Source Sans Pro"}}
)

// Editor is the loaded builder: the settings panel and the live preview.
// Every edit endpoint answers with a fresh Editor swapped over this one.
func Editor(data EditorData) templ.Component {
	return markup.Func(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<div id="builder-editor" style="flex:1;display:grid;grid-template-columns:380px 1fr;min-height:0;">`)
		m.Raw(`<aside class="cb-panel" style="overflow-y:auto;padding:16px;border-right:1px solid rgba(127,127,127,.3);">`)
		m.Raw(`<div id="editor-feedback" aria-live="polite"></div>`)

		panelHeading(m, "Theme presets")
		m.Component(ctx, themes.Picker(themes.PresetPickerData{Presets: data.Presets, ApplyURL: PresetURL}))

		panelHeading(m, "Style")
		settingsForm(m, data)

		panelHeading(m, "Pages")
		pagesPanel(m, data)

		panelHeading(m, "Sections")
		sectionsPanel(m, data)

		m.Raw(`</aside>`)
		m.Raw(`<section class="cb-preview-pane" style="display:flex;flex-direction:column;min-height:0;">`)
		m.Raw(`<iframe id="preview-frame" title="Live preview" style="flex:1;width:100%;border:0;background:#fff;" src="`)
		m.URL(PreviewURL)
		m.Raw(`"></iframe></section></div>`)
	})
}

func panelHeading(m *markup.Writer, title string) {
	m.Raw(`<h3 style="margin:20px 0 8px;font-size:14px;text-transform:uppercase;letter-spacing:.05em;">`)
	m.Text(title)
	m.Raw(`</h3>`)
}

func settingsForm(m *markup.Writer, data EditorData) {
	s := data.State
	m.Raw(`<form class="cb-settings" style="display:grid;gap:8px;" hx-post="`)
	m.Text(SettingsURL)
	m.Raw(`" hx-target="#builder-editor" hx-swap="outerHTML" hx-trigger="`)
	m.Text(data.TriggerDelay())
	m.Raw(`">`)

	for _, field := range s.Colors.Fields() {
		m.Raw(`<label style="display:flex;justify-content:space-between;">`)
		m.Text(titleCase(field.Name))
		m.Raw(` <input type="color" name="colors.`)
		m.Text(field.Name)
		m.Raw(`" value="`)
		m.Text(field.Value)
		m.Raw(`"></label>`)
	}

	textInput(m, "Logo URL", "logo", s.Logo)
	selectInput(m, "Heading font", "typography.headingFont", s.Typography.HeadingFont, fontOptions)
	selectInput(m, "Body font", "typography.bodyFont", s.Typography.BodyFont, fontOptions)
	selectInput(m, "Font scale", "typography.fontScale", string(s.Typography.FontScale), fontScaleOptions)
	selectInput(m, "Buttons", "buttons.style", string(s.Buttons.Style), buttonOptions)
	numberInput(m, "Button radius", "buttons.cornerRadius", s.Buttons.CornerRadius, 0, 64)
	selectInput(m, "Section padding", "layout.sectionPadding", string(s.Layout.SectionPadding), paddingOptions)
	selectInput(m, "Content width", "layout.contentWidth", string(s.Layout.ContentWidth), widthOptions)
	selectInput(m, "Section corners", "layout.sectionRadius", string(s.Layout.SectionRadius), radiusOptions)
	selectInput(m, "Card shadow", "layout.cardShadow", string(s.Layout.CardShadow), shadowOptions)
	selectInput(m, "Animation", "layout.sectionAnimation", string(s.Layout.SectionAnimation), animationOptions)
	checkbox(m, "Hover effects", "layout.hoverEffects", s.Layout.HoverEffects)
	checkbox(m, "Hero gradient", "layout.heroGradient", s.Layout.HeroGradient)
	selectInput(m, "Gradient type", "layout.heroGradientType", string(s.Layout.HeroGradientType), gradientOptions)
	numberInput(m, "Gradient angle", "layout.heroGradientAngle", s.Layout.HeroGradientAngle, 0, 360)
	checkbox(m, "Multi-page layout", "multiPageLayout", s.MultiPageLayout)
	checkbox(m, "Show navigation", "navigation.enabled", s.Navigation.Enabled)
	selectInput(m, "Navigation style", "navigation.style", string(s.Navigation.Style), navStyleOptions)
	m.Raw(`</form>`)
}

func textInput(m *markup.Writer, label, name, value string) {
	m.Raw(`<label style="display:grid;gap:4px;">`)
	m.Text(label)
	m.Raw(`<input type="text" name="`)
	m.Text(name)
	m.Raw(`" value="`)
	m.Text(value)
	m.Raw(`"></label>`)
}

func numberInput(m *markup.Writer, label, name string, value, min, max int) {
	m.Raw(`<label style="display:flex;justify-content:space-between;">`)
	m.Text(label)
	m.Raw(` <input type="number" name="`)
	m.Text(name)
	m.Rawf(`" value="%d" min="%d" max="%d" style="width:80px;"></label>`, value, min, max)
}

// checkbox posts "false" from a hidden input so unchecking is not lost.
func checkbox(m *markup.Writer, label, name string, checked bool) {
	m.Raw(`<label style="display:flex;gap:8px;align-items:center;"><input type="hidden" name="`)
	m.Text(name)
	m.Raw(`" value="false"><input type="checkbox" name="`)
	m.Text(name)
	m.Raw(`" value="true"`)
	if checked {
		m.Raw(` checked`)
	}
	m.Raw(`>`)
	m.Text(label)
	m.Raw(`</label>`)
}

func selectInput(m *markup.Writer, label, name, current string, opts []option) {
	m.Raw(`<label style="display:flex;justify-content:space-between;">`)
	m.Text(label)
	m.Raw(` <select name="`)
	m.Text(name)
	m.Raw(`">`)
	found := false
	for _, o := range opts {
		m.Raw(`<option value="`)
		m.Text(o.value)
		m.Raw(`"`)
		if o.value == current {
			m.Raw(` selected`)
			found = true
		}
		m.Raw(`>`)
		m.Text(o.label)
		m.Raw(`</option>`)
	}
	// Keep a stored value outside the list visible instead of silently
	// replacing it on the next save.
	if !found && current != "" {
		m.Raw(`<option selected value="`)
		m.Text(current)
		m.Raw(`">`)
		m.Text(current)
		m.Raw(`</option>`)
	}
	m.Raw(`</select></label>`)
}

func pagesPanel(m *markup.Writer, data EditorData) {
	if !data.State.MultiPageLayout {
		m.Raw(`<p style="opacity:.7;">Turn on multi-page layout to manage pages.</p>`)
		return
	}
	m.Raw(`<ul class="cb-pages" style="list-style:none;padding:0;margin:0 0 8px;">`)
	for _, page := range data.Pages() {
		pageURL := PagesURL + "/" + url.PathEscape(page.Key)
		m.Raw(`<li style="display:flex;gap:8px;align-items:center;padding:4px 0;">`)
		m.Raw(`<button type="button" style="flex:1;text-align:left;`)
		if page.Active {
			m.Raw(`font-weight:700;`)
		}
		m.Raw(`" hx-post="`)
		m.Text(pageURL + "/activate")
		m.Raw(`" hx-target="#builder-editor" hx-swap="outerHTML">`)
		m.Text(page.Label)
		m.Raw(`</button><button type="button" aria-label="Delete page" hx-delete="`)
		m.Text(pageURL)
		m.Raw(`" hx-target="#builder-editor" hx-swap="outerHTML" hx-confirm="Delete this page?">×</button></li>`)
	}
	m.Raw(`</ul><form style="display:flex;gap:8px;" hx-post="`)
	m.Text(PagesURL)
	m.Raw(`" hx-target="#builder-editor" hx-swap="outerHTML"><input type="text" name="name" placeholder="New page name" required style="flex:1;"><button type="submit">Add</button></form>`)
}

func sectionsPanel(m *markup.Writer, data EditorData) {
	base := PagesURL + "/" + url.PathEscape(data.ActivePage()) + "/sections"
	m.Raw(`<ol class="cb-sections" style="padding-left:20px;margin:0 0 12px;">`)
	for _, item := range data.Sections() {
		m.Raw(`<li style="display:flex;gap:6px;align-items:center;padding:4px 0;"><span class="cb-icon" data-icon="`)
		m.Text(item.Icon)
		m.Raw(`" style="flex:1;">`)
		m.Text(item.Label)
		m.Raw(`</span>`)
		if !item.First {
			moveButton(m, base, item.Index, item.Index-1, "↑", "Move up")
		}
		if !item.Last {
			moveButton(m, base, item.Index, item.Index+1, "↓", "Move down")
		}
		if item.Required {
			m.Raw(`<span title="Required" aria-label="Required">🔒</span>`)
		} else {
			m.Raw(`<button type="button" aria-label="Remove section" hx-delete="`)
			m.Text(base + "/" + url.PathEscape(string(item.ID)))
			m.Raw(`" hx-target="#builder-editor" hx-swap="outerHTML">×</button>`)
		}
		m.Raw(`</li>`)
	}
	m.Raw(`</ol>`)

	addable := data.Addable()
	if len(addable) == 0 {
		return
	}
	m.Raw(`<div class="cb-addable" style="display:flex;flex-wrap:wrap;gap:6px;">`)
	for _, meta := range addable {
		m.Raw(`<button type="button" title="`)
		m.Text(meta.Description)
		m.Raw(`" hx-post="`)
		m.Text(base)
		m.Raw(`" hx-target="#builder-editor" hx-swap="outerHTML" hx-vals="`)
		m.Vals(map[string]any{"section": string(meta.ID)})
		m.Raw(`">+ `)
		m.Text(meta.Label)
		m.Raw(`</button>`)
	}
	m.Raw(`</div>`)
}

func moveButton(m *markup.Writer, base string, from, to int, glyph, label string) {
	m.Raw(`<button type="button" aria-label="`)
	m.Text(label)
	m.Raw(`" hx-post="`)
	m.Text(base + "/move")
	m.Raw(`" hx-target="#builder-editor" hx-swap="outerHTML" hx-vals="`)
	m.Vals(map[string]any{"from": fmt.Sprint(from), "to": fmt.Sprint(to)})
	m.Raw(`">`)
	m.Text(glyph)
	m.Raw(`</button>`)
}

// PreviewScript reloads the preview iframe whenever a snapshot is saved.
const PreviewScript = `(function(){
var proto=location.protocol==="https:"?"wss:":"ws:";
function connect(){
var ws=new WebSocket(proto+"//"+location.host+"` + PreviewWS + `");
ws.onmessage=function(){var f=document.getElementById("preview-frame");if(f){f.contentWindow.location.reload();}};
ws.onclose=function(){setTimeout(connect,2000);};
}
connect();
document.body.addEventListener("uiThemeChanged",function(e){document.body.className="cb-chrome-"+e.detail.value;});
})();`
