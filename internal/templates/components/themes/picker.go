package themes

import (
	"context"

	"github.com/a-h/templ"

	"github.com/codr1/careerbuilder/internal/templates/markup"
)

// Picker renders one swatch button per preset.
func Picker(data PresetPickerData) templ.Component {
	return markup.Func(func(_ context.Context, m *markup.Writer) {
		m.Raw(`<div class="cb-presets" style="display:grid;grid-template-columns:repeat(2,1fr);gap:8px;">`)
		for _, p := range data.Presets {
			border := "1px solid #d1d5db"
			if p.IsActive {
				border = "2px solid " + p.Colors.Primary
			}
			m.Rawf(`<button type="button" class="cb-preset" style="border:%s;border-radius:8px;padding:8px;background:transparent;color:inherit;cursor:pointer;text-align:left;" hx-post="`, border)
			m.Text(data.ApplyURL)
			m.Raw(`" hx-target="#builder-editor" hx-swap="outerHTML" hx-vals="`)
			m.Vals(map[string]any{"name": p.Name})
			m.Raw(`"><span style="display:flex;gap:4px;margin-bottom:4px;">`)
			for _, field := range p.Colors.Fields() {
				m.Raw(`<span style="width:16px;height:16px;border-radius:4px;background:`)
				m.Text(field.Value)
				m.Raw(`;"></span>`)
			}
			m.Raw(`</span>`)
			m.Text(p.Name)
			if p.IsDefault {
				m.Raw(` <small>(default)</small>`)
			}
			m.Raw(`</button>`)
		}
		m.Raw(`</div>`)
	})
}
