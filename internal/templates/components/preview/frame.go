package preview

import (
	"context"

	"github.com/a-h/templ"

	"github.com/codr1/careerbuilder/internal/preview"
	"github.com/codr1/careerbuilder/internal/templates/components/public"
	"github.com/codr1/careerbuilder/internal/templates/markup"
)

var deviceLabels = map[preview.Device]string{
	preview.Desktop: "Desktop",
	preview.Tablet:  "Tablet",
	preview.Mobile:  "Mobile",
}

// Frame renders the device toolbar and the simulated viewport. The root
// element is the swap target for device changes.
func Frame(data FrameData) templ.Component {
	return markup.Func(func(ctx context.Context, m *markup.Writer) {
		metrics := data.Metrics()
		m.Rawf(`<div id="preview-root" class="cb-preview cb-device-%s" data-device="%s">`, data.Device, data.Device)
		if !data.Embed {
			toolbar(m, data)
		}
		m.Rawf(`<div class="cb-device-frame" style="width:%s;max-width:100%%;margin:%dpx auto;font-size:%dpx;border:1px solid #e5e7eb;border-radius:12px;overflow:hidden;background:#fff;">`,
			metrics.FrameWidth, metrics.Gap, metrics.FontSize)
		if data.Page == nil {
			m.Component(ctx, public.Fallback("Nothing to preview yet", "Make a change in the builder to see it here."))
		} else {
			m.Component(ctx, public.CareerPage(*data.Page))
		}
		m.Raw(`</div></div>`)
	})
}

func toolbar(m *markup.Writer, data FrameData) {
	metrics := data.Metrics()
	m.Rawf(`<div class="cb-preview-toolbar" style="display:flex;align-items:center;gap:%dpx;padding:12px %dpx;border-bottom:1px solid #e5e7eb;">`,
		metrics.Gap/2, metrics.Padding)
	for _, d := range preview.Devices {
		weight := 400
		if d == data.Device {
			weight = 700
		}
		m.Rawf(`<button type="button" class="cb-device-button" style="font-weight:%d;" aria-pressed="%t" hx-post="`, weight, d == data.Device)
		m.Text(data.SelectURL)
		m.Raw(`" hx-target="#preview-root" hx-swap="outerHTML" hx-vals="`)
		m.Vals(map[string]any{preview.QueryParam: string(d)})
		m.Raw(`">`)
		m.Text(deviceLabels[d])
		m.Raw(`</button>`)
	}
	m.Raw(`<input class="cb-share-url" readonly style="flex:1;" aria-label="Share link" value="`)
	m.Text(data.ShareURL)
	m.Raw(`"></div>`)
}
