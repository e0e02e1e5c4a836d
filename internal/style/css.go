package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/codr1/careerbuilder/internal/models"
)

// Resolved is a snapshot's style settings with every enumeration resolved.
// Section templates only read from this.
type Resolved struct {
	Colors         models.ThemeColors
	HeadingFont    string
	BodyFont       string
	Fonts          FontSizes
	NavLinkSize    int
	Padding        int
	ContentWidth   string
	Radius         int
	Shadow         string
	AnimationClass string
	HoverEffects   bool
	HeroBackground string
	Button         ButtonCSS
}

// ButtonCSS carries inline styles for primary and secondary buttons.
type ButtonCSS struct {
	Primary   string
	Secondary string
}

func Resolve(state models.BuilderState) Resolved {
	colors := ColorsOrDefault(state.Colors)
	return Resolved{
		Colors:         colors,
		HeadingFont:    fontOrDefault(state.Typography.HeadingFont),
		BodyFont:       fontOrDefault(state.Typography.BodyFont),
		Fonts:          FontScaleSizes(state.Typography.FontScale),
		NavLinkSize:    NavLinkSize(state.Typography.FontScale),
		Padding:        SectionPadding(state.Layout.SectionPadding),
		ContentWidth:   ContentWidth(state.Layout.ContentWidth),
		Radius:         SectionRadius(state.Layout.SectionRadius),
		Shadow:         CardShadow(state.Layout.CardShadow),
		AnimationClass: AnimationClass(state.Layout.SectionAnimation),
		HoverEffects:   state.Layout.HoverEffects,
		HeroBackground: HeroBackground(state.Layout, colors),
		Button:         Buttons(state.Buttons, colors),
	}
}

// ColorsOrDefault replaces blank or non-hex colors with the default palette,
// one color at a time.
func ColorsOrDefault(colors models.ThemeColors) models.ThemeColors {
	defaults := models.DefaultColors()
	return models.ThemeColors{
		Primary:   colorOrDefault(colors.Primary, defaults.Primary),
		Secondary: colorOrDefault(colors.Secondary, defaults.Secondary),
		Accent:    colorOrDefault(colors.Accent, defaults.Accent),
		Heading:   colorOrDefault(colors.Heading, defaults.Heading),
		Text:      colorOrDefault(colors.Text, defaults.Text),
	}
}

func colorOrDefault(value string, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	if !models.IsHexColor(trimmed) {
		return fallback
	}
	return trimmed
}

// fontOrDefault keeps font names from breaking out of a CSS declaration.
func fontOrDefault(font string) string {
	font = strings.TrimSpace(font)
	if font == "" || strings.ContainsAny(font, `;{}<>"\`) {
		return "Inter"
	}
	return font
}

// Buttons renders the four button shapes. Unknown styles render as solid.
func Buttons(settings models.ButtonSettings, colors models.ThemeColors) ButtonCSS {
	radius := settings.CornerRadius
	if radius < 0 {
		radius = 0
	}
	fg := models.ReadableTextColor(colors.Primary)

	switch settings.Style {
	case models.ButtonOutline:
		return ButtonCSS{
			Primary:   fmt.Sprintf("background:transparent;color:%s;border:2px solid %s;border-radius:%dpx;", colors.Primary, colors.Primary, radius),
			Secondary: fmt.Sprintf("background:transparent;color:%s;border:2px solid %s;border-radius:%dpx;", colors.Secondary, colors.Secondary, radius),
		}
	case models.ButtonPill:
		return ButtonCSS{
			Primary:   fmt.Sprintf("background:%s;color:%s;border:none;border-radius:9999px;", colors.Primary, fg),
			Secondary: fmt.Sprintf("background:transparent;color:%s;border:2px solid %s;border-radius:9999px;", colors.Primary, colors.Primary),
		}
	case models.ButtonRounded:
		rounded := radius
		if rounded < 12 {
			rounded = 12
		}
		return ButtonCSS{
			Primary:   fmt.Sprintf("background:%s;color:%s;border:none;border-radius:%dpx;", colors.Primary, fg, rounded),
			Secondary: fmt.Sprintf("background:transparent;color:%s;border:2px solid %s;border-radius:%dpx;", colors.Primary, colors.Primary, rounded),
		}
	default:
		return ButtonCSS{
			Primary:   fmt.Sprintf("background:%s;color:%s;border:none;border-radius:%dpx;", colors.Primary, fg, radius),
			Secondary: fmt.Sprintf("background:%s;color:%s;border:none;border-radius:%dpx;", colors.Secondary, models.ReadableTextColor(colors.Secondary), radius),
		}
	}
}

// HeroBackground returns the hero's CSS background. Without a gradient, or
// with fewer than two usable stops, the hero falls back to a gradient between
// primary and secondary (or solid primary when gradients are off).
func HeroBackground(layout models.LayoutSettings, colors models.ThemeColors) string {
	if !layout.HeroGradient {
		return colors.Primary
	}

	stops := usableStops(layout.HeroGradientStops)
	if len(stops) < 2 {
		stops = []models.GradientStop{
			{Color: colors.Primary, Position: 0},
			{Color: colors.Secondary, Position: 100},
		}
	}

	parts := make([]string, len(stops))
	for i, stop := range stops {
		parts[i] = fmt.Sprintf("%s %d%%", stop.Color, stop.Position)
	}

	if layout.HeroGradientType == models.GradientRadial {
		return fmt.Sprintf("radial-gradient(circle, %s)", strings.Join(parts, ", "))
	}
	angle := ((layout.HeroGradientAngle % 360) + 360) % 360
	return fmt.Sprintf("linear-gradient(%ddeg, %s)", angle, strings.Join(parts, ", "))
}

func usableStops(stops []models.GradientStop) []models.GradientStop {
	out := make([]models.GradientStop, 0, len(stops))
	for _, stop := range stops {
		if !models.IsHexColor(stop.Color) {
			continue
		}
		position := stop.Position
		if position < 0 {
			position = 0
		}
		if position > 100 {
			position = 100
		}
		out = append(out, models.GradientStop{Color: strings.TrimSpace(stop.Color), Position: position})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// CSSVars renders the resolved style as :root custom properties.
func (r Resolved) CSSVars() string {
	return fmt.Sprintf(
		":root{--cb-primary:%s;--cb-secondary:%s;--cb-accent:%s;--cb-heading:%s;--cb-text:%s;"+
			"--cb-heading-font:'%s';--cb-body-font:'%s';--cb-h1:%dpx;--cb-h2:%dpx;--cb-h3:%dpx;--cb-body:%dpx;"+
			"--cb-nav-link:%dpx;--cb-padding:%dpx;--cb-content-width:%s;--cb-radius:%dpx;--cb-shadow:%s;}",
		r.Colors.Primary,
		r.Colors.Secondary,
		r.Colors.Accent,
		r.Colors.Heading,
		r.Colors.Text,
		r.HeadingFont,
		r.BodyFont,
		r.Fonts.H1,
		r.Fonts.H2,
		r.Fonts.H3,
		r.Fonts.Body,
		r.NavLinkSize,
		r.Padding,
		r.ContentWidth,
		r.Radius,
		r.Shadow,
	)
}
