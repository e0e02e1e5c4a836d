package style

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codr1/careerbuilder/internal/models"
)

func TestSectionPaddingTable(t *testing.T) {
	tests := []struct {
		value models.SectionPadding
		want  int
	}{
		{value: models.PaddingCompact, want: 32},
		{value: models.PaddingComfortable, want: 64},
		{value: models.PaddingSpacious, want: 96},
		{value: "huge", want: 64},
		{value: "", want: 64},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, SectionPadding(test.value), "padding %q", test.value)
	}
}

func TestLookupReportsUnknownValues(t *testing.T) {
	_, err := LookupSectionPadding("huge")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownValue))
	assert.Contains(t, err.Error(), `sectionPadding "huge"`)

	_, err = LookupContentWidth("ultra")
	assert.ErrorIs(t, err, ErrUnknownValue)
	_, err = LookupSectionRadius("round")
	assert.ErrorIs(t, err, ErrUnknownValue)
	_, err = LookupCardShadow("dramatic")
	assert.ErrorIs(t, err, ErrUnknownValue)
	_, err = LookupFontScale("Tiny")
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestTotalResolversDefaultOnMiss(t *testing.T) {
	assert.Equal(t, "1152px", ContentWidth("ultra"))
	assert.Equal(t, "100%", ContentWidth(models.WidthFull))
	assert.Equal(t, 0, SectionRadius("round"))
	assert.Equal(t, 24, SectionRadius(models.RadiusLarge))
	assert.Equal(t, "0 1px 3px rgba(0,0,0,0.08)", CardShadow("dramatic"))
	assert.Equal(t, "none", CardShadow(models.ShadowNone))
	assert.Equal(t, FontSizes{H1: 48, H2: 36, H3: 24, Body: 16}, FontScaleSizes("Tiny"))
	assert.Equal(t, FontSizes{H1: 64, H2: 48, H3: 32, Body: 18}, FontScaleSizes(models.FontScaleDisplay))
	assert.Equal(t, 15, NavLinkSize("Tiny"))
	assert.Equal(t, 14, NavLinkSize(models.FontScaleSmall))
	assert.Equal(t, "", AnimationClass("spin"))
	assert.Equal(t, "cb-anim-zoom", AnimationClass(models.AnimationZoom))
}

func TestMisses(t *testing.T) {
	state := models.DefaultBuilderState()
	assert.Empty(t, Misses(state))

	state.Layout.SectionPadding = "huge"
	state.Buttons.Style = "ghost"
	state.Navigation.Style = "Floating"
	misses := Misses(state)
	require.Len(t, misses, 3)
	for _, miss := range misses {
		assert.ErrorIs(t, miss, ErrUnknownValue)
	}
}

func TestColorsOrDefaultPerField(t *testing.T) {
	colors := ColorsOrDefault(models.ThemeColors{
		Primary:   " #112233 ",
		Secondary: "",
		Accent:    "orange",
		Heading:   "#ABCDEF",
		Text:      "#12",
	})
	defaults := models.DefaultColors()

	assert.Equal(t, "#112233", colors.Primary)
	assert.Equal(t, defaults.Secondary, colors.Secondary)
	assert.Equal(t, defaults.Accent, colors.Accent)
	assert.Equal(t, "#ABCDEF", colors.Heading)
	assert.Equal(t, defaults.Text, colors.Text)
}

func TestButtons(t *testing.T) {
	colors := models.DefaultColors()

	solid := Buttons(models.ButtonSettings{Style: models.ButtonSolid, CornerRadius: 6}, colors)
	assert.Contains(t, solid.Primary, "border-radius:6px")
	assert.Contains(t, solid.Primary, "background:"+colors.Primary)

	pill := Buttons(models.ButtonSettings{Style: models.ButtonPill, CornerRadius: 6}, colors)
	assert.Contains(t, pill.Primary, "border-radius:9999px")

	outline := Buttons(models.ButtonSettings{Style: models.ButtonOutline, CornerRadius: 4}, colors)
	assert.Contains(t, outline.Primary, "background:transparent")
	assert.Contains(t, outline.Primary, "border:2px solid "+colors.Primary)

	rounded := Buttons(models.ButtonSettings{Style: models.ButtonRounded, CornerRadius: 2}, colors)
	assert.Contains(t, rounded.Primary, "border-radius:12px")

	unknownStyle := Buttons(models.ButtonSettings{Style: "ghost", CornerRadius: -3}, colors)
	assert.Equal(t, Buttons(models.ButtonSettings{Style: models.ButtonSolid}, colors), unknownStyle)
}

func TestHeroBackground(t *testing.T) {
	colors := models.DefaultColors()
	layout := models.LayoutSettings{
		HeroGradient:      true,
		HeroGradientType:  models.GradientLinear,
		HeroGradientAngle: 450,
		HeroGradientStops: []models.GradientStop{
			{Color: "#ffffff", Position: 100},
			{Color: "not-a-color", Position: 50},
			{Color: "#000000", Position: -10},
		},
	}

	assert.Equal(t, "linear-gradient(90deg, #000000 0%, #ffffff 100%)", HeroBackground(layout, colors))

	layout.HeroGradientType = models.GradientRadial
	assert.Equal(t, "radial-gradient(circle, #000000 0%, #ffffff 100%)", HeroBackground(layout, colors))

	layout.HeroGradientStops = nil
	assert.Equal(t, "radial-gradient(circle, "+colors.Primary+" 0%, "+colors.Secondary+" 100%)", HeroBackground(layout, colors))

	layout.HeroGradient = false
	assert.Equal(t, colors.Primary, HeroBackground(layout, colors))
}

func TestResolveCSSVars(t *testing.T) {
	state := models.DefaultBuilderState()
	state.Typography.HeadingFont = `Evil"; } body { display:none`
	resolved := Resolve(state)

	vars := resolved.CSSVars()
	assert.True(t, strings.HasPrefix(vars, ":root{"))
	assert.Contains(t, vars, "--cb-padding:64px;")
	assert.Contains(t, vars, "--cb-content-width:1152px;")
	assert.Contains(t, vars, "--cb-heading-font:'Inter';")
	assert.Contains(t, vars, "--cb-primary:"+state.Colors.Primary+";")
}
