// Package style resolves the builder's enumerated settings into concrete CSS
// values.
//
// Every resolver is total: a value outside its enumeration (corrupted
// storage, an older snapshot) resolves to the documented default tier. The
// Lookup* variants report such misses as ErrUnknownValue instead, for callers
// that validate rather than render.
package style

import (
	"errors"
	"fmt"

	"github.com/codr1/careerbuilder/internal/models"
)

var ErrUnknownValue = errors.New("unknown style value")

func unknown(setting string, value any) error {
	return fmt.Errorf("%w: %s %q", ErrUnknownValue, setting, value)
}

// SectionPadding returns vertical section padding in pixels.
func SectionPadding(v models.SectionPadding) int {
	px, err := LookupSectionPadding(v)
	if err != nil {
		return 64
	}
	return px
}

func LookupSectionPadding(v models.SectionPadding) (int, error) {
	switch v {
	case models.PaddingCompact:
		return 32, nil
	case models.PaddingComfortable:
		return 64, nil
	case models.PaddingSpacious:
		return 96, nil
	}
	return 0, unknown("sectionPadding", v)
}

// ContentWidth returns the max-width CSS value of section content.
func ContentWidth(v models.ContentWidth) string {
	width, err := LookupContentWidth(v)
	if err != nil {
		return "1152px"
	}
	return width
}

func LookupContentWidth(v models.ContentWidth) (string, error) {
	switch v {
	case models.WidthNarrow:
		return "768px", nil
	case models.WidthStandard:
		return "1152px", nil
	case models.WidthWide:
		return "1280px", nil
	case models.WidthFull:
		return "100%", nil
	}
	return "", unknown("contentWidth", v)
}

// SectionRadius returns the section/card corner radius in pixels.
func SectionRadius(v models.SectionRadius) int {
	px, err := LookupSectionRadius(v)
	if err != nil {
		return 0
	}
	return px
}

func LookupSectionRadius(v models.SectionRadius) (int, error) {
	switch v {
	case models.RadiusNone:
		return 0, nil
	case models.RadiusSmall:
		return 8, nil
	case models.RadiusMedium:
		return 16, nil
	case models.RadiusLarge:
		return 24, nil
	}
	return 0, unknown("sectionRadius", v)
}

// CardShadow returns a box-shadow value.
func CardShadow(v models.CardShadow) string {
	shadow, err := LookupCardShadow(v)
	if err != nil {
		return "0 1px 3px rgba(0,0,0,0.08)"
	}
	return shadow
}

func LookupCardShadow(v models.CardShadow) (string, error) {
	switch v {
	case models.ShadowNone:
		return "none", nil
	case models.ShadowSubtle:
		return "0 1px 3px rgba(0,0,0,0.08)", nil
	case models.ShadowMedium:
		return "0 4px 12px rgba(0,0,0,0.12)", nil
	case models.ShadowStrong:
		return "0 12px 32px rgba(0,0,0,0.18)", nil
	}
	return "", unknown("cardShadow", v)
}

// FontSizes holds heading and body pixel sizes for a font scale.
type FontSizes struct {
	H1   int
	H2   int
	H3   int
	Body int
}

func FontScaleSizes(v models.FontScale) FontSizes {
	sizes, err := LookupFontScale(v)
	if err != nil {
		return FontSizes{H1: 48, H2: 36, H3: 24, Body: 16}
	}
	return sizes
}

func LookupFontScale(v models.FontScale) (FontSizes, error) {
	switch v {
	case models.FontScaleSmall:
		return FontSizes{H1: 36, H2: 28, H3: 20, Body: 14}, nil
	case models.FontScaleMedium:
		return FontSizes{H1: 48, H2: 36, H3: 24, Body: 16}, nil
	case models.FontScaleLarge:
		return FontSizes{H1: 56, H2: 40, H3: 28, Body: 18}, nil
	case models.FontScaleDisplay:
		return FontSizes{H1: 64, H2: 48, H3: 32, Body: 18}, nil
	}
	return FontSizes{}, unknown("fontScale", v)
}

// NavLinkSize returns the navigation link font size in pixels for a font scale.
func NavLinkSize(v models.FontScale) int {
	switch v {
	case models.FontScaleSmall:
		return 14
	case models.FontScaleLarge:
		return 16
	case models.FontScaleDisplay:
		return 17
	default:
		return 15
	}
}

// AnimationClass returns the entrance animation class for sections, or "" for none.
func AnimationClass(v models.SectionAnimation) string {
	switch v {
	case models.AnimationFade:
		return "cb-anim-fade"
	case models.AnimationSlide:
		return "cb-anim-slide"
	case models.AnimationZoom:
		return "cb-anim-zoom"
	default:
		return ""
	}
}

func LookupAnimation(v models.SectionAnimation) error {
	switch v {
	case models.AnimationNone, models.AnimationFade, models.AnimationSlide, models.AnimationZoom:
		return nil
	}
	return unknown("sectionAnimation", v)
}

func LookupButtonStyle(v models.ButtonStyle) error {
	switch v {
	case models.ButtonSolid, models.ButtonOutline, models.ButtonPill, models.ButtonRounded:
		return nil
	}
	return unknown("buttonStyle", v)
}

func LookupGradientType(v models.GradientType) error {
	switch v {
	case models.GradientLinear, models.GradientRadial:
		return nil
	}
	return unknown("heroGradientType", v)
}

func LookupNavigationStyle(v models.NavigationStyle) error {
	switch v {
	case models.NavHeader, models.NavSidebar, models.NavBoth:
		return nil
	}
	return unknown("navigation.style", v)
}

// Misses runs every strict lookup over a snapshot and returns the failures.
func Misses(state models.BuilderState) []error {
	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	_, err := LookupSectionPadding(state.Layout.SectionPadding)
	collect(err)
	_, err = LookupContentWidth(state.Layout.ContentWidth)
	collect(err)
	_, err = LookupSectionRadius(state.Layout.SectionRadius)
	collect(err)
	_, err = LookupCardShadow(state.Layout.CardShadow)
	collect(err)
	_, err = LookupFontScale(state.Typography.FontScale)
	collect(err)
	collect(LookupAnimation(state.Layout.SectionAnimation))
	collect(LookupButtonStyle(state.Buttons.Style))
	collect(LookupGradientType(state.Layout.HeroGradientType))
	collect(LookupNavigationStyle(state.Navigation.Style))
	return errs
}
