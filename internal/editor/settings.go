package editor

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/codr1/careerbuilder/internal/models"
	"github.com/codr1/careerbuilder/internal/style"
)

var ErrInvalidSetting = errors.New("invalid setting")

type setter func(s *models.BuilderState, value string) error

var setters = map[string]setter{
	"themeName": func(s *models.BuilderState, v string) error {
		s.ThemeName = v
		return nil
	},
	"logo": func(s *models.BuilderState, v string) error {
		s.Logo = strings.TrimSpace(v)
		return nil
	},
	"colors.primary":         colorSetter(func(s *models.BuilderState) *string { return &s.Colors.Primary }),
	"colors.secondary":       colorSetter(func(s *models.BuilderState) *string { return &s.Colors.Secondary }),
	"colors.accent":          colorSetter(func(s *models.BuilderState) *string { return &s.Colors.Accent }),
	"colors.heading":         colorSetter(func(s *models.BuilderState) *string { return &s.Colors.Heading }),
	"colors.text":            colorSetter(func(s *models.BuilderState) *string { return &s.Colors.Text }),
	"typography.headingFont": fontSetter(func(s *models.BuilderState) *string { return &s.Typography.HeadingFont }),
	"typography.bodyFont":    fontSetter(func(s *models.BuilderState) *string { return &s.Typography.BodyFont }),
	"typography.fontScale": func(s *models.BuilderState, v string) error {
		if _, err := style.LookupFontScale(models.FontScale(v)); err != nil {
			return err
		}
		s.Typography.FontScale = models.FontScale(v)
		return nil
	},
	"buttons.style": func(s *models.BuilderState, v string) error {
		if err := style.LookupButtonStyle(models.ButtonStyle(v)); err != nil {
			return err
		}
		s.Buttons.Style = models.ButtonStyle(v)
		return nil
	},
	"buttons.cornerRadius": intSetter(0, 64, func(s *models.BuilderState) *int { return &s.Buttons.CornerRadius }),
	"layout.sectionPadding": func(s *models.BuilderState, v string) error {
		if _, err := style.LookupSectionPadding(models.SectionPadding(v)); err != nil {
			return err
		}
		s.Layout.SectionPadding = models.SectionPadding(v)
		return nil
	},
	"layout.contentWidth": func(s *models.BuilderState, v string) error {
		if _, err := style.LookupContentWidth(models.ContentWidth(v)); err != nil {
			return err
		}
		s.Layout.ContentWidth = models.ContentWidth(v)
		return nil
	},
	"layout.sectionRadius": func(s *models.BuilderState, v string) error {
		if _, err := style.LookupSectionRadius(models.SectionRadius(v)); err != nil {
			return err
		}
		s.Layout.SectionRadius = models.SectionRadius(v)
		return nil
	},
	"layout.cardShadow": func(s *models.BuilderState, v string) error {
		if _, err := style.LookupCardShadow(models.CardShadow(v)); err != nil {
			return err
		}
		s.Layout.CardShadow = models.CardShadow(v)
		return nil
	},
	"layout.sectionAnimation": func(s *models.BuilderState, v string) error {
		if err := style.LookupAnimation(models.SectionAnimation(v)); err != nil {
			return err
		}
		s.Layout.SectionAnimation = models.SectionAnimation(v)
		return nil
	},
	"layout.hoverEffects": boolSetter(func(s *models.BuilderState) *bool { return &s.Layout.HoverEffects }),
	"layout.heroGradient": boolSetter(func(s *models.BuilderState) *bool { return &s.Layout.HeroGradient }),
	"layout.heroGradientType": func(s *models.BuilderState, v string) error {
		if err := style.LookupGradientType(models.GradientType(v)); err != nil {
			return err
		}
		s.Layout.HeroGradientType = models.GradientType(v)
		return nil
	},
	"layout.heroGradientAngle": intSetter(0, 360, func(s *models.BuilderState) *int { return &s.Layout.HeroGradientAngle }),
	"navigation.enabled":       boolSetter(func(s *models.BuilderState) *bool { return &s.Navigation.Enabled }),
	"navigation.style": func(s *models.BuilderState, v string) error {
		if err := style.LookupNavigationStyle(models.NavigationStyle(v)); err != nil {
			return err
		}
		s.Navigation.Style = models.NavigationStyle(v)
		return nil
	},
	"multiPageLayout": boolSetter(func(s *models.BuilderState) *bool { return &s.MultiPageLayout }),
}

// SettingNames lists the form fields ApplySettings understands, sorted.
func SettingNames() []string {
	names := make([]string, 0, len(setters))
	for name := range setters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplySettings sets every known field present in form, using the last value
// of each. Unknown fields are ignored. Enumerated values go through the strict
// style lookups, so nothing outside an enumeration is written. On any error
// the original state is returned with all failures joined.
func ApplySettings(state models.BuilderState, form url.Values) (models.BuilderState, error) {
	out := state.Clone()
	var errs []error
	for _, name := range SettingNames() {
		values, ok := form[name]
		if !ok || len(values) == 0 {
			continue
		}
		if err := setters[name](&out, values[len(values)-1]); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrInvalidSetting, name, err))
		}
	}
	if len(errs) > 0 {
		return state, errors.Join(errs...)
	}
	return out, nil
}

func colorSetter(field func(*models.BuilderState) *string) setter {
	return func(s *models.BuilderState, v string) error {
		v = strings.TrimSpace(v)
		if !models.IsHexColor(v) {
			return fmt.Errorf("%q is not a #rrggbb color", v)
		}
		*field(s) = v
		return nil
	}
}

func fontSetter(field func(*models.BuilderState) *string) setter {
	return func(s *models.BuilderState, v string) error {
		v = strings.TrimSpace(v)
		if v == "" {
			return errors.New("font is required")
		}
		*field(s) = v
		return nil
	}
}

func intSetter(min, max int, field func(*models.BuilderState) *int) setter {
	return func(s *models.BuilderState, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%q is not a number", v)
		}
		if n < min || n > max {
			return fmt.Errorf("%d is outside %d-%d", n, min, max)
		}
		*field(s) = n
		return nil
	}
}

// Checkboxes post "false" from a hidden input followed by "true" when
// checked; the last value wins.
func boolSetter(field func(*models.BuilderState) *bool) setter {
	return func(s *models.BuilderState, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			if v != "on" {
				return fmt.Errorf("%q is not a boolean", v)
			}
			b = true
		}
		*field(s) = b
		return nil
	}
}
