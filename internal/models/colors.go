package models

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme colors often back larger UI elements, not body text, so we use the AA large-text threshold.
const wcagAAMinContrastRatio = 3.0
const wcagAAContrastNote = "WCAG AA for large text/UI components"
const darkTextColor = "#000000"
const lightTextColor = "#FFFFFF"

const (
	DefaultThemeName      = "Default"
	defaultColorPrimary   = "#2563eb"
	defaultColorSecondary = "#0f172a"
	defaultColorAccent    = "#f59e0b"
	defaultColorHeading   = "#111827"
	defaultColorText      = "#374151"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func IsHexColor(value string) bool {
	return hexColorRegex.MatchString(strings.TrimSpace(value))
}

// ThemeColors is the page palette. No format is enforced on the values; the
// renderer falls back to the default palette per color.
type ThemeColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	Heading   string `json:"heading"`
	Text      string `json:"text"`
}

func DefaultColors() ThemeColors {
	return ThemeColors{
		Primary:   defaultColorPrimary,
		Secondary: defaultColorSecondary,
		Accent:    defaultColorAccent,
		Heading:   defaultColorHeading,
		Text:      defaultColorText,
	}
}

// Fields returns the colors keyed by their JSON names, in declaration order.
func (c ThemeColors) Fields() []ColorField {
	return []ColorField{
		{Name: "primary", Value: c.Primary},
		{Name: "secondary", Value: c.Secondary},
		{Name: "accent", Value: c.Accent},
		{Name: "heading", Value: c.Heading},
		{Name: "text", Value: c.Text},
	}
}

type ColorField struct {
	Name  string
	Value string
}

// Validate requires every color to be a 6-digit hex value. Background colors
// (primary, secondary, accent) must also be readable with black or white text.
func (c ThemeColors) Validate() error {
	for _, field := range c.Fields() {
		if !hexColorRegex.MatchString(field.Value) {
			return fmt.Errorf("%s must be a 6-digit hex color like #AABBCC", field.Name)
		}
	}
	for _, field := range c.Fields()[:3] {
		if err := validateTextContrast(field.Name, field.Value); err != nil {
			return err
		}
	}
	return nil
}

// ReadableTextColor picks black or white, whichever contrasts more with background.
func ReadableTextColor(background string) string {
	dark, err := contrastRatio(darkTextColor, background)
	if err != nil {
		return lightTextColor
	}
	light, err := contrastRatio(lightTextColor, background)
	if err != nil {
		return lightTextColor
	}
	if dark > light {
		return darkTextColor
	}
	return lightTextColor
}

func validateTextContrast(colorName, backgroundColor string) error {
	textColors := []string{darkTextColor, lightTextColor}
	bestRatio := 0.0
	bestText := ""
	for _, textColor := range textColors {
		ratio, err := contrastRatio(textColor, backgroundColor)
		if err != nil {
			return err
		}
		if ratio > bestRatio {
			bestRatio = ratio
			bestText = textColor
		}
	}
	if bestRatio < wcagAAMinContrastRatio {
		return fmt.Errorf(
			"%s must have contrast ratio >= %.1f with #000000 or #FFFFFF text (%s); best is %s at %.2f",
			colorName,
			wcagAAMinContrastRatio,
			wcagAAContrastNote,
			bestText,
			bestRatio,
		)
	}
	return nil
}

func contrastRatio(textColor, backgroundColor string) (float64, error) {
	textL, err := relativeLuminance(textColor)
	if err != nil {
		return 0, err
	}
	backgroundL, err := relativeLuminance(backgroundColor)
	if err != nil {
		return 0, err
	}
	lightest := math.Max(textL, backgroundL)
	darkest := math.Min(textL, backgroundL)
	return (lightest + 0.05) / (darkest + 0.05), nil
}

func relativeLuminance(hexColor string) (float64, error) {
	hexColor = strings.TrimSpace(hexColor)
	if !hexColorRegex.MatchString(hexColor) {
		return 0, fmt.Errorf("invalid hex color: %s", hexColor)
	}
	c, err := colorful.Hex(hexColor)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color: %s", hexColor)
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}
