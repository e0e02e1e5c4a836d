// Package snapshot decodes, repairs and encodes BuilderState snapshots.
//
// A stored snapshot may come from any older builder version or be hand
// edited. Normalize only guarantees the structural fields every renderer
// depends on (pages, activePage and navigation); all other fields pass through
// as decoded and the style resolvers default anything out of range.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/codr1/careerbuilder/internal/models"
)

var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Raw is a decoded snapshot of unknown shape: top-level keys mapped to their
// undecoded JSON values. Keeping values raw preserves the key order of pages.
type Raw map[string]json.RawMessage

const (
	keyThemeName              = "themeName"
	keyColors                 = "colors"
	keyLogo                   = "logo"
	keyTypography             = "typography"
	keyButtons                = "buttons"
	keyLayout                 = "layout"
	keyNavigation             = "navigation"
	keyMultiPageLayout        = "multiPageLayout"
	keySinglePageSectionOrder = "singlePageSectionOrder"
	keyPages                  = "pages"
	keyPageLabels             = "pageLabels"
	keyActivePage             = "activePage"
)

// Parse splits JSON text into a Raw mapping. The document must be an object.
func Parse(text []byte) (Raw, error) {
	trimmed := bytes.TrimSpace(text)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: not a JSON object", ErrInvalidSnapshot)
	}
	var raw Raw
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return raw, nil
}

// Decode parses and normalizes JSON text.
func Decode(text []byte) (models.BuilderState, error) {
	raw, err := Parse(text)
	if err != nil {
		return models.BuilderState{}, err
	}
	return Normalize(raw), nil
}

func Encode(state models.BuilderState) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Normalize produces a BuilderState whose pages, activePage and navigation
// satisfy the structural invariants:
//   - pages missing, not an object, or empty becomes {home: []}
//   - activePage missing or not a key of pages becomes the first page key
//   - navigation missing or not an object becomes {enabled: false, style: Both}
//
// Other fields are decoded field by field; a value of the wrong JSON type
// leaves that field at its zero value.
func Normalize(raw Raw) models.BuilderState {
	var state models.BuilderState

	decodeField(raw, keyThemeName, &state.ThemeName)
	decodeField(raw, keyColors, &state.Colors)
	decodeField(raw, keyLogo, &state.Logo)
	decodeField(raw, keyTypography, &state.Typography)
	decodeField(raw, keyButtons, &state.Buttons)
	decodeField(raw, keyLayout, &state.Layout)
	decodeField(raw, keyMultiPageLayout, &state.MultiPageLayout)
	decodeField(raw, keySinglePageSectionOrder, &state.SinglePageSectionOrder)
	decodeField(raw, keyPageLabels, &state.PageLabels)

	state.Pages = normalizePages(raw[keyPages])
	state.ActivePage = normalizeActivePage(raw[keyActivePage], state.Pages)
	state.Navigation = normalizeNavigation(raw[keyNavigation])

	return state
}

func decodeField(raw Raw, key string, dst any) {
	if value, ok := raw[key]; ok {
		decodeValue(key, value, dst)
	}
}

// decodeValue unmarshals one snapshot field, leaving dst untouched when the
// value is null or of the wrong type.
func decodeValue(field string, value json.RawMessage, dst any) {
	if isNull(value) {
		return
	}
	if err := json.Unmarshal(value, dst); err != nil {
		log.Debug().Err(err).Str("field", field).Msg("Snapshot field did not decode, leaving zero value")
	}
}

func normalizePages(value json.RawMessage) models.Pages {
	if !isObject(value) {
		return defaultPages()
	}
	var pages models.Pages
	if err := json.Unmarshal(value, &pages); err != nil || pages.Len() == 0 {
		return defaultPages()
	}
	return pages
}

func defaultPages() models.Pages {
	pages := models.NewPages()
	pages.Set(models.DefaultPageKey, nil)
	return pages
}

func normalizeActivePage(value json.RawMessage, pages models.Pages) string {
	var active string
	if len(value) > 0 && json.Unmarshal(value, &active) == nil && pages.Has(active) {
		return active
	}
	if first, ok := pages.First(); ok {
		return first
	}
	return models.DefaultPageKey
}

func normalizeNavigation(value json.RawMessage) models.NavigationSettings {
	if !isObject(value) {
		return models.DefaultNavigation()
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(value, &fields); err != nil {
		return models.DefaultNavigation()
	}
	var nav models.NavigationSettings
	if enabled, ok := fields["enabled"]; ok {
		decodeValue("navigation.enabled", enabled, &nav.Enabled)
	}
	if style, ok := fields["style"]; ok {
		decodeValue("navigation.style", style, &nav.Style)
	}
	return nav
}

func isObject(value json.RawMessage) bool {
	trimmed := bytes.TrimSpace(value)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func isNull(value json.RawMessage) bool {
	return string(bytes.TrimSpace(value)) == "null"
}
