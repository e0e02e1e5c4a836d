package themes

import (
	"strings"

	"github.com/codr1/careerbuilder/internal/presets"
)

type Preset struct {
	presets.Preset
	IsActive  bool
	IsDefault bool
}

type PresetPickerData struct {
	Presets []Preset
	// ApplyURL receives the chosen preset name as the "name" form value.
	ApplyURL string
}

func NewPreset(preset presets.Preset, activeName, defaultName string) Preset {
	return Preset{
		Preset:    preset,
		IsActive:  activeName != "" && strings.EqualFold(preset.Name, activeName),
		IsDefault: strings.EqualFold(preset.Name, defaultName),
	}
}

func NewPresets(set presets.Set, activeName string) []Preset {
	out := make([]Preset, len(set.Presets))
	for i, preset := range set.Presets {
		out[i] = NewPreset(preset, activeName, set.DefaultName)
	}
	return out
}
