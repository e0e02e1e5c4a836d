package builder

import (
	"fmt"
	"time"

	"github.com/codr1/careerbuilder/internal/models"
	"github.com/codr1/careerbuilder/internal/presets"
	"github.com/codr1/careerbuilder/internal/sections"
	"github.com/codr1/careerbuilder/internal/templates/components/themes"
	"github.com/codr1/careerbuilder/internal/uitheme"
)

type EditorData struct {
	State    models.BuilderState
	Presets  []themes.Preset
	Debounce time.Duration
}

type SectionItem struct {
	sections.Meta
	Index int
	First bool
	Last  bool
}

type PageItem struct {
	Key    string
	Label  string
	Active bool
}

type ChromeData struct {
	Mode  uitheme.Mode
	Modes []uitheme.Mode
}

func NewEditorData(state models.BuilderState, set presets.Set, debounce time.Duration) EditorData {
	return EditorData{
		State:    state,
		Presets:  themes.NewPresets(set, state.ThemeName),
		Debounce: debounce,
	}
}

// ActivePage is the page whose sections the editor lists.
func (d EditorData) ActivePage() string {
	return d.State.ActivePage
}

func (d EditorData) Sections() []SectionItem {
	current := d.State.CurrentSections(d.ActivePage())
	items := make([]SectionItem, len(current))
	for i, id := range current {
		items[i] = SectionItem{
			Meta:  sections.MetaOrGeneric(id),
			Index: i,
			First: i == 0,
			Last:  i == len(current)-1,
		}
	}
	return items
}

func (d EditorData) Addable() []sections.Meta {
	return sections.Addable(d.State.CurrentSections(d.ActivePage()))
}

func (d EditorData) Pages() []PageItem {
	keys := d.State.Pages.Keys()
	items := make([]PageItem, len(keys))
	for i, key := range keys {
		items[i] = PageItem{Key: key, Label: d.State.PageLabel(key), Active: key == d.ActivePage()}
	}
	return items
}

// TriggerDelay is the hx-trigger modifier that debounces autosave.
func (d EditorData) TriggerDelay() string {
	ms := d.Debounce.Milliseconds()
	if ms <= 0 {
		return "change"
	}
	return fmt.Sprintf("change delay:%dms", ms)
}

func NewChromeData(mode uitheme.Mode) ChromeData {
	return ChromeData{Mode: mode, Modes: uitheme.Modes}
}
