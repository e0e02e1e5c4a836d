// Package presets reads the built-in theme presets.
package presets

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/codr1/careerbuilder/assets"
	"github.com/codr1/careerbuilder/internal/models"
)

const defaultSuffix = " DEFAULT"

var ErrUnknownPreset = errors.New("unknown theme preset")

type Preset struct {
	Name   string             `json:"name"`
	Colors models.ThemeColors `json:"colors"`
}

// Set is the parsed presets file in file order.
type Set struct {
	Presets     []Preset `json:"presets"`
	DefaultName string   `json:"defaultName"`
}

func (s Set) Lookup(name string) (Preset, bool) {
	for _, p := range s.Presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// Apply returns a copy of state with the named preset's name and colors.
func (s Set) Apply(state models.BuilderState, name string) (models.BuilderState, error) {
	preset, ok := s.Lookup(name)
	if !ok {
		return state, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	out := state.Clone()
	out.ThemeName = preset.Name
	out.Colors = preset.Colors
	return out, nil
}

var (
	loadOnce sync.Once
	loaded   Set
	loadErr  error
)

// Builtin parses the embedded presets file once.
func Builtin() (Set, error) {
	loadOnce.Do(func() {
		file, err := assets.ThemesFS.Open(assets.ThemesPath)
		if err != nil {
			loadErr = fmt.Errorf("open embedded themes file: %w", err)
			return
		}
		defer file.Close()
		loaded, loadErr = Parse(file)
	})
	return loaded, loadErr
}

// Parse reads presets: six non-empty lines each, the name first. Exactly one
// name may carry the DEFAULT suffix.
func Parse(r io.Reader) (Set, error) {
	lines, err := readNonEmptyLines(r)
	if err != nil {
		return Set{}, err
	}
	if len(lines)%6 != 0 {
		return Set{}, fmt.Errorf("themes file has %d non-empty lines, expected multiples of 6", len(lines))
	}

	set := Set{Presets: make([]Preset, 0, len(lines)/6)}
	for i := 0; i < len(lines); i += 6 {
		name := lines[i]
		if strings.HasSuffix(name, defaultSuffix) {
			name = strings.TrimSpace(strings.TrimSuffix(name, defaultSuffix))
			if name == "" {
				return Set{}, fmt.Errorf("theme name missing before DEFAULT at line %d", i+1)
			}
			if set.DefaultName != "" {
				return Set{}, fmt.Errorf("multiple DEFAULT themes: %q and %q", set.DefaultName, name)
			}
			set.DefaultName = name
		}
		if _, dup := set.Lookup(name); dup {
			return Set{}, fmt.Errorf("duplicate theme %q", name)
		}

		preset := Preset{
			Name: name,
			Colors: models.ThemeColors{
				Primary:   lines[i+1],
				Secondary: lines[i+2],
				Accent:    lines[i+3],
				Heading:   lines[i+4],
				Text:      lines[i+5],
			},
		}
		if err := preset.Colors.Validate(); err != nil {
			return Set{}, fmt.Errorf("invalid theme %q: %w", name, err)
		}
		set.Presets = append(set.Presets, preset)
	}

	return set, nil
}

func readNonEmptyLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	lines := []string{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read themes file: %w", err)
	}
	return lines, nil
}
