package presets

import (
	"strings"
	"testing"

	"github.com/codr1/careerbuilder/internal/models"
)

func TestBuiltin(t *testing.T) {
	set, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}

	// assets/themes currently defines 8 presets.
	if len(set.Presets) != 8 {
		t.Fatalf("preset count = %d, want 8", len(set.Presets))
	}
	if set.DefaultName != models.DefaultThemeName {
		t.Fatalf("default preset = %q, want %q", set.DefaultName, models.DefaultThemeName)
	}

	def, ok := set.Lookup(set.DefaultName)
	if !ok {
		t.Fatalf("default preset not found")
	}
	if def.Colors != models.DefaultColors() {
		t.Fatalf("default preset colors = %+v, want DefaultColors()", def.Colors)
	}
	for _, p := range set.Presets {
		if strings.HasSuffix(p.Name, defaultSuffix) {
			t.Fatalf("preset name still contains DEFAULT suffix: %q", p.Name)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "short", input: "Ocean\n#000000\n#111111\n"},
		{name: "bad_color", input: "Ocean\n#000000\n#111111\n#222222\n#333333\nblue\n"},
		{name: "two_defaults", input: "A DEFAULT\n#000000\n#111111\n#222222\n#333333\n#444444\nB DEFAULT\n#000000\n#111111\n#222222\n#333333\n#444444\n"},
		{name: "duplicate", input: "A\n#000000\n#111111\n#222222\n#333333\n#444444\na\n#000000\n#111111\n#222222\n#333333\n#444444\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.input)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestApply(t *testing.T) {
	set, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}

	state := models.DefaultBuilderState()
	applied, err := set.Apply(state, "ocean")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if applied.ThemeName != "Ocean" {
		t.Fatalf("theme name = %q, want Ocean", applied.ThemeName)
	}
	if applied.Colors.Primary != "#0369a1" {
		t.Fatalf("primary = %q, want #0369a1", applied.Colors.Primary)
	}
	if state.ThemeName != models.DefaultThemeName {
		t.Fatalf("input state was modified")
	}

	if _, err := set.Apply(state, "Neon"); err == nil {
		t.Fatalf("expected unknown preset error")
	}
}
