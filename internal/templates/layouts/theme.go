package layouts

import (
	"github.com/codr1/careerbuilder/internal/models"
	"github.com/codr1/careerbuilder/internal/style"
)

// ThemeCSSVars resolves a snapshot's style into :root custom properties.
// A nil state uses the default builder state, so blank or malformed colors
// always fall back to the default palette.
func ThemeCSSVars(state *models.BuilderState) string {
	if state == nil {
		defaults := models.DefaultBuilderState()
		state = &defaults
	}
	return style.Resolve(*state).CSSVars()
}
