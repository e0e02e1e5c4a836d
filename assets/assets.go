package assets

import "embed"

// ThemesPath is the preset file: six non-empty lines per preset, a name
// followed by primary, secondary, accent, heading and text colors.
const ThemesPath = "themes"

//go:embed themes
var ThemesFS embed.FS
