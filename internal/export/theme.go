package export

// Theme is a document color scheme. Colors are RRGGBB hex without the hash.
type Theme struct {
	Name       string
	Primary    string
	Secondary  string
	Accent     string
	Text       string
	Background string
}

// DefaultThemeName is used when the caller names no theme or an unknown one.
const DefaultThemeName = "professional_blue"

var themes = map[string]Theme{
	"professional_blue": {
		Name:       "professional_blue",
		Primary:    "2E75B6",
		Secondary:  "4472C4",
		Accent:     "5B9BD5",
		Text:       "404040",
		Background: "FFFFFF",
	},
	"modern_minimal": {
		Name:       "modern_minimal",
		Primary:    "595959",
		Secondary:  "7F7F7F",
		Accent:     "A6A6A6",
		Text:       "404040",
		Background: "FFFFFF",
	},
	"creative_vibrant": {
		Name:       "creative_vibrant",
		Primary:    "E74C3C",
		Secondary:  "3498DB",
		Accent:     "2ECC71",
		Text:       "2C3E50",
		Background: "FFFFFF",
	},
	"classic_formal": {
		Name:       "classic_formal",
		Primary:    "1F3864",
		Secondary:  "4F81BD",
		Accent:     "C00000",
		Text:       "000000",
		Background: "FFFFFF",
	},
}

// ThemeByName resolves a theme, falling back to the default for unknown names.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultThemeName]
}
