package render

import (
	"regexp"
	"strings"
)

// Templates that style themselves carry this marker and are left alone.
const paletteOptOutMarker = "<!-- palette:off -->"

type Palette struct {
	Wine      string
	WineDark  string
	WineLight string
	Gold      string
	GoldLight string
	Cream     string
	Text      string
}

var palettes = map[string]Palette{
	"classic": {
		Wine:      "#6b1f2e",
		WineDark:  "#4a1020",
		WineLight: "#8a2a3e",
		Gold:      "#c9a96e",
		GoldLight: "#e8d5b7",
		Cream:     "#faf6ef",
		Text:      "#2a1015",
	},
	"royal": {
		Wine:      "#2f3f6f",
		WineDark:  "#1f2c52",
		WineLight: "#445a94",
		Gold:      "#d4b775",
		GoldLight: "#f0e1c0",
		Cream:     "#f6f8ff",
		Text:      "#111a30",
	},
	"nature": {
		Wine:      "#1f5d3f",
		WineDark:  "#123d29",
		WineLight: "#2f7d56",
		Gold:      "#d2ba74",
		GoldLight: "#efe3bf",
		Cream:     "#f6fbf7",
		Text:      "#123323",
	},
	"modern": {
		Wine:      "#1f1f1f",
		WineDark:  "#111111",
		WineLight: "#323232",
		Gold:      "#c7ad74",
		GoldLight: "#efe4cd",
		Cream:     "#f8f8f8",
		Text:      "#111111",
	},
}

// Palette picked per template file first, then per category.
var paletteByFileKey = map[string]string{
	"wedding/template2": "royal",
}

var paletteByCategory = map[string]string{
	"wedding":    "classic",
	"uzatu":      "classic",
	"merei":      "royal",
	"sundet":     "nature",
	"tusaukeser": "nature",
	"besik":      "modern",
	"common":     "classic",
}

// PaletteFor picks the palette for a template: exact file key, then
// category, then classic.
func PaletteFor(tpl *Template) Palette {
	fileKey := tpl.Category + "/" + strings.TrimSuffix(tpl.File, ".html")
	if name, ok := paletteByFileKey[fileKey]; ok {
		return palettes[name]
	}
	if name, ok := paletteByCategory[tpl.Category]; ok {
		return palettes[name]
	}
	return palettes["classic"]
}

var paletteVarPattern = regexp.MustCompile(`(--[a-z-]+):\s*#[0-9a-fA-F]{3,8};`)

// ApplyPalette replaces the seven known CSS custom-property declarations
// in the document with the palette's values. Declarations are matched by
// property name only; whatever color the template shipped with is
// overwritten. Templates with the opt-out marker are returned untouched.
func ApplyPalette(html string, p Palette) string {
	if strings.Contains(html, paletteOptOutMarker) {
		return html
	}

	values := map[string]string{
		"--wine":       p.Wine,
		"--wine-dark":  p.WineDark,
		"--wine-light": p.WineLight,
		"--gold":       p.Gold,
		"--gold-light": p.GoldLight,
		"--cream":      p.Cream,
		"--text":       p.Text,
	}

	return paletteVarPattern.ReplaceAllStringFunc(html, func(decl string) string {
		name := decl[:strings.Index(decl, ":")]
		value, ok := values[name]
		if !ok {
			return decl
		}
		return name + ": " + value + ";"
	})
}
