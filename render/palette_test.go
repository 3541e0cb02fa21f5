package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const paletteSampleCSS = `<style>
:root {
    --wine: #111111;
    --wine-dark: #222222;
    --wine-light: #333333;
    --gold: #444444;
    --gold-light: #555555;
    --cream: #666666;
    --text: #777777;
    --spacing: #888888;
}
</style>`

func TestApplyPaletteReplacesAllSevenSlots(t *testing.T) {
	out := ApplyPalette(paletteSampleCSS, palettes["royal"])

	assert.Contains(t, out, "--wine: #2f3f6f;")
	assert.Contains(t, out, "--wine-dark: #1f2c52;")
	assert.Contains(t, out, "--wine-light: #445a94;")
	assert.Contains(t, out, "--gold: #d4b775;")
	assert.Contains(t, out, "--gold-light: #f0e1c0;")
	assert.Contains(t, out, "--cream: #f6f8ff;")
	assert.Contains(t, out, "--text: #111a30;")
}

func TestApplyPaletteLeavesUnknownProperties(t *testing.T) {
	out := ApplyPalette(paletteSampleCSS, palettes["classic"])
	assert.Contains(t, out, "--spacing: #888888;")
}

func TestApplyPaletteOptOut(t *testing.T) {
	html := paletteOptOutMarker + "\n" + paletteSampleCSS
	assert.Equal(t, html, ApplyPalette(html, palettes["modern"]))
}

func TestPaletteForFileKeyBeatsCategory(t *testing.T) {
	tpl := &Template{Category: "wedding", File: "template2.html"}
	assert.Equal(t, palettes["royal"], PaletteFor(tpl))
}

func TestPaletteForCategory(t *testing.T) {
	assert.Equal(t, palettes["nature"], PaletteFor(&Template{Category: "sundet", File: "default.html"}))
	assert.Equal(t, palettes["modern"], PaletteFor(&Template{Category: "besik", File: "default.html"}))
	assert.Equal(t, palettes["classic"], PaletteFor(&Template{Category: "somethingelse", File: "x.html"}))
}

func TestEmbeddedTemplatesAcceptPalette(t *testing.T) {
	reg := newTestRegistry(t)

	tpl := reg.Resolve("wedding/default.html")
	out := ApplyPalette(tpl.HTML, palettes["nature"])
	assert.Contains(t, out, "--wine: #1f5d3f;")
	assert.False(t, strings.Contains(out, "--wine: #6b1f2e;"))
}
