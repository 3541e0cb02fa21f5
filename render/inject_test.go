package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const injectSampleHTML = `<html><head><title>Old Title</title></head><body>
<div class="hero-photo-placeholder">Сурет жоқ</div>
<script>
    const CONFIG = {
        "day": "stale"
    };
</script>
</body></html>`

func TestInjectContentReplacesConfigBlock(t *testing.T) {
	cfg := Config{Day: "07-03-2026", Hour: "18:30", Gallery: []string{}}
	out := InjectContent(injectSampleHTML, cfg)

	assert.NotContains(t, out, `"day": "stale"`)
	assert.Contains(t, out, `"day": "07-03-2026"`)
	assert.Contains(t, out, `"hour": "18:30"`)
	// still exactly one CONFIG block
	assert.Equal(t, 1, strings.Count(out, "const CONFIG = {"))
}

func TestInjectContentTitleFromMusic(t *testing.T) {
	cfg := Config{Music: Music{Title: "Біздің ән"}, Gallery: []string{}}
	out := InjectContent(injectSampleHTML, cfg)

	assert.Contains(t, out, "<title>Біздің ән</title>")
	assert.NotContains(t, out, "Old Title")
}

func TestInjectContentTitleEscaped(t *testing.T) {
	cfg := Config{Music: Music{Title: "a<b"}, Gallery: []string{}}
	out := InjectContent(injectSampleHTML, cfg)
	assert.Contains(t, out, "<title>a&lt;b</title>")
}

func TestInjectContentHeroOnlyWhenSet(t *testing.T) {
	without := InjectContent(injectSampleHTML, Config{Gallery: []string{}})
	assert.Contains(t, without, `hero-photo-placeholder`)

	with := InjectContent(injectSampleHTML, Config{
		HeroPhotoURL: `https://shaqyrtu.kz/uploads/a".jpg`,
		Gallery:      []string{},
	})
	assert.NotContains(t, with, "hero-photo-placeholder")
	assert.Contains(t, with, `src="https://shaqyrtu.kz/uploads/a&quot;.jpg"`)
}

func TestInjectRSVPBindsInviteAndLimit(t *testing.T) {
	out := InjectRSVP(injectSampleHTML, "abc-123", 5)

	assert.Contains(t, out, "/api/v1/invites/abc-123/respond")
	assert.Contains(t, out, "var maxGuests = 5;")
	// script lands inside the document
	require.True(t, strings.Index(out, "rsvpForm") < strings.Index(out, "</body>"))
}

func TestInjectRSVPWithoutInviteIsNoop(t *testing.T) {
	assert.Equal(t, injectSampleHTML, InjectRSVP(injectSampleHTML, "", 5))
}

func TestInjectAutoplayViewOnly(t *testing.T) {
	assert.Equal(t, injectSampleHTML, InjectAutoplay(injectSampleHTML, false))

	out := InjectAutoplay(injectSampleHTML, true)
	assert.Contains(t, out, "window.top !== window.self")
	assert.Contains(t, out, "requestAnimationFrame")
}

func TestInjectLiveBridge(t *testing.T) {
	out := InjectLiveBridge(injectSampleHTML)

	assert.Contains(t, out, "UPDATE_CONFIG")
	assert.Contains(t, out, "cfg.version < lastVersion")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</html>"))
}
