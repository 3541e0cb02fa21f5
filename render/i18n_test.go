package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const i18nSample = `<h2>Тойымыздың уақыты:</h2>
<p>15 Мамыр 2026 жылы</p>
<div>Мам</div>
<button>Жауап жіберу</button>`

func TestLocalizeDefaultLangIsNoop(t *testing.T) {
	assert.Equal(t, i18nSample, Localize(i18nSample, "kk"))
	assert.Equal(t, i18nSample, Localize(i18nSample, ""))
	assert.Equal(t, i18nSample, Localize(i18nSample, "en"))
}

func TestLocalizeRussian(t *testing.T) {
	out := Localize(i18nSample, "ru")

	assert.Contains(t, out, "Время нашего торжества:")
	assert.Contains(t, out, "15 Май 2026 года")
	assert.Contains(t, out, "Отправить ответ")
	assert.NotContains(t, out, "Тойымыздың")
}

func TestLocalizeFullMonthBeatsShort(t *testing.T) {
	out := Localize("<p>Мамыр</p><p>Мам</p>", "ru")
	assert.Equal(t, "<p>Май</p><p>Май</p>", out)
}

func TestLocalizeIdempotent(t *testing.T) {
	once := Localize(i18nSample, "ru")
	twice := Localize(once, "ru")
	assert.Equal(t, once, twice)
}

func TestLocalizeNoSourceInTargets(t *testing.T) {
	// The single-pass guarantee depends on no translation containing a
	// phrase that is itself translatable.
	for _, p := range phrasesRU {
		assert.Equal(t, p[1], Localize(p[1], "ru"), "target %q must be stable", p[1])
	}
}
