package render

import (
	"testing"
	"time"

	"shaqyrtu-backend/models"

	"github.com/stretchr/testify/assert"
)

var testURLs = NewNormalizer("https://shaqyrtu.kz")

func TestBuildConfigDefaults(t *testing.T) {
	inv := &models.Invite{Title: "Той"}
	cfg := BuildConfig(inv, ModeEdit, testURLs)

	assert.Equal(t, "01-01-2027", cfg.Day)
	assert.Equal(t, "19:00", cfg.Hour)
	assert.Equal(t, "Зал мерекесі", cfg.Location)
	assert.Equal(t, "Жігіт", cfg.Names.Groom)
	assert.Equal(t, "Қалыңдық", cfg.Names.Bride)
	assert.Empty(t, cfg.Gallery)
	assert.False(t, cfg.Autoplay)
}

func TestBuildConfigEventDateZeroPadded(t *testing.T) {
	d := time.Date(2026, time.March, 7, 9, 5, 0, 0, time.UTC)
	inv := &models.Invite{Title: "Той", EventDate: &d}
	cfg := BuildConfig(inv, ModeEdit, testURLs)

	assert.Equal(t, "07-03-2026", cfg.Day)
	assert.Equal(t, "09:05", cfg.Hour)
}

func TestBuildConfigTopicNamesWin(t *testing.T) {
	inv := &models.Invite{
		Title:  "Aset & Madina",
		Topic1: "Adil",
		Topic2: "Aigul",
	}
	cfg := BuildConfig(inv, ModeEdit, testURLs)

	assert.Equal(t, "Adil", cfg.Names.Groom)
	assert.Equal(t, "Aigul", cfg.Names.Bride)
}

func TestBuildConfigFullInvite(t *testing.T) {
	d := time.Date(2026, time.June, 12, 18, 30, 0, 0, time.UTC)
	inv := &models.Invite{
		Title:        "Adil & Aigul",
		Topic1:       "Adil",
		Topic2:       "Aigul",
		EventDate:    &d,
		LocationName: "Almaty Hall",
		MaxGuests:    20,
	}
	cfg := BuildConfig(inv, ModeEdit, testURLs)

	assert.Equal(t, Names{Groom: "Adil", Bride: "Aigul"}, cfg.Names)
	assert.Equal(t, "12-06-2026", cfg.Day)
	assert.Equal(t, "18:30", cfg.Hour)
	assert.Equal(t, "Almaty Hall", cfg.Location)
	assert.Equal(t, 20, cfg.MaxGuests)
}

func TestBuildConfigNamesFromTitle(t *testing.T) {
	inv := &models.Invite{Title: "Aset & Madina"}
	cfg := BuildConfig(inv, ModeEdit, testURLs)

	assert.Equal(t, "Aset", cfg.Names.Groom)
	assert.Equal(t, "Madina", cfg.Names.Bride)
}

func TestBuildConfigSingleTopicFillsPlaceholder(t *testing.T) {
	inv := &models.Invite{Title: "Сүндет той", Topic1: "Алихан"}
	cfg := BuildConfig(inv, ModeEdit, testURLs)

	assert.Equal(t, "Алихан", cfg.Names.Groom)
	assert.Equal(t, "Қалыңдық", cfg.Names.Bride)
}

func TestBuildConfigTitleWithoutAmpersand(t *testing.T) {
	inv := &models.Invite{Title: "Мерейтой 60 жас"}
	cfg := BuildConfig(inv, ModeEdit, testURLs)

	assert.Equal(t, "Жігіт", cfg.Names.Groom)
	assert.Equal(t, "Қалыңдық", cfg.Names.Bride)
}

func TestBuildConfigGalleryFilteredAndNormalized(t *testing.T) {
	inv := &models.Invite{
		Title:   "Той",
		Gallery: []string{"uploads/images/a.jpg", "  ", "http://localhost:9191/uploads/images/b.jpg"},
	}
	cfg := BuildConfig(inv, ModeEdit, testURLs)

	assert.Equal(t, []string{
		"https://shaqyrtu.kz/uploads/images/a.jpg",
		"https://shaqyrtu.kz/uploads/images/b.jpg",
	}, cfg.Gallery)
}

func TestBuildConfigHeroFallsBackToGallery(t *testing.T) {
	inv := &models.Invite{
		Title:   "Той",
		Gallery: []string{"/uploads/images/first.jpg"},
	}
	cfg := BuildConfig(inv, ModeEdit, testURLs)

	assert.Equal(t, "https://shaqyrtu.kz/uploads/images/first.jpg", cfg.HeroPhotoURL)
}

func TestBuildConfigHeroPrefersPreviewPhoto(t *testing.T) {
	inv := &models.Invite{
		Title:           "Той",
		PreviewPhotoURL: "/uploads/images/hero.jpg",
		Gallery:         []string{"/uploads/images/other.jpg"},
	}
	cfg := BuildConfig(inv, ModeEdit, testURLs)

	assert.Equal(t, "https://shaqyrtu.kz/uploads/images/hero.jpg", cfg.HeroPhotoURL)
}

func TestBuildConfigAutoplayOnlyInView(t *testing.T) {
	inv := &models.Invite{Title: "Той"}

	assert.True(t, BuildConfig(inv, ModeView, testURLs).Autoplay)
	assert.False(t, BuildConfig(inv, ModeEdit, testURLs).Autoplay)
}
