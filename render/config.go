package render

import (
	"fmt"
	"strings"

	"shaqyrtu-backend/models"
)

type Mode string

const (
	ModeEdit Mode = "edit"
	ModeView Mode = "view"
)

const (
	defaultDay  = "01-01-2027"
	defaultHour = "19:00"

	placeholderGroom = "Жігіт"
	placeholderBride = "Қалыңдық"

	defaultLocation    = "Зал мерекесі"
	defaultMusicTitle  = "Наша Песня"
	defaultMusicArtist = "— загрузите аудио файл —"
)

type Names struct {
	Bride string `json:"bride"`
	Groom string `json:"groom"`
}

type Music struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	URL    string `json:"url,omitempty"`
}

// Config is the flat, render-ready view of an invite. It is recomputed
// whenever the invite changes and replaced wholesale, never patched.
type Config struct {
	Version      int64    `json:"version"`
	Names        Names    `json:"names"`
	Day          string   `json:"day"`
	Hour         string   `json:"hour"`
	Location     string   `json:"location"`
	LocationURL  string   `json:"locationUrl,omitempty"`
	Music        Music    `json:"music"`
	Gallery      []string `json:"gallery"`
	Description  string   `json:"description,omitempty"`
	ToiOwners    string   `json:"toiOwners,omitempty"`
	HeroPhotoURL string   `json:"heroPhotoUrl,omitempty"`
	MaxGuests    int      `json:"maxGuests"`
	Autoplay     bool     `json:"autoplay"`
}

// parseNames resolves the two honoree names. Topic fields win; otherwise
// the title is split on the first "&". Lossy by design of the data: a
// free-text title is not guaranteed to carry two names.
func parseNames(inv *models.Invite) Names {
	groom := strings.TrimSpace(inv.Topic1)
	bride := strings.TrimSpace(inv.Topic2)
	if groom != "" || bride != "" {
		if groom == "" {
			groom = placeholderGroom
		}
		if bride == "" {
			bride = placeholderBride
		}
		return Names{Bride: bride, Groom: groom}
	}

	title := strings.TrimSpace(inv.Title)
	if idx := strings.Index(title, "&"); idx > 0 {
		groom = strings.TrimSpace(title[:idx])
		bride = strings.TrimSpace(title[idx+1:])
		if groom != "" && bride != "" {
			return Names{Bride: bride, Groom: groom}
		}
	}
	return Names{Bride: placeholderBride, Groom: placeholderGroom}
}

// BuildConfig maps an invite record into a Config for the given mode.
// All fields fall back to displayable defaults; the result is always
// complete enough to render.
func BuildConfig(inv *models.Invite, mode Mode, urls Normalizer) Config {
	day, hour := defaultDay, defaultHour
	if inv.EventDate != nil {
		d := *inv.EventDate
		day = fmt.Sprintf("%02d-%02d-%04d", d.Day(), int(d.Month()), d.Year())
		hour = fmt.Sprintf("%02d:%02d", d.Hour(), d.Minute())
	}

	gallery := make([]string, 0, len(inv.Gallery))
	for _, raw := range inv.Gallery {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		gallery = append(gallery, urls.Normalize(raw))
	}

	hero := inv.PreviewPhotoURL
	if hero == "" && len(gallery) > 0 {
		hero = gallery[0]
	}

	location := strings.TrimSpace(inv.LocationName)
	if location == "" {
		location = defaultLocation
	}

	musicTitle := strings.TrimSpace(inv.MusicTitle)
	if musicTitle == "" {
		musicTitle = defaultMusicTitle
	}
	musicArtist := strings.TrimSpace(inv.ToiOwners)
	if musicArtist == "" {
		musicArtist = defaultMusicArtist
	}

	return Config{
		Names:       parseNames(inv),
		Day:         day,
		Hour:        hour,
		Location:    location,
		LocationURL: strings.TrimSpace(inv.LocationURL),
		Music: Music{
			Title:  musicTitle,
			Artist: musicArtist,
			URL:    urls.Normalize(inv.MusicURL),
		},
		Gallery:      gallery,
		Description:  strings.TrimSpace(inv.Description),
		ToiOwners:    strings.TrimSpace(inv.ToiOwners),
		HeroPhotoURL: urls.Normalize(hero),
		MaxGuests:    inv.MaxGuests,
		Autoplay:     mode == ModeView,
	}
}
