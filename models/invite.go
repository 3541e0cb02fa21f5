package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Invite struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID uuid.UUID `gorm:"type:uuid;index" json:"owner_id"`
	Owner   User      `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`

	// Public URL part: /invite/{slug}
	Slug string `gorm:"uniqueIndex;size:120" json:"slug"`

	Title       string `gorm:"not null;size:140" json:"title"`
	Description string `gorm:"size:4000" json:"description,omitempty"`

	// Тақырып 1/2 — the two honoree names (groom/bride, child, jubilee...)
	Topic1 string `gorm:"size:100" json:"topic1,omitempty"`
	Topic2 string `gorm:"size:100" json:"topic2,omitempty"`

	// Той иелері — the hosting family
	ToiOwners    string `gorm:"size:200" json:"toiOwners,omitempty"`
	LocationName string `gorm:"size:200" json:"locationName,omitempty"`
	LocationURL  string `gorm:"size:500" json:"locationUrl,omitempty"`

	EventDate *time.Time `json:"eventDate,omitempty"`

	PreviewPhotoURL string         `gorm:"size:500" json:"previewPhotoUrl,omitempty"`
	Gallery         pq.StringArray `gorm:"type:text[]" json:"gallery"`
	MusicURL        string         `gorm:"size:500" json:"musicUrl,omitempty"`
	MusicTitle      string         `gorm:"size:150" json:"musicTitle,omitempty"`

	// Template identifier, e.g. "wedding/default.html"
	Template string `gorm:"size:80" json:"template"`

	// Zero means unlimited
	MaxGuests int `gorm:"not null;default:0" json:"maxGuests"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *Invite) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Request structs
type CreateInviteRequest struct {
	Title           string     `json:"title" binding:"required,max=140"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Template        string     `json:"template"`
	Topic1          string     `json:"topic1"`
	Topic2          string     `json:"topic2"`
	ToiOwners       string     `json:"toiOwners"`
	LocationName    string     `json:"locationName"`
	LocationURL     string     `json:"locationUrl"`
	EventDate       *time.Time `json:"eventDate"`
	PreviewPhotoURL string     `json:"previewPhotoUrl"`
	Gallery         []string   `json:"gallery"`
	MusicURL        string     `json:"musicUrl"`
	MusicTitle      string     `json:"musicTitle"`
	MaxGuests       int        `json:"maxGuests"`
}

// All fields optional; nil means "leave as is"
type UpdateInviteRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	Template        *string    `json:"template"`
	Topic1          *string    `json:"topic1"`
	Topic2          *string    `json:"topic2"`
	ToiOwners       *string    `json:"toiOwners"`
	LocationName    *string    `json:"locationName"`
	LocationURL     *string    `json:"locationUrl"`
	EventDate       *time.Time `json:"eventDate"`
	PreviewPhotoURL *string    `json:"previewPhotoUrl"`
	Gallery         *[]string  `json:"gallery"`
	MusicURL        *string    `json:"musicUrl"`
	MusicTitle      *string    `json:"musicTitle"`
	MaxGuests       *int       `json:"maxGuests"`
}

// Response structs
type InviteResponse struct {
	ID              uuid.UUID  `json:"id"`
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Topic1          string     `json:"topic1,omitempty"`
	Topic2          string     `json:"topic2,omitempty"`
	ToiOwners       string     `json:"toiOwners,omitempty"`
	LocationName    string     `json:"locationName,omitempty"`
	LocationURL     string     `json:"locationUrl,omitempty"`
	EventDate       *time.Time `json:"eventDate,omitempty"`
	PreviewPhotoURL string     `json:"previewPhotoUrl,omitempty"`
	Gallery         []string   `json:"gallery"`
	MusicURL        string     `json:"musicUrl,omitempty"`
	MusicTitle      string     `json:"musicTitle,omitempty"`
	Template        string     `json:"template"`
	MaxGuests       int        `json:"maxGuests"`
	ResponsesCount  int64      `json:"responsesCount"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (i *Invite) ToResponse(responsesCount int64) InviteResponse {
	gallery := []string(i.Gallery)
	if gallery == nil {
		gallery = []string{}
	}
	return InviteResponse{
		ID:              i.ID,
		Slug:            i.Slug,
		Title:           i.Title,
		Description:     i.Description,
		Topic1:          i.Topic1,
		Topic2:          i.Topic2,
		ToiOwners:       i.ToiOwners,
		LocationName:    i.LocationName,
		LocationURL:     i.LocationURL,
		EventDate:       i.EventDate,
		PreviewPhotoURL: i.PreviewPhotoURL,
		Gallery:         gallery,
		MusicURL:        i.MusicURL,
		MusicTitle:      i.MusicTitle,
		Template:        i.Template,
		MaxGuests:       i.MaxGuests,
		ResponsesCount:  responsesCount,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}
