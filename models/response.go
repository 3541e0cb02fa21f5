package models

import (
	"time"

	"github.com/google/uuid"
)

type GuestResponse struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	InviteID    uuid.UUID `gorm:"type:uuid;index;not null" json:"invite_id"`
	Invite      Invite    `gorm:"foreignKey:InviteID" json:"-"`
	GuestName   string    `gorm:"not null;size:120" json:"guestName"`
	Phone       string    `gorm:"not null;size:30" json:"phone"`
	GuestsCount int       `gorm:"not null;default:1" json:"guestsCount"`
	Attending   bool      `gorm:"not null" json:"attending"`
	Note        string    `gorm:"size:500" json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type RespondInviteRequest struct {
	GuestName   string `json:"guestName" binding:"required,max=120"`
	Phone       string `json:"phone" binding:"required,max=30"`
	GuestsCount int    `json:"guestsCount"`
	Attending   bool   `json:"attending"`
	Note        string `json:"note"`
}

// Aggregate view for the owner's guest list page
type InviteStats struct {
	InviteID        uuid.UUID       `json:"inviteId"`
	AttendingCount  int64           `json:"attendingCount"`
	DeclinedCount   int64           `json:"declinedCount"`
	TotalGuests     int64           `json:"totalGuests"`
	RecentResponses []GuestResponse `json:"recentResponses"`
}
