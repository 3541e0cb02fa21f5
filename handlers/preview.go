package handlers

import (
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"shaqyrtu-backend/models"
	"shaqyrtu-backend/render"
	"shaqyrtu-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const previewTTL = 30 * time.Minute

// A preview session holds the live render host for one editor tab.
// Sessions are in-memory only; an abandoned tab is reaped by the
// janitor.
type previewSession struct {
	host     *render.Host
	owner    uuid.UUID
	lastSeen time.Time
}

var (
	previewMu sync.Mutex
	previews  = make(map[string]*previewSession)
)

// PreviewRequest is the editor's current draft. Nothing is persisted:
// the same payload shape as an invite, but no field is required.
type PreviewRequest struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
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
	Lang            string     `json:"lang"`
}

func (r *PreviewRequest) toInvite() models.Invite {
	return models.Invite{
		Title:           r.Title,
		Description:     r.Description,
		Template:        r.Template,
		Topic1:          r.Topic1,
		Topic2:          r.Topic2,
		ToiOwners:       r.ToiOwners,
		LocationName:    r.LocationName,
		LocationURL:     r.LocationURL,
		EventDate:       r.EventDate,
		PreviewPhotoURL: r.PreviewPhotoURL,
		Gallery:         r.Gallery,
		MusicURL:        r.MusicURL,
		MusicTitle:      r.MusicTitle,
		MaxGuests:       r.MaxGuests,
	}
}

// POST /api/v1/preview
func CreatePreview(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)

	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	id := uuid.New().String()
	session := &previewSession{
		host:     render.NewHost(pageRenderer, req.toInvite(), previewLang(req.Lang)),
		owner:    userID,
		lastSeen: time.Now(),
	}

	previewMu.Lock()
	previews[id] = session
	previewMu.Unlock()

	utils.SuccessResponse(c, http.StatusCreated, "Preview session created", gin.H{
		"sessionId": id,
	})
}

// PUT /api/v1/preview/:sid
func UpdatePreview(c *gin.Context) {
	session, ok := ownedPreview(c)
	if !ok {
		return
	}

	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	// A language switch mid-session remounts the surface
	if req.Lang != "" {
		session.host.SetLang(previewLang(req.Lang))
	}
	session.host.Update(req.toInvite())
	utils.SuccessResponse(c, http.StatusOK, "", nil)
}

// Only Kazakh and Russian documents exist; anything else previews as
// the default.
func previewLang(lang string) string {
	if lang == "ru" {
		return "ru"
	}
	return "kk"
}

// GET /api/v1/preview/:sid/document — the iframe src
func PreviewDocument(c *gin.Context) {
	session, ok := ownedPreview(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(session.host.Document()))
}

// GET /api/v1/preview/:sid/events — SSE stream of UPDATE_CONFIG /
// RELOAD events. The editor forwards them into the iframe via
// postMessage.
func PreviewEvents(c *gin.Context) {
	session, ok := ownedPreview(c)
	if !ok {
		return
	}

	ch, cancel := session.host.Subscribe()
	defer cancel()

	// The surface may have loaded before this stream attached
	session.host.Resync()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, open := <-ch:
			if !open {
				return false
			}
			c.SSEvent(ev.Type, ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// DELETE /api/v1/preview/:sid
func ClosePreview(c *gin.Context) {
	if _, ok := ownedPreview(c); !ok {
		return
	}

	previewMu.Lock()
	delete(previews, c.Param("sid"))
	previewMu.Unlock()

	utils.SuccessResponse(c, http.StatusOK, "Preview session closed", nil)
}

// StartPreviewJanitor reaps sessions whose editor tab went away.
func StartPreviewJanitor() {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			previewMu.Lock()
			for id, s := range previews {
				if time.Since(s.lastSeen) > previewTTL {
					delete(previews, id)
					log.Printf("🧹 Reaped idle preview session %s", id)
				}
			}
			previewMu.Unlock()
		}
	}()
}

func ownedPreview(c *gin.Context) (*previewSession, bool) {
	userID := utils.GetCurrentUserID(c)

	previewMu.Lock()
	session, ok := previews[c.Param("sid")]
	if ok {
		session.lastSeen = time.Now()
	}
	previewMu.Unlock()

	if !ok {
		utils.NotFound(c, "Preview session not found")
		return nil, false
	}
	if session.owner != userID {
		utils.Forbidden(c, "Not your preview session")
		return nil, false
	}
	return session, true
}
