package render

import (
	"encoding/json"
	"strconv"
	"strings"
	"sync"

	"shaqyrtu-backend/models"
)

const (
	EventUpdateConfig = "UPDATE_CONFIG"
	EventReload       = "RELOAD"
)

// Event is what flows from the host to the embedded preview surface.
// Fire-and-forget: the receiver re-applies the full config each time.
type Event struct {
	Type   string  `json:"type"`
	Config *Config `json:"config,omitempty"`
}

// Host owns the render lifecycle of a single invite preview. Structural
// edits rebuild the whole document; everything else becomes a config
// delta pushed to subscribers. Only the latest config is retained —
// rapid edits coalesce, last value wins.
type Host struct {
	renderer *Renderer
	lang     string

	mu        sync.Mutex
	invite    models.Invite
	doc       string
	version   int64
	lastSent  string
	structKey string
	subs      map[chan Event]struct{}
}

func NewHost(r *Renderer, inv models.Invite, lang string) *Host {
	h := &Host{
		renderer: r,
		lang:     lang,
		subs:     make(map[chan Event]struct{}),
	}
	h.mu.Lock()
	h.rebuildLocked(inv)
	h.mu.Unlock()
	return h
}

// Update takes the editor's current draft. A change to the document
// structure remounts the surface; a text-only change is delivered as an
// UPDATE_CONFIG message, de-duplicated by serialized equality.
func (h *Host) Update(inv models.Invite) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.structuralKey(inv) != h.structKey {
		h.rebuildLocked(inv)
		h.broadcastLocked(Event{Type: EventReload})
		return
	}

	h.invite = inv
	cfg := BuildConfig(&inv, ModeEdit, h.renderer.URLs)
	key := serializeForCompare(cfg)
	if key == h.lastSent {
		return
	}

	h.version++
	cfg.Version = h.version
	h.lastSent = key
	h.broadcastLocked(Event{Type: EventUpdateConfig, Config: &cfg})
}

// SetLang switches the preview language. A change is structural — the
// localization pass runs during assembly — so the document is rebuilt
// and the surface remounted.
func (h *Host) SetLang(lang string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if lang == h.lang {
		return
	}
	h.lang = lang
	h.rebuildLocked(h.invite)
	h.broadcastLocked(Event{Type: EventReload})
}

// Resync force-resends the current config. Called when the preview
// surface (re)loads: a message sent before its listener attached is lost
// and this covers the race.
func (h *Host) Resync() {
	h.mu.Lock()
	defer h.mu.Unlock()

	cfg := BuildConfig(&h.invite, ModeEdit, h.renderer.URLs)
	cfg.Version = h.version
	h.broadcastLocked(Event{Type: EventUpdateConfig, Config: &cfg})
}

// Document returns the currently assembled preview document.
func (h *Host) Document() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.doc
}

// Subscribe registers a listener for preview events. The returned cancel
// func must be called when the listener goes away.
func (h *Host) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 8)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

func (h *Host) rebuildLocked(inv models.Invite) {
	h.invite = inv
	h.version++
	doc, cfg := h.renderer.BuildDocument(&inv, Options{
		Mode:    ModeEdit,
		Lang:    h.lang,
		Version: h.version,
	})
	h.doc = doc
	h.lastSent = serializeForCompare(cfg)
	h.structKey = h.structuralKey(inv)
}

// Deliveries are best-effort: a subscriber that cannot keep up loses
// intermediate states, and Resync restores it on the next load.
func (h *Host) broadcastLocked(ev Event) {
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// structuralKey captures everything that changes the document's shape
// rather than its text: template, hero photo presence, gallery size,
// music source, guest limit (the guest-count buttons are built once
// from it at load), language. Anything else can be patched in place.
func (h *Host) structuralKey(inv models.Invite) string {
	hero := "0"
	if inv.PreviewPhotoURL != "" || len(inv.Gallery) > 0 {
		hero = "1"
	}
	return strings.Join([]string{
		inv.Template,
		hero,
		strings.Join(inv.Gallery, "|"),
		inv.MusicURL,
		strconv.Itoa(inv.MaxGuests),
		h.lang,
	}, "\x00")
}

func serializeForCompare(cfg Config) string {
	cfg.Version = 0
	raw, _ := json.Marshal(cfg)
	return string(raw)
}
