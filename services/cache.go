package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"shaqyrtu-backend/database"
)

// Rendered invite pages are immutable between edits, so the public
// /invite/:slug path serves them straight from redis when it is up.
const documentTTL = 15 * time.Minute

var cacheLangs = []string{"kk", "ru"}

func documentKey(slug, lang string) string {
	return fmt.Sprintf("invite:doc:%s:%s", slug, lang)
}

// CachedDocument returns the cached rendered page, if any.
func CachedDocument(ctx context.Context, slug, lang string) (string, bool) {
	if database.Redis == nil {
		return "", false
	}
	html, err := database.Redis.Get(ctx, documentKey(slug, lang)).Result()
	if err != nil {
		return "", false
	}
	return html, true
}

// StoreDocument caches a rendered page. Best-effort: a write failure
// only costs a re-render on the next request.
func StoreDocument(ctx context.Context, slug, lang, html string) {
	if database.Redis == nil {
		return
	}
	if err := database.Redis.Set(ctx, documentKey(slug, lang), html, documentTTL).Err(); err != nil {
		log.Printf("⚠️  Failed to cache document for %s: %v", slug, err)
	}
}

// InvalidateDocuments drops every cached language variant of an invite.
// Called after any edit or delete so guests never see a stale page.
func InvalidateDocuments(ctx context.Context, slug string) {
	if database.Redis == nil || slug == "" {
		return
	}
	keys := make([]string, 0, len(cacheLangs))
	for _, lang := range cacheLangs {
		keys = append(keys, documentKey(slug, lang))
	}
	if err := database.Redis.Del(ctx, keys...).Err(); err != nil {
		log.Printf("⚠️  Failed to invalidate cache for %s: %v", slug, err)
	}
}
