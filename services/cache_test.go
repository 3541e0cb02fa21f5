package services

import (
	"context"
	"testing"

	"shaqyrtu-backend/database"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	database.Redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { database.Redis = nil })
}

func TestDocumentCacheRoundTrip(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	_, ok := CachedDocument(ctx, "aset-madina-abc123", "kk")
	assert.False(t, ok)

	StoreDocument(ctx, "aset-madina-abc123", "kk", "<html>kk</html>")
	StoreDocument(ctx, "aset-madina-abc123", "ru", "<html>ru</html>")

	html, ok := CachedDocument(ctx, "aset-madina-abc123", "kk")
	require.True(t, ok)
	assert.Equal(t, "<html>kk</html>", html)

	html, ok = CachedDocument(ctx, "aset-madina-abc123", "ru")
	require.True(t, ok)
	assert.Equal(t, "<html>ru</html>", html)
}

func TestInvalidateDropsAllLanguages(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	StoreDocument(ctx, "toi-abc123", "kk", "<html>kk</html>")
	StoreDocument(ctx, "toi-abc123", "ru", "<html>ru</html>")
	StoreDocument(ctx, "other-def456", "kk", "<html>other</html>")

	InvalidateDocuments(ctx, "toi-abc123")

	_, ok := CachedDocument(ctx, "toi-abc123", "kk")
	assert.False(t, ok)
	_, ok = CachedDocument(ctx, "toi-abc123", "ru")
	assert.False(t, ok)

	// Neighbors are untouched
	_, ok = CachedDocument(ctx, "other-def456", "kk")
	assert.True(t, ok)
}

func TestCacheSafeWithoutRedis(t *testing.T) {
	database.Redis = nil
	ctx := context.Background()

	StoreDocument(ctx, "s", "kk", "<html></html>")
	InvalidateDocuments(ctx, "s")
	_, ok := CachedDocument(ctx, "s", "kk")
	assert.False(t, ok)
}
