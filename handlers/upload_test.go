package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"shaqyrtu-backend/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUploadRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	prev := config.AppConfig
	config.AppConfig = &config.Config{
		// Storage deliberately outside the URL namespace
		UploadsDir:    filepath.Join(t.TempDir(), "media-store"),
		PublicBaseURL: "https://shaqyrtu.kz",
	}
	t.Cleanup(func() { config.AppConfig = prev })

	r := gin.New()
	r.POST("/api/v1/uploads/image", UploadImage)
	r.POST("/api/v1/uploads/audio", UploadAudio)
	r.GET("/api/v1/uploads/list", ListUploads)
	return r
}

func postUpload(t *testing.T, r *gin.Engine, url, filename, category string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("payload"))
	require.NoError(t, err)
	if category != "" {
		require.NoError(t, mw.WriteField("category", category))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, url, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadURLPointsAtStaticMount(t *testing.T) {
	r := setupUploadRouter(t)

	w := postUpload(t, r, "/api/v1/uploads/image", "photo.jpg", "wedding")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			Path string `json:"path"`
			URL  string `json:"url"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, strings.HasPrefix(resp.Data.Path, "/uploads/images/wedding/"), resp.Data.Path)
	assert.True(t, strings.HasSuffix(resp.Data.Path, ".jpg"), resp.Data.Path)
	assert.NotContains(t, resp.Data.Path, "media-store")
	assert.Equal(t, "https://shaqyrtu.kz"+resp.Data.Path, resp.Data.URL)
}

func TestUploadAudioDefaultCategory(t *testing.T) {
	r := setupUploadRouter(t)

	w := postUpload(t, r, "/api/v1/uploads/audio", "song.mp3", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			Path string `json:"path"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.Data.Path, "/uploads/audios/misc/"), resp.Data.Path)
}

func TestUploadRejectsWrongExtension(t *testing.T) {
	r := setupUploadRouter(t)

	w := postUpload(t, r, "/api/v1/uploads/image", "song.mp3", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListUploadsReturnsMountPaths(t *testing.T) {
	r := setupUploadRouter(t)

	w := postUpload(t, r, "/api/v1/uploads/image", "photo.png", "toi")
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/uploads/list?type=image&category=toi", nil)
	lw := httptest.NewRecorder()
	r.ServeHTTP(lw, req)
	require.Equal(t, http.StatusOK, lw.Code)

	var resp struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(lw.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.True(t, strings.HasPrefix(resp.Data[0], "/uploads/images/toi/"), resp.Data[0])
	assert.NotContains(t, resp.Data[0], "media-store")
}
