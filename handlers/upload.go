package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"shaqyrtu-backend/config"
	"shaqyrtu-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

var audioExts = map[string]bool{
	".mp3": true,
	".m4a": true,
	".ogg": true,
	".wav": true,
}

const maxUploadBytes = 25 << 20

// POST /api/v1/uploads/image — multipart form with "file" and an
// optional "category" subfolder.
func UploadImage(c *gin.Context) {
	saveUpload(c, "image", imageExts)
}

// POST /api/v1/uploads/audio
func UploadAudio(c *gin.Context) {
	saveUpload(c, "audio", audioExts)
}

func saveUpload(c *gin.Context, kind string, allowed map[string]bool) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "File is required")
		return
	}
	if file.Size > maxUploadBytes {
		utils.BadRequest(c, "File too large")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowed[ext] {
		utils.BadRequest(c, "Unsupported file type")
		return
	}

	category := sanitizeCategory(c.PostForm("category"))
	dir := filepath.Join(config.AppConfig.UploadsDir, kind+"s", category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		utils.InternalError(c, "Failed to prepare upload directory")
		return
	}

	name := uuid.New().String() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		utils.InternalError(c, "Failed to save file")
		return
	}

	// URLs point at the /uploads static mount, never at the storage
	// directory, which may live anywhere on disk
	rel := path.Join("/uploads", kind+"s", category, name)
	utils.SuccessResponse(c, http.StatusCreated, "File uploaded", gin.H{
		"path": rel,
		"url":  config.AppConfig.PublicBaseURL + rel,
	})
}

// GET /api/v1/uploads/list?type=image&category=wedding
func ListUploads(c *gin.Context) {
	kind := c.DefaultQuery("type", "image")
	if kind != "image" && kind != "audio" {
		utils.BadRequest(c, "Type must be image or audio")
		return
	}

	category := sanitizeCategory(c.Query("category"))
	entries, err := os.ReadDir(filepath.Join(config.AppConfig.UploadsDir, kind+"s", category))
	if err != nil {
		utils.SuccessResponse(c, http.StatusOK, "", []string{})
		return
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		paths = append(paths, path.Join("/uploads", kind+"s", category, e.Name()))
	}
	utils.SuccessResponse(c, http.StatusOK, "", paths)
}

// Category names become directory names, so anything outside
// [a-z0-9-] is dropped and traversal is impossible.
func sanitizeCategory(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	var b strings.Builder
	for _, r := range category {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "misc"
	}
	return b.String()
}
