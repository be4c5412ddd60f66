package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/media"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
)

type MediaHandler struct {
	media *media.Service
	// only set with the memory driver; S3 serves its own objects
	objects *media.MemoryUploader
}

func NewMediaHandler(svc *media.Service, objects *media.MemoryUploader) *MediaHandler {
	return &MediaHandler{media: svc, objects: objects}
}

type UploadResponse struct {
	URL string `json:"url"`
}

// POST /api/me/media stores an image (review photos, chat images) and
// returns its public URL.
func (h *MediaHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile(uploadField)
	if err != nil || fh.Size > media.MaxUploadBytes {
		badRequest(c)
		return
	}
	f, err := fh.Open()
	if err != nil {
		badRequest(c)
		return
	}
	defer f.Close()

	url, err := h.media.Store(c.Request.Context(), "uploads/"+middleware.OwnerID(c), f)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.Created(c, UploadResponse{URL: url})
}

// GET /media/*key
func (h *MediaHandler) Serve(c *gin.Context) {
	if h.objects == nil {
		httperr.NotFound(c, "media_not_found", "Không tìm thấy tệp.")
		return
	}
	obj, ok := h.objects.Get(strings.TrimPrefix(c.Param("key"), "/"))
	if !ok {
		httperr.NotFound(c, "media_not_found", "Không tìm thấy tệp.")
		return
	}
	c.Data(http.StatusOK, obj.ContentType, obj.Body)
}
