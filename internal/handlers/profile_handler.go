package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/profile"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/media"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucProfile "github.com/BruksfildServices01/barber-booking/internal/usecase/profile"
)

const uploadField = "file"

type ProfileHandler struct {
	profiles *ucProfile.Service
}

func NewProfileHandler(profiles *ucProfile.Service) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.profiles.Get(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, p)
}

// PATCH /api/me/profile applies only the fields present in the body.
func (h *ProfileHandler) Update(c *gin.Context) {
	var patch domain.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.profiles.Update(c.Request.Context(), middleware.OwnerID(c), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, p)
}

// POST /api/me/avatar (multipart, field "file")
func (h *ProfileHandler) Avatar(c *gin.Context) {
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

	p, err := h.profiles.SetAvatar(c.Request.Context(), middleware.OwnerID(c), f)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, p)
}
