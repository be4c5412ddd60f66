package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/review"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucReview "github.com/BruksfildServices01/barber-booking/internal/usecase/review"
)

type ReviewHandler struct {
	reviews *ucReview.Service
}

func NewReviewHandler(reviews *ucReview.Service) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

func (h *ReviewHandler) List(c *gin.Context) {
	id, ok := positiveParam(c, "id")
	if !ok {
		return
	}

	list, err := h.reviews.List(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	owner := middleware.OwnerID(c)

	id, ok := positiveParam(c, "id")
	if !ok {
		return
	}

	var req domain.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	rv, err := h.reviews.Create(c.Request.Context(), owner, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.Created(c, rv)
}
