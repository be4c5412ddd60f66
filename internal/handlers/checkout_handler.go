package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucCheckout "github.com/BruksfildServices01/barber-booking/internal/usecase/checkout"
)

type CheckoutHandler struct {
	checkout *ucCheckout.Service
}

func NewCheckoutHandler(checkout *ucCheckout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

type QuoteRequest struct {
	DiscountCode string `json:"discountCode"`
}

func (h *CheckoutHandler) Quote(c *gin.Context) {
	var req QuoteRequest
	// an empty body just means no discount code
	_ = c.ShouldBindJSON(&req)

	q, err := h.checkout.Quote(middleware.OwnerID(c), req.DiscountCode)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, q)
}

// POST /api/me/checkout books the current cart. With appointmentId set the
// existing appointment is rewritten instead of opening a session.
func (h *CheckoutHandler) Create(c *gin.Context) {
	var in ucCheckout.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c)
		return
	}

	res, err := h.checkout.Create(c.Request.Context(), middleware.OwnerID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}

	if res.Status == ucCheckout.StatusUpdated {
		httpresp.OK(c, res)
		return
	}
	httpresp.Created(c, res)
}

func (h *CheckoutHandler) Get(c *gin.Context) {
	v, err := h.checkout.Get(middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, v)
}

func (h *CheckoutHandler) Confirm(c *gin.Context) {
	v, err := h.checkout.Confirm(middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, v)
}

func (h *CheckoutHandler) Cancel(c *gin.Context) {
	v, err := h.checkout.Cancel(middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, v)
}
