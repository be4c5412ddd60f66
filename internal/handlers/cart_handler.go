package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucCart "github.com/BruksfildServices01/barber-booking/internal/usecase/cart"
)

type CartHandler struct {
	carts *ucCart.Service
}

func NewCartHandler(carts *ucCart.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

type AddItemRequest struct {
	ShopID int    `json:"shopId" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

// SetQuantityRequest carries either an absolute quantity or a one-unit delta.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required_without=Delta,excluded_with=Delta"`
	Delta    *int `json:"delta" binding:"omitempty,oneof=-1 1"`
}

func (h *CartHandler) Get(c *gin.Context) {
	httpresp.OK(c, h.carts.Get(middleware.OwnerID(c)))
}

func (h *CartHandler) Clear(c *gin.Context) {
	h.carts.Clear(middleware.OwnerID(c))
	c.Status(http.StatusNoContent)
}

// POST /api/me/cart/items adds one unit; a different shop starts a new cart.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	sum, err := h.carts.Add(middleware.OwnerID(c), req.ShopID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, sum)
}

// PATCH /api/me/cart/items/:name takes {"quantity": n} or {"delta": ±1}.
// A quantity of 0 or less removes the item.
func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	owner, name := middleware.OwnerID(c), c.Param("name")
	var (
		sum ucCart.Summary
		err error
	)
	if req.Delta != nil {
		sum, err = h.carts.Step(owner, name, *req.Delta)
	} else {
		sum, err = h.carts.SetQuantity(owner, name, *req.Quantity)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, sum)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	sum, err := h.carts.Remove(middleware.OwnerID(c), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, sum)
}
