package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucFavorite "github.com/BruksfildServices01/barber-booking/internal/usecase/favorite"
)

type FavoriteHandler struct {
	favorites *ucFavorite.Service
}

func NewFavoriteHandler(favorites *ucFavorite.Service) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

type FavoriteStatus struct {
	ShopID     int  `json:"shopId"`
	IsFavorite bool `json:"isFavorite"`
}

func (h *FavoriteHandler) List(c *gin.Context) {
	list, err := h.favorites.List(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *FavoriteHandler) Status(c *gin.Context) {
	id, ok := positiveParam(c, "shopId")
	if !ok {
		return
	}

	fav, err := h.favorites.Status(c.Request.Context(), middleware.OwnerID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, FavoriteStatus{ShopID: id, IsFavorite: fav})
}

func (h *FavoriteHandler) Toggle(c *gin.Context) {
	id, ok := positiveParam(c, "shopId")
	if !ok {
		return
	}

	fav, err := h.favorites.Toggle(c.Request.Context(), middleware.OwnerID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, FavoriteStatus{ShopID: id, IsFavorite: fav})
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	id, ok := positiveParam(c, "shopId")
	if !ok {
		return
	}

	if err := h.favorites.Remove(c.Request.Context(), middleware.OwnerID(c), id); err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, FavoriteStatus{ShopID: id, IsFavorite: false})
}
