package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/domain/payment"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
)

// CatalogHandler serves the public, read-only shop data.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

type ShopResponse struct {
	Shop catalog.Shop `json:"shop"`
	// Fallback is set when the id was unknown and the sample shop was served.
	Fallback bool `json:"fallback"`
}

func (h *CatalogHandler) Locations(c *gin.Context) {
	httpresp.List(c, catalog.Locations())
}

// GET /api/shops?location=&query=&sort=
func (h *CatalogHandler) Shops(c *gin.Context) {
	shops, err := h.catalog.Search(c.Request.Context(), catalog.SearchQuery{
		Location: c.Query("location"),
		Query:    c.Query("query"),
		Sort:     c.Query("sort"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, shops)
}

func (h *CatalogHandler) Shop(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	shop, fallback := catalog.ShopOrDefault(id)
	httpresp.OK(c, ShopResponse{Shop: shop, Fallback: fallback})
}

// Every shop offers the same menu.
func (h *CatalogHandler) Services(c *gin.Context) {
	httpresp.List(c, catalog.ServicePackages())
}

func (h *CatalogHandler) Barbers(c *gin.Context) {
	httpresp.List(c, catalog.Barbers())
}

func (h *CatalogHandler) Discounts(c *gin.Context) {
	httpresp.List(c, payment.Discounts())
}

type HelpResponse struct {
	FAQs    []catalog.FAQ          `json:"faqs"`
	Contact catalog.SupportContact `json:"contact"`
}

// GET /api/help?query=
func (h *CatalogHandler) Help(c *gin.Context) {
	httpresp.OK(c, HelpResponse{
		FAQs:    catalog.SearchFAQ(c.Query("query")),
		Contact: catalog.Support(),
	})
}

// positiveParam parses a numeric path param; ok is false after a 400 was
// written.
func positiveParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		badRequest(c)
		return 0, false
	}
	return id, true
}
