package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Aashish23092/schemelink/catalog"
	"github.com/Aashish23092/schemelink/dto"
	"github.com/Aashish23092/schemelink/service"
	"github.com/gin-gonic/gin"
)

// SchemeHandler serves the scheme catalog.
type SchemeHandler struct {
	catalog        *catalog.Catalog
	profileService *service.ProfileService
}

func NewSchemeHandler(schemes *catalog.Catalog, profileService *service.ProfileService) *SchemeHandler {
	return &SchemeHandler{
		catalog:        schemes,
		profileService: profileService,
	}
}

// List handles GET /schemes?q=&region=
func (h *SchemeHandler) List(c *gin.Context) {
	schemes := h.catalog.Search(c.Query("q"), c.Query("region"))
	c.JSON(http.StatusOK, dto.SchemeListResponse{
		Schemes: schemes,
		Count:   len(schemes),
	})
}

// Regions handles GET /schemes/regions
func (h *SchemeHandler) Regions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"regions": h.catalog.Regions()})
}

// Get handles GET /schemes/:id
func (h *SchemeHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "Scheme id must be a number", err)
		return
	}

	scheme, ok := h.catalog.Get(id)
	if !ok {
		sendError(c, http.StatusNotFound, "SCHEME_NOT_FOUND", "Unknown scheme",
			fmt.Errorf("%w: %d", dto.ErrSchemeNotFound, id))
		return
	}
	c.JSON(http.StatusOK, scheme)
}

// Match handles POST /schemes/match for an unsaved draft.
func (h *SchemeHandler) Match(c *gin.Context) {
	var draft dto.ProfileDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid profile", err)
		return
	}
	c.JSON(http.StatusOK, h.profileService.Match(draft))
}
