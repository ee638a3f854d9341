package handler

import (
	"net/http"

	"github.com/Aashish23092/schemelink/dto"
	"github.com/Aashish23092/schemelink/service"
	"github.com/gin-gonic/gin"
)

// ProfileHandler reads and writes stored profiles.
type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// Get handles GET /profiles/:id
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		sendError(c, statusFor(err), "PROFILE_LOOKUP_FAILED", "Failed to load profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Put handles PUT /profiles/:id
func (h *ProfileHandler) Put(c *gin.Context) {
	var draft dto.ProfileDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid profile", err)
		return
	}

	profile, err := h.profileService.Save(c.Request.Context(), c.Param("id"), draft)
	if err != nil {
		sendError(c, statusFor(err), "PROFILE_SAVE_FAILED", "Failed to save profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Schemes handles GET /profiles/:id/schemes
func (h *ProfileHandler) Schemes(c *gin.Context) {
	list, err := h.profileService.EligibleSchemes(c.Request.Context(), c.Param("id"))
	if err != nil {
		sendError(c, statusFor(err), "PROFILE_LOOKUP_FAILED", "Failed to load profile", err)
		return
	}
	c.JSON(http.StatusOK, list)
}
