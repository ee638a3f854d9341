package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/Aashish23092/schemelink/dto"
	"github.com/Aashish23092/schemelink/service"
	"github.com/gin-gonic/gin"
)

// SessionHandler drives the scan → review → commit flow.
type SessionHandler struct {
	sessions        *service.SessionManager
	documentService *service.DocumentService
	profileService  *service.ProfileService
	mergePolicy     service.MergePolicy
	maxFileSize     int64
}

func NewSessionHandler(
	sessions *service.SessionManager,
	documentService *service.DocumentService,
	profileService *service.ProfileService,
	mergePolicy service.MergePolicy,
	maxFileSize int64,
) *SessionHandler {
	return &SessionHandler{
		sessions:        sessions,
		documentService: documentService,
		profileService:  profileService,
		mergePolicy:     mergePolicy,
		maxFileSize:     maxFileSize,
	}
}

// Create handles POST /sessions
func (h *SessionHandler) Create(c *gin.Context) {
	id := h.sessions.Create()
	c.JSON(http.StatusCreated, gin.H{"session_id": id})
}

// Get handles GET /sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	resp, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		sendError(c, statusFor(err), "SESSION_NOT_FOUND", "Unknown session", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Scan handles POST /sessions/:id/scan. A newer scan on the same session
// cancels this one and its result is dropped.
func (h *SessionHandler) Scan(c *gin.Context) {
	id := c.Param("id")

	file, err := c.FormFile("file")
	if err != nil {
		sendError(c, http.StatusBadRequest, "SCAN_FAILED", "File is required", err)
		return
	}
	req := &dto.ScanRequest{File: file, Password: c.PostForm("password")}

	data, mimeType, err := readUpload(req, h.maxFileSize)
	if err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, errFileTooLarge):
			status = http.StatusRequestEntityTooLarge
		case errors.Is(err, dto.ErrUnsupportedFile):
			status = http.StatusUnsupportedMediaType
		}
		sendError(c, status, "SCAN_FAILED", "Invalid upload", err)
		return
	}

	ctx, gen, err := h.sessions.Begin(c.Request.Context(), id)
	if err != nil {
		sendError(c, statusFor(err), "SESSION_NOT_FOUND", "Unknown session", err)
		return
	}

	log.Printf("Session %s: scan %d of %s (%d bytes)", id, gen, file.Filename, len(data))
	result, err := h.documentService.ExtractFromFile(ctx, data, mimeType, req.Password)
	if err != nil {
		h.sessions.Abort(id, gen)
		sendError(c, statusFor(err), "SCAN_FAILED", "Failed to extract document fields", err)
		return
	}

	if err := h.sessions.Complete(id, gen, result); err != nil {
		sendError(c, statusFor(err), "SCAN_SUPERSEDED", "A newer scan replaced this one", err)
		return
	}

	resp, err := h.sessions.Get(id)
	if err != nil {
		sendError(c, statusFor(err), "SESSION_NOT_FOUND", "Unknown session", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateDraft handles PUT /sessions/:id/draft
func (h *SessionHandler) UpdateDraft(c *gin.Context) {
	var draft dto.ProfileDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid draft", err)
		return
	}
	if err := h.sessions.UpdateDraft(c.Param("id"), draft); err != nil {
		sendError(c, statusFor(err), "SESSION_NOT_FOUND", "Unknown session", err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// ApplyDraft handles POST /sessions/:id/draft/apply. No fields means all of
// them; no policy means the configured default.
func (h *SessionHandler) ApplyDraft(c *gin.Context) {
	var req dto.ApplyDraftRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err)
			return
		}
	}

	policy := h.mergePolicy
	if req.Policy != "" {
		p, err := service.ParseMergePolicy(req.Policy)
		if err != nil {
			sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid merge policy", err)
			return
		}
		policy = p
	}
	fields := req.Fields
	if len(fields) == 0 {
		fields = service.MergeFields
	}

	draft, err := h.sessions.ApplyResult(c.Param("id"), fields, policy)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
		sendError(c, status, "APPLY_FAILED", "Failed to apply scan result", err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// Commit handles POST /sessions/:id/commit
func (h *SessionHandler) Commit(c *gin.Context) {
	var req dto.CommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "profile_id is required", err)
		return
	}

	draft, err := h.sessions.Draft(c.Param("id"))
	if err != nil {
		sendError(c, statusFor(err), "SESSION_NOT_FOUND", "Unknown session", err)
		return
	}

	profile, err := h.profileService.Save(c.Request.Context(), req.ProfileID, draft)
	if err != nil {
		sendError(c, statusFor(err), "COMMIT_FAILED", "Failed to save profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
