package dto

import "errors"

// Custom errors
var (
	ErrIncompleteProfile = errors.New("all profile fields are required")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrSessionNotFound   = errors.New("scan session not found")
	ErrStaleResult       = errors.New("scan superseded by a newer upload")
	ErrUnsupportedFile   = errors.New("unsupported file type")
	ErrSchemeNotFound    = errors.New("scheme not found")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Code    int      `json:"code"`
	Missing []string `json:"missing,omitempty"`
}

// SchemeListResponse wraps a list of schemes with the tags that selected them.
type SchemeListResponse struct {
	Schemes []SchemeRecord `json:"schemes"`
	Tags    []string       `json:"tags,omitempty"`
	Count   int            `json:"count"`
}

// SessionResponse is the view of a scan session returned to clients.
type SessionResponse struct {
	SessionID  string             `json:"session_id"`
	Generation uint64             `json:"generation"`
	Result     *ExtractionResult  `json:"result"`
	Summary    *ExtractionSummary `json:"summary,omitempty"`
	Draft      ProfileDraft       `json:"draft"`
}
