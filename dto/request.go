package dto

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
)

// ScanRequest represents an uploaded identity document
type ScanRequest struct {
	File     *multipart.FileHeader
	Password string
}

// Validate validates the scan request
func (r *ScanRequest) Validate() error {
	if r.File == nil {
		return errors.New("file is required")
	}

	filename := strings.ToLower(r.File.Filename)
	validExtensions := []string{".pdf", ".png", ".jpg", ".jpeg"}
	for _, ext := range validExtensions {
		if strings.HasSuffix(filename, ext) {
			return nil
		}
	}
	return fmt.Errorf("%w: supported: PDF, PNG, JPG", ErrUnsupportedFile)
}

// ExtractTextRequest carries recognized text produced by an external OCR step.
type ExtractTextRequest struct {
	Text string `json:"text"`
}

// ApplyDraftRequest lists the extracted fields the user confirmed.
type ApplyDraftRequest struct {
	Fields []string `json:"fields"`
	Policy string   `json:"policy"`
}

// CommitRequest promotes a session draft to a stored profile.
type CommitRequest struct {
	ProfileID string `json:"profile_id" binding:"required"`
}
