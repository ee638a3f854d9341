package handler

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/Aashish23092/schemelink/dto"
	"github.com/Aashish23092/schemelink/service"
	"github.com/gin-gonic/gin"
)

var errFileTooLarge = errors.New("file too large")

// DocumentHandler serves stateless extraction from already-recognized text.
type DocumentHandler struct {
	documentService *service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler instance
func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
	}
}

// ExtractText handles POST /extract/text
func (h *DocumentHandler) ExtractText(c *gin.Context) {
	var req dto.ExtractTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err)
		return
	}

	log.Printf("Extracting fields from %d characters of text", len(req.Text))
	result := h.documentService.ExtractFromText(req.Text)
	c.JSON(http.StatusOK, gin.H{
		"result":  result,
		"summary": result.Summary(),
	})
}

// readUpload validates and reads the uploaded file of a scan request.
func readUpload(req *dto.ScanRequest, maxSize int64) ([]byte, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}
	if maxSize > 0 && req.File.Size > maxSize {
		return nil, "", fmt.Errorf("%w: %d bytes exceeds %d", errFileTooLarge, req.File.Size, maxSize)
	}

	mimeType := req.File.Header.Get("Content-Type")
	if !isValidMimeType(mimeType) {
		mimeType = inferMimeType(req.File.Filename)
	}

	data, err := readFile(req.File)
	if err != nil {
		return nil, "", err
	}
	return data, mimeType, nil
}

func readFile(file *multipart.FileHeader) ([]byte, error) {
	reader, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read file data: %w", err)
	}
	return data, nil
}

// isValidMimeType checks if the MIME type is supported
func isValidMimeType(mimeType string) bool {
	validTypes := []string{
		"application/pdf",
		"image/png",
		"image/jpeg",
		"image/jpg",
	}

	mimeType = strings.ToLower(mimeType)
	for _, valid := range validTypes {
		if strings.Contains(mimeType, valid) {
			return true
		}
	}
	return false
}

// inferMimeType infers MIME type from file extension
func inferMimeType(filename string) string {
	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".pdf") {
		return "application/pdf"
	} else if strings.HasSuffix(lower, ".png") {
		return "image/png"
	} else if strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg") {
		return "image/jpeg"
	}
	return ""
}
