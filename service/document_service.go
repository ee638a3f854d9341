package service

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/Aashish23092/schemelink/dto"
	"github.com/Aashish23092/schemelink/utils"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// minTextLayerLen is the amount of embedded PDF text below which the
// document is treated as scanned.
const minTextLayerLen = 20

var uidRe = regexp.MustCompile(`^\d{12}$`)

// TextRecognizer turns an encoded image into text.
type TextRecognizer interface {
	ExtractTextAndQuality(ctx context.Context, data []byte) (string, float64, error)
}

// DocumentService extracts identity fields from uploaded documents.
type DocumentService struct {
	recognizer   TextRecognizer
	pdfProcessor PDFProcessor
	extractor    *utils.FieldExtractor
	now          func() time.Time
}

// NewDocumentService creates a DocumentService using the default label table.
func NewDocumentService(recognizer TextRecognizer, pdfProcessor PDFProcessor) *DocumentService {
	return &DocumentService{
		recognizer:   recognizer,
		pdfProcessor: pdfProcessor,
		extractor:    utils.NewFieldExtractor(utils.DefaultLabels()),
		now:          time.Now,
	}
}

// ExtractFromText runs field extraction over text recognized elsewhere.
func (s *DocumentService) ExtractFromText(text string) dto.ExtractionResult {
	return s.extractor.Extract(text, s.now())
}

// ExtractFromFile extracts fields from a PDF or an image. A secure QR code
// wins over recognized text. ctx cancellation abandons the scan.
func (s *DocumentService) ExtractFromFile(ctx context.Context, fileData []byte, mimeType, password string) (dto.ExtractionResult, error) {
	if strings.Contains(mimeType, "pdf") {
		return s.extractFromPDF(ctx, fileData, password)
	}

	img, _, err := image.Decode(bytes.NewReader(fileData))
	if err != nil {
		return dto.ExtractionResult{}, fmt.Errorf("%w: failed to decode image: %v", dto.ErrUnsupportedFile, err)
	}

	if result, err := s.extractFromQR(img); err == nil {
		log.Println("Extracted fields from QR code")
		return result, nil
	}

	text, conf, err := s.recognizer.ExtractTextAndQuality(ctx, fileData)
	if err != nil {
		return dto.ExtractionResult{}, fmt.Errorf("OCR extraction failed: %w", err)
	}
	log.Printf("OCR extracted %d characters (confidence %.1f)", len(text), conf)

	result := s.extractor.Extract(text, s.now())
	result.Source = dto.SourceOCR
	return result, nil
}

func (s *DocumentService) extractFromPDF(ctx context.Context, fileData []byte, password string) (dto.ExtractionResult, error) {
	text, err := s.pdfProcessor.ExtractText(fileData, password)
	if err != nil {
		log.Printf("PDF text layer unavailable: %v", err)
	}
	if len(strings.TrimSpace(text)) >= minTextLayerLen {
		log.Printf("Using PDF text layer (%d characters)", len(text))
		result := s.extractor.Extract(text, s.now())
		result.Source = dto.SourcePDF
		return result, nil
	}

	images, err := s.pdfProcessor.ExtractImages(fileData, password)
	if err != nil {
		return dto.ExtractionResult{}, fmt.Errorf("failed to extract images from PDF: %w", err)
	}
	if len(images) == 0 {
		return dto.ExtractionResult{}, errors.New("no text or images found in PDF")
	}

	for _, img := range images {
		if result, err := s.extractFromQR(img); err == nil {
			log.Println("Extracted fields from QR code in PDF")
			return result, nil
		}
	}

	var fullText strings.Builder
	for idx, page := range images {
		if err := ctx.Err(); err != nil {
			return dto.ExtractionResult{}, err
		}

		buf := new(bytes.Buffer)
		if err := png.Encode(buf, page); err != nil {
			log.Printf("Failed to encode image %d: %v", idx+1, err)
			continue
		}

		pageText, _, err := s.recognizer.ExtractTextAndQuality(ctx, buf.Bytes())
		if err != nil {
			if ctx.Err() != nil {
				return dto.ExtractionResult{}, ctx.Err()
			}
			log.Printf("Image %d OCR failed: %v", idx+1, err)
			continue
		}
		fullText.WriteString(pageText)
		fullText.WriteString("\n")
	}
	log.Printf("OCR extracted %d characters from %d PDF images", fullText.Len(), len(images))

	result := s.extractor.Extract(fullText.String(), s.now())
	result.Source = dto.SourceOCR
	return result, nil
}

// extractFromQR decodes an Aadhaar secure-QR (PrintLetterBarcodeData XML)
// and maps it onto an ExtractionResult.
func (s *DocumentService) extractFromQR(img image.Image) (dto.ExtractionResult, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return dto.ExtractionResult{}, fmt.Errorf("failed to create binary bitmap: %w", err)
	}

	decoded, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return dto.ExtractionResult{}, fmt.Errorf("failed to decode QR code: %w", err)
	}

	qrText := decoded.GetText()
	var qrData dto.AadhaarQRData
	if err := xml.Unmarshal([]byte(qrText), &qrData); err != nil {
		return dto.ExtractionResult{}, fmt.Errorf("failed to parse QR XML data: %w", err)
	}
	return qrResult(qrData, qrText, s.now()), nil
}

// qrResult applies the same date and age rules as text extraction. A bare
// year of birth does not parse as a date and is left out.
func qrResult(q dto.AadhaarQRData, raw string, now time.Time) dto.ExtractionResult {
	result := dto.ExtractionResult{Raw: raw, Source: dto.SourceQR}

	if name := strings.TrimSpace(q.Name); name != "" {
		result.Name = &name
	}
	if dobRaw := strings.TrimSpace(q.GetDOB()); dobRaw != "" {
		if d, ok := utils.ParseDate(dobRaw); ok {
			result.DOBRaw = &dobRaw
			result.DOBDate = &d
			result.Age = utils.CalculateAge(&d, now)
		}
	}
	if g, ok := q.GetGender(); ok {
		result.Gender = &g
	}
	if uid := q.GetIdentityNumber(); uidRe.MatchString(uid) {
		result.IdentityNumber = &uid
	}
	if addr := q.GetFullAddress(); addr != "" {
		result.Address = &addr
	}
	return result
}
