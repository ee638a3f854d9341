package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/Aashish23092/schemelink/dto"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecognizer struct {
	text  string
	err   error
	calls int
}

func (f *fakeRecognizer) ExtractTextAndQuality(ctx context.Context, data []byte) (string, float64, error) {
	f.calls++
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}
	return f.text, 90, f.err
}

type fakePDF struct {
	text      string
	textErr   error
	images    []image.Image
	imagesErr error
}

func (f *fakePDF) ExtractText([]byte, string) (string, error) { return f.text, f.textErr }
func (f *fakePDF) ExtractImages([]byte, string) ([]image.Image, error) { return f.images, f.imagesErr }

const cardText = "GOVERNMENT OF INDIA\nName: Ravi Kumar\nDOB: 12/05/1995\nSex: M\n1234 5678 9012"

func newTestService(rec TextRecognizer, p PDFProcessor) *DocumentService {
	s := NewDocumentService(rec, p)
	s.now = func() time.Time { return time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC) }
	return s
}

func blankPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func qrImage(t *testing.T, content string) image.Image {
	t.Helper()
	matrix, err := qrcode.NewQRCodeWriter().Encode(content, gozxing.BarcodeFormat_QR_CODE, 400, 400, nil)
	require.NoError(t, err)

	img := image.NewGray(image.Rect(0, 0, matrix.GetWidth(), matrix.GetHeight()))
	for y := 0; y < matrix.GetHeight(); y++ {
		for x := 0; x < matrix.GetWidth(); x++ {
			if matrix.Get(x, y) {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}
	return img
}

const qrXML = `<?xml version="1.0" encoding="UTF-8"?><PrintLetterBarcodeData uid="626079518316" name="Sita Devi" gender="F" yob="1980" dob="01/01/1980" co="Ram Lal" house="12" loc="MG Road" vtc="Pune" state="Maharashtra" pc="411001"/>`

func TestExtractFromFileImageUsesOCR(t *testing.T) {
	rec := &fakeRecognizer{text: cardText}
	s := newTestService(rec, &fakePDF{})

	r, err := s.ExtractFromFile(context.Background(), blankPNG(t), "image/png", "")
	require.NoError(t, err)

	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, dto.SourceOCR, r.Source)
	require.NotNil(t, r.Name)
	assert.Equal(t, "Ravi Kumar", *r.Name)
	require.NotNil(t, r.Age)
	assert.Equal(t, 28, *r.Age)
	assert.Nil(t, r.Address)
}

func TestExtractFromFileQRWinsOverOCR(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, qrImage(t, qrXML)))

	rec := &fakeRecognizer{text: cardText}
	s := newTestService(rec, &fakePDF{})

	r, err := s.ExtractFromFile(context.Background(), buf.Bytes(), "image/png", "")
	require.NoError(t, err)

	assert.Equal(t, 0, rec.calls)
	assert.Equal(t, dto.SourceQR, r.Source)
	require.NotNil(t, r.Name)
	assert.Equal(t, "Sita Devi", *r.Name)
	require.NotNil(t, r.DOBRaw)
	assert.Equal(t, "01/01/1980", *r.DOBRaw)
	require.NotNil(t, r.Age)
	assert.Equal(t, 44, *r.Age)
	require.NotNil(t, r.Gender)
	assert.Equal(t, dto.GenderFemale, *r.Gender)
	require.NotNil(t, r.IdentityNumber)
	assert.Equal(t, "626079518316", *r.IdentityNumber)
	require.NotNil(t, r.Address)
	assert.Equal(t, "C/O Ram Lal, 12, MG Road, Pune, Maharashtra, 411001", *r.Address)
}

func TestExtractFromFileUndecodableImage(t *testing.T) {
	s := newTestService(&fakeRecognizer{}, &fakePDF{})

	_, err := s.ExtractFromFile(context.Background(), []byte("not an image"), "image/jpeg", "")
	assert.ErrorIs(t, err, dto.ErrUnsupportedFile)
}

func TestExtractFromFileOCRError(t *testing.T) {
	s := newTestService(&fakeRecognizer{err: errors.New("tesseract missing")}, &fakePDF{})

	_, err := s.ExtractFromFile(context.Background(), blankPNG(t), "image/png", "")
	assert.ErrorContains(t, err, "tesseract missing")
}

func TestExtractFromPDFTextLayer(t *testing.T) {
	rec := &fakeRecognizer{}
	s := newTestService(rec, &fakePDF{text: cardText})

	r, err := s.ExtractFromFile(context.Background(), []byte("%PDF"), "application/pdf", "")
	require.NoError(t, err)

	assert.Equal(t, dto.SourcePDF, r.Source)
	assert.Equal(t, 0, rec.calls)
	require.NotNil(t, r.IdentityNumber)
	assert.Equal(t, "123456789012", *r.IdentityNumber)
}

func TestExtractFromPDFScannedPages(t *testing.T) {
	blank, _, err := image.Decode(bytes.NewReader(blankPNG(t)))
	require.NoError(t, err)

	rec := &fakeRecognizer{text: cardText}
	s := newTestService(rec, &fakePDF{text: "  \n", images: []image.Image{blank, blank}})

	r, err := s.ExtractFromFile(context.Background(), []byte("%PDF"), "application/pdf", "")
	require.NoError(t, err)

	assert.Equal(t, 2, rec.calls)
	assert.Equal(t, dto.SourceOCR, r.Source)
	require.NotNil(t, r.Gender)
	assert.Equal(t, dto.GenderMale, *r.Gender)
}

func TestExtractFromPDFNothingInside(t *testing.T) {
	s := newTestService(&fakeRecognizer{}, &fakePDF{textErr: errors.New("encrypted")})

	_, err := s.ExtractFromFile(context.Background(), []byte("%PDF"), "application/pdf", "")
	assert.Error(t, err)
}

func TestExtractFromPDFCancelled(t *testing.T) {
	blank, _, err := image.Decode(bytes.NewReader(blankPNG(t)))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newTestService(&fakeRecognizer{text: cardText}, &fakePDF{images: []image.Image{blank}})
	_, err = s.ExtractFromFile(ctx, []byte("%PDF"), "application/pdf", "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestQRResultYearOnly(t *testing.T) {
	q := dto.AadhaarQRData{Name: "Asha", YearOfBirth: "1990", Gender: "X", UID: "1234"}

	r := qrResult(q, "<xml/>", time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))

	assert.Nil(t, r.DOBRaw)
	assert.Nil(t, r.DOBDate)
	assert.Nil(t, r.Age)
	assert.Nil(t, r.Gender)
	assert.Nil(t, r.IdentityNumber)
	assert.Nil(t, r.Address)
	require.NotNil(t, r.Name)
	assert.Equal(t, "Asha", *r.Name)
}

func TestExtractFromText(t *testing.T) {
	s := newTestService(&fakeRecognizer{}, &fakePDF{})

	r := s.ExtractFromText(cardText)
	assert.Equal(t, dto.SourceText, r.Source)
	require.NotNil(t, r.DOBDate)
}
