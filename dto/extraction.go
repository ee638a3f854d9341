package dto

import "time"

// Gender is the normalised gender value shared by extraction results and profiles.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Extraction sources
const (
	SourceOCR  = "ocr"
	SourceQR   = "qr"
	SourcePDF  = "pdf"
	SourceText = "text"
)

// ExtractionResult holds the attributes inferred from one piece of recognized
// text. Absent fields are nil and serialise as null. Address is only known
// when the document carried a secure QR code.
type ExtractionResult struct {
	Name           *string    `json:"name"`
	DOBRaw         *string    `json:"dob_raw"`
	DOBDate        *time.Time `json:"dob_date"`
	Age            *int       `json:"age"`
	Gender         *Gender    `json:"gender"`
	IdentityNumber *string    `json:"identity_number"`
	Address        *string    `json:"address"`
	Raw            string     `json:"raw"`
	Source         string     `json:"source"`
}

// ExtractionSummary reports which core fields were recovered.
type ExtractionSummary struct {
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
	Hint    string   `json:"hint,omitempty"`
}

// ClearerImageHint is shown when none of the core fields could be read.
const ClearerImageHint = "Could not reliably extract Name / DOB / Gender. Try cropping the image to the ID area or use a clearer photo."

// Summary lists found and missing fields. Name, DOB and gender are the core
// fields; the identity number is reported but does not drive the hint.
func (r ExtractionResult) Summary() ExtractionSummary {
	s := ExtractionSummary{Found: []string{}, Missing: []string{}}
	check := func(field string, present bool) {
		if present {
			s.Found = append(s.Found, field)
		} else {
			s.Missing = append(s.Missing, field)
		}
	}
	check("name", r.Name != nil)
	check("dob", r.DOBRaw != nil)
	check("gender", r.Gender != nil)
	check("identity_number", r.IdentityNumber != nil)

	if r.NeedsClearerImage() {
		s.Hint = ClearerImageHint
	}
	return s
}

// NeedsClearerImage is true when name, DOB and gender are all missing.
func (r ExtractionResult) NeedsClearerImage() bool {
	return r.Name == nil && r.DOBRaw == nil && r.Gender == nil
}
