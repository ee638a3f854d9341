package dto

import (
	"encoding/xml"
	"strings"
)

// AadhaarQRData represents the XML structure in the Aadhaar QR code
// Based on UIDAI's printed-letter QR format
type AadhaarQRData struct {
	XMLName     xml.Name `xml:"PrintLetterBarcodeData"`
	UID         string   `xml:"uid,attr"`
	Name        string   `xml:"name,attr"`
	Gender      string   `xml:"gender,attr"`
	YearOfBirth string   `xml:"yob,attr"`
	DateOfBirth string   `xml:"dob,attr"`
	CO          string   `xml:"co,attr"` // Care of
	House       string   `xml:"house,attr"`
	Street      string   `xml:"street,attr"`
	Locality    string   `xml:"loc,attr"`
	VTC         string   `xml:"vtc,attr"` // Village/Town/City
	District    string   `xml:"dist,attr"`
	State       string   `xml:"state,attr"`
	PC          string   `xml:"pc,attr"` // Pin Code
}

// GetFullAddress constructs the address from QR data
func (q *AadhaarQRData) GetFullAddress() string {
	parts := []string{}
	if q.CO != "" {
		parts = append(parts, "C/O "+q.CO)
	}
	for _, p := range []string{q.House, q.Street, q.Locality, q.VTC, q.District, q.State, q.PC} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// GetDOB returns the full date of birth when present, else the year of birth
func (q *AadhaarQRData) GetDOB() string {
	if q.DateOfBirth != "" {
		return q.DateOfBirth
	}
	return q.YearOfBirth
}

// GetIdentityNumber returns the UID with spaces removed
func (q *AadhaarQRData) GetIdentityNumber() string {
	return strings.ReplaceAll(q.UID, " ", "")
}

// GetGender maps the single-letter QR gender code
func (q *AadhaarQRData) GetGender() (Gender, bool) {
	switch strings.ToUpper(strings.TrimSpace(q.Gender)) {
	case "M", "MALE":
		return GenderMale, true
	case "F", "FEMALE":
		return GenderFemale, true
	case "T", "O", "OTHER", "TRANSGENDER":
		return GenderOther, true
	}
	return "", false
}
