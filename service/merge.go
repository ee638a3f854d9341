package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Aashish23092/schemelink/dto"
)

// MergePolicy decides whether an extracted value may replace what the user
// already typed into the draft.
type MergePolicy int

const (
	// PreferExistingIfNonEmpty only fills empty draft fields.
	PreferExistingIfNonEmpty MergePolicy = iota
	// PreferExtracted overwrites the draft whenever a value was extracted.
	PreferExtracted
)

// Draft fields an extraction can fill.
const (
	FieldName           = "name"
	FieldAge            = "age"
	FieldGender         = "gender"
	FieldIdentityNumber = "identity_number"
	FieldAddress        = "address"
)

// MergeFields lists every field MergeExtraction understands.
var MergeFields = []string{FieldName, FieldAge, FieldGender, FieldIdentityNumber, FieldAddress}

// ParseMergePolicy accepts "prefer_existing" and "prefer_extracted".
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prefer_existing", "prefer_existing_if_non_empty":
		return PreferExistingIfNonEmpty, nil
	case "prefer_extracted":
		return PreferExtracted, nil
	}
	return 0, fmt.Errorf("unknown merge policy %q", s)
}

func (p MergePolicy) String() string {
	if p == PreferExtracted {
		return "prefer_extracted"
	}
	return "prefer_existing"
}

// MergeExtraction copies the confirmed fields of r into draft. Fields absent
// from r, or not listed in fields, are left untouched. On error the draft is
// returned unchanged.
func MergeExtraction(draft dto.ProfileDraft, r dto.ExtractionResult, fields []string, policy MergePolicy) (dto.ProfileDraft, error) {
	merged := draft
	for _, field := range fields {
		var (
			target *string
			value  *string
		)
		switch field {
		case FieldName:
			target, value = &merged.Name, r.Name
		case FieldAge:
			target = &merged.Age
			if r.Age != nil {
				age := strconv.Itoa(*r.Age)
				value = &age
			}
		case FieldGender:
			target = &merged.Gender
			if r.Gender != nil {
				g := string(*r.Gender)
				value = &g
			}
		case FieldIdentityNumber:
			target, value = &merged.IdentityNumber, r.IdentityNumber
		case FieldAddress:
			target, value = &merged.Address, r.Address
		default:
			return draft, fmt.Errorf("field %q cannot be filled from a scan", field)
		}

		if value == nil {
			continue
		}
		if policy == PreferExistingIfNonEmpty && strings.TrimSpace(*target) != "" {
			continue
		}
		*target = *value
	}
	return merged, nil
}
