package utils

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Aashish23092/schemelink/dto"
)

// LabelTable holds the literal tokens the field extractors look for. Tokens
// are matched case-insensitively; any script is allowed.
type LabelTable struct {
	// Name labels precede the holder's name ("Name: ...").
	Name []string
	// NameStop tokens disqualify a line from being a structural name
	// candidate. They match at the start of a word.
	NameStop []string
	// DOB labels precede a date of birth.
	DOB []string
	// Gender labels precede a gender value.
	Gender []string
	// GenderValues are the values accepted after a gender label.
	GenderValues []string
	// GenderAliases maps values that are not spelled in Latin script.
	GenderAliases map[string]dto.Gender
}

// DefaultLabels covers English, Hindi, Bengali and Telugu document layouts.
func DefaultLabels() LabelTable {
	return LabelTable{
		Name: []string{
			"name", "applicant", "holder", "beneficiary", "candidate",
			"नाम", "নাম", "నామం", "పేరు",
		},
		NameStop: []string{
			"government", "certificate", "date", "issue", "father", "mother",
			"address", "dob", "year", "id", "serial", "no", "regis", "sign",
			"india", "authority", "aadhaar", "unique",
		},
		DOB: []string{
			"dob", "date of birth", "birth date", "d.o.b", "yob",
			"जन्म तिथि", "जन्म", "জন্ম", "పుట్టిన",
		},
		Gender: []string{
			"gender", "sex", "लिंग", "लैंगिकता",
		},
		GenderValues: []string{
			"male", "female", "m", "f", "other", "transgender",
			"पुरुष", "महिला",
		},
		GenderAliases: map[string]dto.Gender{
			"पुरुष": dto.GenderMale,
			"महिला": dto.GenderFemale,
		},
	}
}

// nonWord matches one character that cannot be part of a word in any script.
const nonWord = `[^\p{L}\p{M}\p{N}_]`

// alternation builds a non-capturing group of quoted tokens, longest first so
// that multi-word labels win over their prefixes.
func alternation(tokens []string) string {
	sorted := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		sorted = append(sorted, t)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	quoted := make([]string, len(sorted))
	for i, t := range sorted {
		quoted[i] = regexp.QuoteMeta(t)
	}
	// an empty table must never match
	if len(quoted) == 0 {
		return `(?:[^\x00-\x{10FFFF}])`
	}
	return "(?:" + strings.Join(quoted, "|") + ")"
}
