package utils

import (
	"regexp"
	"strings"

	"github.com/Aashish23092/schemelink/dto"
)

var (
	femaleWordRe = regexp.MustCompile(`(?i)\bfemale\b`)
	maleWordRe   = regexp.MustCompile(`(?i)\bmale\b`)
	otherWordRe  = regexp.MustCompile(`(?i)\b(?:transgender|other)\b`)
	sexLetterRe  = regexp.MustCompile(`(?i)\bsex\s*[:\-\s]?\s*([MF])\b`)
)

// genderStrategy proposes a gender from the whole text.
type genderStrategy func(whole string) (dto.Gender, bool)

// ExtractGender runs the gender strategies in order.
func (e *FieldExtractor) ExtractGender(whole string) *dto.Gender {
	for _, strategy := range e.genderStrategies {
		if g, ok := strategy(whole); ok {
			return &g
		}
	}
	return nil
}

// labeledGender reads the value after a gender/sex label.
func (e *FieldExtractor) labeledGender(whole string) (dto.Gender, bool) {
	m := e.genderLabelRe.FindStringSubmatch(whole)
	if len(m) < 2 {
		return "", false
	}
	return e.normalizeGender(m[1]), true
}

// normalizeGender maps a matched value token. Script aliases come first;
// then anything starting with "m" other than "female" is Male, "f" is
// Female, and the remaining tokens (other, transgender) are Other.
func (e *FieldExtractor) normalizeGender(token string) dto.Gender {
	if g, ok := e.labels.GenderAliases[token]; ok {
		return g
	}
	v := strings.ToLower(strings.TrimSpace(token))
	switch {
	case strings.HasPrefix(v, "m") && v != "female":
		return dto.GenderMale
	case strings.HasPrefix(v, "f"):
		return dto.GenderFemale
	default:
		return dto.GenderOther
	}
}

// genderWords looks for unlabeled gender words; "female" is checked first
// because it contains "male".
func genderWords(whole string) (dto.Gender, bool) {
	switch {
	case femaleWordRe.MatchString(whole):
		return dto.GenderFemale, true
	case maleWordRe.MatchString(whole):
		return dto.GenderMale, true
	case otherWordRe.MatchString(whole):
		return dto.GenderOther, true
	}
	return "", false
}

// sexLetter handles a bare "Sex: M" / "Sex: F".
func sexLetter(whole string) (dto.Gender, bool) {
	m := sexLetterRe.FindStringSubmatch(whole)
	if len(m) < 2 {
		return "", false
	}
	if strings.EqualFold(m[1], "M") {
		return dto.GenderMale, true
	}
	return dto.GenderFemale, true
}
