package utils

import (
	"regexp"
	"strings"
)

// identityNumberRe matches a 12-digit Aadhaar number, e.g. "6260 7951 8316"
var identityNumberRe = regexp.MustCompile(`\b\d{4}\s?\d{4}\s?\d{4}\b`)

// ExtractIdentityNumber returns the first 12-digit identity number with its
// internal spaces removed, or nil. Groups that continue into more digits
// (a 16-digit VID, "1234 5678 9012 3456") are not identity numbers.
func ExtractIdentityNumber(whole string) *string {
	for _, loc := range identityNumberRe.FindAllStringIndex(whole, -1) {
		start, end := loc[0], loc[1]
		if digitAcrossSpace(whole[:start], true) || digitAcrossSpace(whole[end:], false) {
			continue
		}
		digits := strings.Join(strings.Fields(whole[start:end]), "")
		return &digits
	}
	return nil
}

// digitAcrossSpace reports whether s has a digit next to the match once
// horizontal spaces are skipped. before selects the end of s, otherwise its
// start.
func digitAcrossSpace(s string, before bool) bool {
	if before {
		s = strings.TrimRight(s, " \t")
		return s != "" && isASCIIDigit(s[len(s)-1])
	}
	s = strings.TrimLeft(s, " \t")
	return s != "" && isASCIIDigit(s[0])
}
