package utils

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var lineBreakRe = regexp.MustCompile(`\r\n|\r|\n`)

// NormalizedText is recognized text split into trimmed, non-empty lines in
// top-to-bottom order, plus the lines joined back with "\n".
type NormalizedText struct {
	Lines []string
	Whole string
}

// NormalizeText cleans raw OCR output. It never fails: empty input yields no
// lines and an empty Whole.
func NormalizeText(raw string) NormalizedText {
	// NFC so that decomposed Indic sequences match the label tables
	raw = norm.NFC.String(raw)

	rawLines := lineBreakRe.Split(raw, -1)
	lines := make([]string, 0, len(rawLines))
	for _, l := range rawLines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}

	return NormalizedText{
		Lines: lines,
		Whole: strings.Join(lines, "\n"),
	}
}
