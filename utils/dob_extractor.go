package utils

import (
	"regexp"
	"time"
)

const monthNames = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*`

// dateShapes are tried in priority order: D-M-Y, Y-M-D, D MonthName Y.
var dateShapes = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}`),
	regexp.MustCompile(`\d{4}[/\-.]\d{1,2}[/\-.]\d{1,2}`),
	regexp.MustCompile(`(?i)\d{1,2}(?:\s+|\s*[\-/]\s*)` + monthNames + `(?:\s+|\s*[\-/]\s*)\d{2,4}`),
}

const minBirthYear = 1900

// dobStrategy proposes a raw date fragment and its parsed value.
type dobStrategy func(text NormalizedText, now time.Time) (string, time.Time, bool)

// ExtractDOB returns the raw date fragment and the date it parsed to, or two
// nils. The raw fragment is only reported together with a parsed date.
func (e *FieldExtractor) ExtractDOB(text NormalizedText, now time.Time) (*string, *time.Time) {
	for _, strategy := range e.dobStrategies {
		if raw, date, ok := strategy(text, now); ok {
			return &raw, &date
		}
	}
	return nil, nil
}

// labeledDOB searches the text following a DOB label on the same line.
func (e *FieldExtractor) labeledDOB(text NormalizedText, _ time.Time) (string, time.Time, bool) {
	for _, line := range text.Lines {
		m := e.dobLabelRe.FindStringSubmatch(line)
		if len(m) < 2 {
			continue
		}
		for _, shape := range dateShapes {
			for _, candidate := range findDateShapes(shape, m[1]) {
				if d, ok := ParseDate(candidate); ok {
					return candidate, d, true
				}
			}
		}
	}
	return "", time.Time{}, false
}

// unlabeledDOB scans the whole text. A plausible birth year, in
// (1900, now.Year()], beats one that is merely after 1900.
func (e *FieldExtractor) unlabeledDOB(text NormalizedText, now time.Time) (string, time.Time, bool) {
	var (
		fallbackRaw  string
		fallbackDate time.Time
		haveFallback bool
	)
	for _, shape := range dateShapes {
		for _, candidate := range findDateShapes(shape, text.Whole) {
			d, ok := ParseDate(candidate)
			if !ok || d.Year() <= minBirthYear {
				continue
			}
			if d.Year() <= now.Year() {
				return candidate, d, true
			}
			if !haveFallback {
				fallbackRaw, fallbackDate, haveFallback = candidate, d, true
			}
		}
	}
	return fallbackRaw, fallbackDate, haveFallback
}

// findDateShapes returns the matches of shape in s, left to right, dropping
// any match that sits inside a longer digit run.
func findDateShapes(shape *regexp.Regexp, s string) []string {
	var out []string
	for _, loc := range shape.FindAllStringIndex(s, -1) {
		start, end := loc[0], loc[1]
		if start > 0 && isASCIIDigit(s[start-1]) {
			continue
		}
		if end < len(s) && isASCIIDigit(s[end]) {
			continue
		}
		out = append(out, s[start:end])
	}
	return out
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
