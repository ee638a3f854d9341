package utils

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	nameCutRe     = regexp.MustCompile(`[,|/\\\d].*$`)
	allCapsLineRe = regexp.MustCompile(`^[A-Z\s]+$`)
	titleCaseRe   = regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?$`)
	nameNoiseRe   = regexp.MustCompile(`[^A-Za-z\s\-.]`)
)

const (
	maxCapsWords   = 5
	minNameLineLen = 3
	maxNameLineLen = 60
)

// nameStrategy proposes a name from the normalized lines.
type nameStrategy func(lines []string) (string, bool)

// ExtractName runs the name strategies in order and returns the first hit.
func (e *FieldExtractor) ExtractName(lines []string) *string {
	for _, strategy := range e.nameStrategies {
		if name, ok := strategy(lines); ok {
			return &name
		}
	}
	return nil
}

// labeledName takes the text after a name label, up to the first digit,
// comma or slash. A line may carry several labels ("नाम / Name: ...",
// "Card Holder Name: ..."); the first label whose trailing text yields a
// usable name wins.
func (e *FieldExtractor) labeledName(lines []string) (string, bool) {
	for _, line := range lines {
		rest := line
		for {
			loc := e.nameLabelRe.FindStringSubmatchIndex(rest)
			if loc == nil {
				break
			}
			trailing := rest[loc[2]:loc[3]]
			rest = trailing

			if next := e.nameLabelRe.FindStringIndex(trailing); next != nil && next[0] == 0 {
				continue
			}
			name := strings.TrimSpace(nameCutRe.ReplaceAllString(trailing, ""))
			if utf8.RuneCountInString(name) > 1 {
				return name, true
			}
		}
	}
	return "", false
}

// structuralName picks the shortest line shaped like a person's name.
// Shorter lines carry less trailing noise.
func (e *FieldExtractor) structuralName(lines []string) (string, bool) {
	var candidates []string
	for _, line := range lines {
		n := utf8.RuneCountInString(line)
		if n < minNameLineLen || n > maxNameLineLen {
			continue
		}
		if e.nameStopRe.MatchString(line) || e.genderValues[strings.ToLower(strings.TrimSpace(line))] {
			continue
		}
		if allCapsLineRe.MatchString(line) && len(strings.Fields(line)) <= maxCapsWords {
			candidates = append(candidates, line)
			continue
		}
		if titleCaseRe.MatchString(line) {
			candidates = append(candidates, line)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i]) < len(candidates[j])
	})

	name := strings.TrimSpace(nameNoiseRe.ReplaceAllString(candidates[0], ""))
	if name == "" {
		return "", false
	}
	return name, true
}
