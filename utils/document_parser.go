package utils

import (
	"regexp"
	"strings"
	"time"

	"github.com/Aashish23092/schemelink/dto"
)

// FieldExtractor turns recognized text into an ExtractionResult. It is
// immutable after construction and safe for concurrent use.
type FieldExtractor struct {
	labels LabelTable

	// lower-cased GenderValues; a line holding only one is never a name
	genderValues map[string]bool

	nameLabelRe   *regexp.Regexp
	nameStopRe    *regexp.Regexp
	dobLabelRe    *regexp.Regexp
	genderLabelRe *regexp.Regexp

	nameStrategies   []nameStrategy
	dobStrategies    []dobStrategy
	genderStrategies []genderStrategy
}

// NewFieldExtractor compiles the label table into matchers.
func NewFieldExtractor(labels LabelTable) *FieldExtractor {
	e := &FieldExtractor{
		labels: labels,

		// "Name: Ravi Kumar", "नाम - Ravi Kumar"
		nameLabelRe: regexp.MustCompile(`(?i)(?:^|` + nonWord + `)` + alternation(labels.Name) +
			`\s*[:\-\s]\s*(.+)`),
		nameStopRe: regexp.MustCompile(`(?i)(?:^|` + nonWord + `)` + alternation(labels.NameStop)),
		// everything after the label; date shapes are searched inside it
		dobLabelRe: regexp.MustCompile(`(?i)(?:^|` + nonWord + `)` + alternation(labels.DOB) +
			`(?:` + nonWord + `(.*)|$)`),
		// "Sex: M", "Gender - Female", "लिंग: महिला"
		genderLabelRe: regexp.MustCompile(`(?i)(?:^|` + nonWord + `)` + alternation(labels.Gender) +
			`(?:\s*[:\-]\s*|\s+)(` + alternation(labels.GenderValues) + `)(?:` + nonWord + `|$)`),
	}

	e.genderValues = make(map[string]bool, len(labels.GenderValues))
	for _, v := range labels.GenderValues {
		e.genderValues[strings.ToLower(v)] = true
	}

	e.nameStrategies = []nameStrategy{e.labeledName, e.structuralName}
	e.dobStrategies = []dobStrategy{e.labeledDOB, e.unlabeledDOB}
	e.genderStrategies = []genderStrategy{e.labeledGender, genderWords, sexLetter}
	return e
}

var defaultExtractor = NewFieldExtractor(DefaultLabels())

// ParseDocumentText extracts fields using the default label table.
func ParseDocumentText(raw string, now time.Time) dto.ExtractionResult {
	return defaultExtractor.Extract(raw, now)
}

// Extract runs every field extractor over raw and composes the result. It
// never fails; fields that cannot be found are nil. now is the reference day
// for the age calculation and the plausible-birth-year bound.
func (e *FieldExtractor) Extract(raw string, now time.Time) dto.ExtractionResult {
	text := NormalizeText(raw)

	dobRaw, dobDate := e.ExtractDOB(text, now)

	return dto.ExtractionResult{
		Name:           e.ExtractName(text.Lines),
		DOBRaw:         dobRaw,
		DOBDate:        dobDate,
		Age:            CalculateAge(dobDate, now),
		Gender:         e.ExtractGender(text.Whole),
		IdentityNumber: ExtractIdentityNumber(text.Whole),
		Raw:            raw,
		Source:         dto.SourceText,
	}
}
