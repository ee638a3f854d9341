// Package eligibility maps a profile to eligibility tags and filters the
// scheme catalog by tag intersection.
package eligibility

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Aashish23092/schemelink/dto"
)

// LowIncomeThreshold is the monthly income at or below which the low-income
// tags apply.
const LowIncomeThreshold = 10000

// Eligibility tags
const (
	TagStudents       = "Students"
	TagEducation      = "Education"
	TagFarmers        = "Farmers"
	TagAgriculture    = "Agriculture"
	TagSeniorCitizens = "Senior Citizens"
	TagPension        = "Pension"
	TagDisability     = "Disability"
	TagWomen          = "Women"
	TagGirls          = "Girls"
	TagGirlChild      = "Girl Child"
	TagMen            = "Men"
	TagBoys           = "Boys"
	TagTransgender    = "Transgender"
	TagInclusion      = "Inclusion"
	TagBPL            = "BPL"
	TagLowIncome      = "Low-Income"
	TagWelfare        = "Welfare"
	TagPoverty        = "Poverty"
	TagSocialSecurity = "Social Security"
)

var leadingIntRe = regexp.MustCompile(`^\s*([+-]?\d+)`)

// TagSet is an unordered set of eligibility tags.
type TagSet map[string]struct{}

func (s TagSet) add(tags ...string) {
	for _, t := range tags {
		s[t] = struct{}{}
	}
}

// Has reports membership.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Sorted returns the tags in lexical order, for display.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Intersects reports whether any of tags is in the set.
func (s TagSet) Intersects(tags []string) bool {
	for _, t := range tags {
		if s.Has(t) {
			return true
		}
	}
	return false
}

// DeriveTags applies the additive tag rules to a profile.
func DeriveTags(p dto.Profile) TagSet {
	tags := TagSet{}

	if p.IsStudent {
		tags.add(TagStudents, TagEducation)
	}
	if p.IsFarmer {
		tags.add(TagFarmers, TagAgriculture)
	}
	if p.IsSenior {
		tags.add(TagSeniorCitizens, TagPension)
	}
	if p.IsDisability {
		tags.add(TagDisability)
	}

	switch dto.Gender(p.Gender) {
	case dto.GenderFemale:
		tags.add(TagWomen, TagGirls, TagGirlChild)
	case dto.GenderMale:
		tags.add(TagMen, TagBoys)
	case dto.GenderOther:
		tags.add(TagTransgender, TagInclusion)
	}

	if ParseIncome(p.Income) <= LowIncomeThreshold {
		tags.add(TagBPL, TagLowIncome, TagWelfare, TagPoverty, TagSocialSecurity)
	}

	return tags
}

// MatchSchemes returns the catalog entries sharing at least one tag with the
// profile, in catalog order.
func MatchSchemes(p dto.Profile, catalog []dto.SchemeRecord) []dto.SchemeRecord {
	return Filter(DeriveTags(p), catalog)
}

// Filter keeps the schemes whose tags intersect tags, in catalog order.
func Filter(tags TagSet, catalog []dto.SchemeRecord) []dto.SchemeRecord {
	matched := []dto.SchemeRecord{}
	if len(tags) == 0 {
		return matched
	}
	for _, s := range catalog {
		if tags.Intersects(s.Tags) {
			matched = append(matched, s)
		}
	}
	return matched
}

// ParseIncome reads the leading integer of s ("5000", " 12000 per month",
// "-5"). Anything without a leading integer is 0.
func ParseIncome(s string) int {
	m := leadingIntRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		// out of range
		if strings.HasPrefix(m[1], "-") {
			return math.MinInt
		}
		return math.MaxInt
	}
	return n
}
