// Package catalog loads the static welfare-scheme catalog and answers
// lookups and searches over it.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/Aashish23092/schemelink/dto"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed schemes.yaml
var defaultSchemes []byte

// fuzzyThreshold is the Jaro-Winkler score a query word needs against a
// title word to count as a match.
const fuzzyThreshold = 0.88

// Catalog is an ordered, immutable list of schemes.
type Catalog struct {
	schemes []dto.SchemeRecord
	byID    map[int]int
}

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultSchemes)
}

// Load reads a YAML catalog from path, or the built-in one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML list of schemes. IDs must be unique and
// positive; every scheme needs a title and at least one tag.
func Parse(data []byte) (*Catalog, error) {
	var schemes []dto.SchemeRecord
	if err := yaml.Unmarshal(data, &schemes); err != nil {
		return nil, fmt.Errorf("invalid catalog YAML: %w", err)
	}

	byID := make(map[int]int, len(schemes))
	for i, s := range schemes {
		if s.ID <= 0 {
			return nil, fmt.Errorf("scheme %q: id must be positive", s.Title)
		}
		if _, dup := byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate scheme id %d", s.ID)
		}
		if strings.TrimSpace(s.Title) == "" {
			return nil, fmt.Errorf("scheme %d: title is required", s.ID)
		}
		if len(s.Tags) == 0 {
			return nil, fmt.Errorf("scheme %d: at least one tag is required", s.ID)
		}
		byID[s.ID] = i
	}

	return &Catalog{schemes: schemes, byID: byID}, nil
}

// All returns a copy of the schemes in catalog order.
func (c *Catalog) All() []dto.SchemeRecord {
	out := make([]dto.SchemeRecord, len(c.schemes))
	copy(out, c.schemes)
	return out
}

// Len is the number of schemes.
func (c *Catalog) Len() int { return len(c.schemes) }

// Get looks a scheme up by id.
func (c *Catalog) Get(id int) (dto.SchemeRecord, bool) {
	i, ok := c.byID[id]
	if !ok {
		return dto.SchemeRecord{}, false
	}
	return c.schemes[i], true
}

// Regions lists the distinct regions in first-seen order.
func (c *Catalog) Regions() []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range c.schemes {
		if !seen[s.Region] {
			seen[s.Region] = true
			out = append(out, s.Region)
		}
	}
	return out
}

// Search filters by region (empty matches all) and query, keeping catalog
// order. A scheme matches the query when every query word appears in its
// title, description or tags, or is close to a title word (typos such as
// "pensoin").
func (c *Catalog) Search(query, region string) []dto.SchemeRecord {
	words := strings.Fields(fold(query))
	region = strings.TrimSpace(region)
	metric := metrics.NewJaroWinkler()

	out := []dto.SchemeRecord{}
	for _, s := range c.schemes {
		if region != "" && !strings.EqualFold(s.Region, region) {
			continue
		}
		if matchesAll(s, words, metric) {
			out = append(out, s)
		}
	}
	return out
}

func matchesAll(s dto.SchemeRecord, words []string, metric strutil.StringMetric) bool {
	if len(words) == 0 {
		return true
	}
	haystack := fold(s.Title + " " + s.Desc + " " + strings.Join(s.Tags, " "))
	titleWords := strings.FieldsFunc(fold(s.Title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	for _, w := range words {
		if strings.Contains(haystack, w) {
			continue
		}
		if !closeToAny(w, titleWords, metric) {
			return false
		}
	}
	return true
}

func closeToAny(w string, candidates []string, metric strutil.StringMetric) bool {
	for _, c := range candidates {
		if strutil.Similarity(w, c, metric) >= fuzzyThreshold {
			return true
		}
	}
	return false
}

// fold lowercases and strips combining accents.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}
