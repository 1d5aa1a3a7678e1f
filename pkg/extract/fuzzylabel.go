package extract

import (
	"strings"

	"github.com/normafin/fieldfusion/pkg/fuzzy"
)

// fuzzyLabelThreshold is the similarity a mangled label must reach
// against a known label to be accepted.
const fuzzyLabelThreshold = 80

// FuzzyLabel extracts fields from OCR-mangled documents whose labels no
// longer match exactly ("EXPEDTENTE", "N0MBRE"). Labels are compared by
// edit distance; identifier-bearing fields are exempt, reusing the name
// matcher's exclusivity rule, so a misread label can never attach an
// identifier to the wrong slot.
type FuzzyLabel struct {
	matcher *fuzzy.Matcher
}

// NewFuzzyLabel creates the fuzzy-label strategy.
func NewFuzzyLabel(matcher *fuzzy.Matcher) *FuzzyLabel {
	if matcher == nil {
		matcher = fuzzy.Default()
	}
	return &FuzzyLabel{matcher: matcher}
}

// Name identifies the strategy.
func (f *FuzzyLabel) Name() string { return "fuzzy-label" }

// CanHandle reports confidence when at least one line carries a label
// that matches a known label approximately but not exactly.
func (f *FuzzyLabel) CanHandle(text string) int {
	mangled := 0
	for _, line := range strings.Split(text, "\n") {
		m := labelLineRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if canonicalField(m[1]) != "" {
			continue // exact labels are the structured strategy's job
		}
		if f.resolve(m[1]) != "" {
			mangled++
		}
	}
	if mangled == 0 {
		return 0
	}
	conf := 45 + mangled*5
	if conf > 65 {
		conf = 65
	}
	return conf
}

// Extract reads lines whose mangled labels resolve to a known
// non-identifier field.
func (f *FuzzyLabel) Extract(text string) *Fields {
	fields := NewFields()
	for _, line := range strings.Split(text, "\n") {
		m := labelLineRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		field := canonicalField(m[1])
		if field == "" {
			field = f.resolve(m[1])
		}
		if field == "" {
			continue
		}
		fields.Set(field, m[2])
	}
	return fields
}

// resolve finds the known label closest to a mangled one, restricted to
// fields that do not carry identifiers.
func (f *FuzzyLabel) resolve(label string) string {
	normalized := normalizeLabel(label)
	if normalized == "" {
		return ""
	}
	best, bestScore := "", 0
	for alias, field := range labelAliases {
		if identifierFields[field] {
			continue
		}
		if score := f.matcher.Similarity(normalized, alias); score > bestScore {
			best, bestScore = field, score
		}
	}
	if bestScore >= fuzzyLabelThreshold {
		return best
	}
	return ""
}
