// Package fuzzy implements selective approximate matching for personal
// names. Approximate comparison is allowed only between values that
// look like names; identifiers, account codes, dates, and amounts are
// always compared exactly so that a one-character OCR slip can never
// conflate two different accounts.
package fuzzy

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/normafin/fieldfusion/internal/wordlists"
	"github.com/normafin/fieldfusion/pkg/patterns"
)

// DefaultThreshold is the similarity score at or above which two
// name-like values are considered the same person.
const DefaultThreshold = 85

// letterRatio is the minimum share of name-plausible characters a value
// needs to be classified as name-like.
const letterRatio = 0.8

// Locale-typical surname suffixes (patronymics like -ez dominate the
// target population).
var surnameSuffixes = []string{"EZ", "AZ", "IZ", "OZ", "ES", "AS"}

// Matcher performs name-aware approximate comparison. Immutable after
// construction; safe for concurrent use.
type Matcher struct {
	threshold  int
	validator  *patterns.Validator
	givenNames map[string]struct{}
	surnames   map[string]struct{}
}

// New creates a Matcher with the given similarity threshold, pattern
// validator, and curated name lists.
func New(threshold int, validator *patterns.Validator, givenNames, surnames []string) *Matcher {
	if threshold <= 0 || threshold > 100 {
		threshold = DefaultThreshold
	}
	if validator == nil {
		validator = patterns.Default()
	}
	return &Matcher{
		threshold:  threshold,
		validator:  validator,
		givenNames: toSet(givenNames),
		surnames:   toSet(surnames),
	}
}

// Default creates a Matcher with the default threshold and the embedded
// curated name lists.
func Default() *Matcher {
	return New(DefaultThreshold, patterns.Default(), wordlists.GivenNames(), wordlists.Surnames())
}

// Threshold returns the configured similarity threshold.
func (m *Matcher) Threshold() int {
	return m.threshold
}

// IsNameField classifies a value as name-like: it matches no
// identifier/account/date/amount/case-file format and at least 80% of
// its characters are letters, spaces, hyphens, or apostrophes.
func (m *Matcher) IsNameField(v string) bool {
	if v == "" {
		return false
	}
	if m.validator.MatchesAnyIdentifier(v) {
		return false
	}

	var nameRunes, total int
	for _, r := range v {
		total++
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			nameRunes++
		}
	}
	if total == 0 {
		return false
	}
	return float64(nameRunes)/float64(total) >= letterRatio
}

// IsLikelyPersonName reports whether a value is probably a personal
// name in the target locale: it carries diacritics, contains a curated
// given name or surname, or ends in a locale-typical surname suffix.
func (m *Matcher) IsLikelyPersonName(v string) bool {
	if v == "" {
		return false
	}
	if hasDiacritics(v) {
		return true
	}

	for _, token := range strings.Fields(strings.ToUpper(stripDiacritics(v))) {
		if _, ok := m.givenNames[token]; ok {
			return true
		}
		if _, ok := m.surnames[token]; ok {
			return true
		}
		for _, suffix := range surnameSuffixes {
			if len(token) >= 4 && strings.HasSuffix(token, suffix) {
				return true
			}
		}
	}
	return false
}

// Similarity returns a 0-100 similarity score between the normalized
// forms of a and b, based on edit distance.
func (m *Matcher) Similarity(a, b string) int {
	na, nb := Normalize(a), Normalize(b)
	if na == nb {
		return 100
	}
	longest := max(len([]rune(na)), len([]rune(nb)))
	if longest == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(na, nb)
	score := 100 - (dist*100+longest/2)/longest
	if score < 0 {
		return 0
	}
	return score
}

// IsMatch compares two values. Approximate comparison applies only when
// both values are name-like and at least one is likely a personal name;
// every other pair, identifiers above all, must be exactly equal after
// normalization.
func (m *Matcher) IsMatch(a, b string) bool {
	if m.IsNameField(a) && m.IsNameField(b) &&
		(m.IsLikelyPersonName(a) || m.IsLikelyPersonName(b)) {
		return m.Similarity(a, b) >= m.threshold
	}
	return Normalize(a) == Normalize(b)
}

// Normalize lowercases, strips diacritics, and collapses whitespace.
func Normalize(v string) string {
	v = strings.ToLower(stripDiacritics(v))
	return strings.Join(strings.Fields(v), " ")
}

// stripDiacritics removes combining marks: "Pérez" becomes "Perez".
func stripDiacritics(v string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, v)
	if err != nil {
		return v
	}
	return out
}

// hasDiacritics reports whether any rune decomposes to a combining mark.
func hasDiacritics(v string) bool {
	return stripDiacritics(v) != v
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.ToUpper(strings.TrimSpace(item))] = struct{}{}
	}
	return set
}
