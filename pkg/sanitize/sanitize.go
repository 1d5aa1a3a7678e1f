// Package sanitize normalizes raw field text from any document channel
// before validation and fusion. It maps placeholder annotations, markup
// leftovers, and whitespace noise to an explicit absence: the empty
// string. Every operation is total and idempotent; no input, including
// garbage, produces an error.
package sanitize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/normafin/fieldfusion/internal/wordlists"
)

var (
	// Markup entities and tags that survive upstream text extraction.
	entityRE = regexp.MustCompile(`(?i)&nbsp;|&amp;nbsp;|&#160;|&#xa0;|<br\s*/?>|</?p>|\\n|\\r|\\t`)

	// Any run of whitespace, including line breaks, collapses to one space.
	spaceRE = regexp.MustCompile(`\s+`)

	// Currency decorations stripped before amount parsing.
	currencyRE = regexp.MustCompile(`(?i)\$|MXN|USD|EUR|M\.?N\.?|PESOS|DLS\.?|DOLARES|USCY`)
)

// Sanitizer cleans raw field values. The zero value is not usable;
// construct with New or Default.
type Sanitizer struct {
	nullPhrases map[string]struct{}
}

// New creates a Sanitizer that recognizes the given null-equivalent
// phrases (compared case-insensitively after cleaning).
func New(nullPhrases []string) *Sanitizer {
	set := make(map[string]struct{}, len(nullPhrases))
	for _, p := range nullPhrases {
		set[strings.ToUpper(strings.TrimSpace(p))] = struct{}{}
	}
	return &Sanitizer{nullPhrases: set}
}

// Default creates a Sanitizer with the embedded curated phrase list.
func Default() *Sanitizer {
	return New(wordlists.NullPhrases())
}

// Clean normalizes a raw value. It returns "" when the input carries no
// usable data and a non-empty cleaned string otherwise. Clean is
// idempotent: Clean(Clean(s)) == Clean(s) for every s.
func (s *Sanitizer) Clean(raw string) string {
	v := entityRE.ReplaceAllString(raw, " ")
	v = spaceRE.ReplaceAllString(v, " ")
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if isFiller(v) {
		return ""
	}
	if _, null := s.nullPhrases[strings.ToUpper(v)]; null {
		return ""
	}
	return v
}

// CleanAmount normalizes a monetary value: Clean, strip currency
// symbols and thousands separators, parse as a decimal, reject
// negatives, and round half away from zero to whole currency units.
// Returns "" when no valid non-negative amount can be recovered.
func (s *Sanitizer) CleanAmount(raw string) string {
	v := s.Clean(raw)
	if v == "" {
		return ""
	}

	v = currencyRE.ReplaceAllString(v, "")
	v = strings.ReplaceAll(v, ",", "")
	v = strings.ReplaceAll(v, " ", "")
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}

	d, err := decimal.NewFromString(v)
	if err != nil {
		return ""
	}
	if d.IsNegative() {
		return ""
	}

	// decimal.Round rounds half away from zero, which is the rounding
	// the governing regulation prescribes for whole-peso amounts.
	return d.Round(0).String()
}

// isFiller reports whether a cleaned value consists only of spaces and
// underscores, the residue of form fields left unfilled.
func isFiller(v string) bool {
	for _, r := range v {
		if r != ' ' && r != '_' {
			return false
		}
	}
	return true
}
