package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/normafin/fieldfusion/internal/wordlists"
	"github.com/normafin/fieldfusion/pkg/fuzzy"
)

// searchConfidence is reported whenever a cross-reference marker is
// detected; the marker itself is strong evidence but the resolved value
// still depends on surrounding text.
const searchConfidence = 80

var (
	amountValueRE  = regexp.MustCompile(`\$?\s*\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?|\$?\s*\d+(?:\.\d{1,2})?`)
	accountValueRE = regexp.MustCompile(`\b\d{18}\b`)
)

// Search resolves textual cross-references: phrases like "el importe
// mencionado anteriormente" that point at a value stated elsewhere in
// the same document. Backward markers scan the text before the marker
// for the nearest value of the expected type; forward markers scan the
// text after it.
type Search struct {
	backward []string
	forward  []string
}

// NewSearch creates the cross-reference strategy with the embedded
// marker phrases.
func NewSearch() *Search {
	return &Search{
		backward: wordlists.BackwardMarkers(),
		forward:  wordlists.ForwardMarkers(),
	}
}

// Name identifies the strategy.
func (s *Search) Name() string { return "search" }

// CanHandle reports confidence near 80 when any cross-reference marker
// is present, zero otherwise.
func (s *Search) CanHandle(text string) int {
	normalized := fuzzy.Normalize(text)
	for _, marker := range append(append([]string(nil), s.backward...), s.forward...) {
		if strings.Contains(normalized, fuzzy.Normalize(marker)) {
			return searchConfidence
		}
	}
	return 0
}

// Extract resolves each marker it finds to the nearest value of the
// expected type and stores it under the referenced field. Markers are
// located in folded text so accent and whitespace noise cannot hide
// them; the offset map carries each hit back to its exact position in
// the original.
func (s *Search) Extract(text string) *Fields {
	fields := NewFields()
	normalized, offsets := normalizeIndexed(text)

	for _, marker := range s.backward {
		nm := fuzzy.Normalize(marker)
		idx := strings.Index(normalized, nm)
		if idx < 0 {
			continue
		}
		field, valueRE := expectedType(marker)
		before := text[:offsetAt(offsets, idx, len(text))]
		if match := lastMatch(valueRE, before); match != "" {
			fields.Set(field, match)
		}
	}

	for _, marker := range s.forward {
		nm := fuzzy.Normalize(marker)
		idx := strings.Index(normalized, nm)
		if idx < 0 {
			continue
		}
		field, valueRE := expectedType(marker)
		after := text[offsetAt(offsets, idx+len(nm), len(text)):]
		if match := strings.TrimSpace(valueRE.FindString(after)); match != "" {
			fields.Set(field, match)
		}
	}

	return fields
}

// expectedType infers which field a marker refers to from the marker's
// own wording. Account markers mention the account; everything else in
// the curated list refers to an amount.
func expectedType(marker string) (string, *regexp.Regexp) {
	if strings.Contains(fuzzy.Normalize(marker), "cuenta") {
		return FieldCuenta, accountValueRE
	}
	return FieldImporte, amountValueRE
}

// lastMatch returns the final match of re in text, skipping matches
// that are blank after trimming.
func lastMatch(re *regexp.Regexp, text string) string {
	matches := re.FindAllString(text, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		if m := strings.TrimSpace(matches[i]); m != "" {
			return m
		}
	}
	return ""
}

// normalizeIndexed folds text the same way fuzzy.Normalize does
// (lowercase, diacritics stripped, whitespace runs collapsed) while
// recording, for every byte of the folded text, the byte offset of the
// original rune it came from. Marker positions stay exact however
// unevenly the original distributes whitespace or accents.
func normalizeIndexed(text string) (string, []int) {
	var b strings.Builder
	offsets := make([]int, 0, len(text))
	pendingSpace := false

	for i, r := range text {
		if unicode.IsSpace(r) {
			pendingSpace = b.Len() > 0
			continue
		}
		folded := fuzzy.Normalize(string(r))
		if folded == "" {
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			offsets = append(offsets, i)
			pendingSpace = false
		}
		b.WriteString(folded)
		for k := 0; k < len(folded); k++ {
			offsets = append(offsets, i)
		}
	}
	return b.String(), offsets
}

// offsetAt maps an index in the folded text back to the original byte
// offset it was recorded at; indexes past the end map to end.
func offsetAt(offsets []int, idx, end int) int {
	if idx >= len(offsets) {
		return end
	}
	return offsets[idx]
}
