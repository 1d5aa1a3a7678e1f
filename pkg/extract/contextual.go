package extract

import (
	"regexp"
	"strings"
)

// inlineLabelRE matches "LABEL: value" or "LABEL - value" anywhere in
// running text, not only at line starts.
var inlineLabelRE = regexp.MustCompile(`([A-ZÁÉÍÓÚÑÜ][A-ZÁÉÍÓÚÑÜa-záéíóúñü .]{1,45}?)\s*[:\-]\s*([^\n:;]{1,120})`)

// Contextual extracts fields from documents whose labels are present
// but irregularly placed: inside paragraphs, after numbering, wrapped
// across formatting. It scans label-then-value pairs anywhere.
type Contextual struct{}

// NewContextual creates the contextual strategy.
func NewContextual() *Contextual {
	return &Contextual{}
}

// Name identifies the strategy.
func (c *Contextual) Name() string { return "contextual" }

// CanHandle reports moderate confidence when recognized labels appear
// anywhere in the text. It never outranks a conforming structured
// document.
func (c *Contextual) CanHandle(text string) int {
	hits := 0
	for _, m := range inlineLabelRE.FindAllStringSubmatch(text, -1) {
		if canonicalField(m[1]) != "" {
			hits++
		}
	}
	if hits == 0 {
		return 0
	}
	conf := 30 + hits*8
	if conf > 70 {
		conf = 70
	}
	return conf
}

// Extract collects every recognized label-value pair.
func (c *Contextual) Extract(text string) *Fields {
	fields := NewFields()
	for _, m := range inlineLabelRE.FindAllStringSubmatch(text, -1) {
		field := canonicalField(m[1])
		if field == "" {
			continue
		}
		fields.Set(field, strings.TrimSpace(m[2]))
	}
	return fields
}
