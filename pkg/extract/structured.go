package extract

import (
	"regexp"
	"strings"
)

// labelLineRE matches one "LABEL: value" line of the authority's
// standard order layout.
var labelLineRE = regexp.MustCompile(`^\s*([A-ZÁÉÍÓÚÑÜa-záéíóúñü0-9 .]{2,50})\s*:\s*(.+?)\s*$`)

// Structured extracts fields from documents that follow the authority's
// standard layout: one labeled value per line, labels drawn from the
// official form. It reports the highest confidence of all strategies
// when the text conforms.
type Structured struct{}

// NewStructured creates the structured-layout strategy.
func NewStructured() *Structured {
	return &Structured{}
}

// Name identifies the strategy.
func (s *Structured) Name() string { return "structured" }

// CanHandle counts recognized labels at line starts. Two or more means
// the document follows the standard layout.
func (s *Structured) CanHandle(text string) int {
	hits := 0
	for _, line := range strings.Split(text, "\n") {
		if m := labelLineRE.FindStringSubmatch(line); m != nil {
			if canonicalField(m[1]) != "" {
				hits++
			}
		}
	}
	if hits < 2 {
		return 0
	}
	conf := 60 + hits*7
	if conf > 95 {
		conf = 95
	}
	return conf
}

// Extract reads every labeled line into its canonical field.
func (s *Structured) Extract(text string) *Fields {
	fields := NewFields()
	for _, line := range strings.Split(text, "\n") {
		m := labelLineRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		field := canonicalField(m[1])
		if field == "" {
			continue
		}
		fields.Set(field, m[2])
	}
	return fields
}
