package extract

import (
	"regexp"
)

// complementConfidence is modest but never zero: the complement
// strategy always has something to offer because it sweeps for values
// other sources may have missed.
const complementConfidence = 25

var (
	rfcSweepRE    = regexp.MustCompile(`\b[A-ZÑ&]{3,4}\d{6}[A-Z0-9]{3}\b`)
	curpSweepRE   = regexp.MustCompile(`\b[A-Z]{4}\d{6}[HM][A-Z]{5}[A-Z0-9]\d\b`)
	clabeSweepRE  = regexp.MustCompile(`\b\d{18}\b`)
	dateSweepRE   = regexp.MustCompile(`\b\d{2}[/-]?\d{2}[/-]?\d{4}\b`)
	amountSweepRE = regexp.MustCompile(`\$\s*\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?`)
	expSweepRE    = regexp.MustCompile(`\b[A-Z0-9-]{1,10}/\d{1,8}/[A-Z0-9-]{1,20}\b`)
)

// Complement fills the gaps other sources leave. It is invoked
// explicitly in complement mode as part of normal operation, not as
// error recovery: the free-text document frequently carries identifiers
// the structured channels dropped, just without labels. It combines a
// contextual pass with format-driven sweeps over the whole text.
type Complement struct {
	contextual *Contextual
}

// NewComplement creates the complement strategy.
func NewComplement() *Complement {
	return &Complement{contextual: NewContextual()}
}

// Name identifies the strategy.
func (c *Complement) Name() string { return "complement" }

// CanHandle always reports a non-zero confidence.
func (c *Complement) CanHandle(_ string) int {
	return complementConfidence
}

// Extract runs a contextual pass and then sweeps the whole text for
// values recognizable by format alone.
func (c *Complement) Extract(text string) *Fields {
	fields := c.contextual.Extract(text)

	if fields.Get(FieldCURP) == "" {
		if m := curpSweepRE.FindString(text); m != "" {
			fields.Set(FieldCURP, m)
		}
	}
	if fields.Get(FieldRFC) == "" {
		// The word-boundary anchors keep 18-character CURP tokens from
		// being misread as 13-character RFCs.
		if m := rfcSweepRE.FindString(text); m != "" {
			fields.Set(FieldRFC, m)
		}
	}
	if fields.Get(FieldCuenta) == "" {
		if m := clabeSweepRE.FindString(text); m != "" {
			fields.Set(FieldCuenta, m)
		}
	}
	if fields.Get(FieldFecha) == "" {
		if m := dateSweepRE.FindString(text); m != "" {
			fields.Set(FieldFecha, m)
		}
	}
	if fields.Get(FieldExpediente) == "" {
		if m := expSweepRE.FindString(text); m != "" {
			fields.Set(FieldExpediente, m)
		}
	}
	if len(fields.Amounts) == 0 {
		for _, m := range amountSweepRE.FindAllString(text, -1) {
			fields.Set(FieldImporte, m)
		}
	}

	return fields
}
