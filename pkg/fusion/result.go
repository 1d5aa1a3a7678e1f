package fusion

import "github.com/normafin/fieldfusion/pkg/source"

// Candidate is one source's raw value for a logical field. Candidates
// are ephemeral: created at extraction time, consumed by fusion, never
// persisted. An empty Raw means the source had nothing for the field.
type Candidate struct {
	// Raw is the unsanitized text as the source produced it.
	Raw string

	// Origin is the document channel the value came from.
	Origin source.Origin

	// Weight overrides the engine's configured per-origin reliability
	// weight when positive. The pipeline uses it to scale the optical
	// channel's weight by the recognizer's own confidence.
	Weight float64
}

// Result is the outcome of fusing one field: the merged value, how it
// was decided, how confident the engine is, and which channels
// contributed. A Result with an empty Value means the field is absent.
type Result struct {
	// Value is the canonical sanitized value, or "" when absent.
	Value string

	// Decision records how the value was chosen.
	Decision Decision

	// Confidence is in [0,1].
	Confidence float64

	// Origins lists the channels that contributed to Value, in
	// candidate order. For agreement decisions and Conflict this is
	// every surviving channel; for WeightedVoting and BestEffort it is
	// only the winning group's channels.
	Origins []source.Origin
}

// Absent reports whether fusion produced no usable value.
func (r Result) Absent() bool {
	return r.Value == ""
}
