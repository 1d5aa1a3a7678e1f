package orders

// ValidationState accumulates warning codes against a business entity.
// It only ever grows, preserves insertion order, deduplicates, and is
// never used to reject an otherwise-constructed entity: warnings exist
// to route records to manual review, not to block assembly.
type ValidationState struct {
	codes []string
	seen  map[string]struct{}
}

// NewValidationState creates an empty ValidationState.
func NewValidationState() *ValidationState {
	return &ValidationState{seen: make(map[string]struct{})}
}

// Add appends a warning code, ignoring duplicates and blanks.
func (v *ValidationState) Add(code string) {
	if code == "" {
		return
	}
	if v.seen == nil {
		v.seen = make(map[string]struct{})
	}
	if _, dup := v.seen[code]; dup {
		return
	}
	v.seen[code] = struct{}{}
	v.codes = append(v.codes, code)
}

// Has reports whether a warning code has been recorded.
func (v *ValidationState) Has(code string) bool {
	_, ok := v.seen[code]
	return ok
}

// Codes returns the recorded warning codes in insertion order.
func (v *ValidationState) Codes() []string {
	out := make([]string, len(v.codes))
	copy(out, v.codes)
	return out
}

// Empty reports whether no warnings have been recorded.
func (v *ValidationState) Empty() bool {
	return len(v.codes) == 0
}
