// Package validate implements the post-fusion validators: best-effort,
// additive-only checks against assembled entities. Validators append
// warning codes to each entity's ValidationState without altering field
// values and without ever failing; the warnings feed the manual-review
// queue, nothing else.
package validate

import (
	"strings"

	"github.com/normafin/fieldfusion/internal/wordlists"
	"github.com/normafin/fieldfusion/pkg/orders"
	"github.com/normafin/fieldfusion/pkg/patterns"
)

// Warning codes appended by the post-fusion validators.
const (
	WarnMissingName       = "missing_name"
	WarnMissingRFC        = "missing_rfc"
	WarnInvalidRFC        = "invalid_rfc"
	WarnRFCKindMismatch   = "rfc_kind_mismatch"
	WarnMissingCURP       = "missing_curp"
	WarnInvalidCURP       = "invalid_curp"
	WarnMissingAccount    = "missing_account"
	WarnInvalidAccount    = "invalid_account"
	WarnMissingAmount     = "missing_amount"
	WarnInvalidAmount     = "invalid_amount"
	WarnUnknownCurrency   = "unknown_currency"
	WarnInvalidDeadline   = "invalid_deadline"
	WarnMissingExpediente = "missing_expediente"
	WarnInvalidExpediente = "invalid_expediente"
	WarnMissingCause      = "missing_cause"
)

// Validator runs the post-fusion checks. Immutable after construction;
// safe for concurrent use.
type Validator struct {
	pats       *patterns.Validator
	currencies map[string]struct{}
}

// New creates a Validator over the given pattern validator and
// recognized currency codes.
func New(pats *patterns.Validator, currencies []string) *Validator {
	if pats == nil {
		pats = patterns.Default()
	}
	set := make(map[string]struct{}, len(currencies))
	for _, c := range currencies {
		set[strings.ToUpper(strings.TrimSpace(c))] = struct{}{}
	}
	return &Validator{pats: pats, currencies: set}
}

// Default creates a Validator with the embedded ISO 4217 currency list.
func Default() *Validator {
	return New(patterns.Default(), wordlists.Currencies())
}

// Party checks a party's identifiers against its kind. Individuals must
// carry an RFC and a CURP; corporate entities an RFC. Account-bearing
// mandates require an account code.
func (v *Validator) Party(p *orders.Party) {
	if p == nil {
		return
	}
	if p.Validation == nil {
		p.Validation = orders.NewValidationState()
	}

	if p.Name == "" {
		p.Validation.Add(WarnMissingName)
	}

	switch {
	case p.RFC == "":
		p.Validation.Add(WarnMissingRFC)
	case !v.pats.ValidRFC(p.RFC):
		p.Validation.Add(WarnInvalidRFC)
	case p.Kind == orders.Individual && !v.pats.ValidRFCIndividual(p.RFC),
		p.Kind == orders.Corporate && !v.pats.ValidRFCCorporate(p.RFC):
		p.Validation.Add(WarnRFCKindMismatch)
	}

	if p.Kind == orders.Individual {
		switch {
		case p.CURP == "":
			p.Validation.Add(WarnMissingCURP)
		case !v.pats.ValidCURP(p.CURP):
			p.Validation.Add(WarnInvalidCURP)
		}
	}

	switch {
	case p.Account == "":
		p.Validation.Add(WarnMissingAccount)
	case !v.pats.ValidCLABE(p.Account):
		p.Validation.Add(WarnInvalidAccount)
	}
}

// Action checks the mandated action's amount, currency, and deadline.
// Monetary mandates (freeze, transfer) must carry a valid amount.
func (v *Validator) Action(a *orders.Action) {
	if a == nil {
		return
	}
	if a.Validation == nil {
		a.Validation = orders.NewValidationState()
	}

	monetary := a.Kind == orders.Freeze || a.Kind == orders.Transfer
	switch {
	case a.Amount == "":
		if monetary {
			a.Validation.Add(WarnMissingAmount)
		}
	case !v.pats.ValidAmount(a.Amount):
		a.Validation.Add(WarnInvalidAmount)
	}

	if a.Currency != "" {
		if _, known := v.currencies[strings.ToUpper(a.Currency)]; !known {
			a.Validation.Add(WarnUnknownCurrency)
		}
	}

	if a.Deadline != "" && !v.pats.ValidDate(a.Deadline) {
		a.Validation.Add(WarnInvalidDeadline)
	}
}

// Record checks the case record and recurses into its parties and
// actions. It never alters values and never fails.
func (v *Validator) Record(r *orders.CaseRecord) {
	if r == nil {
		return
	}
	if r.Validation == nil {
		r.Validation = orders.NewValidationState()
	}

	switch {
	case r.Expediente == "":
		r.Validation.Add(WarnMissingExpediente)
	case !v.pats.ValidExpediente(r.Expediente):
		r.Validation.Add(WarnInvalidExpediente)
	}

	if r.Cause == "" {
		r.Validation.Add(WarnMissingCause)
	}

	for _, p := range r.Parties {
		v.Party(p)
	}
	for _, a := range r.Actions {
		v.Action(a)
	}
}
