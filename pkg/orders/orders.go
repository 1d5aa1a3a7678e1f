// Package orders defines the business entities a reconciled compliance
// order assembles into: the affected party, the mandated action, and
// the case record that ties them to the issuing case file. Entities
// always construct, whatever the data quality; problems accumulate as
// warning codes on each entity's ValidationState.
package orders

import "strings"

// PartyKind distinguishes individuals from corporate entities, which
// carry different identifier formats.
type PartyKind int

const (
	// Individual is a natural person (13-character RFC, CURP).
	Individual PartyKind = iota

	// Corporate is a legal entity (12-character RFC, no CURP).
	Corporate
)

// String returns the string representation of a party kind.
func (k PartyKind) String() string {
	switch k {
	case Corporate:
		return "corporate"
	case Individual:
		return "individual"
	default:
		return "individual"
	}
}

// ActionKind is the closed taxonomy of mandated actions.
type ActionKind int

const (
	// ReportInformation requires reporting account information.
	ReportInformation ActionKind = iota

	// Freeze requires immobilizing the account.
	Freeze

	// Unfreeze lifts a prior immobilization.
	Unfreeze

	// Transfer requires moving funds to an authority account.
	Transfer

	// ProduceDocuments requires producing supporting documentation.
	ProduceDocuments
)

// ActionKinds returns all defined action kinds.
func ActionKinds() []ActionKind {
	return []ActionKind{ReportInformation, Freeze, Unfreeze, Transfer, ProduceDocuments}
}

// String returns the string representation of an action kind.
func (k ActionKind) String() string {
	switch k {
	case Freeze:
		return "freeze"
	case Unfreeze:
		return "unfreeze"
	case Transfer:
		return "transfer"
	case ProduceDocuments:
		return "produce_documents"
	case ReportInformation:
		return "report_information"
	default:
		return "report_information"
	}
}

// Code returns the stable numeric code used when action kinds are
// persisted or exchanged with external systems.
func (k ActionKind) Code() int {
	switch k {
	case Freeze:
		return 1
	case Unfreeze:
		return 2
	case Transfer:
		return 3
	case ProduceDocuments:
		return 4
	case ReportInformation:
		return 5
	default:
		return 5
	}
}

// ParseActionKind infers the action kind from the free-text wording of
// a request. Unrecognized wording defaults to ReportInformation, the
// least invasive mandate.
func ParseActionKind(text string) ActionKind {
	t := strings.ToLower(text)
	switch {
	case containsAny(t, "desbloqueo", "desbloquear", "liberacion", "liberación", "liberar"):
		return Unfreeze
	case containsAny(t, "aseguramiento", "asegurar", "inmoviliza", "bloqueo", "bloquear", "embargo"):
		return Freeze
	case containsAny(t, "transferencia", "transferir", "traspaso"):
		return Transfer
	case containsAny(t, "documentacion", "documentación", "documentos", "contratos", "estados de cuenta"):
		return ProduceDocuments
	default:
		return ReportInformation
	}
}

// Party is the person or entity an order acts on.
type Party struct {
	Kind       PartyKind
	Name       string
	RFC        string
	CURP       string
	Account    string
	Validation *ValidationState
}

// NewParty creates a Party with an empty validation state. The kind is
// inferred from the RFC length when one is present.
func NewParty(name, rfc, curp, account string) *Party {
	kind := Individual
	if len([]rune(rfc)) == 12 {
		kind = Corporate
	}
	return &Party{
		Kind:       kind,
		Name:       name,
		RFC:        rfc,
		CURP:       curp,
		Account:    account,
		Validation: NewValidationState(),
	}
}

// Action is the mandated action an order requires.
type Action struct {
	Kind       ActionKind
	Amount     string
	Currency   string
	Deadline   string
	Validation *ValidationState
}

// NewAction creates an Action with an empty validation state.
func NewAction(kind ActionKind, amount, currency, deadline string) *Action {
	return &Action{
		Kind:       kind,
		Amount:     amount,
		Currency:   currency,
		Deadline:   deadline,
		Validation: NewValidationState(),
	}
}

// CaseRecord is the canonical legal case an order was issued under,
// assembled from the fused field values.
type CaseRecord struct {
	Expediente string
	Cause      string
	Authority  string
	Parties    []*Party
	Actions    []*Action
	Validation *ValidationState
}

// NewCaseRecord creates a CaseRecord with an empty validation state.
func NewCaseRecord(expediente, cause, authority string) *CaseRecord {
	return &CaseRecord{
		Expediente: expediente,
		Cause:      cause,
		Authority:  authority,
		Validation: NewValidationState(),
	}
}

// Warnings collects every warning code on the record and its children,
// in record, party, action order.
func (r *CaseRecord) Warnings() []string {
	var all []string
	all = append(all, r.Validation.Codes()...)
	for _, p := range r.Parties {
		all = append(all, p.Validation.Codes()...)
	}
	for _, a := range r.Actions {
		all = append(all, a.Validation.Codes()...)
	}
	return all
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
