// Package extract turns the raw text of the least-structured channel,
// the authority-issued free-text document, into candidate field values.
// Several extraction strategies compete: each reports a cheap confidence
// probe for a given text, and a selector picks which one actually runs.
// Extraction never fails; text no strategy understands yields an empty
// result at confidence zero.
package extract

import (
	"strings"

	"github.com/normafin/fieldfusion/pkg/fuzzy"
)

// Canonical logical field names used across extraction, fusion, and
// entity assembly.
const (
	FieldExpediente = "expediente"
	FieldCausa      = "causa"
	FieldAccion     = "accion"
	FieldImporte    = "importe"
	FieldMoneda     = "moneda"
	FieldNombre     = "nombre"
	FieldRFC        = "rfc"
	FieldCURP       = "curp"
	FieldCuenta     = "cuenta"
	FieldFecha      = "fecha"
	FieldAutoridad  = "autoridad"
)

// identifierFields are the fields whose labels must never be matched
// approximately: a misread label must not hang an identifier on the
// wrong slot.
var identifierFields = map[string]bool{
	FieldRFC:        true,
	FieldCURP:       true,
	FieldCuenta:     true,
	FieldFecha:      true,
	FieldImporte:    true,
	FieldExpediente: true,
}

// labelAliases maps normalized document labels to canonical field names.
var labelAliases = map[string]string{
	"EXPEDIENTE":                  FieldExpediente,
	"NO DE EXPEDIENTE":            FieldExpediente,
	"NUMERO DE EXPEDIENTE":        FieldExpediente,
	"CAUSA":                       FieldCausa,
	"MOTIVO":                      FieldCausa,
	"FUNDAMENTO":                  FieldCausa,
	"SOLICITUD":                   FieldAccion,
	"ACCION SOLICITADA":           FieldAccion,
	"REQUERIMIENTO":               FieldAccion,
	"IMPORTE":                     FieldImporte,
	"MONTO":                       FieldImporte,
	"CANTIDAD":                    FieldImporte,
	"MONEDA":                      FieldMoneda,
	"DIVISA":                      FieldMoneda,
	"NOMBRE":                      FieldNombre,
	"NOMBRE DEL CONTRIBUYENTE":    FieldNombre,
	"CONTRIBUYENTE":               FieldNombre,
	"TITULAR":                     FieldNombre,
	"DENOMINACION O RAZON SOCIAL": FieldNombre,
	"RAZON SOCIAL":                FieldNombre,
	"RFC":                         FieldRFC,
	"CURP":                        FieldCURP,
	"CUENTA":                      FieldCuenta,
	"NUMERO DE CUENTA":            FieldCuenta,
	"CLABE":                       FieldCuenta,
	"CLABE INTERBANCARIA":         FieldCuenta,
	"FECHA":                       FieldFecha,
	"FECHA DEL OFICIO":            FieldFecha,
	"AUTORIDAD":                   FieldAutoridad,
	"AUTORIDAD EMISORA":           FieldAutoridad,
}

// Strategy is the two-operation contract every extraction heuristic
// implements. CanHandle is a cheap probe returning 0-100 confidence
// without extracting; Extract is only invoked once a strategy is
// selected.
type Strategy interface {
	// Name identifies the strategy in logs and audit output.
	Name() string

	// CanHandle returns a 0-100 confidence that this strategy can parse
	// the given text. It must be cheap and must not extract.
	CanHandle(text string) int

	// Extract parses the text into candidate field values. It never
	// returns nil and never fails; fields it cannot find stay empty.
	Extract(text string) *Fields
}

// Fields is the semantic result of one extraction pass: typed slots for
// the fields every order carries plus an open-ended map for the rest.
type Fields struct {
	CaseRef string
	Cause   string
	Action  string
	Amounts []string
	Extra   map[string]string
}

// NewFields creates an empty Fields.
func NewFields() *Fields {
	return &Fields{Extra: make(map[string]string)}
}

// Set stores a value under a canonical field name. Amount values
// accumulate; other typed slots keep their first non-empty value and
// unknown names land in Extra.
func (f *Fields) Set(name, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	switch name {
	case FieldExpediente:
		if f.CaseRef == "" {
			f.CaseRef = value
		}
	case FieldCausa:
		if f.Cause == "" {
			f.Cause = value
		}
	case FieldAccion:
		if f.Action == "" {
			f.Action = value
		}
	case FieldImporte:
		f.Amounts = append(f.Amounts, value)
	default:
		if f.Extra == nil {
			f.Extra = make(map[string]string)
		}
		if _, exists := f.Extra[name]; !exists {
			f.Extra[name] = value
		}
	}
}

// Get returns the value stored under a canonical field name, or "".
// For amounts it returns the first one found.
func (f *Fields) Get(name string) string {
	switch name {
	case FieldExpediente:
		return f.CaseRef
	case FieldCausa:
		return f.Cause
	case FieldAccion:
		return f.Action
	case FieldImporte:
		if len(f.Amounts) > 0 {
			return f.Amounts[0]
		}
		return ""
	default:
		return f.Extra[name]
	}
}

// Map flattens the typed slots and the extra map into one field→value
// view for fusion. Only the first amount is exposed as "importe".
func (f *Fields) Map() map[string]string {
	out := make(map[string]string, len(f.Extra)+4)
	for name, value := range f.Extra {
		out[name] = value
	}
	if f.CaseRef != "" {
		out[FieldExpediente] = f.CaseRef
	}
	if f.Cause != "" {
		out[FieldCausa] = f.Cause
	}
	if f.Action != "" {
		out[FieldAccion] = f.Action
	}
	if len(f.Amounts) > 0 {
		out[FieldImporte] = f.Amounts[0]
	}
	return out
}

// Merge fills this result's gaps from another, without overwriting
// anything already present. Amounts concatenate, deduplicated.
func (f *Fields) Merge(other *Fields) {
	if other == nil {
		return
	}
	if f.CaseRef == "" {
		f.CaseRef = other.CaseRef
	}
	if f.Cause == "" {
		f.Cause = other.Cause
	}
	if f.Action == "" {
		f.Action = other.Action
	}
	for _, amount := range other.Amounts {
		if !contains(f.Amounts, amount) {
			f.Amounts = append(f.Amounts, amount)
		}
	}
	for name, value := range other.Extra {
		if f.Extra == nil {
			f.Extra = make(map[string]string)
		}
		if _, exists := f.Extra[name]; !exists {
			f.Extra[name] = value
		}
	}
}

// Overlay copies another result's values over this one: the other side
// wins wherever it found something. Used for cross-reference resolution.
func (f *Fields) Overlay(other *Fields) {
	if other == nil {
		return
	}
	if other.CaseRef != "" {
		f.CaseRef = other.CaseRef
	}
	if other.Cause != "" {
		f.Cause = other.Cause
	}
	if other.Action != "" {
		f.Action = other.Action
	}
	if len(other.Amounts) > 0 {
		f.Amounts = append([]string(nil), other.Amounts...)
	}
	for name, value := range other.Extra {
		if f.Extra == nil {
			f.Extra = make(map[string]string)
		}
		f.Extra[name] = value
	}
}

// Empty reports whether the extraction found nothing at all.
func (f *Fields) Empty() bool {
	return f.CaseRef == "" && f.Cause == "" && f.Action == "" &&
		len(f.Amounts) == 0 && len(f.Extra) == 0
}

// normalizeLabel uppercases a document label, strips diacritics and
// trailing punctuation, and collapses whitespace for alias lookup.
func normalizeLabel(label string) string {
	label = strings.ToUpper(fuzzy.Normalize(label))
	label = strings.Trim(label, " .:;-_")
	label = strings.ReplaceAll(label, ".", "")
	return strings.Join(strings.Fields(label), " ")
}

// canonicalField resolves a raw document label to a canonical field
// name, or "" when the label is not recognized.
func canonicalField(label string) string {
	return labelAliases[normalizeLabel(label)]
}

func contains(items []string, v string) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}
