// Package fieldfusion reconciles the three uncoordinated
// representations of a regulatory compliance order - a structured data
// file, an optically recognized scan, and an authority-issued free-text
// document - into one canonical, validated value per logical field,
// with an auditable decision trail.
//
// The package is a pure computation library: it owns no network, file,
// or display protocol, and nothing in it raises for malformed, missing,
// or garbled business data. Surrounding I/O-bound components feed it
// per-document text and consume its per-field decisions.
package fieldfusion

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/normafin/fieldfusion/internal/config"
	"github.com/normafin/fieldfusion/internal/wordlists"
	"github.com/normafin/fieldfusion/pkg/errors"
	"github.com/normafin/fieldfusion/pkg/extract"
	"github.com/normafin/fieldfusion/pkg/fusion"
	"github.com/normafin/fieldfusion/pkg/fuzzy"
	"github.com/normafin/fieldfusion/pkg/logging"
	"github.com/normafin/fieldfusion/pkg/orders"
	"github.com/normafin/fieldfusion/pkg/patterns"
	"github.com/normafin/fieldfusion/pkg/sanitize"
	"github.com/normafin/fieldfusion/pkg/source"
	"github.com/normafin/fieldfusion/pkg/validate"
)

// Document is one channel's representation of an order. The structured
// channel supplies pre-extracted Fields; the optical and free-text
// channels supply raw Text. Confidence carries the recognizer's own
// 0-1 score for optical scans and is ignored for other origins.
type Document struct {
	Origin     source.Origin
	Text       string
	Fields     map[string]string
	Confidence float64
}

// AuditEntry records one fusion decision for the audit log.
type AuditEntry struct {
	ID         uuid.UUID
	Field      string
	Decision   fusion.Decision
	Confidence float64
	Origins    []source.Origin
	At         time.Time
}

// Outcome is the result of reconciling one order's document set.
type Outcome struct {
	// Record is the assembled canonical case record.
	Record *orders.CaseRecord

	// Fields holds the per-field fusion results by logical field name.
	Fields map[string]fusion.Result

	// Audit lists one entry per fused field, in fusion order.
	Audit []AuditEntry

	mandatory []string
}

// NeedsMandatoryReview reports whether any mandatory field ended in a
// Conflict or AllSourcesNull decision; such records cannot
// auto-finalize.
func (o *Outcome) NeedsMandatoryReview() bool {
	for _, field := range o.mandatory {
		if result, ok := o.Fields[field]; ok && result.Decision.NeedsMandatoryReview() {
			return true
		}
	}
	return false
}

// NeedsReview reports whether any field carries a FuzzyAgreement,
// BestEffort, Conflict, or AllSourcesNull decision; such records
// finalize but are tagged for review.
func (o *Outcome) NeedsReview() bool {
	for _, result := range o.Fields {
		if result.Decision.NeedsReview() {
			return true
		}
	}
	return false
}

// defaultMandatory are the fields the governing policy marks mandatory
// unless the caller overrides them.
var defaultMandatory = []string{
	extract.FieldExpediente,
	extract.FieldNombre,
	extract.FieldCuenta,
	extract.FieldAccion,
}

// Reconciler runs the field reconciliation pipeline. Immutable after
// New returns; safe for concurrent use across independent document
// sets.
type Reconciler struct {
	cfg       *config.Config
	san       *sanitize.Sanitizer
	pats      *patterns.Validator
	matcher   *fuzzy.Matcher
	engine    *fusion.Engine
	selector  *extract.Selector
	validator *validate.Validator
	mandatory []string
	log       *zerolog.Logger
}

// New creates a Reconciler with the given options. The only errors are
// configuration contract violations; messy business data never fails.
func New(opts ...Option) (*Reconciler, error) {
	r := &Reconciler{
		cfg:       config.Default(),
		mandatory: defaultMandatory,
		log:       logging.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}

	r.san = sanitize.Default()
	r.pats = patterns.New(r.cfg.MaxLengths, config.DefaultMaxTextLength)
	r.matcher = fuzzy.New(r.cfg.FuzzyThreshold, r.pats, wordlists.GivenNames(), wordlists.Surnames())
	r.engine = fusion.NewEngine(r.san, r.matcher, r.cfg.OriginWeights(), r.cfg.AcceptanceThreshold)
	r.selector = extract.NewSelector(r.matcher).WithLogger(r.log)
	r.validator = validate.New(r.pats, wordlists.Currencies())

	return r, nil
}

// Reconcile fuses one order's documents into a canonical case record.
// The context is used for logging only; the pipeline is synchronous and
// CPU-bound.
func (r *Reconciler) Reconcile(ctx context.Context, docs []Document) (*Outcome, error) {
	for i, doc := range docs {
		if !doc.Origin.IsValid() {
			return nil, errors.NewDocumentError(i, "unknown origin", errors.ErrInvalidInput)
		}
	}

	candidates, fieldOrder := r.collect(docs)

	outcome := &Outcome{
		Fields:    make(map[string]fusion.Result, len(fieldOrder)),
		mandatory: r.mandatory,
	}

	log := r.log
	if ctxLog := logging.FromContext(ctx); ctxLog != logging.Default() {
		log = ctxLog
	}
	for _, field := range fieldOrder {
		result := r.engine.Fuse(field, candidates[field])
		outcome.Fields[field] = result

		entry := AuditEntry{
			ID:         uuid.New(),
			Field:      field,
			Decision:   result.Decision,
			Confidence: result.Confidence,
			Origins:    result.Origins,
			At:         time.Now().UTC(),
		}
		outcome.Audit = append(outcome.Audit, entry)

		log.Info().
			Str("audit_id", entry.ID.String()).
			Str("field", field).
			Str("decision", result.Decision.String()).
			Float64("confidence", result.Confidence).
			Msg("field fused")
	}

	outcome.Record = r.assemble(outcome.Fields)
	r.validator.Record(outcome.Record)

	return outcome, nil
}

// collect gathers per-field candidates from every document, then runs a
// complement pass over the free-text channel for fields no source
// produced.
func (r *Reconciler) collect(docs []Document) (map[string][]fusion.Candidate, []string) {
	candidates := make(map[string][]fusion.Candidate)
	var fieldOrder []string

	add := func(field string, c fusion.Candidate) {
		field = strings.ToLower(strings.TrimSpace(field))
		if field == "" {
			return
		}
		if _, seen := candidates[field]; !seen {
			fieldOrder = append(fieldOrder, field)
		}
		candidates[field] = append(candidates[field], c)
	}

	for _, doc := range docs {
		switch {
		case len(doc.Fields) > 0:
			names := make([]string, 0, len(doc.Fields))
			for name := range doc.Fields {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				add(name, fusion.Candidate{Raw: doc.Fields[name], Origin: doc.Origin})
			}

		case doc.Text != "":
			fields, conf := r.selector.Extract(doc.Text)
			if conf == 0 {
				continue
			}
			weight := 0.0
			if doc.Origin == source.OpticalScan && doc.Confidence > 0 && doc.Confidence <= 1 {
				weight = r.cfg.Weights[doc.Origin.String()] * doc.Confidence
			}
			values := fields.Map()
			for _, name := range sortedKeys(values) {
				add(name, fusion.Candidate{Raw: values[name], Origin: doc.Origin, Weight: weight})
			}
		}
	}

	// Complement pass: the free-text document frequently carries
	// unlabeled identifiers the other channels dropped.
	for _, doc := range docs {
		if doc.Origin != source.FreeText || doc.Text == "" {
			continue
		}
		fields, _ := r.selector.ExtractComplement(doc.Text)
		values := fields.Map()
		for _, name := range sortedKeys(values) {
			if len(candidates[name]) > 0 {
				continue
			}
			add(name, fusion.Candidate{Raw: values[name], Origin: source.FreeText})
		}
	}

	return candidates, fieldOrder
}

// assemble builds the canonical case record from the fused values.
func (r *Reconciler) assemble(fields map[string]fusion.Result) *orders.CaseRecord {
	value := func(name string) string {
		return fields[name].Value
	}

	record := orders.NewCaseRecord(
		value(extract.FieldExpediente),
		value(extract.FieldCausa),
		value(extract.FieldAutoridad),
	)

	record.Parties = append(record.Parties, orders.NewParty(
		value(extract.FieldNombre),
		value(extract.FieldRFC),
		value(extract.FieldCURP),
		value(extract.FieldCuenta),
	))

	kind := orders.ParseActionKind(value(extract.FieldAccion))
	record.Actions = append(record.Actions, orders.NewAction(
		kind,
		value(extract.FieldImporte),
		value(extract.FieldMoneda),
		value(extract.FieldFecha),
	))

	return record
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
