package fusion

// Decision is the closed taxonomy describing how a field's final value
// was chosen among possibly-conflicting source candidates. Every
// consumer must handle every case; the audit trail records one decision
// per fused field.
type Decision int

const (
	// AllSourcesNull: every candidate sanitized to absent.
	AllSourcesNull Decision = iota

	// AllAgree: every surviving candidate carried exactly the same
	// sanitized value.
	AllAgree

	// FuzzyAgreement: surviving name values differ only within the
	// similarity threshold.
	FuzzyAgreement

	// WeightedVoting: disagreeing sources were resolved by reliability
	// weight and the winner reached the acceptance threshold.
	WeightedVoting

	// Conflict: no distinguishable winner; the field requires mandatory
	// manual review.
	Conflict

	// BestEffort: a winner existed but below the acceptance threshold;
	// the value is usable but flagged for review.
	BestEffort
)

// String returns the string representation of a decision.
func (d Decision) String() string {
	switch d {
	case AllSourcesNull:
		return "all_sources_null"
	case AllAgree:
		return "all_agree"
	case FuzzyAgreement:
		return "fuzzy_agreement"
	case WeightedVoting:
		return "weighted_voting"
	case Conflict:
		return "conflict"
	case BestEffort:
		return "best_effort"
	default:
		return "unknown"
	}
}

// Code returns the stable numeric code used when decisions are
// persisted or exchanged with external systems.
func (d Decision) Code() int {
	switch d {
	case AllSourcesNull:
		return 0
	case AllAgree:
		return 1
	case FuzzyAgreement:
		return 2
	case WeightedVoting:
		return 3
	case Conflict:
		return 4
	case BestEffort:
		return 5
	default:
		return -1
	}
}

// NeedsMandatoryReview reports whether this decision routes the record
// to mandatory manual review when made on a mandatory field.
func (d Decision) NeedsMandatoryReview() bool {
	return d == Conflict || d == AllSourcesNull
}

// NeedsReview reports whether this decision tags the record for
// optional review.
func (d Decision) NeedsReview() bool {
	return d == FuzzyAgreement || d == BestEffort || d.NeedsMandatoryReview()
}
