package fusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecisionStringAndCode(t *testing.T) {
	tests := []struct {
		decision Decision
		str      string
		code     int
	}{
		{AllSourcesNull, "all_sources_null", 0},
		{AllAgree, "all_agree", 1},
		{FuzzyAgreement, "fuzzy_agreement", 2},
		{WeightedVoting, "weighted_voting", 3},
		{Conflict, "conflict", 4},
		{BestEffort, "best_effort", 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.str, tt.decision.String())
		assert.Equal(t, tt.code, tt.decision.Code())
	}

	assert.Equal(t, "unknown", Decision(99).String())
	assert.Equal(t, -1, Decision(99).Code())
}

func TestDecisionReviewRouting(t *testing.T) {
	assert.True(t, Conflict.NeedsMandatoryReview())
	assert.True(t, AllSourcesNull.NeedsMandatoryReview())
	assert.False(t, AllAgree.NeedsMandatoryReview())
	assert.False(t, FuzzyAgreement.NeedsMandatoryReview())
	assert.False(t, WeightedVoting.NeedsMandatoryReview())
	assert.False(t, BestEffort.NeedsMandatoryReview())

	assert.True(t, FuzzyAgreement.NeedsReview())
	assert.True(t, BestEffort.NeedsReview())
	assert.True(t, Conflict.NeedsReview())
	assert.True(t, AllSourcesNull.NeedsReview())
	assert.False(t, AllAgree.NeedsReview())
	assert.False(t, WeightedVoting.NeedsReview())
}
