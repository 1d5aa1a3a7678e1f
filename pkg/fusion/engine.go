// Package fusion combines per-field candidates from every document
// channel into one merged value with an explicit decision code and a
// confidence score. The engine is a pure function of its inputs and a
// fixed configuration: it never mutates candidates, never raises on
// messy data, and always returns the same result for the same inputs.
package fusion

import (
	"math"

	"github.com/normafin/fieldfusion/pkg/fuzzy"
	"github.com/normafin/fieldfusion/pkg/sanitize"
	"github.com/normafin/fieldfusion/pkg/source"
)

// Confidence tiers for full agreement.
const (
	confAgreeMany = 0.95 // three or more sources agree
	confAgreeFew  = 0.85 // one or two sources agree
)

// Scaling factors for approximate agreement and sub-threshold winners.
const (
	fuzzyScale      = 0.90
	bestEffortScale = 0.70
)

// weightEpsilon bounds float comparison when detecting an exact tie
// between voting groups.
const weightEpsilon = 1e-9

// amountFields name monetary fields, which sanitize through CleanAmount
// instead of Clean.
var amountFields = map[string]bool{
	"importe":  true,
	"monto":    true,
	"cantidad": true,
}

// Engine fuses field candidates. Immutable after construction; safe for
// concurrent use across fields and documents.
type Engine struct {
	san       *sanitize.Sanitizer
	matcher   *fuzzy.Matcher
	weights   map[source.Origin]float64
	threshold float64
}

// NewEngine creates an Engine. The weight table and acceptance
// threshold come from configuration, not constants; weights is keyed by
// origin with values in [0,1], threshold is the normalized weight share
// a voting group must reach.
func NewEngine(san *sanitize.Sanitizer, matcher *fuzzy.Matcher, weights map[source.Origin]float64, threshold float64) *Engine {
	if san == nil {
		san = sanitize.Default()
	}
	if matcher == nil {
		matcher = fuzzy.Default()
	}
	frozen := make(map[source.Origin]float64, len(weights))
	for o, w := range weights {
		frozen[o] = w
	}
	if threshold <= 0 || threshold > 1 {
		threshold = 0.5
	}
	return &Engine{san: san, matcher: matcher, weights: frozen, threshold: threshold}
}

// survivor is a candidate that sanitized to a usable value.
type survivor struct {
	value  string
	origin source.Origin
	weight float64
}

// Fuse merges all candidates for one logical field into a single
// result. See the Decision taxonomy for the possible outcomes.
func (e *Engine) Fuse(field string, candidates []Candidate) Result {
	survivors, origins := e.sanitizeAll(field, candidates)

	if len(survivors) == 0 {
		return Result{Decision: AllSourcesNull, Confidence: 0}
	}

	if allEqual(survivors) {
		conf := confAgreeFew
		if len(survivors) >= 3 {
			conf = confAgreeMany
		}
		return Result{
			Value:      survivors[0].value,
			Decision:   AllAgree,
			Confidence: conf,
			Origins:    origins,
		}
	}

	if result, ok := e.fuzzyAgreement(survivors, origins); ok {
		return result
	}

	return e.weightedVote(survivors, origins)
}

// sanitizeAll cleans every candidate and drops the ones that sanitize
// to absent. Amount fields clean through CleanAmount.
func (e *Engine) sanitizeAll(field string, candidates []Candidate) ([]survivor, []source.Origin) {
	var survivors []survivor
	var origins []source.Origin
	for _, c := range candidates {
		var value string
		if amountFields[field] {
			value = e.san.CleanAmount(c.Raw)
		} else {
			value = e.san.Clean(c.Raw)
		}
		if value == "" {
			continue
		}
		weight := c.Weight
		if weight <= 0 {
			weight = e.weights[c.Origin]
		}
		survivors = append(survivors, survivor{value: value, origin: c.Origin, weight: weight})
		origins = append(origins, c.Origin)
	}
	return survivors, origins
}

// fuzzyAgreement applies when every surviving value is name-like and
// every pair matches within the similarity threshold. The merged value
// comes from the most reliable contributing source and the confidence
// scales with the weakest pairwise similarity.
func (e *Engine) fuzzyAgreement(survivors []survivor, origins []source.Origin) (Result, bool) {
	for _, s := range survivors {
		if !e.matcher.IsNameField(s.value) {
			return Result{}, false
		}
	}

	minSim := 100
	for i := 0; i < len(survivors); i++ {
		for j := i + 1; j < len(survivors); j++ {
			if !e.matcher.IsMatch(survivors[i].value, survivors[j].value) {
				return Result{}, false
			}
			if sim := e.matcher.Similarity(survivors[i].value, survivors[j].value); sim < minSim {
				minSim = sim
			}
		}
	}

	best := survivors[0]
	for _, s := range survivors[1:] {
		if s.weight > best.weight {
			best = s
		}
	}

	return Result{
		Value:      best.value,
		Decision:   FuzzyAgreement,
		Confidence: float64(minSim) / 100 * fuzzyScale,
		Origins:    origins,
	}, true
}

// weightedVote groups survivors by exact sanitized value, sums each
// group's reliability weights, and takes the heaviest group. An exact
// tie between the top groups, or an all-zero table, is a Conflict.
// Voting outcomes attribute only the winning group's origins; a
// Conflict attributes every survivor.
func (e *Engine) weightedVote(survivors []survivor, origins []source.Origin) Result {
	type group struct {
		value   string
		weight  float64
		origins []source.Origin
	}

	byValue := make(map[string]*group)
	var order []string
	var total float64
	for _, s := range survivors {
		g, ok := byValue[s.value]
		if !ok {
			g = &group{value: s.value}
			byValue[s.value] = g
			order = append(order, s.value)
		}
		g.weight += s.weight
		g.origins = append(g.origins, s.origin)
		total += s.weight
	}

	var winner *group
	tied := false
	for _, value := range order {
		g := byValue[value]
		switch {
		case winner == nil || g.weight > winner.weight+weightEpsilon:
			winner, tied = g, false
		case math.Abs(g.weight-winner.weight) <= weightEpsilon:
			tied = true
		}
	}

	if winner == nil || winner.weight <= weightEpsilon || tied {
		return Result{Decision: Conflict, Confidence: 0, Origins: origins}
	}

	normalized := winner.weight / total
	if normalized >= e.threshold {
		return Result{
			Value:      winner.value,
			Decision:   WeightedVoting,
			Confidence: normalized,
			Origins:    winner.origins,
		}
	}

	return Result{
		Value:      winner.value,
		Decision:   BestEffort,
		Confidence: normalized * bestEffortScale,
		Origins:    winner.origins,
	}
}

func allEqual(survivors []survivor) bool {
	for _, s := range survivors[1:] {
		if s.value != survivors[0].value {
			return false
		}
	}
	return true
}
