package extract

import (
	"github.com/rs/zerolog"

	"github.com/normafin/fieldfusion/pkg/fuzzy"
	"github.com/normafin/fieldfusion/pkg/logging"
)

// Selector probes the strategy set against a text and runs the winner.
// The slice order of strategies is the tie-break priority: structured
// beats table beats contextual beats fuzzy-label at equal confidence.
type Selector struct {
	strategies []Strategy
	search     *Search
	complement *Complement
	log        *zerolog.Logger
}

// NewSelector creates a Selector with the default strategy set.
func NewSelector(matcher *fuzzy.Matcher) *Selector {
	if matcher == nil {
		matcher = fuzzy.Default()
	}
	return &Selector{
		strategies: []Strategy{
			NewStructured(),
			NewTable(),
			NewContextual(),
			NewFuzzyLabel(matcher),
		},
		search:     NewSearch(),
		complement: NewComplement(),
		log:        logging.Default(),
	}
}

// WithLogger sets the logger used for selection decisions.
func (s *Selector) WithLogger(log *zerolog.Logger) *Selector {
	if log != nil {
		s.log = log
	}
	return s
}

// Select probes all strategies and returns the winner with its
// confidence. A nil strategy at confidence 0 means no strategy can
// handle the text.
func (s *Selector) Select(text string) (Strategy, int) {
	var winner Strategy
	best := 0
	for _, strategy := range s.strategies {
		// Strict greater-than keeps the declared priority order on ties.
		if conf := strategy.CanHandle(text); conf > best {
			winner, best = strategy, conf
		}
	}
	return winner, best
}

// Extract selects and runs the best strategy, then overlays resolved
// cross-references when the text contains reference markers. Text no
// strategy can confidently handle yields an empty result at confidence
// zero, never an error.
func (s *Selector) Extract(text string) (*Fields, int) {
	winner, conf := s.Select(text)
	searchConf := s.search.CanHandle(text)
	if winner == nil {
		if searchConf > 0 {
			return s.search.Extract(text), searchConf
		}
		return NewFields(), 0
	}

	fields := winner.Extract(text)
	s.log.Debug().
		Str("strategy", winner.Name()).
		Int("confidence", conf).
		Msg("extraction strategy selected")

	if searchConf > 0 {
		fields.Overlay(s.search.Extract(text))
	}
	return fields, conf
}

// ExtractComplement forces the complement strategy regardless of what
// the default selection would pick. Callers use it to fill gaps left by
// the other document channels; this is normal operation, not recovery.
func (s *Selector) ExtractComplement(text string) (*Fields, int) {
	return s.complement.Extract(text), s.complement.CanHandle(text)
}
