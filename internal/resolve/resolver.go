package resolve

// #region imports
import (
	"fmt"
	"log"

	"github.com/danielpatrickdp/parley/internal/decision"
	"github.com/danielpatrickdp/parley/internal/match"
)

// #endregion

// #region config

// Config tunes how match tiers map to selection outcomes and envelope
// confidence.
type Config struct {
	SearchLimit         int     // max matches pulled from the corpus
	AmbiguityMargin     float64 // top-two gap below which a selection is ambiguous
	SuperConfidence     float64 // envelope confidence for a super match
	CandidateConfidence float64 // envelope confidence for a clear candidate pick
	AmbiguousConfidence float64 // envelope confidence for an ambiguous pick
	NotFoundConfidence  float64 // envelope confidence when nothing matched
	ConfirmCorrected    bool    // require confirmation when a super match needed text correction
	CorrectionBar       float64 // super score below this counts as a corrected match
}

// DefaultConfig returns the standard resolution policy.
func DefaultConfig() Config {
	return Config{
		SearchLimit:         10,
		AmbiguityMargin:     0.10,
		SuperConfidence:     0.95,
		CandidateConfidence: 0.70,
		AmbiguousConfidence: 0.55,
		NotFoundConfidence:  0.20,
		ConfirmCorrected:    false,
		CorrectionBar:       1.0,
	}
}

// #endregion config

// #region outcome

// Outcome is the full result of resolving text against a corpus. A
// not-found outcome carries a nil Selection; it is a normal terminal
// state, never an error.
type Outcome[T any] struct {
	Status    decision.ResolutionStatus `json:"status"`
	Selection *decision.Selection[T]    `json:"selection,omitempty"`
	Results   []match.Match[T]          `json:"results,omitempty"`
}

// #endregion outcome

// #region resolver

// Resolver answers "resolve this text to zero, one, or many entities"
// over a searchable corpus. It is stateless beyond its configuration and
// safe for concurrent use.
type Resolver[T any] struct {
	corpus *match.Searchable[T]
	config Config
}

// NewResolver builds a resolver over the given corpus.
func NewResolver[T any](corpus *match.Searchable[T], config Config) *Resolver[T] {
	if config.SearchLimit <= 0 {
		config.SearchLimit = DefaultConfig().SearchLimit
	}
	return &Resolver[T]{corpus: corpus, config: config}
}

// #endregion resolver

// #region resolve

// Resolve searches the corpus and classifies the result into a selection
// outcome wrapped in a decision envelope. Confidence tracks the tier:
// super match high, candidate pick moderate, not found low.
func (r *Resolver[T]) Resolve(query string) (decision.Envelope[Outcome[T]], error) {
	rs := r.corpus.Search(query, r.config.SearchLimit)

	if super, ok := rs.SuperMatch(); ok {
		return r.superOutcome(query, super, rs)
	}

	candidates := rs.Candidates()
	if len(candidates) > 0 {
		return r.candidateOutcome(query, candidates, rs)
	}

	log.Printf("[RESOLVE] query=%q no match above candidate threshold", query)
	outcome := Outcome[T]{
		Status:  decision.ResolutionNotFound,
		Results: rs.Matches(),
	}
	return decision.NewEnvelope(
		r.config.NotFoundConfidence,
		fmt.Sprintf("no entries matched %q above the candidate threshold", query),
		outcome,
	)
}

// #endregion resolve

// #region super-outcome

func (r *Resolver[T]) superOutcome(query string, super match.Match[T], rs match.ResultSet[T]) (decision.Envelope[Outcome[T]], error) {
	// Policy hook: a winner that needed nontrivial text correction may
	// still require user confirmation.
	corrected := r.config.ConfirmCorrected && super.Score < r.config.CorrectionBar

	sel := &decision.Selection[T]{
		Selected:             super.Item,
		Strategy:             decision.StrategyHighestScore,
		IsAmbiguous:          false,
		RequiresConfirmation: corrected,
	}
	log.Printf("[RESOLVE] query=%q super match score=%.4f corrected=%v", query, super.Score, corrected)

	outcome := Outcome[T]{
		Status:    decision.ResolutionResolved,
		Selection: sel,
		Results:   rs.Matches(),
	}
	return decision.NewEnvelope(
		r.config.SuperConfidence,
		fmt.Sprintf("single unambiguous match for %q at score %.4f", query, super.Score),
		outcome,
	)
}

// #endregion super-outcome

// #region candidate-outcome

func (r *Resolver[T]) candidateOutcome(query string, candidates []match.Match[T], rs match.ResultSet[T]) (decision.Envelope[Outcome[T]], error) {
	top := candidates[0]
	ambiguous := len(candidates) >= 2 && top.Score-candidates[1].Score < r.config.AmbiguityMargin

	sel := &decision.Selection[T]{
		Selected:             top.Item,
		Alternatives:         candidates[1:],
		Strategy:             decision.StrategyHighestScore,
		IsAmbiguous:          ambiguous,
		RequiresConfirmation: true,
	}

	status := decision.ResolutionResolved
	confidence := r.config.CandidateConfidence
	reasoning := fmt.Sprintf("top candidate for %q at score %.4f needs confirmation", query, top.Score)
	if ambiguous {
		status = decision.ResolutionAmbiguous
		confidence = r.config.AmbiguousConfidence
		reasoning = fmt.Sprintf("%d candidates for %q within the ambiguity margin", len(candidates), query)
	}
	log.Printf("[RESOLVE] query=%q candidates=%d ambiguous=%v top=%.4f", query, len(candidates), ambiguous, top.Score)

	outcome := Outcome[T]{
		Status:    status,
		Selection: sel,
		Results:   rs.Matches(),
	}
	return decision.NewEnvelope(confidence, reasoning, outcome)
}

// #endregion candidate-outcome
