package dialogue

import (
	"testing"

	"github.com/danielpatrickdp/parley/internal/decision"
	"github.com/danielpatrickdp/parley/internal/match"
)

type testQuery struct {
	Term string `json:"term,omitempty"`
}

func (q testQuery) IsEmpty() bool { return q.Term == "" }

func extractionState(env *decision.Envelope[decision.Extraction[testQuery]], q *testQuery) *TurnState[string, testQuery] {
	return &TurnState[string, testQuery]{
		ConversationID: "test-convo",
		LastExtraction: env,
		Query:          q,
	}
}

func successEnvelope(q testQuery) *decision.Envelope[decision.Extraction[testQuery]] {
	env, err := decision.NewEnvelope(0.9, "ok", decision.ExtractionSuccess(q))
	if err != nil {
		panic(err)
	}
	return &env
}

func candidates(scores ...float64) []match.Match[string] {
	out := make([]match.Match[string], len(scores))
	for i, s := range scores {
		out[i] = match.Match[string]{Item: string(rune('A' + i)), Score: s}
	}
	return out
}

// #region after-extraction-tests

func TestRouteAfterExtraction(t *testing.T) {
	q := testQuery{Term: "batman"}
	empty := testQuery{}

	clarifying, err := decision.NewClarification(0.4, "unsure", "what title?", decision.ExtractionSuccess(q))
	if err != nil {
		t.Fatalf("build envelope: %v", err)
	}

	tests := []struct {
		name string
		ts   *TurnState[string, testQuery]
		want State
	}{
		{"no extraction", extractionState(nil, nil), StateRespond},
		{"extraction needs clarification", extractionState(&clarifying, &q), StateRespond},
		{"nil query", extractionState(successEnvelope(q), nil), StateRespond},
		{"empty query", extractionState(successEnvelope(empty), &empty), StateRespond},
		{"usable query", extractionState(successEnvelope(q), &q), StateSearch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RouteAfterExtraction(tt.ts); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

// #endregion after-extraction-tests

// #region after-search-tests

func TestRouteAfterSearch(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name  string
		cands []match.Match[string]
		count int
		want  State
	}{
		{"no candidates", nil, 0, StateRespond},
		{"single strong", candidates(0.92), 0, StateRespond},
		{"single weak", candidates(0.65), 0, StateClarify},
		{"clear winner", candidates(0.95, 0.70), 0, StateRespond},
		{"strong but close field", candidates(0.90, 0.85), 0, StateClarify},
		{"weak top", candidates(0.75, 0.40), 0, StateClarify},
		{"budget exhausted", candidates(0.75, 0.70), 3, StateRespond},
		{"budget exhausted close field", candidates(0.90, 0.85), 3, StateRespond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := &TurnState[string, testQuery]{
				Candidates:         tt.cands,
				ClarificationCount: tt.count,
			}
			if got := RouteAfterSearch(ts, cfg); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

// #endregion after-search-tests
