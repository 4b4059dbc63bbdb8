package replay

import (
	"context"
	"fmt"

	"github.com/danielpatrickdp/parley/internal/decision"
	"github.com/danielpatrickdp/parley/internal/dialogue"
	"github.com/danielpatrickdp/parley/internal/movies"
)

// #region types

// TurnOutcome captures the outcome of replaying one scripted turn.
type TurnOutcome struct {
	TurnID             string
	FinalState         string
	ClarificationCount int
	SelectedID         string
	Passed             bool
	Reason             string
	Outbound           []dialogue.Message
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalTurns int
	Passed     int
	Failed     int
}

// #endregion types

// #region replay

// Replay runs a fixture's scripted conversation through the full
// dialogue graph over the built-in movie catalog. The model boundary is
// replaced by the fixture's recorded extractions and a template
// responder, so runs are deterministic. Operates entirely in-memory.
func Replay(ctx context.Context, f *Fixture) ([]TurnOutcome, Summary, error) {
	cfg := f.Config.ToDialogueConfig()
	svc := movies.NewService()
	ts := dialogue.NewTurnState[movies.Movie, movies.Query]()

	var current *FixtureTurn

	extract := func(ctx context.Context, conversation string) (decision.Envelope[decision.Extraction[movies.Query]], error) {
		var zero decision.Envelope[decision.Extraction[movies.Query]]
		if current == nil || current.Extraction == nil {
			return zero, fmt.Errorf("turn %s: no recorded extraction", turnID(current))
		}
		fe := current.Extraction
		ext, err := decision.NewExtraction(fe.IsSuccess, fe.Query, fe.MissingFields, fe.ErrorMessage)
		if err != nil {
			return zero, fmt.Errorf("turn %s: %w", current.TurnID, err)
		}
		if fe.NeedsClarification {
			return decision.NewClarification(fe.Confidence, fe.Reasoning, fe.ClarificationPrompt, ext)
		}
		return decision.NewEnvelope(fe.Confidence, fe.Reasoning, ext)
	}

	respond := func(ctx context.Context, prompt string) (decision.Envelope[decision.AgentResponse], error) {
		payload := decision.AgentResponse{Type: decision.ResponseAnswer, Content: prompt}
		return decision.NewEnvelope(0.9, "replayed template response", payload)
	}

	engine := dialogue.NewEngine(extract, respond, svc.Search, movies.Describe, cfg)

	outcomes := make([]TurnOutcome, 0, len(f.Turns))
	summary := Summary{TotalTurns: len(f.Turns)}

	for i := range f.Turns {
		current = &f.Turns[i]
		res, err := engine.RunTurn(ctx, ts, current.UserText)
		if err != nil {
			return outcomes, summary, fmt.Errorf("turn %s: %w", current.TurnID, err)
		}

		out := TurnOutcome{
			TurnID:             current.TurnID,
			FinalState:         string(res.Final),
			ClarificationCount: ts.ClarificationCount,
			Outbound:           res.Outbound,
		}
		if ts.Selected != nil {
			out.SelectedID = ts.Selected.ID
		}
		out.Passed, out.Reason = checkExpected(current.Expected, out)

		if out.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}
		outcomes = append(outcomes, out)
	}

	return outcomes, summary, nil
}

// #endregion replay

// #region expectations

func checkExpected(want FixtureExpected, got TurnOutcome) (bool, string) {
	if want.FinalState != "" && want.FinalState != got.FinalState {
		return false, fmt.Sprintf("final state %s, want %s", got.FinalState, want.FinalState)
	}
	if want.ClarificationCount != got.ClarificationCount {
		return false, fmt.Sprintf("clarification count %d, want %d", got.ClarificationCount, want.ClarificationCount)
	}
	if want.SelectedID != "" && want.SelectedID != got.SelectedID {
		return false, fmt.Sprintf("selected %q, want %q", got.SelectedID, want.SelectedID)
	}
	return true, ""
}

func turnID(t *FixtureTurn) string {
	if t == nil {
		return "?"
	}
	return t.TurnID
}

// #endregion expectations
