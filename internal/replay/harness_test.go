package replay

import (
	"context"
	"testing"

	"github.com/danielpatrickdp/parley/internal/movies"
)

// #region happy-path

func TestReplay_DirectHit(t *testing.T) {
	f := &Fixture{
		Description: "single unambiguous title search",
		Turns: []FixtureTurn{
			{
				TurnID:   "t1",
				UserText: "find interstellar",
				Extraction: &FixtureExtraction{
					Confidence: 0.9, IsSuccess: true,
					Query: &movies.Query{Title: "interstellar"},
				},
				Expected: FixtureExpected{FinalState: "respond", SelectedID: "mov_006"},
			},
		},
	}

	outcomes, summary, err := Replay(context.Background(), f)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if summary.Failed != 0 {
		t.Fatalf("expected all turns to match: %+v", outcomes)
	}
	if outcomes[0].SelectedID != "mov_006" {
		t.Errorf("expected Interstellar selected, got %q", outcomes[0].SelectedID)
	}
}

// #endregion happy-path

// #region clarify-flow

func TestReplay_AmbiguousThenPick(t *testing.T) {
	f := &Fixture{
		Description: "ambiguous title needs one clarification",
		Turns: []FixtureTurn{
			{
				TurnID:   "t1",
				UserText: "the dark knight one",
				Extraction: &FixtureExtraction{
					Confidence: 0.85, IsSuccess: true,
					Query: &movies.Query{Title: "dark knight"},
				},
				Expected: FixtureExpected{FinalState: "clarify", ClarificationCount: 1},
			},
			{
				TurnID:   "t2",
				UserText: "2",
				Expected: FixtureExpected{FinalState: "respond", ClarificationCount: 1, SelectedID: "mov_004"},
			},
		},
	}

	outcomes, summary, err := Replay(context.Background(), f)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	for _, o := range outcomes {
		if !o.Passed {
			t.Errorf("turn %s diverged: %s", o.TurnID, o.Reason)
		}
	}
	if summary.Passed != 2 {
		t.Errorf("expected 2 passing turns, got %d", summary.Passed)
	}
}

// #endregion clarify-flow

// #region not-found

func TestReplay_NotFound(t *testing.T) {
	f := &Fixture{
		Turns: []FixtureTurn{
			{
				TurnID:   "t1",
				UserText: "find zzzz qqqq",
				Extraction: &FixtureExtraction{
					Confidence: 0.8, IsSuccess: true,
					Query: &movies.Query{Title: "zzzz qqqq"},
				},
				Expected: FixtureExpected{FinalState: "respond"},
			},
		},
	}

	outcomes, _, err := Replay(context.Background(), f)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if !outcomes[0].Passed {
		t.Errorf("turn diverged: %s", outcomes[0].Reason)
	}
	if outcomes[0].SelectedID != "" {
		t.Errorf("nothing should be selected, got %q", outcomes[0].SelectedID)
	}
}

// #endregion not-found

// #region extraction-failure

func TestReplay_FailedExtractionResponds(t *testing.T) {
	f := &Fixture{
		Turns: []FixtureTurn{
			{
				TurnID:   "t1",
				UserText: "asdfgh",
				Extraction: &FixtureExtraction{
					Confidence: 0.2, IsSuccess: false,
					MissingFields: []string{"title"}, ErrorMessage: "no criteria",
				},
				Expected: FixtureExpected{FinalState: "respond"},
			},
		},
	}

	outcomes, summary, err := Replay(context.Background(), f)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if summary.Failed != 0 {
		t.Errorf("turn diverged: %s", outcomes[0].Reason)
	}
}

// #endregion extraction-failure

// #region divergence

func TestReplay_ReportsDivergence(t *testing.T) {
	f := &Fixture{
		Turns: []FixtureTurn{
			{
				TurnID:   "t1",
				UserText: "find interstellar",
				Extraction: &FixtureExtraction{
					Confidence: 0.9, IsSuccess: true,
					Query: &movies.Query{Title: "interstellar"},
				},
				// Deliberately wrong expectation.
				Expected: FixtureExpected{FinalState: "clarify"},
			},
		},
	}

	outcomes, summary, err := Replay(context.Background(), f)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if summary.Failed != 1 {
		t.Errorf("expected divergence to be reported, got %+v", outcomes)
	}
	if outcomes[0].Reason == "" {
		t.Error("expected a divergence reason")
	}
}

// #endregion divergence
