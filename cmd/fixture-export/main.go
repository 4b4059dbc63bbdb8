package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/parley/internal/audit"
	"github.com/danielpatrickdp/parley/internal/catalog"
	"github.com/danielpatrickdp/parley/internal/movies"
	"github.com/danielpatrickdp/parley/internal/replay"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to parley.db")
	conversationID := flag.String("conversation", "", "conversation ID to export")
	outPath := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	if *dbPath == "" || *conversationID == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/parley.db --conversation <id> [--out fixture.json]")
		os.Exit(2)
	}

	store, err := catalog.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	recs, err := audit.NewLog(store.DB()).Conversation(*conversationID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read turn log: %v\n", err)
		os.Exit(1)
	}
	if len(recs) == 0 {
		fmt.Fprintf(os.Stderr, "no turns recorded for conversation %s\n", *conversationID)
		os.Exit(1)
	}

	fixture, err := buildFixture(*conversationID, recs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build fixture: %v\n", err)
		os.Exit(1)
	}

	raw, err := json.MarshalIndent(fixture, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode fixture: %v\n", err)
		os.Exit(1)
	}
	raw = append(raw, '\n')

	if *outPath == "" {
		os.Stdout.Write(raw)
		return
	}
	if err := os.WriteFile(*outPath, raw, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d turns to %s\n", len(fixture.Turns), *outPath)
}

// #endregion main

// #region build-fixture

// buildFixture reconstructs a replayable fixture from recorded turns.
// The recorded outcomes become the expectations, so replaying the
// fixture verifies the routing still reproduces the live run.
func buildFixture(conversationID string, recs []audit.TurnRecord) (*replay.Fixture, error) {
	f := &replay.Fixture{
		Description: fmt.Sprintf("exported from conversation %s", conversationID),
		Turns:       make([]replay.FixtureTurn, 0, len(recs)),
	}

	for _, rec := range recs {
		turn := replay.FixtureTurn{
			TurnID:   rec.TurnID,
			UserText: rec.UserText,
			Expected: replay.FixtureExpected{
				FinalState:         rec.FinalState,
				ClarificationCount: rec.ClarificationCount,
			},
		}

		// Turns resolved from a pending clarification carry no
		// extraction; everything else replays the recorded one.
		if rec.Route != "" && rec.Route != "respond" {
			ext := replay.FixtureExtraction{
				Confidence: rec.Confidence,
				Reasoning:  rec.Reason,
			}
			if rec.QueryJSON != "" {
				var q movies.Query
				if err := json.Unmarshal([]byte(rec.QueryJSON), &q); err != nil {
					return nil, fmt.Errorf("turn %s: decode query: %w", rec.TurnID, err)
				}
				ext.IsSuccess = true
				ext.Query = &q
			}
			turn.Extraction = &ext
		}

		f.Turns = append(f.Turns, turn)
	}
	return f, nil
}

// #endregion build-fixture
