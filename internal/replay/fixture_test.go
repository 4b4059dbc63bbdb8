package replay

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const sampleFixture = `{
  "description": "two-turn clarification flow",
  "config": {
    "max_clarification_attempts": 2,
    "high_confidence_threshold": 0.85
  },
  "turns": [
    {
      "turn_id": "t1",
      "user_text": "the dark knight one",
      "extraction": {
        "confidence": 0.85,
        "is_success": true,
        "query": {"title": "dark knight"}
      },
      "expected": {"final_state": "clarify", "clarification_count": 1}
    },
    {
      "turn_id": "t2",
      "user_text": "1",
      "expected": {"final_state": "respond", "clarification_count": 1, "selected_id": "mov_002"}
    }
  ]
}`

func TestLoadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conversation.json")
	if err := os.WriteFile(path, []byte(sampleFixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if len(f.Turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(f.Turns))
	}
	if f.Turns[0].Extraction == nil || f.Turns[0].Extraction.Query == nil {
		t.Fatal("first turn extraction not parsed")
	}
	if f.Turns[0].Extraction.Query.Title != "dark knight" {
		t.Errorf("unexpected query title %q", f.Turns[0].Extraction.Query.Title)
	}
	if f.Turns[1].Extraction != nil {
		t.Error("second turn should have no extraction")
	}
}

func TestLoadFixture_Missing(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestToDialogueConfig_Defaults(t *testing.T) {
	var fc FixtureConfig
	cfg := fc.ToDialogueConfig()
	if cfg.MaxClarificationAttempts != 3 || cfg.HighConfidenceThreshold != 0.8 {
		t.Errorf("expected defaults for unset fields, got %+v", cfg)
	}

	fc = FixtureConfig{MaxClarificationAttempts: 2, HighConfidenceThreshold: 0.85}
	cfg = fc.ToDialogueConfig()
	if cfg.MaxClarificationAttempts != 2 || cfg.HighConfidenceThreshold != 0.85 {
		t.Errorf("explicit fields not applied: %+v", cfg)
	}
	if cfg.AmbiguityThreshold != 0.10 {
		t.Errorf("unset field should keep default, got %f", cfg.AmbiguityThreshold)
	}
}

func TestLoadAndReplayFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conversation.json")
	if err := os.WriteFile(path, []byte(sampleFixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}

	outcomes, summary, err := Replay(context.Background(), f)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if summary.Failed != 0 {
		for _, o := range outcomes {
			if !o.Passed {
				t.Errorf("turn %s diverged: %s", o.TurnID, o.Reason)
			}
		}
	}
}
