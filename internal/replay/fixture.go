package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/parley/internal/dialogue"
	"github.com/danielpatrickdp/parley/internal/movies"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a conversation replay
// fixture: a scripted multi-turn exchange with the model boundary
// pre-recorded, so the full dialogue graph runs deterministically.
type Fixture struct {
	Description string        `json:"description"`
	Config      FixtureConfig `json:"config"`
	Turns       []FixtureTurn `json:"turns"`
}

// FixtureConfig mirrors dialogue.Config with JSON tags.
type FixtureConfig struct {
	MaxClarificationAttempts int     `json:"max_clarification_attempts"`
	HighConfidenceThreshold  float64 `json:"high_confidence_threshold"`
	AmbiguityThreshold       float64 `json:"ambiguity_threshold"`
	MaxOptionsShown          int     `json:"max_options_shown"`
}

// FixtureTurn is one scripted user message plus the recorded extraction
// for it and the expected outcome. A turn answered from a pending
// clarification needs no extraction.
type FixtureTurn struct {
	TurnID     string             `json:"turn_id"`
	UserText   string             `json:"user_text"`
	Extraction *FixtureExtraction `json:"extraction,omitempty"`
	Expected   FixtureExpected    `json:"expected"`
}

// FixtureExtraction is the recorded model extraction for a turn.
// IsSuccess false with a nil Query replays a failed extraction.
type FixtureExtraction struct {
	Confidence          float64       `json:"confidence"`
	Reasoning           string        `json:"reasoning,omitempty"`
	NeedsClarification  bool          `json:"needs_clarification,omitempty"`
	ClarificationPrompt string        `json:"clarification_prompt,omitempty"`
	IsSuccess           bool          `json:"is_success"`
	Query               *movies.Query `json:"query,omitempty"`
	MissingFields       []string      `json:"missing_fields,omitempty"`
	ErrorMessage        string        `json:"error_message,omitempty"`
}

// FixtureExpected captures the expected outcome per turn.
type FixtureExpected struct {
	FinalState         string `json:"final_state"`
	ClarificationCount int    `json:"clarification_count"`
	SelectedID         string `json:"selected_id,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToDialogueConfig converts a FixtureConfig to a domain dialogue.Config,
// falling back to defaults for unset fields.
func (fc *FixtureConfig) ToDialogueConfig() dialogue.Config {
	cfg := dialogue.DefaultConfig()
	if fc.MaxClarificationAttempts > 0 {
		cfg.MaxClarificationAttempts = fc.MaxClarificationAttempts
	}
	if fc.HighConfidenceThreshold > 0 {
		cfg.HighConfidenceThreshold = fc.HighConfidenceThreshold
	}
	if fc.AmbiguityThreshold > 0 {
		cfg.AmbiguityThreshold = fc.AmbiguityThreshold
	}
	if fc.MaxOptionsShown > 0 {
		cfg.MaxOptionsShown = fc.MaxOptionsShown
	}
	return cfg
}

// #endregion fixture-loader
