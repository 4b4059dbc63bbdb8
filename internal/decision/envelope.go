package decision

// #region imports
import (
	"errors"
	"fmt"
	"time"
)

// #endregion

// #region errors

// ErrConfidenceRange signals a confidence outside [0, 1] at construction.
var ErrConfidenceRange = errors.New("confidence must be in [0, 1]")

// #endregion errors

// #region constants

// DefaultActionableThreshold is the confidence bar for acting without
// further user input.
const DefaultActionableThreshold = 0.8

// #endregion constants

// #region envelope

// Envelope wraps a typed payload with the confidence, reasoning, and
// clarification metadata attached to every model decision. An envelope is
// built once per turn and never mutated; the next turn replaces it.
type Envelope[P any] struct {
	Confidence          float64   `json:"confidence"`
	Reasoning           string    `json:"reasoning"`
	NeedsClarification  bool      `json:"needs_clarification"`
	ClarificationPrompt string    `json:"clarification_prompt,omitempty"`
	Timestamp           time.Time `json:"timestamp"`
	Payload             P         `json:"payload"`
}

// NewEnvelope constructs an envelope, validating the confidence range.
// The timestamp defaults to the construction time in UTC.
func NewEnvelope[P any](confidence float64, reasoning string, payload P) (Envelope[P], error) {
	if confidence < 0 || confidence > 1 {
		return Envelope[P]{}, fmt.Errorf("%w: got %.4f", ErrConfidenceRange, confidence)
	}
	return Envelope[P]{
		Confidence: confidence,
		Reasoning:  reasoning,
		Timestamp:  time.Now().UTC(),
		Payload:    payload,
	}, nil
}

// NewClarification constructs an envelope that requests clarification,
// carrying the question to put to the user.
func NewClarification[P any](confidence float64, reasoning, prompt string, payload P) (Envelope[P], error) {
	env, err := NewEnvelope(confidence, reasoning, payload)
	if err != nil {
		return Envelope[P]{}, err
	}
	env.NeedsClarification = true
	env.ClarificationPrompt = prompt
	return env, nil
}

// Actionable reports whether the decision can proceed without user input:
// confidence meets the threshold and no clarification is pending.
func (e Envelope[P]) Actionable(threshold float64) bool {
	return e.Confidence >= threshold && !e.NeedsClarification
}

// #endregion envelope
