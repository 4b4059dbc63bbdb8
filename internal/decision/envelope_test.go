package decision

import (
	"encoding/json"
	"errors"
	"testing"
)

// #region constructor-tests

func TestNewEnvelope_ConfidenceValidation(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		wantErr    bool
	}{
		{"zero", 0.0, false},
		{"one", 1.0, false},
		{"mid", 0.73, false},
		{"negative", -0.01, true},
		{"above one", 1.01, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEnvelope(tt.confidence, "test", "payload")
			if tt.wantErr {
				if !errors.Is(err, ErrConfidenceRange) {
					t.Fatalf("expected ErrConfidenceRange, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewEnvelope_SetsTimestamp(t *testing.T) {
	env, err := NewEnvelope(0.5, "reasoning", 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
	if env.NeedsClarification {
		t.Error("plain envelope should not need clarification")
	}
}

func TestNewClarification(t *testing.T) {
	env, err := NewClarification(0.4, "unsure", "which one did you mean?", "payload")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !env.NeedsClarification {
		t.Error("expected needs clarification")
	}
	if env.ClarificationPrompt != "which one did you mean?" {
		t.Errorf("unexpected prompt %q", env.ClarificationPrompt)
	}
}

// #endregion constructor-tests

// #region actionable-tests

func TestActionable(t *testing.T) {
	tests := []struct {
		name          string
		confidence    float64
		clarification bool
		want          bool
	}{
		{"high confidence", 0.9, false, true},
		{"exactly at threshold", 0.8, false, true},
		{"below threshold", 0.79, false, false},
		{"high but needs clarification", 0.95, true, false},
		{"low and needs clarification", 0.3, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := Envelope[string]{Confidence: tt.confidence, NeedsClarification: tt.clarification}
			if got := env.Actionable(DefaultActionableThreshold); got != tt.want {
				t.Errorf("Actionable: got %v, want %v", got, tt.want)
			}
		})
	}
}

// #endregion actionable-tests

// #region json-tests

func TestEnvelopeJSONRoundTrip(t *testing.T) {
	env, err := NewClarification(0.6, "two close matches", "pick one", ExtractionSuccess("data"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Envelope[Extraction[string]]
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Confidence != 0.6 || !back.NeedsClarification || back.ClarificationPrompt != "pick one" {
		t.Errorf("round trip lost envelope fields: %+v", back)
	}
	if back.Payload.Data == nil || *back.Payload.Data != "data" {
		t.Errorf("round trip lost payload: %+v", back.Payload)
	}
}

// #endregion json-tests
