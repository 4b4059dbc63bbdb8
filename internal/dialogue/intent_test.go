package dialogue

import (
	"testing"

	"github.com/danielpatrickdp/parley/internal/decision"
)

// #region classify-tests

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		text string
		want decision.Intent
	}{
		{"yes", decision.IntentConfirm},
		{"Yes, that's the one", decision.IntentConfirm},
		{"correct", decision.IntentConfirm},
		{"no", decision.IntentCancel},
		{"never mind", decision.IntentCancel},
		{"cancel that", decision.IntentCancel},
		{"what do you mean?", decision.IntentAskClarification},
		{"which options are there?", decision.IntentAskClarification},
		{"movies with tom hanks", decision.IntentProvideData},
		{"something from the 90s directed by nolan", decision.IntentProvideData},
		{"", decision.IntentUnknown},
		{"   ", decision.IntentUnknown},
		{"yes, but change the year to 2010", decision.IntentModifyData},
		{"set the genre to drama please", decision.IntentModifyData},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := ClassifyIntent(tt.text); got != tt.want {
				t.Errorf("ClassifyIntent(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

// #endregion classify-tests

// #region mutation-tests

func TestDetectMutations(t *testing.T) {
	muts := DetectMutations("yes, but change the year to 2010")
	if len(muts) != 1 {
		t.Fatalf("expected 1 mutation, got %d", len(muts))
	}
	if muts[0].FieldName != "year" {
		t.Errorf("expected field 'year', got %q", muts[0].FieldName)
	}
	if muts[0].NewValue != 2010 {
		t.Errorf("expected int 2010, got %v (%T)", muts[0].NewValue, muts[0].NewValue)
	}
}

func TestDetectMutations_ValueCoercion(t *testing.T) {
	tests := []struct {
		text  string
		field string
		value any
	}{
		{"change the min rating to 8.5", "min_rating", 8.5},
		{"set active to true", "active", true},
		{"update the genre to drama", "genre", "drama"},
		{`change the title to "The Departed"`, "title", "The Departed"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			muts := DetectMutations(tt.text)
			if len(muts) != 1 {
				t.Fatalf("expected 1 mutation, got %d", len(muts))
			}
			if muts[0].FieldName != tt.field {
				t.Errorf("field: got %q, want %q", muts[0].FieldName, tt.field)
			}
			if muts[0].NewValue != tt.value {
				t.Errorf("value: got %v (%T), want %v (%T)", muts[0].NewValue, muts[0].NewValue, tt.value, tt.value)
			}
		})
	}
}

func TestDetectMutations_None(t *testing.T) {
	for _, text := range []string{"movies with brad pitt", "yes please", ""} {
		if muts := DetectMutations(text); len(muts) != 0 {
			t.Errorf("DetectMutations(%q): expected none, got %v", text, muts)
		}
	}
}

// #endregion mutation-tests

// #region option-reply-tests

func TestParseOptionReply(t *testing.T) {
	tests := []struct {
		text    string
		options int
		wantIdx int
		wantOK  bool
	}{
		{"2", 5, 2, true},
		{" 3 ", 5, 3, true},
		{"option 1", 5, 1, true},
		{"number 4", 5, 4, true},
		{"#5", 5, 5, true},
		{"2.", 5, 2, true},
		{"0", 5, 0, false},
		{"6", 5, 0, false},
		{"two", 5, 0, false},
		{"the second one", 5, 0, false},
		{"", 5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			idx, ok := ParseOptionReply(tt.text, tt.options)
			if ok != tt.wantOK || idx != tt.wantIdx {
				t.Errorf("ParseOptionReply(%q, %d) = (%d, %v), want (%d, %v)",
					tt.text, tt.options, idx, ok, tt.wantIdx, tt.wantOK)
			}
		})
	}
}

// #endregion option-reply-tests
