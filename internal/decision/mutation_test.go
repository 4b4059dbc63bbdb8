package decision

import "testing"

// #region mutation-tests

func TestNewStateMutation_AllowedKinds(t *testing.T) {
	tests := []struct {
		name     string
		oldValue any
		newValue any
		wantErr  bool
	}{
		{"string value", "old", "new", false},
		{"int value", 1994, 2010, false},
		{"int64 value", int64(1), int64(2), false},
		{"float value", 7.5, 8.8, false},
		{"bool value", false, true, false},
		{"nil old value", nil, "set", false},
		{"nil new value", "old", nil, true},
		{"slice new value", nil, []string{"x"}, true},
		{"map old value", map[string]int{}, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mut, err := NewStateMutation("field", tt.oldValue, tt.newValue)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if mut.FieldName != "field" {
				t.Errorf("unexpected field name %q", mut.FieldName)
			}
		})
	}
}

// #endregion mutation-tests
