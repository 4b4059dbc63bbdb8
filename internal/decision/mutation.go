package decision

// #region imports
import (
	"fmt"
)

// #endregion

// #region mutation

// StateMutation records a single requested change to one field of the
// working state, keeping the old value for audit. Values are restricted
// to string, int, float64, or bool.
type StateMutation struct {
	FieldName string `json:"field_name"`
	OldValue  any    `json:"old_value,omitempty"`
	NewValue  any    `json:"new_value"`
}

// NewStateMutation validates that both values are of an allowed kind.
// OldValue may be nil when the field was previously unset.
func NewStateMutation(fieldName string, oldValue, newValue any) (StateMutation, error) {
	if oldValue != nil {
		if err := checkMutationValue(fieldName, "old", oldValue); err != nil {
			return StateMutation{}, err
		}
	}
	if newValue == nil {
		return StateMutation{}, fmt.Errorf("mutation %q: new value must not be nil", fieldName)
	}
	if err := checkMutationValue(fieldName, "new", newValue); err != nil {
		return StateMutation{}, err
	}
	return StateMutation{
		FieldName: fieldName,
		OldValue:  oldValue,
		NewValue:  newValue,
	}, nil
}

// #endregion mutation

// #region helpers

func checkMutationValue(field, side string, v any) error {
	switch v.(type) {
	case string, int, int64, float64, bool:
		return nil
	default:
		return fmt.Errorf("mutation %q: %s value has unsupported type %T", field, side, v)
	}
}

// #endregion helpers
