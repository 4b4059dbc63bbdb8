package decision

// #region imports
import (
	"github.com/danielpatrickdp/parley/internal/match"
)

// #endregion

// #region selection

// Selection is the outcome of choosing one entity from a candidate set.
// IsAmbiguous and RequiresConfirmation are independent flags: a clear
// winner below the auto-accept bar needs confirmation without being
// ambiguous, and vice versa.
type Selection[T any] struct {
	Selected             T                 `json:"selected"`
	Alternatives         []match.Match[T]  `json:"alternatives,omitempty"`
	Strategy             SelectionStrategy `json:"strategy"`
	IsAmbiguous          bool              `json:"is_ambiguous"`
	RequiresConfirmation bool              `json:"requires_confirmation"`
}

// #endregion selection
