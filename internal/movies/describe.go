package movies

// #region imports
import (
	"fmt"
	"strings"
)

// #endregion

// #region describe

// Describe renders a movie as a single human-readable line for option
// lists and responses.
func Describe(m Movie) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d), directed by %s", m.Title, m.Year, m.Director)
	if len(m.Genres) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(m.Genres, ", "))
	}
	fmt.Fprintf(&b, ", rated %.1f", m.Rating)
	return b.String()
}

// #endregion describe
