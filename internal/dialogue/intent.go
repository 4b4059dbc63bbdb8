package dialogue

// #region imports
import (
	"regexp"
	"strconv"
	"strings"

	"github.com/danielpatrickdp/parley/internal/decision"
)

// #endregion

// #region keywords

var confirmWords = []string{"yes", "yep", "yeah", "correct", "right", "confirm", "sure", "ok", "okay", "that's it", "exactly"}

var cancelWords = []string{"no", "nope", "cancel", "stop", "never mind", "nevermind", "forget it", "wrong"}

var questionWords = []string{"what", "which", "why", "how", "what do you mean", "?"}

// #endregion keywords

// #region classify

// ClassifyIntent buckets a user message by keyword heuristics. A message
// carrying a field change is modify_data even when it opens with a
// confirmation ("yes, but change the year to 2010").
func ClassifyIntent(text string) decision.Intent {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return decision.IntentUnknown
	}

	if len(DetectMutations(text)) > 0 {
		return decision.IntentModifyData
	}

	for _, w := range cancelWords {
		if lower == w || strings.HasPrefix(lower, w+" ") || strings.HasPrefix(lower, w+",") {
			return decision.IntentCancel
		}
	}
	for _, w := range confirmWords {
		if lower == w || strings.HasPrefix(lower, w+" ") || strings.HasPrefix(lower, w+",") {
			return decision.IntentConfirm
		}
	}
	for _, w := range questionWords {
		if strings.HasPrefix(lower, w) || strings.HasSuffix(lower, "?") {
			return decision.IntentAskClarification
		}
	}
	return decision.IntentProvideData
}

// #endregion classify

// #region mutations

var mutationPattern = regexp.MustCompile(`(?i)\b(?:change|set|update|switch)\s+(?:the\s+)?([a-z_ ]+?)\s+to\s+("[^"]+"|\S+)`)

// DetectMutations pulls "change <field> to <value>" requests out of a
// message. Values are coerced to bool, int, or float64 when they parse
// as one; everything else stays a string. Unparseable requests are
// dropped rather than guessed at.
func DetectMutations(text string) []decision.StateMutation {
	var out []decision.StateMutation
	for _, m := range mutationPattern.FindAllStringSubmatch(text, -1) {
		field := strings.ReplaceAll(strings.TrimSpace(strings.ToLower(m[1])), " ", "_")
		mut, err := decision.NewStateMutation(field, nil, coerceValue(m[2]))
		if err != nil {
			continue
		}
		out = append(out, mut)
	}
	return out
}

func coerceValue(raw string) any {
	raw = strings.Trim(raw, `"`)
	raw = strings.TrimRight(raw, ".,!?")
	// Numeric checks run first: ParseBool would claim "1" and "0".
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}

// #endregion mutations

// #region option-reply

var optionPattern = regexp.MustCompile(`^(?:option\s+|number\s+|#)?(\d+)\.?$`)

// ParseOptionReply reads a bare numeric reply to a clarification list.
// Returns the 1-based option index, or false when the message is not a
// plain in-range number.
func ParseOptionReply(text string, optionCount int) (int, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	m := optionPattern.FindStringSubmatch(lower)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > optionCount {
		return 0, false
	}
	return n, true
}

// #endregion option-reply
