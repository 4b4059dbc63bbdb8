package dialogue

// #region imports
import (
	"github.com/google/uuid"

	"github.com/danielpatrickdp/parley/internal/decision"
	"github.com/danielpatrickdp/parley/internal/match"
)

// #endregion

// #region state

// State is a node in the per-turn dialogue graph. Every turn starts at
// StateExtract and ends at StateRespond or StateClarify; the next inbound
// message re-enters at StateExtract.
type State string

const (
	StateExtract State = "extract"
	StateSearch  State = "search"
	StateClarify State = "clarify"
	StateRespond State = "respond"
)

// #endregion state

// #region config

// Config holds the routing thresholds for the dialogue graph.
type Config struct {
	MaxClarificationAttempts int     // hard ceiling on clarify visits per conversation
	HighConfidenceThreshold  float64 // min score to accept a match without asking
	AmbiguityThreshold       float64 // min top-two gap for a clear winner
	MaxOptionsShown          int     // cap on options listed in a clarification
	HistoryWindow            int     // messages of history fed to extraction
}

// DefaultConfig returns the standard routing thresholds.
func DefaultConfig() Config {
	return Config{
		MaxClarificationAttempts: 3,
		HighConfidenceThreshold:  0.8,
		AmbiguityThreshold:       0.10,
		MaxOptionsShown:          5,
		HistoryWindow:            5,
	}
}

// #endregion config

// #region message

// Role identifies a message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the conversation history.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// #endregion message

// #region query-interface

// Query is the structured search object extracted from user text. A
// query with no filters set routes straight to respond.
type Query interface {
	IsEmpty() bool
}

// #endregion query-interface

// #region turn-state

// TurnState is the mutable state threaded through the dialogue graph for
// one conversation. It is owned by exactly one conversation; turns are
// strictly sequential, so no locking is needed.
type TurnState[E any, Q Query] struct {
	ConversationID     string
	Messages           []Message // append-only history
	Query              *Q        // replaced wholesale each turn
	Candidates         []match.Match[E]
	Selected           *E
	LastExtraction     *decision.Envelope[decision.Extraction[Q]]
	NeedsClarification bool
	ClarificationCount int // incremented once per clarify visit
}

// NewTurnState starts a fresh conversation.
func NewTurnState[E any, Q Query]() *TurnState[E, Q] {
	return &TurnState[E, Q]{ConversationID: uuid.New().String()}
}

// #endregion turn-state

// #region turn-result

// TurnResult reports what one turn did: the states visited, the detected
// intent and any requested mutations, the selection if one was made, and
// the outbound messages produced.
type TurnResult[E any] struct {
	TurnID    string
	Path      []State
	Final     State
	Intent    decision.Intent
	Mutations []decision.StateMutation
	Selection *decision.Selection[E]
	Outbound  []Message
}

// #endregion turn-result
