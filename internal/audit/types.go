package audit

import "time"

// #region turn-record
// TurnRecord is a single row in the turn_log table: what one dialogue
// turn decided and why, serialized for later inspection and replay.
type TurnRecord struct {
	TurnID             string
	ConversationID     string
	UserText           string
	Intent             string
	Route              string // states visited, "extract>search>respond"
	QueryJSON          string // extracted query after the turn, if any
	FinalState         string
	Reason             string
	Confidence         float64
	MutationsJSON      string
	ClarificationCount int
	CreatedAt          time.Time
}
// #endregion turn-record
