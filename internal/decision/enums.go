package decision

// #region intent
// Intent classifies what the user wants to accomplish with a message.
type Intent string

const (
	IntentProvideData      Intent = "provide_data"
	IntentModifyData       Intent = "modify_data"
	IntentConfirm          Intent = "confirm"
	IntentCancel           Intent = "cancel"
	IntentAskClarification Intent = "ask_clarification"
	IntentUnknown          Intent = "unknown"
)

// #endregion intent

// #region response-type
// ResponseType is the conversational act the agent performs.
type ResponseType string

const (
	ResponseAnswer        ResponseType = "answer"
	ResponseClarification ResponseType = "clarification"
	ResponseConfirmation  ResponseType = "confirmation"
	ResponseRejection     ResponseType = "rejection"
)

// #endregion response-type

// #region selection-strategy
// SelectionStrategy records how a selection among candidates was made.
type SelectionStrategy string

const (
	StrategyHighestScore  SelectionStrategy = "highest_score"
	StrategyUserSpecified SelectionStrategy = "user_specified"
	StrategyLLMChoice     SelectionStrategy = "llm_choice"
)

// #endregion selection-strategy

// #region resolution-status
// ResolutionStatus tracks the outcome of resolving text to an entity.
type ResolutionStatus string

const (
	ResolutionNotAttempted ResolutionStatus = "not_attempted"
	ResolutionResolved     ResolutionStatus = "resolved"
	ResolutionAmbiguous    ResolutionStatus = "ambiguous"
	ResolutionNotFound     ResolutionStatus = "not_found"
)

// #endregion resolution-status

// #region agent-response
// AgentResponse is the structured response the agent gives the user.
type AgentResponse struct {
	Type                  ResponseType `json:"response_type"`
	Content               string       `json:"content"`
	ProposedAction        string       `json:"proposed_action,omitempty"`
	ClarificationQuestion string       `json:"clarification_question,omitempty"`
}

// #endregion agent-response
