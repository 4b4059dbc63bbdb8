package dialogue

// #region imports
import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/parley/internal/decision"
	"github.com/danielpatrickdp/parley/internal/match"
)

// #endregion

// #region func-types

// ExtractFunc turns recent conversation text into a structured query
// extraction wrapped in a decision envelope.
type ExtractFunc[Q Query] func(ctx context.Context, conversation string) (decision.Envelope[decision.Extraction[Q]], error)

// RespondFunc produces the user-facing reply for a prompt describing the
// turn outcome.
type RespondFunc func(ctx context.Context, prompt string) (decision.Envelope[decision.AgentResponse], error)

// SearchFunc runs a structured query against the entity catalog and
// returns scored candidates, best first.
type SearchFunc[E any, Q Query] func(q Q) []match.Match[E]

// DescribeFunc renders one entity as a short human-readable line.
type DescribeFunc[E any] func(e E) string

// #endregion func-types

// #region engine

// Engine drives the extract/search/clarify/respond graph for one entity
// domain. The model boundary is two injected functions, so tests can run
// the whole graph with scripted decisions.
type Engine[E any, Q Query] struct {
	extract  ExtractFunc[Q]
	respond  RespondFunc
	search   SearchFunc[E, Q]
	describe DescribeFunc[E]
	config   Config
}

// NewEngine wires an engine from its four dependencies.
func NewEngine[E any, Q Query](
	extract ExtractFunc[Q],
	respond RespondFunc,
	search SearchFunc[E, Q],
	describe DescribeFunc[E],
	config Config,
) *Engine[E, Q] {
	if config.MaxOptionsShown <= 0 {
		config.MaxOptionsShown = DefaultConfig().MaxOptionsShown
	}
	if config.HistoryWindow <= 0 {
		config.HistoryWindow = DefaultConfig().HistoryWindow
	}
	return &Engine[E, Q]{
		extract:  extract,
		respond:  respond,
		search:   search,
		describe: describe,
		config:   config,
	}
}

// #endregion engine

// #region run-turn

// RunTurn processes one inbound user message through the graph, mutating
// the conversation state and returning what the turn did. Extraction
// failures degrade to an apologetic respond; a respond failure is the
// only fatal path, since the turn cannot finish without an outbound
// message.
func (e *Engine[E, Q]) RunTurn(ctx context.Context, ts *TurnState[E, Q], userText string) (TurnResult[E], error) {
	result := TurnResult[E]{
		TurnID:    uuid.New().String(),
		Intent:    ClassifyIntent(userText),
		Mutations: DetectMutations(userText),
	}
	ts.Messages = append(ts.Messages, Message{Role: RoleUser, Content: userText})

	// A pending clarification may be answerable without another
	// extraction round trip.
	if ts.NeedsClarification && len(ts.Candidates) > 0 {
		if done, err := e.tryClarificationReply(ctx, ts, userText, &result); done {
			return result, err
		}
	}

	result.Path = append(result.Path, StateExtract)
	e.runExtract(ctx, ts)

	if RouteAfterExtraction(ts) == StateSearch {
		result.Path = append(result.Path, StateSearch)
		e.runSearch(ts, &result)

		if RouteAfterSearch(ts, e.config) == StateClarify {
			result.Path = append(result.Path, StateClarify)
			result.Final = StateClarify
			e.runClarify(ts, &result)
			return result, nil
		}
	}

	result.Path = append(result.Path, StateRespond)
	result.Final = StateRespond
	if err := e.runRespond(ctx, ts, &result); err != nil {
		return result, err
	}
	return result, nil
}

// #endregion run-turn

// #region clarification-reply

// tryClarificationReply handles a reply to an open clarification. A
// numeric pick or a plain confirmation resolves the turn without calling
// extraction; a cancellation resets the search. Anything else falls
// through so the new information re-enters the graph at extract.
func (e *Engine[E, Q]) tryClarificationReply(ctx context.Context, ts *TurnState[E, Q], userText string, result *TurnResult[E]) (bool, error) {
	shown := len(ts.Candidates)
	if shown > e.config.MaxOptionsShown {
		shown = e.config.MaxOptionsShown
	}

	if idx, ok := ParseOptionReply(userText, shown); ok {
		e.selectCandidate(ts, result, idx-1, decision.StrategyUserSpecified)
		log.Printf("[DIALOG] convo=%s clarification answered with option %d", ts.ConversationID, idx)
		result.Path = append(result.Path, StateRespond)
		result.Final = StateRespond
		return true, e.runRespond(ctx, ts, result)
	}

	switch result.Intent {
	case decision.IntentConfirm:
		e.selectCandidate(ts, result, 0, decision.StrategyUserSpecified)
		log.Printf("[DIALOG] convo=%s clarification confirmed top candidate", ts.ConversationID)
		result.Path = append(result.Path, StateRespond)
		result.Final = StateRespond
		return true, e.runRespond(ctx, ts, result)

	case decision.IntentCancel:
		ts.Query = nil
		ts.Candidates = nil
		ts.Selected = nil
		ts.NeedsClarification = false
		log.Printf("[DIALOG] convo=%s clarification cancelled", ts.ConversationID)
		msg := Message{
			Role:    RoleAssistant,
			Content: "Okay, I've dropped that search. What else can I help you with?",
		}
		ts.Messages = append(ts.Messages, msg)
		result.Outbound = append(result.Outbound, msg)
		result.Path = append(result.Path, StateRespond)
		result.Final = StateRespond
		return true, nil
	}

	return false, nil
}

// selectCandidate pins candidate i as the selection and records how the
// choice was made.
func (e *Engine[E, Q]) selectCandidate(ts *TurnState[E, Q], result *TurnResult[E], i int, strategy decision.SelectionStrategy) {
	picked := ts.Candidates[i]
	item := picked.Item
	ts.Selected = &item
	ts.NeedsClarification = false

	var alts []match.Match[E]
	for j, c := range ts.Candidates {
		if j != i {
			alts = append(alts, c)
		}
	}
	result.Selection = &decision.Selection[E]{
		Selected:     item,
		Alternatives: alts,
		Strategy:     strategy,
	}
}

// #endregion clarification-reply

// #region extract-node

func (e *Engine[E, Q]) runExtract(ctx context.Context, ts *TurnState[E, Q]) {
	env, err := e.extract(ctx, e.conversationWindow(ts))
	if err != nil {
		log.Printf("[DIALOG] convo=%s extract failed: %v", ts.ConversationID, err)
		ts.LastExtraction = nil
		ts.Query = nil
		return
	}
	ts.LastExtraction = &env

	// The query is replaced wholesale; carrying over stale criteria from
	// a previous turn produces confusing mixed searches.
	if env.Payload.IsSuccess && env.Payload.Data != nil {
		ts.Query = env.Payload.Data
	} else {
		ts.Query = nil
	}
}

// conversationWindow renders the most recent messages for the extraction
// prompt.
func (e *Engine[E, Q]) conversationWindow(ts *TurnState[E, Q]) string {
	msgs := ts.Messages
	if len(msgs) > e.config.HistoryWindow {
		msgs = msgs[len(msgs)-e.config.HistoryWindow:]
	}
	var b strings.Builder
	for _, m := range msgs {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
	}
	return b.String()
}

// #endregion extract-node

// #region search-node

func (e *Engine[E, Q]) runSearch(ts *TurnState[E, Q], result *TurnResult[E]) {
	ts.Candidates = e.search(*ts.Query)
	ts.Selected = nil
	log.Printf("[DIALOG] convo=%s search returned %d candidates", ts.ConversationID, len(ts.Candidates))

	// Pre-select a clear winner so respond can present it directly. A
	// single weak candidate or a close field stays unselected.
	if len(ts.Candidates) == 0 {
		return
	}
	top := ts.Candidates[0]
	if top.Score < e.config.HighConfidenceThreshold {
		return
	}
	if len(ts.Candidates) > 1 && top.Score-ts.Candidates[1].Score <= e.config.AmbiguityThreshold {
		return
	}
	e.selectCandidate(ts, result, 0, decision.StrategyHighestScore)
}

// #endregion search-node

// #region clarify-node

func (e *Engine[E, Q]) runClarify(ts *TurnState[E, Q], result *TurnResult[E]) {
	ts.ClarificationCount++
	ts.NeedsClarification = true

	shown := len(ts.Candidates)
	if shown > e.config.MaxOptionsShown {
		shown = e.config.MaxOptionsShown
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d possible matches. Which one did you mean?\n", len(ts.Candidates))
	for i := 0; i < shown; i++ {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, e.describe(ts.Candidates[i].Item))
	}
	b.WriteString("Reply with a number, or add more detail.")

	log.Printf("[DIALOG] convo=%s clarify attempt %d/%d options=%d",
		ts.ConversationID, ts.ClarificationCount, e.config.MaxClarificationAttempts, shown)

	msg := Message{Role: RoleAssistant, Content: b.String()}
	ts.Messages = append(ts.Messages, msg)
	result.Outbound = append(result.Outbound, msg)
}

// #endregion clarify-node

// #region respond-node

func (e *Engine[E, Q]) runRespond(ctx context.Context, ts *TurnState[E, Q], result *TurnResult[E]) error {
	env, err := e.respond(ctx, e.respondPrompt(ts))
	if err != nil {
		return fmt.Errorf("respond for conversation %s: %w", ts.ConversationID, err)
	}
	ts.NeedsClarification = false

	msg := Message{Role: RoleAssistant, Content: env.Payload.Content}
	ts.Messages = append(ts.Messages, msg)
	result.Outbound = append(result.Outbound, msg)
	return nil
}

// respondPrompt builds the generation prompt for whichever outcome the
// turn landed on.
func (e *Engine[E, Q]) respondPrompt(ts *TurnState[E, Q]) string {
	switch {
	case ts.Selected != nil:
		return fmt.Sprintf(
			"Present this result to the user in a friendly sentence or two:\n%s",
			e.describe(*ts.Selected),
		)

	case ts.LastExtraction == nil:
		return "The last message could not be processed. Apologize briefly and ask the user to rephrase."

	case ts.LastExtraction.NeedsClarification:
		return fmt.Sprintf(
			"Ask the user this clarifying question in a friendly way: %s",
			ts.LastExtraction.ClarificationPrompt,
		)

	case ts.Query == nil || (*ts.Query).IsEmpty():
		return "The user has not given any search criteria yet. Ask what they are looking for."

	case len(ts.Candidates) == 0:
		return fmt.Sprintf(
			"No results matched the search criteria:\n%s\nTell the user nothing was found and suggest loosening the criteria.",
			queryJSON(ts.Query),
		)

	default:
		// Budget exhausted or a single weak match: present the best
		// guess rather than asking again.
		return fmt.Sprintf(
			"The closest match found was:\n%s\nPresent it as a best guess and note it may not be exact.",
			e.describe(ts.Candidates[0].Item),
		)
	}
}

func queryJSON(q any) string {
	b, err := json.Marshal(q)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// #endregion respond-node
