package dialogue

// #region route-after-extraction

// RouteAfterExtraction decides where a turn goes once extraction has run.
// Anything that cannot produce a usable query short-circuits to respond;
// only a non-empty structured query earns a search.
func RouteAfterExtraction[E any, Q Query](ts *TurnState[E, Q]) State {
	if ts.LastExtraction == nil {
		return StateRespond
	}
	if ts.LastExtraction.NeedsClarification {
		return StateRespond
	}
	if ts.Query == nil {
		return StateRespond
	}
	if (*ts.Query).IsEmpty() {
		return StateRespond
	}
	return StateSearch
}

// #endregion route-after-extraction

// #region route-after-search

// RouteAfterSearch decides between answering and asking once candidates
// are in hand. The clarification ceiling is checked before any score
// comparison: once spent, the turn must respond with whatever it has.
func RouteAfterSearch[E any, Q Query](ts *TurnState[E, Q], cfg Config) State {
	if len(ts.Candidates) == 0 {
		return StateRespond
	}
	if ts.ClarificationCount >= cfg.MaxClarificationAttempts {
		return StateRespond
	}

	top := ts.Candidates[0]
	if len(ts.Candidates) == 1 {
		if top.Score >= cfg.HighConfidenceThreshold {
			return StateRespond
		}
		return StateClarify
	}

	if top.Score >= cfg.HighConfidenceThreshold &&
		top.Score-ts.Candidates[1].Score > cfg.AmbiguityThreshold {
		return StateRespond
	}
	return StateClarify
}

// #endregion route-after-search
