package match

// #region result-set

// ResultSet is an immutable, score-sorted collection of matches with
// derived confidence-tier views. The super-match check is independent of
// the candidate threshold: it looks only at the absolute super threshold
// and the margin over the runner-up.
type ResultSet[T any] struct {
	matches []Match[T]
	config  Config
}

// newResultSet assumes matches are already sorted score-descending.
func newResultSet[T any](matches []Match[T], config Config) ResultSet[T] {
	return ResultSet[T]{matches: matches, config: config}
}

// NewResultSet builds a result set from unsorted matches, sorting them
// score-descending with stable ties.
func NewResultSet[T any](matches []Match[T], config Config) ResultSet[T] {
	sorted := make([]Match[T], len(matches))
	copy(sorted, matches)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Score > sorted[j-1].Score; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return ResultSet[T]{matches: sorted, config: config}
}

// Len returns the number of matches.
func (rs ResultSet[T]) Len() int {
	return len(rs.matches)
}

// At returns the match at position i (0 = highest score).
func (rs ResultSet[T]) At(i int) Match[T] {
	return rs.matches[i]
}

// Matches returns a copy of all matches, score-descending.
func (rs ResultSet[T]) Matches() []Match[T] {
	out := make([]Match[T], len(rs.matches))
	copy(out, rs.matches)
	return out
}

// #endregion result-set

// #region best

// Best returns the top-scoring match, or false if the set is empty.
func (rs ResultSet[T]) Best() (Match[T], bool) {
	if len(rs.matches) == 0 {
		return Match[T]{}, false
	}
	return rs.matches[0], true
}

// #endregion best

// #region super-match

// SuperMatch returns the top match when it is the unambiguous winner:
// score at or above SuperThreshold, and either no runner-up exists or the
// runner-up trails by at least SuperMargin.
func (rs ResultSet[T]) SuperMatch() (Match[T], bool) {
	if len(rs.matches) == 0 {
		return Match[T]{}, false
	}
	top := rs.matches[0]
	if top.Score < rs.config.SuperThreshold {
		return Match[T]{}, false
	}
	if len(rs.matches) == 1 || top.Score-rs.matches[1].Score >= rs.config.SuperMargin {
		return top, true
	}
	return Match[T]{}, false
}

// HasSuperMatch reports whether a super match exists.
func (rs ResultSet[T]) HasSuperMatch() bool {
	_, ok := rs.SuperMatch()
	return ok
}

// #endregion super-match

// #region candidates

// Candidates returns matches scoring at or above CandidateThreshold,
// capped at CandidateMax, preserving score-descending order.
func (rs ResultSet[T]) Candidates() []Match[T] {
	var out []Match[T]
	for _, m := range rs.matches {
		if m.Score < rs.config.CandidateThreshold {
			break
		}
		out = append(out, m)
		if len(out) == rs.config.CandidateMax {
			break
		}
	}
	return out
}

// HasCandidateMatch reports whether at least one candidate exists.
func (rs ResultSet[T]) HasCandidateMatch() bool {
	return len(rs.Candidates()) > 0
}

// #endregion candidates
