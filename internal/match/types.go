package match

// #region match
// Match pairs a corpus item with its similarity score in [0, 1].
type Match[T any] struct {
	Item  T       `json:"item"`
	Score float64 `json:"score"`
}

// #endregion match

// #region config
// Config holds the thresholds for classifying a result set.
type Config struct {
	SuperThreshold     float64 // min score for an auto-accept winner
	SuperMargin        float64 // min gap over the runner-up
	CandidateThreshold float64 // min score to count as a candidate
	CandidateMax       int     // cap on returned candidates
}

// DefaultConfig returns the standard classification thresholds.
func DefaultConfig() Config {
	return Config{
		SuperThreshold:     0.98,
		SuperMargin:        0.10,
		CandidateThreshold: 0.80,
		CandidateMax:       5,
	}
}

// #endregion config
