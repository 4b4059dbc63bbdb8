package match

// #region imports
import (
	"math"
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// #endregion

// #region scorer

// Scorer computes a similarity score in [0, 1] between a query and a
// candidate text.
type Scorer func(query, text string) float64

// PartialRatioScorer scores with a substring-aware partial ratio: a query
// contained in a candidate (or vice versa, case-insensitive) scores 1.0
// regardless of the length difference. Scores are rounded to 4 decimals.
// Empty query or empty text scores 0.
func PartialRatioScorer(query, text string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	t := strings.ToLower(strings.TrimSpace(text))
	if q == "" || t == "" {
		return 0
	}
	raw := fuzzy.PartialRatio(q, t)
	return math.Round(float64(raw)/100.0*10000) / 10000
}

// #endregion scorer

// #region searchable

// Searchable wraps a corpus of items with a key extractor and scorer,
// enabling fuzzy text search over it. The corpus is read-only after
// construction and safe to share across goroutines.
type Searchable[T any] struct {
	items  []T
	texts  []string
	scorer Scorer
	config Config
}

// NewSearchable builds a searchable corpus. key extracts the comparable
// text from each item. The default scorer is PartialRatioScorer.
func NewSearchable[T any](items []T, key func(T) string) *Searchable[T] {
	s := &Searchable[T]{
		items:  items,
		texts:  make([]string, len(items)),
		scorer: PartialRatioScorer,
		config: DefaultConfig(),
	}
	for i, it := range items {
		s.texts[i] = key(it)
	}
	return s
}

// WithScorer replaces the similarity function.
func (s *Searchable[T]) WithScorer(scorer Scorer) *Searchable[T] {
	s.scorer = scorer
	return s
}

// WithConfig replaces the classification thresholds used by result sets.
func (s *Searchable[T]) WithConfig(config Config) *Searchable[T] {
	s.config = config
	return s
}

// Len returns the number of items in the corpus.
func (s *Searchable[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the underlying corpus.
func (s *Searchable[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// #endregion searchable

// #region search

// Search scores every corpus entry against the query and returns the top
// limit matches, score-descending, ties broken by corpus order. limit <= 0
// means no cap. An empty corpus yields an empty set; an empty query scores
// every entry 0 and returns a well-formed set in corpus order.
func (s *Searchable[T]) Search(query string, limit int) ResultSet[T] {
	matches := make([]Match[T], len(s.items))
	for i, it := range s.items {
		matches[i] = Match[T]{
			Item:  it,
			Score: s.scorer(query, s.texts[i]),
		}
	}

	// Stable sort keeps corpus order for equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return newResultSet(matches, s.config)
}

// Best returns the single highest-scoring match, if any.
func (s *Searchable[T]) Best(query string) (Match[T], bool) {
	return s.Search(query, 1).Best()
}

// #endregion search
