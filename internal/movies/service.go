package movies

// #region imports
import (
	"sort"
	"strings"

	"github.com/danielpatrickdp/parley/internal/match"
)

// #endregion

// #region thresholds

const (
	titleMatchThreshold    = 0.5
	actorMatchThreshold    = 0.5
	directorMatchThreshold = 0.5
	actorSearchThreshold   = 0.6
)

// #endregion thresholds

// #region service

// Service searches a movie catalog with multi-criteria scored matching.
// The built-in dataset backs the demo workflow; a custom list can be
// supplied for tests.
type Service struct {
	movies []Movie
	byID   map[string]Movie
	titles *match.Searchable[Movie]
}

// NewService builds a service over the built-in catalog.
func NewService() *Service {
	return NewServiceWith(builtinMovies)
}

// NewServiceWith builds a service over a custom movie list.
func NewServiceWith(list []Movie) *Service {
	byID := make(map[string]Movie, len(list))
	for _, m := range list {
		byID[m.ID] = m
	}
	return &Service{
		movies: list,
		byID:   byID,
		titles: match.NewSearchable(list, func(m Movie) string { return m.Title }),
	}
}

// All returns every movie in the catalog.
func (s *Service) All() []Movie {
	out := make([]Movie, len(s.movies))
	copy(out, s.movies)
	return out
}

// ByID returns a movie by its unique ID.
func (s *Service) ByID(id string) (Movie, bool) {
	m, ok := s.byID[id]
	return m, ok
}

// #endregion service

// #region by-actor

// ByActor returns all movies featuring an actor, matched by full or
// partial name.
func (s *Service) ByActor(actorName string) []Movie {
	var out []Movie
	for _, m := range s.movies {
		for _, a := range m.Cast {
			if match.PartialRatioScorer(actorName, a.Name) > actorSearchThreshold {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// #endregion by-actor

// #region by-genre

// ByGenre returns all movies in a genre, rating-descending.
func (s *Service) ByGenre(genre string) []Movie {
	lower := strings.ToLower(genre)
	var out []Movie
	for _, m := range s.movies {
		for _, g := range m.Genres {
			if strings.ToLower(g) == lower {
				out = append(out, m)
				break
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	return out
}

// #endregion by-genre

// #region fuzzy-title

// FuzzyTitle returns the fuzzy title matches for a search term as a
// classified result set.
func (s *Service) FuzzyTitle(title string, limit int) match.ResultSet[Movie] {
	return s.titles.Search(title, limit)
}

// #endregion fuzzy-title

// #region search

// Search applies every set criterion as an AND filter and scores the
// survivors by how well they match. Results are score-descending. An
// empty query returns the whole catalog scored by rating.
func (s *Service) Search(q Query) []match.Match[Movie] {
	if q.IsEmpty() {
		out := make([]match.Match[Movie], len(s.movies))
		for i, m := range s.movies {
			out[i] = match.Match[Movie]{Item: m, Score: m.Rating / 10.0}
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
		return out
	}

	var out []match.Match[Movie]
	for _, m := range s.movies {
		if !passesFilters(m, q) {
			continue
		}
		ok, scores := scoreMovie(m, q)
		if !ok {
			continue
		}
		score := m.Rating / 10.0
		if len(scores) > 0 {
			var sum float64
			for _, v := range scores {
				sum += v
			}
			score = sum / float64(len(scores))
		}
		out = append(out, match.Match[Movie]{Item: m, Score: score})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// #endregion search

// #region scoring

// passesFilters checks the year and rating range criteria.
func passesFilters(m Movie, q Query) bool {
	if q.YearFrom != 0 && m.Year < q.YearFrom {
		return false
	}
	if q.YearTo != 0 && m.Year > q.YearTo {
		return false
	}
	if q.MinRating != 0 && m.Rating < q.MinRating {
		return false
	}
	return true
}

// scoreMovie scores the textual criteria. Returns false when any set
// criterion falls below its threshold.
func scoreMovie(m Movie, q Query) (bool, []float64) {
	var scores []float64

	if q.Title != "" {
		s := match.PartialRatioScorer(q.Title, m.Title)
		if s < titleMatchThreshold {
			return false, nil
		}
		scores = append(scores, s)
	}

	if q.ActorName != "" {
		var best float64
		for _, a := range m.Cast {
			if s := match.PartialRatioScorer(q.ActorName, a.Name); s > best {
				best = s
			}
		}
		if best < actorMatchThreshold {
			return false, nil
		}
		scores = append(scores, best)
	}

	if q.DirectorName != "" {
		s := match.PartialRatioScorer(q.DirectorName, m.Director)
		if s < directorMatchThreshold {
			return false, nil
		}
		scores = append(scores, s)
	}

	if q.Genre != "" {
		lower := strings.ToLower(q.Genre)
		found := false
		for _, g := range m.Genres {
			if strings.ToLower(g) == lower {
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
		scores = append(scores, 1.0)
	}

	return true, scores
}

// #endregion scoring
