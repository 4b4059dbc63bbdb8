package movies

// #region actor
// Actor is a film actor with basic biographical data.
type Actor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BirthYear   int    `json:"birth_year,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

// #endregion actor

// #region movie
// Movie is a film with metadata and cast.
type Movie struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Year           int      `json:"year"`
	Director       string   `json:"director"`
	Genres         []string `json:"genres,omitempty"`
	Cast           []Actor  `json:"cast,omitempty"`
	Rating         float64  `json:"rating"`
	RuntimeMinutes int      `json:"runtime_minutes,omitempty"`
}

// #endregion movie

// #region query
// Query holds search criteria for finding movies. All fields are
// optional; set fields combine as an AND filter.
type Query struct {
	Title        string  `json:"title,omitempty"`
	ActorName    string  `json:"actor_name,omitempty"`
	DirectorName string  `json:"director_name,omitempty"`
	Genre        string  `json:"genre,omitempty"`
	YearFrom     int     `json:"year_from,omitempty"`
	YearTo       int     `json:"year_to,omitempty"`
	MinRating    float64 `json:"min_rating,omitempty"`
}

// IsEmpty reports whether no filter is set.
func (q Query) IsEmpty() bool {
	return q.Title == "" &&
		q.ActorName == "" &&
		q.DirectorName == "" &&
		q.Genre == "" &&
		q.YearFrom == 0 &&
		q.YearTo == 0 &&
		q.MinRating == 0
}

// #endregion query
