package movies

// #region actors

var builtinActors = map[string]Actor{
	"dicaprio":  {ID: "actor_001", Name: "Leonardo DiCaprio", BirthYear: 1974, Nationality: "American"},
	"bale":      {ID: "actor_002", Name: "Christian Bale", BirthYear: 1974, Nationality: "British"},
	"freeman":   {ID: "actor_003", Name: "Morgan Freeman", BirthYear: 1937, Nationality: "American"},
	"johansson": {ID: "actor_004", Name: "Scarlett Johansson", BirthYear: 1984, Nationality: "American"},
	"portman":   {ID: "actor_005", Name: "Natalie Portman", BirthYear: 1981, Nationality: "Israeli-American"},
	"blanchett": {ID: "actor_006", Name: "Cate Blanchett", BirthYear: 1969, Nationality: "Australian"},
	"hanks":     {ID: "actor_007", Name: "Tom Hanks", BirthYear: 1956, Nationality: "American"},
	"damon":     {ID: "actor_008", Name: "Matt Damon", BirthYear: 1970, Nationality: "American"},
	"pitt":      {ID: "actor_009", Name: "Brad Pitt", BirthYear: 1963, Nationality: "American"},
	"jackson":   {ID: "actor_010", Name: "Samuel L. Jackson", BirthYear: 1948, Nationality: "American"},
	"ledger":    {ID: "actor_011", Name: "Heath Ledger", BirthYear: 1979, Nationality: "Australian"},
}

// #endregion actors

// #region movies

var builtinMovies = []Movie{
	{ID: "mov_001", Title: "Inception", Year: 2010, Director: "Christopher Nolan",
		Genres: []string{"Sci-Fi", "Thriller", "Action"},
		Cast:   []Actor{builtinActors["dicaprio"]}, Rating: 8.8, RuntimeMinutes: 148},
	{ID: "mov_002", Title: "The Dark Knight", Year: 2008, Director: "Christopher Nolan",
		Genres: []string{"Action", "Crime", "Drama"},
		Cast:   []Actor{builtinActors["bale"], builtinActors["ledger"], builtinActors["freeman"]}, Rating: 9.0, RuntimeMinutes: 152},
	{ID: "mov_003", Title: "Batman Begins", Year: 2005, Director: "Christopher Nolan",
		Genres: []string{"Action", "Adventure"},
		Cast:   []Actor{builtinActors["bale"], builtinActors["freeman"]}, Rating: 8.2, RuntimeMinutes: 140},
	{ID: "mov_004", Title: "The Dark Knight Rises", Year: 2012, Director: "Christopher Nolan",
		Genres: []string{"Action", "Adventure"},
		Cast:   []Actor{builtinActors["bale"]}, Rating: 8.4, RuntimeMinutes: 164},
	{ID: "mov_005", Title: "Titanic", Year: 1997, Director: "James Cameron",
		Genres: []string{"Drama", "Romance"},
		Cast:   []Actor{builtinActors["dicaprio"]}, Rating: 7.9, RuntimeMinutes: 194},
	{ID: "mov_006", Title: "Interstellar", Year: 2014, Director: "Christopher Nolan",
		Genres: []string{"Sci-Fi", "Adventure", "Drama"},
		Cast:   []Actor{builtinActors["damon"]}, Rating: 8.7, RuntimeMinutes: 169},
	{ID: "mov_007", Title: "The Departed", Year: 2006, Director: "Martin Scorsese",
		Genres: []string{"Crime", "Thriller", "Drama"},
		Cast:   []Actor{builtinActors["dicaprio"], builtinActors["damon"]}, Rating: 8.5, RuntimeMinutes: 151},
	{ID: "mov_008", Title: "Forrest Gump", Year: 1994, Director: "Robert Zemeckis",
		Genres: []string{"Drama", "Romance"},
		Cast:   []Actor{builtinActors["hanks"]}, Rating: 8.8, RuntimeMinutes: 142},
	{ID: "mov_009", Title: "Saving Private Ryan", Year: 1998, Director: "Steven Spielberg",
		Genres: []string{"War", "Drama"},
		Cast:   []Actor{builtinActors["hanks"], builtinActors["damon"]}, Rating: 8.6, RuntimeMinutes: 169},
	{ID: "mov_010", Title: "Pulp Fiction", Year: 1994, Director: "Quentin Tarantino",
		Genres: []string{"Crime", "Drama"},
		Cast:   []Actor{builtinActors["jackson"]}, Rating: 8.9, RuntimeMinutes: 154},
	{ID: "mov_011", Title: "Black Swan", Year: 2010, Director: "Darren Aronofsky",
		Genres: []string{"Thriller", "Drama"},
		Cast:   []Actor{builtinActors["portman"]}, Rating: 8.0, RuntimeMinutes: 108},
	{ID: "mov_012", Title: "The Avengers", Year: 2012, Director: "Joss Whedon",
		Genres: []string{"Action", "Sci-Fi", "Adventure"},
		Cast:   []Actor{builtinActors["johansson"], builtinActors["jackson"]}, Rating: 8.0, RuntimeMinutes: 143},
	{ID: "mov_013", Title: "Lost in Translation", Year: 2003, Director: "Sofia Coppola",
		Genres: []string{"Drama", "Romance"},
		Cast:   []Actor{builtinActors["johansson"]}, Rating: 7.7, RuntimeMinutes: 102},
	{ID: "mov_014", Title: "The Lord of the Rings: The Fellowship of the Ring", Year: 2001, Director: "Peter Jackson",
		Genres: []string{"Fantasy", "Adventure"},
		Cast:   []Actor{builtinActors["blanchett"]}, Rating: 8.8, RuntimeMinutes: 178},
	{ID: "mov_015", Title: "Fight Club", Year: 1999, Director: "David Fincher",
		Genres: []string{"Drama", "Thriller"},
		Cast:   []Actor{builtinActors["pitt"]}, Rating: 8.8, RuntimeMinutes: 139},
}

// #endregion movies
