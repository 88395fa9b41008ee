package tmdb

// Candidate is a lightweight search hit shown before the user commits to a title.
type Candidate struct {
	ID          int64  `json:"id"`
	Title       string `json:"original_title"`
	ReleaseDate string `json:"release_date"`
}

// Details is the subset of the per-title endpoint needed to catalog a movie.
type Details struct {
	Title       string
	Year        int
	Description string
	PosterPath  string
}

type searchResponse struct {
	Results *[]Candidate `json:"results"`
}

type detailsResponse struct {
	OriginalTitle *string `json:"original_title"`
	ReleaseDate   *string `json:"release_date"`
	Overview      string  `json:"overview"`
	PosterPath    *string `json:"poster_path"`
}
