package entity

const (
	// NoReview marks an entry whose review has not been written yet.
	NoReview = "n/a"
	// Unrated marks an entry whose rating has not been submitted yet.
	Unrated = 0.0
)

type Movie struct {
	Base
	Title       string  `db:"title"`
	Year        int     `db:"year"`
	Description string  `db:"description"`
	Rating      float64 `db:"rating"`
	Ranking     int     `db:"ranking"`
	Review      string  `db:"review"`
	ImageURL    string  `db:"image_url"`
}

// NewMovie builds an unrated, unreviewed, unranked entry.
func NewMovie(title string, year int, description, imageURL string) *Movie {
	return &Movie{
		Title:       title,
		Year:        year,
		Description: description,
		Rating:      Unrated,
		Ranking:     0,
		Review:      NoReview,
		ImageURL:    imageURL,
	}
}
