package request

// SearchRequest is the add-movie form: a free-text title query.
type SearchRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

// RatingRequest carries the raw rating text; it is parsed as a float by the service.
type RatingRequest struct {
	Rating string `json:"rating" validate:"required,max=32"`
	Review string `json:"review" validate:"required,max=255"`
}
