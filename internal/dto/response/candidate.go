package response

import (
	"movie-catalog/pkg/tmdb"
)

type CandidateResponse struct {
	ExternalID  int64  `json:"external_id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
}

func CandidatesToResponse(candidates []tmdb.Candidate) []CandidateResponse {
	out := make([]CandidateResponse, len(candidates))
	for i, c := range candidates {
		out[i] = CandidateResponse{
			ExternalID:  c.ID,
			Title:       c.Title,
			ReleaseDate: c.ReleaseDate,
		}
	}
	return out
}
