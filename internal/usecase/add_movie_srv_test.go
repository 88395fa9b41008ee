package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/tmdb"
	"movie-catalog/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func inceptionProvider() *fakeProvider {
	return &fakeProvider{
		candidates: []tmdb.Candidate{
			{ID: 27205, Title: "Inception", ReleaseDate: "2010-07-15"},
			{ID: 64956, Title: "Inception: The Cobol Job", ReleaseDate: "2010-12-07"},
		},
		details: map[int64]*tmdb.Details{
			27205: {Title: "Inception", Year: 2010, Description: "Dreams.", PosterPath: "/inception.jpg"},
			64956: {Title: "Inception: The Cobol Job", Year: 2010, Description: "Prequel comic.", PosterPath: ""},
		},
	}
}

func TestSearchCandidates(t *testing.T) {
	provider := inceptionProvider()
	svc := newTestServices(newMemoryMovieRepo(), provider)

	candidates, err := svc.AddMovie.SearchCandidates(context.Background(), "  Inception ")
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, int64(27205), candidates[0].ExternalID)
	assert.Equal(t, "Inception", candidates[0].Title)
	assert.Equal(t, "2010-07-15", candidates[0].ReleaseDate)
}

func TestSearchCandidatesRequiresQuery(t *testing.T) {
	provider := inceptionProvider()
	svc := newTestServices(newMemoryMovieRepo(), provider)

	_, err := svc.AddMovie.SearchCandidates(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, provider.searchCalls)
}

func TestSearchCandidatesUpstreamFailure(t *testing.T) {
	repo := newMemoryMovieRepo()
	provider := &fakeProvider{searchErr: fmt.Errorf("%w: dial tcp: refused", tmdb.ErrUpstream)}

	_, err := newTestServices(repo, provider).AddMovie.SearchCandidates(context.Background(), "Inception")
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Empty(t, repo.rows)
}

func TestAddCandidateCreatesUnratedEntry(t *testing.T) {
	repo := newMemoryMovieRepo()
	svc := newTestServices(repo, inceptionProvider())

	added, err := svc.AddMovie.AddCandidate(context.Background(), 27205)
	require.NoError(t, err)

	assert.Equal(t, "Inception", added.Movie.Title)
	assert.Equal(t, 2010, added.Movie.Year)
	assert.Equal(t, "Dreams.", added.Movie.Description)
	assert.Equal(t, "https://image.example/w500/inception.jpg", added.Movie.ImageURL)
	assert.Equal(t, 0.0, added.Movie.Rating)
	assert.Equal(t, 0, added.Movie.Ranking)
	assert.Equal(t, "n/a", added.Movie.Review)
	assert.Equal(t, fmt.Sprintf("/api/movies/%d/rating", added.Movie.ID), added.Next)

	require.Len(t, repo.rows, 1)
	_, err = svc.Rating.SubmitRating(context.Background(), added.Movie.ID, "9", "mind-bending")
	require.NoError(t, err)
}

func TestAddCandidateDuplicateTitle(t *testing.T) {
	repo := newMemoryMovieRepo()
	svc := newTestServices(repo, inceptionProvider())
	ctx := context.Background()

	first, err := svc.AddMovie.AddCandidate(ctx, 27205)
	require.NoError(t, err)
	_, err = svc.Rating.SubmitRating(ctx, first.Movie.ID, "9", "keep me")
	require.NoError(t, err)

	_, err = svc.AddMovie.AddCandidate(ctx, 27205)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateTitle)

	require.Len(t, repo.rows, 1, "count unchanged after rejected insert")
	stored := repo.rows[first.Movie.ID]
	assert.Equal(t, 9.0, stored.Rating, "existing entry not overwritten")
	assert.Equal(t, "keep me", stored.Review)
}

func TestAddCandidateFailuresLeaveNoRecord(t *testing.T) {
	tests := []struct {
		name       string
		detailsErr error
		externalID int64
		wantErr    error
	}{
		{
			name:       "upstream down",
			detailsErr: fmt.Errorf("%w: timeout", tmdb.ErrUpstream),
			externalID: 27205,
			wantErr:    ErrUpstream,
		},
		{
			name:       "missing release date",
			detailsErr: fmt.Errorf("%w: no release_date", tmdb.ErrMalformedResponse),
			externalID: 27205,
			wantErr:    ErrMalformedResponse,
		},
		{
			name:       "unknown external id",
			externalID: 1,
			wantErr:    ErrUpstream,
		},
		{
			name:       "invalid external id",
			externalID: 0,
			wantErr:    ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryMovieRepo()
			provider := inceptionProvider()
			provider.detailsErr = tt.detailsErr

			_, err := newTestServices(repo, provider).AddMovie.AddCandidate(context.Background(), tt.externalID)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.rows)
		})
	}
}

func TestAddCandidateIgnoresCallerCancellation(t *testing.T) {
	repo := newMemoryMovieRepo()
	provider := inceptionProvider()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestServices(repo, provider).AddMovie.AddCandidate(ctx, 27205)
	require.NoError(t, err)
	assert.False(t, provider.sawCanceled)
	assert.Len(t, repo.rows, 1)
}

// TestAddMovieEndToEnd runs search, select and rate against a fake TMDB server.
func TestAddMovieEndToEnd(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/3/search/movie", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer e2e-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"id": 27205, "original_title": r.URL.Query().Get("query"), "release_date": "2010-07-15"},
			},
		})
	})
	mux.HandleFunc("/3/movie/27205", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"original_title": "Inception",
			"release_date":   "2010-07-15",
			"overview":       "A thief who steals corporate secrets through dream-sharing.",
			"poster_path":    "/9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg",
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client, err := tmdb.NewClient(utils.MovieAPIConfig{
		AccessToken: "e2e-token",
		SearchURL:   server.URL + "/3/search/movie",
		DetailsURL:  server.URL + "/3/movie",
		ImageURL:    "https://image.tmdb.org/t/p/w500",
	}, zap.NewNop())
	require.NoError(t, err)

	repo := newMemoryMovieRepo()
	svc := newTestServices(repo, client)
	ctx := context.Background()

	candidates, err := svc.AddMovie.SearchCandidates(ctx, "Inception")
	require.NoError(t, err)
	require.NotEmpty(t, candidates)

	added, err := svc.AddMovie.AddCandidate(ctx, candidates[0].ExternalID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, added.Movie.Rating)
	assert.Equal(t, 0, added.Movie.Ranking)
	assert.Equal(t, "n/a", added.Movie.Review)
	assert.Equal(t, 2010, added.Movie.Year)
	assert.NotEmpty(t, added.Movie.Description)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg", added.Movie.ImageURL)

	rated, err := svc.Rating.SubmitRating(ctx, added.Movie.ID, "8.8", "great")
	require.NoError(t, err)
	assert.Equal(t, 8.8, rated.Rating)

	_, err = svc.AddMovie.AddCandidate(ctx, 27205)
	assert.True(t, errors.Is(err, ErrDuplicateTitle))
}

func TestRejectedTokenLoggedAsError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantError int
	}{
		{"unauthorized", &tmdb.APIError{StatusCode: http.StatusUnauthorized, Body: "Invalid API key"}, 1},
		{"forbidden", &tmdb.APIError{StatusCode: http.StatusForbidden}, 1},
		{"server error", &tmdb.APIError{StatusCode: http.StatusInternalServerError}, 0},
		{"transport", fmt.Errorf("%w: connection refused", tmdb.ErrUpstream), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.ErrorLevel)
			provider := &fakeProvider{searchErr: tt.err, detailsErr: tt.err}
			svc := NewAddMovieService(&repository.Repository{Movie: newMemoryMovieRepo()}, provider, zap.New(core))

			_, err := svc.SearchCandidates(context.Background(), "Inception")
			assert.ErrorIs(t, err, ErrUpstream)
			_, err = svc.AddCandidate(context.Background(), 27205)
			assert.ErrorIs(t, err, ErrUpstream)

			assert.Equal(t, 2*tt.wantError, logs.FilterMessage("TMDB rejected the access token").Len())
		})
	}
}
