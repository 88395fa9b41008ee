package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/tmdb"
)

// memoryMovieRepo mirrors the Postgres repository contract: unique titles,
// store-assigned ids, and copies in and out so callers never share rows.
type memoryMovieRepo struct {
	rows          map[int64]entity.Movie
	nextID        int64
	rankingWrites []map[int64]int
	updates       int
	failFindAll   error
	afterFindAll  func()
}

func newMemoryMovieRepo() *memoryMovieRepo {
	return &memoryMovieRepo{rows: make(map[int64]entity.Movie), nextID: 1}
}

func (r *memoryMovieRepo) Create(_ context.Context, movie *entity.Movie) error {
	for _, row := range r.rows {
		if row.Title == movie.Title {
			return fmt.Errorf("create movie %q: %w", movie.Title, repository.ErrDuplicateTitle)
		}
	}
	now := time.Now()
	movie.ID = r.nextID
	movie.CreatedAt, movie.UpdatedAt = now, now
	r.nextID++
	r.rows[movie.ID] = *movie
	return nil
}

func (r *memoryMovieRepo) FindByID(_ context.Context, id int64) (*entity.Movie, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, fmt.Errorf("find movie %d: %w", id, repository.ErrMovieNotFound)
	}
	return &row, nil
}

func (r *memoryMovieRepo) Update(_ context.Context, movie *entity.Movie) error {
	if _, ok := r.rows[movie.ID]; !ok {
		return fmt.Errorf("update movie %d: %w", movie.ID, repository.ErrMovieNotFound)
	}
	for id, row := range r.rows {
		if id != movie.ID && row.Title == movie.Title {
			return fmt.Errorf("update movie %d: %w", movie.ID, repository.ErrDuplicateTitle)
		}
	}
	movie.UpdatedAt = time.Now()
	r.rows[movie.ID] = *movie
	r.updates++
	return nil
}

func (r *memoryMovieRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return fmt.Errorf("delete movie %d: %w", id, repository.ErrMovieNotFound)
	}
	delete(r.rows, id)
	return nil
}

func (r *memoryMovieRepo) FindAll(_ context.Context, _ repository.MovieOrder) ([]*entity.Movie, error) {
	if r.failFindAll != nil {
		return nil, r.failFindAll
	}
	movies := make([]*entity.Movie, 0, len(r.rows))
	for _, row := range r.rows {
		row := row
		movies = append(movies, &row)
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })

	sort.SliceStable(movies, func(i, j int) bool { return movies[i].Rating > movies[j].Rating })
	if r.afterFindAll != nil {
		r.afterFindAll()
	}
	return movies, nil
}

func (r *memoryMovieRepo) UpdateRankings(_ context.Context, rankings map[int64]int) error {
	write := make(map[int64]int, len(rankings))
	for id, rank := range rankings {
		row, ok := r.rows[id]
		if !ok {
			continue
		}
		row.Ranking = rank
		r.rows[id] = row
		write[id] = rank
	}
	r.rankingWrites = append(r.rankingWrites, write)
	return nil
}

func (r *memoryMovieRepo) seed(title string, rating float64) int64 {
	movie := entity.NewMovie(title, 2000, title+" description", "https://img/"+title)
	movie.Rating = rating
	if err := r.Create(context.Background(), movie); err != nil {
		panic(err)
	}
	return movie.ID
}

// fakeProvider serves canned search results and details keyed by external id.
type fakeProvider struct {
	candidates  []tmdb.Candidate
	details     map[int64]*tmdb.Details
	searchErr   error
	detailsErr  error
	searchCalls int
	detailCalls int
	sawCanceled bool
}

func (p *fakeProvider) SearchTitles(ctx context.Context, query string) ([]tmdb.Candidate, error) {
	p.searchCalls++
	if p.searchErr != nil {
		return nil, p.searchErr
	}
	return p.candidates, nil
}

func (p *fakeProvider) FetchDetails(ctx context.Context, externalID int64) (*tmdb.Details, error) {
	p.detailCalls++
	if ctx.Err() != nil {
		p.sawCanceled = true
	}
	if p.detailsErr != nil {
		return nil, p.detailsErr
	}
	d, ok := p.details[externalID]
	if !ok {
		return nil, &tmdb.APIError{StatusCode: 404, Body: "not found"}
	}
	return d, nil
}

func (p *fakeProvider) PosterURL(posterPath string) string {
	if posterPath == "" {
		return ""
	}
	return "https://image.example/w500" + posterPath
}
