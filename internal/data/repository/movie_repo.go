package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// MovieOrder selects the ORDER BY used by FindAll.
type MovieOrder int

// OrderByRatingDesc sorts by rating, highest first; ties keep insertion order.
const OrderByRatingDesc MovieOrder = iota

func (o MovieOrder) clause() string {
	return "rating DESC, id ASC"
}

type MovieRepository interface {
	// CRUD Movie
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int64) error
	FindAll(ctx context.Context, order MovieOrder) ([]*entity.Movie, error)

	// UpdateRankings writes the given id -> ranking pairs in one transaction.
	// Ids that no longer exist are skipped.
	UpdateRankings(ctx context.Context, rankings map[int64]int) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `id, title, year, description, rating, ranking, review, image_url, created_at, updated_at`

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Year,
		&movie.Description,
		&movie.Rating,
		&movie.Ranking,
		&movie.Review,
		&movie.ImageURL,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// Create inserts the movie and fills in the id and timestamps assigned by the database.
func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (title, year, description, rating, ranking, review, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.Year,
		movie.Description,
		movie.Rating,
		movie.Ranking,
		movie.Review,
		movie.ImageURL,
	).Scan(&movie.ID, &movie.CreatedAt, &movie.UpdatedAt)

	if isUniqueViolation(err) {
		r.log.Warn("Duplicate movie title", zap.String("title", movie.Title))
		return fmt.Errorf("create movie %q: %w", movie.Title, ErrDuplicateTitle)
	}
	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("failed to create movie: %w", err)
	}

	r.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)
	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("find movie %d: %w", id, ErrMovieNotFound)
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, order MovieOrder) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY ` + order.clause()

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}
	defer rows.Close()

	movies := make([]*entity.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Movies found", zap.Int("count", len(movies)))

	return movies, nil
}

// Update overwrites every mutable column of the movie; id and created_at never change.
func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, year = $3, description = $4, rating = $5,
		    ranking = $6, review = $7, image_url = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		movie.ID,
		movie.Title,
		movie.Year,
		movie.Description,
		movie.Rating,
		movie.Ranking,
		movie.Review,
		movie.ImageURL,
	).Scan(&movie.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("update movie %d: %w", movie.ID, ErrMovieNotFound)
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("update movie %d: %w", movie.ID, ErrDuplicateTitle)
	}
	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return fmt.Errorf("failed to update movie: %w", err)
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete movie %d: %w", id, ErrMovieNotFound)
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}

func (r *movieRepository) UpdateRankings(ctx context.Context, rankings map[int64]int) error {
	if len(rankings) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(rankings))
	for id := range rankings {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin ranking transaction", zap.Error(err))
		return fmt.Errorf("begin ranking update: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `UPDATE movies SET ranking = $2, updated_at = NOW() WHERE id = $1`
	written := 0
	for _, id := range ids {
		result, err := tx.Exec(ctx, query, id, rankings[id])
		if err != nil {
			r.log.Error("Failed to update ranking",
				zap.Error(err),
				zap.Int64("movie_id", id),
				zap.Int("ranking", rankings[id]),
			)
			return fmt.Errorf("update ranking of movie %d: %w", id, err)
		}
		if result.RowsAffected() == 0 {
			r.log.Debug("Ranking skipped, movie deleted", zap.Int64("movie_id", id))
			continue
		}
		written++
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit ranking update", zap.Error(err))
		return fmt.Errorf("commit ranking update: %w", err)
	}

	r.log.Debug("Rankings updated", zap.Int("count", written))
	return nil
}
