package store

import (
	"context"
	"errors"
	"fmt"

	"bookrec/internal/entity"
	"bookrec/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type RatingPG struct {
	db *pgxpool.Pool
}

func NewRatingPG(db *pgxpool.Pool) *RatingPG {
	return &RatingPG{db: db}
}

// The existence check doubles as the serialization point: FOR UPDATE takes the
// book-row lock before anything else, so a concurrent rater of the same book
// waits here and the recompute below runs with the prior writer's rating
// already committed and visible. Without the lock up front, READ COMMITTED
// evaluates the AVG subquery on a snapshot taken before blocking on the book
// row, and a concurrent rating is silently dropped from the stored average.
const lockBookSQL = `SELECT true FROM books WHERE id::text = $1 FOR UPDATE`

// The username column is a snapshot from the first rating and is left
// untouched on update.
const upsertRatingSQL = `
	INSERT INTO ratings (book_id, user_id, username, rating, comment, date)
	VALUES ($1, $2, $3, $4, $5, now())
	ON CONFLICT (book_id, user_id)
	DO UPDATE SET rating = EXCLUDED.rating, comment = EXCLUDED.comment, date = now()
	`

const recomputeAverageSQL = `
	UPDATE books
	SET average_rating = COALESCE((SELECT AVG(rating) FROM ratings WHERE book_id::text = $1), 0)
	WHERE id::text = $1
	RETURNING average_rating
	`

const listRatingsSQL = `
	SELECT user_id, username, rating, comment, date
	FROM ratings
	WHERE book_id::text = $1
	ORDER BY date
	`

// Upsert records the rating and recomputes the book's average in one
// transaction, with the book row locked for its duration.
func (r *RatingPG) Upsert(ctx context.Context, bookID string, rating entity.Rating) (float64, []entity.Rating, error) {
	if rating.Rating < 1 || rating.Rating > 5 {
		return 0, nil, usecase.ErrInvalidRating
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("begin rating tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx, lockBookSQL, bookID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil, usecase.ErrNotFound
		}
		return 0, nil, err
	}

	if _, err := tx.Exec(ctx, upsertRatingSQL, bookID, rating.UserID, rating.Username, rating.Rating, rating.Comment); err != nil {
		return 0, nil, fmt.Errorf("upsert rating: %w", err)
	}

	var average float64
	if err := tx.QueryRow(ctx, recomputeAverageSQL, bookID).Scan(&average); err != nil {
		return 0, nil, fmt.Errorf("recompute average: %w", err)
	}

	ratings, err := listRatings(ctx, tx, bookID)
	if err != nil {
		return 0, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, nil, fmt.Errorf("commit rating tx: %w", err)
	}
	return average, ratings, nil
}

func listRatings(ctx context.Context, q querier, bookID string) ([]entity.Rating, error) {
	rows, err := q.Query(ctx, listRatingsSQL, bookID)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer rows.Close()

	ratings := []entity.Rating{}
	for rows.Next() {
		var rt entity.Rating
		if err := rows.Scan(&rt.UserID, &rt.Username, &rt.Rating, &rt.Comment, &rt.Date); err != nil {
			return nil, err
		}
		ratings = append(ratings, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ratings, nil
}
