package usecase

import (
	"context"

	"bookrec/internal/entity"
)

type RatingRepository interface {
	// Upsert records the user's rating for a book, replacing any previous one
	// (rating, comment and date change; the username snapshot does not), then
	// recomputes the book's average rating in the same transaction. Returns
	// the new average and the full rating list, or ErrNotFound when the book
	// does not exist.
	Upsert(ctx context.Context, bookID string, r entity.Rating) (float64, []entity.Rating, error)
}
