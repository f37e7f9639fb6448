package usecase

import (
	"context"

	"bookrec/internal/entity"
)

type UserRepository interface {
	// Create persists a new user and fills in the generated ID.
	// Returns ErrAlreadyExists when the username is taken.
	Create(ctx context.Context, u *entity.User) error
	GetByUsername(ctx context.Context, username string) (entity.User, error)
	GetByID(ctx context.Context, id string) (entity.User, error)

	// AddFavorite and RemoveFavorite are idempotent: adding a book id that is
	// already present or removing one that is absent is a no-op. Favorites are
	// weak references, so neither call checks that the book exists.
	AddFavorite(ctx context.Context, userID, bookID string) error
	RemoveFavorite(ctx context.Context, userID, bookID string) error
}
