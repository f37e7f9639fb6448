package usecase

import (
	"context"

	"bookrec/internal/entity"
)

type BookRepository interface {
	// List returns up to limit books in store-native order.
	List(ctx context.Context, limit int) ([]entity.Book, error)

	// Search matches q as a case-insensitive substring against title, author
	// or category.
	Search(ctx context.Context, q string, limit int) ([]entity.Book, error)

	// MatchAny returns books whose category or title contains any of the given
	// terms, case-insensitively.
	MatchAny(ctx context.Context, terms []string, limit int) ([]entity.Book, error)

	// GetByID returns the book with its embedded ratings, or ErrNotFound.
	GetByID(ctx context.Context, id string) (entity.Book, error)

	// GetByIDs resolves a list of book ids, silently skipping ids that do not
	// resolve. Used for favorites, which may reference deleted books.
	GetByIDs(ctx context.Context, ids []string) ([]entity.Book, error)

	// Create persists a new book and fills in the generated ID and CreatedAt.
	Create(ctx context.Context, b *entity.Book) error
}
