package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookrec/internal/entity"
	"bookrec/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

const bookColumns = `id, title, author, category, description, cover_url, publisher, published_date, page_count, added_by, average_rating, created_at`

func (r *BookPG) List(ctx context.Context, limit int) ([]entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY created_at DESC LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *BookPG) Search(ctx context.Context, q string, limit int) ([]entity.Book, error) {
	query := `
	SELECT ` + bookColumns + `
	FROM books
	WHERE title ILIKE $1 OR author ILIKE $1 OR category ILIKE $1
	ORDER BY created_at DESC
	LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, "%"+escapeLike(q)+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	defer rows.Close()
	return scanBooks(rows)
}

// MatchAny builds one ILIKE clause pair per term, ORed together, so a book
// matches when its category or title contains any of the terms.
func (r *BookPG) MatchAny(ctx context.Context, terms []string, limit int) ([]entity.Book, error) {
	if len(terms) == 0 {
		return []entity.Book{}, nil
	}

	clauses := make([]string, 0, len(terms))
	args := make([]any, 0, len(terms)+1)
	for i, term := range terms {
		clauses = append(clauses, fmt.Sprintf("(category ILIKE $%d OR title ILIKE $%d)", i+1, i+1))
		args = append(args, "%"+escapeLike(term)+"%")
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
	SELECT `+bookColumns+`
	FROM books
	WHERE %s
	ORDER BY created_at DESC
	LIMIT $%d
	`, strings.Join(clauses, " OR "), len(terms)+1)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("match books: %w", err)
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *BookPG) GetByID(ctx context.Context, id string) (entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id::text = $1 LIMIT 1`
	var b entity.Book
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.Category, &b.Description, &b.CoverURL,
		&b.Publisher, &b.PublishedDate, &b.PageCount, &b.AddedBy, &b.AverageRating, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, err
	}

	ratings, err := listRatings(ctx, r.db, b.ID)
	if err != nil {
		return entity.Book{}, err
	}
	b.Ratings = ratings
	return b, nil
}

// GetByIDs resolves ids in bulk. Ids that do not match a book, including
// malformed ones, are dropped without error.
func (r *BookPG) GetByIDs(ctx context.Context, ids []string) ([]entity.Book, error) {
	if len(ids) == 0 {
		return []entity.Book{}, nil
	}

	query := `SELECT ` + bookColumns + ` FROM books WHERE id::text = ANY($1)`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve books: %w", err)
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *BookPG) Create(ctx context.Context, b *entity.Book) error {
	if b.Category == "" {
		b.Category = entity.DefaultCategory
	}
	const query = `
	INSERT INTO books (id, title, author, category, description, cover_url, publisher, published_date, page_count, added_by)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		b.Title, b.Author, b.Category, b.Description, b.CoverURL,
		b.Publisher, b.PublishedDate, b.PageCount, b.AddedBy,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

func scanBooks(rows pgx.Rows) ([]entity.Book, error) {
	books := []entity.Book{}
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Category, &b.Description, &b.CoverURL,
			&b.Publisher, &b.PublishedDate, &b.PageCount, &b.AddedBy, &b.AverageRating, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// escapeLike keeps user input from acting as ILIKE wildcards.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
