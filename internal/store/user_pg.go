package store

import (
	"context"
	"errors"
	"fmt"

	"bookrec/internal/entity"
	"bookrec/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type UserPG struct {
	db *pgxpool.Pool
}

func NewUserPG(db *pgxpool.Pool) *UserPG {
	return &UserPG{db: db}
}

func (r *UserPG) Create(ctx context.Context, user *entity.User) error {
	const query = `
	INSERT INTO users (id, username, password, age_group, gender, reading_frequency, hobbies, interests)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, COALESCE($6, '{}'), COALESCE($7, '{}'))
	RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		user.Username, user.Password, user.AgeGroup, user.Gender, user.ReadingFrequency,
		user.Hobbies, user.Interests,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return usecase.ErrAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

const userColumns = `id, username, password, age_group, gender, reading_frequency, hobbies, interests, favorites, created_at`

func (r *UserPG) GetByUsername(ctx context.Context, username string) (entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 LIMIT 1`
	return r.getOne(ctx, query, username)
}

func (r *UserPG) GetByID(ctx context.Context, id string) (entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id::text = $1 LIMIT 1`
	return r.getOne(ctx, query, id)
}

func (r *UserPG) getOne(ctx context.Context, query string, arg string) (entity.User, error) {
	var user entity.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Password,
		&user.AgeGroup, &user.Gender, &user.ReadingFrequency,
		&user.Hobbies, &user.Interests, &user.Favorites, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, usecase.ErrNotFound
		}
		return entity.User{}, err
	}
	return user, nil
}

// AddFavorite appends bookID to the user's favorites unless it is already
// there, keeping insertion order. The book id is not checked against the books
// table: favorites are weak references.
func (r *UserPG) AddFavorite(ctx context.Context, userID, bookID string) error {
	const query = `
	UPDATE users
	SET favorites = array_append(favorites, $2)
	WHERE id::text = $1 AND NOT ($2 = ANY(favorites))
	`
	if _, err := r.db.Exec(ctx, query, userID, bookID); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

func (r *UserPG) RemoveFavorite(ctx context.Context, userID, bookID string) error {
	const query = `
	UPDATE users
	SET favorites = array_remove(favorites, $2)
	WHERE id::text = $1
	`
	if _, err := r.db.Exec(ctx, query, userID, bookID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}
