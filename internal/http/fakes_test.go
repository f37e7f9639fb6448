package http

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bookrec/internal/entity"
	"bookrec/internal/usecase"
)

// In-memory stand-ins for the pgx repositories with the same visible
// semantics. When err is set, every call fails with it.

type fakeUserRepo struct {
	users []entity.User
	err   error
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return usecase.ErrAlreadyExists
		}
	}
	u.ID = fmt.Sprintf("user-%d", len(f.users)+1)
	u.CreatedAt = time.Now()
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (entity.User, error) {
	if f.err != nil {
		return entity.User{}, f.err
	}
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return entity.User{}, usecase.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (entity.User, error) {
	if f.err != nil {
		return entity.User{}, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return entity.User{}, usecase.ErrNotFound
}

func (f *fakeUserRepo) AddFavorite(ctx context.Context, userID, bookID string) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.users {
		if f.users[i].ID != userID {
			continue
		}
		for _, fav := range f.users[i].Favorites {
			if fav == bookID {
				return nil
			}
		}
		f.users[i].Favorites = append(f.users[i].Favorites, bookID)
	}
	return nil
}

func (f *fakeUserRepo) RemoveFavorite(ctx context.Context, userID, bookID string) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.users {
		if f.users[i].ID != userID {
			continue
		}
		kept := make([]string, 0, len(f.users[i].Favorites))
		for _, fav := range f.users[i].Favorites {
			if fav != bookID {
				kept = append(kept, fav)
			}
		}
		f.users[i].Favorites = kept
	}
	return nil
}

type fakeBookRepo struct {
	books []entity.Book
	// ratings keyed by book id
	ratings map[string][]entity.Rating
	err     error
}

func newFakeBookRepo(books ...entity.Book) *fakeBookRepo {
	return &fakeBookRepo{books: books, ratings: map[string][]entity.Rating{}}
}

func (f *fakeBookRepo) List(ctx context.Context, limit int) ([]entity.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	books := []entity.Book{}
	for _, b := range f.books {
		if len(books) == limit {
			break
		}
		books = append(books, b)
	}
	return books, nil
}

func (f *fakeBookRepo) Search(ctx context.Context, q string, limit int) ([]entity.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	q = strings.ToLower(q)
	books := []entity.Book{}
	for _, b := range f.books {
		if len(books) == limit {
			break
		}
		if strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q) ||
			strings.Contains(strings.ToLower(b.Category), q) {
			books = append(books, b)
		}
	}
	return books, nil
}

func (f *fakeBookRepo) MatchAny(ctx context.Context, terms []string, limit int) ([]entity.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	books := []entity.Book{}
	for _, b := range f.books {
		if len(books) == limit {
			break
		}
		for _, term := range terms {
			term = strings.ToLower(term)
			if strings.Contains(strings.ToLower(b.Category), term) ||
				strings.Contains(strings.ToLower(b.Title), term) {
				books = append(books, b)
				break
			}
		}
	}
	return books, nil
}

func (f *fakeBookRepo) GetByID(ctx context.Context, id string) (entity.Book, error) {
	if f.err != nil {
		return entity.Book{}, f.err
	}
	for _, b := range f.books {
		if b.ID == id {
			b.Ratings = append([]entity.Rating{}, f.ratings[id]...)
			return b, nil
		}
	}
	return entity.Book{}, usecase.ErrNotFound
}

func (f *fakeBookRepo) GetByIDs(ctx context.Context, ids []string) ([]entity.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	books := []entity.Book{}
	for _, b := range f.books {
		for _, id := range ids {
			if b.ID == id {
				books = append(books, b)
				break
			}
		}
	}
	return books, nil
}

func (f *fakeBookRepo) Create(ctx context.Context, b *entity.Book) error {
	if f.err != nil {
		return f.err
	}
	if b.Category == "" {
		b.Category = entity.DefaultCategory
	}
	b.ID = fmt.Sprintf("book-%d", len(f.books)+1)
	b.CreatedAt = time.Now()
	f.books = append(f.books, *b)
	return nil
}

// Upsert implements usecase.RatingRepository on top of the fake catalog.
func (f *fakeBookRepo) Upsert(ctx context.Context, bookID string, r entity.Rating) (float64, []entity.Rating, error) {
	if f.err != nil {
		return 0, nil, f.err
	}
	if r.Rating < 1 || r.Rating > 5 {
		return 0, nil, usecase.ErrInvalidRating
	}

	bookIdx := -1
	for i, b := range f.books {
		if b.ID == bookID {
			bookIdx = i
			break
		}
	}
	if bookIdx < 0 {
		return 0, nil, usecase.ErrNotFound
	}

	r.Date = time.Now()
	ratings := f.ratings[bookID]
	updated := false
	for i := range ratings {
		if ratings[i].UserID == r.UserID {
			// Username snapshot survives updates.
			r.Username = ratings[i].Username
			ratings[i] = r
			updated = true
			break
		}
	}
	if !updated {
		ratings = append(ratings, r)
	}
	f.ratings[bookID] = ratings

	var sum int
	for _, rt := range ratings {
		sum += rt.Rating
	}
	average := float64(sum) / float64(len(ratings))
	f.books[bookIdx].AverageRating = average

	return average, append([]entity.Rating{}, ratings...), nil
}
