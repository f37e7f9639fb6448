package usecase

import (
	"context"
	"strings"
	"testing"

	"bookrec/internal/entity"

	"github.com/stretchr/testify/assert"
)

type stubBooks struct {
	BookRepository
	books []entity.Book
}

func (s stubBooks) List(ctx context.Context, limit int) ([]entity.Book, error) {
	if limit > len(s.books) {
		limit = len(s.books)
	}
	return s.books[:limit], nil
}

func (s stubBooks) MatchAny(ctx context.Context, terms []string, limit int) ([]entity.Book, error) {
	matches := []entity.Book{}
	for _, b := range s.books {
		if len(matches) == limit {
			break
		}
		for _, term := range terms {
			term = strings.ToLower(term)
			if strings.Contains(strings.ToLower(b.Category), term) ||
				strings.Contains(strings.ToLower(b.Title), term) {
				matches = append(matches, b)
				break
			}
		}
	}
	return matches, nil
}

func TestRecommendationService(t *testing.T) {
	catalog := []entity.Book{
		{ID: "1", Title: "The Winter King", Category: "Fantasy Epic"},
		{ID: "2", Title: "A Brief History of Time", Category: "Science"},
		{ID: "3", Title: "Emma", Category: "Romance"},
	}
	service := NewRecommendationService(stubBooks{books: catalog})
	ctx := context.Background()

	t.Run("matching interest fills recommended only", func(t *testing.T) {
		recs, err := service.Recommend(ctx, []string{"fantasy"})

		assert.NoError(t, err)
		assert.Len(t, recs.Recommended, 1)
		assert.Equal(t, "The Winter King", recs.Recommended[0].Title)
		assert.Empty(t, recs.Others)
		assert.Equal(t, msgMatched, recs.Message)
	})

	t.Run("title substring counts as a match", func(t *testing.T) {
		recs, err := service.Recommend(ctx, []string{"history"})

		assert.NoError(t, err)
		assert.Len(t, recs.Recommended, 1)
		assert.Equal(t, "A Brief History of Time", recs.Recommended[0].Title)
	})

	t.Run("any of several interests matches", func(t *testing.T) {
		recs, err := service.Recommend(ctx, []string{"Cooking", "Romance"})

		assert.NoError(t, err)
		assert.Len(t, recs.Recommended, 1)
		assert.Equal(t, "Emma", recs.Recommended[0].Title)
	})

	t.Run("no matching interest falls back", func(t *testing.T) {
		recs, err := service.Recommend(ctx, []string{"Gardening"})

		assert.NoError(t, err)
		assert.Empty(t, recs.Recommended)
		assert.Len(t, recs.Others, 3)
		assert.Equal(t, msgNoMatches, recs.Message)
	})

	t.Run("empty interests falls back with its own message", func(t *testing.T) {
		recs, err := service.Recommend(ctx, nil)

		assert.NoError(t, err)
		assert.Empty(t, recs.Recommended)
		assert.Len(t, recs.Others, 3)
		assert.Equal(t, msgNoInterests, recs.Message)
	})
}
