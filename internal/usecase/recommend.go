package usecase

import (
	"context"

	"bookrec/internal/entity"
)

const recommendLimit = 20

const (
	msgNoInterests = "Add interests to your profile to get personalized picks. Here are some books from the catalog."
	msgNoMatches   = "No books matched your interests yet. Here are some books from the catalog."
	msgMatched     = "Books picked for your interests."
)

type Recommendations struct {
	Recommended []entity.Book `json:"recommended"`
	Others      []entity.Book `json:"others"`
	Message     string        `json:"message"`
}

// RecommendationService filters the catalog by the user's interests. This is a
// plain substring match, not a ranking model: a book is recommended when its
// category or title contains any interest, case-insensitively, and results keep
// store-native order.
type RecommendationService struct {
	books BookRepository
}

func NewRecommendationService(books BookRepository) *RecommendationService {
	return &RecommendationService{books: books}
}

func (s *RecommendationService) Recommend(ctx context.Context, interests []string) (Recommendations, error) {
	if len(interests) == 0 {
		return s.fallback(ctx, msgNoInterests)
	}

	matches, err := s.books.MatchAny(ctx, interests, recommendLimit)
	if err != nil {
		return Recommendations{}, err
	}
	if len(matches) == 0 {
		return s.fallback(ctx, msgNoMatches)
	}

	return Recommendations{
		Recommended: matches,
		Others:      []entity.Book{},
		Message:     msgMatched,
	}, nil
}

func (s *RecommendationService) fallback(ctx context.Context, message string) (Recommendations, error) {
	others, err := s.books.List(ctx, recommendLimit)
	if err != nil {
		return Recommendations{}, err
	}
	if others == nil {
		others = []entity.Book{}
	}
	return Recommendations{
		Recommended: []entity.Book{},
		Others:      others,
		Message:     message,
	}, nil
}
