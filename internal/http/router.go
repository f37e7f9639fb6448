package http

import (
	"net/http"

	"bookrec/internal/httpx"
)

// NewRouter wires the API routes. Protected routes are wrapped individually so
// the open catalog endpoints stay token-free.
func NewRouter(
	users *UserHandler,
	books *BookHandler,
	ratings *RatingHandler,
	favorites *FavoritesHandler,
	recommendations *RecommendationHandler,
	secret string,
) *http.ServeMux {
	protect := httpx.AuthMiddleware(secret)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", users.Register)
	mux.HandleFunc("POST /api/login", users.Login)

	mux.HandleFunc("GET /api/books", books.List)
	mux.HandleFunc("GET /api/books/search", books.Search)
	mux.HandleFunc("GET /api/books/{id}", books.GetByID)
	mux.HandleFunc("POST /api/books", books.Create)
	mux.Handle("POST /api/books/{id}/rate", protect(http.HandlerFunc(ratings.Rate)))

	mux.Handle("GET /api/recommendations", protect(http.HandlerFunc(recommendations.Recommend)))

	mux.Handle("GET /api/user/favorites", protect(http.HandlerFunc(favorites.List)))
	mux.Handle("POST /api/user/favorites", protect(http.HandlerFunc(favorites.Add)))
	mux.Handle("DELETE /api/user/favorites/{bookId}", protect(http.HandlerFunc(favorites.Remove)))

	return mux
}
