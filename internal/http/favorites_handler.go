package http

import (
	"encoding/json"
	"net/http"

	"bookrec/internal/httpx"
	"bookrec/internal/usecase"
)

type FavoritesHandler struct {
	users usecase.UserRepository
	books usecase.BookRepository
}

func NewFavoritesHandler(users usecase.UserRepository, books usecase.BookRepository) *FavoritesHandler {
	return &FavoritesHandler{users: users, books: books}
}

type addFavoriteReq struct {
	BookID string `json:"bookId" validate:"required"`
}

// @Summary Add favorite
// @Description Add a book reference to the caller's favorites; duplicate adds are no-ops
// @Tags favorites
// @Accept json
// @Produce json
// @Security Bearer
// @Param favorite body addFavoriteReq true "Book reference"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httpx.ErrorResponse
// @Router /api/user/favorites [post]
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)

	var req addFavoriteReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	// The book id is not validated against the catalog; favorites are weak
	// references and dangling ids are filtered out on resolution.
	if err := h.users.AddFavorite(r.Context(), userID, req.BookID); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Added to favorites"})
}

// @Summary Remove favorite
// @Description Remove a book reference from the caller's favorites; removing an absent id is a no-op
// @Tags favorites
// @Produce json
// @Security Bearer
// @Param bookId path string true "Book ID"
// @Success 200 {object} map[string]string
// @Router /api/user/favorites/{bookId} [delete]
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	bookID := r.PathValue("bookId")

	if err := h.users.RemoveFavorite(r.Context(), userID, bookID); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Removed from favorites"})
}

// @Summary List favorites
// @Description Resolve the caller's favorite book references to full records
// @Tags favorites
// @Produce json
// @Security Bearer
// @Success 200 {array} entity.Book
// @Router /api/user/favorites [get]
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	books, err := h.books.GetByIDs(r.Context(), user.Favorites)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}
