package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookrec/internal/entity"
	"bookrec/internal/httpx"
	"bookrec/internal/usecase"
)

type RatingHandler struct {
	repo usecase.RatingRepository
}

func NewRatingHandler(repo usecase.RatingRepository) *RatingHandler {
	return &RatingHandler{repo: repo}
}

type rateReq struct {
	Rating  int    `json:"rating" validate:"gte=1,lte=5"`
	Comment string `json:"comment"`
}

// @Summary Rate a book
// @Description Create or replace the caller's rating for a book
// @Tags books
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Book ID"
// @Param rating body rateReq true "Rating and optional comment"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/books/{id}/rate [post]
func (h *RatingHandler) Rate(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("id")
	userID := httpx.UserIDFrom(r)
	username := httpx.UsernameFrom(r)

	var req rateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5", details)
		return
	}

	average, ratings, err := h.repo.Upsert(r.Context(), bookID, entity.Rating{
		UserID:   userID,
		Username: username,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidRating):
			httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5", nil)
		case errors.Is(err, usecase.ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"averageRating": average,
		"ratings":       ratings,
	})
}
