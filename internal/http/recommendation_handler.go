package http

import (
	"net/http"

	"bookrec/internal/httpx"
	"bookrec/internal/usecase"
)

type RecommendationHandler struct {
	users       usecase.UserRepository
	recommender *usecase.RecommendationService
}

func NewRecommendationHandler(users usecase.UserRepository, recommender *usecase.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{users: users, recommender: recommender}
}

// @Summary Get recommendations
// @Description Filter the catalog by the caller's interests, with a fallback listing
// @Tags recommendations
// @Produce json
// @Security Bearer
// @Success 200 {object} usecase.Recommendations
// @Router /api/recommendations [get]
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.GetByID(r.Context(), httpx.UserIDFrom(r))
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	recs, err := h.recommender.Recommend(r.Context(), user.Interests)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, recs)
}
