package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"bookrec/internal/auth"
	"bookrec/internal/entity"
	"bookrec/internal/httpx"
	"bookrec/internal/usecase"
)

type UserHandler struct {
	repo   usecase.UserRepository
	secret string
}

func NewUserHandler(repo usecase.UserRepository, secret string) *UserHandler {
	return &UserHandler{repo: repo, secret: secret}
}

type registerReq struct {
	Username         string   `json:"username" validate:"required,min=3,max=50"`
	Password         string   `json:"password" validate:"required,min=6"`
	AgeGroup         string   `json:"ageGroup"`
	Gender           string   `json:"gender"`
	ReadingFrequency string   `json:"readingFrequency"`
	Hobbies          []string `json:"hobbies"`
	Interests        []string `json:"interests"`
}

// @Summary Register new user
// @Description Create a new user account with profile and interest data
// @Tags users
// @Accept json
// @Produce json
// @Param user body registerReq true "User registration data"
// @Success 201 {object} entity.PublicUser
// @Failure 400 {object} httpx.ErrorResponse
// @Router /api/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	if req.Hobbies == nil {
		req.Hobbies = []string{}
	}
	if req.Interests == nil {
		req.Interests = []string{}
	}

	newUser := &entity.User{
		Username:         req.Username,
		Password:         hashedPassword,
		AgeGroup:         req.AgeGroup,
		Gender:           req.Gender,
		ReadingFrequency: req.ReadingFrequency,
		Hobbies:          req.Hobbies,
		Interests:        req.Interests,
	}
	if err := h.repo.Create(r.Context(), newUser); err != nil {
		if errors.Is(err, usecase.ErrAlreadyExists) {
			httpx.JSONError(w, http.StatusBadRequest, "ALREADY_EXISTS", "Username already taken", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSON(w, http.StatusCreated, newUser.Public())
}

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// @Summary Login user
// @Description Authenticate and receive a session token
// @Tags users
// @Accept json
// @Produce json
// @Param login body loginReq true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} httpx.ErrorResponse
// @Router /api/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	// Unknown username and wrong password produce the same response so the
	// endpoint cannot be used to enumerate accounts.
	user, err := h.repo.GetByUsername(r.Context(), req.Username)
	if err != nil || !auth.VerifyPassword(user.Password, req.Password) {
		if err != nil && !errors.Is(err, usecase.ErrNotFound) {
			httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
			return
		}
		httpx.JSONError(w, http.StatusBadRequest, "INVALID_CREDENTIALS", "Invalid username or password", nil)
		return
	}

	token, err := auth.GenerateToken(h.secret, user.ID, user.Username, auth.TokenTTL)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  user.Public(),
	})
}
