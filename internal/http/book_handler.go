package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"bookrec/internal/entity"
	"bookrec/internal/httpx"
	"bookrec/internal/usecase"
)

const (
	listLimit   = 50
	searchLimit = 20
)

type BookHandler struct {
	repo usecase.BookRepository
}

func NewBookHandler(repo usecase.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

// @Summary List books
// @Description Get catalog entries, up to 50
// @Tags books
// @Produce json
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {array} entity.Book
// @Router /api/books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > listLimit {
		limit = listLimit
	}

	books, err := h.repo.List(r.Context(), limit)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// @Summary Search books
// @Description Case-insensitive substring search across title, author and category
// @Tags books
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} entity.Book
// @Router /api/books/search [get]
func (h *BookHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		// An empty query is an empty result, not a full listing.
		httpx.JSON(w, http.StatusOK, []entity.Book{})
		return
	}

	books, err := h.repo.Search(r.Context(), q, searchLimit)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// @Summary Get book by id
// @Description Get a single book including its ratings
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} entity.Book
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/books/{id} [get]
func (h *BookHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	book, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		// A malformed id cannot match a row either way, so both cases are 404.
		if errors.Is(err, usecase.ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, book)
}

type createBookReq struct {
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	CoverURL      string `json:"coverUrl"`
	Publisher     string `json:"publisher"`
	PublishedDate string `json:"publishedDate"`
	PageCount     int    `json:"pageCount"`
	AddedBy       string `json:"addedBy"`
}

// @Summary Add a book
// @Description Create a user-submitted catalog entry
// @Tags books
// @Accept json
// @Produce json
// @Param book body createBookReq true "Book data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httpx.ErrorResponse
// @Router /api/books [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Author = strings.TrimSpace(req.Author)

	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Title and author are required", details)
		return
	}

	if req.Category == "" {
		req.Category = entity.DefaultCategory
	}
	if req.AddedBy == "" {
		req.AddedBy = "Anonymous"
	}

	book := &entity.Book{
		Title:         req.Title,
		Author:        req.Author,
		Category:      req.Category,
		Description:   req.Description,
		CoverURL:      req.CoverURL,
		Publisher:     req.Publisher,
		PublishedDate: req.PublishedDate,
		PageCount:     req.PageCount,
		AddedBy:       req.AddedBy,
	}
	if err := h.repo.Create(r.Context(), book); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSON(w, http.StatusCreated, map[string]string{"bookId": book.ID})
}
