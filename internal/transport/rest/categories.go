package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vocab-backend/internal/domain"
	"github.com/heartmarshall/vocab-backend/internal/service/category"
)

type categoryService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, input category.CreateCategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, input category.UpdateCategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// CategoryHandler serves /api/categories.
type CategoryHandler struct {
	svc  categoryService
	errs errorResponder
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		svc:  svc,
		errs: errorResponder{log: logger.With("handler", "categories"), notFound: "Category not found"},
	}
}

type categoryRequest struct {
	Name        *string `json:"name"`
	Color       *string `json:"color"`
	Description *string `json:"description"`
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	out := make([]categoryResponse, 0, len(cats))
	for i := range cats {
		out = append(out, toCategoryResponse(&cats[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	cat, err := h.svc.GetCategory(r.Context(), id)
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(cat))
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := category.CreateCategoryInput{Color: req.Color, Description: req.Description}
	if req.Name != nil {
		input.Name = *req.Name
	}

	cat, err := h.svc.CreateCategory(r.Context(), input)
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(cat))
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req categoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	cat, err := h.svc.UpdateCategory(r.Context(), category.UpdateCategoryInput{
		ID:          id,
		Name:        req.Name,
		Color:       req.Color,
		Description: req.Description,
	})
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(cat))
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		h.errs.respond(w, r, err)
		return
	}

	writeMessage(w, "Category deleted successfully")
}
