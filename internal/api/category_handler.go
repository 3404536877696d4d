package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/kencar17/simple-blog-api/internal/api/shared"
	"github.com/kencar17/simple-blog-api/internal/domain"
	"github.com/kencar17/simple-blog-api/internal/platform/logger"
	"github.com/kencar17/simple-blog-api/internal/store"
)

const categoryDeletedMessage = "category has been deleted."

// CategoryHandler implements the category endpoints. Categories form a
// tree; the serializer nests the parent as an {id, name} reference.
type CategoryHandler struct {
	categoryStore store.CategoryStore
	logger        *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler with the given
// dependencies. If logger is nil, a default logger will be used.
func NewCategoryHandler(categoryStore store.CategoryStore, log *slog.Logger) *CategoryHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CategoryHandler{
		categoryStore: categoryStore,
		logger:        log.With(slog.String("handler", "category")),
	}
}

// List handles GET /api/categories.
// The category query parameter narrows results to the children of that
// category. Supports name and description search plus pagination.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	pageReq, err := shared.ParsePageRequest(r)
	if err != nil {
		shared.RespondWithFailure(w, r, err.Error(), nil)
		return
	}

	filter := store.CategoryFilter{}
	if id, ok := queryUUID(r, "category"); ok {
		filter.ParentID = &id
	}

	opts := store.ListOptions{
		Search: r.URL.Query().Get("search"),
		Offset: pageReq.Offset(),
		Limit:  pageReq.PageSize,
	}

	categories, total, err := h.categoryStore.List(r.Context(), filter, opts)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		resp, err := h.serialize(r.Context(), category)
		if err != nil {
			respondStoreError(w, r, err)
			return
		}
		responses = append(responses, resp)
	}

	page, err := shared.NewPage(r, pageReq, total, responses)
	if err != nil {
		shared.RespondWithFailure(w, r, err.Error(), nil)
		return
	}

	shared.RespondWithContent(w, r, page)
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		shared.RespondWithFailure(w, r, malformedRequestMessage, nil)
		return
	}

	if fieldErrors := validatePayload(&req); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, fieldErrors)
		return
	}

	var parentID *uuid.UUID
	if req.Parent != nil {
		id, err := uuid.Parse(*req.Parent)
		if err != nil {
			shared.RespondWithFieldErrors(w, r, map[string][]string{
				"parent": {"Must be a valid UUID."},
			})
			return
		}
		parentID = &id
	}

	category, err := domain.NewCategory(req.Name, req.Description, parentID)
	if err != nil {
		respondEntityError(w, r, err)
		return
	}

	if err := h.categoryStore.Create(r.Context(), category); err != nil {
		respondEntityError(w, r, err)
		return
	}

	resp, err := h.serialize(r.Context(), category)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	log.Info("category created",
		slog.String("category_id", category.ID.String()))
	shared.RespondWithContent(w, r, resp)
}

// Get handles GET /api/categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithNotFound(w, r)
		return
	}

	category, err := h.categoryStore.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	resp, err := h.serialize(r.Context(), category)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithContent(w, r, resp)
}

// Update handles PUT /api/categories/{id}.
// The update is partial: only the keys present in the body are assigned.
// The slug follows the name on save.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithNotFound(w, r)
		return
	}

	category, err := h.categoryStore.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	values, err := decodeJSONMap(r)
	if err != nil {
		shared.RespondWithFailure(w, r, malformedRequestMessage, nil)
		return
	}

	category.SetValues(values)

	if err := h.categoryStore.Update(r.Context(), category); err != nil {
		respondEntityError(w, r, err)
		return
	}

	resp, err := h.serialize(r.Context(), category)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithContent(w, r, resp)
}

// Delete handles DELETE /api/categories/{id}.
// Categories are hard-deleted, but deletion is refused while
// subcategories or blog posts still reference the category.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithNotFound(w, r)
		return
	}

	if err := h.categoryStore.Delete(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}

	log.Info("category deleted",
		slog.String("category_id", id.String()))
	shared.RespondWithContent(w, r, MessageResponse{Message: categoryDeletedMessage})
}

// serialize builds the category response, resolving the parent reference
// when one is set.
func (h *CategoryHandler) serialize(ctx context.Context, category *domain.Category) (CategoryResponse, error) {
	resp := CategoryResponse{
		ID:          category.ID,
		CreatedDate: category.CreatedDate,
		UpdatedDate: category.UpdatedDate,
		Name:        category.Name,
		Description: category.Description,
		Slug:        category.Slug,
	}

	if category.ParentID != nil {
		parent, err := h.categoryStore.GetByID(ctx, *category.ParentID)
		if err != nil {
			return CategoryResponse{}, err
		}
		resp.Parent = &CategoryRef{ID: parent.ID, Name: parent.Name}
	}

	return resp, nil
}
