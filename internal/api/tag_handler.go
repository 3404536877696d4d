package api

import (
	"log/slog"
	"net/http"

	"github.com/kencar17/simple-blog-api/internal/api/shared"
	"github.com/kencar17/simple-blog-api/internal/domain"
	"github.com/kencar17/simple-blog-api/internal/platform/logger"
	"github.com/kencar17/simple-blog-api/internal/store"
)

const tagDeletedMessage = "tag has been deleted."

// TagHandler implements the tag endpoints.
type TagHandler struct {
	tagStore store.TagStore
	logger   *slog.Logger
}

// NewTagHandler creates a new TagHandler with the given dependencies.
// If logger is nil, a default logger will be used.
func NewTagHandler(tagStore store.TagStore, log *slog.Logger) *TagHandler {
	if log == nil {
		log = slog.Default()
	}
	return &TagHandler{
		tagStore: tagStore,
		logger:   log.With(slog.String("handler", "tag")),
	}
}

// List handles GET /api/tags.
// Supports name and description search plus pagination.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	pageReq, err := shared.ParsePageRequest(r)
	if err != nil {
		shared.RespondWithFailure(w, r, err.Error(), nil)
		return
	}

	opts := store.ListOptions{
		Search: r.URL.Query().Get("search"),
		Offset: pageReq.Offset(),
		Limit:  pageReq.PageSize,
	}

	tags, total, err := h.tagStore.List(r.Context(), opts)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	page, err := shared.NewPage(r, pageReq, total, tags)
	if err != nil {
		shared.RespondWithFailure(w, r, err.Error(), nil)
		return
	}

	shared.RespondWithContent(w, r, page)
}

// Create handles POST /api/tags.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTagRequest
	if err := decodeJSON(r, &req); err != nil {
		shared.RespondWithFailure(w, r, malformedRequestMessage, nil)
		return
	}

	if fieldErrors := validatePayload(&req); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, fieldErrors)
		return
	}

	tag, err := domain.NewTag(req.Name, req.Description)
	if err != nil {
		respondEntityError(w, r, err)
		return
	}

	if err := h.tagStore.Create(r.Context(), tag); err != nil {
		respondEntityError(w, r, err)
		return
	}

	log.Info("tag created",
		slog.String("tag_id", tag.ID.String()))
	shared.RespondWithContent(w, r, tag)
}

// Get handles GET /api/tags/{id}.
func (h *TagHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithNotFound(w, r)
		return
	}

	tag, err := h.tagStore.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithContent(w, r, tag)
}

// Update handles PUT /api/tags/{id}.
// The update is partial: only the keys present in the body are assigned.
// The slug follows the name on save.
func (h *TagHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithNotFound(w, r)
		return
	}

	tag, err := h.tagStore.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	values, err := decodeJSONMap(r)
	if err != nil {
		shared.RespondWithFailure(w, r, malformedRequestMessage, nil)
		return
	}

	tag.SetValues(values)

	if err := h.tagStore.Update(r.Context(), tag); err != nil {
		respondEntityError(w, r, err)
		return
	}

	shared.RespondWithContent(w, r, tag)
}

// Delete handles DELETE /api/tags/{id}.
// Tags are hard-deleted, but deletion is refused while blog posts still
// reference the tag.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithNotFound(w, r)
		return
	}

	if err := h.tagStore.Delete(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}

	log.Info("tag deleted",
		slog.String("tag_id", id.String()))
	shared.RespondWithContent(w, r, MessageResponse{Message: tagDeletedMessage})
}
