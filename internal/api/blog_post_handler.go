package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/kencar17/simple-blog-api/internal/api/shared"
	"github.com/kencar17/simple-blog-api/internal/domain"
	"github.com/kencar17/simple-blog-api/internal/platform/logger"
	"github.com/kencar17/simple-blog-api/internal/store"
)

const blogPostDeletedMessage = "Blog post has been deleted."

// BlogPostHandler implements the blog post endpoints.
type BlogPostHandler struct {
	blogPostStore store.BlogPostStore
	logger        *slog.Logger
}

// NewBlogPostHandler creates a new BlogPostHandler with the given
// dependencies. If logger is nil, a default logger will be used.
func NewBlogPostHandler(blogPostStore store.BlogPostStore, log *slog.Logger) *BlogPostHandler {
	if log == nil {
		log = slog.Default()
	}
	return &BlogPostHandler{
		blogPostStore: blogPostStore,
		logger:        log.With(slog.String("handler", "blog_post")),
	}
}

// List handles GET /api/blogs.
// Supports status, featured, account and author filters, title and
// excerpt search, an ordering parameter and pagination. List results
// carry the excerpt serializer, not the full content body.
func (h *BlogPostHandler) List(w http.ResponseWriter, r *http.Request) {
	pageReq, err := shared.ParsePageRequest(r)
	if err != nil {
		shared.RespondWithFailure(w, r, err.Error(), nil)
		return
	}

	filter := store.BlogPostFilter{
		IsFeatured: queryBool(r, "is_featured"),
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.PostStatus(raw)
		filter.Status = &status
	}
	if id, ok := queryUUID(r, "account"); ok {
		filter.AccountID = &id
	}
	if id, ok := queryUUID(r, "author"); ok {
		filter.AuthorID = &id
	}

	opts := store.ListOptions{
		Search: r.URL.Query().Get("search"),
		Offset: pageReq.Offset(),
		Limit:  pageReq.PageSize,
	}

	posts, total, err := h.blogPostStore.List(r.Context(), filter, r.URL.Query().Get("ordering"), opts)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	excerpts := make([]BlogPostExcerptResponse, 0, len(posts))
	for _, post := range posts {
		excerpts = append(excerpts, NewBlogPostExcerptResponse(post))
	}

	page, err := shared.NewPage(r, pageReq, total, excerpts)
	if err != nil {
		shared.RespondWithFailure(w, r, err.Error(), nil)
		return
	}

	shared.RespondWithContent(w, r, page)
}

// Create handles POST /api/blogs.
func (h *BlogPostHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateBlogPostRequest
	if err := decodeJSON(r, &req); err != nil {
		shared.RespondWithFailure(w, r, malformedRequestMessage, nil)
		return
	}

	if fieldErrors := validatePayload(&req); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, fieldErrors)
		return
	}

	accountID, err := uuid.Parse(req.Account)
	if err != nil {
		shared.RespondWithFieldErrors(w, r, map[string][]string{
			"account": {"Must be a valid UUID."},
		})
		return
	}
	authorID, err := uuid.Parse(req.Author)
	if err != nil {
		shared.RespondWithFieldErrors(w, r, map[string][]string{
			"author": {"Must be a valid UUID."},
		})
		return
	}

	post, err := domain.NewBlogPost(accountID, authorID, req.Title, domain.PostStatus(req.Status))
	if err != nil {
		respondEntityError(w, r, err)
		return
	}
	post.Excerpt = req.Excerpt
	post.Content = req.Content
	post.IsFeatured = req.IsFeatured
	if post.CategoryIDs, err = parseUUIDs(req.Categories); err != nil {
		shared.RespondWithFieldErrors(w, r, map[string][]string{
			"categories": {"Must be a valid UUID."},
		})
		return
	}
	if post.TagIDs, err = parseUUIDs(req.Tags); err != nil {
		shared.RespondWithFieldErrors(w, r, map[string][]string{
			"tags": {"Must be a valid UUID."},
		})
		return
	}

	if err := h.blogPostStore.Create(r.Context(), post); err != nil {
		respondEntityError(w, r, err)
		return
	}

	log.Info("blog post created",
		slog.String("blog_post_id", post.ID.String()),
		slog.String("account_id", post.AccountID.String()))
	shared.RespondWithContent(w, r, post)
}

// Get handles GET /api/blogs/{id}. The detail serializer includes the
// full content body.
func (h *BlogPostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithNotFound(w, r)
		return
	}

	post, err := h.blogPostStore.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithContent(w, r, post)
}

// Update handles PUT /api/blogs/{id}.
// The update is partial: only the keys present in the body are assigned.
// Category and tag sets, when present, replace the existing links.
func (h *BlogPostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithNotFound(w, r)
		return
	}

	post, err := h.blogPostStore.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	values, err := decodeJSONMap(r)
	if err != nil {
		shared.RespondWithFailure(w, r, malformedRequestMessage, nil)
		return
	}

	post.SetValues(values)

	if err := post.Validate(); err != nil {
		respondEntityError(w, r, err)
		return
	}

	if err := h.blogPostStore.Update(r.Context(), post); err != nil {
		respondEntityError(w, r, err)
		return
	}

	shared.RespondWithContent(w, r, post)
}

// Delete handles DELETE /api/blogs/{id}.
// Blog posts are hard-deleted; their comments go with them.
func (h *BlogPostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithNotFound(w, r)
		return
	}

	if err := h.blogPostStore.Delete(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}

	log.Info("blog post deleted",
		slog.String("blog_post_id", id.String()))
	shared.RespondWithContent(w, r, MessageResponse{Message: blogPostDeletedMessage})
}

// parseUUIDs converts a validated slice of UUID strings.
func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
