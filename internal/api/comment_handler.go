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

const (
	commentDeletedMessage = "Comment has been deleted."

	commentGetFailedMessage = "Get Failed"
	blogParamRequiredDetail = `"blog" id is required param.`
	userParamRequiredDetail = `"user" id is required param.`
)

// CommentHandler implements the comment endpoints. Comment lists are
// always scoped, either to a blog post or to an author; there is no
// unscoped collection.
type CommentHandler struct {
	commentStore store.CommentStore
	logger       *slog.Logger
}

// NewCommentHandler creates a new CommentHandler with the given
// dependencies. If logger is nil, a default logger will be used.
func NewCommentHandler(commentStore store.CommentStore, log *slog.Logger) *CommentHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CommentHandler{
		commentStore: commentStore,
		logger:       log.With(slog.String("handler", "comment")),
	}
}

// ListByBlog handles GET /api/comments.
// The blog query parameter is required; without it the request fails
// rather than listing everything.
func (h *CommentHandler) ListByBlog(w http.ResponseWriter, r *http.Request) {
	blogID, ok := queryUUID(r, "blog")
	if !ok {
		shared.RespondWithFailure(w, r, commentGetFailedMessage, []string{blogParamRequiredDetail})
		return
	}

	h.list(w, r, func(ctx context.Context, opts store.ListOptions) ([]*domain.Comment, int, error) {
		return h.commentStore.ListByBlog(ctx, blogID, opts)
	})
}

// ListByUser handles GET /api/comments/user.
// The user query parameter is required.
func (h *CommentHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryUUID(r, "user")
	if !ok {
		shared.RespondWithFailure(w, r, commentGetFailedMessage, []string{userParamRequiredDetail})
		return
	}

	h.list(w, r, func(ctx context.Context, opts store.ListOptions) ([]*domain.Comment, int, error) {
		return h.commentStore.ListByAuthor(ctx, userID, opts)
	})
}

// list runs the shared paginate-and-serialize flow over the given scoped
// query.
func (h *CommentHandler) list(
	w http.ResponseWriter,
	r *http.Request,
	query func(ctx context.Context, opts store.ListOptions) ([]*domain.Comment, int, error),
) {
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

	comments, total, err := query(r.Context(), opts)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	responses := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		resp, err := h.serialize(r.Context(), comment)
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

// Create handles POST /api/comments.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		shared.RespondWithFailure(w, r, malformedRequestMessage, nil)
		return
	}

	if fieldErrors := validatePayload(&req); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, fieldErrors)
		return
	}

	blogID, err := uuid.Parse(req.Blog)
	if err != nil {
		shared.RespondWithFieldErrors(w, r, map[string][]string{
			"blog": {"Must be a valid UUID."},
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

	comment, err := domain.NewComment(blogID, authorID, parentID, req.Content)
	if err != nil {
		respondEntityError(w, r, err)
		return
	}

	if err := h.commentStore.Create(r.Context(), comment); err != nil {
		respondEntityError(w, r, err)
		return
	}

	resp, err := h.serialize(r.Context(), comment)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	log.Info("comment created",
		slog.String("comment_id", comment.ID.String()),
		slog.String("blog_post_id", comment.BlogID.String()))
	shared.RespondWithContent(w, r, resp)
}

// Get handles GET /api/comments/view/{id}.
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithNotFound(w, r)
		return
	}

	comment, err := h.commentStore.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	resp, err := h.serialize(r.Context(), comment)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithContent(w, r, resp)
}

// Update handles PUT /api/comments/view/{id}.
// The update is partial: only the keys present in the body are assigned.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithNotFound(w, r)
		return
	}

	comment, err := h.commentStore.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	values, err := decodeJSONMap(r)
	if err != nil {
		shared.RespondWithFailure(w, r, malformedRequestMessage, nil)
		return
	}

	comment.SetValues(values)

	if err := comment.Validate(); err != nil {
		respondEntityError(w, r, err)
		return
	}

	if err := h.commentStore.Update(r.Context(), comment); err != nil {
		respondEntityError(w, r, err)
		return
	}

	resp, err := h.serialize(r.Context(), comment)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithContent(w, r, resp)
}

// Delete handles DELETE /api/comments/view/{id}.
// Comments are hard-deleted; replies go with them.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithNotFound(w, r)
		return
	}

	if err := h.commentStore.Delete(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}

	log.Info("comment deleted",
		slog.String("comment_id", id.String()))
	shared.RespondWithContent(w, r, MessageResponse{Message: commentDeletedMessage})
}

// serialize builds the comment response with its reply tree resolved
// recursively, oldest reply first.
func (h *CommentHandler) serialize(ctx context.Context, comment *domain.Comment) (CommentResponse, error) {
	children, err := h.commentStore.ListChildren(ctx, comment.ID)
	if err != nil {
		return CommentResponse{}, err
	}

	childResponses := make([]CommentResponse, 0, len(children))
	for _, child := range children {
		resp, err := h.serialize(ctx, child)
		if err != nil {
			return CommentResponse{}, err
		}
		childResponses = append(childResponses, resp)
	}

	return CommentResponse{
		ID:          comment.ID,
		CreatedDate: comment.CreatedDate,
		BlogID:      comment.BlogID,
		AuthorID:    comment.AuthorID,
		ParentID:    comment.ParentID,
		Content:     comment.Content,
		Children:    childResponses,
	}, nil
}
