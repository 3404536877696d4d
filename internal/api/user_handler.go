package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/kencar17/simple-blog-api/internal/api/shared"
	"github.com/kencar17/simple-blog-api/internal/domain"
	"github.com/kencar17/simple-blog-api/internal/platform/logger"
	"github.com/kencar17/simple-blog-api/internal/service/auth"
	"github.com/kencar17/simple-blog-api/internal/service/password"
	"github.com/kencar17/simple-blog-api/internal/store"
)

const (
	userDeactivatedMessage    = "User has been deactivated."
	passwordChangedMessage    = "User password has been changed."
	passwordChangeFailMessage = "Password Change Failed"
)

// UserHandler implements the user endpoints, including the password
// change operation.
type UserHandler struct {
	userStore      store.UserStore
	passwordHasher auth.PasswordHasher
	passwordPolicy *password.Policy
	logger         *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
// If logger is nil, a default logger will be used.
func NewUserHandler(
	userStore store.UserStore,
	passwordHasher auth.PasswordHasher,
	log *slog.Logger,
) *UserHandler {
	if log == nil {
		log = slog.Default()
	}
	return &UserHandler{
		userStore:      userStore,
		passwordHasher: passwordHasher,
		passwordPolicy: password.NewPolicy(),
		logger:         log.With(slog.String("handler", "user")),
	}
}

// List handles GET /api/users.
// Supports the role and status flag filters, name search and pagination.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	pageReq, err := shared.ParsePageRequest(r)
	if err != nil {
		shared.RespondWithFailure(w, r, err.Error(), nil)
		return
	}

	filter := store.UserFilter{
		IsContributor: queryBool(r, "is_contributor"),
		IsEditor:      queryBool(r, "is_editor"),
		IsBlogOwner:   queryBool(r, "is_blog_owner"),
		IsStaff:       queryBool(r, "is_staff"),
		IsSuperuser:   queryBool(r, "is_superuser"),
		IsActive:      queryBool(r, "is_active"),
	}

	opts := store.ListOptions{
		Search: r.URL.Query().Get("search"),
		Offset: pageReq.Offset(),
		Limit:  pageReq.PageSize,
	}

	users, total, err := h.userStore.List(r.Context(), filter, opts)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	page, err := shared.NewPage(r, pageReq, total, users)
	if err != nil {
		shared.RespondWithFailure(w, r, err.Error(), nil)
		return
	}

	shared.RespondWithContent(w, r, page)
}

// Create handles POST /api/users.
// The password is generated server-side and stored hashed; the caller
// never sees or supplies it.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateUserRequest
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

	user, err := domain.NewUser(accountID, req.Username)
	if err != nil {
		respondEntityError(w, r, err)
		return
	}
	user.DisplayName = req.DisplayName
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Bio = req.Bio
	user.IsContributor = req.IsContributor
	user.IsEditor = req.IsEditor

	plaintext, err := domain.RandomPassword(domain.GeneratedPasswordLength)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	hashed, err := h.passwordHasher.Hash(plaintext)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}
	user.HashedPassword = hashed

	if err := h.userStore.Create(r.Context(), user); err != nil {
		respondEntityError(w, r, err)
		return
	}

	log.Info("user created",
		slog.String("user_id", user.ID.String()),
		slog.String("account_id", user.AccountID.String()))
	shared.RespondWithContent(w, r, user)
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithNotFound(w, r)
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithContent(w, r, user)
}

// Update handles PUT /api/users/{id}.
// The update is partial: only the keys present in the body are assigned.
// The password is not reachable here; it has its own endpoint.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithNotFound(w, r)
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	values, err := decodeJSONMap(r)
	if err != nil {
		shared.RespondWithFailure(w, r, malformedRequestMessage, nil)
		return
	}

	user.SetValues(values)

	if err := h.userStore.Update(r.Context(), user); err != nil {
		respondEntityError(w, r, err)
		return
	}

	shared.RespondWithContent(w, r, user)
}

// Delete handles DELETE /api/users/{id}.
// Users are soft-deleted: deactivation also strips staff and superuser
// status so a reactivated row comes back unprivileged.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithNotFound(w, r)
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	user.Deactivate()
	if err := h.userStore.Update(r.Context(), user); err != nil {
		respondStoreError(w, r, err)
		return
	}

	log.Info("user deactivated",
		slog.String("user_id", user.ID.String()))
	shared.RespondWithContent(w, r, MessageResponse{Message: userDeactivatedMessage})
}

// ChangePassword handles PUT /api/users/{id}/change_password.
// Both entries must match and satisfy the password policy; every
// violated rule is reported at once under the password key.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithNotFound(w, r)
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	var req ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		shared.RespondWithFailure(w, r, malformedRequestMessage, nil)
		return
	}

	if fieldErrors := validatePayload(&req); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, fieldErrors)
		return
	}

	if violations := h.passwordPolicy.ValidateChange(req.PasswordOne, req.PasswordTwo); len(violations) > 0 {
		shared.RespondWithFailureFields(w, r, passwordChangeFailMessage, map[string][]string{
			"password": violations,
		})
		return
	}

	hashed, err := h.passwordHasher.Hash(req.PasswordOne)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}
	user.HashedPassword = hashed

	if err := h.userStore.Update(r.Context(), user); err != nil {
		respondStoreError(w, r, err)
		return
	}

	log.Info("user password changed",
		slog.String("user_id", user.ID.String()))
	shared.RespondWithContent(w, r, MessageResponse{Message: passwordChangedMessage})
}
