package api

import (
	"log/slog"
	"net/http"

	"github.com/kencar17/simple-blog-api/internal/api/shared"
	"github.com/kencar17/simple-blog-api/internal/domain"
	"github.com/kencar17/simple-blog-api/internal/platform/logger"
	"github.com/kencar17/simple-blog-api/internal/store"
)

// accountDeactivatedMessage is the destroy confirmation for accounts,
// which are soft-deleted.
const accountDeactivatedMessage = "Account has been deactivated."

// AccountHandler implements the account endpoints.
type AccountHandler struct {
	accountStore store.AccountStore
	logger       *slog.Logger
}

// NewAccountHandler creates a new AccountHandler with the given
// dependencies. If logger is nil, a default logger will be used.
func NewAccountHandler(accountStore store.AccountStore, log *slog.Logger) *AccountHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AccountHandler{
		accountStore: accountStore,
		logger:       log.With(slog.String("handler", "account")),
	}
}

// List handles GET /api/accounts.
// Supports search over account name, bio and contact email, plus
// pagination.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
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

	accounts, total, err := h.accountStore.List(r.Context(), opts)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	page, err := shared.NewPage(r, pageReq, total, accounts)
	if err != nil {
		shared.RespondWithFailure(w, r, err.Error(), nil)
		return
	}

	shared.RespondWithContent(w, r, page)
}

// Create handles POST /api/accounts.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		shared.RespondWithFailure(w, r, malformedRequestMessage, nil)
		return
	}

	if fieldErrors := validatePayload(&req); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, fieldErrors)
		return
	}

	account, err := domain.NewAccount(req.AccountName, req.ContactEmail, req.Bio)
	if err != nil {
		respondEntityError(w, r, err)
		return
	}

	if err := h.accountStore.Create(r.Context(), account); err != nil {
		respondEntityError(w, r, err)
		return
	}

	log.Info("account created",
		slog.String("account_id", account.ID.String()))
	shared.RespondWithContent(w, r, account)
}

// Get handles GET /api/accounts/{id}.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithNotFound(w, r)
		return
	}

	account, err := h.accountStore.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithContent(w, r, account)
}

// Update handles PUT /api/accounts/{id}.
// The update is partial: only the keys present in the body are assigned,
// through the entity's field allow-list.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithNotFound(w, r)
		return
	}

	account, err := h.accountStore.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	values, err := decodeJSONMap(r)
	if err != nil {
		shared.RespondWithFailure(w, r, malformedRequestMessage, nil)
		return
	}

	account.SetValues(values)

	if err := h.accountStore.Update(r.Context(), account); err != nil {
		respondEntityError(w, r, err)
		return
	}

	shared.RespondWithContent(w, r, account)
}

// Delete handles DELETE /api/accounts/{id}.
// Accounts are soft-deleted: the row survives with is_active cleared.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithNotFound(w, r)
		return
	}

	account, err := h.accountStore.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	account.Deactivate()
	if err := h.accountStore.Update(r.Context(), account); err != nil {
		respondStoreError(w, r, err)
		return
	}

	log.Info("account deactivated",
		slog.String("account_id", account.ID.String()))
	shared.RespondWithContent(w, r, MessageResponse{Message: accountDeactivatedMessage})
}
