package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kencar17/simple-blog-api/internal/api/shared"
	"github.com/kencar17/simple-blog-api/internal/domain"
	"github.com/kencar17/simple-blog-api/internal/store"
)

// Client-facing messages for store-level failures.
const (
	deleteFailedMessage   = "Delete Failed"
	deleteProtectedDetail = "This instance is referenced by other records and cannot be deleted."
	unknownObjectMessage  = "Object with this id does not exist."

	accountNameExistsMessage  = "account with this account name already exists."
	usernameExistsMessage     = "A user with that email already exists."
	categoryNameExistsMessage = "category with this name already exists."
	tagNameExistsMessage      = "tag with this name already exists."
)

// fkConstraintFields attributes a foreign key violation to the request
// field whose id failed to resolve. Keys are the schema's constraint
// names.
var fkConstraintFields = map[string]string{
	"users_account_id_fkey":                 "account",
	"blog_posts_account_id_fkey":            "account",
	"blog_posts_author_id_fkey":             "author",
	"blog_post_categories_category_id_fkey": "categories",
	"blog_post_tags_tag_id_fkey":            "tags",
	"categories_parent_id_fkey":             "parent",
	"comments_blog_post_id_fkey":            "blog",
	"comments_author_id_fkey":               "author",
	"comments_parent_id_fkey":               "parent",
}

// respondStoreError maps a store error into the envelope. Lookup misses
// become the fixed "Not found." failure, uniqueness and reference
// violations become field errors, protected deletes become the fixed
// delete failure, and anything else is an internal error.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case store.IsNotFoundError(err):
		shared.RespondWithNotFound(w, r)

	case errors.Is(err, store.ErrAccountNameExists):
		shared.RespondWithFieldErrors(w, r, map[string][]string{
			"account_name": {accountNameExistsMessage},
		})

	case errors.Is(err, store.ErrUsernameExists):
		shared.RespondWithFieldErrors(w, r, map[string][]string{
			"username": {usernameExistsMessage},
		})

	case errors.Is(err, store.ErrCategoryNameExists):
		shared.RespondWithFieldErrors(w, r, map[string][]string{
			"name": {categoryNameExistsMessage},
		})

	case errors.Is(err, store.ErrTagNameExists):
		shared.RespondWithFieldErrors(w, r, map[string][]string{
			"name": {tagNameExistsMessage},
		})

	case errors.Is(err, store.ErrDeleteProtected):
		shared.RespondWithFailure(w, r, deleteFailedMessage, []string{deleteProtectedDetail})

	case errors.Is(err, store.ErrInvalidEntity):
		shared.RespondWithFieldErrors(w, r, map[string][]string{
			foreignKeyField(err): {unknownObjectMessage},
		})

	default:
		shared.RespondWithInternalError(w, r, err)
	}
}

// domainFieldErrors maps an entity validation failure to the request
// field it belongs to. The partial-update path needs this: there is no
// payload struct to run tag validation against, so the entity's own
// invariants are the source of truth.
func domainFieldErrors(err error) (map[string][]string, bool) {
	fieldError := func(field, message string) (map[string][]string, bool) {
		return map[string][]string{field: {message}}, true
	}

	switch {
	case errors.Is(err, domain.ErrEmptyAccountName):
		return fieldError("account_name", "This field may not be blank.")
	case errors.Is(err, domain.ErrEmptyContactEmail):
		return fieldError("contact_email", "This field may not be blank.")
	case errors.Is(err, domain.ErrInvalidContactEmail):
		return fieldError("contact_email", "Enter a valid email address.")
	case errors.Is(err, domain.ErrEmptyUsername):
		return fieldError("username", "This field may not be blank.")
	case errors.Is(err, domain.ErrInvalidUsername):
		return fieldError("username", "Enter a valid email address.")
	case errors.Is(err, domain.ErrSuperuserNotStaff):
		return fieldError("is_superuser", "Superusers must also be staff.")
	case errors.Is(err, domain.ErrEmptyPostTitle):
		return fieldError("title", "This field may not be blank.")
	case errors.Is(err, domain.ErrInvalidPostStatus):
		return fieldError("status", "Not a valid choice.")
	case errors.Is(err, domain.ErrEmptyCategoryName):
		return fieldError("name", "This field may not be blank.")
	case errors.Is(err, domain.ErrEmptyTagName):
		return fieldError("name", "This field may not be blank.")
	case errors.Is(err, domain.ErrEmptyCommentContent):
		return fieldError("content", "This field may not be blank.")
	case errors.Is(err, domain.ErrCommentTooLong):
		return fieldError("content",
			fmt.Sprintf("Ensure this field has no more than %d characters.", domain.MaxCommentLength))
	default:
		return nil, false
	}
}

// respondEntityError handles an error from a persist call, attributing
// entity validation failures to fields before falling back to the store
// mapping. Every domain sentinel wraps domain.ErrValidation, so the
// field table is only consulted for actual validation failures.
func respondEntityError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrValidation) {
		if fieldErrors, ok := domainFieldErrors(err); ok {
			shared.RespondWithFieldErrors(w, r, fieldErrors)
			return
		}
	}
	respondStoreError(w, r, err)
}

// foreignKeyField resolves the request field behind a foreign key
// violation, falling back to the non-field bucket for constraints the
// table does not know.
func foreignKeyField(err error) string {
	var fkErr *store.ForeignKeyError
	if errors.As(err, &fkErr) {
		if field, ok := fkConstraintFields[fkErr.Constraint]; ok {
			return field
		}
	}
	return "non_field_errors"
}
