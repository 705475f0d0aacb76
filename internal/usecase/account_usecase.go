// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"roster/internal/domain/entity"
)

// --- Input DTOs ---

// CreateAccountInput defines the data required to register a new account.
// Password is transient plaintext: hashed immediately, never persisted or logged.
type CreateAccountInput struct {
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

// UpdateAccountInput defines the mutable fields of an account. Nickname is
// required. A nil Password means the credential is left untouched; a non-nil
// Password replaces the digest together with the nickname.
type UpdateAccountInput struct {
	Nickname string  `json:"nickname"`
	Password *string `json:"password,omitempty"`
}

// DeleteAccountInput carries the typed password re-authenticating the caller
// before the destructive action.
type DeleteAccountInput struct {
	Password string `json:"password"`
}

// AccountUsecase defines the interface for account-management operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Lookup returns the caller-safe view of the account with the given
	// email, or ErrAccountNotFound.
	Lookup(ctx context.Context, email string) (*entity.AccountView, error)

	// ListAll returns every account. The raw entities (digests included)
	// flow to the transport layer, which owns stripping them; an empty
	// store is reported as ErrAccountNotFound by contract.
	ListAll(ctx context.Context) ([]*entity.Account, error)

	// Create registers a new account after uniqueness and validation
	// checks pass, returning its view.
	Create(ctx context.Context, input CreateAccountInput) (*entity.AccountView, error)

	// Update replaces the nickname, and the password digest when a new
	// password is supplied, of the account with the given email.
	Update(ctx context.Context, email string, input UpdateAccountInput) error

	// Delete removes the account with the given email after verifying the
	// typed password against the stored digest.
	Delete(ctx context.Context, email string, input DeleteAccountInput) error
}
