// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"roster/internal/domain/entity"
)

// ErrAccountNotFound is the store's absent-marker: it signals "no such
// account" as opposed to a transport or storage failure.
var ErrAccountNotFound = errors.New("account not found")

// AccountChanges describes the fields an update targets. Nickname is always
// part of the modification set; PasswordDigest joins it only when non-nil.
type AccountChanges struct {
	Nickname       string
	PasswordDigest *string
}

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete
// implementation. Uniqueness of the email column is enforced here (by the
// store's unique index), never by the caller.
type AccountRepository interface {
	// FindByEmail retrieves a single account by email.
	// Returns ErrAccountNotFound when no row matches.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindAll retrieves every account. An empty store yields an empty
	// slice and a nil error; interpreting emptiness is the caller's job.
	FindAll(ctx context.Context) ([]*entity.Account, error)

	// Insert persists a new account and fills in the store-assigned ID
	// and timestamps on the passed entity.
	Insert(ctx context.Context, account *entity.Account) error

	// UpdateByEmail applies the given changes to the account matching
	// email and reports how many rows were modified.
	UpdateByEmail(ctx context.Context, email string, changes AccountChanges) (int64, error)

	// DeleteByEmail removes the account matching email and reports how
	// many rows were deleted.
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}
