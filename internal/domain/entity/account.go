// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core entity in the system: one registered person keyed by
// their email address. Exactly one Account exists per email at any time.
type Account struct {
	ID             uuid.UUID // Surrogate primary key assigned by the store.
	Email          string    // Unique business identifier. Case policy is owned by the store.
	Nickname       string    // Mutable display name.
	PasswordDigest string    // Opaque one-way digest. Never empty once created, never returned outward.
	CreatedAt      time.Time // Timestamp of when this account was created.
	UpdatedAt      time.Time // Timestamp of the last modification.
}

// AccountView is the caller-safe projection of an Account.
// It never carries the password digest.
type AccountView struct {
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// View projects the account into its caller-safe form.
func (a *Account) View() *AccountView {
	return &AccountView{
		Email:    a.Email,
		Nickname: a.Nickname,
	}
}
