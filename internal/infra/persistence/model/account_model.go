// Package model holds the GORM persistence models, kept separate from the
// domain entities so storage concerns never leak into the domain layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountModel is the storage shape of an account. The unique index on
// email is the system's uniqueness enforcement; the service layer's probe
// is only a fast path for a friendly error.
type AccountModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email          string    `gorm:"size:254;not null;uniqueIndex"`
	Nickname       string    `gorm:"size:64;not null"`
	PasswordDigest string    `gorm:"size:128;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName overrides GORM's pluralization.
func (AccountModel) TableName() string {
	return "accounts"
}

// BeforeCreate assigns the surrogate key when the caller did not.
func (m *AccountModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
