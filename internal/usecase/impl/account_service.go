// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/usecase"

	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface. It is a stateless
// façade over its collaborators and is safe for concurrent use; the store's
// unique index on email is the sole race-prevention mechanism.
type accountService struct {
	accounts repository.AccountRepository
	hasher   service.PasswordHasher
	fields   service.FieldValidator
	logger   *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(
	accounts repository.AccountRepository,
	hasher service.PasswordHasher,
	fields service.FieldValidator,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		accounts: accounts,
		hasher:   hasher,
		fields:   fields,
		logger:   logger,
	}
}

// Lookup fetches the account with the given email and returns its
// caller-safe view. No format validation happens here; lookup is tolerant
// of any string.
func (srv *accountService) Lookup(ctx context.Context, email string) (*entity.AccountView, error) {
	account, err := srv.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}
		srv.logger.Error("Account lookup failed", "email", email, "error", err)

		return nil, domainerrors.ErrLookupFailed.Wrap(err)
	}

	return account.View(), nil
}

// ListAll fetches every account. An empty listing is an error condition by
// contract, not an empty success.
func (srv *accountService) ListAll(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accounts.FindAll(ctx)
	if err != nil {
		srv.logger.Error("Account listing failed", "error", err)

		return nil, domainerrors.ErrLookupFailed.Wrap(err)
	}
	if len(accounts) == 0 {
		return nil, domainerrors.ErrAccountNotFound
	}

	return accounts, nil
}

// Create registers a new account. The digest is computed before any
// precondition is evaluated, so rejected requests pay the hashing cost and
// the reject path stays time-uniform with the accept path; the digest is
// only ever persisted once every check has passed.
func (srv *accountService) Create(ctx context.Context, input usecase.CreateAccountInput) (*entity.AccountView, error) {
	srv.logger.Info("Starting account creation", "email", input.Email)

	digest, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during account creation", "error", err)

		return nil, domainerrors.ErrCreateFailed.Wrap(err)
	}

	// Preconditions, in order; the first failure wins.
	if input.Email == "" {
		return nil, domainerrors.ErrMissingField.WithDetails("email must not be empty")
	}
	if input.Nickname == "" {
		return nil, domainerrors.ErrMissingField.WithDetails("nickname must not be empty")
	}
	if input.Password == "" {
		return nil, domainerrors.ErrMissingField.WithDetails("password must not be empty")
	}

	if _, err := srv.accounts.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		srv.logger.Error("Uniqueness probe failed during account creation", "email", input.Email, "error", err)

		return nil, domainerrors.ErrCreateFailed.Wrap(err)
	}

	if err := srv.fields.ValidateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := srv.fields.ValidateNickname(input.Nickname); err != nil {
		return nil, err
	}
	if err := srv.fields.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	account := &entity.Account{
		Email:          input.Email,
		Nickname:       input.Nickname,
		PasswordDigest: digest,
	}
	if err := srv.accounts.Insert(ctx, account); err != nil {
		// A concurrent create can win the race between the uniqueness
		// probe and the insert; the unique index reports it here.
		if errors.Is(err, domainerrors.ErrEmailTaken) {
			return nil, domainerrors.ErrEmailTaken
		}
		srv.logger.Error("Failed to insert account", "email", input.Email, "error", err)

		return nil, domainerrors.ErrCreateFailed.Wrap(err)
	}
	srv.logger.Debug("Account created", "email", account.Email)

	return account.View(), nil
}

// Update replaces the nickname of the account with the given email, and its
// password digest as well when a new password is supplied. The two fields of
// the modification set are applied together or not at all.
func (srv *accountService) Update(ctx context.Context, email string, input usecase.UpdateAccountInput) error {
	if input.Nickname == "" {
		return domainerrors.ErrMissingField.WithDetails("nickname must not be empty")
	}

	changes := repository.AccountChanges{Nickname: input.Nickname}
	if input.Password != nil {
		digest, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			srv.logger.Error("Failed to hash password during account update", "email", email, "error", err)

			return domainerrors.ErrUpdateFailed.Wrap(err)
		}
		if err := srv.fields.ValidatePassword(*input.Password); err != nil {
			return err
		}
		changes.PasswordDigest = &digest
	}
	if err := srv.fields.ValidateNickname(input.Nickname); err != nil {
		return err
	}

	modified, err := srv.accounts.UpdateByEmail(ctx, email, changes)
	if err != nil {
		srv.logger.Error("Failed to update account", "email", email, "error", err)

		// Update keeps the underlying reason visible in the details,
		// unlike the other umbrellas.
		return domainerrors.ErrUpdateFailed.WithDetails(err.Error()).Wrap(err)
	}
	if modified == 0 {
		return domainerrors.ErrAccountNotFound
	}
	srv.logger.Debug("Account updated", "email", email)

	return nil
}

// Delete removes the account with the given email after re-authenticating
// the caller with the typed password. Every failure in this path surfaces
// under the single DeleteFailed umbrella; the distinguishing cause stays on
// the internal error chain only.
func (srv *accountService) Delete(ctx context.Context, email string, input usecase.DeleteAccountInput) error {
	account, err := srv.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrDeleteFailed.Wrap(domainerrors.ErrAccountNotFound)
		}
		srv.logger.Error("Account lookup failed during deletion", "email", email, "error", err)

		return domainerrors.ErrDeleteFailed.Wrap(err)
	}

	match, err := srv.hasher.Check(input.Password, account.PasswordDigest)
	if err != nil {
		srv.logger.Error("Credential verification failed during deletion", "email", email, "error", err)

		return domainerrors.ErrDeleteFailed.Wrap(err)
	}
	if !match {
		return domainerrors.ErrDeleteFailed.Wrap(domainerrors.ErrInvalidCredential)
	}

	deleted, err := srv.accounts.DeleteByEmail(ctx, email)
	if err != nil {
		srv.logger.Error("Failed to delete account", "email", email, "error", err)

		return domainerrors.ErrDeleteFailed.Wrap(err)
	}
	if deleted == 0 {
		return domainerrors.ErrDeleteFailed.Wrap(domainerrors.ErrAccountNotFound)
	}
	srv.logger.Info("Account deleted", "email", email)

	return nil
}
