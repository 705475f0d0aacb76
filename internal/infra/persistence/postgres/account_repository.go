package postgres

import (
	"context"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// accountRepository implements the domain AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByEmail retrieves a single account by email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// FindAll retrieves every account, ordered by creation time. The read is
// pinned to a replica when any are configured.
func (repo *accountRepository) FindAll(ctx context.Context) ([]*entity.Account, error) {
	var accountMs []model.AccountModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("created_at").
		Find(&accountMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountMs))
	for i := range accountMs {
		accounts = append(accounts, toAccountDomain(&accountMs[i]))
	}

	return accounts, nil
}

// Insert persists a new account. The unique index on email resolves
// creation races; a duplicate key surfaces as the Conflict kind.
func (repo *accountRepository) Insert(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}

		return errors.Wrap(err, "failed to insert account")
	}

	// Propagate store-assigned fields back to the entity.
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// UpdateByEmail applies the modification set to the account matching email
// and reports the number of modified rows. A zero count means no such email.
func (repo *accountRepository) UpdateByEmail(ctx context.Context, email string, changes repository.AccountChanges) (int64, error) {
	fields := map[string]any{"nickname": changes.Nickname}
	if changes.PasswordDigest != nil {
		fields["password_digest"] = *changes.PasswordDigest
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("email = ?", email).
		Updates(fields)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to update account by email")
	}

	return result.RowsAffected, nil
}

// DeleteByEmail removes the account matching email and reports the number
// of deleted rows.
func (repo *accountRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&model.AccountModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete account by email")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:             data.ID,
		Email:          data.Email,
		Nickname:       data.Nickname,
		PasswordDigest: data.PasswordDigest,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:             data.ID,
		Email:          data.Email,
		Nickname:       data.Nickname,
		PasswordDigest: data.PasswordDigest,
	}
}
