package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	mockRepo "roster/internal/mocks/repository"
	mockSvc "roster/internal/mocks/service"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service  usecase.AccountUsecase
	accounts *mockRepo.MockAccountRepository
	hasher   *mockSvc.MockPasswordHasher
	fields   *mockSvc.MockFieldValidator
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accounts := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	fields := mockSvc.NewMockFieldValidator(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(accounts, hasher, fields, logger)

	return accountServiceFixtures{
		service:  service,
		accounts: accounts,
		hasher:   hasher,
		fields:   fields,
	}
}

func testAccount(email, nickname, digest string) *entity.Account {
	return &entity.Account{
		ID:             uuid.New(),
		Email:          email,
		Nickname:       nickname,
		PasswordDigest: digest,
	}
}

func TestAccountService_Lookup_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := testAccount("test@example.com", "Tester", "digest")

	fx.accounts.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)

	view, err := fx.service.Lookup(ctx, account.Email)

	require.NoError(t, err)
	assert.Equal(t, account.Email, view.Email)
	assert.Equal(t, account.Nickname, view.Nickname)
}

func TestAccountService_Lookup_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.accounts.EXPECT().
		FindByEmail(ctx, "absent@example.com").
		Return(nil, repository.ErrAccountNotFound)

	view, err := fx.service.Lookup(ctx, "absent@example.com")

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_ListAll_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	stored := []*entity.Account{
		testAccount("a@example.com", "A", "digest-a"),
		testAccount("b@example.com", "B", "digest-b"),
	}

	fx.accounts.EXPECT().FindAll(ctx).Return(stored, nil)

	accounts, err := fx.service.ListAll(ctx)

	require.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Equal(t, stored, accounts)
}

func TestAccountService_ListAll_EmptyIsNotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.accounts.EXPECT().FindAll(ctx).Return([]*entity.Account{}, nil)

	accounts, err := fx.service.ListAll(ctx)

	assert.Nil(t, accounts)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_Create_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.CreateAccountInput{
		Email:    "test@example.com",
		Nickname: "Tester",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.accounts.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrAccountNotFound)
	fx.fields.EXPECT().ValidateEmail(input.Email).Return(nil)
	fx.fields.EXPECT().ValidateNickname(input.Nickname).Return(nil)
	fx.fields.EXPECT().ValidatePassword(input.Password).Return(nil)
	fx.accounts.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			assert.Equal(t, "hashed_password", account.PasswordDigest)
			account.ID = uuid.New()
		}).
		Return(nil)

	view, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, view.Email)
	assert.Equal(t, input.Nickname, view.Nickname)
}

func TestAccountService_Create_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.CreateAccountInput
		details string
	}{
		{
			name:    "empty email",
			input:   usecase.CreateAccountInput{Nickname: "Tester", Password: "Password123!"},
			details: "email must not be empty",
		},
		{
			name:    "empty nickname",
			input:   usecase.CreateAccountInput{Email: "test@example.com", Password: "Password123!"},
			details: "nickname must not be empty",
		},
		{
			name:    "empty password",
			input:   usecase.CreateAccountInput{Email: "test@example.com", Nickname: "Tester"},
			details: "password must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)

			// Hashing happens before any precondition, even on reject paths.
			fx.hasher.EXPECT().Hash(tt.input.Password).Return("hashed_password", nil)

			view, err := fx.service.Create(context.Background(), tt.input)

			assert.Nil(t, view)
			assert.True(t, errors.Is(err, domainerrors.ErrMissingField))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.details, appErr.Details())

			fx.accounts.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		})
	}
}

func TestAccountService_Create_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.CreateAccountInput{
		Email:    "taken@example.com",
		Nickname: "Tester",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	// The probe finds an existing account; field validation never runs.
	fx.accounts.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(testAccount(input.Email, "Existing", "digest"), nil)

	view, err := fx.service.Create(ctx, input)

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
	fx.fields.AssertNotCalled(t, "ValidateEmail", mock.Anything)
	fx.accounts.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestAccountService_Create_FieldValidationFails(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.CreateAccountInput{
		Email:    "not-an-email",
		Nickname: "Tester",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.accounts.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrAccountNotFound)
	fx.fields.EXPECT().
		ValidateEmail(input.Email).
		Return(domainerrors.ErrInvalidEmail)

	view, err := fx.service.Create(ctx, input)

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidEmail))
	fx.accounts.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestAccountService_Update_Success_WithoutPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.UpdateAccountInput{Nickname: "Renamed"}

	fx.fields.EXPECT().ValidateNickname(input.Nickname).Return(nil)
	fx.accounts.EXPECT().
		UpdateByEmail(ctx, "test@example.com", repository.AccountChanges{Nickname: "Renamed"}).
		Return(1, nil)

	err := fx.service.Update(ctx, "test@example.com", input)

	require.NoError(t, err)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAccountService_Update_Success_WithPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	password := "NewPassword123!"
	input := usecase.UpdateAccountInput{Nickname: "Renamed", Password: &password}

	fx.hasher.EXPECT().Hash(password).Return("new_digest", nil)
	fx.fields.EXPECT().ValidatePassword(password).Return(nil)
	fx.fields.EXPECT().ValidateNickname(input.Nickname).Return(nil)
	fx.accounts.EXPECT().
		UpdateByEmail(ctx, "test@example.com", mock.AnythingOfType("repository.AccountChanges")).
		Run(func(ctx context.Context, email string, changes repository.AccountChanges) {
			assert.Equal(t, "Renamed", changes.Nickname)
			require.NotNil(t, changes.PasswordDigest)
			assert.Equal(t, "new_digest", *changes.PasswordDigest)
		}).
		Return(1, nil)

	err := fx.service.Update(ctx, "test@example.com", input)

	require.NoError(t, err)
}

func TestAccountService_Update_EmptyNickname(t *testing.T) {
	fx := createTestAccountService(t)

	err := fx.service.Update(context.Background(), "test@example.com", usecase.UpdateAccountInput{})

	assert.True(t, errors.Is(err, domainerrors.ErrMissingField))
	fx.accounts.AssertNotCalled(t, "UpdateByEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_Update_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.UpdateAccountInput{Nickname: "Renamed"}

	fx.fields.EXPECT().ValidateNickname(input.Nickname).Return(nil)
	fx.accounts.EXPECT().
		UpdateByEmail(ctx, "absent@example.com", repository.AccountChanges{Nickname: "Renamed"}).
		Return(0, nil)

	err := fx.service.Update(ctx, "absent@example.com", input)

	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_Delete_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := testAccount("a@x.com", "A", "digest")

	fx.accounts.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("Password123!", account.PasswordDigest).Return(true, nil)
	fx.accounts.EXPECT().DeleteByEmail(ctx, account.Email).Return(1, nil)

	err := fx.service.Delete(ctx, account.Email, usecase.DeleteAccountInput{Password: "Password123!"})

	require.NoError(t, err)
}

func TestAccountService_Delete_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := testAccount("a@x.com", "A", "digest")

	fx.accounts.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("wrong", account.PasswordDigest).Return(false, nil)

	err := fx.service.Delete(ctx, account.Email, usecase.DeleteAccountInput{Password: "wrong"})

	assert.True(t, errors.Is(err, domainerrors.ErrDeleteFailed))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredential))
	fx.accounts.AssertNotCalled(t, "DeleteByEmail", mock.Anything, mock.Anything)
}

func TestAccountService_Delete_AccountAbsent(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.accounts.EXPECT().
		FindByEmail(ctx, "absent@example.com").
		Return(nil, repository.ErrAccountNotFound)

	err := fx.service.Delete(ctx, "absent@example.com", usecase.DeleteAccountInput{Password: "whatever"})

	assert.True(t, errors.Is(err, domainerrors.ErrDeleteFailed))
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
	// The hasher is never contacted for an absent account.
	fx.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}
