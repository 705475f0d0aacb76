package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roster/internal/delivery/http/i18n"
	"roster/internal/delivery/http/middleware"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	mockUC "roster/internal/mocks/usecase"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the handler behind a real echo instance with the
// production error middleware, so error mapping and localization are
// exercised end to end.
func newTestServer(t *testing.T) (*echo.Echo, *mockUC.MockAccountUsecase) {
	uc := mockUC.NewMockAccountUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	translator, err := i18n.NewTranslator()
	require.NoError(t, err)

	handler := NewAccountHandler(uc, logger)

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger, translator).HandleHTTPError
	e.POST("/accounts", handler.Create)
	e.GET("/accounts", handler.List)
	e.GET("/accounts/:email", handler.Get)
	e.PUT("/accounts/:email", handler.Update)
	e.DELETE("/accounts/:email", handler.Delete)

	return e, uc
}

func TestAccountHandler_Get_Success(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().
		Lookup(mock.Anything, "a@x.com").
		Return(&entity.AccountView{Email: "a@x.com", Nickname: "A"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/accounts/a@x.com", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"a@x.com"`)
	assert.Contains(t, body, `"A"`)
	assert.NotContains(t, body, "passwordDigest")
}

func TestAccountHandler_Get_NotFound(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().
		Lookup(mock.Anything, "absent@x.com").
		Return(nil, domainerrors.ErrAccountNotFound)

	req := httptest.NewRequest(http.MethodGet, "/accounts/absent@x.com", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "ACCOUNT_NOT_FOUND")
	assert.Contains(t, body, "no account matches the given email")
}

func TestAccountHandler_Get_NotFoundLocalized(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().
		Lookup(mock.Anything, "absent@x.com").
		Return(nil, domainerrors.ErrAccountNotFound)

	req := httptest.NewRequest(http.MethodGet, "/accounts/absent@x.com", nil)
	req.Header.Set("Accept-Language", "zh-Hant")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "找不到該帳號")
}

func TestAccountHandler_Create_Success(t *testing.T) {
	e, uc := newTestServer(t)

	input := usecase.CreateAccountInput{
		Email:    "a@x.com",
		Nickname: "A",
		Password: "Password123!",
	}
	uc.EXPECT().
		Create(mock.Anything, input).
		Return(&entity.AccountView{Email: input.Email, Nickname: input.Nickname}, nil)

	req := httptest.NewRequest(http.MethodPost, "/accounts",
		strings.NewReader(`{"email":"a@x.com","nickname":"A","password":"Password123!"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"a@x.com"`)
}

func TestAccountHandler_Create_Conflict(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("usecase.CreateAccountInput")).
		Return(nil, domainerrors.ErrEmailTaken)

	req := httptest.NewRequest(http.MethodPost, "/accounts",
		strings.NewReader(`{"email":"taken@x.com","nickname":"A","password":"Password123!"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_TAKEN")
}

func TestAccountHandler_Create_MissingFieldDetails(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("usecase.CreateAccountInput")).
		Return(nil, domainerrors.ErrMissingField.WithDetails("nickname must not be empty"))

	req := httptest.NewRequest(http.MethodPost, "/accounts",
		strings.NewReader(`{"email":"a@x.com","password":"Password123!"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "MISSING_FIELD")
	assert.Contains(t, body, "nickname must not be empty")
}

func TestAccountHandler_List_Success(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().
		ListAll(mock.Anything).
		Return([]*entity.Account{
			{Email: "a@x.com", Nickname: "A", PasswordDigest: "secret-digest"},
			{Email: "b@x.com", Nickname: "B", PasswordDigest: "secret-digest"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"a@x.com"`)
	assert.Contains(t, body, `"b@x.com"`)
	// Digests never cross the HTTP boundary.
	assert.NotContains(t, body, "secret-digest")
}

func TestAccountHandler_Update_Success(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().
		Update(mock.Anything, "a@x.com", usecase.UpdateAccountInput{Nickname: "Renamed"}).
		Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/accounts/a@x.com",
		strings.NewReader(`{"nickname":"Renamed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountHandler_Delete_WrongPassword(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().
		Delete(mock.Anything, "a@x.com", usecase.DeleteAccountInput{Password: "wrong"}).
		Return(domainerrors.ErrDeleteFailed.Wrap(domainerrors.ErrInvalidCredential))

	req := httptest.NewRequest(http.MethodDelete, "/accounts/a@x.com",
		strings.NewReader(`{"password":"wrong"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// The deletion umbrella is all the caller sees; the credential cause
	// stays internal.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "DELETE_FAILED")
	assert.NotContains(t, body, "INVALID_CREDENTIAL")
}

func TestAccountHandler_Delete_Success(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().
		Delete(mock.Anything, "a@x.com", usecase.DeleteAccountInput{Password: "Password123!"}).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/accounts/a@x.com",
		strings.NewReader(`{"password":"Password123!"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
