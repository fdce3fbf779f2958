package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentify_backend/internal/auth"
	"rentify_backend/internal/models"
	"rentify_backend/internal/services/dto"
	"rentify_backend/pkg/apperrors"
)

var testJWTSecret = []byte("unit-test-secret")

func newUserServiceForTest(t *testing.T) (UserService, *fakeStore, *fakeEmailProvider) {
	t.Helper()
	store := newFakeStore()
	mail := &fakeEmailProvider{}
	svc := NewUserService(&fakeUserRepo{store: store}, mail, testJWTSecret, time.Hour)
	return svc, store, mail
}

func validRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:       "alice@example.com",
		FirstName:   "Alice",
		LastName:    "Smith",
		PhoneNumber: "+1 5550100200",
		UserType:    "seller",
		Password:    "Str0ng!pass",
	}
}

func seedUser(t *testing.T, store *fakeStore, emailAddr, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		BaseModel:    models.BaseModel{ID: store.newID()},
		Email:        emailAddr,
		FirstName:    "Bob",
		LastName:     "Jones",
		PhoneNumber:  "+1 5550100300",
		UserType:     models.UserTypeBuyer,
		PasswordHash: hash,
	}
	store.users[user.ID] = user
	return user
}

func TestRegister_CreatesUserAndIssuesToken(t *testing.T) {
	svc, store, _ := newUserServiceForTest(t)

	resp, err := svc.Register(nil, validRegisterRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.User)

	claims, err := auth.ParseToken(resp.Token, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	stored := store.users[resp.User.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "Str0ng!pass", stored.PasswordHash, "plaintext password must never be persisted")
	assert.True(t, auth.CheckPasswordHash("Str0ng!pass", stored.PasswordHash))
}

func TestRegister_NormalizesEmail(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)

	req := validRegisterRequest()
	req.Email = "  Alice@Example.COM "

	resp, err := svc.Register(nil, req)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", resp.User.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)

	_, err := svc.Register(nil, validRegisterRequest())
	require.NoError(t, err)

	// Same address with different casing still collides.
	req := validRegisterRequest()
	req.Email = "ALICE@example.com"

	_, err = svc.Register(nil, req)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.StatusCode)
	assert.Equal(t, "Email is already in use.", appErr.Message)
}

func TestLogin_Success(t *testing.T) {
	svc, store, _ := newUserServiceForTest(t)
	user := seedUser(t, store, "bob@example.com", "Str0ng!pass")

	resp, err := svc.Login(nil, &dto.LoginRequest{Email: "bob@example.com", Password: "Str0ng!pass"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)

	claims, err := auth.ParseToken(resp.Token, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestLogin_UnknownEmailIsNotFound(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)

	_, err := svc.Login(nil, &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
	assert.Equal(t, "User does not exist.", appErr.Message)
}

func TestLogin_WrongPasswordIsBadRequest(t *testing.T) {
	svc, store, _ := newUserServiceForTest(t)
	seedUser(t, store, "bob@example.com", "Str0ng!pass")

	_, err := svc.Login(nil, &dto.LoginRequest{Email: "bob@example.com", Password: "wrong"})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.StatusCode)
	assert.Equal(t, "Invalid password.", appErr.Message)
}

func TestForgotPassword_RotatesAndEmailsNewPassword(t *testing.T) {
	svc, store, mail := newUserServiceForTest(t)
	user := seedUser(t, store, "bob@example.com", "Str0ng!pass")
	oldHash := user.PasswordHash

	err := svc.ForgotPassword(nil, "bob@example.com")
	require.NoError(t, err)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "bob@example.com", mail.sent[0].To)
	assert.Equal(t, "Password Reset", mail.sent[0].Subject)

	newPassword, ok := mail.sent[0].Data["NewPassword"].(string)
	require.True(t, ok)
	require.NotEmpty(t, newPassword)

	stored := store.users[user.ID]
	assert.NotEqual(t, oldHash, stored.PasswordHash)
	assert.False(t, auth.CheckPasswordHash("Str0ng!pass", stored.PasswordHash), "old password must stop working")
	assert.True(t, auth.CheckPasswordHash(newPassword, stored.PasswordHash), "mailed password must match the stored hash")
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	svc, _, mail := newUserServiceForTest(t)

	err := svc.ForgotPassword(nil, "nobody@example.com")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
	assert.Empty(t, mail.sent)
}

func TestForgotPassword_EmailFailureIsInternal(t *testing.T) {
	svc, store, mail := newUserServiceForTest(t)
	seedUser(t, store, "bob@example.com", "Str0ng!pass")
	mail.fail = true

	err := svc.ForgotPassword(nil, "bob@example.com")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.StatusCode)
	assert.Equal(t, "Error sending password reset email", appErr.Message)
}

func TestResetPassword_Success(t *testing.T) {
	svc, store, _ := newUserServiceForTest(t)
	user := seedUser(t, store, "bob@example.com", "Str0ng!pass")

	err := svc.ResetPassword(nil, &dto.ResetPasswordRequest{
		Email:       "bob@example.com",
		OldPassword: "Str0ng!pass",
		NewPassword: "N3w!password",
	})
	require.NoError(t, err)

	stored := store.users[user.ID]
	assert.True(t, auth.CheckPasswordHash("N3w!password", stored.PasswordHash))
	assert.False(t, auth.CheckPasswordHash("Str0ng!pass", stored.PasswordHash))
}

func TestResetPassword_WrongOldPassword(t *testing.T) {
	svc, store, _ := newUserServiceForTest(t)
	user := seedUser(t, store, "bob@example.com", "Str0ng!pass")
	oldHash := user.PasswordHash

	err := svc.ResetPassword(nil, &dto.ResetPasswordRequest{
		Email:       "bob@example.com",
		OldPassword: "not-the-password",
		NewPassword: "N3w!password",
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.StatusCode)
	assert.Equal(t, "Invalid old password.", appErr.Message)
	assert.Equal(t, oldHash, store.users[user.ID].PasswordHash, "password must stay unchanged")
}

func TestGetUser_ExcludesPasswordHash(t *testing.T) {
	svc, store, _ := newUserServiceForTest(t)
	user := seedUser(t, store, "bob@example.com", "Str0ng!pass")

	resp, err := svc.GetUser(nil, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, resp.Email)
	assert.Equal(t, string(user.UserType), resp.UserType)
}

func TestGetUser_NotFound(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)

	_, err := svc.GetUser(nil, "missing")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
}
