package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"rentify_backend/internal/auth"
	"rentify_backend/internal/email"
	"rentify_backend/internal/logger"
	"rentify_backend/internal/models"
	"rentify_backend/internal/repositories"
	"rentify_backend/internal/services/dto"
	"rentify_backend/pkg/apperrors"
)

// UserService covers registration, authentication and the password flows.
type UserService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	ForgotPassword(db *gorm.DB, emailAddr string) error
	ResetPassword(db *gorm.DB, req *dto.ResetPasswordRequest) error
	GetUser(db *gorm.DB, userID string) (*dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
	jwtSecret     []byte
	tokenTTL      time.Duration
}

func NewUserService(
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
	jwtSecret []byte,
	tokenTTL time.Duration,
) UserService {
	return &UserServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
		jwtSecret:     jwtSecret,
		tokenTTL:      tokenTTL,
	}
}

// Register creates the user and logs them in. The plaintext password is
// hashed before anything touches the database.
func (s *UserServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        NormalizeEmail(req.Email),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		UserType:     models.UserType(req.UserType),
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.Conflict("Email is already in use.")
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{User: dto.NewUserResponse(user), Token: token}, nil
}

// Login verifies credentials and issues a token. The two failure modes are
// distinct on purpose: unknown email is 404, wrong password is 400.
func (s *UserServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, NormalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("User does not exist.")
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.BadRequest("Invalid password.")
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{User: dto.NewUserResponse(user), Token: token}, nil
}

// ForgotPassword replaces the user's password with a fresh random one and
// mails the plaintext to their registered address. The caller must log in
// again with it.
func (s *UserServiceImpl) ForgotPassword(db *gorm.DB, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(db, NormalizeEmail(emailAddr))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NotFound("User with this email does not exist.")
		}
		return apperrors.InternalError(err)
	}

	randomPassword, err := auth.GenerateRandomPassword(8)
	if err != nil {
		return apperrors.InternalError(err)
	}

	hashedPassword, err := auth.HashPassword(randomPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePasswordHash(db, user.ID, hashedPassword); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.emailProvider.SendPasswordReset(user.Email, user.FirstName, randomPassword); err != nil {
		logger.Error("Failed to send password reset email", "error", err.Error())
		return apperrors.Wrap(err, 500, apperrors.CodeExternalServiceError, "Error sending password reset email")
	}

	return nil
}

// ResetPassword rotates the password after verifying the old one. The new
// password's complexity is checked at the request DTO level.
func (s *UserServiceImpl) ResetPassword(db *gorm.DB, req *dto.ResetPasswordRequest) error {
	user, err := s.userRepo.FindByEmail(db, NormalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NotFound("User not found.")
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return apperrors.Unauthorized("Invalid old password.")
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePasswordHash(db, user.ID, hashedPassword); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

// GetUser returns the caller's own record, password hash excluded.
func (s *UserServiceImpl) GetUser(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("User not found.")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// NormalizeEmail lower-cases and trims an address; emails are compared
// case-insensitively everywhere.
func NormalizeEmail(emailAddr string) string {
	return strings.ToLower(strings.TrimSpace(emailAddr))
}
