package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"outreachai_backend/internal/apperrors"
	"outreachai_backend/internal/auth"
	"outreachai_backend/internal/config"
	"outreachai_backend/internal/dto"
	"outreachai_backend/internal/logger"
	"outreachai_backend/internal/models"
	"outreachai_backend/internal/pkg/email"
	"outreachai_backend/internal/repositories"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(refreshToken string) (*dto.LoginResponse, error)
	Logout(refreshToken string) error
	VerifyEmail(token string) error
	RequestPasswordReset(emailAddr string) error
	ResetPassword(token, newPassword string) error
	ChangePassword(userID, oldPassword, newPassword string) error
}

type authService struct {
	users  repositories.UserRepository
	sender email.Sender
	cfg    *config.Config
}

func NewAuthService(users repositories.UserRepository, sender email.Sender, cfg *config.Config) AuthService {
	return &authService{users: users, sender: sender, cfg: cfg}
}

func (s *authService) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if _, err := s.users.FindByEmail(req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:             req.Email,
		PasswordHash:      hash,
		Name:              truncate(req.Name, 200),
		Role:              models.UserRoleUser,
		Status:            models.UserStatusActive,
		VerificationToken: randomToken(),
	}

	if err := s.users.Create(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Verification mail is best effort; registration succeeds either way.
	s.sendVerificationEmail(user)

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	switch user.Status {
	case models.UserStatusSuspended:
		return nil, apperrors.ErrUserSuspended
	case models.UserStatusBanned:
		return nil, apperrors.ErrUserBanned
	}

	return s.issueTokens(user)
}

func (s *authService) Refresh(refreshToken string) (*dto.LoginResponse, error) {
	stored, err := s.users.FindRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.users.DeleteRefreshToken(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.users.FindByID(stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if user.Status != models.UserStatusActive {
		return nil, apperrors.ErrUserSuspended
	}

	// Rotate: the old refresh token dies with its use.
	_ = s.users.DeleteRefreshToken(refreshToken)

	return s.issueTokens(user)
}

func (s *authService) Logout(refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.users.DeleteRefreshToken(refreshToken)
}

func (s *authService) VerifyEmail(token string) error {
	user, err := s.users.FindByVerificationToken(token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	user.IsVerified = true
	user.VerificationToken = ""
	if err := s.users.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) RequestPasswordReset(emailAddr string) error {
	user, err := s.users.FindByEmail(emailAddr)
	if err != nil {
		// Do not reveal whether the address exists.
		return nil
	}

	exp := time.Now().Add(1 * time.Hour)
	user.ResetToken = randomToken()
	user.ResetTokenExp = &exp
	if err := s.users.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	s.sendResetEmail(user)
	return nil
}

func (s *authService) ResetPassword(token, newPassword string) error {
	user, err := s.users.FindByResetToken(token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		return apperrors.ErrInvalidToken
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	user.ResetToken = ""
	user.ResetTokenExp = nil
	if err := s.users.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) ChangePassword(userID, oldPassword, newPassword string) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	if !auth.CheckPasswordHash(oldPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	if err := s.users.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) issueTokens(user *models.User) (*dto.LoginResponse, error) {
	accessToken, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     randomToken(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.users.CreateRefreshToken(refresh); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		User:         dto.NewUserResponse(user),
	}, nil
}

func (s *authService) sendVerificationEmail(user *models.User) {
	if s.sender == nil || s.cfg.Email.FromEmail == "" {
		return
	}
	link := fmt.Sprintf("%s/auth/verify?token=%s", appBaseURL(s.cfg), user.VerificationToken)
	msg := &email.Message{
		From:    s.cfg.Email.FromEmail,
		To:      []string{user.Email},
		Subject: "Verify your OutreachAI account",
		Body:    fmt.Sprintf("Welcome to OutreachAI!\n\nPlease verify your account: %s\n", link),
	}
	if err := s.sender.Send(msg); err != nil {
		logger.Warn("failed to send verification email", "user_id", user.ID, "error", err)
	}
}

func (s *authService) sendResetEmail(user *models.User) {
	if s.sender == nil || s.cfg.Email.FromEmail == "" {
		return
	}
	link := fmt.Sprintf("%s/reset-password?token=%s", appBaseURL(s.cfg), user.ResetToken)
	msg := &email.Message{
		From:    s.cfg.Email.FromEmail,
		To:      []string{user.Email},
		Subject: "Reset your OutreachAI password",
		Body:    fmt.Sprintf("A password reset was requested for your account.\n\nReset link (valid for 1 hour): %s\n\nIf you did not request this, ignore this email.\n", link),
	}
	if err := s.sender.Send(msg); err != nil {
		logger.Warn("failed to send password reset email", "user_id", user.ID, "error", err)
	}
}

func randomToken() string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// truncate caps s at max characters, never splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
