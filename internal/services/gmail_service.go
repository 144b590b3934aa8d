package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"outreachai_backend/internal/apperrors"
	"outreachai_backend/internal/config"
	"outreachai_backend/internal/integrations/gmail"
	"outreachai_backend/internal/logger"
	"outreachai_backend/internal/repositories"
)

type GmailService interface {
	// ConnectURL returns the Google consent URL for the given user.
	ConnectURL(userID string) (string, error)
	// HandleCallback exchanges the authorization code and stores the
	// refresh token. It returns the path the browser is redirected to.
	HandleCallback(ctx context.Context, state, code string) string
}

type gmailService struct {
	users repositories.UserRepository
	oauth *gmail.OAuthProvider
	cfg   *config.Config
}

func NewGmailService(users repositories.UserRepository, oauth *gmail.OAuthProvider, cfg *config.Config) GmailService {
	return &gmailService{users: users, oauth: oauth, cfg: cfg}
}

func (s *gmailService) ConnectURL(userID string) (string, error) {
	if s.cfg.Google.ClientID == "" {
		return "", apperrors.NewBadRequestError("Google OAuth is not configured")
	}
	return s.oauth.AuthURL(s.signState(userID)), nil
}

func (s *gmailService) HandleCallback(ctx context.Context, state, code string) string {
	userID, ok := s.verifyState(state)
	if !ok {
		return "/settings?gmail=error&reason=bad_state"
	}

	if code == "" {
		return "/settings?gmail=error&reason=missing_code"
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return "/settings?gmail=error&reason=unknown_user"
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		logger.Warn("gmail oauth exchange failed", "user_id", userID, "error", err)
		return "/settings?gmail=error&reason=exchange_failed"
	}

	address, err := s.oauth.UserEmail(ctx, token)
	if err != nil {
		logger.Warn("gmail userinfo lookup failed", "user_id", userID, "error", err)
		return "/settings?gmail=error&reason=userinfo_failed"
	}

	user.GmailRefreshToken = token.RefreshToken
	user.GmailEmail = address
	if err := s.users.Update(user); err != nil {
		logger.Error("failed to store gmail connection", "user_id", userID, "error", err)
		return "/settings?gmail=error&reason=persistence_failed"
	}

	return "/settings?gmail=connected"
}

// The OAuth state is the user id plus an HMAC over it, so the callback
// can bind the consent to the initiating account without a session.
func (s *gmailService) signState(userID string) string {
	mac := hmac.New(sha256.New, []byte(s.cfg.JWT.Secret))
	mac.Write([]byte(userID))
	return userID + "." + hex.EncodeToString(mac.Sum(nil))
}

func (s *gmailService) verifyState(state string) (string, bool) {
	parts := strings.SplitN(state, ".", 2)
	if len(parts) != 2 {
		return "", false
	}

	mac := hmac.New(sha256.New, []byte(s.cfg.JWT.Secret))
	mac.Write([]byte(parts[0]))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return "", false
	}
	return parts[0], true
}
