package service

import (
	"context"

	"whites-admin-backend/internal/logger"
	"whites-admin-backend/internal/security"
)

type authService struct {
	creds    security.CredentialChecker
	sessions *security.SessionManager
}

func NewAuthService(creds security.CredentialChecker, sessions *security.SessionManager) AuthService {
	return &authService{creds: creds, sessions: sessions}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	if err := s.creds.Check(username, password); err != nil {
		logger.Warn("Login rejected", "username", username)
		return "", err
	}
	token, err := s.sessions.Issue(username)
	if err != nil {
		return "", err
	}
	logger.Info("Operator logged in", "username", username)
	return token, nil
}

func (s *authService) Logout(ctx context.Context, token string) {
	s.sessions.Revoke(token)
}

func (s *authService) Validate(ctx context.Context, token string) (string, error) {
	claims, err := s.sessions.Validate(token)
	if err != nil {
		return "", err
	}
	return claims.Username, nil
}
