package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/riskibarqy/campus-league/internal/domain/admin"
	"github.com/riskibarqy/campus-league/internal/platform/id"
	"github.com/riskibarqy/campus-league/internal/platform/session"
	"golang.org/x/crypto/bcrypt"
)

// AdminCredential is the single shared login of the league administrator.
type AdminCredential struct {
	Username     string
	PasswordHash []byte
}

// HashPassword returns the bcrypt hash stored in ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

type LoginResult struct {
	Token     string
	Principal admin.Principal
}

type AuthService struct {
	credential AdminCredential
	sessions   *session.Store
	tokens     id.Generator
}

func NewAuthService(credential AdminCredential, sessions *session.Store, tokens id.Generator) *AuthService {
	return &AuthService{
		credential: credential,
		sessions:   sessions,
		tokens:     tokens,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return LoginResult{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.credential.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.credential.PasswordHash, []byte(password))
	if !userOK || passErr != nil {
		return LoginResult{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	token, err := s.tokens.NewID()
	if err != nil {
		return LoginResult{}, fmt.Errorf("generate session token: %w", err)
	}
	issued := s.sessions.Put(ctx, token, s.credential.Username)

	return LoginResult{
		Token:     token,
		Principal: principalFromSession(issued),
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Logout")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: session token is required", ErrUnauthorized)
	}
	s.sessions.Revoke(ctx, token)
	return nil
}

// Verify resolves a session token to the admin principal.
func (s *AuthService) Verify(ctx context.Context, token string) (admin.Principal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Verify")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		return admin.Principal{}, fmt.Errorf("%w: session token is required", ErrUnauthorized)
	}

	item, ok := s.sessions.Lookup(ctx, token)
	if !ok {
		return admin.Principal{}, fmt.Errorf("%w: session expired or revoked", ErrUnauthorized)
	}
	return principalFromSession(item), nil
}

func principalFromSession(item session.Session) admin.Principal {
	return admin.Principal{
		Username:  item.Subject,
		IssuedAt:  item.IssuedAt,
		ExpiresAt: item.ExpiresAt,
	}
}
