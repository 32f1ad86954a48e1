package identity

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mediconnect/mediconnect/internal/platform/api"
	"github.com/mediconnect/mediconnect/internal/platform/auth"
)

type Service struct {
	repo   Repository
	tokens *auth.TokenIssuer
}

func NewService(repo Repository, tokens *auth.TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// RegisterRequest carries the signup parameters.
type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest carries the login parameters.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session is the result of a successful register or login.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Register creates a patient account plus its empty profile row and
// returns a signed session token.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, api.Unexpected("Error creating account", err)
	}

	u := &User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         RolePatient,
	}
	if _, err := s.repo.CreateWithPatient(ctx, u, req.FullName); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, api.Conflict("Email already registered")
		}
		return nil, api.Unexpected("Error creating account", err)
	}

	token, err := s.tokens.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, api.Unexpected("Error creating account", err)
	}
	return &Session{Token: token, User: u}, nil
}

// Login verifies the credentials and returns a signed session token. A
// wrong password and an unknown email produce the same error.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	u, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if errors.Is(err, ErrNotFound) {
		return nil, api.Unauthorized("Invalid email or password")
	}
	if err != nil {
		return nil, api.Unexpected("Error logging in", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, api.Unauthorized("Invalid email or password")
	}

	token, err := s.tokens.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, api.Unexpected("Error logging in", err)
	}
	return &Session{Token: token, User: u}, nil
}
