package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/clanops/clan-gateway/internal/core/domain"
	"github.com/clanops/clan-gateway/internal/core/ports"
)

const (
	tokenIssuer       = "clan-gateway"
	minPasswordLength = 8
	defaultTokenTTL   = 24 * time.Hour
)

// OperatorClaims is the token payload. The auth middleware reads "sub",
// "username" and "role" from it.
type OperatorClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService registers operators and issues their session tokens.
type AuthService struct {
	repo   ports.OperatorRepository
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	// decoy is compared against when the username is unknown, so a miss
	// costs the same bcrypt round as a wrong password.
	decoy []byte
}

func NewAuthService(repo ports.OperatorRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	decoy, _ := bcrypt.GenerateFromPassword([]byte(tokenIssuer), bcrypt.DefaultCost)
	return &AuthService{
		repo:   repo,
		secret: []byte(jwtSecret),
		ttl:    tokenTTL,
		now:    time.Now,
		decoy:  decoy,
	}
}

// Register stores a new operator under the normalized username.
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.Operator, error) {
	username = domain.NormalizeUsername(username)
	switch {
	case username == "":
		return nil, fmt.Errorf("%w: username is required", domain.ErrInvalidOperator)
	case len(password) < minPasswordLength:
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidOperator, minPasswordLength)
	case !domain.ValidRole(role):
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidOperator, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, fmt.Errorf("%w: password is too long", domain.ErrInvalidOperator)
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	op, err := s.repo.Create(ctx, &domain.Operator{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("register %s: %w", username, err)
	}
	return op, nil
}

// Login checks the password and opens a session. Unknown usernames and wrong
// passwords both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.Session, error) {
	op, err := s.repo.FindByUsername(ctx, domain.NormalizeUsername(username))
	switch {
	case errors.Is(err, domain.ErrOperatorNotFound):
		_ = bcrypt.CompareHashAndPassword(s.decoy, []byte(password))
		return nil, domain.ErrInvalidCredentials
	case err != nil:
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	issued := s.now()
	expires := issued.Add(s.ttl)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, OperatorClaims{
		Username: op.Username,
		Role:     op.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   op.ID,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &ports.Session{Token: token, ExpiresAt: expires.UTC(), Operator: op}, nil
}
