package ports

import (
	"context"
	"time"

	"github.com/clanops/clan-gateway/internal/core/domain"
)

// Session is what a successful login hands back to the operator.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Operator  *domain.Operator
}

type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.Operator, error)
	Login(ctx context.Context, username, password string) (*Session, error)
}
