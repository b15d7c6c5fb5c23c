package ports

import (
	"context"

	"github.com/clanops/clan-gateway/internal/core/domain"
)

// OperatorRepository defines persistence for operator accounts.
type OperatorRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Operator, error)
	Create(ctx context.Context, op *domain.Operator) (*domain.Operator, error)
}
