package handler

import (
	"time"

	"github.com/clanops/clan-gateway/internal/core/domain"
	"github.com/clanops/clan-gateway/internal/core/ports"
)

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role"     validate:"required,oneof=admin reader"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// operatorResponse never carries the password hash.
type operatorResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type loginResponse struct {
	Token     string           `json:"token"`
	TokenType string           `json:"token_type"`
	ExpiresAt time.Time        `json:"expires_at"`
	Operator  operatorResponse `json:"operator"`
}

func toOperatorResponse(op *domain.Operator) operatorResponse {
	return operatorResponse{
		ID:        op.ID,
		Username:  op.Username,
		Role:      op.Role,
		CreatedAt: op.CreatedAt,
	}
}

func toLoginResponse(s *ports.Session) loginResponse {
	return loginResponse{
		Token:     s.Token,
		TokenType: "Bearer",
		ExpiresAt: s.ExpiresAt,
		Operator:  toOperatorResponse(s.Operator),
	}
}
