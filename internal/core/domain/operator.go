package domain

import (
	"strings"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleReader = "reader"
)

// Operator is an account allowed to call the gateway.
type Operator struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizeUsername folds case and surrounding space so "Alice " and "alice"
// name the same account.
func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidRole reports whether role is one of the known operator roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleReader
}
