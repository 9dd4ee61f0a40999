// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// password hashing, HTTP response writing, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-taxii/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the authenticated account of a
// request is stored.
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying the authenticated account.
func WithPrincipal(ctx context.Context, account *models.Account) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, account)
}

// PrincipalFromContext returns the authenticated account stored in ctx,
// or nil for anonymous requests.
func PrincipalFromContext(ctx context.Context) *models.Account {
	account, _ := ctx.Value(PrincipalCtxKey).(*models.Account)
	return account
}
