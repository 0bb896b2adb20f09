// Package peoplesoft owns the boundary to the legacy PeopleSoft system.
// Every other component reaches PeopleSoft only through the Feature
// interface; swapping the simulated backend for a live one must not change
// any caller-facing behavior.
package peoplesoft

import (
	"context"
	"time"

	"github.com/STEVENBOBER/LegacyBridge/internal/entity"
)

// Feature describes the three adapter operations.
type Feature interface {
	// Ping checks connectivity to the legacy system. The simulated variant
	// never fails; the live variant surfaces UnreachableError.
	Ping(ctx context.Context) (ConnectivityResult, error)

	// Login exchanges the service credential for a session token. Fails
	// with InvalidCredentialsError on mismatch.
	Login(ctx context.Context, username, password string) (SessionToken, error)

	// GetEmployeeByID looks up one employee. The token is accepted for
	// forward compatibility with a live backend; presence and shape are the
	// request gate's job, not the adapter's. The returned record always
	// echoes the requested identifier.
	GetEmployeeByID(ctx context.Context, id, token string) (entity.Employee, error)
}

// ConnectivityResult reports the outcome of a connectivity check.
type ConnectivityResult struct {
	Message       string
	PeopleSoftURL string
	TimeStamp     time.Time
}

// SessionToken represents a successful credential exchange. ExpiresIn is
// informational only: it is returned to the caller but never enforced
// against the wall clock. Validity is judged by token shape alone.
type SessionToken struct {
	Token     string
	ExpiresIn int
	IssuedAt  time.Time
}
