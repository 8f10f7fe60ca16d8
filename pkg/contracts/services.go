package contracts

import (
	"context"

	"github.com/umtportal/lostfound/pkg/models"
)

// AuthService is the remote authentication endpoint the portal submits to.
// The contract is owned by the auth service; this side only consumes it.
type AuthService interface {
	Register(ctx context.Context, payload models.RegisterPayload) (models.RegisterResult, error)
	Login(ctx context.Context, payload models.LoginPayload) (models.LoginResult, error)
	Me(ctx context.Context, accessToken string) (models.UserProfile, error)
}

type SecurityManager interface {
	IsRateLimited(identifier string, maxRequests int) bool
	RecordRequest(identifier string)
	IsSubmitBlocked(identifier string) bool
	BeginSubmit(identifier string) bool
	EndSubmit(identifier string)
}

// AuditStore persists registration attempts and their outcomes.
type AuditStore interface {
	RecordEvent(event models.AuditEvent) error
	RecentEvents(limit int) ([]models.AuditEvent, error)
}
