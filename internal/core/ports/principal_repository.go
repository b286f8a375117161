package ports

import (
	"context"
	"time"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
)

// PrincipalRepository is the storage collaborator of the API key protocol.
type PrincipalRepository interface {
	// FindUserByID returns domain.ErrUserNotFound when no user has that id.
	// Soft-deleted users are returned; the caller checks the status.
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindActiveRoleAssignments returns the user's active assignments, each
	// with its Role and the role's active permissions attached.
	FindActiveRoleAssignments(ctx context.Context, userID int64) ([]domain.RoleAssignment, error)
	SaveAPIKey(ctx context.Context, userID int64, key string, expiresAt time.Time) error
}
