package ports

import (
	"context"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
)

// PermissionQuery filters permission records; zero ids are ignored.
type PermissionQuery struct {
	ModuleID int64
	RoleID   int64
}

// UserQuery filters users. Email is a fragment match, names are prefix
// matches on the sanitized upper-case value.
type UserQuery struct {
	Email         string
	Names         string
	FirstSurname  string
	SecondSurname string
}

// RoleAssignmentQuery filters user/role links; zero ids are ignored.
type RoleAssignmentQuery struct {
	RoleID int64
	UserID int64
}

// DirectoryRepository reads the accounts, roles and permissions catalog.
type DirectoryRepository interface {
	ListModules(ctx context.Context, page PageRequest) ([]domain.Module, int64, error)
	ListRoles(ctx context.Context, page PageRequest) ([]domain.Role, int64, error)
	ListPermissions(ctx context.Context, q PermissionQuery, page PageRequest) ([]domain.Permission, int64, error)
	ListUsers(ctx context.Context, q UserQuery, page PageRequest) ([]domain.User, int64, error)
	FindUser(ctx context.Context, email string) (domain.Lookup[domain.User], error)
	ListRoleAssignments(ctx context.Context, q RoleAssignmentQuery, page PageRequest) ([]domain.RoleAssignment, int64, error)
}

type DirectoryService interface {
	ListModules(ctx context.Context, page PageRequest) (Page[domain.Module], error)
	ListRoles(ctx context.Context, page PageRequest) (Page[domain.Role], error)
	ListPermissions(ctx context.Context, q PermissionQuery, page PageRequest) (Page[domain.Permission], error)
	ListUsers(ctx context.Context, q UserQuery, page PageRequest) (Page[domain.User], error)
	GetUser(ctx context.Context, email string) (domain.Lookup[domain.User], error)
	ListRoleAssignments(ctx context.Context, q RoleAssignmentQuery, page PageRequest) (Page[domain.RoleAssignment], error)
}
