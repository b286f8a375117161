package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
	"github.com/pjecz/hercules-api-key/internal/core/safe"
	"github.com/pjecz/hercules-api-key/pkg/logger"
)

// DirectoryService serves modules, roles, permissions, users and their
// role assignments.
type DirectoryService struct {
	repo ports.DirectoryRepository
	log  zerolog.Logger
}

func NewDirectoryService(repo ports.DirectoryRepository, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{repo: repo, log: logger.Component(log, "directory")}
}

func (s *DirectoryService) ListModules(ctx context.Context, page ports.PageRequest) (ports.Page[domain.Module], error) {
	items, total, err := s.repo.ListModules(ctx, page)
	return pageOf(items, total, err, "modules")
}

func (s *DirectoryService) ListRoles(ctx context.Context, page ports.PageRequest) (ports.Page[domain.Role], error) {
	items, total, err := s.repo.ListRoles(ctx, page)
	return pageOf(items, total, err, "roles")
}

func (s *DirectoryService) ListPermissions(ctx context.Context, q ports.PermissionQuery, page ports.PageRequest) (ports.Page[domain.Permission], error) {
	if q.ModuleID < 0 || q.RoleID < 0 {
		return ports.Page[domain.Permission]{}, domain.InvalidParam("Es inválido el ID del módulo o del rol")
	}
	items, total, err := s.repo.ListPermissions(ctx, q, page)
	return pageOf(items, total, err, "permissions")
}

func (s *DirectoryService) ListUsers(ctx context.Context, q ports.UserQuery, page ports.PageRequest) (ports.Page[domain.User], error) {
	if q.Email != "" {
		email, err := safe.Email(q.Email, true)
		if err != nil {
			return ports.Page[domain.User]{}, domain.InvalidParam("Es inválido el correo electrónico")
		}
		q.Email = email
	}
	q.Names = safe.String(q.Names, 0)
	q.FirstSurname = safe.String(q.FirstSurname, 0)
	q.SecondSurname = safe.String(q.SecondSurname, 0)

	items, total, err := s.repo.ListUsers(ctx, q, page)
	return pageOf(items, total, err, "users")
}

func (s *DirectoryService) GetUser(ctx context.Context, email string) (domain.Lookup[domain.User], error) {
	normalized, err := safe.Email(email, false)
	if err != nil {
		return domain.Lookup[domain.User]{}, domain.InvalidParam("Es inválido el correo electrónico")
	}
	return s.repo.FindUser(ctx, normalized)
}

func (s *DirectoryService) ListRoleAssignments(ctx context.Context, q ports.RoleAssignmentQuery, page ports.PageRequest) (ports.Page[domain.RoleAssignment], error) {
	if q.RoleID < 0 || q.UserID < 0 {
		return ports.Page[domain.RoleAssignment]{}, domain.InvalidParam("Es inválido el ID del rol o del usuario")
	}
	items, total, err := s.repo.ListRoleAssignments(ctx, q, page)
	return pageOf(items, total, err, "role assignments")
}
