package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
)

// userProjection keeps credentials out of listings.
var userProjection = bson.M{"api_key": 0, "api_key_expiracion": 0, "contrasena": 0}

type DirectoryRepository struct {
	modules     *mongo.Collection
	roles       *mongo.Collection
	permissions *mongo.Collection
	users       *mongo.Collection
	assignments *mongo.Collection
}

func NewDirectoryRepository(db *mongo.Database) *DirectoryRepository {
	return &DirectoryRepository{
		modules:     db.Collection(collectionModules),
		roles:       db.Collection(collectionRoles),
		permissions: db.Collection(collectionPermissions),
		users:       db.Collection(collectionUsers),
		assignments: db.Collection(collectionRoleAssignments),
	}
}

func (r *DirectoryRepository) ListModules(ctx context.Context, page ports.PageRequest) ([]domain.Module, int64, error) {
	return findPage[domain.Module](ctx, r.modules, activeFilter(), bson.D{{Key: "nombre", Value: 1}}, page, nil)
}

func (r *DirectoryRepository) ListRoles(ctx context.Context, page ports.PageRequest) ([]domain.Role, int64, error) {
	return findPage[domain.Role](ctx, r.roles, activeFilter(), bson.D{{Key: "nombre", Value: 1}}, page, nil)
}

func (r *DirectoryRepository) ListPermissions(ctx context.Context, q ports.PermissionQuery, page ports.PageRequest) ([]domain.Permission, int64, error) {
	filter := activeFilter()
	setID(filter, "modulo_id", q.ModuleID)
	setID(filter, "rol_id", q.RoleID)
	return findPage[domain.Permission](ctx, r.permissions, filter, newestFirst, page, nil)
}

func (r *DirectoryRepository) ListUsers(ctx context.Context, q ports.UserQuery, page ports.PageRequest) ([]domain.User, int64, error) {
	filter := activeFilter()
	setContains(filter, "email", q.Email)
	setPrefix(filter, "nombres", q.Names)
	setPrefix(filter, "apellido_paterno", q.FirstSurname)
	setPrefix(filter, "apellido_materno", q.SecondSurname)
	return findPage[domain.User](ctx, r.users, filter, bson.D{{Key: "email", Value: 1}}, page, userProjection)
}

func (r *DirectoryRepository) FindUser(ctx context.Context, email string) (domain.Lookup[domain.User], error) {
	return lookup[domain.User](ctx, r.users, bson.M{"email": email})
}

func (r *DirectoryRepository) ListRoleAssignments(ctx context.Context, q ports.RoleAssignmentQuery, page ports.PageRequest) ([]domain.RoleAssignment, int64, error) {
	filter := activeFilter()
	setID(filter, "rol_id", q.RoleID)
	setID(filter, "usuario_id", q.UserID)
	return findPage[domain.RoleAssignment](ctx, r.assignments, filter, newestFirst, page, nil)
}

// EnsureIndexes is a no-op: the collections it reads are indexed by
// PrincipalRepository.
func (r *DirectoryRepository) EnsureIndexes(context.Context) error {
	return nil
}
