package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
)

const (
	collectionUsers           = "usuarios"
	collectionRoles           = "roles"
	collectionPermissions     = "permisos"
	collectionModules         = "modulos"
	collectionRoleAssignments = "usuarios_roles"
)

// PrincipalRepository loads users and the grants reachable from them.
type PrincipalRepository struct {
	users       *mongo.Collection
	roles       *mongo.Collection
	permissions *mongo.Collection
	assignments *mongo.Collection
}

func NewPrincipalRepository(db *mongo.Database) *PrincipalRepository {
	return &PrincipalRepository{
		users:       db.Collection(collectionUsers),
		roles:       db.Collection(collectionRoles),
		permissions: db.Collection(collectionPermissions),
		assignments: db.Collection(collectionRoleAssignments),
	}
}

// FindUserByID returns the user regardless of status.
func (r *PrincipalRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := findOne[domain.User](ctx, r.users, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *PrincipalRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := findOne[domain.User](ctx, r.users, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

// FindActiveRoleAssignments reads active assignments, then their active
// roles, then those roles' active permissions, and stitches them together.
// Assignments whose role is missing or inactive are returned without a Role.
func (r *PrincipalRepository) FindActiveRoleAssignments(ctx context.Context, userID int64) ([]domain.RoleAssignment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	active := string(domain.StatusActive)

	var assignments []domain.RoleAssignment
	if err := findAll(ctx, r.assignments, bson.M{"usuario_id": userID, "estatus": active}, &assignments); err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return nil, nil
	}

	roleIDs := make([]int64, 0, len(assignments))
	for _, a := range assignments {
		roleIDs = append(roleIDs, a.RoleID)
	}

	var roles []domain.Role
	if err := findAll(ctx, r.roles, bson.M{"_id": bson.M{"$in": roleIDs}, "estatus": active}, &roles); err != nil {
		return nil, err
	}

	var perms []domain.Permission
	if err := findAll(ctx, r.permissions, bson.M{"rol_id": bson.M{"$in": roleIDs}, "estatus": active}, &perms); err != nil {
		return nil, err
	}

	byRole := make(map[int64]*domain.Role, len(roles))
	for i := range roles {
		byRole[roles[i].ID] = &roles[i]
	}
	for _, p := range perms {
		if role, ok := byRole[p.RoleID]; ok {
			role.Permissions = append(role.Permissions, p)
		}
	}
	for i := range assignments {
		assignments[i].Role = byRole[assignments[i].RoleID]
	}
	return assignments, nil
}

func (r *PrincipalRepository) SaveAPIKey(ctx context.Context, userID int64, key string, expiresAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{
			"api_key":            key,
			"api_key_expiracion": expiresAt.UTC(),
			"modificado":         time.Now().UTC(),
		}},
	)
	if err != nil {
		return fmt.Errorf("save api key: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes used by key verification.
func (r *PrincipalRepository) EnsureIndexes(ctx context.Context) error {
	if err := createIndexes(ctx, r.users, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}); err != nil {
		return err
	}
	if err := createIndexes(ctx, r.assignments, []mongo.IndexModel{
		{Keys: bson.D{{Key: "usuario_id", Value: 1}, {Key: "estatus", Value: 1}}},
		{Keys: bson.D{{Key: "rol_id", Value: 1}}},
	}); err != nil {
		return err
	}
	return createIndexes(ctx, r.permissions, []mongo.IndexModel{
		{Keys: bson.D{{Key: "rol_id", Value: 1}, {Key: "estatus", Value: 1}}},
		{Keys: bson.D{{Key: "modulo_id", Value: 1}}},
	})
}

func findAll(ctx context.Context, col *mongo.Collection, filter bson.M, out any) error {
	cur, err := col.Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("find %s: %w", col.Name(), err)
	}
	defer cur.Close(ctx)
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", col.Name(), err)
	}
	return nil
}
