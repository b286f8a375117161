package domain

import (
	"context"
	"strings"
	"sync"
	"time"
)

// User is an account that may hold an API key.
type User struct {
	ID              int64     `json:"id" bson:"_id"`
	Email           string    `json:"email" bson:"email"`
	Names           string    `json:"nombres" bson:"nombres"`
	FirstSurname    string    `json:"apellido_paterno" bson:"apellido_paterno"`
	SecondSurname   string    `json:"apellido_materno" bson:"apellido_materno"`
	Position        string    `json:"puesto" bson:"puesto"`
	APIKey          string    `json:"-" bson:"api_key"`
	APIKeyExpiresAt time.Time `json:"-" bson:"api_key_expiracion"`
	PasswordHash    string    `json:"-" bson:"contrasena"`
	Status          Status    `json:"-" bson:"estatus"`
}

func (u User) RecordStatus() Status { return u.Status }

// FullName joins the name parts, skipping empty ones.
func (u User) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{u.Names, u.FirstSurname, u.SecondSurname} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// AssignmentLoader fetches the role assignments of a user, each with its
// role and the role's permissions attached.
type AssignmentLoader func(ctx context.Context, userID int64) ([]RoleAssignment, error)

// Principal is the authenticated user of one request. Its permission map is
// resolved on first use and kept for the life of the instance only.
type Principal struct {
	User

	loader AssignmentLoader
	once   sync.Once
	perms  Permissions
	err    error
}

func NewPrincipal(u User, loader AssignmentLoader) *Principal {
	return &Principal{User: u, loader: loader}
}

// Permissions resolves and caches the principal's module levels. A load error
// is cached as well and returned on every call.
func (p *Principal) Permissions(ctx context.Context) (Permissions, error) {
	p.once.Do(func() {
		if p.loader == nil {
			p.perms = Permissions{}
			return
		}
		assignments, err := p.loader(ctx, p.ID)
		if err != nil {
			p.err = err
			return
		}
		p.perms = ResolvePermissions(assignments)
	})
	return p.perms, p.err
}
