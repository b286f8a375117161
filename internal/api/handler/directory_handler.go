package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pjecz/hercules-api-key/internal/api/envelope"
	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
)

// DirectoryHandler serves modules, roles, permissions, users and the
// caller's own permission map.
type DirectoryHandler struct {
	service ports.DirectoryService
}

func NewDirectoryHandler(service ports.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

var userMsgs = lookupMessages{missing: "No existe ese usuario", disabled: "No está habilitado ese usuario"}

// ListModules handles GET /api/v5/modulos.
//
// @Summary      List modules
// @Tags         modulos
// @Produce      json
// @Security     ApiKeyAuth
// @Param        limit   query     int  false  "Page length (1-100)"  default(10)
// @Param        offset  query     int  false  "Rows to skip"         default(0)
// @Success      200     {object}  envelope.OffsetPage[domain.Module]
// @Router       /api/v5/modulos [get]
func (h *DirectoryHandler) ListModules(c echo.Context) error {
	return offsetList(c, "modulos", h.service.ListModules)
}

// ListRoles handles GET /api/v5/roles.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Security     ApiKeyAuth
// @Param        limit   query     int  false  "Page length (1-100)"  default(10)
// @Param        offset  query     int  false  "Rows to skip"         default(0)
// @Success      200     {object}  envelope.OffsetPage[domain.Role]
// @Router       /api/v5/roles [get]
func (h *DirectoryHandler) ListRoles(c echo.Context) error {
	return offsetList(c, "roles", h.service.ListRoles)
}

// ListPermissions handles GET /api/v5/permisos.
//
// @Summary      List permissions
// @Tags         permisos
// @Produce      json
// @Security     ApiKeyAuth
// @Param        modulo_id  query     int  false  "Module id"
// @Param        rol_id     query     int  false  "Role id"
// @Param        limit      query     int  false  "Page length (1-100)"  default(10)
// @Param        offset     query     int  false  "Rows to skip"         default(0)
// @Success      200        {object}  envelope.OffsetPage[domain.Permission]
// @Router       /api/v5/permisos [get]
func (h *DirectoryHandler) ListPermissions(c echo.Context) error {
	return offsetList(c, "permisos", func(ctx context.Context, page ports.PageRequest) (ports.Page[domain.Permission], error) {
		moduleID, err := optionalID(c, "modulo_id")
		if err != nil {
			return ports.Page[domain.Permission]{}, err
		}
		roleID, err := optionalID(c, "rol_id")
		if err != nil {
			return ports.Page[domain.Permission]{}, err
		}
		return h.service.ListPermissions(ctx, ports.PermissionQuery{ModuleID: moduleID, RoleID: roleID}, page)
	})
}

// ListUsers handles GET /api/v5/usuarios.
//
// @Summary      List users
// @Tags         usuarios
// @Produce      json
// @Security     ApiKeyAuth
// @Param        email             query     string  false  "Email fragment"
// @Param        nombres           query     string  false  "Names prefix"
// @Param        apellido_paterno  query     string  false  "First surname prefix"
// @Param        apellido_materno  query     string  false  "Second surname prefix"
// @Param        limit             query     int     false  "Page length (1-100)"  default(10)
// @Param        offset            query     int     false  "Rows to skip"         default(0)
// @Success      200               {object}  envelope.OffsetPage[domain.User]
// @Router       /api/v5/usuarios [get]
func (h *DirectoryHandler) ListUsers(c echo.Context) error {
	return offsetList(c, "usuarios", func(ctx context.Context, page ports.PageRequest) (ports.Page[domain.User], error) {
		return h.service.ListUsers(ctx, ports.UserQuery{
			Email:         c.QueryParam("email"),
			Names:         c.QueryParam("nombres"),
			FirstSurname:  c.QueryParam("apellido_paterno"),
			SecondSurname: c.QueryParam("apellido_materno"),
		}, page)
	})
}

// GetUser handles GET /api/v5/usuarios/:email.
//
// @Summary      Get a user by email
// @Tags         usuarios
// @Produce      json
// @Security     ApiKeyAuth
// @Param        email  path      string  true  "Email"
// @Success      200    {object}  envelope.One[domain.User]
// @Router       /api/v5/usuarios/{email} [get]
func (h *DirectoryHandler) GetUser(c echo.Context) error {
	return detail(c, "usuarios", userMsgs, func(ctx context.Context) (domain.Lookup[domain.User], error) {
		return h.service.GetUser(ctx, c.Param("email"))
	})
}

// ListRoleAssignments handles GET /api/v5/usuarios_roles.
//
// @Summary      List user role assignments
// @Tags         usuarios_roles
// @Produce      json
// @Security     ApiKeyAuth
// @Param        rol_id      query     int  false  "Role id"
// @Param        usuario_id  query     int  false  "User id"
// @Param        limit       query     int  false  "Page length (1-100)"  default(10)
// @Param        offset      query     int  false  "Rows to skip"         default(0)
// @Success      200         {object}  envelope.OffsetPage[domain.RoleAssignment]
// @Router       /api/v5/usuarios_roles [get]
func (h *DirectoryHandler) ListRoleAssignments(c echo.Context) error {
	return offsetList(c, "usuarios_roles", func(ctx context.Context, page ports.PageRequest) (ports.Page[domain.RoleAssignment], error) {
		roleID, err := optionalID(c, "rol_id")
		if err != nil {
			return ports.Page[domain.RoleAssignment]{}, err
		}
		userID, err := optionalID(c, "usuario_id")
		if err != nil {
			return ports.Page[domain.RoleAssignment]{}, err
		}
		return h.service.ListRoleAssignments(ctx, ports.RoleAssignmentQuery{RoleID: roleID, UserID: userID}, page)
	})
}

type myPermissionsResponse struct {
	Email       string             `json:"email"`
	Name        string             `json:"nombre"`
	Permissions domain.Permissions `json:"permisos"`
}

// MyPermissions handles GET /api/v5/mis_permisos.
//
// @Summary      Permission map of the calling key
// @Tags         usuarios
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  envelope.One[myPermissionsResponse]
// @Failure      403  {object}  map[string]any
// @Router       /api/v5/mis_permisos [get]
func (h *DirectoryHandler) MyPermissions(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	perms, err := p.Permissions(c.Request().Context())
	if err != nil {
		return err
	}
	countEnvelope("mis_permisos", "success")
	return c.JSON(http.StatusOK, envelope.Found(&myPermissionsResponse{
		Email:       p.Email,
		Name:        p.FullName(),
		Permissions: perms,
	}))
}
