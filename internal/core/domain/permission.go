package domain

// Level is the access a permission grants on a module. Higher includes lower.
type Level int

const (
	LevelNone       Level = 0
	LevelView       Level = 1
	LevelEdit       Level = 2
	LevelCreate     Level = 3
	LevelAdminister Level = 4
)

func (l Level) String() string {
	switch l {
	case LevelView:
		return "VER"
	case LevelEdit:
		return "MODIFICAR"
	case LevelCreate:
		return "CREAR"
	case LevelAdminister:
		return "ADMINISTRAR"
	default:
		return "NINGUNO"
	}
}

// Module names permissions are granted on.
const (
	ModuleAutoridades          = "AUTORIDADES"
	ModuleDistritos            = "DISTRITOS"
	ModuleEdictos              = "EDICTOS"
	ModuleListasDeAcuerdos     = "LISTAS DE ACUERDOS"
	ModuleMaterias             = "MATERIAS"
	ModuleMateriasTiposJuicios = "MATERIAS TIPOS JUICIOS"
	ModuleMunicipios           = "MUNICIPIOS"
	ModuleSentencias           = "SENTENCIAS"
	ModuleModulos              = "MODULOS"
	ModuleRoles                = "ROLES"
	ModulePermisos             = "PERMISOS"
	ModuleUsuarios             = "USUARIOS"
	ModuleUsuariosRoles        = "USUARIOS ROLES"
	ModuleWebRamas             = "WEB RAMAS"
	ModuleWebPaginas           = "WEB PAGINAS"
)

// Module is a functional area permissions are scoped to.
type Module struct {
	ID           int64  `json:"id" bson:"_id"`
	Name         string `json:"nombre" bson:"nombre"`
	ShortName    string `json:"nombre_corto" bson:"nombre_corto"`
	Icon         string `json:"icono" bson:"icono"`
	Route        string `json:"ruta" bson:"ruta"`
	InNavigation bool   `json:"en_navegacion" bson:"en_navegacion"`
	Status       Status `json:"-" bson:"estatus"`
}

func (m Module) RecordStatus() Status { return m.Status }

// Role groups permissions. Permissions is filled by the storage layer when
// the role is loaded for permission resolution; it is never serialized.
type Role struct {
	ID          int64        `json:"id" bson:"_id"`
	Name        string       `json:"nombre" bson:"nombre"`
	Status      Status       `json:"-" bson:"estatus"`
	Permissions []Permission `json:"-" bson:"-"`
}

func (r Role) RecordStatus() Status { return r.Status }

// Permission grants one role a level on one module.
type Permission struct {
	ID         int64  `json:"id" bson:"_id"`
	RoleID     int64  `json:"rol_id" bson:"rol_id"`
	RoleName   string `json:"rol_nombre" bson:"rol_nombre"`
	ModuleID   int64  `json:"modulo_id" bson:"modulo_id"`
	ModuleName string `json:"modulo_nombre" bson:"modulo_nombre"`
	Name       string `json:"nombre" bson:"nombre"`
	Level      Level  `json:"nivel" bson:"nivel"`
	Status     Status `json:"-" bson:"estatus"`
}

func (p Permission) RecordStatus() Status { return p.Status }

// RoleAssignment links a user to a role. Its Status is independent of both.
type RoleAssignment struct {
	ID          int64  `json:"id" bson:"_id"`
	UserID      int64  `json:"usuario_id" bson:"usuario_id"`
	UserEmail   string `json:"usuario_email" bson:"usuario_email"`
	UserName    string `json:"usuario_nombre" bson:"usuario_nombre"`
	RoleID      int64  `json:"rol_id" bson:"rol_id"`
	RoleName    string `json:"rol_nombre" bson:"rol_nombre"`
	Description string `json:"descripcion" bson:"descripcion"`
	Status      Status `json:"-" bson:"estatus"`
	Role        *Role  `json:"-" bson:"-"`
}

func (a RoleAssignment) RecordStatus() Status { return a.Status }

// Permissions maps a module name to the effective level held on it.
type Permissions map[string]Level

// ResolvePermissions folds every grant reachable through an active
// assignment, an active role and an active permission, keeping the highest
// level per module. The result does not depend on the order of assignments.
func ResolvePermissions(assignments []RoleAssignment) Permissions {
	perms := make(Permissions)
	for _, a := range assignments {
		if !a.Status.Active() || a.Role == nil || !a.Role.Status.Active() {
			continue
		}
		for _, p := range a.Role.Permissions {
			if !p.Status.Active() {
				continue
			}
			if current, ok := perms[p.ModuleName]; !ok || p.Level > current {
				perms[p.ModuleName] = p.Level
			}
		}
	}
	return perms
}

// Level returns the effective level on module; an unknown module is LevelNone.
func (p Permissions) Level(module string) Level {
	return p[module]
}

func (p Permissions) Can(module string, min Level) bool {
	return min > LevelNone && p.Level(module) >= min
}

func (p Permissions) CanView(module string) bool       { return p.Can(module, LevelView) }
func (p Permissions) CanEdit(module string) bool       { return p.Can(module, LevelEdit) }
func (p Permissions) CanInsert(module string) bool     { return p.Can(module, LevelCreate) }
func (p Permissions) CanAdminister(module string) bool { return p.Can(module, LevelAdminister) }
