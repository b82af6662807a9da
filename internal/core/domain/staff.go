package domain

import "strings"

// Role is the authorization role carried by an authenticated principal.
type Role string

const (
	RoleAdministrator Role = "ADMINISTRATOR"
	RoleSecretary     Role = "SECRETARY"
	RoleInstructor    Role = "INSTRUCTOR"
	RoleStudent       Role = "STUDENT"
)

var roleAliases = map[string]Role{
	"ADMINISTRATOR": RoleAdministrator,
	"ADMINISTRADOR": RoleAdministrator,
	"SECRETARY":     RoleSecretary,
	"SECRETARIA":    RoleSecretary,
	"INSTRUCTOR":    RoleInstructor,
	"STUDENT":       RoleStudent,
	"ALUMNO":        RoleStudent,
}

// ParseRole maps a role claim to a Role; unknown claims yield "" and false.
func ParseRole(raw string) (Role, bool) {
	s := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(raw)), "ROLE_")
	r, ok := roleAliases[s]
	return r, ok
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID string `json:"userID"`
	Role   Role   `json:"role"`
}

// Staff is a staff identity as seen by the schedule engine.
type Staff struct {
	StaffID   string `json:"staffID"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
}

// DisplayName is the "first last" form stored on schedule entries.
func (s Staff) DisplayName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}
