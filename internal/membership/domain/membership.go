package domain

import (
	"time"
)

// Membership links a user to a project with a role.
type Membership struct {
	UserID    int64
	ProjectID int64
	Role      Role
	CreatedAt time.Time
}

// Member is a membership joined with the user's display data, as listed on a project.
type Member struct {
	UserID   int64     `json:"id"`
	Name     string    `json:"nombre"`
	Email    string    `json:"email"`
	Role     Role      `json:"rol"`
	JoinedAt time.Time `json:"fecha_asignacion"`
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEditor   Role = "editor"
	RoleMember   Role = "member"
	RoleObserver Role = "observer"
)

// Valid reports whether r is one of the four project roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleMember, RoleObserver:
		return true
	}
	return false
}
