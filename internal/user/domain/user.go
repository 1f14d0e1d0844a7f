package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// User is a registered account. PasswordHash is the bcrypt hash and never leaves the service layer.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"nombre"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"fecha_registro"`
}

// Stats are the counters shown on the profile page.
type Stats struct {
	TotalTasks     int64 `json:"total_tareas"`
	CompletedTasks int64 `json:"tareas_completadas"`
	TotalProjects  int64 `json:"total_proyectos"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrInvalidEmail is returned by Validate for a malformed address.
var ErrInvalidEmail = errors.New("invalid email format")

// NormalizeEmail trims and lowercases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate validates the user for persistence. Returns an error describing the first validation failure.
func (u *User) Validate() error {
	if u.Name == "" {
		return errors.New("name is required")
	}
	if !emailPattern.MatchString(u.Email) {
		return ErrInvalidEmail
	}
	return nil
}
