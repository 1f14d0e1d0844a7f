// Package service implements account registration, password login and profile management.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"projectboard/internal/platform/apperr"
	"projectboard/internal/security"
	userdomain "projectboard/internal/user/domain"
)

const (
	minPasswordLength = 8

	// MsgProfileUpdated is returned after a successful profile update.
	MsgProfileUpdated = "Perfil actualizado correctamente"
)

// UserRepo is the user repository needed by the auth service.
type UserRepo interface {
	GetByID(ctx context.Context, id int64) (*userdomain.User, error)
	GetByEmail(ctx context.Context, email string) (*userdomain.User, error)
	Create(ctx context.Context, u *userdomain.User) (*userdomain.User, error)
	UpdateProfile(ctx context.Context, u *userdomain.User, passwordHash string) (*userdomain.User, error)
	Stats(ctx context.Context, userID int64) (userdomain.Stats, error)
}

// RegisterInput is the registration form.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// ProfileInput is the profile form. NewPassword empty keeps the current password.
type ProfileInput struct {
	Name            string
	Email           string
	CurrentPassword string
	NewPassword     string
}

// LoginResult is a signed session token and the user it belongs to.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *userdomain.User
}

// Profile is the profile page model.
type Profile struct {
	User  *userdomain.User `json:"usuario"`
	Stats userdomain.Stats `json:"estadisticas"`
}

// AuthService implements register, login and profile operations.
type AuthService struct {
	users  UserRepo
	hasher *security.Hasher
	tokens *security.TokenProvider
	logger *slog.Logger
}

// NewAuthService returns an AuthService with the given dependencies.
func NewAuthService(users UserRepo, hasher *security.Hasher, tokens *security.TokenProvider, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

func (s *AuthService) internal(ctx context.Context, op string, err error, msg string) error {
	s.logger.ErrorContext(ctx, "auth: "+op+" failed", "error", err)
	return apperr.Persistence(msg, err)
}

// Register creates an account. The password is stored only as a bcrypt hash.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*userdomain.User, error) {
	const failMsg = "Error del servidor al registrar usuario"
	u := &userdomain.User{Name: strings.TrimSpace(in.Name), Email: userdomain.NormalizeEmail(in.Email)}
	if u.Name == "" || u.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return nil, apperr.Validation("Todos los campos son requeridos")
	}
	if in.Password != in.ConfirmPassword {
		return nil, apperr.Validation("Las contraseñas no coinciden")
	}
	if err := u.Validate(); err != nil {
		return nil, apperr.Validation("El formato del email es inválido")
	}
	if len([]rune(in.Password)) < minPasswordLength {
		return nil, apperr.Validation("La contraseña debe tener al menos 8 caracteres")
	}
	existing, err := s.users.GetByEmail(ctx, u.Email)
	if err != nil {
		return nil, s.internal(ctx, "register", err, failMsg)
	}
	if existing != nil {
		return nil, apperr.Validation("El email ya está registrado")
	}
	if u.PasswordHash, err = s.hasher.Hash(in.Password); err != nil {
		return nil, s.internal(ctx, "register", err, failMsg)
	}
	created, err := s.users.Create(ctx, u)
	if err != nil {
		return nil, s.internal(ctx, "register", err, failMsg)
	}
	s.logger.InfoContext(ctx, "user registered", "user_id", created.ID)
	return created, nil
}

// Login checks email and password and issues a session token.
// Unknown email and wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	const failMsg = "Error del servidor al iniciar sesión"
	email = userdomain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperr.Validation("Correo y contraseña son requeridos")
	}
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, s.internal(ctx, "login", err, failMsg)
	}
	if u == nil {
		return nil, apperr.Unauthenticated("Credenciales invalidas")
	}
	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		if !errors.Is(err, security.ErrPasswordMismatch) {
			s.logger.WarnContext(ctx, "auth: stored hash unusable", "user_id", u.ID, "error", err)
		}
		return nil, apperr.Unauthenticated("Credenciales invalidas")
	}
	token, id, err := s.tokens.Issue(u.ID, u.Name)
	if err != nil {
		return nil, s.internal(ctx, "login", err, failMsg)
	}
	return &LoginResult{Token: token, ExpiresAt: id.ExpiresAt, User: u}, nil
}

// Profile returns the user with their task and project counters.
func (s *AuthService) Profile(ctx context.Context, userID int64) (*Profile, error) {
	const failMsg = "Error del servidor al obtener perfil"
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, s.internal(ctx, "profile", err, failMsg)
	}
	if u == nil {
		return nil, apperr.NotFound("Usuario no encontrado")
	}
	stats, err := s.users.Stats(ctx, userID)
	if err != nil {
		return nil, s.internal(ctx, "profile", err, failMsg)
	}
	return &Profile{User: u, Stats: stats}, nil
}

// UpdateProfile changes name and email and, when NewPassword is set, the password after checking the
// current one.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, in ProfileInput) (*userdomain.User, error) {
	const failMsg = "Error del servidor al actualizar perfil"
	cur, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, s.internal(ctx, "update profile", err, failMsg)
	}
	if cur == nil {
		return nil, apperr.NotFound("Usuario no encontrado")
	}

	next := *cur
	next.Name = strings.TrimSpace(in.Name)
	next.Email = userdomain.NormalizeEmail(in.Email)
	if next.Name == "" || next.Email == "" {
		return nil, apperr.Validation("El nombre y el email son obligatorios")
	}
	if err := next.Validate(); err != nil {
		return nil, apperr.Validation("El formato del email es inválido")
	}
	if next.Email != cur.Email {
		other, err := s.users.GetByEmail(ctx, next.Email)
		if err != nil {
			return nil, s.internal(ctx, "update profile", err, failMsg)
		}
		if other != nil && other.ID != cur.ID {
			return nil, apperr.Validation("El email ya está registrado")
		}
	}

	var hash string
	if in.NewPassword != "" {
		if in.CurrentPassword == "" {
			return nil, apperr.Validation("Debes proporcionar tu contraseña actual")
		}
		if err := s.hasher.Compare(cur.PasswordHash, in.CurrentPassword); err != nil {
			return nil, apperr.Validation("La contraseña actual es incorrecta")
		}
		if len([]rune(in.NewPassword)) < minPasswordLength {
			return nil, apperr.Validation("La contraseña debe tener al menos 8 caracteres")
		}
		if hash, err = s.hasher.Hash(in.NewPassword); err != nil {
			return nil, s.internal(ctx, "update profile", err, failMsg)
		}
	}
	updated, err := s.users.UpdateProfile(ctx, &next, hash)
	if err != nil {
		return nil, s.internal(ctx, "update profile", err, failMsg)
	}
	return updated, nil
}
