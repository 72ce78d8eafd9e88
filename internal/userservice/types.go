package userservice

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"

	AccessTokenTime time.Duration = 7 * 24 * time.Hour

	bcryptCost = 12
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAdminExists        = errors.New("admin user already exists")
	ErrAdminNotConfigured = errors.New("admin credentials are not configured")
	ErrMissingJWTSecret   = errors.New("jwt secret must be provided")
)

// AuthConfig is the slice of application config the auth gate needs.
type AuthConfig struct {
	JWTSecret     string
	AdminEmail    string
	AdminPassword string
}

type UserService struct {
	m   *UserModel
	cfg AuthConfig
	now func() time.Time
}

type UserModel struct {
	db *sql.DB
}

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Password  Password  `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type Password struct {
	Plain string `json:"-"`
	hash  []byte `json:"-"`
}

// AuthResult is returned by a successful login.
type AuthResult struct {
	Token string
	User  *User
}
