package userservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sushihentaime/gadgetpress/internal/common"
)

func NewUserService(db *sql.DB, cfg AuthConfig) (*UserService, error) {
	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	return &UserService{m: newUserModel(db), cfg: cfg, now: time.Now}, nil
}

// Login checks the credentials and issues an access token. Unknown emails
// and wrong passwords fail with the same error.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)

	v := common.NewValidator()
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	user, err := s.m.getByEmail(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrRecordNotFound):
			burnCompare(password)
			return nil, ErrInvalidCredentials
		default:
			return nil, err
		}
	}

	match, err := user.Password.compare(password)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user}, nil
}

// Authorize resolves a bearer token to the user it was issued for.
func (s *UserService) Authorize(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	id, err := s.parseToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.m.getByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrRecordNotFound):
			return nil, ErrUnauthorized
		default:
			return nil, err
		}
	}

	return user, nil
}

// BootstrapAdmin creates the configured admin account once.
func (s *UserService) BootstrapAdmin(ctx context.Context) (*User, error) {
	email := normalizeEmail(s.cfg.AdminEmail)

	v := common.NewValidator()
	validateEmail(v, email)
	validatePassword(v, s.cfg.AdminPassword)
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrAdminNotConfigured, v.ValidationError())
	}

	_, err := s.m.getByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrAdminExists
	case !errors.Is(err, common.ErrRecordNotFound):
		return nil, err
	}

	user := &User{ID: uuid.New(), Email: email, Role: RoleAdmin}
	if err := user.Password.set(s.cfg.AdminPassword); err != nil {
		return nil, err
	}

	if err := s.m.insert(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
