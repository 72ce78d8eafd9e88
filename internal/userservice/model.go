package userservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/sushihentaime/gadgetpress/internal/common"
)

const emailConstraint = "users_email_key"

func newUserModel(db *sql.DB) *UserModel {
	return &UserModel{db: db}
}

func (m *UserModel) insert(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	err := m.db.QueryRowContext(ctx, query, user.ID, user.Email, user.Password.hash, user.Role).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		switch {
		case common.UniqueViolation(err, emailConstraint):
			return ErrAdminExists
		default:
			return err
		}
	}

	return nil
}

func (m *UserModel) get(ctx context.Context, where string, arg any) (*User, error) {
	query := `
		SELECT id, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE ` + where

	var user User
	err := m.db.QueryRowContext(ctx, query, arg).Scan(&user.ID, &user.Email, &user.Password.hash, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &user, nil
}

func (m *UserModel) getByEmail(ctx context.Context, email string) (*User, error) {
	return m.get(ctx, "email = $1", email)
}

func (m *UserModel) getByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return m.get(ctx, "id = $1", id)
}
