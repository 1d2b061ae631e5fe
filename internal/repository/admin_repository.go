package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/ovenlight/bakery-api/internal/model"
)

type AdminRepo struct{ DB *sql.DB }

func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{DB: db} }

// GetByUsername fetches an admin account by username.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (model.AdminUser, error) {
	username = strings.TrimSpace(username)
	var a model.AdminUser
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,password,role,created_at FROM admin_users WHERE username=? LIMIT 1",
		username).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return a, ErrNotFound
	}
	return a, err
}
