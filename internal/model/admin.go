package model

import "time"

// AdminUser mirrors the `admin_users` table.  Exactly one row is seeded at
// first startup; there is no registration or update path for admins.
type AdminUser struct {
	ID           uint64    // admin_users.id
	Username     string    // admin_users.username (unique)
	PasswordHash string    // admin_users.password
	Role         string    // admin_users.role (default "admin")
	CreatedAt    time.Time // admin_users.created_at
}
