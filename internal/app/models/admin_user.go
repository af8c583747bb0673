package models

import "time"

// AdminUser defines an administrator account based on the 'admin_users' table.
// Accounts are created out-of-band at startup from configuration and are
// read-only during normal operation.
type AdminUser struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email" example:"admin@cetadvisor.in"`
	PasswordHash string    `json:"-" db:"password_hash"` // excluded from JSON
	Role         string    `json:"role" db:"role" example:"admin"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
