package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akshayp/cetadvisor/internal/app/models"
)

// AdminUserRepository handles database operations for admin accounts
type AdminUserRepository struct {
	db *pgxpool.Pool
}

// NewAdminUserRepository creates a new AdminUserRepository
func NewAdminUserRepository(db *pgxpool.Pool) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

// GetByEmail retrieves an admin user by email. Returns (nil, nil) when no
// account exists so the caller decides how absence is reported.
func (r *AdminUserRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	query := squirrel.Select("id", "email", "password_hash", "role", "created_at").
		From("admin_users").
		Where("email = ?", email).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var user models.AdminUser
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &user, nil
}

// ExistsByEmail checks whether an admin account with the email exists
func (r *AdminUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM admin_users WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking admin existence: %w", err)
	}

	return exists, nil
}

// Create creates a new admin user
func (r *AdminUserRepository) Create(ctx context.Context, user *models.AdminUser) error {
	query := squirrel.Insert("admin_users").
		Columns("email", "password_hash", "role").
		Values(user.Email, user.PasswordHash, user.Role).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}
