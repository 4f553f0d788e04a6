package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
)

// IAdminRepository defines the credential store operations
type IAdminRepository interface {
	Create(ctx context.Context, admin *models.AdminAccount) (*models.AdminAccount, error)
	GetByID(ctx context.Context, id int64) (*models.AdminAccount, error)
	GetByUsername(ctx context.Context, username string) (*models.AdminAccount, error)
}

// AdminRepository handles database operations for admin accounts
type AdminRepository struct {
	table[models.AdminAccount]
}

func adminSelect(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return sb.Select(columns("a", "id", "username", "password_hash", "email", "created_at")...).
		From("admin_accounts a")
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{table: newTable[models.AdminAccount](db, "admin_accounts", "a", "admin", adminSelect)}
}

// Create stores a new admin. A duplicate username is a conflict.
func (r *AdminRepository) Create(ctx context.Context, admin *models.AdminAccount) (*models.AdminAccount, error) {
	return r.create(ctx, map[string]interface{}{
		"username":      admin.Username,
		"password_hash": admin.PasswordHash,
		"email":         admin.Email,
	})
}

// GetByID retrieves an admin by ID
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.AdminAccount, error) {
	return r.getByID(ctx, id)
}

// GetByUsername matches the username exactly
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.AdminAccount, error) {
	return r.getBy(ctx, "username", username)
}
