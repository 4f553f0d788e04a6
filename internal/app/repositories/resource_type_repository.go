package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/logger"
)

// DefaultResourceTypes is the lookup set inserted into an empty table
var DefaultResourceTypes = []models.ResourceType{
	{Name: "Previous Papers", Description: "Question papers from past years"},
	{Name: "Study Material", Description: "Topic-wise study material"},
	{Name: "Notes", Description: "Short notes and summaries"},
	{Name: "Books", Description: "Recommended books"},
	{Name: "Current Affairs", Description: "Current affairs compilations"},
	{Name: "Mock Tests", Description: "Practice and mock tests"},
	{Name: "Syllabus", Description: "Official syllabus documents"},
	{Name: "Answer Keys", Description: "Official and provisional answer keys"},
}

// IResourceTypeRepository defines resource type persistence
type IResourceTypeRepository interface {
	List(ctx context.Context) ([]*models.ResourceType, error)
	GetByID(ctx context.Context, id int64) (*models.ResourceType, error)
	Create(ctx context.Context, resourceType *models.ResourceType) (*models.ResourceType, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.ResourceType, error)
	Delete(ctx context.Context, id int64) error
	SeedDefaults(ctx context.Context) (int, error)
}

// ResourceTypeRepository handles database operations for resource types
type ResourceTypeRepository struct {
	table[models.ResourceType]
}

func resourceTypeSelect(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return sb.Select(columns("rt", "id", "name", "description", "created_at")...).
		From("resource_types rt")
}

// NewResourceTypeRepository creates a new ResourceTypeRepository
func NewResourceTypeRepository(db *pgxpool.Pool) *ResourceTypeRepository {
	return &ResourceTypeRepository{table: newTable[models.ResourceType](db, "resource_types", "rt", "resource type", resourceTypeSelect)}
}

// List returns every resource type ordered by name
func (r *ResourceTypeRepository) List(ctx context.Context) ([]*models.ResourceType, error) {
	return r.list(ctx, nil, "rt.name ASC")
}

// GetByID retrieves a resource type by ID
func (r *ResourceTypeRepository) GetByID(ctx context.Context, id int64) (*models.ResourceType, error) {
	return r.getByID(ctx, id)
}

// Create inserts a resource type. Names are unique.
func (r *ResourceTypeRepository) Create(ctx context.Context, resourceType *models.ResourceType) (*models.ResourceType, error) {
	return r.create(ctx, map[string]interface{}{
		"name":        resourceType.Name,
		"description": resourceType.Description,
	})
}

// Update writes the given columns. The table has no updated_at.
func (r *ResourceTypeRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.ResourceType, error) {
	return r.update(ctx, id, fields, false)
}

// Delete removes a resource type
func (r *ResourceTypeRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

// SeedDefaults inserts DefaultResourceTypes when the table is empty and
// returns how many rows were written. The table lock makes concurrent
// seeders see each other's rows.
func (r *ResourceTypeRepository) SeedDefaults(ctx context.Context) (int, error) {
	inserted := 0
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "LOCK TABLE resource_types IN EXCLUSIVE MODE"); err != nil {
			return fmt.Errorf("lock resource_types: %w", err)
		}

		var count int
		if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM resource_types").Scan(&count); err != nil {
			return fmt.Errorf("count resource_types: %w", err)
		}
		if count > 0 {
			return nil
		}

		sql, args, err := seedResourceTypesSQL(r.sb, DefaultResourceTypes)
		if err != nil {
			return fmt.Errorf("build seed insert: %w", err)
		}
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("insert default resource types: %w", err)
		}
		inserted = int(tag.RowsAffected())
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error seeding resource types")
		return 0, r.translate(err, "seed")
	}
	return inserted, nil
}

func seedResourceTypesSQL(sb squirrel.StatementBuilderType, types []models.ResourceType) (string, []interface{}, error) {
	insert := sb.Insert("resource_types").Columns("name", "description")
	for _, t := range types {
		insert = insert.Values(t.Name, t.Description)
	}
	return insert.ToSql()
}
