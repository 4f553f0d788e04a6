package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
)

// ResourceCategoryFilter narrows a resource category listing
type ResourceCategoryFilter struct {
	ExamID int64
	Status string
}

// IResourceCategoryRepository defines resource category persistence
type IResourceCategoryRepository interface {
	List(ctx context.Context, filter ResourceCategoryFilter) ([]*models.ResourceCategory, error)
	GetByID(ctx context.Context, id int64) (*models.ResourceCategory, error)
	Create(ctx context.Context, category *models.ResourceCategory) (*models.ResourceCategory, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.ResourceCategory, error)
	Delete(ctx context.Context, id int64) error
}

// ResourceCategoryRepository handles database operations for resource categories
type ResourceCategoryRepository struct {
	table[models.ResourceCategory]
}

func resourceCategorySelect(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	cols := columns("rc", "id", "exam_id", "name", "slug", "description", "status", "created_at", "updated_at")
	return sb.Select(append(cols, "e.name AS exam_name")...).
		From("resource_categories rc").
		LeftJoin("exams e ON e.id = rc.exam_id")
}

// NewResourceCategoryRepository creates a new ResourceCategoryRepository
func NewResourceCategoryRepository(db *pgxpool.Pool) *ResourceCategoryRepository {
	return &ResourceCategoryRepository{
		table: newTable[models.ResourceCategory](db, "resource_categories", "rc", "resource category", resourceCategorySelect),
	}
}

// List returns categories ordered by name
func (r *ResourceCategoryRepository) List(ctx context.Context, filter ResourceCategoryFilter) ([]*models.ResourceCategory, error) {
	where := squirrel.And{}
	where = eqIf(where, "rc.exam_id", filter.ExamID)
	where = eqIf(where, "rc.status", filter.Status)
	return r.list(ctx, where, "rc.name ASC")
}

// GetByID retrieves a category by ID
func (r *ResourceCategoryRepository) GetByID(ctx context.Context, id int64) (*models.ResourceCategory, error) {
	return r.getByID(ctx, id)
}

// Create inserts a category. The slug must be unique within the exam.
func (r *ResourceCategoryRepository) Create(ctx context.Context, category *models.ResourceCategory) (*models.ResourceCategory, error) {
	return r.create(ctx, map[string]interface{}{
		"exam_id":     category.ExamID,
		"name":        category.Name,
		"slug":        category.Slug,
		"description": category.Description,
		"status":      category.Status,
	})
}

// Update writes the given columns
func (r *ResourceCategoryRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.ResourceCategory, error) {
	return r.update(ctx, id, fields, true)
}

// Delete removes a category. Resources keep their category_id.
func (r *ResourceCategoryRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}
