package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/logger"
)

// ResourceFilter narrows a resource listing. Zero ids are ignored.
type ResourceFilter struct {
	ExamID         int64
	StageID        int64
	SubjectID      int64
	CategoryID     int64
	ResourceTypeID int64
}

// IResourceRepository defines resource persistence
type IResourceRepository interface {
	List(ctx context.Context, filter ResourceFilter) ([]*models.Resource, error)
	GetByID(ctx context.Context, id int64) (*models.Resource, error)
	Create(ctx context.Context, resource *models.Resource) (*models.Resource, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Resource, error)
	Delete(ctx context.Context, id int64) error
	IncrementDownloadCount(ctx context.Context, id int64) (int64, error)
}

// ResourceRepository handles database operations for resources
type ResourceRepository struct {
	table[models.Resource]
}

func resourceSelect(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	cols := columns("r",
		"id", "exam_id", "stage_id", "subject_id", "category_id", "resource_type_id",
		"title", "description", "file_path", "external_url", "file_type", "author", "year",
		"download_count", "created_at", "updated_at",
	)
	cols = append(cols,
		"e.name AS exam_name",
		"st.name AS stage_name",
		"sub.name AS subject_name",
		"rc.name AS category_name",
		"rt.name AS resource_type_name",
	)
	return sb.Select(cols...).
		From("resources r").
		LeftJoin("exams e ON e.id = r.exam_id").
		LeftJoin("exam_stages st ON st.id = r.stage_id").
		LeftJoin("subjects sub ON sub.id = r.subject_id").
		LeftJoin("resource_categories rc ON rc.id = r.category_id").
		LeftJoin("resource_types rt ON rt.id = r.resource_type_id")
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{table: newTable[models.Resource](db, "resources", "r", "resource", resourceSelect)}
}

// List returns resources newest first
func (r *ResourceRepository) List(ctx context.Context, filter ResourceFilter) ([]*models.Resource, error) {
	where := squirrel.And{}
	where = eqIf(where, "r.exam_id", filter.ExamID)
	where = eqIf(where, "r.stage_id", filter.StageID)
	where = eqIf(where, "r.subject_id", filter.SubjectID)
	where = eqIf(where, "r.category_id", filter.CategoryID)
	where = eqIf(where, "r.resource_type_id", filter.ResourceTypeID)
	return r.list(ctx, where, "r.created_at DESC", "r.id DESC")
}

// GetByID retrieves a resource by ID
func (r *ResourceRepository) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	return r.getByID(ctx, id)
}

// Create inserts a resource with a zero download count
func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) (*models.Resource, error) {
	return r.create(ctx, map[string]interface{}{
		"exam_id":          resource.ExamID,
		"stage_id":         resource.StageID,
		"subject_id":       resource.SubjectID,
		"category_id":      resource.CategoryID,
		"resource_type_id": resource.ResourceTypeID,
		"title":            resource.Title,
		"description":      resource.Description,
		"file_path":        resource.FilePath,
		"external_url":     resource.ExternalURL,
		"file_type":        resource.FileType,
		"author":           resource.Author,
		"year":             resource.Year,
	})
}

// Update writes the given columns
func (r *ResourceRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Resource, error) {
	return r.update(ctx, id, fields, true)
}

// Delete removes a resource
func (r *ResourceRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

// IncrementDownloadCount adds one to download_count in a single statement
// and returns the new value. updated_at is left alone.
func (r *ResourceRepository) IncrementDownloadCount(ctx context.Context, id int64) (int64, error) {
	sql, args, err := incrementDownloadSQL(r.sb, id)
	if err != nil {
		logger.Error().Err(err).Msg("Error building download count SQL")
		return 0, apperrors.Wrap(err, "failed to build download count update")
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, r.translate(err, "count download of")
	}
	return count, nil
}

func incrementDownloadSQL(sb squirrel.StatementBuilderType, id int64) (string, []interface{}, error) {
	return sb.Update("resources").
		Set("download_count", squirrel.Expr("download_count + 1")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING download_count").
		ToSql()
}
