package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
)

// StageFilter narrows a stage listing
type StageFilter struct {
	ExamID int64
}

// IStageRepository defines exam stage persistence
type IStageRepository interface {
	List(ctx context.Context, filter StageFilter) ([]*models.ExamStage, error)
	GetByID(ctx context.Context, id int64) (*models.ExamStage, error)
	Create(ctx context.Context, stage *models.ExamStage) (*models.ExamStage, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.ExamStage, error)
	Delete(ctx context.Context, id int64) error
}

// StageRepository handles database operations for exam stages
type StageRepository struct {
	table[models.ExamStage]
}

func stageSelect(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	cols := columns("s", "id", "exam_id", "name", "slug", "description", "order_index", "created_at", "updated_at")
	return sb.Select(append(cols, "e.name AS exam_name")...).
		From("exam_stages s").
		LeftJoin("exams e ON e.id = s.exam_id")
}

// NewStageRepository creates a new StageRepository
func NewStageRepository(db *pgxpool.Pool) *StageRepository {
	return &StageRepository{table: newTable[models.ExamStage](db, "exam_stages", "s", "stage", stageSelect)}
}

// List returns stages in display order
func (r *StageRepository) List(ctx context.Context, filter StageFilter) ([]*models.ExamStage, error) {
	where := eqIf(squirrel.And{}, "s.exam_id", filter.ExamID)
	return r.list(ctx, where, "s.order_index ASC", "s.id ASC")
}

// GetByID retrieves a stage by ID
func (r *StageRepository) GetByID(ctx context.Context, id int64) (*models.ExamStage, error) {
	return r.getByID(ctx, id)
}

// Create inserts a stage. The slug must be unique within the exam.
func (r *StageRepository) Create(ctx context.Context, stage *models.ExamStage) (*models.ExamStage, error) {
	return r.create(ctx, map[string]interface{}{
		"exam_id":     stage.ExamID,
		"name":        stage.Name,
		"slug":        stage.Slug,
		"description": stage.Description,
		"order_index": stage.OrderIndex,
	})
}

// Update writes the given columns
func (r *StageRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.ExamStage, error) {
	return r.update(ctx, id, fields, true)
}

// Delete removes a stage
func (r *StageRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}
