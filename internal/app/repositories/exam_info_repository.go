package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
)

// ExamInfoFilter narrows an exam-info listing
type ExamInfoFilter struct {
	ExamID      int64
	SectionType string
}

// IExamInfoRepository defines exam-info section persistence
type IExamInfoRepository interface {
	List(ctx context.Context, filter ExamInfoFilter) ([]*models.ExamInfoSection, error)
	GetByID(ctx context.Context, id int64) (*models.ExamInfoSection, error)
	Create(ctx context.Context, section *models.ExamInfoSection) (*models.ExamInfoSection, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.ExamInfoSection, error)
	Delete(ctx context.Context, id int64) error
}

// ExamInfoRepository handles database operations for exam-info sections
type ExamInfoRepository struct {
	table[models.ExamInfoSection]
}

func examInfoSelect(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	cols := columns("ei", "id", "exam_id", "section_type", "title", "content", "order_index", "created_at", "updated_at")
	return sb.Select(append(cols, "e.name AS exam_name")...).
		From("exam_info_sections ei").
		LeftJoin("exams e ON e.id = ei.exam_id")
}

// NewExamInfoRepository creates a new ExamInfoRepository
func NewExamInfoRepository(db *pgxpool.Pool) *ExamInfoRepository {
	return &ExamInfoRepository{table: newTable[models.ExamInfoSection](db, "exam_info_sections", "ei", "exam info section", examInfoSelect)}
}

// List returns sections in display order
func (r *ExamInfoRepository) List(ctx context.Context, filter ExamInfoFilter) ([]*models.ExamInfoSection, error) {
	where := squirrel.And{}
	where = eqIf(where, "ei.exam_id", filter.ExamID)
	where = eqIf(where, "ei.section_type", filter.SectionType)
	return r.list(ctx, where, "ei.order_index ASC", "ei.id ASC")
}

// GetByID retrieves a section by ID
func (r *ExamInfoRepository) GetByID(ctx context.Context, id int64) (*models.ExamInfoSection, error) {
	return r.getByID(ctx, id)
}

// Create inserts a section
func (r *ExamInfoRepository) Create(ctx context.Context, section *models.ExamInfoSection) (*models.ExamInfoSection, error) {
	return r.create(ctx, map[string]interface{}{
		"exam_id":      section.ExamID,
		"section_type": section.SectionType,
		"title":        section.Title,
		"content":      section.Content,
		"order_index":  section.OrderIndex,
	})
}

// Update writes the given columns
func (r *ExamInfoRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.ExamInfoSection, error) {
	return r.update(ctx, id, fields, true)
}

// Delete removes a section
func (r *ExamInfoRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}
