package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
)

// ExamFilter narrows an exam listing. Empty fields are ignored.
type ExamFilter struct {
	Status   string
	Category string
}

// IExamRepository defines exam persistence
type IExamRepository interface {
	List(ctx context.Context, filter ExamFilter) ([]*models.Exam, error)
	GetByID(ctx context.Context, id int64) (*models.Exam, error)
	GetBySlug(ctx context.Context, slug string) (*models.Exam, error)
	Create(ctx context.Context, exam *models.Exam) (*models.Exam, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Exam, error)
	Delete(ctx context.Context, id int64) error
}

// ExamRepository handles database operations for exams
type ExamRepository struct {
	table[models.Exam]
}

func examSelect(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return sb.Select(columns("e", "id", "name", "slug", "description", "category", "status", "created_at", "updated_at")...).
		From("exams e")
}

// NewExamRepository creates a new ExamRepository
func NewExamRepository(db *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{table: newTable[models.Exam](db, "exams", "e", "exam", examSelect)}
}

// List returns exams ordered by name
func (r *ExamRepository) List(ctx context.Context, filter ExamFilter) ([]*models.Exam, error) {
	return r.list(ctx, r.filterExams(filter), "e.name ASC")
}

func (r *ExamRepository) filterExams(filter ExamFilter) squirrel.And {
	where := squirrel.And{}
	where = eqIf(where, "e.status", filter.Status)
	where = eqIf(where, "e.category", filter.Category)
	return where
}

// GetByID retrieves an exam by ID
func (r *ExamRepository) GetByID(ctx context.Context, id int64) (*models.Exam, error) {
	return r.getByID(ctx, id)
}

// GetBySlug retrieves an exam by its unique slug
func (r *ExamRepository) GetBySlug(ctx context.Context, slug string) (*models.Exam, error) {
	return r.getBy(ctx, "slug", slug)
}

// Create inserts an exam
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) (*models.Exam, error) {
	return r.create(ctx, map[string]interface{}{
		"name":        exam.Name,
		"slug":        exam.Slug,
		"description": exam.Description,
		"category":    exam.Category,
		"status":      exam.Status,
	})
}

// Update writes the given columns
func (r *ExamRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Exam, error) {
	return r.update(ctx, id, fields, true)
}

// Delete removes an exam. Its stages, categories and resources keep their exam_id.
func (r *ExamRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}
