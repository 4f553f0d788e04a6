package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
)

// SubjectFilter narrows a subject listing. ExamID matches through the stage.
type SubjectFilter struct {
	StageID int64
	ExamID  int64
}

// ISubjectRepository defines subject persistence
type ISubjectRepository interface {
	List(ctx context.Context, filter SubjectFilter) ([]*models.Subject, error)
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	Create(ctx context.Context, subject *models.Subject) (*models.Subject, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Subject, error)
	Delete(ctx context.Context, id int64) error
}

// SubjectRepository handles database operations for subjects
type SubjectRepository struct {
	table[models.Subject]
}

func subjectSelect(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	cols := columns("sub", "id", "stage_id", "name", "description", "order_index", "created_at", "updated_at")
	cols = append(cols, "st.name AS stage_name", "st.exam_id AS exam_id", "e.name AS exam_name")
	return sb.Select(cols...).
		From("subjects sub").
		LeftJoin("exam_stages st ON st.id = sub.stage_id").
		LeftJoin("exams e ON e.id = st.exam_id")
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{table: newTable[models.Subject](db, "subjects", "sub", "subject", subjectSelect)}
}

// List returns subjects in display order
func (r *SubjectRepository) List(ctx context.Context, filter SubjectFilter) ([]*models.Subject, error) {
	where := squirrel.And{}
	where = eqIf(where, "sub.stage_id", filter.StageID)
	where = eqIf(where, "st.exam_id", filter.ExamID)
	return r.list(ctx, where, "sub.order_index ASC", "sub.id ASC")
}

// GetByID retrieves a subject by ID
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	return r.getByID(ctx, id)
}

// Create inserts a subject
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) (*models.Subject, error) {
	return r.create(ctx, map[string]interface{}{
		"stage_id":    subject.StageID,
		"name":        subject.Name,
		"description": subject.Description,
		"order_index": subject.OrderIndex,
	})
}

// Update writes the given columns
func (r *SubjectRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Subject, error) {
	return r.update(ctx, id, fields, true)
}

// Delete removes a subject
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}
