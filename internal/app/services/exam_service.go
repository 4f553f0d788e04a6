package services

import (
	"context"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
)

// ExamService defines the interface for exam operations
type ExamService interface {
	ListExams(ctx context.Context, filter repositories.ExamFilter) ([]*models.Exam, error)
	GetExamByID(ctx context.Context, id int64) (*models.Exam, error)
	GetExamBySlug(ctx context.Context, slug string) (*models.Exam, error)
	CreateExam(ctx context.Context, exam *models.Exam) (*models.Exam, error)
	UpdateExam(ctx context.Context, id int64, fields map[string]interface{}) (*models.Exam, error)
	DeleteExam(ctx context.Context, id int64) error
}

type examServiceImpl struct {
	examRepo repositories.IExamRepository
}

// NewExamService creates a new exam service instance
func NewExamService(examRepo repositories.IExamRepository) ExamService {
	return &examServiceImpl{examRepo: examRepo}
}

func (s *examServiceImpl) ListExams(ctx context.Context, filter repositories.ExamFilter) ([]*models.Exam, error) {
	return s.examRepo.List(ctx, filter)
}

func (s *examServiceImpl) GetExamByID(ctx context.Context, id int64) (*models.Exam, error) {
	if err := validID("exam ID", id); err != nil {
		return nil, err
	}
	return s.examRepo.GetByID(ctx, id)
}

func (s *examServiceImpl) GetExamBySlug(ctx context.Context, slug string) (*models.Exam, error) {
	if slug == "" {
		return nil, apperrors.NewValidationError("slug is required")
	}
	return s.examRepo.GetBySlug(ctx, slug)
}

// CreateExam derives the slug from the name when none is given and
// defaults the status to active.
func (s *examServiceImpl) CreateExam(ctx context.Context, exam *models.Exam) (*models.Exam, error) {
	name, err := requireName("name", exam.Name)
	if err != nil {
		return nil, err
	}
	slug, err := slugOrDefault(exam.Slug, name)
	if err != nil {
		return nil, err
	}

	record := *exam
	record.Name = name
	record.Slug = slug
	if record.Status == "" {
		record.Status = models.StatusActive
	}
	return s.examRepo.Create(ctx, &record)
}

func (s *examServiceImpl) UpdateExam(ctx context.Context, id int64, fields map[string]interface{}) (*models.Exam, error) {
	if err := validID("exam ID", id); err != nil {
		return nil, err
	}
	if err := normalizeUpdate(fields); err != nil {
		return nil, err
	}
	return s.examRepo.Update(ctx, id, fields)
}

func (s *examServiceImpl) DeleteExam(ctx context.Context, id int64) error {
	if err := validID("exam ID", id); err != nil {
		return err
	}
	return s.examRepo.Delete(ctx, id)
}
