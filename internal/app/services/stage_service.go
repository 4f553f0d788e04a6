package services

import (
	"context"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
)

// StageService defines the interface for exam stage and subject operations
type StageService interface {
	ListStages(ctx context.Context, filter repositories.StageFilter) ([]*models.ExamStage, error)
	GetStageByID(ctx context.Context, id int64) (*models.ExamStage, error)
	CreateStage(ctx context.Context, stage *models.ExamStage) (*models.ExamStage, error)
	UpdateStage(ctx context.Context, id int64, fields map[string]interface{}) (*models.ExamStage, error)
	DeleteStage(ctx context.Context, id int64) error

	ListSubjects(ctx context.Context, filter repositories.SubjectFilter) ([]*models.Subject, error)
	GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error)
	CreateSubject(ctx context.Context, subject *models.Subject) (*models.Subject, error)
	UpdateSubject(ctx context.Context, id int64, fields map[string]interface{}) (*models.Subject, error)
	DeleteSubject(ctx context.Context, id int64) error
}

type stageServiceImpl struct {
	stageRepo   repositories.IStageRepository
	subjectRepo repositories.ISubjectRepository
}

// NewStageService creates a new stage service instance
func NewStageService(stageRepo repositories.IStageRepository, subjectRepo repositories.ISubjectRepository) StageService {
	return &stageServiceImpl{stageRepo: stageRepo, subjectRepo: subjectRepo}
}

func (s *stageServiceImpl) ListStages(ctx context.Context, filter repositories.StageFilter) ([]*models.ExamStage, error) {
	return s.stageRepo.List(ctx, filter)
}

func (s *stageServiceImpl) GetStageByID(ctx context.Context, id int64) (*models.ExamStage, error) {
	if err := validID("stage ID", id); err != nil {
		return nil, err
	}
	return s.stageRepo.GetByID(ctx, id)
}

// CreateStage stores a stage. The exam is not required to exist.
func (s *stageServiceImpl) CreateStage(ctx context.Context, stage *models.ExamStage) (*models.ExamStage, error) {
	if err := validID("exam_id", stage.ExamID); err != nil {
		return nil, err
	}
	name, err := requireName("name", stage.Name)
	if err != nil {
		return nil, err
	}
	slug, err := slugOrDefault(stage.Slug, name)
	if err != nil {
		return nil, err
	}

	record := *stage
	record.Name = name
	record.Slug = slug
	return s.stageRepo.Create(ctx, &record)
}

func (s *stageServiceImpl) UpdateStage(ctx context.Context, id int64, fields map[string]interface{}) (*models.ExamStage, error) {
	if err := validID("stage ID", id); err != nil {
		return nil, err
	}
	if err := normalizeUpdate(fields); err != nil {
		return nil, err
	}
	return s.stageRepo.Update(ctx, id, fields)
}

func (s *stageServiceImpl) DeleteStage(ctx context.Context, id int64) error {
	if err := validID("stage ID", id); err != nil {
		return err
	}
	return s.stageRepo.Delete(ctx, id)
}

func (s *stageServiceImpl) ListSubjects(ctx context.Context, filter repositories.SubjectFilter) ([]*models.Subject, error) {
	return s.subjectRepo.List(ctx, filter)
}

func (s *stageServiceImpl) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	if err := validID("subject ID", id); err != nil {
		return nil, err
	}
	return s.subjectRepo.GetByID(ctx, id)
}

func (s *stageServiceImpl) CreateSubject(ctx context.Context, subject *models.Subject) (*models.Subject, error) {
	if err := validID("stage_id", subject.StageID); err != nil {
		return nil, err
	}
	name, err := requireName("name", subject.Name)
	if err != nil {
		return nil, err
	}

	record := *subject
	record.Name = name
	return s.subjectRepo.Create(ctx, &record)
}

func (s *stageServiceImpl) UpdateSubject(ctx context.Context, id int64, fields map[string]interface{}) (*models.Subject, error) {
	if err := validID("subject ID", id); err != nil {
		return nil, err
	}
	if err := normalizeUpdate(fields); err != nil {
		return nil, err
	}
	return s.subjectRepo.Update(ctx, id, fields)
}

func (s *stageServiceImpl) DeleteSubject(ctx context.Context, id int64) error {
	if err := validID("subject ID", id); err != nil {
		return err
	}
	return s.subjectRepo.Delete(ctx, id)
}
