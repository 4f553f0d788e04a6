package services

import (
	"context"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
)

var sectionTypes = map[string]bool{
	models.SectionPattern:      true,
	models.SectionSyllabus:     true,
	models.SectionEligibility:  true,
	models.SectionDates:        true,
	models.SectionNotification: true,
}

// ExamInfoService defines the interface for exam-info section operations
type ExamInfoService interface {
	ListSections(ctx context.Context, filter repositories.ExamInfoFilter) ([]*models.ExamInfoSection, error)
	GetSectionByID(ctx context.Context, id int64) (*models.ExamInfoSection, error)
	CreateSection(ctx context.Context, section *models.ExamInfoSection) (*models.ExamInfoSection, error)
	UpdateSection(ctx context.Context, id int64, fields map[string]interface{}) (*models.ExamInfoSection, error)
	DeleteSection(ctx context.Context, id int64) error
}

type examInfoServiceImpl struct {
	examInfoRepo repositories.IExamInfoRepository
}

// NewExamInfoService creates a new exam-info service instance
func NewExamInfoService(examInfoRepo repositories.IExamInfoRepository) ExamInfoService {
	return &examInfoServiceImpl{examInfoRepo: examInfoRepo}
}

func (s *examInfoServiceImpl) ListSections(ctx context.Context, filter repositories.ExamInfoFilter) ([]*models.ExamInfoSection, error) {
	if filter.SectionType != "" && !sectionTypes[filter.SectionType] {
		return nil, apperrors.NewValidationError("unknown section_type %q", filter.SectionType)
	}
	return s.examInfoRepo.List(ctx, filter)
}

func (s *examInfoServiceImpl) GetSectionByID(ctx context.Context, id int64) (*models.ExamInfoSection, error) {
	if err := validID("section ID", id); err != nil {
		return nil, err
	}
	return s.examInfoRepo.GetByID(ctx, id)
}

func (s *examInfoServiceImpl) CreateSection(ctx context.Context, section *models.ExamInfoSection) (*models.ExamInfoSection, error) {
	if err := validID("exam_id", section.ExamID); err != nil {
		return nil, err
	}
	if !sectionTypes[section.SectionType] {
		return nil, apperrors.NewValidationError("unknown section_type %q", section.SectionType)
	}
	title, err := requireName("title", section.Title)
	if err != nil {
		return nil, err
	}

	record := *section
	record.Title = title
	return s.examInfoRepo.Create(ctx, &record)
}

func (s *examInfoServiceImpl) UpdateSection(ctx context.Context, id int64, fields map[string]interface{}) (*models.ExamInfoSection, error) {
	if err := validID("section ID", id); err != nil {
		return nil, err
	}
	if st, ok := fields["section_type"].(string); ok && !sectionTypes[st] {
		return nil, apperrors.NewValidationError("unknown section_type %q", st)
	}
	if err := normalizeUpdate(fields); err != nil {
		return nil, err
	}
	return s.examInfoRepo.Update(ctx, id, fields)
}

func (s *examInfoServiceImpl) DeleteSection(ctx context.Context, id int64) error {
	if err := validID("section ID", id); err != nil {
		return err
	}
	return s.examInfoRepo.Delete(ctx, id)
}
