package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories/mocks"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
)

func TestExamCreateGetDelete(t *testing.T) {
	svc := NewExamService(mocks.NewExamRepository())
	ctx := context.Background()

	exam, err := svc.CreateExam(ctx, &models.Exam{Name: "  UPSC Civil Services  "})
	require.NoError(t, err)
	assert.Equal(t, "UPSC Civil Services", exam.Name)
	assert.Equal(t, "upsc-civil-services", exam.Slug)
	assert.Equal(t, models.StatusActive, exam.Status)

	got, err := svc.GetExamBySlug(ctx, "upsc-civil-services")
	require.NoError(t, err)
	assert.Equal(t, exam.ID, got.ID)

	require.NoError(t, svc.DeleteExam(ctx, exam.ID))
	_, err = svc.GetExamByID(ctx, exam.ID)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestExamSlugValidation(t *testing.T) {
	svc := NewExamService(mocks.NewExamRepository())
	ctx := context.Background()

	_, err := svc.CreateExam(ctx, &models.Exam{Name: "!!!"})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	exam, err := svc.CreateExam(ctx, &models.Exam{Name: "SSC", Slug: "SSC CGL 2024"})
	require.NoError(t, err)
	assert.Equal(t, "ssc-cgl-2024", exam.Slug)

	updated, err := svc.UpdateExam(ctx, exam.ID, map[string]interface{}{"slug": "  SSC--CGL  "})
	require.NoError(t, err)
	assert.Equal(t, "ssc-cgl", updated.Slug)

	_, err = svc.UpdateExam(ctx, exam.ID, map[string]interface{}{"name": " "})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestExamUpdateWithNoFieldsReturnsCurrent(t *testing.T) {
	svc := NewExamService(mocks.NewExamRepository())
	ctx := context.Background()

	exam, err := svc.CreateExam(ctx, &models.Exam{Name: "State PSC", Category: "State"})
	require.NoError(t, err)

	same, err := svc.UpdateExam(ctx, exam.ID, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, exam.Category, same.Category)

	_, err = svc.UpdateExam(ctx, 999, map[string]interface{}{"category": "x"})
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestStageDeleteDoesNotCascade(t *testing.T) {
	ctx := context.Background()
	stages := NewStageService(mocks.NewStageRepository(), mocks.NewSubjectRepository())

	stage, err := stages.CreateStage(ctx, &models.ExamStage{ExamID: 1, Name: "Prelims"})
	require.NoError(t, err)
	assert.Equal(t, "prelims", stage.Slug)

	subject, err := stages.CreateSubject(ctx, &models.Subject{StageID: stage.ID, Name: "History"})
	require.NoError(t, err)

	require.NoError(t, stages.DeleteStage(ctx, stage.ID))

	got, err := stages.GetSubjectByID(ctx, subject.ID)
	require.NoError(t, err)
	assert.Equal(t, stage.ID, got.StageID)

	list, err := stages.ListSubjects(ctx, repositories.SubjectFilter{StageID: stage.ID})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestExamInfoSectionTypes(t *testing.T) {
	ctx := context.Background()
	svc := NewExamInfoService(mocks.NewExamInfoRepository())

	_, err := svc.CreateSection(ctx, &models.ExamInfoSection{ExamID: 1, SectionType: "faq", Title: "FAQ"})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	section, err := svc.CreateSection(ctx, &models.ExamInfoSection{ExamID: 1, SectionType: models.SectionSyllabus, Title: "Syllabus"})
	require.NoError(t, err)

	_, err = svc.UpdateSection(ctx, section.ID, map[string]interface{}{"section_type": "other"})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	_, err = svc.ListSections(ctx, repositories.ExamInfoFilter{SectionType: "other"})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}
