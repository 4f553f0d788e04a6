package mocks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
)

var (
	_ repositories.IExamRepository         = (*ExamRepository)(nil)
	_ repositories.IResourceRepository     = (*ResourceRepository)(nil)
	_ repositories.IResourceTypeRepository = (*ResourceTypeRepository)(nil)
	_ repositories.IBlogPostRepository     = (*BlogPostRepository)(nil)
	_ repositories.IFileUploadRepository   = (*FileUploadRepository)(nil)
)

func TestApplyFieldsHandlesPointersAndNil(t *testing.T) {
	res := &models.Resource{Title: "old"}
	stage := int64(3)
	res.StageID = &stage

	err := applyFields(res, map[string]interface{}{
		"title":       "new",
		"subject_id":  int64(9),
		"stage_id":    nil,
		"description": "d",
	})
	require.NoError(t, err)
	assert.Equal(t, "new", res.Title)
	require.NotNil(t, res.SubjectID)
	assert.Equal(t, int64(9), *res.SubjectID)
	assert.Nil(t, res.StageID)

	assert.Error(t, applyFields(res, map[string]interface{}{"nope": 1}))
	assert.Error(t, applyFields(res, map[string]interface{}{"title": 5}))
}

func TestStoreUniqueAndNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewExamRepository()

	_, err := repo.Create(ctx, &models.Exam{Name: "A", Slug: "a"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.Exam{Name: "A again", Slug: "a"})
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	_, err = repo.GetByID(ctx, 42)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, 42), apperrors.ErrResourceNotFound))
}
