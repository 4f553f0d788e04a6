package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories/mocks"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
)

func newResourceService() ResourceService {
	return NewResourceService(
		mocks.NewResourceRepository(),
		mocks.NewResourceCategoryRepository(),
		mocks.NewResourceTypeRepository(),
		zerolog.Nop(),
	)
}

func TestEmptyResourceListIsNotNil(t *testing.T) {
	list, err := newResourceService().ListResources(context.Background(), repositories.ResourceFilter{})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestRecordDownloadIncrementsByOne(t *testing.T) {
	svc := newResourceService()
	ctx := context.Background()

	res, err := svc.CreateResource(ctx, &models.Resource{ExamID: 1, Title: "Paper", DownloadCount: 50})
	require.NoError(t, err)
	assert.Zero(t, res.DownloadCount)

	count, err := svc.RecordDownload(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.RecordDownload(ctx, res.ID)
		}()
	}
	wg.Wait()

	got, err := svc.GetResourceByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(21), got.DownloadCount)

	_, err = svc.RecordDownload(ctx, 999)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestUpdateResourceIgnoresDownloadCount(t *testing.T) {
	svc := newResourceService()
	ctx := context.Background()

	res, err := svc.CreateResource(ctx, &models.Resource{ExamID: 1, Title: "Paper"})
	require.NoError(t, err)

	updated, err := svc.UpdateResource(ctx, res.ID, map[string]interface{}{"download_count": int64(100), "title": "  Renamed "})
	require.NoError(t, err)
	assert.Zero(t, updated.DownloadCount)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestCreateResourceValidation(t *testing.T) {
	svc := newResourceService()
	ctx := context.Background()

	_, err := svc.CreateResource(ctx, &models.Resource{Title: "x"})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	_, err = svc.CreateResource(ctx, &models.Resource{ExamID: 1})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestSeedTypesIsIdempotent(t *testing.T) {
	svc := newResourceService()
	ctx := context.Background()

	inserted, err := svc.SeedTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, inserted)

	inserted, err = svc.SeedTypes(ctx)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	types, err := svc.ListTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 8)
}

func TestSeedTypesSkipsNonEmptyTable(t *testing.T) {
	svc := newResourceService()
	ctx := context.Background()

	_, err := svc.CreateType(ctx, &models.ResourceType{Name: "Custom"})
	require.NoError(t, err)

	inserted, err := svc.SeedTypes(ctx)
	require.NoError(t, err)
	assert.Zero(t, inserted)
}

func TestCategorySlugDefaultsAndStatus(t *testing.T) {
	svc := newResourceService()
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, &models.ResourceCategory{ExamID: 3, Name: "General Studies Paper I"})
	require.NoError(t, err)
	assert.Equal(t, "general-studies-paper-i", cat.Slug)
	assert.Equal(t, models.StatusActive, cat.Status)

	_, err = svc.CreateCategory(ctx, &models.ResourceCategory{ExamID: 3, Name: "General Studies -- Paper I"})
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	// same slug under another exam is fine
	_, err = svc.CreateCategory(ctx, &models.ResourceCategory{ExamID: 4, Name: "General Studies Paper I"})
	assert.NoError(t, err)
}
