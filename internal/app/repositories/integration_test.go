package repositories

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/migrations"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
)

// newTestPool connects to TEST_DATABASE_URL, applies migrations and empties
// every table. The test is skipped when the variable is not set.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = migrations.NewMigrator(pool, zerolog.Nop()).MigrateFromDirectory(ctx, "../../../migrations")
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `TRUNCATE admin_accounts, exams, exam_stages, subjects, resource_categories,
		resource_types, resources, exam_info_sections, file_uploads, blog_categories, blog_posts RESTART IDENTITY`)
	require.NoError(t, err)
	return pool
}

func TestPostgresExamLifecycle(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repos := NewRepositories(pool)

	exam, err := repos.ExamRepository.Create(ctx, &models.Exam{Name: "UPSC CSE", Slug: "upsc-cse", Status: models.StatusActive})
	require.NoError(t, err)
	assert.NotZero(t, exam.ID)

	got, err := repos.ExamRepository.GetByID(ctx, exam.ID)
	require.NoError(t, err)
	assert.Equal(t, "upsc-cse", got.Slug)

	_, err = repos.ExamRepository.Create(ctx, &models.Exam{Name: "Dup", Slug: "upsc-cse", Status: models.StatusActive})
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	updated, err := repos.ExamRepository.Update(ctx, exam.ID, map[string]interface{}{"category": "Central"})
	require.NoError(t, err)
	assert.Equal(t, "Central", updated.Category)
	assert.Equal(t, "UPSC CSE", updated.Name)

	stage, err := repos.StageRepository.Create(ctx, &models.ExamStage{ExamID: exam.ID, Name: "Prelims", Slug: "prelims"})
	require.NoError(t, err)
	require.NotNil(t, stage.ExamName)
	assert.Equal(t, "UPSC CSE", *stage.ExamName)

	require.NoError(t, repos.ExamRepository.Delete(ctx, exam.ID))
	_, err = repos.ExamRepository.GetByID(ctx, exam.ID)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
	assert.True(t, errors.Is(repos.ExamRepository.Delete(ctx, exam.ID), apperrors.ErrResourceNotFound))

	// the stage survives with a dangling exam_id and no exam_name
	stage, err = repos.StageRepository.GetByID(ctx, stage.ID)
	require.NoError(t, err)
	assert.Equal(t, exam.ID, stage.ExamID)
	assert.Nil(t, stage.ExamName)
}

func TestPostgresResourceDownloadsAndJoins(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repos := NewRepositories(pool)

	list, err := repos.ResourceRepository.List(ctx, ResourceFilter{})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	exam, err := repos.ExamRepository.Create(ctx, &models.Exam{Name: "SSC CGL", Slug: "ssc-cgl", Status: models.StatusActive})
	require.NoError(t, err)

	missing := int64(999)
	res, err := repos.ResourceRepository.Create(ctx, &models.Resource{ExamID: exam.ID, SubjectID: &missing, Title: "2023 Paper"})
	require.NoError(t, err)
	assert.Zero(t, res.DownloadCount)
	require.NotNil(t, res.ExamName)
	assert.Nil(t, res.SubjectName)

	for want := int64(1); want <= 3; want++ {
		count, err := repos.ResourceRepository.IncrementDownloadCount(ctx, res.ID)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}

	_, err = repos.ResourceRepository.IncrementDownloadCount(ctx, 12345)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))

	list, err = repos.ResourceRepository.List(ctx, ResourceFilter{ExamID: exam.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(3), list[0].DownloadCount)
}

func TestPostgresSeedResourceTypesOnce(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repo := NewResourceTypeRepository(pool)

	inserted, err := repo.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, inserted)

	inserted, err = repo.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	types, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 8)
	assert.Equal(t, "Answer Keys", types[0].Name)
}

func TestPostgresBlogPostImagesDefault(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repo := NewBlogPostRepository(pool)

	post, err := repo.Create(ctx, &models.BlogPost{
		Title: "Hello", Slug: "hello-1", Content: "<p>hi</p>",
		ReadTimeMinutes: 5, Status: models.BlogStatusPublished,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{}, post.Images)

	bySlug, err := repo.GetBySlug(ctx, "hello-1")
	require.NoError(t, err)
	assert.Equal(t, post.ID, bySlug.ID)
}
