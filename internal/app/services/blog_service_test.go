package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/models/dto"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories/mocks"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/helpers"
)

var blogSlugRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*-[0-9]+$`)

func newBlogService() (*blogServiceImpl, *mocks.BlogCategoryRepository) {
	categories := mocks.NewBlogCategoryRepository()
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	svc := NewBlogService(mocks.NewBlogPostRepository(), categories, helpers.NewUniqueSlugger(func() time.Time { return fixed }), zerolog.Nop()).(*blogServiceImpl)
	svc.now = func() time.Time { return fixed }
	return svc, categories
}

func TestCreatePostDefaults(t *testing.T) {
	svc, _ := newBlogService()

	post, err := svc.CreatePost(context.Background(), &models.BlogPost{Title: "UPSC Prelims Strategy!", Content: "<p>x</p>"}, "")
	require.NoError(t, err)

	assert.Equal(t, models.BlogStatusPublished, post.Status)
	assert.Equal(t, []string{}, post.Images)
	assert.Equal(t, 5, post.ReadTimeMinutes)
	require.NotNil(t, post.PublishedAt)
	assert.Regexp(t, blogSlugRe, post.Slug)
	assert.Contains(t, post.Slug, "upsc-prelims-strategy-")
}

func TestCreatePostSameTitleGetsDistinctSlugs(t *testing.T) {
	svc, _ := newBlogService()
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		post, err := svc.CreatePost(ctx, &models.BlogPost{Title: "Same Title", Content: "c"}, "")
		require.NoError(t, err)
		assert.False(t, seen[post.Slug], post.Slug)
		seen[post.Slug] = true
	}
}

func TestCreatePostKeepsExplicitValues(t *testing.T) {
	svc, _ := newBlogService()

	post, err := svc.CreatePost(context.Background(), &models.BlogPost{
		Title: "Draft", Content: "c", Status: models.BlogStatusDraft,
		Images: []string{"a.png", "b.png"}, ReadTimeMinutes: 12,
	}, "")
	require.NoError(t, err)
	assert.Equal(t, models.BlogStatusDraft, post.Status)
	assert.Equal(t, []string{"a.png", "b.png"}, post.Images)
	assert.Equal(t, 12, post.ReadTimeMinutes)
	assert.Nil(t, post.PublishedAt)
}

func TestCreatePostRendersMarkdown(t *testing.T) {
	svc, _ := newBlogService()

	post, err := svc.CreatePost(context.Background(), &models.BlogPost{Title: "MD", Content: "# Heading\n\n**bold**"}, dto.ContentFormatMarkdown)
	require.NoError(t, err)
	assert.Contains(t, post.Content, "<h1>Heading</h1>")
	assert.Contains(t, post.Content, "<strong>bold</strong>")
}

func TestCreatePostRequiresTitleAndContent(t *testing.T) {
	svc, _ := newBlogService()
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, &models.BlogPost{Title: "   ", Content: "c"}, "")
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	_, err = svc.CreatePost(ctx, &models.BlogPost{Title: "t"}, "")
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestUpdatePostNullsUnknownCategory(t *testing.T) {
	svc, categories := newBlogService()
	ctx := context.Background()

	cat, err := categories.Create(ctx, &models.BlogCategory{Name: "Strategy"})
	require.NoError(t, err)
	post, err := svc.CreatePost(ctx, &models.BlogPost{Title: "T", Content: "c", CategoryID: &cat.ID}, "")
	require.NoError(t, err)
	require.NotNil(t, post.CategoryID)

	missing := int64(999)
	updated, err := svc.UpdatePost(ctx, post.ID, &dto.UpdateBlogPostRequest{CategoryID: &missing})
	require.NoError(t, err)
	assert.Nil(t, updated.CategoryID)

	updated, err = svc.UpdatePost(ctx, post.ID, &dto.UpdateBlogPostRequest{CategoryID: &cat.ID})
	require.NoError(t, err)
	require.NotNil(t, updated.CategoryID)
	assert.Equal(t, cat.ID, *updated.CategoryID)
}

func TestUpdatePostKeepsSlugAndPublishesDraft(t *testing.T) {
	svc, _ := newBlogService()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, &models.BlogPost{Title: "Old", Content: "c", Status: models.BlogStatusDraft}, "")
	require.NoError(t, err)

	title, status := "New Title", models.BlogStatusPublished
	updated, err := svc.UpdatePost(ctx, post.ID, &dto.UpdateBlogPostRequest{Title: &title, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, post.Slug, updated.Slug)
	assert.NotNil(t, updated.PublishedAt)

	_, err = svc.UpdatePost(ctx, 4242, &dto.UpdateBlogPostRequest{Title: &title})
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestDraftsHiddenFromReaders(t *testing.T) {
	svc, _ := newBlogService()
	ctx := context.Background()

	draft, err := svc.CreatePost(ctx, &models.BlogPost{Title: "Draft", Content: "c", Status: models.BlogStatusDraft}, "")
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, &models.BlogPost{Title: "Live", Content: "c"}, "")
	require.NoError(t, err)

	public, err := svc.ListPosts(ctx, repositories.BlogPostFilter{}, false)
	require.NoError(t, err)
	assert.Len(t, public, 1)

	drafts, err := svc.ListPosts(ctx, repositories.BlogPostFilter{Status: models.BlogStatusDraft}, false)
	require.NoError(t, err)
	assert.Empty(t, drafts)

	all, err := svc.ListPosts(ctx, repositories.BlogPostFilter{}, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.GetPostBySlug(ctx, draft.Slug, false)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
	_, err = svc.GetPostByID(ctx, draft.ID, true)
	assert.NoError(t, err)
}
