package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/models/dto"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/helpers"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/markdown"
)

// Blog post defaults applied on create
const (
	DefaultReadTimeMinutes = 5
	DefaultBlogStatus      = models.BlogStatusPublished
)

// BlogService defines the interface for blog posts and blog categories.
// includeDrafts is true only for an authenticated admin.
type BlogService interface {
	ListPosts(ctx context.Context, filter repositories.BlogPostFilter, includeDrafts bool) ([]*models.BlogPost, error)
	GetPostByID(ctx context.Context, id int64, includeDrafts bool) (*models.BlogPost, error)
	GetPostBySlug(ctx context.Context, slug string, includeDrafts bool) (*models.BlogPost, error)
	CreatePost(ctx context.Context, post *models.BlogPost, contentFormat string) (*models.BlogPost, error)
	UpdatePost(ctx context.Context, id int64, req *dto.UpdateBlogPostRequest) (*models.BlogPost, error)
	DeletePost(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]*models.BlogCategory, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.BlogCategory, error)
	CreateCategory(ctx context.Context, name string) (*models.BlogCategory, error)
	UpdateCategory(ctx context.Context, id int64, name string) (*models.BlogCategory, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type blogServiceImpl struct {
	postRepo     repositories.IBlogPostRepository
	categoryRepo repositories.IBlogCategoryRepository
	slugger      *helpers.UniqueSlugger
	now          func() time.Time
	logger       zerolog.Logger
}

// NewBlogService creates a new blog service instance
func NewBlogService(
	postRepo repositories.IBlogPostRepository,
	categoryRepo repositories.IBlogCategoryRepository,
	slugger *helpers.UniqueSlugger,
	logger zerolog.Logger,
) BlogService {
	if slugger == nil {
		slugger = helpers.NewUniqueSlugger(nil)
	}
	return &blogServiceImpl{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		slugger:      slugger,
		now:          time.Now,
		logger:       logger,
	}
}

func (s *blogServiceImpl) ListPosts(ctx context.Context, filter repositories.BlogPostFilter, includeDrafts bool) ([]*models.BlogPost, error) {
	if !includeDrafts {
		if filter.Status == models.BlogStatusDraft {
			return []*models.BlogPost{}, nil
		}
		filter.Status = models.BlogStatusPublished
	}
	return s.postRepo.List(ctx, filter)
}

func (s *blogServiceImpl) GetPostByID(ctx context.Context, id int64, includeDrafts bool) (*models.BlogPost, error) {
	if err := validID("blog post ID", id); err != nil {
		return nil, err
	}
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return visible(post, includeDrafts)
}

func (s *blogServiceImpl) GetPostBySlug(ctx context.Context, slug string, includeDrafts bool) (*models.BlogPost, error) {
	if slug == "" {
		return nil, apperrors.NewValidationError("slug is required")
	}
	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return visible(post, includeDrafts)
}

// visible hides drafts from anonymous readers as if they did not exist
func visible(post *models.BlogPost, includeDrafts bool) (*models.BlogPost, error) {
	if post.Status == models.BlogStatusDraft && !includeDrafts {
		return nil, apperrors.NewResourceNotFoundError("blog post not found")
	}
	return post, nil
}

// CreatePost generates the slug and fills the defaults: status published,
// no images, a five minute read, and published_at now for published posts.
func (s *blogServiceImpl) CreatePost(ctx context.Context, post *models.BlogPost, contentFormat string) (*models.BlogPost, error) {
	title, err := requireName("title", post.Title)
	if err != nil {
		return nil, err
	}
	if post.Content == "" {
		return nil, apperrors.NewValidationError("content is required")
	}

	record := *post
	record.Title = title
	record.Slug = s.slugger.Slug(title)
	if record.Status == "" {
		record.Status = DefaultBlogStatus
	}
	if record.Images == nil {
		record.Images = []string{}
	}
	if record.ReadTimeMinutes <= 0 {
		record.ReadTimeMinutes = DefaultReadTimeMinutes
	}
	if record.Status == models.BlogStatusPublished && record.PublishedAt == nil {
		now := s.now()
		record.PublishedAt = &now
	}

	if record.Content, err = renderContent(record.Content, contentFormat); err != nil {
		return nil, err
	}
	if record.CategoryID, err = s.resolveCategory(ctx, record.CategoryID); err != nil {
		return nil, err
	}

	created, err := s.postRepo.Create(ctx, &record)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("postID", created.ID).Str("slug", created.Slug).Msg("Blog post created")
	return created, nil
}

// UpdatePost writes the supplied fields. The slug is kept so published links
// stay valid.
func (s *blogServiceImpl) UpdatePost(ctx context.Context, id int64, req *dto.UpdateBlogPostRequest) (*models.BlogPost, error) {
	if err := validID("blog post ID", id); err != nil {
		return nil, err
	}
	current, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := req.Fields()
	if err := normalizeUpdate(fields); err != nil {
		return nil, err
	}
	if req.Content != nil {
		html, err := renderContent(*req.Content, req.ContentFormat)
		if err != nil {
			return nil, err
		}
		fields["content"] = html
	}
	if req.CategoryID != nil {
		categoryID, err := s.resolveCategory(ctx, req.CategoryID)
		if err != nil {
			return nil, err
		}
		fields["category_id"] = categoryID
	}

	status := current.Status
	if req.Status != nil {
		status = *req.Status
	}
	if status == models.BlogStatusPublished && req.PublishedAt == nil && current.PublishedAt == nil {
		fields["published_at"] = s.now()
	}

	return s.postRepo.Update(ctx, id, fields)
}

// resolveCategory returns id when it names an existing blog category and
// nil otherwise.
func (s *blogServiceImpl) resolveCategory(ctx context.Context, id *int64) (*int64, error) {
	if id == nil {
		return nil, nil
	}
	if _, err := s.categoryRepo.GetByID(ctx, *id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			s.logger.Debug().Int64("categoryID", *id).Msg("Unknown blog category, storing null")
			return nil, nil
		}
		return nil, err
	}
	return id, nil
}

func renderContent(content, format string) (string, error) {
	if format != dto.ContentFormatMarkdown {
		return content, nil
	}
	html, err := markdown.ToHTML(content)
	if err != nil {
		return "", apperrors.NewValidationError("content is not valid markdown")
	}
	return html, nil
}

func (s *blogServiceImpl) DeletePost(ctx context.Context, id int64) error {
	if err := validID("blog post ID", id); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, id)
}

func (s *blogServiceImpl) ListCategories(ctx context.Context) ([]*models.BlogCategory, error) {
	return s.categoryRepo.List(ctx)
}

func (s *blogServiceImpl) GetCategoryByID(ctx context.Context, id int64) (*models.BlogCategory, error) {
	if err := validID("blog category ID", id); err != nil {
		return nil, err
	}
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *blogServiceImpl) CreateCategory(ctx context.Context, name string) (*models.BlogCategory, error) {
	name, err := requireName("name", name)
	if err != nil {
		return nil, err
	}
	return s.categoryRepo.Create(ctx, &models.BlogCategory{Name: name})
}

func (s *blogServiceImpl) UpdateCategory(ctx context.Context, id int64, name string) (*models.BlogCategory, error) {
	if err := validID("blog category ID", id); err != nil {
		return nil, err
	}
	name, err := requireName("name", name)
	if err != nil {
		return nil, err
	}
	return s.categoryRepo.Update(ctx, id, map[string]interface{}{"name": name})
}

func (s *blogServiceImpl) DeleteCategory(ctx context.Context, id int64) error {
	if err := validID("blog category ID", id); err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, id)
}
