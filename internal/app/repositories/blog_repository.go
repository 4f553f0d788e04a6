package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
)

// BlogPostFilter narrows a blog listing
type BlogPostFilter struct {
	CategoryID int64
	Status     string
}

// IBlogPostRepository defines blog post persistence
type IBlogPostRepository interface {
	List(ctx context.Context, filter BlogPostFilter) ([]*models.BlogPost, error)
	GetByID(ctx context.Context, id int64) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	Create(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.BlogPost, error)
	Delete(ctx context.Context, id int64) error
}

// BlogPostRepository handles database operations for blog posts
type BlogPostRepository struct {
	table[models.BlogPost]
}

func blogPostSelect(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	cols := columns("bp",
		"id", "title", "slug", "excerpt", "content", "author", "category_id", "featured_image",
		"images", "read_time_minutes", "status", "published_at", "created_at", "updated_at",
	)
	return sb.Select(append(cols, "bc.name AS category_name")...).
		From("blog_posts bp").
		LeftJoin("blog_categories bc ON bc.id = bp.category_id")
}

// NewBlogPostRepository creates a new BlogPostRepository
func NewBlogPostRepository(db *pgxpool.Pool) *BlogPostRepository {
	return &BlogPostRepository{table: newTable[models.BlogPost](db, "blog_posts", "bp", "blog post", blogPostSelect)}
}

// List returns posts newest first
func (r *BlogPostRepository) List(ctx context.Context, filter BlogPostFilter) ([]*models.BlogPost, error) {
	where := squirrel.And{}
	where = eqIf(where, "bp.category_id", filter.CategoryID)
	where = eqIf(where, "bp.status", filter.Status)
	return r.list(ctx, where, "bp.created_at DESC", "bp.id DESC")
}

// GetByID retrieves a post by ID
func (r *BlogPostRepository) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	return r.getByID(ctx, id)
}

// GetBySlug retrieves a post by its unique slug
func (r *BlogPostRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return r.getBy(ctx, "slug", slug)
}

// Create inserts a post
func (r *BlogPostRepository) Create(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error) {
	images := post.Images
	if images == nil {
		images = []string{}
	}
	return r.create(ctx, map[string]interface{}{
		"title":             post.Title,
		"slug":              post.Slug,
		"excerpt":           post.Excerpt,
		"content":           post.Content,
		"author":            post.Author,
		"category_id":       post.CategoryID,
		"featured_image":    post.FeaturedImage,
		"images":            images,
		"read_time_minutes": post.ReadTimeMinutes,
		"status":            post.Status,
		"published_at":      post.PublishedAt,
	})
}

// Update writes the given columns
func (r *BlogPostRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.BlogPost, error) {
	return r.update(ctx, id, fields, true)
}

// Delete removes a post
func (r *BlogPostRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}
