package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
)

// IBlogCategoryRepository defines blog category persistence
type IBlogCategoryRepository interface {
	List(ctx context.Context) ([]*models.BlogCategory, error)
	GetByID(ctx context.Context, id int64) (*models.BlogCategory, error)
	Create(ctx context.Context, category *models.BlogCategory) (*models.BlogCategory, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.BlogCategory, error)
	Delete(ctx context.Context, id int64) error
}

// BlogCategoryRepository handles database operations for blog categories
type BlogCategoryRepository struct {
	table[models.BlogCategory]
}

func blogCategorySelect(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return sb.Select(columns("bc", "id", "name", "created_at")...).From("blog_categories bc")
}

// NewBlogCategoryRepository creates a new BlogCategoryRepository
func NewBlogCategoryRepository(db *pgxpool.Pool) *BlogCategoryRepository {
	return &BlogCategoryRepository{table: newTable[models.BlogCategory](db, "blog_categories", "bc", "blog category", blogCategorySelect)}
}

func (r *BlogCategoryRepository) List(ctx context.Context) ([]*models.BlogCategory, error) {
	return r.list(ctx, nil, "bc.name ASC")
}

func (r *BlogCategoryRepository) GetByID(ctx context.Context, id int64) (*models.BlogCategory, error) {
	return r.getByID(ctx, id)
}

func (r *BlogCategoryRepository) Create(ctx context.Context, category *models.BlogCategory) (*models.BlogCategory, error) {
	return r.create(ctx, map[string]interface{}{"name": category.Name})
}

func (r *BlogCategoryRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.BlogCategory, error) {
	return r.update(ctx, id, fields, false)
}

// Delete removes a category. Posts keep their category_id.
func (r *BlogCategoryRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}
