package mocks

import (
	"context"
	"sort"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
)

// BlogPostRepository is an in-memory IBlogPostRepository
type BlogPostRepository struct {
	*store[models.BlogPost]
}

func NewBlogPostRepository() *BlogPostRepository {
	return &BlogPostRepository{newStore("blog post", func(p *models.BlogPost) string { return p.Slug })}
}

func (r *BlogPostRepository) List(_ context.Context, f repositories.BlogPostFilter) ([]*models.BlogPost, error) {
	rows := r.all(func(p *models.BlogPost) bool {
		return matchID(f.CategoryID, p.CategoryID) && (f.Status == "" || p.Status == f.Status)
	})
	return newestFirst(rows), nil
}

func (r *BlogPostRepository) GetByID(_ context.Context, id int64) (*models.BlogPost, error) {
	return r.get(id)
}

func (r *BlogPostRepository) GetBySlug(_ context.Context, slug string) (*models.BlogPost, error) {
	return r.find(func(p *models.BlogPost) bool { return p.Slug == slug })
}

func (r *BlogPostRepository) Create(_ context.Context, post *models.BlogPost) (*models.BlogPost, error) {
	record := *post
	if record.Images == nil {
		record.Images = []string{}
	}
	return r.insert(&record)
}

func (r *BlogPostRepository) Update(_ context.Context, id int64, fields map[string]interface{}) (*models.BlogPost, error) {
	return r.update(id, fields)
}

func (r *BlogPostRepository) Delete(_ context.Context, id int64) error {
	return r.remove(id)
}

// BlogCategoryRepository is an in-memory IBlogCategoryRepository
type BlogCategoryRepository struct {
	*store[models.BlogCategory]
}

func NewBlogCategoryRepository() *BlogCategoryRepository {
	return &BlogCategoryRepository{newStore("blog category", func(c *models.BlogCategory) string { return c.Name })}
}

func (r *BlogCategoryRepository) List(_ context.Context) ([]*models.BlogCategory, error) {
	rows := r.all(nil)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

func (r *BlogCategoryRepository) GetByID(_ context.Context, id int64) (*models.BlogCategory, error) {
	return r.get(id)
}

func (r *BlogCategoryRepository) Create(_ context.Context, category *models.BlogCategory) (*models.BlogCategory, error) {
	return r.insert(category)
}

func (r *BlogCategoryRepository) Update(_ context.Context, id int64, fields map[string]interface{}) (*models.BlogCategory, error) {
	return r.update(id, fields)
}

func (r *BlogCategoryRepository) Delete(_ context.Context, id int64) error {
	return r.remove(id)
}

// FileUploadRepository is an in-memory IFileUploadRepository
type FileUploadRepository struct {
	*store[models.FileUpload]
}

func NewFileUploadRepository() *FileUploadRepository {
	return &FileUploadRepository{newStore[models.FileUpload]("file", nil)}
}

func (r *FileUploadRepository) List(_ context.Context) ([]*models.FileUpload, error) {
	return newestFirst(r.all(nil)), nil
}

func (r *FileUploadRepository) GetByID(_ context.Context, id int64) (*models.FileUpload, error) {
	return r.get(id)
}

func (r *FileUploadRepository) Create(_ context.Context, upload *models.FileUpload) (*models.FileUpload, error) {
	return r.insert(upload)
}

func (r *FileUploadRepository) Delete(_ context.Context, id int64) error {
	return r.remove(id)
}
