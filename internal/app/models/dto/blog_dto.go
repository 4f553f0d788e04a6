package dto

import (
	"time"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
)

// Content formats accepted for blog posts
const (
	ContentFormatHTML     = "html"
	ContentFormatMarkdown = "markdown"
)

// CreateBlogPostRequest is the body of POST /blog. The slug is always generated.
type CreateBlogPostRequest struct {
	Title           string     `json:"title" binding:"required,notblank,max=500"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"content" binding:"required"`
	ContentFormat   string     `json:"content_format" binding:"omitempty,oneof=html markdown"`
	Author          string     `json:"author" binding:"max=255"`
	CategoryID      *int64     `json:"category_id" binding:"omitempty,gt=0"`
	FeaturedImage   *string    `json:"featured_image"`
	Images          []string   `json:"images"`
	ReadTimeMinutes *int       `json:"read_time_minutes" binding:"omitempty,gt=0"`
	Status          string     `json:"status" binding:"omitempty,oneof=draft published"`
	PublishedAt     *time.Time `json:"published_at"`
}

// ToModel converts the request into a post without applying defaults
func (r *CreateBlogPostRequest) ToModel() *models.BlogPost {
	post := &models.BlogPost{
		Title:         r.Title,
		Excerpt:       r.Excerpt,
		Content:       r.Content,
		Author:        r.Author,
		CategoryID:    r.CategoryID,
		FeaturedImage: r.FeaturedImage,
		Images:        r.Images,
		Status:        r.Status,
		PublishedAt:   r.PublishedAt,
	}
	if r.ReadTimeMinutes != nil {
		post.ReadTimeMinutes = *r.ReadTimeMinutes
	}
	return post
}

// UpdateBlogPostRequest is the body of PUT /blog/:id. The slug never changes.
type UpdateBlogPostRequest struct {
	Title           *string    `json:"title" binding:"omitempty,notblank,max=500"`
	Excerpt         *string    `json:"excerpt"`
	Content         *string    `json:"content" binding:"omitempty,min=1"`
	ContentFormat   string     `json:"content_format" binding:"omitempty,oneof=html markdown"`
	Author          *string    `json:"author" binding:"omitempty,max=255"`
	CategoryID      *int64     `json:"category_id" binding:"omitempty,gt=0"`
	FeaturedImage   *string    `json:"featured_image"`
	Images          *[]string  `json:"images"`
	ReadTimeMinutes *int       `json:"read_time_minutes" binding:"omitempty,gt=0"`
	Status          *string    `json:"status" binding:"omitempty,oneof=draft published"`
	PublishedAt     *time.Time `json:"published_at"`
}

// Fields returns the columns to write. Content and category_id are
// resolved by the blog service before the update.
func (r *UpdateBlogPostRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	setIf(fields, "title", r.Title)
	setIf(fields, "excerpt", r.Excerpt)
	setIf(fields, "content", r.Content)
	setIf(fields, "author", r.Author)
	setIf(fields, "featured_image", r.FeaturedImage)
	setIf(fields, "read_time_minutes", r.ReadTimeMinutes)
	setIf(fields, "status", r.Status)
	setIf(fields, "published_at", r.PublishedAt)
	if r.Images != nil {
		images := *r.Images
		if images == nil {
			images = []string{}
		}
		fields["images"] = images
	}
	return fields
}

// BlogCategoryRequest is the body of POST and PUT /blog-categories
type BlogCategoryRequest struct {
	Name string `json:"name" binding:"required,notblank,max=255"`
}
