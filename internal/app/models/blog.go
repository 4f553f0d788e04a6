package models

import "time"

// BlogCategory is referenced by blog posts
type BlogCategory struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// BlogPost is an article. Content is stored as HTML.
type BlogPost struct {
	ID              int64      `json:"id" db:"id"`
	Title           string     `json:"title" db:"title"`
	Slug            string     `json:"slug" db:"slug"`
	Excerpt         string     `json:"excerpt" db:"excerpt"`
	Content         string     `json:"content" db:"content"`
	Author          string     `json:"author" db:"author"`
	CategoryID      *int64     `json:"category_id" db:"category_id"`
	FeaturedImage   *string    `json:"featured_image" db:"featured_image"`
	Images          []string   `json:"images" db:"images"`
	ReadTimeMinutes int        `json:"read_time_minutes" db:"read_time_minutes"`
	Status          string     `json:"status" db:"status"`
	PublishedAt     *time.Time `json:"published_at" db:"published_at"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`

	CategoryName *string `json:"category_name,omitempty" db:"category_name"`
}
