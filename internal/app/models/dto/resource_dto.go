package dto

import "github.com/rushiiaher/CivilPath-sub000/internal/app/models"

// CreateResourceCategoryRequest is the body of POST /resource-categories
type CreateResourceCategoryRequest struct {
	ExamID      int64  `json:"exam_id" binding:"required,gt=0"`
	Name        string `json:"name" binding:"required,notblank,max=255"`
	Slug        string `json:"slug" binding:"omitempty,max=255"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ToModel converts the request into a resource category
func (r *CreateResourceCategoryRequest) ToModel() *models.ResourceCategory {
	return &models.ResourceCategory{
		ExamID:      r.ExamID,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Status:      r.Status,
	}
}

// UpdateResourceCategoryRequest is the body of PUT /resource-categories/:id
type UpdateResourceCategoryRequest struct {
	ExamID      *int64  `json:"exam_id" binding:"omitempty,gt=0"`
	Name        *string `json:"name" binding:"omitempty,notblank,max=255"`
	Slug        *string `json:"slug" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// Fields returns the columns to write
func (r *UpdateResourceCategoryRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	setIf(fields, "exam_id", r.ExamID)
	setIf(fields, "name", r.Name)
	setIf(fields, "slug", r.Slug)
	setIf(fields, "description", r.Description)
	setIf(fields, "status", r.Status)
	return fields
}

// CreateResourceRequest is the body of POST /resources
type CreateResourceRequest struct {
	ExamID         int64   `json:"exam_id" binding:"required,gt=0"`
	StageID        *int64  `json:"stage_id" binding:"omitempty,gt=0"`
	SubjectID      *int64  `json:"subject_id" binding:"omitempty,gt=0"`
	CategoryID     *int64  `json:"category_id" binding:"omitempty,gt=0"`
	ResourceTypeID *int64  `json:"resource_type_id" binding:"omitempty,gt=0"`
	Title          string  `json:"title" binding:"required,notblank,max=500"`
	Description    string  `json:"description"`
	FilePath       *string `json:"file_path"`
	ExternalURL    *string `json:"external_url" binding:"omitempty,url"`
	FileType       *string `json:"file_type" binding:"omitempty,max=50"`
	Author         *string `json:"author" binding:"omitempty,max=255"`
	Year           *int    `json:"year" binding:"omitempty,gte=1900,lte=2100"`
}

// ToModel converts the request into a resource
func (r *CreateResourceRequest) ToModel() *models.Resource {
	return &models.Resource{
		ExamID:         r.ExamID,
		StageID:        r.StageID,
		SubjectID:      r.SubjectID,
		CategoryID:     r.CategoryID,
		ResourceTypeID: r.ResourceTypeID,
		Title:          r.Title,
		Description:    r.Description,
		FilePath:       r.FilePath,
		ExternalURL:    r.ExternalURL,
		FileType:       r.FileType,
		Author:         r.Author,
		Year:           r.Year,
	}
}

// UpdateResourceRequest is the body of PUT /resources/:id.
// download_count is not writable.
type UpdateResourceRequest struct {
	ExamID         *int64  `json:"exam_id" binding:"omitempty,gt=0"`
	StageID        *int64  `json:"stage_id" binding:"omitempty,gt=0"`
	SubjectID      *int64  `json:"subject_id" binding:"omitempty,gt=0"`
	CategoryID     *int64  `json:"category_id" binding:"omitempty,gt=0"`
	ResourceTypeID *int64  `json:"resource_type_id" binding:"omitempty,gt=0"`
	Title          *string `json:"title" binding:"omitempty,notblank,max=500"`
	Description    *string `json:"description"`
	FilePath       *string `json:"file_path"`
	ExternalURL    *string `json:"external_url" binding:"omitempty,url"`
	FileType       *string `json:"file_type" binding:"omitempty,max=50"`
	Author         *string `json:"author" binding:"omitempty,max=255"`
	Year           *int    `json:"year" binding:"omitempty,gte=1900,lte=2100"`
}

// Fields returns the columns to write
func (r *UpdateResourceRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	setIf(fields, "exam_id", r.ExamID)
	setIf(fields, "stage_id", r.StageID)
	setIf(fields, "subject_id", r.SubjectID)
	setIf(fields, "category_id", r.CategoryID)
	setIf(fields, "resource_type_id", r.ResourceTypeID)
	setIf(fields, "title", r.Title)
	setIf(fields, "description", r.Description)
	setIf(fields, "file_path", r.FilePath)
	setIf(fields, "external_url", r.ExternalURL)
	setIf(fields, "file_type", r.FileType)
	setIf(fields, "author", r.Author)
	setIf(fields, "year", r.Year)
	return fields
}

// DownloadResponse is returned after a tracked download
type DownloadResponse struct {
	ID            int64 `json:"id"`
	DownloadCount int64 `json:"download_count"`
}

// ResourceTypeRequest is the body of POST and PUT /resource-types
type ResourceTypeRequest struct {
	Name        string  `json:"name" binding:"required,notblank,max=100"`
	Description *string `json:"description"`
}

// ToModel converts the request into a resource type
func (r *ResourceTypeRequest) ToModel() *models.ResourceType {
	rt := &models.ResourceType{Name: r.Name}
	if r.Description != nil {
		rt.Description = *r.Description
	}
	return rt
}

// Fields returns the columns to write
func (r *ResourceTypeRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{"name": r.Name}
	setIf(fields, "description", r.Description)
	return fields
}

// SeedResponse reports how many default rows were inserted
type SeedResponse struct {
	Inserted int `json:"inserted"`
}
