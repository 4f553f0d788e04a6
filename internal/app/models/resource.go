package models

import "time"

// ResourceCategory groups resources of one exam
type ResourceCategory struct {
	ID          int64     `json:"id" db:"id"`
	ExamID      int64     `json:"exam_id" db:"exam_id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Description string    `json:"description" db:"description"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	ExamName *string `json:"exam_name,omitempty" db:"exam_name"`
}

// ResourceType is an entry of the small lookup set (Previous Papers, Notes, ...)
type ResourceType struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Resource is a downloadable file or external link attached to an exam
type Resource struct {
	ID             int64     `json:"id" db:"id"`
	ExamID         int64     `json:"exam_id" db:"exam_id"`
	StageID        *int64    `json:"stage_id" db:"stage_id"`
	SubjectID      *int64    `json:"subject_id" db:"subject_id"`
	CategoryID     *int64    `json:"category_id" db:"category_id"`
	ResourceTypeID *int64    `json:"resource_type_id" db:"resource_type_id"`
	Title          string    `json:"title" db:"title"`
	Description    string    `json:"description" db:"description"`
	FilePath       *string   `json:"file_path" db:"file_path"`
	ExternalURL    *string   `json:"external_url" db:"external_url"`
	FileType       *string   `json:"file_type" db:"file_type"`
	Author         *string   `json:"author" db:"author"`
	Year           *int      `json:"year" db:"year"`
	DownloadCount  int64     `json:"download_count" db:"download_count"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`

	ExamName         *string `json:"exam_name,omitempty" db:"exam_name"`
	StageName        *string `json:"stage_name,omitempty" db:"stage_name"`
	SubjectName      *string `json:"subject_name,omitempty" db:"subject_name"`
	CategoryName     *string `json:"category_name,omitempty" db:"category_name"`
	ResourceTypeName *string `json:"resource_type_name,omitempty" db:"resource_type_name"`
}
