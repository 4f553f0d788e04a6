package models

import "time"

// Exam is the root entity. Stages, resource categories, resources and
// exam-info sections point at it by exam_id.
type Exam struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ExamStage is a phase of an exam, e.g. Prelims, Mains or Interview
type ExamStage struct {
	ID          int64     `json:"id" db:"id"`
	ExamID      int64     `json:"exam_id" db:"exam_id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Description string    `json:"description" db:"description"`
	OrderIndex  int       `json:"order_index" db:"order_index"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	ExamName *string `json:"exam_name,omitempty" db:"exam_name"`
}

// Subject belongs to a stage. The exam is reached through the stage.
type Subject struct {
	ID          int64     `json:"id" db:"id"`
	StageID     int64     `json:"stage_id" db:"stage_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	OrderIndex  int       `json:"order_index" db:"order_index"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	StageName *string `json:"stage_name,omitempty" db:"stage_name"`
	ExamID    *int64  `json:"exam_id,omitempty" db:"exam_id"`
	ExamName  *string `json:"exam_name,omitempty" db:"exam_name"`
}

// ExamInfoSection is one tab of an exam detail page
type ExamInfoSection struct {
	ID          int64     `json:"id" db:"id"`
	ExamID      int64     `json:"exam_id" db:"exam_id"`
	SectionType string    `json:"section_type" db:"section_type"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	OrderIndex  int       `json:"order_index" db:"order_index"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	ExamName *string `json:"exam_name,omitempty" db:"exam_name"`
}
