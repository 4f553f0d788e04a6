package dto

import "github.com/rushiiaher/CivilPath-sub000/internal/app/models"

// CreateExamRequest is the body of POST /exams. Slug defaults to the slugified name.
type CreateExamRequest struct {
	Name        string `json:"name" binding:"required,notblank,max=255"`
	Slug        string `json:"slug" binding:"omitempty,max=255"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"max=100"`
	Status      string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ToModel converts the request into an exam
func (r *CreateExamRequest) ToModel() *models.Exam {
	return &models.Exam{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Category:    r.Category,
		Status:      r.Status,
	}
}

// UpdateExamRequest is the body of PUT /exams/:id. Nil fields are left unchanged.
type UpdateExamRequest struct {
	Name        *string `json:"name" binding:"omitempty,notblank,max=255"`
	Slug        *string `json:"slug" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	Category    *string `json:"category" binding:"omitempty,max=100"`
	Status      *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// Fields returns the columns to write
func (r *UpdateExamRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	setIf(fields, "name", r.Name)
	setIf(fields, "slug", r.Slug)
	setIf(fields, "description", r.Description)
	setIf(fields, "category", r.Category)
	setIf(fields, "status", r.Status)
	return fields
}

// CreateStageRequest is the body of POST /stages
type CreateStageRequest struct {
	ExamID      int64  `json:"exam_id" binding:"required,gt=0"`
	Name        string `json:"name" binding:"required,notblank,max=255"`
	Slug        string `json:"slug" binding:"omitempty,max=255"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
}

// ToModel converts the request into a stage
func (r *CreateStageRequest) ToModel() *models.ExamStage {
	return &models.ExamStage{
		ExamID:      r.ExamID,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		OrderIndex:  r.OrderIndex,
	}
}

// UpdateStageRequest is the body of PUT /stages/:id
type UpdateStageRequest struct {
	ExamID      *int64  `json:"exam_id" binding:"omitempty,gt=0"`
	Name        *string `json:"name" binding:"omitempty,notblank,max=255"`
	Slug        *string `json:"slug" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"order_index"`
}

// Fields returns the columns to write
func (r *UpdateStageRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	setIf(fields, "exam_id", r.ExamID)
	setIf(fields, "name", r.Name)
	setIf(fields, "slug", r.Slug)
	setIf(fields, "description", r.Description)
	setIf(fields, "order_index", r.OrderIndex)
	return fields
}

// CreateSubjectRequest is the body of POST /subjects
type CreateSubjectRequest struct {
	StageID     int64  `json:"stage_id" binding:"required,gt=0"`
	Name        string `json:"name" binding:"required,notblank,max=255"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
}

// ToModel converts the request into a subject
func (r *CreateSubjectRequest) ToModel() *models.Subject {
	return &models.Subject{
		StageID:     r.StageID,
		Name:        r.Name,
		Description: r.Description,
		OrderIndex:  r.OrderIndex,
	}
}

// UpdateSubjectRequest is the body of PUT /subjects/:id
type UpdateSubjectRequest struct {
	StageID     *int64  `json:"stage_id" binding:"omitempty,gt=0"`
	Name        *string `json:"name" binding:"omitempty,notblank,max=255"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"order_index"`
}

// Fields returns the columns to write
func (r *UpdateSubjectRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	setIf(fields, "stage_id", r.StageID)
	setIf(fields, "name", r.Name)
	setIf(fields, "description", r.Description)
	setIf(fields, "order_index", r.OrderIndex)
	return fields
}

// CreateExamInfoRequest is the body of POST /exam-info
type CreateExamInfoRequest struct {
	ExamID      int64  `json:"exam_id" binding:"required,gt=0"`
	SectionType string `json:"section_type" binding:"required,oneof=pattern syllabus eligibility dates notification"`
	Title       string `json:"title" binding:"required,notblank,max=255"`
	Content     string `json:"content"`
	OrderIndex  int    `json:"order_index"`
}

// ToModel converts the request into an exam-info section
func (r *CreateExamInfoRequest) ToModel() *models.ExamInfoSection {
	return &models.ExamInfoSection{
		ExamID:      r.ExamID,
		SectionType: r.SectionType,
		Title:       r.Title,
		Content:     r.Content,
		OrderIndex:  r.OrderIndex,
	}
}

// UpdateExamInfoRequest is the body of PUT /exam-info/:id
type UpdateExamInfoRequest struct {
	ExamID      *int64  `json:"exam_id" binding:"omitempty,gt=0"`
	SectionType *string `json:"section_type" binding:"omitempty,oneof=pattern syllabus eligibility dates notification"`
	Title       *string `json:"title" binding:"omitempty,notblank,max=255"`
	Content     *string `json:"content"`
	OrderIndex  *int    `json:"order_index"`
}

// Fields returns the columns to write
func (r *UpdateExamInfoRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	setIf(fields, "exam_id", r.ExamID)
	setIf(fields, "section_type", r.SectionType)
	setIf(fields, "title", r.Title)
	setIf(fields, "content", r.Content)
	setIf(fields, "order_index", r.OrderIndex)
	return fields
}
