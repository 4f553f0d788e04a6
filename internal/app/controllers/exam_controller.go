package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models/dto"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/services"
	"github.com/rushiiaher/CivilPath-sub000/internal/middleware"
)

// ExamController handles exam-related operations
type ExamController struct {
	examService services.ExamService
}

// NewExamController creates a new ExamController
func NewExamController(examService services.ExamService) *ExamController {
	return &ExamController{
		examService: examService,
	}
}

// GetExams lists exams, or returns one exam when id or slug is given
// @Summary List exams
// @Description Lists exams ordered by name. With ?id= or ?slug= the single exam is returned instead of a list.
// @Tags exams
// @Produce json
// @Param id query int false "Exam ID"
// @Param slug query string false "Exam slug"
// @Param status query string false "Filter by status" Enums(active, inactive)
// @Param category query string false "Filter by category"
// @Success 200 {object} dto.ListResponse[models.Exam]
// @Failure 400 {object} dto.ErrorResponse "Invalid exam ID"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams [get]
func (c *ExamController) GetExams(ctx *gin.Context) {
	if ctx.Query("id") != "" {
		id, ok := parseID(ctx, "id", ctx.Query("id"))
		if !ok {
			return
		}
		c.respondExam(ctx, id)
		return
	}

	if slug := ctx.Query("slug"); slug != "" {
		exam, err := c.examService.GetExamBySlug(ctx, slug)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, exam)
		return
	}

	exams, err := c.examService.ListExams(ctx, repositories.ExamFilter{
		Status:   ctx.Query("status"),
		Category: ctx.Query("category"),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(exams))
}

// GetExamByID retrieves an exam by ID
// @Summary Get exam details
// @Tags exams
// @Produce json
// @Param id path int true "Exam ID" Format(int64) minimum(1)
// @Success 200 {object} models.Exam
// @Failure 400 {object} dto.ErrorResponse "Invalid exam ID"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id} [get]
func (c *ExamController) GetExamByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	c.respondExam(ctx, id)
}

func (c *ExamController) respondExam(ctx *gin.Context, id int64) {
	exam, err := c.examService.GetExamByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// CreateExam handles exam creation
// @Summary Create a new exam
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateExamRequest true "Exam information"
// @Success 201 {object} models.Exam "Exam created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Access token required"
// @Failure 409 {object} dto.ErrorResponse "Exam already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.CreateExamRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	exam, err := c.examService.CreateExam(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, exam)
}

// UpdateExam updates an existing exam
// @Summary Update an exam
// @Description Writes only the supplied fields
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam ID" Format(int64) minimum(1)
// @Param request body dto.UpdateExamRequest true "Fields to change"
// @Success 200 {object} models.Exam "Exam updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Access token required"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.ErrorResponse "Exam already exists"
// @Router /exams/{id} [put]
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateExamRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	exam, err := c.examService.UpdateExam(ctx, id, req.Fields())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, exam)
}

// DeleteExam deletes an exam. Stages, subjects and resources of the exam are kept.
// @Summary Delete an exam
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam ID" Format(int64) minimum(1)
// @Success 200 {object} dto.MessageResponse "Exam deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Access token required"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.examService.DeleteExam(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Exam deleted successfully"})
}
