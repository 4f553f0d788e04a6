package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models/dto"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/services"
	"github.com/rushiiaher/CivilPath-sub000/internal/middleware"
)

// ExamInfoController serves the pattern, syllabus and eligibility pages of an exam
type ExamInfoController struct {
	examInfoService services.ExamInfoService
}

// NewExamInfoController creates a new ExamInfoController
func NewExamInfoController(examInfoService services.ExamInfoService) *ExamInfoController {
	return &ExamInfoController{examInfoService: examInfoService}
}

// GetSections lists exam information sections
// @Summary List exam information sections
// @Tags exam-info
// @Produce json
// @Param exam_id query int false "Filter by exam"
// @Param section_type query string false "Filter by section type" Enums(pattern, syllabus, eligibility, dates, notification)
// @Success 200 {object} dto.ListResponse[models.ExamInfoSection]
// @Router /exam-info [get]
func (c *ExamInfoController) GetSections(ctx *gin.Context) {
	examID, ok := queryID(ctx, "exam_id")
	if !ok {
		return
	}

	sections, err := c.examInfoService.ListSections(ctx, repositories.ExamInfoFilter{
		ExamID:      examID,
		SectionType: ctx.Query("section_type"),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(sections))
}

// GetSectionByID retrieves one section
// @Summary Get an exam information section
// @Tags exam-info
// @Produce json
// @Param id path int true "Section ID" Format(int64) minimum(1)
// @Success 200 {object} models.ExamInfoSection
// @Failure 404 {object} dto.ErrorResponse "Exam info section not found"
// @Router /exam-info/{id} [get]
func (c *ExamInfoController) GetSectionByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	section, err := c.examInfoService.GetSectionByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, section)
}

// CreateSection handles section creation
// @Summary Create an exam information section
// @Tags exam-info
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateExamInfoRequest true "Section"
// @Success 201 {object} models.ExamInfoSection
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /exam-info [post]
func (c *ExamInfoController) CreateSection(ctx *gin.Context) {
	var req dto.CreateExamInfoRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	section, err := c.examInfoService.CreateSection(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, section)
}

// UpdateSection updates a section
// @Summary Update an exam information section
// @Tags exam-info
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Section ID" Format(int64) minimum(1)
// @Param request body dto.UpdateExamInfoRequest true "Fields to change"
// @Success 200 {object} models.ExamInfoSection
// @Router /exam-info/{id} [put]
func (c *ExamInfoController) UpdateSection(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateExamInfoRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	section, err := c.examInfoService.UpdateSection(ctx, id, req.Fields())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, section)
}

// DeleteSection deletes a section
// @Summary Delete an exam information section
// @Tags exam-info
// @Produce json
// @Security BearerAuth
// @Param id path int true "Section ID" Format(int64) minimum(1)
// @Success 200 {object} dto.MessageResponse
// @Router /exam-info/{id} [delete]
func (c *ExamInfoController) DeleteSection(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.examInfoService.DeleteSection(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Exam info section deleted successfully"})
}
