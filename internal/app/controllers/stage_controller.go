package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models/dto"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/services"
	"github.com/rushiiaher/CivilPath-sub000/internal/middleware"
)

// StageController handles exam stages and their subjects
type StageController struct {
	stageService services.StageService
}

// NewStageController creates a new StageController
func NewStageController(stageService services.StageService) *StageController {
	return &StageController{
		stageService: stageService,
	}
}

// GetStages lists stages
// @Summary List exam stages
// @Tags stages
// @Produce json
// @Param exam_id query int false "Filter by exam"
// @Success 200 {object} dto.ListResponse[models.ExamStage]
// @Failure 400 {object} dto.ErrorResponse "Invalid exam ID"
// @Router /stages [get]
func (c *StageController) GetStages(ctx *gin.Context) {
	examID, ok := queryID(ctx, "exam_id")
	if !ok {
		return
	}

	stages, err := c.stageService.ListStages(ctx, repositories.StageFilter{ExamID: examID})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(stages))
}

// GetStageByID retrieves a stage by ID
// @Summary Get stage details
// @Tags stages
// @Produce json
// @Param id path int true "Stage ID" Format(int64) minimum(1)
// @Success 200 {object} models.ExamStage
// @Failure 404 {object} dto.ErrorResponse "Stage not found"
// @Router /stages/{id} [get]
func (c *StageController) GetStageByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	stage, err := c.stageService.GetStageByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stage)
}

// CreateStage handles stage creation
// @Summary Create a stage
// @Tags stages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStageRequest true "Stage information"
// @Success 201 {object} models.ExamStage
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Stage slug already used for this exam"
// @Router /stages [post]
func (c *StageController) CreateStage(ctx *gin.Context) {
	var req dto.CreateStageRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	stage, err := c.stageService.CreateStage(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, stage)
}

// UpdateStage updates an existing stage
// @Summary Update a stage
// @Tags stages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Stage ID" Format(int64) minimum(1)
// @Param request body dto.UpdateStageRequest true "Fields to change"
// @Success 200 {object} models.ExamStage
// @Failure 404 {object} dto.ErrorResponse "Stage not found"
// @Router /stages/{id} [put]
func (c *StageController) UpdateStage(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStageRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	stage, err := c.stageService.UpdateStage(ctx, id, req.Fields())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stage)
}

// DeleteStage deletes a stage
// @Summary Delete a stage
// @Tags stages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Stage ID" Format(int64) minimum(1)
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Stage not found"
// @Router /stages/{id} [delete]
func (c *StageController) DeleteStage(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.stageService.DeleteStage(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Stage deleted successfully"})
}

// GetSubjects lists subjects of a stage or of every stage of an exam
// @Summary List subjects
// @Tags subjects
// @Produce json
// @Param stage_id query int false "Filter by stage"
// @Param exam_id query int false "Filter by exam"
// @Success 200 {object} dto.ListResponse[models.Subject]
// @Router /subjects [get]
func (c *StageController) GetSubjects(ctx *gin.Context) {
	ids, ok := queryIDs(ctx, "stage_id", "exam_id")
	if !ok {
		return
	}

	subjects, err := c.stageService.ListSubjects(ctx, repositories.SubjectFilter{
		StageID: ids["stage_id"],
		ExamID:  ids["exam_id"],
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(subjects))
}

// GetSubjectByID retrieves a subject by ID
// @Summary Get subject details
// @Tags subjects
// @Produce json
// @Param id path int true "Subject ID" Format(int64) minimum(1)
// @Success 200 {object} models.Subject
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /subjects/{id} [get]
func (c *StageController) GetSubjectByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	subject, err := c.stageService.GetSubjectByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subject)
}

// CreateSubject handles subject creation
// @Summary Create a subject
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSubjectRequest true "Subject information"
// @Success 201 {object} models.Subject
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /subjects [post]
func (c *StageController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	subject, err := c.stageService.CreateSubject(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, subject)
}

// UpdateSubject updates an existing subject
// @Summary Update a subject
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID" Format(int64) minimum(1)
// @Param request body dto.UpdateSubjectRequest true "Fields to change"
// @Success 200 {object} models.Subject
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /subjects/{id} [put]
func (c *StageController) UpdateSubject(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSubjectRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	subject, err := c.stageService.UpdateSubject(ctx, id, req.Fields())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subject)
}

// DeleteSubject deletes a subject
// @Summary Delete a subject
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID" Format(int64) minimum(1)
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /subjects/{id} [delete]
func (c *StageController) DeleteSubject(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.stageService.DeleteSubject(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Subject deleted successfully"})
}
