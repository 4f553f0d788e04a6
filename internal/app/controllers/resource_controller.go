package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models/dto"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/services"
	"github.com/rushiiaher/CivilPath-sub000/internal/middleware"
)

// ActionDownload is the ?action= value of a tracked download on POST /resources
const ActionDownload = "download"

// ResourceController handles resources, resource categories and resource types
type ResourceController struct {
	resourceService services.ResourceService
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService services.ResourceService) *ResourceController {
	return &ResourceController{
		resourceService: resourceService,
	}
}

// DownloadPolicy makes POST /resources?action=download public and every other POST admin-only
func DownloadPolicy(ctx *gin.Context) middleware.Policy {
	if ctx.Query("action") == ActionDownload {
		return middleware.PolicyPublic
	}
	return middleware.PolicyAdmin
}

// GetResources lists resources, newest first
// @Summary List resources
// @Tags resources
// @Produce json
// @Param exam_id query int false "Filter by exam"
// @Param stage_id query int false "Filter by stage"
// @Param subject_id query int false "Filter by subject"
// @Param category_id query int false "Filter by resource category"
// @Param resource_type_id query int false "Filter by resource type"
// @Success 200 {object} dto.ListResponse[models.Resource]
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Router /resources [get]
func (c *ResourceController) GetResources(ctx *gin.Context) {
	ids, ok := queryIDs(ctx, "exam_id", "stage_id", "subject_id", "category_id", "resource_type_id")
	if !ok {
		return
	}

	resources, err := c.resourceService.ListResources(ctx, repositories.ResourceFilter{
		ExamID:         ids["exam_id"],
		StageID:        ids["stage_id"],
		SubjectID:      ids["subject_id"],
		CategoryID:     ids["category_id"],
		ResourceTypeID: ids["resource_type_id"],
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(resources))
}

// GetResourceByID retrieves a resource by ID
// @Summary Get resource details
// @Tags resources
// @Produce json
// @Param id path int true "Resource ID" Format(int64) minimum(1)
// @Success 200 {object} models.Resource
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id} [get]
func (c *ResourceController) GetResourceByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	resource, err := c.resourceService.GetResourceByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resource)
}

// PostResource creates a resource, or records a download when ?action=download
// @Summary Create a resource or track a download
// @Description With ?action=download&id=N the download counter of resource N is incremented (public). Otherwise a new resource is created (admin).
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param action query string false "download"
// @Param id query int false "Resource ID for downloads"
// @Param request body dto.CreateResourceRequest false "Resource information"
// @Success 200 {object} dto.DownloadResponse "Download recorded"
// @Success 201 {object} models.Resource "Resource created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Access token required"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources [post]
func (c *ResourceController) PostResource(ctx *gin.Context) {
	if ctx.Query("action") == ActionDownload {
		id, ok := parseID(ctx, "id", ctx.Query("id"))
		if !ok {
			return
		}
		c.recordDownload(ctx, id)
		return
	}

	var req dto.CreateResourceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resource, err := c.resourceService.CreateResource(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resource)
}

// DownloadResource records one download of a resource
// @Summary Track a download
// @Tags resources
// @Produce json
// @Param id path int true "Resource ID" Format(int64) minimum(1)
// @Success 200 {object} dto.DownloadResponse
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id}/download [post]
func (c *ResourceController) DownloadResource(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	c.recordDownload(ctx, id)
}

func (c *ResourceController) recordDownload(ctx *gin.Context, id int64) {
	count, err := c.resourceService.RecordDownload(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DownloadResponse{ID: id, DownloadCount: count})
}

// UpdateResource updates a resource. download_count cannot be set.
// @Summary Update a resource
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID" Format(int64) minimum(1)
// @Param request body dto.UpdateResourceRequest true "Fields to change"
// @Success 200 {object} models.Resource
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id} [put]
func (c *ResourceController) UpdateResource(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateResourceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resource, err := c.resourceService.UpdateResource(ctx, id, req.Fields())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resource)
}

// DeleteResource deletes a resource
// @Summary Delete a resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID" Format(int64) minimum(1)
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse "Access token required"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id} [delete]
func (c *ResourceController) DeleteResource(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.resourceService.DeleteResource(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Resource deleted successfully"})
}

// GetCategories lists resource categories
// @Summary List resource categories
// @Tags resource-categories
// @Produce json
// @Param exam_id query int false "Filter by exam"
// @Param status query string false "Filter by status" Enums(active, inactive)
// @Success 200 {object} dto.ListResponse[models.ResourceCategory]
// @Router /resource-categories [get]
func (c *ResourceController) GetCategories(ctx *gin.Context) {
	examID, ok := queryID(ctx, "exam_id")
	if !ok {
		return
	}

	categories, err := c.resourceService.ListCategories(ctx, repositories.ResourceCategoryFilter{
		ExamID: examID,
		Status: ctx.Query("status"),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(categories))
}

// GetCategoryByID retrieves a resource category
// @Summary Get a resource category
// @Tags resource-categories
// @Produce json
// @Param id path int true "Category ID" Format(int64) minimum(1)
// @Success 200 {object} models.ResourceCategory
// @Router /resource-categories/{id} [get]
func (c *ResourceController) GetCategoryByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	category, err := c.resourceService.GetCategoryByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}

// CreateCategory creates a resource category
// @Summary Create a resource category
// @Tags resource-categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateResourceCategoryRequest true "Category"
// @Success 201 {object} models.ResourceCategory
// @Failure 409 {object} dto.ErrorResponse "Category slug already used for this exam"
// @Router /resource-categories [post]
func (c *ResourceController) CreateCategory(ctx *gin.Context) {
	var req dto.CreateResourceCategoryRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	category, err := c.resourceService.CreateCategory(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

// UpdateCategory updates a resource category
// @Summary Update a resource category
// @Tags resource-categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID" Format(int64) minimum(1)
// @Param request body dto.UpdateResourceCategoryRequest true "Fields to change"
// @Success 200 {object} models.ResourceCategory
// @Router /resource-categories/{id} [put]
func (c *ResourceController) UpdateCategory(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateResourceCategoryRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	category, err := c.resourceService.UpdateCategory(ctx, id, req.Fields())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}

// DeleteCategory deletes a resource category
// @Summary Delete a resource category
// @Tags resource-categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID" Format(int64) minimum(1)
// @Success 200 {object} dto.MessageResponse
// @Router /resource-categories/{id} [delete]
func (c *ResourceController) DeleteCategory(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.resourceService.DeleteCategory(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Category deleted successfully"})
}

// GetTypes lists resource types
// @Summary List resource types
// @Tags resource-types
// @Produce json
// @Success 200 {object} dto.ListResponse[models.ResourceType]
// @Router /resource-types [get]
func (c *ResourceController) GetTypes(ctx *gin.Context) {
	types, err := c.resourceService.ListTypes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(types))
}

// GetTypeByID retrieves a resource type
// @Summary Get a resource type
// @Tags resource-types
// @Produce json
// @Param id path int true "Type ID" Format(int64) minimum(1)
// @Success 200 {object} models.ResourceType
// @Router /resource-types/{id} [get]
func (c *ResourceController) GetTypeByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	resourceType, err := c.resourceService.GetTypeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resourceType)
}

// CreateType creates a resource type
// @Summary Create a resource type
// @Tags resource-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ResourceTypeRequest true "Type"
// @Success 201 {object} models.ResourceType
// @Failure 409 {object} dto.ErrorResponse "Resource type already exists"
// @Router /resource-types [post]
func (c *ResourceController) CreateType(ctx *gin.Context) {
	var req dto.ResourceTypeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resourceType, err := c.resourceService.CreateType(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resourceType)
}

// UpdateType updates a resource type
// @Summary Update a resource type
// @Tags resource-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Type ID" Format(int64) minimum(1)
// @Param request body dto.ResourceTypeRequest true "Type"
// @Success 200 {object} models.ResourceType
// @Router /resource-types/{id} [put]
func (c *ResourceController) UpdateType(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.ResourceTypeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resourceType, err := c.resourceService.UpdateType(ctx, id, req.Fields())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resourceType)
}

// DeleteType deletes a resource type
// @Summary Delete a resource type
// @Tags resource-types
// @Produce json
// @Security BearerAuth
// @Param id path int true "Type ID" Format(int64) minimum(1)
// @Success 200 {object} dto.MessageResponse
// @Router /resource-types/{id} [delete]
func (c *ResourceController) DeleteType(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.resourceService.DeleteType(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Resource type deleted successfully"})
}

// SeedTypes inserts the default resource types into an empty table
// @Summary Seed default resource types
// @Tags resource-types
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SeedResponse
// @Router /resource-types/seed [post]
func (c *ResourceController) SeedTypes(ctx *gin.Context) {
	inserted, err := c.resourceService.SeedTypes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SeedResponse{Inserted: inserted})
}
