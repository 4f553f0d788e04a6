package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models/dto"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/services"
	"github.com/rushiiaher/CivilPath-sub000/internal/middleware"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
)

// UploadController handles admin file uploads
type UploadController struct {
	uploadService services.UploadService
}

// NewUploadController creates a new UploadController
func NewUploadController(uploadService services.UploadService) *UploadController {
	return &UploadController{
		uploadService: uploadService,
	}
}

// Upload stores a file and records it
// @Summary Upload a file
// @Description Stores the file under the optional folder and returns its public path
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File"
// @Param folder formData string false "Target folder"
// @Success 201 {object} models.FileUpload "File uploaded"
// @Failure 400 {object} dto.ErrorResponse "Invalid or missing file"
// @Failure 401 {object} dto.ErrorResponse "Access token required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /upload [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	// multipart overhead on top of the file itself
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, services.MaxUploadSize+1<<20)

	file, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid or missing file"))
		return
	}

	upload, err := c.uploadService.Upload(ctx, file, ctx.PostForm("folder"), middleware.AdminIDFrom(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, upload)
}

// GetUploads lists uploaded files, newest first
// @Summary List uploads
// @Tags upload
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ListResponse[models.FileUpload]
// @Router /upload [get]
func (c *UploadController) GetUploads(ctx *gin.Context) {
	uploads, err := c.uploadService.ListUploads(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(uploads))
}

// GetUploadByID retrieves an upload record
// @Summary Get an upload
// @Tags upload
// @Produce json
// @Security BearerAuth
// @Param id path int true "Upload ID" Format(int64) minimum(1)
// @Success 200 {object} models.FileUpload
// @Failure 404 {object} dto.ErrorResponse "File upload not found"
// @Router /upload/{id} [get]
func (c *UploadController) GetUploadByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	upload, err := c.uploadService.GetUploadByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, upload)
}

// DeleteUpload removes the record and the stored file
// @Summary Delete an upload
// @Tags upload
// @Produce json
// @Security BearerAuth
// @Param id path int true "Upload ID" Format(int64) minimum(1)
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "File upload not found"
// @Router /upload/{id} [delete]
func (c *UploadController) DeleteUpload(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.uploadService.DeleteUpload(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "File deleted successfully"})
}
