package routes

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/controllers"
	"github.com/rushiiaher/CivilPath-sub000/internal/middleware"
)

// Options controls where the API is mounted and what is served next to it
type Options struct {
	BasePath    string // API prefix, e.g. "/api"; "" or "/" mounts at the root
	UploadsPath string // local upload directory served under /uploads, empty to disable
}

// crud is the handler set of one collection resource
type crud struct {
	list, get, create, update, remove gin.HandlerFunc
}

// register mounts the collection with public reads and admin writes
func (h crud) register(group *gin.RouterGroup, read, write gin.HandlerFunc) {
	group.GET("", read, h.list)
	group.GET("/:id", read, h.get)
	if h.create != nil {
		group.POST("", write, h.create)
	}
	group.PUT("/:id", write, h.update)
	group.DELETE("/:id", write, h.remove)
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *controllers.Controllers, authMiddleware *middleware.AuthMiddleware, opts Options) {
	router.HandleMethodNotAllowed = true
	router.NoRoute(middleware.NotFound)
	router.NoMethod(middleware.MethodNotAllowed)

	router.GET("/health", controllers.Health)
	if opts.UploadsPath != "" {
		router.Static("/uploads", opts.UploadsPath)
	}

	public := authMiddleware.Enforce(middleware.PolicyPublic)
	optional := authMiddleware.Enforce(middleware.PolicyOptional)
	admin := authMiddleware.Enforce(middleware.PolicyAdmin)

	basePath := strings.TrimRight(opts.BasePath, "/")
	api := router.Group(basePath)
	if basePath != "" {
		api.GET("/health", controllers.Health)
	}

	// --- Auth ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", public, c.Auth.Login)
		auth.POST("/create-admin", public, c.Auth.CreateAdmin)
		auth.GET("/me", admin, c.Auth.Me)
	}

	// --- Exam catalogue ---
	crud{c.Exam.GetExams, c.Exam.GetExamByID, c.Exam.CreateExam, c.Exam.UpdateExam, c.Exam.DeleteExam}.
		register(api.Group("/exams"), public, admin)
	crud{c.Stage.GetStages, c.Stage.GetStageByID, c.Stage.CreateStage, c.Stage.UpdateStage, c.Stage.DeleteStage}.
		register(api.Group("/stages"), public, admin)
	crud{c.Stage.GetSubjects, c.Stage.GetSubjectByID, c.Stage.CreateSubject, c.Stage.UpdateSubject, c.Stage.DeleteSubject}.
		register(api.Group("/subjects"), public, admin)
	crud{c.ExamInfo.GetSections, c.ExamInfo.GetSectionByID, c.ExamInfo.CreateSection, c.ExamInfo.UpdateSection, c.ExamInfo.DeleteSection}.
		register(api.Group("/exam-info"), public, admin)

	// --- Resources ---
	categories := crud{c.Resource.GetCategories, c.Resource.GetCategoryByID, c.Resource.CreateCategory, c.Resource.UpdateCategory, c.Resource.DeleteCategory}
	categories.register(api.Group("/resource-categories"), public, admin)
	categories.register(api.Group("/categories"), public, admin)

	resources := api.Group("/resources")
	{
		// create is registered below with a per-request policy
		crud{list: c.Resource.GetResources, get: c.Resource.GetResourceByID, update: c.Resource.UpdateResource, remove: c.Resource.DeleteResource}.
			register(resources, public, admin)
		resources.POST("", authMiddleware.EnforceFunc(controllers.DownloadPolicy), c.Resource.PostResource)
		resources.POST("/:id/download", public, c.Resource.DownloadResource)
	}

	resourceTypes := api.Group("/resource-types")
	{
		crud{c.Resource.GetTypes, c.Resource.GetTypeByID, c.Resource.CreateType, c.Resource.UpdateType, c.Resource.DeleteType}.
			register(resourceTypes, public, admin)
		resourceTypes.POST("/seed", admin, c.Resource.SeedTypes)
	}

	// --- Blog ---
	crud{c.Blog.GetPosts, c.Blog.GetPostByID, c.Blog.CreatePost, c.Blog.UpdatePost, c.Blog.DeletePost}.
		register(api.Group("/blog"), optional, admin)
	crud{c.Blog.GetCategories, c.Blog.GetCategoryByID, c.Blog.CreateCategory, c.Blog.UpdateCategory, c.Blog.DeleteCategory}.
		register(api.Group("/blog-categories"), public, admin)

	// --- Uploads ---
	crud{c.Upload.GetUploads, c.Upload.GetUploadByID, c.Upload.Upload, nil, c.Upload.DeleteUpload}.
		registerAdmin(api.Group("/upload"), admin)
}

// registerAdmin mounts the collection behind the admin policy only
func (h crud) registerAdmin(group *gin.RouterGroup, admin gin.HandlerFunc) {
	group.Use(admin)
	group.GET("", h.list)
	group.GET("/:id", h.get)
	group.POST("", h.create)
	group.DELETE("/:id", h.remove)
}
