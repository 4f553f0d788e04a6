package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models/dto"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/services"
	"github.com/rushiiaher/CivilPath-sub000/internal/middleware"
)

// BlogController handles blog posts and blog categories
type BlogController struct {
	blogService services.BlogService
}

// NewBlogController creates a new BlogController
func NewBlogController(blogService services.BlogService) *BlogController {
	return &BlogController{
		blogService: blogService,
	}
}

// GetPosts lists posts, or returns one post when id or slug is given.
// Drafts are only visible with a valid admin token.
// @Summary List blog posts
// @Tags blog
// @Produce json
// @Security BearerAuth
// @Param id query int false "Post ID"
// @Param slug query string false "Post slug"
// @Param category_id query int false "Filter by blog category"
// @Param status query string false "Filter by status" Enums(draft, published)
// @Success 200 {object} dto.ListResponse[models.BlogPost]
// @Failure 404 {object} dto.ErrorResponse "Blog post not found"
// @Router /blog [get]
func (c *BlogController) GetPosts(ctx *gin.Context) {
	includeDrafts := middleware.IsAuthenticated(ctx)

	if ctx.Query("id") != "" {
		id, ok := parseID(ctx, "id", ctx.Query("id"))
		if !ok {
			return
		}
		c.respondPost(ctx, id, includeDrafts)
		return
	}

	if slug := ctx.Query("slug"); slug != "" {
		post, err := c.blogService.GetPostBySlug(ctx, slug, includeDrafts)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, post)
		return
	}

	categoryID, ok := queryID(ctx, "category_id")
	if !ok {
		return
	}

	posts, err := c.blogService.ListPosts(ctx, repositories.BlogPostFilter{
		CategoryID: categoryID,
		Status:     ctx.Query("status"),
	}, includeDrafts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(posts))
}

// GetPostByID retrieves a post by ID
// @Summary Get a blog post
// @Tags blog
// @Produce json
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Success 200 {object} models.BlogPost
// @Failure 404 {object} dto.ErrorResponse "Blog post not found"
// @Router /blog/{id} [get]
func (c *BlogController) GetPostByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	c.respondPost(ctx, id, middleware.IsAuthenticated(ctx))
}

func (c *BlogController) respondPost(ctx *gin.Context, id int64, includeDrafts bool) {
	post, err := c.blogService.GetPostByID(ctx, id, includeDrafts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, post)
}

// CreatePost creates a blog post with a generated unique slug
// @Summary Create a blog post
// @Description Defaults: status published, images [], read_time_minutes 5. content_format markdown renders the content to HTML.
// @Tags blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBlogPostRequest true "Post"
// @Success 201 {object} models.BlogPost
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Access token required"
// @Router /blog [post]
func (c *BlogController) CreatePost(ctx *gin.Context) {
	var req dto.CreateBlogPostRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	post, err := c.blogService.CreatePost(ctx, req.ToModel(), req.ContentFormat)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, post)
}

// UpdatePost updates a blog post. The slug is kept.
// @Summary Update a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Param request body dto.UpdateBlogPostRequest true "Fields to change"
// @Success 200 {object} models.BlogPost
// @Failure 404 {object} dto.ErrorResponse "Blog post not found"
// @Router /blog/{id} [put]
func (c *BlogController) UpdatePost(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateBlogPostRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	post, err := c.blogService.UpdatePost(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// DeletePost deletes a blog post
// @Summary Delete a blog post
// @Tags blog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Success 200 {object} dto.MessageResponse
// @Router /blog/{id} [delete]
func (c *BlogController) DeletePost(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.blogService.DeletePost(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Blog post deleted successfully"})
}

// GetCategories lists blog categories
// @Summary List blog categories
// @Tags blog-categories
// @Produce json
// @Success 200 {object} dto.ListResponse[models.BlogCategory]
// @Router /blog-categories [get]
func (c *BlogController) GetCategories(ctx *gin.Context) {
	categories, err := c.blogService.ListCategories(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(categories))
}

// GetCategoryByID retrieves a blog category
// @Summary Get a blog category
// @Tags blog-categories
// @Produce json
// @Param id path int true "Category ID" Format(int64) minimum(1)
// @Success 200 {object} models.BlogCategory
// @Router /blog-categories/{id} [get]
func (c *BlogController) GetCategoryByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	category, err := c.blogService.GetCategoryByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}

// CreateCategory creates a blog category
// @Summary Create a blog category
// @Tags blog-categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BlogCategoryRequest true "Category"
// @Success 201 {object} models.BlogCategory
// @Failure 409 {object} dto.ErrorResponse "Blog category already exists"
// @Router /blog-categories [post]
func (c *BlogController) CreateCategory(ctx *gin.Context) {
	var req dto.BlogCategoryRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	category, err := c.blogService.CreateCategory(ctx, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

// UpdateCategory renames a blog category
// @Summary Update a blog category
// @Tags blog-categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID" Format(int64) minimum(1)
// @Param request body dto.BlogCategoryRequest true "Category"
// @Success 200 {object} models.BlogCategory
// @Router /blog-categories/{id} [put]
func (c *BlogController) UpdateCategory(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.BlogCategoryRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	category, err := c.blogService.UpdateCategory(ctx, id, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}

// DeleteCategory deletes a blog category. Posts keep the dangling category id.
// @Summary Delete a blog category
// @Tags blog-categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID" Format(int64) minimum(1)
// @Success 200 {object} dto.MessageResponse
// @Router /blog-categories/{id} [delete]
func (c *BlogController) DeleteCategory(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.blogService.DeleteCategory(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Blog category deleted successfully"})
}
