package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
)

// ResourceService defines the interface for resources and their lookup tables
type ResourceService interface {
	ListResources(ctx context.Context, filter repositories.ResourceFilter) ([]*models.Resource, error)
	GetResourceByID(ctx context.Context, id int64) (*models.Resource, error)
	CreateResource(ctx context.Context, resource *models.Resource) (*models.Resource, error)
	UpdateResource(ctx context.Context, id int64, fields map[string]interface{}) (*models.Resource, error)
	DeleteResource(ctx context.Context, id int64) error
	RecordDownload(ctx context.Context, id int64) (int64, error)

	ListCategories(ctx context.Context, filter repositories.ResourceCategoryFilter) ([]*models.ResourceCategory, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.ResourceCategory, error)
	CreateCategory(ctx context.Context, category *models.ResourceCategory) (*models.ResourceCategory, error)
	UpdateCategory(ctx context.Context, id int64, fields map[string]interface{}) (*models.ResourceCategory, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListTypes(ctx context.Context) ([]*models.ResourceType, error)
	GetTypeByID(ctx context.Context, id int64) (*models.ResourceType, error)
	CreateType(ctx context.Context, resourceType *models.ResourceType) (*models.ResourceType, error)
	UpdateType(ctx context.Context, id int64, fields map[string]interface{}) (*models.ResourceType, error)
	DeleteType(ctx context.Context, id int64) error
	SeedTypes(ctx context.Context) (int, error)
}

type resourceServiceImpl struct {
	resourceRepo repositories.IResourceRepository
	categoryRepo repositories.IResourceCategoryRepository
	typeRepo     repositories.IResourceTypeRepository
	logger       zerolog.Logger
}

// NewResourceService creates a new resource service instance
func NewResourceService(
	resourceRepo repositories.IResourceRepository,
	categoryRepo repositories.IResourceCategoryRepository,
	typeRepo repositories.IResourceTypeRepository,
	logger zerolog.Logger,
) ResourceService {
	return &resourceServiceImpl{
		resourceRepo: resourceRepo,
		categoryRepo: categoryRepo,
		typeRepo:     typeRepo,
		logger:       logger,
	}
}

func (s *resourceServiceImpl) ListResources(ctx context.Context, filter repositories.ResourceFilter) ([]*models.Resource, error) {
	return s.resourceRepo.List(ctx, filter)
}

func (s *resourceServiceImpl) GetResourceByID(ctx context.Context, id int64) (*models.Resource, error) {
	if err := validID("resource ID", id); err != nil {
		return nil, err
	}
	return s.resourceRepo.GetByID(ctx, id)
}

// CreateResource stores a resource with a zero download count. Related ids
// are stored as given, even when they do not resolve.
func (s *resourceServiceImpl) CreateResource(ctx context.Context, resource *models.Resource) (*models.Resource, error) {
	if err := validID("exam_id", resource.ExamID); err != nil {
		return nil, err
	}
	title, err := requireName("title", resource.Title)
	if err != nil {
		return nil, err
	}

	record := *resource
	record.Title = title
	record.DownloadCount = 0
	return s.resourceRepo.Create(ctx, &record)
}

func (s *resourceServiceImpl) UpdateResource(ctx context.Context, id int64, fields map[string]interface{}) (*models.Resource, error) {
	if err := validID("resource ID", id); err != nil {
		return nil, err
	}
	delete(fields, "download_count")
	if err := normalizeUpdate(fields); err != nil {
		return nil, err
	}
	return s.resourceRepo.Update(ctx, id, fields)
}

func (s *resourceServiceImpl) DeleteResource(ctx context.Context, id int64) error {
	if err := validID("resource ID", id); err != nil {
		return err
	}
	return s.resourceRepo.Delete(ctx, id)
}

// RecordDownload adds exactly one to the download counter
func (s *resourceServiceImpl) RecordDownload(ctx context.Context, id int64) (int64, error) {
	if err := validID("resource ID", id); err != nil {
		return 0, err
	}
	count, err := s.resourceRepo.IncrementDownloadCount(ctx, id)
	if err != nil {
		return 0, err
	}
	s.logger.Debug().Int64("resourceID", id).Int64("downloads", count).Msg("Download recorded")
	return count, nil
}

func (s *resourceServiceImpl) ListCategories(ctx context.Context, filter repositories.ResourceCategoryFilter) ([]*models.ResourceCategory, error) {
	return s.categoryRepo.List(ctx, filter)
}

func (s *resourceServiceImpl) GetCategoryByID(ctx context.Context, id int64) (*models.ResourceCategory, error) {
	if err := validID("category ID", id); err != nil {
		return nil, err
	}
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *resourceServiceImpl) CreateCategory(ctx context.Context, category *models.ResourceCategory) (*models.ResourceCategory, error) {
	if err := validID("exam_id", category.ExamID); err != nil {
		return nil, err
	}
	name, err := requireName("name", category.Name)
	if err != nil {
		return nil, err
	}
	slug, err := slugOrDefault(category.Slug, name)
	if err != nil {
		return nil, err
	}

	record := *category
	record.Name = name
	record.Slug = slug
	if record.Status == "" {
		record.Status = models.StatusActive
	}
	return s.categoryRepo.Create(ctx, &record)
}

func (s *resourceServiceImpl) UpdateCategory(ctx context.Context, id int64, fields map[string]interface{}) (*models.ResourceCategory, error) {
	if err := validID("category ID", id); err != nil {
		return nil, err
	}
	if err := normalizeUpdate(fields); err != nil {
		return nil, err
	}
	return s.categoryRepo.Update(ctx, id, fields)
}

func (s *resourceServiceImpl) DeleteCategory(ctx context.Context, id int64) error {
	if err := validID("category ID", id); err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, id)
}

func (s *resourceServiceImpl) ListTypes(ctx context.Context) ([]*models.ResourceType, error) {
	return s.typeRepo.List(ctx)
}

func (s *resourceServiceImpl) GetTypeByID(ctx context.Context, id int64) (*models.ResourceType, error) {
	if err := validID("resource type ID", id); err != nil {
		return nil, err
	}
	return s.typeRepo.GetByID(ctx, id)
}

func (s *resourceServiceImpl) CreateType(ctx context.Context, resourceType *models.ResourceType) (*models.ResourceType, error) {
	name, err := requireName("name", resourceType.Name)
	if err != nil {
		return nil, err
	}
	record := *resourceType
	record.Name = name
	return s.typeRepo.Create(ctx, &record)
}

func (s *resourceServiceImpl) UpdateType(ctx context.Context, id int64, fields map[string]interface{}) (*models.ResourceType, error) {
	if err := validID("resource type ID", id); err != nil {
		return nil, err
	}
	if err := normalizeUpdate(fields); err != nil {
		return nil, err
	}
	return s.typeRepo.Update(ctx, id, fields)
}

func (s *resourceServiceImpl) DeleteType(ctx context.Context, id int64) error {
	if err := validID("resource type ID", id); err != nil {
		return err
	}
	return s.typeRepo.Delete(ctx, id)
}

// SeedTypes inserts the default resource types into an empty table
func (s *resourceServiceImpl) SeedTypes(ctx context.Context) (int, error) {
	inserted, err := s.typeRepo.SeedDefaults(ctx)
	if err != nil {
		return 0, err
	}
	if inserted > 0 {
		s.logger.Info().Int("inserted", inserted).Msg("Default resource types seeded")
	}
	return inserted, nil
}
