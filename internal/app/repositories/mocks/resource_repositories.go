package mocks

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
)

// ResourceCategoryRepository is an in-memory IResourceCategoryRepository
type ResourceCategoryRepository struct {
	*store[models.ResourceCategory]
}

func NewResourceCategoryRepository() *ResourceCategoryRepository {
	return &ResourceCategoryRepository{newStore("resource category", func(c *models.ResourceCategory) string {
		return strconv.FormatInt(c.ExamID, 10) + "/" + c.Slug
	})}
}

func (r *ResourceCategoryRepository) List(_ context.Context, f repositories.ResourceCategoryFilter) ([]*models.ResourceCategory, error) {
	rows := r.all(func(c *models.ResourceCategory) bool {
		return (f.ExamID == 0 || c.ExamID == f.ExamID) && (f.Status == "" || c.Status == f.Status)
	})
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

func (r *ResourceCategoryRepository) GetByID(_ context.Context, id int64) (*models.ResourceCategory, error) {
	return r.get(id)
}

func (r *ResourceCategoryRepository) Create(_ context.Context, category *models.ResourceCategory) (*models.ResourceCategory, error) {
	return r.insert(category)
}

func (r *ResourceCategoryRepository) Update(_ context.Context, id int64, fields map[string]interface{}) (*models.ResourceCategory, error) {
	return r.update(id, fields)
}

func (r *ResourceCategoryRepository) Delete(_ context.Context, id int64) error {
	return r.remove(id)
}

// ResourceRepository is an in-memory IResourceRepository
type ResourceRepository struct {
	*store[models.Resource]
}

func NewResourceRepository() *ResourceRepository {
	return &ResourceRepository{newStore[models.Resource]("resource", nil)}
}

func matchID(want int64, got *int64) bool {
	return want == 0 || (got != nil && *got == want)
}

func (r *ResourceRepository) List(_ context.Context, f repositories.ResourceFilter) ([]*models.Resource, error) {
	rows := r.all(func(res *models.Resource) bool {
		return (f.ExamID == 0 || res.ExamID == f.ExamID) &&
			matchID(f.StageID, res.StageID) &&
			matchID(f.SubjectID, res.SubjectID) &&
			matchID(f.CategoryID, res.CategoryID) &&
			matchID(f.ResourceTypeID, res.ResourceTypeID)
	})
	return newestFirst(rows), nil
}

func (r *ResourceRepository) GetByID(_ context.Context, id int64) (*models.Resource, error) {
	return r.get(id)
}

func (r *ResourceRepository) Create(_ context.Context, resource *models.Resource) (*models.Resource, error) {
	record := *resource
	record.DownloadCount = 0
	return r.insert(&record)
}

func (r *ResourceRepository) Update(_ context.Context, id int64, fields map[string]interface{}) (*models.Resource, error) {
	return r.update(id, fields)
}

func (r *ResourceRepository) Delete(_ context.Context, id int64) error {
	return r.remove(id)
}

func (r *ResourceRepository) IncrementDownloadCount(_ context.Context, id int64) (int64, error) {
	res, err := r.mutate(id, func(res *models.Resource) { res.DownloadCount++ })
	if err != nil {
		return 0, err
	}
	return res.DownloadCount, nil
}

// ResourceTypeRepository is an in-memory IResourceTypeRepository
type ResourceTypeRepository struct {
	*store[models.ResourceType]
	seedMu sync.Mutex
}

func NewResourceTypeRepository() *ResourceTypeRepository {
	return &ResourceTypeRepository{store: newStore("resource type", func(t *models.ResourceType) string { return t.Name })}
}

func (r *ResourceTypeRepository) List(_ context.Context) ([]*models.ResourceType, error) {
	rows := r.all(nil)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

func (r *ResourceTypeRepository) GetByID(_ context.Context, id int64) (*models.ResourceType, error) {
	return r.get(id)
}

func (r *ResourceTypeRepository) Create(_ context.Context, resourceType *models.ResourceType) (*models.ResourceType, error) {
	return r.insert(resourceType)
}

func (r *ResourceTypeRepository) Update(_ context.Context, id int64, fields map[string]interface{}) (*models.ResourceType, error) {
	return r.update(id, fields)
}

func (r *ResourceTypeRepository) Delete(_ context.Context, id int64) error {
	return r.remove(id)
}

// SeedDefaults mirrors the SQL version: insert only into an empty table
func (r *ResourceTypeRepository) SeedDefaults(_ context.Context) (int, error) {
	r.seedMu.Lock()
	defer r.seedMu.Unlock()
	if r.count() > 0 {
		return 0, nil
	}
	for i := range repositories.DefaultResourceTypes {
		if _, err := r.insert(&repositories.DefaultResourceTypes[i]); err != nil {
			return i, err
		}
	}
	return len(repositories.DefaultResourceTypes), nil
}
