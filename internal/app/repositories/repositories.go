package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository            IAdminRepository
	ExamRepository             IExamRepository
	StageRepository            IStageRepository
	SubjectRepository          ISubjectRepository
	ResourceCategoryRepository IResourceCategoryRepository
	ResourceRepository         IResourceRepository
	ResourceTypeRepository     IResourceTypeRepository
	BlogPostRepository         IBlogPostRepository
	BlogCategoryRepository     IBlogCategoryRepository
	ExamInfoRepository         IExamInfoRepository
	FileUploadRepository       IFileUploadRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminRepository:            NewAdminRepository(db),
		ExamRepository:             NewExamRepository(db),
		StageRepository:            NewStageRepository(db),
		SubjectRepository:          NewSubjectRepository(db),
		ResourceCategoryRepository: NewResourceCategoryRepository(db),
		ResourceRepository:         NewResourceRepository(db),
		ResourceTypeRepository:     NewResourceTypeRepository(db),
		BlogPostRepository:         NewBlogPostRepository(db),
		BlogCategoryRepository:     NewBlogCategoryRepository(db),
		ExamInfoRepository:         NewExamInfoRepository(db),
		FileUploadRepository:       NewFileUploadRepository(db),
	}
}
