package services

import (
	"github.com/rs/zerolog"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/auth"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/filestorage"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/helpers"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/ratelimit"
)

// Services defined in this package:
// - AuthService: admin account creation and login
// - ExamService, StageService, ExamInfoService: exam structure
// - ResourceService: resources, resource categories and resource types
// - BlogService: blog posts and blog categories
// - UploadService: stored files

// Services holds all the service instances
type Services struct {
	Auth     AuthService
	Exam     ExamService
	Stage    StageService
	ExamInfo ExamInfoService
	Resource ResourceService
	Blog     BlogService
	Upload   UploadService
}

// Options carries what services need beyond repositories
type Options struct {
	JWTService *auth.JWTService
	Limiter    ratelimit.Limiter
	Admin      AdminCredentials
	Storage    filestorage.FileStorage
	Logger     zerolog.Logger
}

// NewServices wires every service to its repositories
func NewServices(repos *repositories.Repositories, opts Options) *Services {
	return &Services{
		Auth:     NewAuthService(repos.AdminRepository, opts.JWTService, opts.Limiter, opts.Admin, opts.Logger),
		Exam:     NewExamService(repos.ExamRepository),
		Stage:    NewStageService(repos.StageRepository, repos.SubjectRepository),
		ExamInfo: NewExamInfoService(repos.ExamInfoRepository),
		Resource: NewResourceService(repos.ResourceRepository, repos.ResourceCategoryRepository, repos.ResourceTypeRepository, opts.Logger),
		Blog:     NewBlogService(repos.BlogPostRepository, repos.BlogCategoryRepository, helpers.NewUniqueSlugger(nil), opts.Logger),
		Upload:   NewUploadService(repos.FileUploadRepository, opts.Storage, opts.Logger),
	}
}
