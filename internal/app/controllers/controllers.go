package controllers

import "github.com/rushiiaher/CivilPath-sub000/internal/app/services"

// Controllers groups every HTTP handler of the API
type Controllers struct {
	Auth     *AuthController
	Exam     *ExamController
	Stage    *StageController
	ExamInfo *ExamInfoController
	Resource *ResourceController
	Blog     *BlogController
	Upload   *UploadController
}

// NewControllers builds the controllers on top of the services
func NewControllers(s *services.Services) *Controllers {
	return &Controllers{
		Auth:     NewAuthController(s.Auth),
		Exam:     NewExamController(s.Exam),
		Stage:    NewStageController(s.Stage),
		ExamInfo: NewExamInfoController(s.ExamInfo),
		Resource: NewResourceController(s.Resource),
		Blog:     NewBlogController(s.Blog),
		Upload:   NewUploadController(s.Upload),
	}
}
