package mocks

import (
	"context"
	"sort"
	"strconv"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
)

// NewRepositories returns a container backed entirely by memory
func NewRepositories() *repositories.Repositories {
	exams := NewExamRepository()
	stages := NewStageRepository().JoinExams(exams)
	return &repositories.Repositories{
		AdminRepository:            NewAdminRepository(),
		ExamRepository:             exams,
		StageRepository:            stages,
		SubjectRepository:          NewSubjectRepository().JoinStages(stages),
		ResourceCategoryRepository: NewResourceCategoryRepository(),
		ResourceRepository:         NewResourceRepository(),
		ResourceTypeRepository:     NewResourceTypeRepository(),
		BlogPostRepository:         NewBlogPostRepository(),
		BlogCategoryRepository:     NewBlogCategoryRepository(),
		ExamInfoRepository:         NewExamInfoRepository(),
		FileUploadRepository:       NewFileUploadRepository(),
	}
}

func newestFirst[T any](rows []*T) []*T {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows
}

// AdminRepository is an in-memory IAdminRepository
type AdminRepository struct {
	*store[models.AdminAccount]
}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{newStore("admin", func(a *models.AdminAccount) string { return a.Username })}
}

func (r *AdminRepository) Create(_ context.Context, admin *models.AdminAccount) (*models.AdminAccount, error) {
	return r.insert(admin)
}

func (r *AdminRepository) GetByID(_ context.Context, id int64) (*models.AdminAccount, error) {
	return r.get(id)
}

func (r *AdminRepository) GetByUsername(_ context.Context, username string) (*models.AdminAccount, error) {
	return r.find(func(a *models.AdminAccount) bool { return a.Username == username })
}

// ExamRepository is an in-memory IExamRepository
type ExamRepository struct {
	*store[models.Exam]
}

func NewExamRepository() *ExamRepository {
	return &ExamRepository{newStore("exam", func(e *models.Exam) string { return e.Slug })}
}

func (r *ExamRepository) List(_ context.Context, f repositories.ExamFilter) ([]*models.Exam, error) {
	rows := r.all(func(e *models.Exam) bool {
		return (f.Status == "" || e.Status == f.Status) && (f.Category == "" || e.Category == f.Category)
	})
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

func (r *ExamRepository) GetByID(_ context.Context, id int64) (*models.Exam, error) {
	return r.get(id)
}

func (r *ExamRepository) GetBySlug(_ context.Context, slug string) (*models.Exam, error) {
	return r.find(func(e *models.Exam) bool { return e.Slug == slug })
}

func (r *ExamRepository) Create(_ context.Context, exam *models.Exam) (*models.Exam, error) {
	return r.insert(exam)
}

func (r *ExamRepository) Update(_ context.Context, id int64, fields map[string]interface{}) (*models.Exam, error) {
	return r.update(id, fields)
}

func (r *ExamRepository) Delete(_ context.Context, id int64) error {
	return r.remove(id)
}

// StageRepository is an in-memory IStageRepository. exam_name is filled in
// when it is joined to an ExamRepository.
type StageRepository struct {
	*store[models.ExamStage]
	exams *ExamRepository
}

// JoinExams resolves exam_name from exams on every read
func (r *StageRepository) JoinExams(exams *ExamRepository) *StageRepository {
	r.exams = exams
	return r
}

func (r *StageRepository) flatten(s *models.ExamStage) *models.ExamStage {
	s.ExamName = nil
	if r.exams != nil {
		if exam, err := r.exams.get(s.ExamID); err == nil {
			s.ExamName = &exam.Name
		}
	}
	return s
}

func NewStageRepository() *StageRepository {
	return &StageRepository{store: newStore("stage", func(s *models.ExamStage) string {
		return strconv.FormatInt(s.ExamID, 10) + "/" + s.Slug
	})}
}

func (r *StageRepository) List(_ context.Context, f repositories.StageFilter) ([]*models.ExamStage, error) {
	rows := r.all(func(s *models.ExamStage) bool { return f.ExamID == 0 || s.ExamID == f.ExamID })
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].OrderIndex < rows[j].OrderIndex })
	for _, row := range rows {
		r.flatten(row)
	}
	return rows, nil
}

func (r *StageRepository) GetByID(_ context.Context, id int64) (*models.ExamStage, error) {
	return r.joined(r.get(id))
}

func (r *StageRepository) Create(_ context.Context, stage *models.ExamStage) (*models.ExamStage, error) {
	return r.joined(r.insert(stage))
}

func (r *StageRepository) Update(_ context.Context, id int64, fields map[string]interface{}) (*models.ExamStage, error) {
	return r.joined(r.update(id, fields))
}

func (r *StageRepository) joined(s *models.ExamStage, err error) (*models.ExamStage, error) {
	if err != nil {
		return nil, err
	}
	return r.flatten(s), nil
}

func (r *StageRepository) Delete(_ context.Context, id int64) error {
	return r.remove(id)
}

// SubjectRepository is an in-memory ISubjectRepository. When joined to a
// StageRepository, stage_name, exam_id and exam_name are resolved through the
// stage on every read, and the exam_id filter follows the same path.
type SubjectRepository struct {
	*store[models.Subject]
	stages *StageRepository
}

func NewSubjectRepository() *SubjectRepository {
	return &SubjectRepository{store: newStore[models.Subject]("subject", nil)}
}

// JoinStages resolves the flattened stage and exam fields from stages
func (r *SubjectRepository) JoinStages(stages *StageRepository) *SubjectRepository {
	r.stages = stages
	return r
}

func (r *SubjectRepository) flatten(s *models.Subject) *models.Subject {
	if r.stages == nil {
		return s
	}
	s.StageName, s.ExamID, s.ExamName = nil, nil, nil
	if stage, err := r.stages.get(s.StageID); err == nil {
		r.stages.flatten(stage)
		s.StageName = &stage.Name
		s.ExamID = &stage.ExamID
		s.ExamName = stage.ExamName
	}
	return s
}

func (r *SubjectRepository) joined(s *models.Subject, err error) (*models.Subject, error) {
	if err != nil {
		return nil, err
	}
	return r.flatten(s), nil
}

func (r *SubjectRepository) List(_ context.Context, f repositories.SubjectFilter) ([]*models.Subject, error) {
	rows := r.all(func(s *models.Subject) bool { return f.StageID == 0 || s.StageID == f.StageID })
	out := rows[:0]
	for _, row := range rows {
		r.flatten(row)
		if f.ExamID == 0 || (row.ExamID != nil && *row.ExamID == f.ExamID) {
			out = append(out, row)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

func (r *SubjectRepository) GetByID(_ context.Context, id int64) (*models.Subject, error) {
	return r.joined(r.get(id))
}

func (r *SubjectRepository) Create(_ context.Context, subject *models.Subject) (*models.Subject, error) {
	return r.joined(r.insert(subject))
}

func (r *SubjectRepository) Update(_ context.Context, id int64, fields map[string]interface{}) (*models.Subject, error) {
	return r.joined(r.update(id, fields))
}

func (r *SubjectRepository) Delete(_ context.Context, id int64) error {
	return r.remove(id)
}

// ExamInfoRepository is an in-memory IExamInfoRepository
type ExamInfoRepository struct {
	*store[models.ExamInfoSection]
}

func NewExamInfoRepository() *ExamInfoRepository {
	return &ExamInfoRepository{newStore[models.ExamInfoSection]("exam info section", nil)}
}

func (r *ExamInfoRepository) List(_ context.Context, f repositories.ExamInfoFilter) ([]*models.ExamInfoSection, error) {
	rows := r.all(func(s *models.ExamInfoSection) bool {
		return (f.ExamID == 0 || s.ExamID == f.ExamID) && (f.SectionType == "" || s.SectionType == f.SectionType)
	})
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].OrderIndex < rows[j].OrderIndex })
	return rows, nil
}

func (r *ExamInfoRepository) GetByID(_ context.Context, id int64) (*models.ExamInfoSection, error) {
	return r.get(id)
}

func (r *ExamInfoRepository) Create(_ context.Context, section *models.ExamInfoSection) (*models.ExamInfoSection, error) {
	return r.insert(section)
}

func (r *ExamInfoRepository) Update(_ context.Context, id int64, fields map[string]interface{}) (*models.ExamInfoSection, error) {
	return r.update(id, fields)
}

func (r *ExamInfoRepository) Delete(_ context.Context, id int64) error {
	return r.remove(id)
}
