package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/controllers"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories/mocks"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/services"
	"github.com/rushiiaher/CivilPath-sub000/internal/middleware"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/auth"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/filestorage"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := validation.Register(); err != nil {
		panic(err)
	}
}

type testAPI struct {
	t      *testing.T
	router *gin.Engine
	repos  *repositories.Repositories
	token  string
	dir    string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	return newTestAPIAt(t, "/api")
}

func newTestAPIAt(t *testing.T, basePath string) *testAPI {
	t.Helper()

	dir := t.TempDir()
	storage, err := filestorage.NewLocalStorage(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)

	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret"})
	repos := mocks.NewRepositories()
	svcs := services.NewServices(repos, services.Options{
		JWTService: jwtService,
		Admin:      services.AdminCredentials{Username: "admin"},
		Storage:    storage,
		Logger:     zerolog.Nop(),
	})

	router := gin.New()
	router.Use(middleware.CORS())
	SetupRouter(router, controllers.NewControllers(svcs), middleware.NewAuthMiddleware(jwtService), Options{
		BasePath:    basePath,
		UploadsPath: dir,
	})

	token, _, err := jwtService.GenerateToken(1, "admin")
	require.NoError(t, err)

	return &testAPI{t: t, router: router, repos: repos, token: token, dir: dir}
}

func (a *testAPI) request(method, path string, body interface{}, authed bool) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (a *testAPI) createExam(name string) *models.Exam {
	w := a.request(http.MethodPost, "/api/exams", map[string]string{"name": name, "category": "central"}, true)
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[*models.Exam](a.t, w)
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)
	for _, path := range []string{"/health", "/api/health"} {
		w := api.request(http.MethodGet, path, nil, false)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", decode[map[string]string](t, w)["status"])
	}
}

func TestEmptyListIsRecordsArray(t *testing.T) {
	api := newTestAPI(t)
	for _, path := range []string{"/api/resources", "/api/exams", "/api/blog", "/api/categories"} {
		w := api.request(http.MethodGet, path, nil, false)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `{"records":[]}`, w.Body.String(), path)
	}
}

func TestExamCRUD(t *testing.T) {
	api := newTestAPI(t)
	exam := api.createExam("UPSC Civil Services")
	assert.Equal(t, "upsc-civil-services", exam.Slug)
	assert.Equal(t, models.StatusActive, exam.Status)

	w := api.request(http.MethodGet, "/api/exams?slug=upsc-civil-services", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, exam.ID, decode[*models.Exam](t, w).ID)

	w = api.request(http.MethodGet, "/api/exams?id=abc", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.request(http.MethodPut, "/api/exams/1", map[string]string{"description": "Prelims, mains, interview"}, true)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[*models.Exam](t, w)
	assert.Equal(t, "Prelims, mains, interview", updated.Description)
	assert.Equal(t, "UPSC Civil Services", updated.Name)

	w = api.request(http.MethodPost, "/api/exams", map[string]string{"name": "UPSC Civil Services"}, true)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.request(http.MethodDelete, "/api/exams/1", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Exam deleted successfully"}`, w.Body.String())

	w = api.request(http.MethodGet, "/api/exams/1", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnauthenticatedDeleteIsRejected(t *testing.T) {
	api := newTestAPI(t)
	exam := api.createExam("SSC CGL")

	w := api.request(http.MethodDelete, "/api/exams/1", nil, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Access token required"}`, w.Body.String())

	stored, err := api.repos.ExamRepository.GetByID(context.Background(), exam.ID)
	require.NoError(t, err)
	assert.Equal(t, exam.Name, stored.Name)
}

func TestValidationErrors(t *testing.T) {
	api := newTestAPI(t)

	w := api.request(http.MethodPost, "/api/exams", map[string]string{"status": "archived"}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["error"], "name is required")

	w = api.request(http.MethodPost, "/api/exam-info", map[string]interface{}{
		"exam_id": 1, "section_type": "rumours", "title": "x",
	}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadIncrementsByOne(t *testing.T) {
	api := newTestAPI(t)
	api.createExam("IBPS PO")

	w := api.request(http.MethodPost, "/api/resources", map[string]interface{}{
		"exam_id": 1, "title": "2023 paper", "download_count": 99,
	}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resource := decode[*models.Resource](t, w)
	assert.Zero(t, resource.DownloadCount)

	// public, no token
	w = api.request(http.MethodPost, "/api/resources?action=download&id=1", nil, false)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"id":1,"download_count":1}`, w.Body.String())

	w = api.request(http.MethodPost, "/api/resources/1/download", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"download_count":2}`, w.Body.String())

	w = api.request(http.MethodPost, "/api/resources?action=download&id=42", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// creating without a token is still admin-only
	w = api.request(http.MethodPost, "/api/resources", map[string]interface{}{"exam_id": 1, "title": "x"}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestResourceFilters(t *testing.T) {
	api := newTestAPI(t)
	for _, body := range []map[string]interface{}{
		{"exam_id": 1, "stage_id": 1, "title": "prelims notes"},
		{"exam_id": 1, "stage_id": 2, "title": "mains notes"},
		{"exam_id": 2, "title": "other exam"},
	} {
		require.Equal(t, http.StatusCreated, api.request(http.MethodPost, "/api/resources", body, true).Code)
	}

	w := api.request(http.MethodGet, "/api/resources?exam_id=1&stage_id=2", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[struct{ Records []*models.Resource }](t, w)
	require.Len(t, list.Records, 1)
	assert.Equal(t, "mains notes", list.Records[0].Title)

	w = api.request(http.MethodGet, "/api/resources?stage_id=x", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBlogDraftsNeedToken(t *testing.T) {
	api := newTestAPI(t)

	w := api.request(http.MethodPost, "/api/blog", map[string]interface{}{
		"title": "Draft post", "content": "wip", "status": "draft",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	draft := decode[*models.BlogPost](t, w)

	w = api.request(http.MethodPost, "/api/blog", map[string]interface{}{
		"title": "Study plan", "content": "# Week 1", "content_format": "markdown",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)
	post := decode[*models.BlogPost](t, w)
	assert.True(t, strings.HasPrefix(post.Slug, "study-plan-"))
	assert.Contains(t, post.Content, "<h1>Week 1</h1>")
	assert.Equal(t, []string{}, post.Images)
	assert.Equal(t, 5, post.ReadTimeMinutes)

	w = api.request(http.MethodGet, "/api/blog", nil, false)
	assert.Len(t, decode[struct{ Records []*models.BlogPost }](t, w).Records, 1)

	w = api.request(http.MethodGet, "/api/blog", nil, true)
	assert.Len(t, decode[struct{ Records []*models.BlogPost }](t, w).Records, 2)

	w = api.request(http.MethodGet, "/api/blog?slug="+draft.Slug, nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.request(http.MethodGet, "/api/blog?slug="+draft.Slug, nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSeedResourceTypes(t *testing.T) {
	api := newTestAPI(t)

	w := api.request(http.MethodPost, "/api/resource-types/seed", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"inserted":8}`, w.Body.String())

	w = api.request(http.MethodPost, "/api/resource-types/seed", nil, true)
	assert.JSONEq(t, `{"inserted":0}`, w.Body.String())

	w = api.request(http.MethodGet, "/api/resource-types", nil, false)
	assert.Len(t, decode[struct{ Records []*models.ResourceType }](t, w).Records, 8)
}

func TestUploadAndServe(t *testing.T) {
	api := newTestAPI(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "syllabus.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("General Studies I"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("folder", "syllabi"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+api.token)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	upload := decode[*models.FileUpload](t, w)
	assert.Equal(t, "syllabus.txt", upload.OriginalName)
	assert.Equal(t, int64(len("General Studies I")), upload.FileSize)
	require.NotNil(t, upload.UploadedBy)
	assert.Equal(t, int64(1), *upload.UploadedBy)

	_, err = os.Stat(filepath.Join(api.dir, filepath.FromSlash(upload.StoredName)))
	require.NoError(t, err)

	w = api.request(http.MethodGet, "/uploads/"+upload.StoredName, nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "General Studies I", w.Body.String())

	w = api.request(http.MethodGet, "/api/upload", nil, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.request(http.MethodDelete, "/api/upload/1", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	_, err = os.Stat(filepath.Join(api.dir, filepath.FromSlash(upload.StoredName)))
	assert.True(t, os.IsNotExist(err))
}

func TestUnknownRoutes(t *testing.T) {
	api := newTestAPI(t)

	w := api.request(http.MethodGet, "/api/nothing-here", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.request(http.MethodPatch, "/api/exams", nil, false)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())

	w = api.request(http.MethodOptions, "/api/exams", nil, false)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestLoginFlow(t *testing.T) {
	api := newTestAPI(t)

	w := api.request(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "nope"}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())

	w = api.request(http.MethodGet, "/api/auth/me", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"username":"admin"}`, w.Body.String())
}

func TestRootBasePath(t *testing.T) {
	for _, basePath := range []string{"/", ""} {
		var api *testAPI
		require.NotPanics(t, func() { api = newTestAPIAt(t, basePath) }, "base path %q", basePath)

		w := api.request(http.MethodGet, "/health", nil, false)
		assert.Equal(t, http.StatusOK, w.Code)

		w = api.request(http.MethodGet, "/exams", nil, false)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"records":[]}`, w.Body.String())

		w = api.request(http.MethodPost, "/auth/login", map[string]string{"username": "admin", "password": "nope"}, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}

func TestTrailingSlashBasePath(t *testing.T) {
	api := newTestAPIAt(t, "/api/")
	for _, path := range []string{"/health", "/api/health", "/api/exams"} {
		w := api.request(http.MethodGet, path, nil, false)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestStagesAndSubjects(t *testing.T) {
	api := newTestAPI(t)
	upsc := api.createExam("UPSC Civil Services")
	ssc := api.createExam("SSC CGL")

	w := api.request(http.MethodPost, "/api/stages", map[string]interface{}{"exam_id": upsc.ID, "name": "Prelims", "order_index": 1}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	prelims := decode[*models.ExamStage](t, w)
	assert.Equal(t, "prelims", prelims.Slug)
	require.NotNil(t, prelims.ExamName)
	assert.Equal(t, "UPSC Civil Services", *prelims.ExamName)

	w = api.request(http.MethodPost, "/api/stages", map[string]interface{}{"exam_id": ssc.ID, "name": "Tier 1"}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	tier1 := decode[*models.ExamStage](t, w)

	w = api.request(http.MethodPost, "/api/stages", map[string]interface{}{"exam_id": upsc.ID, "name": "Prelims"}, true)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.request(http.MethodGet, "/api/stages?exam_id="+itoa(upsc.ID), nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	stages := decode[map[string][]*models.ExamStage](t, w)["records"]
	require.Len(t, stages, 1)
	assert.Equal(t, prelims.ID, stages[0].ID)

	for _, body := range []map[string]interface{}{
		{"stage_id": prelims.ID, "name": "History"},
		{"stage_id": tier1.ID, "name": "Quantitative Aptitude"},
	} {
		w = api.request(http.MethodPost, "/api/subjects", body, true)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = api.request(http.MethodGet, "/api/subjects?exam_id="+itoa(upsc.ID), nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	subjects := decode[map[string][]*models.Subject](t, w)["records"]
	require.Len(t, subjects, 1)
	history := subjects[0]
	assert.Equal(t, "History", history.Name)
	require.NotNil(t, history.ExamID)
	assert.Equal(t, upsc.ID, *history.ExamID)
	require.NotNil(t, history.StageName)
	assert.Equal(t, "Prelims", *history.StageName)
	require.NotNil(t, history.ExamName)
	assert.Equal(t, "UPSC Civil Services", *history.ExamName)

	w = api.request(http.MethodGet, "/api/subjects?stage_id="+itoa(tier1.ID), nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[map[string][]*models.Subject](t, w)["records"], 1)

	w = api.request(http.MethodGet, "/api/subjects/"+itoa(history.ID), nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "History", decode[*models.Subject](t, w).Name)

	// Deleting the stage leaves the subject with a dangling reference
	w = api.request(http.MethodDelete, "/api/stages/"+itoa(prelims.ID), nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	w = api.request(http.MethodGet, "/api/subjects/"+itoa(history.ID), nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	orphan := decode[*models.Subject](t, w)
	assert.Equal(t, prelims.ID, orphan.StageID)
	assert.Nil(t, orphan.StageName)
	assert.Nil(t, orphan.ExamName)
}

func TestExamInfoSections(t *testing.T) {
	api := newTestAPI(t)
	exam := api.createExam("UPSC Civil Services")

	w := api.request(http.MethodPost, "/api/exam-info", map[string]interface{}{
		"exam_id": exam.ID, "section_type": "syllabus", "title": "Syllabus", "content": "GS I to IV", "order_index": 2,
	}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	syllabus := decode[*models.ExamInfoSection](t, w)

	w = api.request(http.MethodPost, "/api/exam-info", map[string]interface{}{
		"exam_id": exam.ID, "section_type": "pattern", "title": "Pattern", "order_index": 1,
	}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = api.request(http.MethodPost, "/api/exam-info", map[string]interface{}{
		"exam_id": exam.ID, "section_type": "faq", "title": "FAQ",
	}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.request(http.MethodGet, "/api/exam-info?exam_id="+itoa(exam.ID), nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	sections := decode[map[string][]*models.ExamInfoSection](t, w)["records"]
	require.Len(t, sections, 2)
	assert.Equal(t, models.SectionPattern, sections[0].SectionType)

	w = api.request(http.MethodGet, "/api/exam-info?section_type=syllabus", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[map[string][]*models.ExamInfoSection](t, w)["records"], 1)

	w = api.request(http.MethodGet, "/api/exam-info/"+itoa(syllabus.ID), nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "GS I to IV", decode[*models.ExamInfoSection](t, w).Content)
}

func TestBlogCategories(t *testing.T) {
	api := newTestAPI(t)

	w := api.request(http.MethodPost, "/api/blog-categories", map[string]string{"name": "Current Affairs"}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.request(http.MethodPost, "/api/blog-categories", map[string]string{"name": "Strategy"}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	strategy := decode[*models.BlogCategory](t, w)

	w = api.request(http.MethodPost, "/api/blog-categories", map[string]string{"name": "Current Affairs"}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = api.request(http.MethodPost, "/api/blog-categories", map[string]string{"name": "Strategy"}, true)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.request(http.MethodGet, "/api/blog-categories", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	categories := decode[map[string][]*models.BlogCategory](t, w)["records"]
	require.Len(t, categories, 2)
	assert.Equal(t, "Current Affairs", categories[0].Name)

	w = api.request(http.MethodGet, "/api/blog-categories/"+itoa(strategy.ID), nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Strategy", decode[*models.BlogCategory](t, w).Name)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
