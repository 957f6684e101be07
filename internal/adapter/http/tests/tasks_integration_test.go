//go:build integration
// +build integration

package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	authadapter "easytasks/internal/adapter/auth"
	dbadapter "easytasks/internal/adapter/db"
	httpadapter "easytasks/internal/adapter/http"
	"easytasks/internal/adapter/http/dto"
	"easytasks/internal/adapter/http/handlers"
	appservice "easytasks/internal/app/service"
	"easytasks/pkg/apierrors"
	"easytasks/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type TasksIntegrationSuite struct {
	IntegrationSuiteBase
	router *gin.Engine
}

func TestTasksIntegrationSuite(t *testing.T) {
	suite.Run(t, new(TasksIntegrationSuite))
}

func (s *TasksIntegrationSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  filepath.Join(projectRoot(s.T()), "pkg", "translator", "translation"),
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
	s.IntegrationSuiteBase.SetupSuite()
}

func (s *TasksIntegrationSuite) SetupTest() {
	s.ResetDatabase()

	router := gin.New()
	tokens := authadapter.NewJWTManager("integration-secret", time.Hour)
	hasher := authadapter.NewBcryptHasher()

	taskRepository := dbadapter.NewTaskRepository(s.DB)
	userRepository := dbadapter.NewUserRepository(s.DB)

	healthHandler := handlers.NewHealthHandler(s.DB)
	authHandler := handlers.NewAuthHandler(appservice.NewAuthService(userRepository, hasher, tokens))
	taskHandler := handlers.NewTaskHandler(appservice.NewTaskService(taskRepository))
	dashboardHandler := handlers.NewDashboardHandler(appservice.NewDashboardService(taskRepository))
	httpadapter.RegisterRoutes(router, tokens, healthHandler, authHandler, taskHandler, dashboardHandler)

	s.router = router
}

func (s *TasksIntegrationSuite) do(method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *TasksIntegrationSuite) registerUser(username string) string {
	body := fmt.Sprintf(`{"username":%q,"email":"%s@example.com","password":"secret123"}`, username, username)
	rec := s.do(http.MethodPost, "/api/auth/register", body, "")
	s.Require().Equal(http.StatusCreated, rec.Code)

	var got dto.AuthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().NotEmpty(got.Token)
	return got.Token
}

func (s *TasksIntegrationSuite) createTask(token, body string) dto.TaskItem {
	rec := s.do(http.MethodPost, "/api/tasks/create", body, token)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var got dto.TaskResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().True(got.Status)
	return got.Task
}

func (s *TasksIntegrationSuite) TestAuthFlow() {
	token := s.registerUser("alice")

	// Duplicate registration is rejected.
	rec := s.do(http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"secret123"}`, "")
	s.Require().Equal(http.StatusConflict, rec.Code)

	// Wrong password and unknown user answer identically.
	rec = s.do(http.MethodPost, "/api/auth/login", `{"username":"alice","password":"nope"}`, "")
	s.Require().Equal(http.StatusUnauthorized, rec.Code)
	rec = s.do(http.MethodPost, "/api/auth/login", `{"username":"ghost","password":"nope"}`, "")
	s.Require().Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/api/auth/login", `{"username":"alice","password":"secret123"}`, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var login dto.AuthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &login))
	s.Require().NotEmpty(login.Token)

	rec = s.do(http.MethodGet, "/api/auth/profile", "", token)
	s.Require().Equal(http.StatusOK, rec.Code)

	var profile dto.ProfileResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &profile))
	s.Require().Equal("alice", profile.User.Username)

	rec = s.do(http.MethodGet, "/api/auth/profile", "", "")
	s.Require().Equal(http.StatusUnauthorized, rec.Code)
}

func (s *TasksIntegrationSuite) TestCreateAndGetTask() {
	token := s.registerUser("alice")

	created := s.createTask(token,
		`{"title":"Ship the release","priority":"high","stage":"in progress","date":"2026-09-01","assets":["spec.pdf"],"team":[1]}`)
	s.Require().NotZero(created.ID)
	s.Require().Equal("in progress", created.Stage)
	s.Require().Equal("high", created.Priority)
	s.Require().Equal([]string{"spec.pdf"}, created.Assets)
	s.Require().Len(created.Activities, 1)
	s.Require().Equal("started", created.Activities[0].Type)
	s.Require().Equal("Task created with high priority", created.Activities[0].Text)

	rec := s.do(http.MethodGet, fmt.Sprintf("/api/tasks/%d", created.ID), "", token)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.TaskResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal(created.ID, got.Task.ID)
	s.Require().Equal("Ship the release", got.Task.Title)
	s.Require().Equal([]string{"spec.pdf"}, got.Task.Assets)
	s.Require().Equal([]uint64{1}, got.Task.Team)

	rec = s.do(http.MethodGet, "/api/tasks/999999", "", token)
	s.Require().Equal(http.StatusNotFound, rec.Code)

	var apiErr apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &apiErr))
	s.Require().False(apiErr.Status)
	s.Require().Equal("Task not found", apiErr.Message)
}

func (s *TasksIntegrationSuite) TestListFilters() {
	token := s.registerUser("alice")

	todo := s.createTask(token, `{"title":"Write documentation"}`)
	completed := s.createTask(token, `{"title":"Review API design","stage":"completed"}`)
	trashed := s.createTask(token, `{"title":"Old experiment"}`)

	rec := s.do(http.MethodPut, fmt.Sprintf("/api/tasks/trash/%d", trashed.ID), "", token)
	s.Require().Equal(http.StatusOK, rec.Code)

	listIDs := func(target string) []uint64 {
		rec := s.do(http.MethodGet, target, "", token)
		s.Require().Equal(http.StatusOK, rec.Code)

		var got dto.TaskListResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
		ids := make([]uint64, 0, len(got.Tasks))
		for _, item := range got.Tasks {
			ids = append(ids, item.ID)
		}
		return ids
	}

	// Default listing hides the trash; newest first.
	s.Require().Equal([]uint64{completed.ID, todo.ID}, listIDs("/api/tasks"))
	s.Require().Equal([]uint64{trashed.ID}, listIDs("/api/tasks?isTrashed=true"))
	s.Require().Equal([]uint64{completed.ID}, listIDs("/api/tasks?stage=completed"))
	s.Require().Equal([]uint64{completed.ID}, listIDs("/api/tasks?search=REVIEW"))

	rec = s.do(http.MethodGet, "/api/tasks?isTrashed=banana", "", token)
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	// A second user sees none of these tasks.
	otherToken := s.registerUser("bob")
	rec = s.do(http.MethodGet, "/api/tasks", "", otherToken)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.TaskListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Empty(got.Tasks)
}

func (s *TasksIntegrationSuite) TestUpdateTask_PartialSemantics() {
	token := s.registerUser("alice")
	created := s.createTask(token, `{"title":"Write documentation","description":"Cover the API"}`)

	rec := s.do(http.MethodPut, fmt.Sprintf("/api/tasks/update/%d", created.ID),
		`{"description":"","priority":"high"}`, token)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.TaskResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal("Write documentation", got.Task.Title)
	s.Require().Empty(got.Task.Description)
	s.Require().Equal("high", got.Task.Priority)
	s.Require().Equal("todo", got.Task.Stage)

	rec = s.do(http.MethodPut, fmt.Sprintf("/api/tasks/update/%d", created.ID), `{"title":"  "}`, token)
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPut, "/api/tasks/update/999999", `{"priority":"low"}`, token)
	s.Require().Equal(http.StatusNotFound, rec.Code)
}

func (s *TasksIntegrationSuite) TestTrashRestoreAndDelete() {
	token := s.registerUser("alice")
	first := s.createTask(token, `{"title":"First"}`)
	second := s.createTask(token, `{"title":"Second"}`)

	for _, id := range []uint64{first.ID, second.ID} {
		rec := s.do(http.MethodPut, fmt.Sprintf("/api/tasks/trash/%d", id), "", token)
		s.Require().Equal(http.StatusOK, rec.Code)
	}

	rec := s.do(http.MethodDelete, "/api/tasks/delete-restore?actionType=restoreAll", "", token)
	s.Require().Equal(http.StatusOK, rec.Code)

	var action dto.TrashActionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &action))
	s.Require().Equal(int64(2), action.Count)

	rec = s.do(http.MethodPut, fmt.Sprintf("/api/tasks/trash/%d", first.ID), "", token)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodDelete, fmt.Sprintf("/api/tasks/delete-restore/%d?actionType=delete", first.ID), "", token)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &action))
	s.Require().Equal(int64(1), action.Count)

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/tasks/%d", first.ID), "", token)
	s.Require().Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPut, fmt.Sprintf("/api/tasks/trash/%d", second.ID), "", token)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodDelete, "/api/tasks/delete-restore?actionType=deleteAll", "", token)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &action))
	s.Require().Equal(int64(1), action.Count)

	rec = s.do(http.MethodDelete, "/api/tasks/delete-restore?actionType=obliterate", "", token)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
}

func (s *TasksIntegrationSuite) TestSubTasksAndActivities() {
	token := s.registerUser("alice")
	created := s.createTask(token, `{"title":"Write documentation"}`)

	rec := s.do(http.MethodPut, fmt.Sprintf("/api/tasks/create-subtask/%d", created.ID),
		`{"title":"Draft outline","tag":"writing","date":"2026-09-10"}`, token)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.TaskResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got.Task.SubTasks, 1)
	s.Require().Equal("Draft outline", got.Task.SubTasks[0].Title)
	s.Require().Equal("writing", got.Task.SubTasks[0].Tag)

	rec = s.do(http.MethodPost, fmt.Sprintf("/api/tasks/activity/%d", created.ID),
		`{"type":"bug","text":"Broken code example in section 2"}`, token)
	s.Require().Equal(http.StatusOK, rec.Code)

	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got.Task.Activities, 2)
	s.Require().Equal("started", got.Task.Activities[0].Type)
	s.Require().Equal("bug", got.Task.Activities[1].Type)
	s.Require().Equal("Broken code example in section 2", got.Task.Activities[1].Text)

	rec = s.do(http.MethodPut, "/api/tasks/create-subtask/999999", `{"title":"Orphan"}`, token)
	s.Require().Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPost, "/api/tasks/activity/999999", `{"text":"Nobody home"}`, token)
	s.Require().Equal(http.StatusNotFound, rec.Code)
}

func (s *TasksIntegrationSuite) TestDashboard() {
	token := s.registerUser("alice")

	s.createTask(token, `{"title":"First","priority":"high"}`)
	s.createTask(token, `{"title":"Second","priority":"high","stage":"completed"}`)
	s.createTask(token, `{"title":"Third","stage":"in progress"}`)
	trashed := s.createTask(token, `{"title":"Trashed","priority":"low"}`)

	rec := s.do(http.MethodPut, fmt.Sprintf("/api/tasks/trash/%d", trashed.ID), "", token)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/tasks/dashboard", "", token)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.DashboardResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().True(got.Status)
	s.Require().Equal(3, got.TotalTasks)
	s.Require().Equal(3, got.TotalLastWeek)
	s.Require().Equal(map[string]int{"todo": 1, "in progress": 1, "completed": 1}, got.TasksByStage)
	s.Require().Len(got.RecentTaskList, 3)
	s.Require().Equal("Third", got.RecentTaskList[0].Title)

	totals := make(map[string]int, len(got.PriorityDistribution))
	for _, bucket := range got.PriorityDistribution {
		totals[bucket.Name] = bucket.Total
	}
	s.Require().Equal(map[string]int{"high": 2, "normal": 1}, totals)
}
