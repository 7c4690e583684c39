package controllers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"timetracker/api/types"
	"timetracker/controllers"
	"timetracker/testutil"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, handler http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	var env envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	return recorder, env
}

func TestReportProjectEndpoint(t *testing.T) {
	testutil.SetupTestDB(t)
	unit := testutil.CreateUnit(t, "Engineering")
	customer := testutil.CreateCustomer(t, unit.ID, "Acme")
	projectA := testutil.CreateProject(t, customer.ID, nil, "Project A")
	projectB := testutil.CreateProject(t, customer.ID, &projectA.ID, "Project B")
	t1 := testutil.CreateTask(t, projectA.ID, "Task T1")
	t2 := testutil.CreateTask(t, projectB.ID, "Task T2")
	user := testutil.CreateUser(t, "jane@example.com", "Jane", "Doe")
	testutil.CreateTimeEntry(t, user.ID, t1.ID, "2024-01-10", "2.00")
	testutil.CreateTimeEntry(t, user.ID, t2.ID, "2024-01-11", "3.50")

	router := testutil.NewRouter(&user)
	router.GET("/reports/project/:id", controllers.ReportProject)

	recorder, env := doRequest(t, router, http.MethodGet, "/reports/project/"+projectA.ID, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "success", env.Status)

	var report types.ProjectReport
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Equal(t, "5.5", report.TotalHours.String())
	require.Len(t, report.TaskBreakdown, 2)
	assert.Equal(t, "Task T2", report.TaskBreakdown[0].TaskName)

	// breakdown rows name their group key per dimension on the wire
	assert.Contains(t, string(env.Data), `"task_name":"Task T2"`)
	assert.Contains(t, string(env.Data), `"user_name":"Jane Doe"`)

	// window excludes the T1 entry
	recorder, env = doRequest(t, router, http.MethodGet,
		"/reports/project/"+projectA.ID+"?date_from=2024-01-11", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Equal(t, "3.5", report.TotalHours.String())
}

func TestReportProjectNotFound(t *testing.T) {
	testutil.SetupTestDB(t)

	router := testutil.NewRouter(nil)
	router.GET("/reports/project/:id", controllers.ReportProject)

	recorder, env := doRequest(t, router, http.MethodGet, "/reports/project/no-such-id", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "project not found", env.Message)
}

func TestReportUserEndpoint(t *testing.T) {
	testutil.SetupTestDB(t)
	unit := testutil.CreateUnit(t, "Engineering")
	customer := testutil.CreateCustomer(t, unit.ID, "Acme")
	project := testutil.CreateProject(t, customer.ID, nil, "Project A")
	task := testutil.CreateTask(t, project.ID, "T")
	user := testutil.CreateUser(t, "jane@example.com", "Jane", "Doe")
	testutil.CreateTimeEntry(t, user.ID, task.ID, "2024-01-10", "2.00")

	router := testutil.NewRouter(&user)
	router.GET("/reports/user/:id", controllers.ReportUser)

	recorder, env := doRequest(t, router, http.MethodGet, "/reports/user/"+user.ID, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var report types.UserReport
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Equal(t, "2", report.TotalHours.String())
	require.Len(t, report.ProjectBreakdown, 1)
	assert.Equal(t, "Project A", report.ProjectBreakdown[0].ProjectName)
	assert.Contains(t, string(env.Data), `"project_name":"Project A"`)
}

func TestReportUserNotFound(t *testing.T) {
	testutil.SetupTestDB(t)

	router := testutil.NewRouter(nil)
	router.GET("/reports/user/:id", controllers.ReportUser)

	recorder, _ := doRequest(t, router, http.MethodGet, "/reports/user/no-such-id", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestReportOverallEndpoint(t *testing.T) {
	testutil.SetupTestDB(t)

	router := testutil.NewRouter(nil)
	router.GET("/reports/overall", controllers.ReportOverall)

	recorder, env := doRequest(t, router, http.MethodGet, "/reports/overall", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var report types.OverallReport
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Equal(t, "0", report.TotalHours.String())
}

func TestReportBadDateParam(t *testing.T) {
	testutil.SetupTestDB(t)

	router := testutil.NewRouter(nil)
	router.GET("/reports/overall", controllers.ReportOverall)

	recorder, _ := doRequest(t, router, http.MethodGet, "/reports/overall?date_from=nonsense", "")
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}
