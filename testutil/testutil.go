// Package testutil provides database and seed helpers shared by tests.
package testutil

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"timetracker/middleware"
	"timetracker/models"
)

// SetupTestDB points models.DB at a fresh in-memory database. The named
// shared cache keeps every pooled connection on the same database.
func SetupTestDB(t *testing.T) {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	if err := models.ConnectDatabase(dsn); err != nil {
		t.Fatalf("failed to set up test database: %s", err)
	}
}

// NewRouter builds a gin engine with the error-draining middleware and,
// when user is non-nil, a stub auth layer resolving to that user.
func NewRouter(user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestLogger())
	if user != nil {
		router.Use(func(c *gin.Context) {
			middleware.SetCurrentUser(c, user)
			c.Next()
		})
	}
	return router
}

func CreateUnit(t *testing.T, name string) models.Unit {
	t.Helper()

	unit := models.Unit{ID: uuid.NewString(), Name: name, IsActive: true}
	if err := models.DB.Create(&unit).Error; err != nil {
		t.Fatalf("failed to create unit: %s", err)
	}
	return unit
}

func CreateCustomer(t *testing.T, unitID, name string) models.Customer {
	t.Helper()

	customer := models.Customer{ID: uuid.NewString(), UnitID: unitID, Name: name, IsActive: true}
	if err := models.DB.Create(&customer).Error; err != nil {
		t.Fatalf("failed to create customer: %s", err)
	}
	return customer
}

func CreateProject(t *testing.T, customerID string, parentID *string, name string) models.Project {
	t.Helper()

	project := models.Project{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		ParentID:   parentID,
		Name:       name,
		Code:       name,
		IsActive:   true,
	}
	if err := models.DB.Create(&project).Error; err != nil {
		t.Fatalf("failed to create project: %s", err)
	}
	return project
}

func CreateTask(t *testing.T, projectID, name string) models.Task {
	t.Helper()

	task := models.Task{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Name:      name,
		Code:      name,
		IsActive:  true,
	}
	if err := models.DB.Create(&task).Error; err != nil {
		t.Fatalf("failed to create task: %s", err)
	}
	return task
}

func CreateUser(t *testing.T, email, firstName, lastName string) models.User {
	t.Helper()

	user := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Role:      models.RoleEmployee,
		IsActive:  true,
	}
	if err := models.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %s", err)
	}
	return user
}

func CreateTimeEntry(t *testing.T, userID, taskID, date, hours string) models.TimeEntry {
	t.Helper()

	day, err := models.ParseDate(date)
	if err != nil {
		t.Fatalf("bad date %q: %s", date, err)
	}
	quantity, err := models.NewHours(hours)
	if err != nil {
		t.Fatalf("bad hours %q: %s", hours, err)
	}
	entry := models.TimeEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		TaskID:    taskID,
		Date:      day,
		Hours:     quantity,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := models.DB.Create(&entry).Error; err != nil {
		t.Fatalf("failed to create time entry: %s", err)
	}
	return entry
}
