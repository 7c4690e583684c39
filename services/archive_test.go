package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"timetracker/api/errs"
	"timetracker/models"
	"timetracker/testutil"
)

func reloadProject(t *testing.T, id string) models.Project {
	t.Helper()
	var project models.Project
	require.NoError(t, models.DB.First(&project, "id = ?", id).Error)
	return project
}

func TestArchiveProjectShallowCascade(t *testing.T) {
	testutil.SetupTestDB(t)
	unit := testutil.CreateUnit(t, "Engineering")
	customer := testutil.CreateCustomer(t, unit.ID, "Acme")

	root := testutil.CreateProject(t, customer.ID, nil, "Root")
	child := testutil.CreateProject(t, customer.ID, &root.ID, "Child")
	grandchild := testutil.CreateProject(t, customer.ID, &child.ID, "Grandchild")
	task := testutil.CreateTask(t, root.ID, "Direct task")
	childTask := testutil.CreateTask(t, child.ID, "Child task")

	require.NoError(t, ArchiveProject(root.ID))

	assert.False(t, reloadProject(t, root.ID).IsActive)
	assert.False(t, reloadProject(t, child.ID).IsActive)

	// the cascade stops at direct children: grandchildren and the
	// child's own tasks keep their flags
	assert.True(t, reloadProject(t, grandchild.ID).IsActive)

	var reloadedTask models.Task
	require.NoError(t, models.DB.First(&reloadedTask, "id = ?", task.ID).Error)
	assert.False(t, reloadedTask.IsActive)

	var reloadedChildTask models.Task
	require.NoError(t, models.DB.First(&reloadedChildTask, "id = ?", childTask.ID).Error)
	assert.True(t, reloadedChildTask.IsActive)
}

func TestArchiveProjectNotFound(t *testing.T) {
	testutil.SetupTestDB(t)
	assert.ErrorIs(t, ArchiveProject("no-such-id"), errs.ErrProjectNotFound)
}

func TestArchiveUnitCascadesToCustomers(t *testing.T) {
	testutil.SetupTestDB(t)
	unit := testutil.CreateUnit(t, "Engineering")
	customer := testutil.CreateCustomer(t, unit.ID, "Acme")
	project := testutil.CreateProject(t, customer.ID, nil, "P")

	require.NoError(t, ArchiveUnit(unit.ID))

	var reloadedUnit models.Unit
	require.NoError(t, models.DB.First(&reloadedUnit, "id = ?", unit.ID).Error)
	assert.False(t, reloadedUnit.IsActive)

	var reloadedCustomer models.Customer
	require.NoError(t, models.DB.First(&reloadedCustomer, "id = ?", customer.ID).Error)
	assert.False(t, reloadedCustomer.IsActive)

	// projects are untouched by a unit archive
	assert.True(t, reloadProject(t, project.ID).IsActive)
}

func TestArchiveCustomerCascadesToProjects(t *testing.T) {
	testutil.SetupTestDB(t)
	unit := testutil.CreateUnit(t, "Engineering")
	customer := testutil.CreateCustomer(t, unit.ID, "Acme")
	project := testutil.CreateProject(t, customer.ID, nil, "P")
	task := testutil.CreateTask(t, project.ID, "T")

	require.NoError(t, ArchiveCustomer(customer.ID))

	assert.False(t, reloadProject(t, project.ID).IsActive)

	var reloadedTask models.Task
	require.NoError(t, models.DB.First(&reloadedTask, "id = ?", task.ID).Error)
	assert.True(t, reloadedTask.IsActive)
}

func TestArchiveKeepsRows(t *testing.T) {
	testutil.SetupTestDB(t)
	unit := testutil.CreateUnit(t, "Engineering")

	require.NoError(t, ArchiveUnit(unit.ID))

	var count int64
	models.DB.Model(&models.Unit{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeactivateUserKeepsTimeEntries(t *testing.T) {
	testutil.SetupTestDB(t)
	unit := testutil.CreateUnit(t, "Engineering")
	customer := testutil.CreateCustomer(t, unit.ID, "Acme")
	project := testutil.CreateProject(t, customer.ID, nil, "P")
	task := testutil.CreateTask(t, project.ID, "T")
	user := testutil.CreateUser(t, "jane@example.com", "Jane", "Doe")
	testutil.CreateTimeEntry(t, user.ID, task.ID, "2024-01-10", "2.00")

	require.NoError(t, DeactivateUser(user.ID))

	var reloaded models.User
	require.NoError(t, models.DB.First(&reloaded, "id = ?", user.ID).Error)
	assert.False(t, reloaded.IsActive)

	var count int64
	models.DB.Model(&models.TimeEntry{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}
