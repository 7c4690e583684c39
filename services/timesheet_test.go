package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"timetracker/models"
	"timetracker/testutil"
)

func TestWeeklyTimesheet(t *testing.T) {
	testutil.SetupTestDB(t)
	unit := testutil.CreateUnit(t, "Engineering")
	customer := testutil.CreateCustomer(t, unit.ID, "Acme")
	project := testutil.CreateProject(t, customer.ID, nil, "P")
	task := testutil.CreateTask(t, project.ID, "T")
	user := testutil.CreateUser(t, "jane@example.com", "Jane", "Doe")
	other := testutil.CreateUser(t, "john@example.com", "John", "Doe")

	// week of Mon 2024-01-08 .. Sun 2024-01-14
	testutil.CreateTimeEntry(t, user.ID, task.ID, "2024-01-08", "8.00")
	testutil.CreateTimeEntry(t, user.ID, task.ID, "2024-01-14", "1.50")
	testutil.CreateTimeEntry(t, user.ID, task.ID, "2024-01-07", "4.00") // prior week
	testutil.CreateTimeEntry(t, user.ID, task.ID, "2024-01-15", "4.00") // next week
	testutil.CreateTimeEntry(t, other.ID, task.ID, "2024-01-10", "2.00")

	day, err := models.ParseDate("2024-01-10")
	require.NoError(t, err)

	timesheet, err := WeeklyTimesheet(user.ID, day)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-08", timesheet.WeekStart.String())
	require.Len(t, timesheet.Entries, 2)
	assert.Equal(t, "2024-01-08", timesheet.Entries[0].Date.String())
	assert.Equal(t, "2024-01-14", timesheet.Entries[1].Date.String())
	assert.Equal(t, "9.5", timesheet.TotalHours.String())
}

func TestWeeklyTimesheetEmptyWeek(t *testing.T) {
	testutil.SetupTestDB(t)
	user := testutil.CreateUser(t, "jane@example.com", "Jane", "Doe")

	day, err := models.ParseDate("2024-06-01")
	require.NoError(t, err)

	timesheet, err := WeeklyTimesheet(user.ID, day)
	require.NoError(t, err)
	assert.Empty(t, timesheet.Entries)
	assert.Equal(t, "0", timesheet.TotalHours.String())
}
