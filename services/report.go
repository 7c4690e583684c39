package services

import (
	"sort"

	"gorm.io/gorm"
	"timetracker/api/errs"
	"timetracker/api/types"
	"timetracker/models"
)

func ProjectReport(projectID string, dateFrom, dateTo *models.Date) (*types.ProjectReport, error) {
	var project models.Project
	if err := models.DB.First(&project, "id = ?", projectID).Error; err != nil {
		return nil, errs.ErrProjectNotFound
	}

	ids, err := ProjectHierarchy(projectID)
	if err != nil {
		return nil, err
	}

	query := models.DB.
		Preload("User").
		Preload("Task.Project").
		Joins("JOIN tasks ON tasks.id = time_entries.task_id").
		Where("tasks.project_id IN ?", ids)
	query = dateWindow(query, dateFrom, dateTo)

	var entries []models.TimeEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	return &types.ProjectReport{
		ProjectID:     project.ID,
		ProjectName:   project.Name,
		TotalHours:    totalHours(entries),
		TaskBreakdown: taskBreakdown(entries),
		UserBreakdown: userBreakdown(entries),
	}, nil
}

func UserReport(userID string, dateFrom, dateTo *models.Date) (*types.UserReport, error) {
	var user models.User
	if err := models.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, errs.ErrUserNotFound
	}

	query := models.DB.
		Preload("Task.Project").
		Where("user_id = ?", userID)
	query = dateWindow(query, dateFrom, dateTo)

	var entries []models.TimeEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	return &types.UserReport{
		UserID:           user.ID,
		UserName:         user.DisplayName(),
		TotalHours:       totalHours(entries),
		ProjectBreakdown: projectBreakdown(entries),
	}, nil
}

func OverallReport(dateFrom, dateTo *models.Date) (*types.OverallReport, error) {
	query := models.DB.
		Preload("User").
		Preload("Task.Project").
		Model(&models.TimeEntry{})
	query = dateWindow(query, dateFrom, dateTo)

	var entries []models.TimeEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	return &types.OverallReport{
		TotalHours:       totalHours(entries),
		ProjectBreakdown: projectBreakdown(entries),
		UserBreakdown:    userBreakdown(entries),
	}, nil
}

// dateWindow applies the optional inclusive [dateFrom, dateTo] bounds.
func dateWindow(query *gorm.DB, dateFrom, dateTo *models.Date) *gorm.DB {
	if dateFrom != nil {
		query = query.Where("time_entries.date >= ?", *dateFrom)
	}
	if dateTo != nil {
		query = query.Where("time_entries.date <= ?", *dateTo)
	}
	return query
}

func totalHours(entries []models.TimeEntry) models.Hours {
	var total models.Hours
	for _, e := range entries {
		total = total.Add(e.Hours)
	}
	return total
}

type groupSum struct {
	name  string
	hours models.Hours
}

// breakdown groups entries by display name and sums hours per group,
// descending by hours. Keys are names, not ids: same-named entities
// merge into one row. Relative order of equal-hour rows is unspecified.
func breakdown(entries []models.TimeEntry, name func(models.TimeEntry) string) []groupSum {
	sums := make(map[string]models.Hours)
	for _, e := range entries {
		key := name(e)
		sums[key] = sums[key].Add(e.Hours)
	}

	rows := make([]groupSum, 0, len(sums))
	for key, hours := range sums {
		rows = append(rows, groupSum{name: key, hours: hours})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].hours.Cmp(rows[j].hours) > 0
	})
	return rows
}

func taskBreakdown(entries []models.TimeEntry) []types.TaskBreakdownRow {
	sums := breakdown(entries, func(e models.TimeEntry) string { return e.Task.Name })
	rows := make([]types.TaskBreakdownRow, len(sums))
	for i, s := range sums {
		rows[i] = types.TaskBreakdownRow{TaskName: s.name, Hours: s.hours}
	}
	return rows
}

func userBreakdown(entries []models.TimeEntry) []types.UserBreakdownRow {
	sums := breakdown(entries, func(e models.TimeEntry) string { return e.User.DisplayName() })
	rows := make([]types.UserBreakdownRow, len(sums))
	for i, s := range sums {
		rows[i] = types.UserBreakdownRow{UserName: s.name, Hours: s.hours}
	}
	return rows
}

func projectBreakdown(entries []models.TimeEntry) []types.ProjectBreakdownRow {
	sums := breakdown(entries, func(e models.TimeEntry) string { return e.Task.Project.Name })
	rows := make([]types.ProjectBreakdownRow, len(sums))
	for i, s := range sums {
		rows[i] = types.ProjectBreakdownRow{ProjectName: s.name, Hours: s.hours}
	}
	return rows
}
