package services

import (
	"timetracker/api/types"
	"timetracker/models"
)

// WeeklyTimesheet returns the user's entries for the Monday-to-Sunday
// week containing day, date-ordered, with an exact total.
func WeeklyTimesheet(userID string, day models.Date) (*types.Timesheet, error) {
	weekStart := day.WeekStart()
	weekEnd := weekStart.AddDays(6)

	var entries []models.TimeEntry
	err := models.DB.
		Preload("User").
		Preload("Task.Project").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, weekStart, weekEnd).
		Order("date").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return &types.Timesheet{
		WeekStart:  weekStart,
		Entries:    entries,
		TotalHours: totalHours(entries),
	}, nil
}
