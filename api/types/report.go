package types

import "timetracker/models"

type TaskBreakdownRow struct {
	TaskName string       `json:"task_name"`
	Hours    models.Hours `json:"hours"`
}

type UserBreakdownRow struct {
	UserName string       `json:"user_name"`
	Hours    models.Hours `json:"hours"`
}

type ProjectBreakdownRow struct {
	ProjectName string       `json:"project_name"`
	Hours       models.Hours `json:"hours"`
}

type ProjectReport struct {
	ProjectID     string             `json:"project_id"`
	ProjectName   string             `json:"project_name"`
	TotalHours    models.Hours       `json:"total_hours"`
	TaskBreakdown []TaskBreakdownRow `json:"task_breakdown"`
	UserBreakdown []UserBreakdownRow `json:"user_breakdown"`
}

type UserReport struct {
	UserID           string                `json:"user_id"`
	UserName         string                `json:"user_name"`
	TotalHours       models.Hours          `json:"total_hours"`
	ProjectBreakdown []ProjectBreakdownRow `json:"project_breakdown"`
}

type OverallReport struct {
	TotalHours       models.Hours          `json:"total_hours"`
	ProjectBreakdown []ProjectBreakdownRow `json:"project_breakdown"`
	UserBreakdown    []UserBreakdownRow    `json:"user_breakdown"`
}

type Timesheet struct {
	WeekStart  models.Date        `json:"week_start"`
	Entries    []models.TimeEntry `json:"entries"`
	TotalHours models.Hours       `json:"total_hours"`
}
