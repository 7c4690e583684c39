package tools

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"timetracker/api/errs"
	"timetracker/middleware"
	"timetracker/models"
	"timetracker/services"
)

// Default holds the tool set exposed at /api/v1/tools.
var Default = NewRegistry()

func schema(properties map[string]interface{}, required ...string) map[string]interface{} {
	s := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func currentUser(c *gin.Context) (*models.User, error) {
	user := middleware.CurrentUser(c)
	if user == nil {
		return nil, errs.ErrUnauthorized
	}
	return user, nil
}

func init() {
	Default.Register(Tool{
		Name: "get_my_projects",
		Description: "Returns all projects assigned to the authenticated user. " +
			"Use this to discover which projects the user can log time against.",
		InputSchema: schema(map[string]interface{}{}),
		Handler: func(c *gin.Context, _ json.RawMessage) (interface{}, error) {
			user, err := currentUser(c)
			if err != nil {
				return nil, err
			}
			var projects []models.Project
			err = models.DB.Preload("Customer").
				Joins("JOIN project_assignments ON project_assignments.project_id = projects.id").
				Where("project_assignments.user_id = ?", user.ID).
				Order("projects.name").
				Find(&projects).Error
			return projects, err
		},
	})

	Default.Register(Tool{
		Name: "get_project_tasks",
		Description: "Returns all tasks under a project. Time entries are logged " +
			"against tasks, so use this to resolve the task id before creating one.",
		InputSchema: schema(map[string]interface{}{
			"project_id": map[string]interface{}{"type": "string"},
		}, "project_id"),
		Handler: func(c *gin.Context, args json.RawMessage) (interface{}, error) {
			var params struct {
				ProjectID string `json:"project_id"`
			}
			if err := json.Unmarshal(args, &params); err != nil {
				return nil, err
			}
			if err := models.DB.First(&models.Project{}, "id = ?", params.ProjectID).Error; err != nil {
				return nil, errs.ErrProjectNotFound
			}
			var tasks []models.Task
			err := models.DB.Where("project_id = ?", params.ProjectID).Order("name").Find(&tasks).Error
			return tasks, err
		},
	})

	Default.Register(Tool{
		Name: "get_task_details",
		Description: "Returns one task with its project association. Use this to " +
			"confirm a task is active before logging time against it.",
		InputSchema: schema(map[string]interface{}{
			"task_id": map[string]interface{}{"type": "string"},
		}, "task_id"),
		Handler: func(c *gin.Context, args json.RawMessage) (interface{}, error) {
			var params struct {
				TaskID string `json:"task_id"`
			}
			if err := json.Unmarshal(args, &params); err != nil {
				return nil, err
			}
			var task models.Task
			if err := models.DB.Preload("Project").First(&task, "id = ?", params.TaskID).Error; err != nil {
				return nil, errs.ErrTaskNotFound
			}
			return task, nil
		},
	})

	Default.Register(Tool{
		Name: "get_my_time_entries",
		Description: "Returns the authenticated user's time entries, optionally " +
			"filtered by task and an inclusive date range. Use this to check for " +
			"existing entries before creating duplicates.",
		InputSchema: schema(map[string]interface{}{
			"task_id":   map[string]interface{}{"type": "string"},
			"date_from": map[string]interface{}{"type": "string", "description": "YYYY-MM-DD"},
			"date_to":   map[string]interface{}{"type": "string", "description": "YYYY-MM-DD"},
		}),
		Handler: func(c *gin.Context, args json.RawMessage) (interface{}, error) {
			user, err := currentUser(c)
			if err != nil {
				return nil, err
			}
			var params struct {
				TaskID   string `json:"task_id"`
				DateFrom string `json:"date_from"`
				DateTo   string `json:"date_to"`
			}
			if err := json.Unmarshal(args, &params); err != nil {
				return nil, err
			}
			query := models.DB.Preload("Task.Project").Where("user_id = ?", user.ID)
			if params.TaskID != "" {
				query = query.Where("task_id = ?", params.TaskID)
			}
			if params.DateFrom != "" {
				from, err := models.ParseDate(params.DateFrom)
				if err != nil {
					return nil, errs.ErrInvalidDate
				}
				query = query.Where("date >= ?", from)
			}
			if params.DateTo != "" {
				to, err := models.ParseDate(params.DateTo)
				if err != nil {
					return nil, errs.ErrInvalidDate
				}
				query = query.Where("date <= ?", to)
			}
			var entries []models.TimeEntry
			err = query.Order("date DESC").Find(&entries).Error
			return entries, err
		},
	})

	Default.Register(Tool{
		Name: "get_my_timesheet",
		Description: "Returns the authenticated user's timesheet for the " +
			"Monday-to-Sunday week containing the given date, with a total.",
		InputSchema: schema(map[string]interface{}{
			"date": map[string]interface{}{"type": "string", "description": "any date within the target week, YYYY-MM-DD"},
		}, "date"),
		Handler: func(c *gin.Context, args json.RawMessage) (interface{}, error) {
			user, err := currentUser(c)
			if err != nil {
				return nil, err
			}
			var params struct {
				Date string `json:"date"`
			}
			if err := json.Unmarshal(args, &params); err != nil {
				return nil, err
			}
			day, err := models.ParseDate(params.Date)
			if err != nil {
				return nil, errs.ErrInvalidDate
			}
			return services.WeeklyTimesheet(user.ID, day)
		},
	})

	Default.Register(Tool{
		Name: "create_time_entry",
		Description: "Creates a time entry for the authenticated user against a " +
			"task on a date. Hours must be 0.25 to 24.00 in 0.25 increments.",
		InputSchema: schema(map[string]interface{}{
			"task_id":     map[string]interface{}{"type": "string"},
			"date":        map[string]interface{}{"type": "string", "description": "YYYY-MM-DD"},
			"hours":       map[string]interface{}{"type": "number"},
			"description": map[string]interface{}{"type": "string"},
		}, "task_id", "date", "hours"),
		Handler: func(c *gin.Context, args json.RawMessage) (interface{}, error) {
			user, err := currentUser(c)
			if err != nil {
				return nil, err
			}
			var params struct {
				TaskID      string       `json:"task_id"`
				Date        string       `json:"date"`
				Hours       models.Hours `json:"hours"`
				Description string       `json:"description"`
			}
			if err := json.Unmarshal(args, &params); err != nil {
				return nil, err
			}
			day, err := models.ParseDate(params.Date)
			if err != nil {
				return nil, errs.ErrInvalidDate
			}
			if !params.Hours.Valid() {
				return nil, errs.ErrInvalidHours
			}
			if utf8.RuneCountInString(params.Description) > 500 {
				return nil, errs.ErrDescriptionTooLong
			}
			var task models.Task
			if err := models.DB.First(&task, "id = ?", params.TaskID).Error; err != nil {
				return nil, errs.ErrTaskNotFound
			}
			if !task.IsActive {
				return nil, errs.ErrTaskNotActive
			}
			entry := models.TimeEntry{
				ID:          uuid.NewString(),
				UserID:      user.ID,
				TaskID:      params.TaskID,
				Date:        day,
				Hours:       params.Hours,
				Description: params.Description,
			}
			if err := models.DB.Create(&entry).Error; err != nil {
				return nil, err
			}
			return entry, nil
		},
	})

	Default.Register(Tool{
		Name: "get_project_report",
		Description: "Returns hour totals for a project and all of its " +
			"descendant projects, broken down by task and by user, optionally " +
			"restricted to an inclusive date range.",
		InputSchema: schema(map[string]interface{}{
			"project_id": map[string]interface{}{"type": "string"},
			"date_from":  map[string]interface{}{"type": "string", "description": "YYYY-MM-DD"},
			"date_to":    map[string]interface{}{"type": "string", "description": "YYYY-MM-DD"},
		}, "project_id"),
		Handler: func(c *gin.Context, args json.RawMessage) (interface{}, error) {
			var params struct {
				ProjectID string `json:"project_id"`
				DateFrom  string `json:"date_from"`
				DateTo    string `json:"date_to"`
			}
			if err := json.Unmarshal(args, &params); err != nil {
				return nil, err
			}
			dateFrom, dateTo, err := parseWindow(params.DateFrom, params.DateTo)
			if err != nil {
				return nil, err
			}
			return services.ProjectReport(params.ProjectID, dateFrom, dateTo)
		},
	})

	Default.Register(Tool{
		Name: "get_overall_report",
		Description: "Returns hour totals across all projects and users, " +
			"optionally restricted to an inclusive date range.",
		InputSchema: schema(map[string]interface{}{
			"date_from": map[string]interface{}{"type": "string", "description": "YYYY-MM-DD"},
			"date_to":   map[string]interface{}{"type": "string", "description": "YYYY-MM-DD"},
		}),
		Handler: func(c *gin.Context, args json.RawMessage) (interface{}, error) {
			var params struct {
				DateFrom string `json:"date_from"`
				DateTo   string `json:"date_to"`
			}
			if err := json.Unmarshal(args, &params); err != nil {
				return nil, err
			}
			dateFrom, dateTo, err := parseWindow(params.DateFrom, params.DateTo)
			if err != nil {
				return nil, err
			}
			return services.OverallReport(dateFrom, dateTo)
		},
	})
}

func parseWindow(fromRaw, toRaw string) (*models.Date, *models.Date, error) {
	var dateFrom, dateTo *models.Date
	if fromRaw != "" {
		parsed, err := models.ParseDate(fromRaw)
		if err != nil {
			return nil, nil, errs.ErrInvalidDate
		}
		dateFrom = &parsed
	}
	if toRaw != "" {
		parsed, err := models.ParseDate(toRaw)
		if err != nil {
			return nil, nil, errs.ErrInvalidDate
		}
		dateTo = &parsed
	}
	return dateFrom, dateTo, nil
}
