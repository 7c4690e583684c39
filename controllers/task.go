package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"timetracker/api/errs"
	"timetracker/api/types"
	"timetracker/middleware"
	"timetracker/models"
	"timetracker/services"
)

func TaskCreate(c *gin.Context) {
	var request types.TaskRequest

	if err := c.MustBindWith(&request, binding.JSON); err != nil {
		return
	}
	if err := models.DB.First(&models.Project{}, "id = ?", request.ProjectID).Error; err != nil {
		c.Error(errs.ErrProjectNotFound)
		return
	}

	task := models.Task{
		ID:          uuid.NewString(),
		ProjectID:   request.ProjectID,
		Name:        request.Name,
		Code:        request.Code,
		Description: request.Description,
		IsActive:    true,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
	}

	if err := models.DB.Create(&task).Error; err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, types.Response{
		Status: "success",
		Data:   task,
	})
}

func TaskList(c *gin.Context) {
	page, pageSize := pageParams(c)

	query := models.DB.Model(&models.Task{}).Preload("Project")
	if projectID := c.Query("project_id"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR code LIKE ?", pattern, pattern)
	}

	var totalCount int64
	query.Count(&totalCount)

	var tasks []models.Task
	query.Order("name").Offset((page - 1) * pageSize).Limit(pageSize).Find(&tasks)

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data: types.PagedList[models.Task]{
			Items:      tasks,
			TotalCount: totalCount,
			Page:       page,
			PageSize:   pageSize,
		},
	})
}

func TaskGet(c *gin.Context) {
	var task models.Task

	id := c.Params.ByName("id")
	if err := models.DB.Preload("Project").First(&task, "id = ?", id).Error; err != nil {
		c.Error(errs.ErrTaskNotFound)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   task,
	})
}

func TaskUpdate(c *gin.Context) {
	var task models.Task

	id := c.Params.ByName("id")
	if err := models.DB.First(&task, "id = ?", id).Error; err != nil {
		c.Error(errs.ErrTaskNotFound)
		return
	}

	var request types.TaskUpdateRequest
	if err := c.MustBindWith(&request, binding.JSON); err != nil {
		return
	}

	task.Name = request.Name
	task.Code = request.Code
	task.Description = request.Description
	task.StartDate = request.StartDate
	task.EndDate = request.EndDate
	models.DB.Save(&task)
	c.JSON(http.StatusOK, types.Response{
		Status:  "success",
		Message: "updated",
	})
}

func TaskArchive(c *gin.Context) {
	id := c.Params.ByName("id")
	if err := services.ArchiveTask(id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status:  "success",
		Message: "archived",
	})
}

func TaskAssignUser(c *gin.Context) {
	var request types.AssignUserRequest

	if err := c.MustBindWith(&request, binding.JSON); err != nil {
		return
	}

	id := c.Params.ByName("id")
	if err := models.DB.First(&models.Task{}, "id = ?", id).Error; err != nil {
		c.Error(errs.ErrTaskNotFound)
		return
	}
	if err := models.DB.First(&models.User{}, "id = ?", request.UserID).Error; err != nil {
		c.Error(errs.ErrUserNotFound)
		return
	}

	var existing models.TaskAssignment
	err := models.DB.First(&existing, "user_id = ? AND task_id = ?", request.UserID, id).Error
	if err == nil {
		c.JSON(http.StatusOK, types.Response{
			Status:  "success",
			Message: "already assigned",
		})
		return
	}

	assignment := models.TaskAssignment{
		UserID:     request.UserID,
		TaskID:     id,
		AssignedAt: time.Now().UTC(),
	}
	if actor := middleware.CurrentUser(c); actor != nil {
		assignment.AssignedBy = &actor.ID
	}

	models.DB.Create(&assignment)
	c.JSON(http.StatusCreated, types.Response{
		Status:  "success",
		Message: "assigned",
	})
}

func TaskUnassignUser(c *gin.Context) {
	id := c.Params.ByName("id")
	userID := c.Params.ByName("user_id")

	result := models.DB.Delete(&models.TaskAssignment{}, "user_id = ? AND task_id = ?", userID, id)
	if result.RowsAffected == 0 {
		c.Error(errs.ErrAssignmentNotFound)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status:  "success",
		Message: "unassigned",
	})
}

func TaskUsers(c *gin.Context) {
	id := c.Params.ByName("id")
	if err := models.DB.First(&models.Task{}, "id = ?", id).Error; err != nil {
		c.Error(errs.ErrTaskNotFound)
		return
	}

	var users []models.User
	models.DB.
		Joins("JOIN task_assignments ON task_assignments.user_id = users.id").
		Where("task_assignments.task_id = ?", id).
		Order("last_name").
		Find(&users)

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   users,
	})
}
