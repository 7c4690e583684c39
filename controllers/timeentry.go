package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"timetracker/api/errs"
	"timetracker/api/types"
	"timetracker/middleware"
	"timetracker/models"
)

func TimeEntryCreate(c *gin.Context) {
	var request types.TimeEntryRequest

	if err := c.MustBindWith(&request, binding.JSON); err != nil {
		return
	}
	if request.Date.IsZero() {
		c.Error(errs.ErrInvalidDate)
		return
	}
	if !request.Hours.Valid() {
		c.Error(errs.ErrInvalidHours)
		return
	}

	var task models.Task
	if err := models.DB.First(&task, "id = ?", request.TaskID).Error; err != nil {
		c.Error(errs.ErrTaskNotFound)
		return
	}
	if !task.IsActive {
		c.Error(errs.ErrTaskNotActive)
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		c.Error(errs.ErrUnauthorized)
		return
	}

	entry := models.TimeEntry{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		TaskID:      request.TaskID,
		Date:        request.Date,
		Hours:       request.Hours,
		Description: request.Description,
	}

	if err := models.DB.Create(&entry).Error; err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, types.Response{
		Status: "success",
		Data:   entry,
	})
}

func TimeEntryList(c *gin.Context) {
	page, pageSize := pageParams(c)
	dateFrom, dateTo, err := dateRangeParams(c)
	if err != nil {
		c.Error(err)
		return
	}

	query := models.DB.Model(&models.TimeEntry{}).Preload("User").Preload("Task.Project")
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if taskID := c.Query("task_id"); taskID != "" {
		query = query.Where("task_id = ?", taskID)
	}
	if dateFrom != nil {
		query = query.Where("date >= ?", *dateFrom)
	}
	if dateTo != nil {
		query = query.Where("date <= ?", *dateTo)
	}

	var totalCount int64
	query.Count(&totalCount)

	var entries []models.TimeEntry
	query.Order("date DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&entries)

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data: types.PagedList[models.TimeEntry]{
			Items:      entries,
			TotalCount: totalCount,
			Page:       page,
			PageSize:   pageSize,
		},
	})
}

func TimeEntryGet(c *gin.Context) {
	var entry models.TimeEntry

	id := c.Params.ByName("id")
	if err := models.DB.Preload("User").Preload("Task.Project").First(&entry, "id = ?", id).Error; err != nil {
		c.Error(errs.ErrTimeEntryNotFound)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   entry,
	})
}

func TimeEntryUpdate(c *gin.Context) {
	var entry models.TimeEntry

	id := c.Params.ByName("id")
	if err := models.DB.First(&entry, "id = ?", id).Error; err != nil {
		c.Error(errs.ErrTimeEntryNotFound)
		return
	}

	var request types.TimeEntryUpdateRequest
	if err := c.MustBindWith(&request, binding.JSON); err != nil {
		return
	}
	if request.Date.IsZero() {
		c.Error(errs.ErrInvalidDate)
		return
	}
	if !request.Hours.Valid() {
		c.Error(errs.ErrInvalidHours)
		return
	}

	entry.Date = request.Date
	entry.Hours = request.Hours
	entry.Description = request.Description
	models.DB.Save(&entry)
	c.JSON(http.StatusOK, types.Response{
		Status:  "success",
		Message: "updated",
	})
}

// TimeEntryDelete is the only hard delete in the system.
func TimeEntryDelete(c *gin.Context) {
	var entry models.TimeEntry

	id := c.Params.ByName("id")
	if err := models.DB.First(&entry, "id = ?", id).Error; err != nil {
		c.Error(errs.ErrTimeEntryNotFound)
		return
	}

	models.DB.Delete(&entry)
	c.JSON(http.StatusOK, types.Response{
		Status:  "success",
		Message: "deleted",
	})
}
