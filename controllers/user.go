package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"timetracker/api/errs"
	"timetracker/api/types"
	"timetracker/models"
	"timetracker/services"
)

func UserList(c *gin.Context) {
	var users []models.User

	query := models.DB.Order("last_name")
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ?", pattern, pattern, pattern)
	}
	query.Find(&users)

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   users,
	})
}

func UserGet(c *gin.Context) {
	var user models.User

	id := c.Params.ByName("id")
	if err := models.DB.First(&user, "id = ?", id).Error; err != nil {
		c.Error(errs.ErrUserNotFound)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   user,
	})
}

func UserUpdate(c *gin.Context) {
	var user models.User

	id := c.Params.ByName("id")
	if err := models.DB.First(&user, "id = ?", id).Error; err != nil {
		c.Error(errs.ErrUserNotFound)
		return
	}

	var request types.UserUpdateRequest
	if err := c.MustBindWith(&request, binding.JSON); err != nil {
		return
	}

	user.FirstName = request.FirstName
	user.LastName = request.LastName
	user.Role = request.Role
	models.DB.Save(&user)
	c.JSON(http.StatusOK, types.Response{
		Status:  "success",
		Message: "updated",
	})
}

func UserDeactivate(c *gin.Context) {
	id := c.Params.ByName("id")
	if err := services.DeactivateUser(id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status:  "success",
		Message: "deactivated",
	})
}

// UserProjects lists projects the user is assigned to, name-ordered.
func UserProjects(c *gin.Context) {
	id := c.Params.ByName("id")
	if err := models.DB.First(&models.User{}, "id = ?", id).Error; err != nil {
		c.Error(errs.ErrUserNotFound)
		return
	}

	var projects []models.Project
	models.DB.Preload("Customer").
		Joins("JOIN project_assignments ON project_assignments.project_id = projects.id").
		Where("project_assignments.user_id = ?", id).
		Order("projects.name").
		Find(&projects)

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   projects,
	})
}

func UserTasks(c *gin.Context) {
	id := c.Params.ByName("id")
	if err := models.DB.First(&models.User{}, "id = ?", id).Error; err != nil {
		c.Error(errs.ErrUserNotFound)
		return
	}

	var tasks []models.Task
	models.DB.Preload("Project").
		Joins("JOIN task_assignments ON task_assignments.task_id = tasks.id").
		Where("task_assignments.user_id = ?", id).
		Order("tasks.name").
		Find(&tasks)

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   tasks,
	})
}
