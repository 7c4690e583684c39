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

func ProjectCreate(c *gin.Context) {
	var request types.ProjectRequest

	if err := c.MustBindWith(&request, binding.JSON); err != nil {
		return
	}
	if err := models.DB.First(&models.Customer{}, "id = ?", request.CustomerID).Error; err != nil {
		c.Error(errs.ErrCustomerNotFound)
		return
	}
	if request.ParentID != nil {
		if err := models.DB.First(&models.Project{}, "id = ?", *request.ParentID).Error; err != nil {
			c.Error(errs.ErrParentNotFound)
			return
		}
	}

	project := models.Project{
		ID:          uuid.NewString(),
		CustomerID:  request.CustomerID,
		ParentID:    request.ParentID,
		Name:        request.Name,
		Code:        request.Code,
		Description: request.Description,
		IsActive:    true,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
	}

	if err := models.DB.Create(&project).Error; err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, types.Response{
		Status: "success",
		Data:   project,
	})
}

func ProjectList(c *gin.Context) {
	page, pageSize := pageParams(c)

	query := models.DB.Model(&models.Project{}).Preload("Customer")
	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR code LIKE ?", pattern, pattern)
	}

	var totalCount int64
	query.Count(&totalCount)

	var projects []models.Project
	query.Order("name").Offset((page - 1) * pageSize).Limit(pageSize).Find(&projects)

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data: types.PagedList[models.Project]{
			Items:      projects,
			TotalCount: totalCount,
			Page:       page,
			PageSize:   pageSize,
		},
	})
}

func ProjectGet(c *gin.Context) {
	var project models.Project

	id := c.Params.ByName("id")
	if err := models.DB.Preload("Customer").First(&project, "id = ?", id).Error; err != nil {
		c.Error(errs.ErrProjectNotFound)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   project,
	})
}

func ProjectHierarchyGet(c *gin.Context) {
	id := c.Params.ByName("id")
	project, err := services.ProjectTree(id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   project,
	})
}

func ProjectUpdate(c *gin.Context) {
	var project models.Project

	id := c.Params.ByName("id")
	if err := models.DB.First(&project, "id = ?", id).Error; err != nil {
		c.Error(errs.ErrProjectNotFound)
		return
	}

	var request types.ProjectUpdateRequest
	if err := c.MustBindWith(&request, binding.JSON); err != nil {
		return
	}

	project.Name = request.Name
	project.Code = request.Code
	project.Description = request.Description
	project.StartDate = request.StartDate
	project.EndDate = request.EndDate
	models.DB.Save(&project)
	c.JSON(http.StatusOK, types.Response{
		Status:  "success",
		Message: "updated",
	})
}

func ProjectArchive(c *gin.Context) {
	id := c.Params.ByName("id")
	if err := services.ArchiveProject(id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status:  "success",
		Message: "archived",
	})
}

func ProjectAssignUser(c *gin.Context) {
	var request types.AssignUserRequest

	if err := c.MustBindWith(&request, binding.JSON); err != nil {
		return
	}

	id := c.Params.ByName("id")
	if err := models.DB.First(&models.Project{}, "id = ?", id).Error; err != nil {
		c.Error(errs.ErrProjectNotFound)
		return
	}
	if err := models.DB.First(&models.User{}, "id = ?", request.UserID).Error; err != nil {
		c.Error(errs.ErrUserNotFound)
		return
	}

	// assigning twice is a no-op
	var existing models.ProjectAssignment
	err := models.DB.First(&existing, "user_id = ? AND project_id = ?", request.UserID, id).Error
	if err == nil {
		c.JSON(http.StatusOK, types.Response{
			Status:  "success",
			Message: "already assigned",
		})
		return
	}

	assignment := models.ProjectAssignment{
		UserID:     request.UserID,
		ProjectID:  id,
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

func ProjectUnassignUser(c *gin.Context) {
	id := c.Params.ByName("id")
	userID := c.Params.ByName("user_id")

	result := models.DB.Delete(&models.ProjectAssignment{}, "user_id = ? AND project_id = ?", userID, id)
	if result.RowsAffected == 0 {
		c.Error(errs.ErrAssignmentNotFound)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status:  "success",
		Message: "unassigned",
	})
}

func ProjectUsers(c *gin.Context) {
	id := c.Params.ByName("id")
	if err := models.DB.First(&models.Project{}, "id = ?", id).Error; err != nil {
		c.Error(errs.ErrProjectNotFound)
		return
	}

	var users []models.User
	models.DB.
		Joins("JOIN project_assignments ON project_assignments.user_id = users.id").
		Where("project_assignments.project_id = ?", id).
		Order("last_name").
		Find(&users)

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   users,
	})
}
