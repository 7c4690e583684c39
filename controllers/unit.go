package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"timetracker/api/errs"
	"timetracker/api/types"
	"timetracker/models"
	"timetracker/services"
)

func UnitCreate(c *gin.Context) {
	var request types.UnitRequest

	if err := c.MustBindWith(&request, binding.JSON); err != nil {
		return
	}

	unit := models.Unit{
		ID:          uuid.NewString(),
		Name:        request.Name,
		Description: request.Description,
		IsActive:    true,
	}

	if err := models.DB.Create(&unit).Error; err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, types.Response{
		Status: "success",
		Data:   unit,
	})
}

func UnitList(c *gin.Context) {
	var units []models.Unit

	models.DB.Order("name").Find(&units)
	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   units,
	})
}

func UnitGet(c *gin.Context) {
	var unit models.Unit

	id := c.Params.ByName("id")
	if err := models.DB.First(&unit, "id = ?", id).Error; err != nil {
		c.Error(errs.ErrUnitNotFound)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   unit,
	})
}

func UnitUpdate(c *gin.Context) {
	var unit models.Unit

	id := c.Params.ByName("id")
	if err := models.DB.First(&unit, "id = ?", id).Error; err != nil {
		c.Error(errs.ErrUnitNotFound)
		return
	}

	var request types.UnitRequest
	if err := c.MustBindWith(&request, binding.JSON); err != nil {
		return
	}

	unit.Name = request.Name
	unit.Description = request.Description
	models.DB.Save(&unit)
	c.JSON(http.StatusOK, types.Response{
		Status:  "success",
		Message: "updated",
	})
}

func UnitArchive(c *gin.Context) {
	id := c.Params.ByName("id")
	if err := services.ArchiveUnit(id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status:  "success",
		Message: "archived",
	})
}
