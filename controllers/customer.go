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

func CustomerCreate(c *gin.Context) {
	var request types.CustomerRequest

	if err := c.MustBindWith(&request, binding.JSON); err != nil {
		return
	}
	if err := models.DB.First(&models.Unit{}, "id = ?", request.UnitID).Error; err != nil {
		c.Error(errs.ErrUnitNotFound)
		return
	}

	customer := models.Customer{
		ID:           uuid.NewString(),
		UnitID:       request.UnitID,
		Name:         request.Name,
		Description:  request.Description,
		ContactEmail: request.ContactEmail,
		ContactPhone: request.ContactPhone,
		IsActive:     true,
	}

	if err := models.DB.Create(&customer).Error; err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, types.Response{
		Status: "success",
		Data:   customer,
	})
}

func CustomerList(c *gin.Context) {
	var customers []models.Customer

	query := models.DB.Order("name")
	if unitID := c.Query("unit_id"); unitID != "" {
		query = query.Where("unit_id = ?", unitID)
	}
	query.Find(&customers)
	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   customers,
	})
}

func CustomerGet(c *gin.Context) {
	var customer models.Customer

	id := c.Params.ByName("id")
	if err := models.DB.Preload("Unit").First(&customer, "id = ?", id).Error; err != nil {
		c.Error(errs.ErrCustomerNotFound)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   customer,
	})
}

func CustomerUpdate(c *gin.Context) {
	var customer models.Customer

	id := c.Params.ByName("id")
	if err := models.DB.First(&customer, "id = ?", id).Error; err != nil {
		c.Error(errs.ErrCustomerNotFound)
		return
	}

	var request types.CustomerUpdateRequest
	if err := c.MustBindWith(&request, binding.JSON); err != nil {
		return
	}

	customer.Name = request.Name
	customer.Description = request.Description
	customer.ContactEmail = request.ContactEmail
	customer.ContactPhone = request.ContactPhone
	models.DB.Save(&customer)
	c.JSON(http.StatusOK, types.Response{
		Status:  "success",
		Message: "updated",
	})
}

func CustomerArchive(c *gin.Context) {
	id := c.Params.ByName("id")
	if err := services.ArchiveCustomer(id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status:  "success",
		Message: "archived",
	})
}
