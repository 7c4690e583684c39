package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"timetracker/api/errs"
	"timetracker/api/types"
	"timetracker/middleware"
	"timetracker/models"
	"timetracker/services"
)

// TimesheetMy returns the current user's entries for the week containing
// the date query parameter.
func TimesheetMy(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Error(errs.ErrUnauthorized)
		return
	}

	day, err := models.ParseDate(c.Query("date"))
	if err != nil {
		c.Error(errs.ErrInvalidDate)
		return
	}

	timesheet, err := services.WeeklyTimesheet(user.ID, day)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   timesheet,
	})
}
