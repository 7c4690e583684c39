package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"timetracker/api/types"
	"timetracker/services"
)

func ReportProject(c *gin.Context) {
	dateFrom, dateTo, err := dateRangeParams(c)
	if err != nil {
		c.Error(err)
		return
	}

	report, err := services.ProjectReport(c.Params.ByName("id"), dateFrom, dateTo)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   report,
	})
}

func ReportUser(c *gin.Context) {
	dateFrom, dateTo, err := dateRangeParams(c)
	if err != nil {
		c.Error(err)
		return
	}

	report, err := services.UserReport(c.Params.ByName("id"), dateFrom, dateTo)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   report,
	})
}

func ReportOverall(c *gin.Context) {
	dateFrom, dateTo, err := dateRangeParams(c)
	if err != nil {
		c.Error(err)
		return
	}

	report, err := services.OverallReport(dateFrom, dateTo)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   report,
	})
}
