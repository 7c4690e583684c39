package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"timetracker/api/errs"
	"timetracker/models"
)

func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

// dateRangeParams reads the optional date_from / date_to query bounds.
func dateRangeParams(c *gin.Context) (*models.Date, *models.Date, error) {
	var dateFrom, dateTo *models.Date

	if raw := c.Query("date_from"); raw != "" {
		parsed, err := models.ParseDate(raw)
		if err != nil {
			return nil, nil, errs.ErrInvalidDate
		}
		dateFrom = &parsed
	}
	if raw := c.Query("date_to"); raw != "" {
		parsed, err := models.ParseDate(raw)
		if err != nil {
			return nil, nil, errs.ErrInvalidDate
		}
		dateTo = &parsed
	}
	return dateFrom, dateTo, nil
}
