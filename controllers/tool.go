package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"timetracker/api/errs"
	"timetracker/api/types"
	"timetracker/tools"
)

func ToolList(c *gin.Context) {
	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   tools.Default.List(),
	})
}

func ToolCall(c *gin.Context) {
	tool, ok := tools.Default.Get(c.Params.ByName("name"))
	if !ok {
		c.Error(errs.ErrToolNotFound)
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Error(err)
		return
	}
	args := bytes.TrimSpace(body)
	if len(args) == 0 {
		args = []byte("{}")
	}
	if args[0] != '{' || !json.Valid(args) {
		c.JSON(http.StatusBadRequest, types.Response{
			Status:  "error",
			Message: "arguments must be a JSON object",
		})
		return
	}

	result, err := tool.Handler(c, args)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   result,
	})
}
