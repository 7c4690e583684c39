package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"timetracker/api/errs"
	"timetracker/api/types"
)

// RequestLogger logs each request and drains handler errors into the
// sentinel status map.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()
		latency := time.Since(startTime)
		status := c.Writer.Status()

		if len(c.Errors) != 0 {
			err := c.Errors.Last().Err
			log.Error().Err(err).Msg("")

			if !c.Writer.Written() {
				code := http.StatusInternalServerError
				message := "internal error"
				for knownErr, statusCode := range errs.ErrStatusMap {
					if errors.Is(err, knownErr) {
						code = statusCode
						message = knownErr.Error()
						break
					}
				}
				c.AbortWithStatusJSON(code, types.Response{
					Status:  "error",
					Message: message,
				})
			}
		}
		log.Debug().
			Int("status", status).
			Dur("latency", latency).
			Str("ip", c.ClientIP()).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("")
	}
}
