package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/stpnv0/SalonBooker/internal/domain"
	"github.com/stpnv0/SalonBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery turns a panic into a 500 with the same body shape as handler errors.
// A panic inside a booking transaction has already rolled it back via the deferred Rollback.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.String("request_id", GetRequestID(c)),
				logger.String("method", c.Request.Method),
				logger.String("path", c.FullPath()),
				logger.Any("error", rec),
				logger.String("stack", string(debug.Stack())),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "internal server error",
				Code:  domain.CodeInternal,
			})
		}()

		c.Next()
	}
}
