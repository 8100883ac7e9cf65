package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/http/response"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

// Recovery turns a panic into the generic 500 envelope. The panic value is
// logged and never returned to the client.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic recovered", "path", c.Request.URL.Path, "panic", recovered)
		response.RespondError(c, http.StatusInternalServerError, "internal_error", "Internal server error")
		c.Abort()
	})
}
