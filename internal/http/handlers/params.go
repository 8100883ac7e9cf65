package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/http/response"
	"github.com/yungbote/careerpath-backend/internal/platform/apierr"
)

// pathID parses the :id parameter. A malformed id can never have been
// assigned, so it is answered as not found.
func pathID(c *gin.Context, notFound string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondAPIError(c, apierr.NotFound(notFound, nil))
		return uuid.Nil, false
	}
	return id, true
}
