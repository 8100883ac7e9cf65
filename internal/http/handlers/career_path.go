package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/http/response"
	"github.com/yungbote/careerpath-backend/internal/platform/apierr"
	"github.com/yungbote/careerpath-backend/internal/services"
)

type CareerPathHandler struct {
	paths services.CareerPathService
}

func NewCareerPathHandler(paths services.CareerPathService) *CareerPathHandler {
	return &CareerPathHandler{paths: paths}
}

// GET /api/career-paths?stream=
func (h *CareerPathHandler) ListCareerPaths(c *gin.Context) {
	ps, err := h.paths.List(c.Request.Context(), services.CareerPathFilter{Stream: c.Query("stream")})
	if err != nil {
		response.RespondAPIError(c, apierr.Internal("Failed to fetch career paths", err))
		return
	}
	response.RespondOK(c, ps)
}
