package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/http/response"
	"github.com/yungbote/careerpath-backend/internal/platform/apierr"
	"github.com/yungbote/careerpath-backend/internal/services"
)

type CollegeHandler struct {
	colleges services.CollegeService
}

func NewCollegeHandler(colleges services.CollegeService) *CollegeHandler {
	return &CollegeHandler{colleges: colleges}
}

// GET /api/colleges?state=&district=&course=
func (h *CollegeHandler) ListColleges(c *gin.Context) {
	cs, err := h.colleges.List(c.Request.Context(), services.CollegeFilter{
		State:    c.Query("state"),
		District: c.Query("district"),
		Course:   c.Query("course"),
	})
	if err != nil {
		response.RespondAPIError(c, apierr.Internal("Failed to fetch colleges", err))
		return
	}
	response.RespondOK(c, cs)
}

// GET /api/colleges/:id
func (h *CollegeHandler) GetCollege(c *gin.Context) {
	id, ok := pathID(c, "College not found")
	if !ok {
		return
	}
	college, err := h.colleges.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, apierr.From(err, notFoundOr(err, "College not found", "Failed to fetch college")))
		return
	}
	response.RespondOK(c, college)
}
