package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/http/response"
	"github.com/yungbote/careerpath-backend/internal/platform/apierr"
	"github.com/yungbote/careerpath-backend/internal/services"
)

type ScholarshipHandler struct {
	scholarships services.ScholarshipService
}

func NewScholarshipHandler(scholarships services.ScholarshipService) *ScholarshipHandler {
	return &ScholarshipHandler{scholarships: scholarships}
}

// GET /api/scholarships?category=&educationLevel=&state=
func (h *ScholarshipHandler) ListScholarships(c *gin.Context) {
	ss, err := h.scholarships.List(c.Request.Context(), services.ScholarshipFilter{
		Category:       c.Query("category"),
		EducationLevel: c.Query("educationLevel"),
		State:          c.Query("state"),
	})
	if err != nil {
		response.RespondAPIError(c, apierr.Internal("Failed to fetch scholarships", err))
		return
	}
	response.RespondOK(c, ss)
}

// GET /api/scholarships/:id
func (h *ScholarshipHandler) GetScholarship(c *gin.Context) {
	id, ok := pathID(c, "Scholarship not found")
	if !ok {
		return
	}
	s, err := h.scholarships.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, apierr.From(err, notFoundOr(err, "Scholarship not found", "Failed to fetch scholarship")))
		return
	}
	response.RespondOK(c, s)
}
