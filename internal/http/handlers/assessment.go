package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/http/response"
	pkgerrors "github.com/yungbote/careerpath-backend/internal/pkg/errors"
	"github.com/yungbote/careerpath-backend/internal/platform/apierr"
	"github.com/yungbote/careerpath-backend/internal/services"
)

type AssessmentHandler struct {
	assessments services.AssessmentService
}

func NewAssessmentHandler(assessments services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessments: assessments}
}

// POST /api/assessments
func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	var in types.InsertAssessment
	if err := bindJSON(c, &in, "category", "responses", "scores"); err != nil {
		response.RespondAPIError(c, apierr.BadRequest("Invalid assessment data", err))
		return
	}
	a, err := h.assessments.Create(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrInvalidArgument) {
			response.RespondAPIError(c, apierr.BadRequest("Invalid assessment data", err))
			return
		}
		response.RespondAPIError(c, apierr.Internal("Failed to create assessment", err))
		return
	}
	response.RespondOK(c, a)
}

// GET /api/assessments/:userId
func (h *AssessmentHandler) ListUserAssessments(c *gin.Context) {
	as, err := h.assessments.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.RespondAPIError(c, apierr.Internal("Failed to fetch assessments", err))
		return
	}
	response.RespondOK(c, as)
}
