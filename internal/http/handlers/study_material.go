package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/http/response"
	"github.com/yungbote/careerpath-backend/internal/platform/apierr"
	"github.com/yungbote/careerpath-backend/internal/services"
)

type StudyMaterialHandler struct {
	materials services.StudyMaterialService
}

func NewStudyMaterialHandler(materials services.StudyMaterialService) *StudyMaterialHandler {
	return &StudyMaterialHandler{materials: materials}
}

// GET /api/study-materials?stream=&subject=&type=
func (h *StudyMaterialHandler) ListStudyMaterials(c *gin.Context) {
	ms, err := h.materials.List(c.Request.Context(), services.StudyMaterialFilter{
		Stream:  c.Query("stream"),
		Subject: c.Query("subject"),
		Type:    c.Query("type"),
	})
	if err != nil {
		response.RespondAPIError(c, apierr.Internal("Failed to fetch study materials", err))
		return
	}
	response.RespondOK(c, ms)
}
