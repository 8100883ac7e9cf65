package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/http/response"
	"github.com/yungbote/careerpath-backend/internal/platform/apierr"
	"github.com/yungbote/careerpath-backend/internal/services"
)

type QuestionHandler struct {
	questions services.QuestionService
}

func NewQuestionHandler(questions services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questions: questions}
}

// GET /api/questions?category=
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	qs, err := h.questions.List(c.Request.Context(), services.QuestionFilter{
		Category: c.Query("category"),
	})
	if err != nil {
		response.RespondAPIError(c, apierr.Internal("Failed to fetch questions", err))
		return
	}
	response.RespondOK(c, qs)
}
