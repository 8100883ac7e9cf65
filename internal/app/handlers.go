package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/http"
	httpH "github.com/yungbote/careerpath-backend/internal/http/handlers"
	"github.com/yungbote/careerpath-backend/internal/observability"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type Handlers struct {
	Health        *httpH.HealthHandler
	Question      *httpH.QuestionHandler
	Assessment    *httpH.AssessmentHandler
	College       *httpH.CollegeHandler
	Scholarship   *httpH.ScholarshipHandler
	StudyMaterial *httpH.StudyMaterialHandler
	CareerPath    *httpH.CareerPathHandler
	User          *httpH.UserHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:        httpH.NewHealthHandler(),
		Question:      httpH.NewQuestionHandler(services.Question),
		Assessment:    httpH.NewAssessmentHandler(services.Assessment),
		College:       httpH.NewCollegeHandler(services.College),
		Scholarship:   httpH.NewScholarshipHandler(services.Scholarship),
		StudyMaterial: httpH.NewStudyMaterialHandler(services.StudyMaterial),
		CareerPath:    httpH.NewCareerPathHandler(services.CareerPath),
		User:          httpH.NewUserHandler(services.User),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, metrics *observability.Metrics) *gin.Engine {
	tracingService := ""
	if cfg.Tracing.Enabled {
		tracingService = cfg.App.Name
	}
	return http.NewRouter(http.RouterConfig{
		Log:                  log,
		Metrics:              metrics,
		CORSOrigins:          cfg.CORS.AllowedOrigins,
		TracingService:       tracingService,
		HealthHandler:        handlers.Health,
		QuestionHandler:      handlers.Question,
		AssessmentHandler:    handlers.Assessment,
		CollegeHandler:       handlers.College,
		ScholarshipHandler:   handlers.Scholarship,
		StudyMaterialHandler: handlers.StudyMaterial,
		CareerPathHandler:    handlers.CareerPath,
		UserHandler:          handlers.User,
	})
}
