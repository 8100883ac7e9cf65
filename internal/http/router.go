package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/careerpath-backend/internal/http/handlers"
	httpMW "github.com/yungbote/careerpath-backend/internal/http/middleware"
	"github.com/yungbote/careerpath-backend/internal/observability"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	CORSOrigins []string
	// TracingService enables otelgin spans under this service name when set.
	TracingService string

	HealthHandler        *httpH.HealthHandler
	QuestionHandler      *httpH.QuestionHandler
	AssessmentHandler    *httpH.AssessmentHandler
	CollegeHandler       *httpH.CollegeHandler
	ScholarshipHandler   *httpH.ScholarshipHandler
	StudyMaterialHandler *httpH.StudyMaterialHandler
	CareerPathHandler    *httpH.CareerPathHandler
	UserHandler          *httpH.UserHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Log
	if log == nil {
		log = logger.NewNop()
	}

	r := gin.New()
	r.Use(httpMW.Recovery(log))
	if cfg.TracingService != "" {
		r.Use(otelgin.Middleware(cfg.TracingService))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		if cfg.QuestionHandler != nil {
			api.GET("/questions", cfg.QuestionHandler.ListQuestions)
		}

		if cfg.AssessmentHandler != nil {
			api.POST("/assessments", cfg.AssessmentHandler.CreateAssessment)
			api.GET("/assessments/:userId", cfg.AssessmentHandler.ListUserAssessments)
		}

		if cfg.CollegeHandler != nil {
			api.GET("/colleges", cfg.CollegeHandler.ListColleges)
			api.GET("/colleges/:id", cfg.CollegeHandler.GetCollege)
		}

		if cfg.ScholarshipHandler != nil {
			api.GET("/scholarships", cfg.ScholarshipHandler.ListScholarships)
			api.GET("/scholarships/:id", cfg.ScholarshipHandler.GetScholarship)
		}

		if cfg.StudyMaterialHandler != nil {
			api.GET("/study-materials", cfg.StudyMaterialHandler.ListStudyMaterials)
		}

		if cfg.CareerPathHandler != nil {
			api.GET("/career-paths", cfg.CareerPathHandler.ListCareerPaths)
		}

		if cfg.UserHandler != nil {
			api.POST("/users", cfg.UserHandler.CreateUser)
			api.GET("/users/:id", cfg.UserHandler.GetUser)
		}
	}

	return r
}
