package app

import (
	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/seed"
	"github.com/yungbote/careerpath-backend/internal/services"
)

type Services struct {
	Question      services.QuestionService
	Assessment    services.AssessmentService
	College       services.CollegeService
	Scholarship   services.ScholarshipService
	StudyMaterial services.StudyMaterialService
	CareerPath    services.CareerPathService
	User          services.UserService
}

func wireServices(log *logger.Logger, r *repos.Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Question:      services.NewQuestionService(log, r.Questions),
		Assessment:    services.NewAssessmentService(log, r.Assessments),
		College:       services.NewCollegeService(log, r.Colleges),
		Scholarship:   services.NewScholarshipService(log, r.Scholarships),
		StudyMaterial: services.NewStudyMaterialService(log, r.StudyMaterials),
		CareerPath:    services.NewCareerPathService(log, r.CareerPaths),
		User:          services.NewUserService(log, r.Users),
	}
}

func (s Services) seedServices() seed.Services {
	return seed.Services{
		Questions:      s.Question,
		Colleges:       s.College,
		Scholarships:   s.Scholarship,
		StudyMaterials: s.StudyMaterial,
		CareerPaths:    s.CareerPath,
	}
}
