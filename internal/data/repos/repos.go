package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/data/store"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type UserRepo = store.Table[types.User]
type AssessmentRepo = store.Table[types.Assessment]
type QuestionRepo = store.Table[types.Question]
type CollegeRepo = store.Table[types.College]
type ScholarshipRepo = store.Table[types.Scholarship]
type StudyMaterialRepo = store.Table[types.StudyMaterial]
type CareerPathRepo = store.Table[types.CareerPath]

// Repos is one table per entity kind, all backed by the same driver.
type Repos struct {
	Users          UserRepo
	Assessments    AssessmentRepo
	Questions      QuestionRepo
	Colleges       CollegeRepo
	Scholarships   ScholarshipRepo
	StudyMaterials StudyMaterialRepo
	CareerPaths    CareerPathRepo
}

func NewMemory(baseLog *logger.Logger) *Repos {
	return &Repos{
		Users:          store.NewMemoryTable[types.User](string(types.KindUser), baseLog),
		Assessments:    store.NewMemoryTable[types.Assessment](string(types.KindAssessment), baseLog),
		Questions:      store.NewMemoryTable[types.Question](string(types.KindQuestion), baseLog),
		Colleges:       store.NewMemoryTable[types.College](string(types.KindCollege), baseLog),
		Scholarships:   store.NewMemoryTable[types.Scholarship](string(types.KindScholarship), baseLog),
		StudyMaterials: store.NewMemoryTable[types.StudyMaterial](string(types.KindStudyMaterial), baseLog),
		CareerPaths:    store.NewMemoryTable[types.CareerPath](string(types.KindCareerPath), baseLog),
	}
}

// NewGorm expects db to have the records table migrated already.
func NewGorm(db *gorm.DB, baseLog *logger.Logger) *Repos {
	return &Repos{
		Users:          store.NewGormTable[types.User](db, string(types.KindUser), baseLog),
		Assessments:    store.NewGormTable[types.Assessment](db, string(types.KindAssessment), baseLog),
		Questions:      store.NewGormTable[types.Question](db, string(types.KindQuestion), baseLog),
		Colleges:       store.NewGormTable[types.College](db, string(types.KindCollege), baseLog),
		Scholarships:   store.NewGormTable[types.Scholarship](db, string(types.KindScholarship), baseLog),
		StudyMaterials: store.NewGormTable[types.StudyMaterial](db, string(types.KindStudyMaterial), baseLog),
		CareerPaths:    store.NewGormTable[types.CareerPath](db, string(types.KindCareerPath), baseLog),
	}
}
