package domain

import (
	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
	"github.com/yungbote/careerpath-backend/internal/domain/catalog"
	"github.com/yungbote/careerpath-backend/internal/domain/user"
)

type User = user.User
type InsertUser = user.InsertUser

type Assessment = assessment.Assessment
type InsertAssessment = assessment.InsertAssessment
type AssessmentResponse = assessment.Response

type Question = assessment.Question
type InsertQuestion = assessment.InsertQuestion
type QuestionOption = assessment.Option

type College = catalog.College
type InsertCollege = catalog.InsertCollege
type CollegeCourse = catalog.Course
type CollegeFees = catalog.Fees

type Scholarship = catalog.Scholarship
type InsertScholarship = catalog.InsertScholarship

type StudyMaterial = catalog.StudyMaterial
type InsertStudyMaterial = catalog.InsertStudyMaterial

type CareerPath = catalog.CareerPath
type InsertCareerPath = catalog.InsertCareerPath

// Kind names a collection in the record store.
type Kind string

const (
	KindUser          Kind = "user"
	KindAssessment    Kind = "assessment"
	KindQuestion      Kind = "question"
	KindCollege       Kind = "college"
	KindScholarship   Kind = "scholarship"
	KindStudyMaterial Kind = "study_material"
	KindCareerPath    Kind = "career_path"
)
