package testutil

import (
	"context"
	"testing"

	"github.com/yungbote/careerpath-backend/internal/data/repos"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/pkg/pointers"
)

func SeedCollege(tb testing.TB, ctx context.Context, r *repos.Repos, name, state, district string, courses ...string) types.College {
	tb.Helper()
	in := types.InsertCollege{
		Name:     name,
		Location: district + ", " + state,
		State:    state,
		District: district,
		Type:     "Government",
		Cutoffs:  map[string]string{"general": "90"},
		Fees:     types.CollegeFees{Annual: 2000, Hostel: 15000},
		Seats:    100,
	}
	for _, c := range courses {
		in.Courses = append(in.Courses, types.CollegeCourse{Name: c, Duration: "3 years"})
	}
	if in.Courses == nil {
		in.Courses = []types.CollegeCourse{}
	}
	c, err := r.Colleges.Insert(ctx, types.College{InsertCollege: in})
	if err != nil {
		tb.Fatalf("seed college: %v", err)
	}
	return c
}

// SeedScholarship inserts a scholarship; an empty state means nationally applicable.
func SeedScholarship(tb testing.TB, ctx context.Context, r *repos.Repos, name, category, state string, active bool) types.Scholarship {
	tb.Helper()
	in := types.InsertScholarship{
		Name:           name,
		Provider:       "Government of Tamil Nadu",
		Category:       category,
		EducationLevel: "undergraduate",
		Amount:         5000,
		Eligibility:    map[string]any{"criteria": "All students"},
		Documents:      []string{"Aadhaar Card"},
		IsActive:       active,
	}
	in.State = pointers.NonEmpty(state)
	s, err := r.Scholarships.Insert(ctx, types.Scholarship{InsertScholarship: in})
	if err != nil {
		tb.Fatalf("seed scholarship: %v", err)
	}
	return s
}

func SeedQuestion(tb testing.TB, ctx context.Context, r *repos.Repos, category, text string, order int) types.Question {
	tb.Helper()
	q, err := r.Questions.Insert(ctx, types.Question{InsertQuestion: types.InsertQuestion{
		Category: category,
		Question: text,
		Options:  []types.QuestionOption{{ID: "a", Text: "yes"}, {ID: "b", Text: "no"}},
		Order:    order,
	}})
	if err != nil {
		tb.Fatalf("seed question: %v", err)
	}
	return q
}

func SeedStudyMaterial(tb testing.TB, ctx context.Context, r *repos.Repos, title, stream, subject, kind string) types.StudyMaterial {
	tb.Helper()
	m, err := r.StudyMaterials.Insert(ctx, types.StudyMaterial{InsertStudyMaterial: types.InsertStudyMaterial{
		Title:   title,
		Stream:  stream,
		Subject: subject,
		Type:    kind,
		URL:     "#",
		Level:   "class 12",
	}})
	if err != nil {
		tb.Fatalf("seed study material: %v", err)
	}
	return m
}

func SeedCareerPath(tb testing.TB, ctx context.Context, r *repos.Repos, stream, course string) types.CareerPath {
	tb.Helper()
	p, err := r.CareerPaths.Insert(ctx, types.CareerPath{InsertCareerPath: types.InsertCareerPath{
		Stream:              stream,
		Course:              course,
		Careers:             []string{"Engineer"},
		SalaryRange:         "₹3-15 LPA",
		Skills:              []string{"Communication"},
		FutureOpportunities: []string{"Higher Studies"},
	}})
	if err != nil {
		tb.Fatalf("seed career path: %v", err)
	}
	return p
}
