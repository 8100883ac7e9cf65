package seed

import (
	"strings"

	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/domain/catalog"
)

// courseColumns: courseId, courseName, careerPaths.
const courseColumns = 3

const salaryRange = "₹3-15 LPA"

var (
	careerSkills        = []string{"Technical Skills", "Communication", "Problem Solving"}
	careerOpportunities = []string{"Higher Studies", "Government Jobs", "Private Sector"}
)

// streamFor is case-sensitive and checked in order, so "B.A" only applies
// when no earlier marker matched.
func streamFor(course string) string {
	switch {
	case strings.Contains(course, "B.Tech"), strings.Contains(course, "B.Sc"):
		return catalog.StreamScience
	case strings.Contains(course, "B.Com"), strings.Contains(course, "MBA"):
		return catalog.StreamCommerce
	case strings.Contains(course, "B.A"):
		return catalog.StreamArts
	default:
		return catalog.StreamVocational
	}
}

func buildCareerPaths(rows []row) []types.InsertCareerPath {
	out := make([]types.InsertCareerPath, 0, len(rows))
	for _, r := range rows {
		course := r.Fields[1]
		out = append(out, types.InsertCareerPath{
			Stream:              streamFor(course),
			Course:              course,
			Careers:             splitList(r.Fields[2]),
			SalaryRange:         salaryRange,
			Skills:              append([]string(nil), careerSkills...),
			FutureOpportunities: append([]string(nil), careerOpportunities...),
		})
	}
	return out
}
