package seed

import (
	"strings"

	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/pkg/pointers"
)

const (
	defaultState      = "Tamil Nadu"
	defaultAnnualFee  = 2000
	defaultHostelFee  = 15000
	defaultSeats      = 100
	collegeType       = "Government"
	collegeAccredited = "NAAC A+"
)

// collegeColumns: collegeId, collegeName, district, coursesOffered, cutoff,
// fees, seats, scholarshipAvailable.
const collegeColumns = 8

func courseDuration(name string) string {
	switch {
	case strings.Contains(name, "B.Tech"):
		return "4 years"
	case strings.Contains(name, "MBBS"):
		return "5.5 years"
	default:
		return "3 years"
	}
}

func buildColleges(rows []row) []types.InsertCollege {
	out := make([]types.InsertCollege, 0, len(rows))
	for _, r := range rows {
		f := r.Fields
		district := f[2]

		courses := []types.CollegeCourse{}
		for _, name := range splitList(f[3]) {
			courses = append(courses, types.CollegeCourse{Name: name, Duration: courseDuration(name)})
		}

		out = append(out, types.InsertCollege{
			Name:          f[1],
			Location:      district + ", " + defaultState,
			State:         defaultState,
			District:      district,
			Type:          collegeType,
			Courses:       courses,
			Cutoffs:       map[string]string{"general": f[4]},
			Fees:          types.CollegeFees{Annual: intOr(f[5], defaultAnnualFee), Hostel: defaultHostelFee},
			Seats:         intOr(f[6], defaultSeats),
			Scholarships:  strings.ToLower(f[7]) == "yes",
			Ranking:       pointers.Int(r.Index + 1),
			Accreditation: pointers.String(collegeAccredited),
		})
	}
	return out
}
