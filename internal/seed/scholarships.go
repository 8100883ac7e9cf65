package seed

import (
	"strconv"
	"strings"
	"time"

	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/domain/catalog"
	"github.com/yungbote/careerpath-backend/internal/pkg/pointers"
)

const (
	scholarshipProvider = "Government of Tamil Nadu"
	scholarshipLevel    = "undergraduate"
	defaultAmount       = 5000
	DefaultDeadlineYear = 2024
)

// scholarshipColumns: scholarshipId, name, category, eligibility, amount, lastDate.
const scholarshipColumns = 6

var scholarshipDocuments = []string{"Income Certificate", "Academic Marksheets", "Aadhaar Card", "Bank Details"}

// deadlineLayouts are tried in order against "<lastDate>-<year>".
var deadlineLayouts = []string{
	"02-Jan-2006",
	"2-Jan-2006",
	"02-January-2006",
	"2-January-2006",
	"Jan-02-2006",
	"January-2-2006",
	"01-02-2006",
	"1-2-2006",
}

func scholarshipCategory(raw string) string {
	c := strings.ToLower(raw)
	switch {
	case strings.Contains(c, catalog.ScholarshipMerit):
		return catalog.ScholarshipMerit
	case strings.Contains(c, catalog.ScholarshipCaste):
		return catalog.ScholarshipCaste
	case strings.Contains(c, catalog.ScholarshipIncome):
		return catalog.ScholarshipIncome
	default:
		return catalog.ScholarshipMinority
	}
}

// parseDeadline returns nil when lastDate cannot be read as a day in year.
func parseDeadline(lastDate string, year int) *time.Time {
	lastDate = strings.TrimSpace(lastDate)
	if lastDate == "" {
		return nil
	}
	value := lastDate + "-" + strconv.Itoa(year)
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return pointers.Ptr(t)
		}
	}
	return nil
}

func buildScholarships(rows []row, year int) []types.InsertScholarship {
	out := make([]types.InsertScholarship, 0, len(rows))
	for _, r := range rows {
		f := r.Fields
		docs := make([]string, len(scholarshipDocuments))
		copy(docs, scholarshipDocuments)
		out = append(out, types.InsertScholarship{
			Name:                f[1],
			Provider:            scholarshipProvider,
			Category:            scholarshipCategory(f[2]),
			EducationLevel:      scholarshipLevel,
			Amount:              intOr(f[4], defaultAmount),
			Eligibility:         map[string]any{"criteria": f[3]},
			Documents:           docs,
			ApplicationDeadline: parseDeadline(f[5], year),
			State:               pointers.String(defaultState),
			IsActive:            true,
		})
	}
	return out
}
