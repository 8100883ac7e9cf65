package catalog

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	ScholarshipMerit    = "merit"
	ScholarshipCaste    = "caste"
	ScholarshipIncome   = "income"
	ScholarshipMinority = "minority"
)

type InsertScholarship struct {
	Name           string `json:"name"`
	Provider       string `json:"provider"`
	Category       string `json:"category"`
	EducationLevel string `json:"educationLevel"`
	Amount         int    `json:"amount"`
	// Eligibility is free-form; the seeder writes a single "criteria" key.
	Eligibility         map[string]any `json:"eligibility" validate:"required"`
	Documents           []string       `json:"documents" validate:"required"`
	ApplicationDeadline *time.Time     `json:"applicationDeadline"`
	// State nil means the scholarship applies nationally.
	State    *string `json:"state"`
	IsActive bool    `json:"isActive"`
}

// UnmarshalJSON defaults isActive to true when the payload omits it.
func (s *InsertScholarship) UnmarshalJSON(b []byte) error {
	type plain InsertScholarship
	p := plain{IsActive: true}
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*s = InsertScholarship(p)
	return nil
}

type Scholarship struct {
	ID uuid.UUID `json:"id"`
	InsertScholarship
}

// UnmarshalJSON is needed because the embedded decoder would otherwise be
// promoted and drop the id.
func (s *Scholarship) UnmarshalJSON(b []byte) error {
	var head struct {
		ID uuid.UUID `json:"id"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}
	if err := s.InsertScholarship.UnmarshalJSON(b); err != nil {
		return err
	}
	s.ID = head.ID
	return nil
}

func (s Scholarship) RecordID() uuid.UUID { return s.ID }

func (s Scholarship) WithID(id uuid.UUID) Scholarship {
	s.ID = id
	return s
}

// NationallyApplicable reports whether the scholarship has no state restriction.
func (s Scholarship) NationallyApplicable() bool {
	return s.State == nil || *s.State == ""
}
