package catalog

import "github.com/google/uuid"

const (
	StreamScience    = "science"
	StreamCommerce   = "commerce"
	StreamArts       = "arts"
	StreamVocational = "vocational"
)

type InsertCareerPath struct {
	Stream              string   `json:"stream"`
	Course              string   `json:"course"`
	Careers             []string `json:"careers" validate:"required"`
	SalaryRange         string   `json:"salaryRange"`
	Skills              []string `json:"skills" validate:"required"`
	FutureOpportunities []string `json:"futureOpportunities" validate:"required"`
}

type CareerPath struct {
	ID uuid.UUID `json:"id"`
	InsertCareerPath
}

func (p CareerPath) RecordID() uuid.UUID { return p.ID }

func (p CareerPath) WithID(id uuid.UUID) CareerPath {
	p.ID = id
	return p
}
