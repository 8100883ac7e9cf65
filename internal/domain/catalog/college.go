package catalog

import "github.com/google/uuid"

type Course struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
}

// Fees are annual amounts in rupees.
type Fees struct {
	Annual int `json:"annual"`
	Hostel int `json:"hostel"`
}

type InsertCollege struct {
	Name     string   `json:"name"`
	Location string   `json:"location"`
	State    string   `json:"state"`
	District string   `json:"district"`
	Type     string   `json:"type"`
	Courses  []Course `json:"courses" validate:"required"`
	// Cutoffs is keyed by reservation category, e.g. "general".
	Cutoffs       map[string]string `json:"cutoffs" validate:"required"`
	Fees          Fees              `json:"fees"`
	Seats         int               `json:"seats"`
	Scholarships  bool              `json:"scholarships"`
	Ranking       *int              `json:"ranking"`
	Accreditation *string           `json:"accreditation"`
}

type College struct {
	ID uuid.UUID `json:"id"`
	InsertCollege
}

func (c College) RecordID() uuid.UUID { return c.ID }

func (c College) WithID(id uuid.UUID) College {
	c.ID = id
	return c
}
