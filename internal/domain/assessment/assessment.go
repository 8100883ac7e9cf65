package assessment

import (
	"time"

	"github.com/google/uuid"
)

// Response is one answered question, in the order the user answered.
type Response struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

type InsertAssessment struct {
	// UserID is a soft reference; it is never checked against the user table.
	UserID    *string            `json:"userId"`
	Category  string             `json:"category"`
	Responses []Response         `json:"responses" validate:"required"`
	Scores    map[string]float64 `json:"scores" validate:"required"`
}

type Assessment struct {
	ID uuid.UUID `json:"id"`
	InsertAssessment
	CompletedAt time.Time `json:"completedAt"`
}

func (a Assessment) RecordID() uuid.UUID { return a.ID }

func (a Assessment) WithID(id uuid.UUID) Assessment {
	a.ID = id
	return a
}

// OwnedBy reports whether the assessment was submitted for userID.
func (a Assessment) OwnedBy(userID string) bool {
	return a.UserID != nil && *a.UserID == userID
}
