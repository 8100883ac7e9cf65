package assessment

import "github.com/google/uuid"

const (
	CategoryLogical  = "logical"
	CategoryMath     = "math"
	CategoryVerbal   = "verbal"
	CategoryInterest = "interest"
)

type Option struct {
	ID   string `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

type InsertQuestion struct {
	Category string   `json:"category" yaml:"category"`
	Question string   `json:"question" yaml:"question"`
	Options  []Option `json:"options" yaml:"options" validate:"required"`
	// CorrectAnswer is nil for interest questions, which have no right answer.
	CorrectAnswer *string `json:"correctAnswer" yaml:"correctAnswer"`
	Order         int     `json:"order" yaml:"order"`
}

type Question struct {
	ID uuid.UUID `json:"id"`
	InsertQuestion
}

func (q Question) RecordID() uuid.UUID { return q.ID }

func (q Question) WithID(id uuid.UUID) Question {
	q.ID = id
	return q
}
