package catalog

import "github.com/google/uuid"

const (
	MaterialPDF   = "pdf"
	MaterialVideo = "video"
	MaterialTest  = "test"
	MaterialNotes = "notes"
)

type InsertStudyMaterial struct {
	Title       string `json:"title" yaml:"title"`
	Stream      string `json:"stream" yaml:"stream"`
	Subject     string `json:"subject" yaml:"subject"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
	URL         string `json:"url" yaml:"url"`
	DownloadURL string `json:"downloadUrl" yaml:"downloadUrl"`
	// Duration is only set for videos.
	Duration *string `json:"duration" yaml:"duration"`
	Level    string  `json:"level" yaml:"level"`
}

type StudyMaterial struct {
	ID uuid.UUID `json:"id"`
	InsertStudyMaterial
}

func (m StudyMaterial) RecordID() uuid.UUID { return m.ID }

func (m StudyMaterial) WithID(id uuid.UUID) StudyMaterial {
	m.ID = id
	return m
}
