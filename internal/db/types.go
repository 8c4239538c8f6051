package db

import (
	"time"

	"github.com/google/uuid"
)

// ImportRun records one catalog replacement.
type ImportRun struct {
	ID            uuid.UUID `json:"id"`
	Source        string    `json:"source"`
	TemplateCount int       `json:"template_count"`
	CreatedAt     time.Time `json:"created_at"`
}

const templateColumns = `id, name, category, description, tags, keywords, premium, popular, ats_score, template_id`
