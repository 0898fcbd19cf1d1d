package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember is a profile card on the team page. GitHub enrichment only runs
// when UseGitHubData is set and a GitHub URL is present.
type TeamMember struct {
	ID                      uuid.UUID   `json:"id"`
	Name                    string      `json:"name"`
	Role                    string      `json:"role"`
	Bio                     string      `json:"bio"`
	GitHubURL               string      `json:"github_url"`
	ThumbnailURL            string      `json:"thumbnail_url"`
	Tags                    []string    `json:"tags"`
	OneLineIntro            string      `json:"one_line_intro"`
	ShortMessage            string      `json:"short_message"`
	BackgroundColor         string      `json:"background_color"`
	BackgroundImageURL      string      `json:"background_image_url"`
	UseGitHubData           bool        `json:"use_github_data"`
	UseGlassmorphism        bool        `json:"use_glassmorphism"`
	RepresentativeProjectID *uuid.UUID  `json:"representative_project_id,omitempty"`
	RelatedProjectIDs       []uuid.UUID `json:"related_project_ids"`
	CustomContent           string      `json:"custom_content"`
	ReadmeContent           string      `json:"readme_content"`
	CreatedAt               time.Time   `json:"created_at"`
	UpdatedAt               time.Time   `json:"updated_at"`
}

func (m *TeamMember) Prepare() {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	// Glassmorphism does not combine with a background image.
	if m.BackgroundImageURL != "" {
		m.UseGlassmorphism = false
	}
}
