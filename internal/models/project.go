package models

import (
	"time"

	"github.com/google/uuid"
)

// Project categories accepted by the admin forms.
var ProjectCategories = []string{"Web", "App", "AI", "Game", "Design", "Other"}

// Deployment states a project can be in.
var DeploymentStatuses = []string{"live", "building", "offline"}

type Project struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	GitHubURL        string     `json:"github_url"`
	WebsiteURL       string     `json:"website_url"`
	Category         string     `json:"category"` // one of ProjectCategories
	Tags             []string   `json:"tags"`
	ThumbnailURL     string     `json:"thumbnail_url"`
	CustomContent    string     `json:"custom_content"`
	ReadmeContent    string     `json:"readme_content"`
	DeploymentStatus string     `json:"deployment_status"` // one of DeploymentStatuses
	IsFeatured       bool       `json:"is_featured"`
	OrderIndex       int        `json:"order_index"`
	CreatedBy        *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (p *Project) Prepare() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Category == "" {
		p.Category = "Other"
	}
	if p.DeploymentStatus == "" {
		p.DeploymentStatus = "live"
	}
}
