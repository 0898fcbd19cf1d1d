package services

import (
	"context"

	"teamfolio/internal/github"
	"teamfolio/internal/models"

	"github.com/google/uuid"
)

// ProjectStore is implemented by repositories.ProjectRepository.
type ProjectStore interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	List() ([]models.Project, error)
	Update(project *models.Project, setThumbnail, setReadme bool) error
	UpdateReadme(id uuid.UUID, readme string) error
	UpdateOrderIndex(id uuid.UUID, orderIndex int) error
	Delete(id uuid.UUID) error
}

// TeamMemberStore is implemented by repositories.TeamMemberRepository.
type TeamMemberStore interface {
	Create(member *models.TeamMember) error
	GetByID(id uuid.UUID) (*models.TeamMember, error)
	List() ([]models.TeamMember, error)
	Update(member *models.TeamMember, setThumbnail, setBackground, setReadme bool) error
	Delete(id uuid.UUID) error
}

// GitHubAPI is implemented by github.Client. All methods degrade to "no
// data" on failure rather than returning errors.
type GitHubAPI interface {
	RepoInfo(ctx context.Context, owner, repo string) *github.Repo
	UserInfo(ctx context.Context, username string) *github.User
	Readme(ctx context.Context, owner, repo string) string
}

// Uploader is implemented by storage.ThumbnailStore.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

// PageCache is implemented by repositories.RedisRepository.
type PageCache interface {
	GetPage(ctx context.Context, key string) ([]byte, bool, error)
	SetPage(ctx context.Context, key string, payload []byte) error
	InvalidatePages(ctx context.Context, keys ...string) error
}

// FileUpload carries one multipart file from an admin form.
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ProjectForm carries the user-submitted fields of a project create/update.
type ProjectForm struct {
	Title            string
	Description      string
	GitHubURL        string
	WebsiteURL       string
	Category         string
	Tags             []string
	CustomContent    string
	DeploymentStatus string
	IsFeatured       bool
	Thumbnail        *FileUpload
}

// TeamMemberForm carries the user-submitted fields of a team member
// create/update.
type TeamMemberForm struct {
	Name                    string
	Role                    string
	Bio                     string
	GitHubURL               string
	Tags                    []string
	OneLineIntro            string
	ShortMessage            string
	BackgroundColor         string
	RepresentativeProjectID *uuid.UUID
	RelatedProjectIDs       []uuid.UUID
	UseGitHubData           bool
	UseGlassmorphism        bool
	CustomContent           string
	Thumbnail               *FileUpload
	BackgroundImage         *FileUpload
}
