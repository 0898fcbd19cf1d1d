package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"teamfolio/internal/github"
	"teamfolio/internal/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Cache keys invalidated by project mutations.
const (
	projectsPageKey = "projects"
	teamPageKey     = "team"
)

type ProjectService struct {
	projects ProjectStore
	gh       GitHubAPI
	uploads  Uploader
	cache    PageCache
}

func NewProjectService(projects ProjectStore, gh GitHubAPI, uploads Uploader, cache PageCache) *ProjectService {
	return &ProjectService{
		projects: projects,
		gh:       gh,
		uploads:  uploads,
		cache:    cache,
	}
}

// Create merges the form with GitHub metadata and stores the result.
// Precedence: an uploaded thumbnail beats the repository owner's avatar;
// non-empty form title/description beat the repository name/description;
// a fetched README always lands since the form has no README field.
func (s *ProjectService) Create(ctx context.Context, createdBy uuid.UUID, form ProjectForm) (*models.Project, error) {
	var thumbnailURL string
	if form.Thumbnail != nil {
		url, err := s.uploads.Upload(ctx, form.Thumbnail.Filename, form.Thumbnail.ContentType, form.Thumbnail.Data)
		if err != nil {
			log.Printf("project create: thumbnail upload failed, falling back to GitHub avatar: %v", err)
		} else {
			thumbnailURL = url
		}
	}

	title := form.Title
	description := form.Description
	var readme string

	if owner, repo, ok := github.ParseRepoURL(form.GitHubURL); ok {
		repoInfo, readmeData := s.fetchRepoAndReadme(ctx, owner, repo)

		if repoInfo != nil {
			if title == "" {
				title = repoInfo.Name
			}
			if description == "" {
				description = repoInfo.Description
			}
			if thumbnailURL == "" {
				thumbnailURL = repoInfo.Owner.AvatarURL
			}
		}
		readme = readmeData
	}

	project := &models.Project{
		Title:            title,
		Description:      description,
		GitHubURL:        form.GitHubURL,
		WebsiteURL:       form.WebsiteURL,
		Category:         form.Category,
		Tags:             form.Tags,
		ThumbnailURL:     thumbnailURL,
		CustomContent:    form.CustomContent,
		ReadmeContent:    readme,
		DeploymentStatus: form.DeploymentStatus,
		IsFeatured:       form.IsFeatured,
		CreatedBy:        &createdBy,
	}

	if err := s.projects.Create(project); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	s.invalidate(ctx, projectsPageKey)
	return project, nil
}

// Update overwrites all form fields. The README is re-fetched only when a
// GitHub URL is present and only written when the fetch produced content;
// the thumbnail is only written when a new upload succeeded.
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, form ProjectForm) (*models.Project, error) {
	var readme string
	setReadme := false
	if owner, repo, ok := github.ParseRepoURL(form.GitHubURL); ok {
		if fetched := s.gh.Readme(ctx, owner, repo); fetched != "" {
			readme = fetched
			setReadme = true
		}
	}

	var thumbnailURL string
	setThumbnail := false
	if form.Thumbnail != nil {
		url, err := s.uploads.Upload(ctx, form.Thumbnail.Filename, form.Thumbnail.ContentType, form.Thumbnail.Data)
		if err != nil {
			log.Printf("project update: thumbnail upload failed, keeping previous value: %v", err)
		} else {
			thumbnailURL = url
			setThumbnail = true
		}
	}

	project := &models.Project{
		ID:               id,
		Title:            form.Title,
		Description:      form.Description,
		GitHubURL:        form.GitHubURL,
		WebsiteURL:       form.WebsiteURL,
		Category:         form.Category,
		Tags:             form.Tags,
		ThumbnailURL:     thumbnailURL,
		CustomContent:    form.CustomContent,
		ReadmeContent:    readme,
		DeploymentStatus: form.DeploymentStatus,
		IsFeatured:       form.IsFeatured,
	}
	// Defaults empty category/deployment_status, same as the create path.
	project.Prepare()

	if err := s.projects.Update(project, setThumbnail, setReadme); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.invalidate(ctx, projectsPageKey)
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.projects.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	s.invalidate(ctx, projectsPageKey)
	return nil
}

func (s *ProjectService) Get(id uuid.UUID) (*models.Project, error) {
	project, err := s.projects.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, fmt.Errorf("project not found")
	}
	return project, nil
}

// List serves the public project list, cached under the projects page key.
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	if payload, hit, err := s.cache.GetPage(ctx, projectsPageKey); err == nil && hit {
		var projects []models.Project
		if err := json.Unmarshal(payload, &projects); err == nil {
			return projects, nil
		}
	} else if err != nil {
		log.Printf("project list: cache read failed: %v", err)
	}

	projects, err := s.projects.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	if payload, err := json.Marshal(projects); err == nil {
		if err := s.cache.SetPage(ctx, projectsPageKey, payload); err != nil {
			log.Printf("project list: cache write failed: %v", err)
		}
	}

	return projects, nil
}

// RefreshReadme re-fetches the stored project's README from GitHub.
func (s *ProjectService) RefreshReadme(ctx context.Context, id uuid.UUID) error {
	project, err := s.projects.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return fmt.Errorf("project not found")
	}
	if project.GitHubURL == "" {
		return fmt.Errorf("project has no GitHub URL")
	}

	owner, repo, ok := github.ParseRepoURL(project.GitHubURL)
	if !ok {
		return fmt.Errorf("invalid GitHub URL")
	}

	readme := s.gh.Readme(ctx, owner, repo)
	if readme == "" {
		return fmt.Errorf("could not fetch README for %s/%s", owner, repo)
	}

	if err := s.projects.UpdateReadme(id, readme); err != nil {
		return fmt.Errorf("failed to store README: %w", err)
	}

	s.invalidate(ctx, projectsPageKey)
	return nil
}

// Reorder assigns order_index by slice position. Updates run concurrently
// with no atomicity across the batch; a partial failure can leave mixed
// order values and the first error is reported.
func (s *ProjectService) Reorder(ctx context.Context, ids []uuid.UUID) error {
	var g errgroup.Group
	for i, id := range ids {
		g.Go(func() error {
			return s.projects.UpdateOrderIndex(id, i)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to reorder projects: %w", err)
	}

	s.invalidate(ctx, projectsPageKey)
	return nil
}

// fetchRepoAndReadme issues both GitHub requests concurrently; neither
// depends on the other and both degrade to "no data".
func (s *ProjectService) fetchRepoAndReadme(ctx context.Context, owner, repo string) (*github.Repo, string) {
	var (
		repoInfo *github.Repo
		readme   string
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		repoInfo = s.gh.RepoInfo(ctx, owner, repo)
		return nil
	})
	g.Go(func() error {
		readme = s.gh.Readme(ctx, owner, repo)
		return nil
	})
	_ = g.Wait()

	return repoInfo, readme
}

func (s *ProjectService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.InvalidatePages(ctx, keys...); err != nil {
		log.Printf("cache invalidation failed for %v: %v", keys, err)
	}
}
