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

type TeamService struct {
	members TeamMemberStore
	gh      GitHubAPI
	uploads Uploader
	cache   PageCache
}

func NewTeamService(members TeamMemberStore, gh GitHubAPI, uploads Uploader, cache PageCache) *TeamService {
	return &TeamService{
		members: members,
		gh:      gh,
		uploads: uploads,
		cache:   cache,
	}
}

// Create stores a team member, enriching from GitHub when the sync flag is
// set. Name and bio are backfilled only when the form left them empty; the
// avatar only fills an empty thumbnail.
func (s *TeamService) Create(ctx context.Context, form TeamMemberForm) (*models.TeamMember, error) {
	thumbnailURL := s.tryUpload(ctx, "thumbnail", form.Thumbnail)
	backgroundURL := s.tryUpload(ctx, "background", form.BackgroundImage)

	name := form.Name
	bio := form.Bio
	var readme string

	if form.UseGitHubData && form.GitHubURL != "" {
		if username, ok := github.ParseProfileURL(form.GitHubURL); ok {
			userInfo, readmeData := s.fetchProfile(ctx, username)

			if userInfo != nil {
				if name == "" {
					name = userInfo.Name
					if name == "" {
						name = username
					}
				}
				if bio == "" {
					bio = userInfo.Bio
				}
				if thumbnailURL == "" {
					thumbnailURL = userInfo.AvatarURL
				}
			}
			readme = readmeData
		}
	}

	member := &models.TeamMember{
		Name:                    name,
		Role:                    form.Role,
		Bio:                     bio,
		GitHubURL:               form.GitHubURL,
		ThumbnailURL:            thumbnailURL,
		Tags:                    form.Tags,
		OneLineIntro:            form.OneLineIntro,
		ShortMessage:            form.ShortMessage,
		BackgroundColor:         form.BackgroundColor,
		BackgroundImageURL:      backgroundURL,
		UseGitHubData:           form.UseGitHubData,
		UseGlassmorphism:        form.UseGlassmorphism,
		RepresentativeProjectID: form.RepresentativeProjectID,
		RelatedProjectIDs:       form.RelatedProjectIDs,
		CustomContent:           form.CustomContent,
		ReadmeContent:           readme,
	}

	if err := s.members.Create(member); err != nil {
		return nil, fmt.Errorf("failed to save team member: %w", err)
	}

	s.invalidate(ctx, teamPageKey)
	return member, nil
}

// Update overwrites all form fields. Thumbnail, background image and README
// are only written when a new value was produced. When GitHub sync is on and
// no new thumbnail was uploaded, the GitHub avatar overwrites the stored
// thumbnail unconditionally; the create path only fills an empty one. The
// asymmetry matches the admin form's historical behavior.
func (s *TeamService) Update(ctx context.Context, id uuid.UUID, form TeamMemberForm) (*models.TeamMember, error) {
	var thumbnailURL string
	setThumbnail := false
	if url := s.tryUpload(ctx, "thumbnail", form.Thumbnail); url != "" {
		thumbnailURL = url
		setThumbnail = true
	}

	var backgroundURL string
	setBackground := false
	if url := s.tryUpload(ctx, "background", form.BackgroundImage); url != "" {
		backgroundURL = url
		setBackground = true
	}

	name := form.Name
	bio := form.Bio
	var readme string
	setReadme := false

	if form.UseGitHubData && form.GitHubURL != "" {
		if username, ok := github.ParseProfileURL(form.GitHubURL); ok {
			userInfo, readmeData := s.fetchProfile(ctx, username)

			if userInfo != nil {
				if name == "" {
					name = userInfo.Name
					if name == "" {
						name = username
					}
				}
				if bio == "" {
					bio = userInfo.Bio
				}
				if !setThumbnail {
					thumbnailURL = userInfo.AvatarURL
					setThumbnail = true
				}
			}
			if readmeData != "" {
				readme = readmeData
				setReadme = true
			}
		}
	}

	member := &models.TeamMember{
		ID:                      id,
		Name:                    name,
		Role:                    form.Role,
		Bio:                     bio,
		GitHubURL:               form.GitHubURL,
		ThumbnailURL:            thumbnailURL,
		Tags:                    form.Tags,
		OneLineIntro:            form.OneLineIntro,
		ShortMessage:            form.ShortMessage,
		BackgroundColor:         form.BackgroundColor,
		BackgroundImageURL:      backgroundURL,
		UseGitHubData:           form.UseGitHubData,
		UseGlassmorphism:        form.UseGlassmorphism,
		RepresentativeProjectID: form.RepresentativeProjectID,
		RelatedProjectIDs:       form.RelatedProjectIDs,
		CustomContent:           form.CustomContent,
		ReadmeContent:           readme,
	}

	// A newly uploaded background image disables glassmorphism.
	if setBackground {
		member.UseGlassmorphism = false
	}

	if err := s.members.Update(member, setThumbnail, setBackground, setReadme); err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}

	s.invalidate(ctx, teamPageKey)
	return member, nil
}

func (s *TeamService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.members.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	s.invalidate(ctx, teamPageKey)
	return nil
}

func (s *TeamService) Get(id uuid.UUID) (*models.TeamMember, error) {
	member, err := s.members.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}
	if member == nil {
		return nil, fmt.Errorf("team member not found")
	}
	return member, nil
}

// List serves the public team page, cached under the team page key.
func (s *TeamService) List(ctx context.Context) ([]models.TeamMember, error) {
	if payload, hit, err := s.cache.GetPage(ctx, teamPageKey); err == nil && hit {
		var members []models.TeamMember
		if err := json.Unmarshal(payload, &members); err == nil {
			return members, nil
		}
	} else if err != nil {
		log.Printf("team list: cache read failed: %v", err)
	}

	members, err := s.members.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	if payload, err := json.Marshal(members); err == nil {
		if err := s.cache.SetPage(ctx, teamPageKey, payload); err != nil {
			log.Printf("team list: cache write failed: %v", err)
		}
	}

	return members, nil
}

// fetchProfile fetches the profile and the profile README (the repo named
// after the user) concurrently.
func (s *TeamService) fetchProfile(ctx context.Context, username string) (*github.User, string) {
	var (
		userInfo *github.User
		readme   string
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		userInfo = s.gh.UserInfo(ctx, username)
		return nil
	})
	g.Go(func() error {
		readme = s.gh.Readme(ctx, username, username)
		return nil
	})
	_ = g.Wait()

	return userInfo, readme
}

func (s *TeamService) tryUpload(ctx context.Context, kind string, file *FileUpload) string {
	if file == nil {
		return ""
	}
	url, err := s.uploads.Upload(ctx, file.Filename, file.ContentType, file.Data)
	if err != nil {
		log.Printf("team member %s upload failed, proceeding without it: %v", kind, err)
		return ""
	}
	return url
}

func (s *TeamService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.InvalidatePages(ctx, keys...); err != nil {
		log.Printf("cache invalidation failed for %v: %v", keys, err)
	}
}
