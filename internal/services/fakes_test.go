package services

import (
	"context"
	"errors"
	"sync"

	"teamfolio/internal/github"
	"teamfolio/internal/models"

	"github.com/google/uuid"
)

// fakeProjectStore implements ProjectStore in memory.
type fakeProjectStore struct {
	mu sync.Mutex

	byID        map[uuid.UUID]*models.Project
	created     []*models.Project
	updates     []projectUpdate
	orderCalls  map[uuid.UUID]int
	readmeCalls map[uuid.UUID]string

	createErr error
	updateErr error
	orderErr  error
}

type projectUpdate struct {
	project      *models.Project
	setThumbnail bool
	setReadme    bool
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{
		byID:        map[uuid.UUID]*models.Project{},
		orderCalls:  map[uuid.UUID]int{},
		readmeCalls: map[uuid.UUID]string{},
	}
}

func (f *fakeProjectStore) Create(project *models.Project) error {
	if f.createErr != nil {
		return f.createErr
	}
	project.Prepare()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, project)
	f.byID[project.ID] = project
	return nil
}

func (f *fakeProjectStore) GetByID(id uuid.UUID) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[id], nil
}

func (f *fakeProjectStore) List() ([]models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Project
	for _, p := range f.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProjectStore) Update(project *models.Project, setThumbnail, setReadme bool) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, projectUpdate{project, setThumbnail, setReadme})
	return nil
}

func (f *fakeProjectStore) UpdateReadme(id uuid.UUID, readme string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readmeCalls[id] = readme
	return nil
}

func (f *fakeProjectStore) UpdateOrderIndex(id uuid.UUID, orderIndex int) error {
	if f.orderErr != nil {
		return f.orderErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orderCalls[id] = orderIndex
	return nil
}

func (f *fakeProjectStore) Delete(id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return errors.New("project not found")
	}
	delete(f.byID, id)
	return nil
}

// fakeTeamStore implements TeamMemberStore in memory.
type fakeTeamStore struct {
	mu sync.Mutex

	byID    map[uuid.UUID]*models.TeamMember
	created []*models.TeamMember
	updates []teamUpdate
}

type teamUpdate struct {
	member        *models.TeamMember
	setThumbnail  bool
	setBackground bool
	setReadme     bool
}

func newFakeTeamStore() *fakeTeamStore {
	return &fakeTeamStore{byID: map[uuid.UUID]*models.TeamMember{}}
}

func (f *fakeTeamStore) Create(member *models.TeamMember) error {
	member.Prepare()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, member)
	f.byID[member.ID] = member
	return nil
}

func (f *fakeTeamStore) GetByID(id uuid.UUID) (*models.TeamMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[id], nil
}

func (f *fakeTeamStore) List() ([]models.TeamMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.TeamMember
	for _, m := range f.byID {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeTeamStore) Update(member *models.TeamMember, setThumbnail, setBackground, setReadme bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, teamUpdate{member, setThumbnail, setBackground, setReadme})
	return nil
}

func (f *fakeTeamStore) Delete(id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
	return nil
}

// fakeGitHub returns canned data. Nil/empty values simulate fetch failures,
// matching the client's degrade-to-no-data contract.
type fakeGitHub struct {
	repo   *github.Repo
	user   *github.User
	readme string

	repoCalls   int
	userCalls   int
	readmeCalls int
}

func (f *fakeGitHub) RepoInfo(ctx context.Context, owner, repo string) *github.Repo {
	f.repoCalls++
	return f.repo
}

func (f *fakeGitHub) UserInfo(ctx context.Context, username string) *github.User {
	f.userCalls++
	return f.user
}

func (f *fakeGitHub) Readme(ctx context.Context, owner, repo string) string {
	f.readmeCalls++
	return f.readme
}

// fakeUploader returns a fixed URL or a canned error.
type fakeUploader struct {
	url     string
	err     error
	uploads []string
}

func (f *fakeUploader) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads = append(f.uploads, filename)
	return f.url, nil
}

// fakeCache records page cache activity.
type fakeCache struct {
	pages       map[string][]byte
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{pages: map[string][]byte{}}
}

func (f *fakeCache) GetPage(ctx context.Context, key string) ([]byte, bool, error) {
	payload, ok := f.pages[key]
	return payload, ok, nil
}

func (f *fakeCache) SetPage(ctx context.Context, key string, payload []byte) error {
	f.pages[key] = payload
	return nil
}

func (f *fakeCache) InvalidatePages(ctx context.Context, keys ...string) error {
	f.invalidated = append(f.invalidated, keys...)
	for _, k := range keys {
		delete(f.pages, k)
	}
	return nil
}
