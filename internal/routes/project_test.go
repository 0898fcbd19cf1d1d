package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"teamfolio/internal/github"
	"teamfolio/internal/handlers"
	"teamfolio/internal/models"
	"teamfolio/internal/services"
	"teamfolio/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// stubProjectStore counts mutations so tests can assert the auth guard
// stopped a request before it reached the datastore.
type stubProjectStore struct {
	mu        sync.Mutex
	mutations int
}

func (s *stubProjectStore) bump() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutations++
	return nil
}

func (s *stubProjectStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutations
}

func (s *stubProjectStore) Create(project *models.Project) error {
	project.Prepare()
	return s.bump()
}

func (s *stubProjectStore) GetByID(id uuid.UUID) (*models.Project, error) {
	return &models.Project{ID: id, Title: "stub"}, nil
}

func (s *stubProjectStore) List() ([]models.Project, error) { return nil, nil }

func (s *stubProjectStore) Update(project *models.Project, setThumbnail, setReadme bool) error {
	return s.bump()
}

func (s *stubProjectStore) UpdateReadme(id uuid.UUID, readme string) error { return s.bump() }

func (s *stubProjectStore) UpdateOrderIndex(id uuid.UUID, orderIndex int) error { return s.bump() }

func (s *stubProjectStore) Delete(id uuid.UUID) error { return s.bump() }

type stubGitHub struct{}

func (stubGitHub) RepoInfo(ctx context.Context, owner, repo string) *github.Repo { return nil }
func (stubGitHub) UserInfo(ctx context.Context, username string) *github.User    { return nil }
func (stubGitHub) Readme(ctx context.Context, owner, repo string) string         { return "" }

type stubUploader struct{}

func (stubUploader) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	return "https://cdn.example/" + filename, nil
}

type stubCache struct{}

func (stubCache) GetPage(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}
func (stubCache) SetPage(ctx context.Context, key string, payload []byte) error     { return nil }
func (stubCache) InvalidatePages(ctx context.Context, keys ...string) error         { return nil }

func newTestRouter(t *testing.T, store *stubProjectStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := services.NewProjectService(store, stubGitHub{}, stubUploader{}, stubCache{})
	handler := handlers.NewProjectHandler(svc)

	router := gin.New()
	NewProjectRoutes(handler).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestAdminMutationsRejectMissingToken(t *testing.T) {
	store := &stubProjectStore{}
	router := newTestRouter(t, store)

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/admin/projects"},
		{http.MethodPut, "/api/v1/admin/projects/" + uuid.NewString()},
		{http.MethodDelete, "/api/v1/admin/projects/" + uuid.NewString()},
		{http.MethodPut, "/api/v1/admin/projects/order"},
		{http.MethodPost, "/api/v1/admin/projects/" + uuid.NewString() + "/refresh-readme"},
	}

	for _, req := range requests {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(req.method, req.path, nil)
		router.ServeHTTP(w, r)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", req.method, req.path, w.Code)
		}
	}

	if store.count() != 0 {
		t.Errorf("unauthenticated requests reached the datastore %d times", store.count())
	}
}

func TestAdminMutationsRejectGarbageToken(t *testing.T) {
	store := &stubProjectStore{}
	router := newTestRouter(t, store)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/projects/"+uuid.NewString(), nil)
	r.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if store.count() != 0 {
		t.Errorf("request with a bad token reached the datastore")
	}
}

func TestAdminMutationAcceptsValidToken(t *testing.T) {
	prev := utils.AccessTokenSecret
	utils.AccessTokenSecret = []byte("test-secret")
	defer func() { utils.AccessTokenSecret = prev }()

	store := &stubProjectStore{}
	router := newTestRouter(t, store)

	token, err := utils.GenerateJWT(uuid.New(), time.Minute, utils.AccessTokenSecret)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/projects",
		strings.NewReader("title=hello"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, r)

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201 (body: %s)", w.Code, w.Body.String())
	}
	if store.count() != 1 {
		t.Errorf("expected one create, got %d mutations", store.count())
	}
}

func TestPublicReadsNeedNoToken(t *testing.T) {
	store := &stubProjectStore{}
	router := newTestRouter(t, store)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("GET /projects status = %d, want 200", w.Code)
	}
}
