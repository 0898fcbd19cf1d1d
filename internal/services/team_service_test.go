package services

import (
	"context"
	"testing"

	"teamfolio/internal/github"

	"github.com/google/uuid"
)

func newTeamService(store *fakeTeamStore, gh *fakeGitHub, up *fakeUploader, cache *fakeCache) *TeamService {
	if store == nil {
		store = newFakeTeamStore()
	}
	if gh == nil {
		gh = &fakeGitHub{}
	}
	if up == nil {
		up = &fakeUploader{url: "https://cdn.example/upload.png"}
	}
	if cache == nil {
		cache = newFakeCache()
	}
	return NewTeamService(store, gh, up, cache)
}

func userWith(name, bio, avatar string) *github.User {
	return &github.User{Login: "octocat", Name: name, Bio: bio, AvatarURL: avatar}
}

func TestTeamCreateBackfillsEmptyNameAndBio(t *testing.T) {
	store := newFakeTeamStore()
	gh := &fakeGitHub{user: userWith("The Octocat", "I write Go", "https://a.example/octo.png")}
	svc := newTeamService(store, gh, nil, nil)

	member, err := svc.Create(context.Background(), TeamMemberForm{
		GitHubURL:     "https://github.com/octocat",
		UseGitHubData: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if member.Name != "The Octocat" || member.Bio != "I write Go" {
		t.Errorf("got name=%q bio=%q, want GitHub backfill", member.Name, member.Bio)
	}
	if member.ThumbnailURL != "https://a.example/octo.png" {
		t.Errorf("thumbnail = %q, want avatar", member.ThumbnailURL)
	}
}

func TestTeamCreateNameFallsBackToUsername(t *testing.T) {
	store := newFakeTeamStore()
	gh := &fakeGitHub{user: userWith("", "", "")}
	svc := newTeamService(store, gh, nil, nil)

	member, err := svc.Create(context.Background(), TeamMemberForm{
		GitHubURL:     "https://github.com/octocat",
		UseGitHubData: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if member.Name != "octocat" {
		t.Errorf("name = %q, want username fallback", member.Name)
	}
}

func TestTeamCreateNeverOverwritesExplicitInput(t *testing.T) {
	store := newFakeTeamStore()
	gh := &fakeGitHub{user: userWith("GitHub Name", "GitHub bio", "")}
	svc := newTeamService(store, gh, nil, nil)

	member, err := svc.Create(context.Background(), TeamMemberForm{
		Name:          "Form Name",
		Bio:           "Form bio",
		GitHubURL:     "https://github.com/octocat",
		UseGitHubData: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if member.Name != "Form Name" || member.Bio != "Form bio" {
		t.Errorf("explicit input was overwritten: name=%q bio=%q", member.Name, member.Bio)
	}
}

func TestTeamCreateSkipsEnrichmentWhenFlagOff(t *testing.T) {
	store := newFakeTeamStore()
	gh := &fakeGitHub{user: userWith("GitHub Name", "", "")}
	svc := newTeamService(store, gh, nil, nil)

	member, err := svc.Create(context.Background(), TeamMemberForm{
		GitHubURL:     "https://github.com/octocat",
		UseGitHubData: false,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if gh.userCalls != 0 || gh.readmeCalls != 0 {
		t.Errorf("enrichment ran with use_github_data=false (user=%d readme=%d)", gh.userCalls, gh.readmeCalls)
	}
	if member.Name != "" {
		t.Errorf("name = %q, want empty", member.Name)
	}
}

func TestTeamCreateAvatarOnlyFillsEmptyThumbnail(t *testing.T) {
	store := newFakeTeamStore()
	gh := &fakeGitHub{user: userWith("", "", "https://a.example/octo.png")}
	up := &fakeUploader{url: "https://cdn.example/uploaded.png"}
	svc := newTeamService(store, gh, up, nil)

	member, err := svc.Create(context.Background(), TeamMemberForm{
		GitHubURL:     "https://github.com/octocat",
		UseGitHubData: true,
		Thumbnail:     &FileUpload{Filename: "me.png", ContentType: "image/png", Data: []byte{1}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if member.ThumbnailURL != "https://cdn.example/uploaded.png" {
		t.Errorf("thumbnail = %q, uploaded file must win on create", member.ThumbnailURL)
	}
}

// The update path intentionally differs from create: with sync enabled and no
// new upload, the GitHub avatar overwrites whatever thumbnail was stored.
func TestTeamUpdateAvatarOverwritesThumbnailWithoutNewUpload(t *testing.T) {
	store := newFakeTeamStore()
	gh := &fakeGitHub{user: userWith("", "", "https://a.example/avatar-X.png")}
	svc := newTeamService(store, gh, nil, nil)

	_, err := svc.Update(context.Background(), uuid.New(), TeamMemberForm{
		GitHubURL:     "https://github.com/octocat",
		UseGitHubData: true,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if len(store.updates) != 1 {
		t.Fatalf("expected one update, got %d", len(store.updates))
	}
	u := store.updates[0]
	if !u.setThumbnail || u.member.ThumbnailURL != "https://a.example/avatar-X.png" {
		t.Errorf("avatar should overwrite thumbnail unconditionally, got set=%v url=%q", u.setThumbnail, u.member.ThumbnailURL)
	}
}

func TestTeamUpdateUploadedThumbnailBeatsAvatar(t *testing.T) {
	store := newFakeTeamStore()
	gh := &fakeGitHub{user: userWith("", "", "https://a.example/avatar.png")}
	up := &fakeUploader{url: "https://cdn.example/new.png"}
	svc := newTeamService(store, gh, up, nil)

	_, err := svc.Update(context.Background(), uuid.New(), TeamMemberForm{
		GitHubURL:     "https://github.com/octocat",
		UseGitHubData: true,
		Thumbnail:     &FileUpload{Filename: "new.png", ContentType: "image/png", Data: []byte{1}},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	u := store.updates[0]
	if u.member.ThumbnailURL != "https://cdn.example/new.png" {
		t.Errorf("thumbnail = %q, new upload must win", u.member.ThumbnailURL)
	}
}

func TestTeamUpdateReadmeOnlyOnSuccess(t *testing.T) {
	store := newFakeTeamStore()
	gh := &fakeGitHub{user: userWith("", "", "")}
	svc := newTeamService(store, gh, nil, nil)

	if _, err := svc.Update(context.Background(), uuid.New(), TeamMemberForm{
		GitHubURL:     "https://github.com/octocat",
		UseGitHubData: true,
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if store.updates[0].setReadme {
		t.Error("empty README fetch must not overwrite the stored value")
	}

	gh.readme = "## Profile"
	if _, err := svc.Update(context.Background(), uuid.New(), TeamMemberForm{
		GitHubURL:     "https://github.com/octocat",
		UseGitHubData: true,
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	last := store.updates[len(store.updates)-1]
	if !last.setReadme || last.member.ReadmeContent != "## Profile" {
		t.Errorf("fetched README should be written: %+v", last)
	}
}

func TestGlassmorphismDisabledByBackgroundImage(t *testing.T) {
	store := newFakeTeamStore()
	up := &fakeUploader{url: "https://cdn.example/bg.png"}
	svc := newTeamService(store, nil, up, nil)

	member, err := svc.Create(context.Background(), TeamMemberForm{
		Name:             "x",
		UseGlassmorphism: true,
		BackgroundImage:  &FileUpload{Filename: "bg.png", ContentType: "image/png", Data: []byte{1}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if member.UseGlassmorphism {
		t.Error("glassmorphism must be disabled when a background image is set")
	}

	if _, err := svc.Update(context.Background(), uuid.New(), TeamMemberForm{
		Name:             "x",
		UseGlassmorphism: true,
		BackgroundImage:  &FileUpload{Filename: "bg.png", ContentType: "image/png", Data: []byte{1}},
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if store.updates[0].member.UseGlassmorphism {
		t.Error("glassmorphism must be disabled by a new background image on update")
	}
}

func TestTeamMutationsInvalidateTeamPage(t *testing.T) {
	store := newFakeTeamStore()
	cache := newFakeCache()
	svc := newTeamService(store, nil, nil, cache)

	member, err := svc.Create(context.Background(), TeamMemberForm{Name: "x"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(context.Background(), member.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(cache.invalidated) < 2 {
		t.Errorf("expected invalidation per mutation, got %v", cache.invalidated)
	}
}
