package github

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseRepoURL(t *testing.T) {
	cases := []struct {
		in    string
		owner string
		repo  string
		ok    bool
	}{
		{"https://github.com/octocat/hello-world", "octocat", "hello-world", true},
		{"https://github.com/octocat/hello-world/tree/main/docs", "octocat", "hello-world", true},
		{"https://github.com/octocat/hello-world?tab=readme-ov-file", "octocat", "hello-world", true},
		{"https://github.com/octocat/hello-world/", "octocat", "hello-world", true},
		{"https://github.com/octocat", "", "", false},
		{"https://github.com/", "", "", false},
		{"://not a url", "", "", false},
	}

	for _, tc := range cases {
		owner, repo, ok := ParseRepoURL(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseRepoURL(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if owner != tc.owner || repo != tc.repo {
			t.Errorf("ParseRepoURL(%q) = %q/%q, want %q/%q", tc.in, owner, repo, tc.owner, tc.repo)
		}
	}
}

func TestParseProfileURL(t *testing.T) {
	if u, ok := ParseProfileURL("https://github.com/octocat"); !ok || u != "octocat" {
		t.Errorf("ParseProfileURL = %q, %v", u, ok)
	}
	if u, ok := ParseProfileURL("https://github.com/octocat/extra"); !ok || u != "octocat" {
		t.Errorf("ParseProfileURL with trailing segment = %q, %v", u, ok)
	}
	if _, ok := ParseProfileURL("https://github.com/"); ok {
		t.Error("expected no match for empty path")
	}
	if _, ok := ParseProfileURL("://not a url"); ok {
		t.Error("expected no match for unparsable input")
	}
}

func TestReadmeRawSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") == "application/vnd.github.v3.raw" {
			w.Write([]byte("# Hello"))
			return
		}
		t.Errorf("unexpected Accept header %q", r.Header.Get("Accept"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if got := c.Readme(context.Background(), "octocat", "hello-world"); got != "# Hello" {
		t.Errorf("Readme = %q, want %q", got, "# Hello")
	}
}

func TestReadmeJSONFallback(t *testing.T) {
	const text = "# Fallback README\n\nwith multibyte: café"
	encoded := base64.StdEncoding.EncodeToString([]byte(text))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Header.Get("Accept") {
		case "application/vnd.github.v3.raw":
			w.WriteHeader(http.StatusNotAcceptable)
		case "application/vnd.github.v3+json":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"content":"` + encoded + `","encoding":"base64"}`))
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if got := c.Readme(context.Background(), "octocat", "hello-world"); got != text {
		t.Errorf("Readme = %q, want decoded payload %q", got, text)
	}
}

func TestReadmeBothFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if got := c.Readme(context.Background(), "octocat", "missing"); got != "" {
		t.Errorf("Readme = %q, want empty", got)
	}
}

func TestRepoInfoNonSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if info := c.RepoInfo(context.Background(), "octocat", "hello-world"); info != nil {
		t.Errorf("expected nil repo info on 403, got %+v", info)
	}
	if info := c.UserInfo(context.Background(), "octocat"); info != nil {
		t.Errorf("expected nil user info on 403, got %+v", info)
	}
}

func TestRepoInfoSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/octocat/hello-world" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"hello-world","description":"demo","owner":{"login":"octocat","avatar_url":"https://a.example/octocat.png"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	info := c.RepoInfo(context.Background(), "octocat", "hello-world")
	if info == nil {
		t.Fatal("expected repo info")
	}
	if info.Name != "hello-world" || info.Description != "demo" || info.Owner.AvatarURL == "" {
		t.Errorf("unexpected repo info %+v", info)
	}
}
