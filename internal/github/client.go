package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.github.com"

// Repo is the subset of repository metadata used for enrichment.
type Repo struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
	Stargazers  int    `json:"stargazers_count"`
	Language    string `json:"language"`
	Owner       struct {
		Login     string `json:"login"`
		AvatarURL string `json:"avatar_url"`
	} `json:"owner"`
}

// User is the subset of profile metadata used for enrichment.
type User struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

// Client talks to the GitHub REST API. The token is optional; without one
// requests count against the public rate limit.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetHTTPClient replaces the underlying HTTP client, mainly for tests.
func (c *Client) SetHTTPClient(h *http.Client) {
	c.http = h
}

// ParseRepoURL extracts owner and repo from a GitHub repository URL.
// Trailing path segments and query strings are ignored. Malformed input or
// fewer than two path segments yield ok=false, never an error.
func ParseRepoURL(raw string) (owner, repo string, ok bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", false
	}
	parts := splitPath(u.Path)
	if len(parts) < 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// ParseProfileURL extracts a username from a GitHub profile URL.
func ParseProfileURL(raw string) (username string, ok bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	parts := splitPath(u.Path)
	if len(parts) < 1 {
		return "", false
	}
	return parts[0], true
}

func splitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// RepoInfo fetches repository metadata. A failed fetch is logged and returns
// nil; enrichment callers must treat nil as "skip".
func (c *Client) RepoInfo(ctx context.Context, owner, repo string) *Repo {
	body, status, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s", owner, repo), "application/vnd.github.v3+json")
	if err != nil {
		log.Printf("github: repo info request failed for %s/%s: %v", owner, repo, err)
		return nil
	}
	if status != http.StatusOK {
		log.Printf("github: repo info returned %d for %s/%s", status, owner, repo)
		return nil
	}

	var info Repo
	if err := json.Unmarshal(body, &info); err != nil {
		log.Printf("github: decoding repo info for %s/%s: %v", owner, repo, err)
		return nil
	}
	return &info
}

// UserInfo fetches a user profile. Same failure policy as RepoInfo.
func (c *Client) UserInfo(ctx context.Context, username string) *User {
	body, status, err := c.get(ctx, "/users/"+username, "application/vnd.github.v3+json")
	if err != nil {
		log.Printf("github: user info request failed for %s: %v", username, err)
		return nil
	}
	if status != http.StatusOK {
		log.Printf("github: user info returned %d for %s", status, username)
		return nil
	}

	var info User
	if err := json.Unmarshal(body, &info); err != nil {
		log.Printf("github: decoding user info for %s: %v", username, err)
		return nil
	}
	return &info
}

// Readme fetches a repository README as plain text. It tries the raw media
// type first, then falls back to the JSON representation and decodes its
// base64 payload. Both failing returns "".
func (c *Client) Readme(ctx context.Context, owner, repo string) string {
	path := fmt.Sprintf("/repos/%s/%s/readme", owner, repo)

	body, status, err := c.get(ctx, path, "application/vnd.github.v3.raw")
	if err == nil && status == http.StatusOK {
		return string(body)
	}

	body, status, err = c.get(ctx, path, "application/vnd.github.v3+json")
	if err != nil {
		log.Printf("github: readme request failed for %s/%s: %v", owner, repo, err)
		return ""
	}
	if status != http.StatusOK {
		log.Printf("github: readme returned %d for %s/%s", status, owner, repo)
		if status == http.StatusForbidden {
			log.Printf("github: rate limit exceeded or invalid token, check GITHUB_ACCESS_TOKEN")
		}
		return ""
	}

	var payload struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Content == "" {
		return ""
	}
	// The API wraps base64 content at 60 columns.
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(payload.Content, "\n", ""))
	if err != nil {
		log.Printf("github: decoding readme for %s/%s: %v", owner, repo, err)
		return ""
	}
	return string(decoded)
}

func (c *Client) get(ctx context.Context, path, accept string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}
