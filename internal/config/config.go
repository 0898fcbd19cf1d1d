package config

import "os"

// GitHubToken returns the optional API token. Unauthenticated calls fall
// under GitHub's public rate limit.
func GitHubToken() string {
	return os.Getenv("GITHUB_ACCESS_TOKEN")
}

// GitHubBaseURL allows pointing the connector at a stub in tests.
func GitHubBaseURL() string {
	return os.Getenv("GITHUB_API_BASE_URL")
}

// SiteBaseURL is the public origin used in sitemap and robots output.
func SiteBaseURL() string {
	if v := os.Getenv("SITE_BASE_URL"); v != "" {
		return v
	}
	return "http://localhost:8080"
}
