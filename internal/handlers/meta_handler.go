package handlers

import (
	"encoding/xml"
	"fmt"
	"html"
	"net/http"
	"time"

	"teamfolio/internal/services"

	"github.com/gin-gonic/gin"
)

// MetaHandler serves the crawler-facing endpoints: sitemap, robots and the
// Open Graph card image.
type MetaHandler struct {
	projectService *services.ProjectService
	baseURL        string
	siteTitle      string
	siteTagline    string
}

func NewMetaHandler(projectService *services.ProjectService, baseURL, siteTitle, siteTagline string) *MetaHandler {
	return &MetaHandler{
		projectService: projectService,
		baseURL:        baseURL,
		siteTitle:      siteTitle,
		siteTagline:    siteTagline,
	}
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap handles GET /sitemap.xml
func (h *MetaHandler) Sitemap(c *gin.Context) {
	now := time.Now().Format("2006-01-02")

	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: h.baseURL, LastMod: now, ChangeFreq: "monthly", Priority: "1.0"},
			{Loc: h.baseURL + "/projects", LastMod: now, ChangeFreq: "weekly", Priority: "0.8"},
			{Loc: h.baseURL + "/team", LastMod: now, ChangeFreq: "monthly", Priority: "0.8"},
		},
	}

	// Project pages are added best-effort; a datastore failure still yields
	// the static part of the sitemap.
	if projects, err := h.projectService.List(c.Request.Context()); err == nil {
		for _, p := range projects {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        fmt.Sprintf("%s/projects/%s", h.baseURL, p.ID),
				LastMod:    p.UpdatedAt.Format("2006-01-02"),
				ChangeFreq: "weekly",
				Priority:   "0.7",
			})
		}
	}

	c.XML(http.StatusOK, set)
}

// Robots handles GET /robots.txt
func (h *MetaHandler) Robots(c *gin.Context) {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", h.baseURL)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

// truncate shortens s to at most max characters, counting runes so a
// multibyte value is never cut mid-character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// OGImage handles GET /og — an SVG social card parameterized by title and
// description query parameters.
func (h *MetaHandler) OGImage(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		title = h.siteTitle
	}
	description := c.Query("description")
	if description == "" {
		description = h.siteTagline
	}

	title = truncate(title, 80)
	description = truncate(description, 140)

	svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="1200" height="630" viewBox="0 0 1200 630">
  <rect width="1200" height="630" fill="#050508"/>
  <circle cx="180" cy="60" r="500" fill="#ff713e" opacity="0.08"/>
  <circle cx="1080" cy="600" r="450" fill="#a855f7" opacity="0.08"/>
  <text x="600" y="300" text-anchor="middle" fill="#ffffff" font-family="sans-serif" font-size="64" font-weight="bold">%s</text>
  <text x="600" y="380" text-anchor="middle" fill="#9ca3af" font-family="sans-serif" font-size="30">%s</text>
</svg>`, html.EscapeString(title), html.EscapeString(description))

	c.Data(http.StatusOK, "image/svg+xml", []byte(svg))
}
