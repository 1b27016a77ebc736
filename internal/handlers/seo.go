package handlers

import (
	"fmt"
	"html"
	"net/http"
	"os"
	"time"

	"jokehub/internal/db"
	"jokehub/internal/models"
	"jokehub/internal/utils"

	"github.com/gin-gonic/gin"
)

type SEOHandler struct{}

func NewSEOHandler() *SEOHandler {
	return &SEOHandler{}
}

// getSiteURL 从环境变量获取网站URL,如果未设置则使用默认值
func getSiteURL() string {
	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "http://localhost:8080"
	}
	return siteURL
}

// RobotsTxt 返回robots.txt内容
func (h *SEOHandler) RobotsTxt(c *gin.Context) {
	siteURL := getSiteURL()
	content := fmt.Sprintf(`User-agent: *
Allow: /

Disallow: /account
Disallow: /admin/
Disallow: /login
Disallow: /signup
Disallow: /jokes/create

Sitemap: %s/sitemap.xml
`, siteURL)

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusOK, content)
}

// SitemapXML 动态生成sitemap.xml
func (h *SEOHandler) SitemapXML(c *gin.Context) {
	siteURL := getSiteURL()
	now := time.Now().Format("2006-01-02")

	xml := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
`

	// 首页和列表页
	for _, page := range []struct {
		path     string
		priority string
	}{
		{"/", "1.0"},
		{"/jokes", "0.9"},
		{"/categories", "0.8"},
		{"/tags", "0.8"},
	} {
		xml += fmt.Sprintf(`  <url>
    <loc>%s%s</loc>
    <lastmod>%s</lastmod>
    <changefreq>daily</changefreq>
    <priority>%s</priority>
  </url>
`, siteURL, page.path, now, page.priority)
	}

	// 所有分类页面
	var categories []models.Category
	db.DB.Find(&categories)
	for _, cat := range categories {
		xml += fmt.Sprintf(`  <url>
    <loc>%s/jokes/category/%s</loc>
    <lastmod>%s</lastmod>
    <changefreq>daily</changefreq>
    <priority>0.7</priority>
  </url>
`, siteURL, cat.Slug, now)
	}

	// 所有标签页面
	var tags []models.Tag
	db.DB.Find(&tags)
	for _, tag := range tags {
		xml += fmt.Sprintf(`  <url>
    <loc>%s/jokes/tag/%s</loc>
    <lastmod>%s</lastmod>
    <changefreq>weekly</changefreq>
    <priority>0.6</priority>
  </url>
`, siteURL, tag.Slug, now)
	}

	// 最近的笑话详情页(限制500条,避免sitemap过大)
	var jokes []models.Joke
	db.DB.Order("updated_at DESC").Limit(500).Find(&jokes)
	for _, joke := range jokes {
		lastmod := joke.UpdatedAt.Format("2006-01-02")
		daysSinceCreated := time.Since(joke.CreatedAt).Hours() / 24
		priority := 0.6
		changefreq := "weekly"

		if daysSinceCreated < 7 {
			priority = 0.8
			changefreq = "daily"
		} else if daysSinceCreated < 30 {
			priority = 0.7
		}

		xml += fmt.Sprintf(`  <url>
    <loc>%s/jokes/joke/%s</loc>
    <lastmod>%s</lastmod>
    <changefreq>%s</changefreq>
    <priority>%.1f</priority>
  </url>
`, siteURL, joke.Slug, lastmod, changefreq, priority)
	}

	xml += `</urlset>`

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.String(http.StatusOK, xml)
}

// RSSFeed 生成RSS 2.0 feed,最新20条笑话
func (h *SEOHandler) RSSFeed(c *gin.Context) {
	siteURL := getSiteURL()
	now := time.Now()

	var jokes []models.Joke
	db.DB.Preload("User").Preload("Category").Order("created_at DESC").Limit(20).Find(&jokes)

	rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">
  <channel>
    <title>JokeHub</title>
    <link>` + siteURL + `</link>
    <description>Jokes shared, rated and argued over by the community</description>
    <language>en</language>
    <lastBuildDate>` + now.Format(time.RFC1123Z) + `</lastBuildDate>
    <atom:link href="` + siteURL + `/feed.xml" rel="self" type="application/rss+xml"/>
`

	for _, joke := range jokes {
		link := fmt.Sprintf("%s/jokes/joke/%s", siteURL, joke.Slug)
		content := string(utils.RenderMarkdown(joke.Answer))

		rss += `    <item>
      <title>` + escapeXML(joke.Question) + `</title>
      <link>` + link + `</link>
      <description><![CDATA[` + content + `]]></description>
      <author>` + escapeXML(joke.User.Username) + `</author>
      <category>` + escapeXML(joke.Category.Name) + `</category>
      <pubDate>` + joke.CreatedAt.Format(time.RFC1123Z) + `</pubDate>
      <guid isPermaLink="true">` + link + `</guid>
    </item>
`
	}

	rss += `  </channel>
</rss>`

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	c.String(http.StatusOK, rss)
}

// escapeXML 转义XML特殊字符
func escapeXML(s string) string {
	return html.EscapeString(s)
}
