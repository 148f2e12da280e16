package handlers

import (
	"fmt"
	"html"
	"net/http"
	"regexp"
	"strings"
	"time"

	"newsdesk/internal/store"
	"newsdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

type SEOHandler struct {
	store   *store.Store
	siteURL string
}

func NewSEOHandler(s *store.Store, siteURL string) *SEOHandler {
	return &SEOHandler{store: s, siteURL: siteURL}
}

// RobotsTxt serves the crawler policy.
func (h *SEOHandler) RobotsTxt(c *gin.Context) {
	content := fmt.Sprintf(`User-agent: *
Allow: /

# Feed location
Sitemap: %s/feed.xml
`, h.siteURL)

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusOK, content)
}

// RSSFeed renders an RSS 2.0 feed of the newest articles. Bodies are
// stored as markdown and rendered to sanitized HTML for the description.
func (h *SEOHandler) RSSFeed(c *gin.Context) {
	now := time.Now()

	articles, err := h.store.RecentArticles(20)
	if err != nil {
		fail(c, err)
		return
	}

	rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">
  <channel>
    <title>Newsdesk</title>
    <link>` + h.siteURL + `</link>
    <description>Latest articles from the newsdesk community</description>
    <language>en</language>
    <lastBuildDate>` + now.Format(time.RFC1123Z) + `</lastBuildDate>
    <atom:link href="` + h.siteURL + `/feed.xml" rel="self" type="application/rss+xml"/>
`

	for _, article := range articles {
		link := fmt.Sprintf("%s/api/articles/%d", h.siteURL, article.ArticleID)

		content := truncateByParagraph(utils.RenderMarkdown(article.Body), 3)
		content += fmt.Sprintf(`<p><a href="%s">Read the full article and its %d comments</a></p>`, link, article.CommentCount)

		rss += `    <item>
      <title>` + escapeXML(article.Title) + `</title>
      <link>` + link + `</link>
      <description><![CDATA[` + content + `]]></description>
      <author>` + escapeXML(article.Author) + `</author>
      <category>` + escapeXML(article.Topic) + `</category>
      <pubDate>` + article.CreatedAt.Format(time.RFC1123Z) + `</pubDate>
      <guid isPermaLink="true">` + link + `</guid>
    </item>
`
	}

	rss += `  </channel>
</rss>`

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	c.String(http.StatusOK, rss)
}

func escapeXML(s string) string {
	return html.EscapeString(s)
}

// truncateByParagraph keeps the first few complete block elements of an
// HTML fragment, falling back to a plain-text cut.
func truncateByParagraph(content string, maxBlocks int) string {
	re := regexp.MustCompile(`(?s)(<(?:p|div|h[1-6]|ul|ol|blockquote|pre)[^>]*>.*?</(?:p|div|h[1-6]|ul|ol|blockquote|pre)>)`)
	matches := re.FindAllString(content, maxBlocks)

	if len(matches) == 0 {
		runes := []rune(stripHTML(content))
		if len(runes) > 300 {
			return string(runes[:300]) + "..."
		}
		return content
	}

	return strings.Join(matches, "\n")
}

func stripHTML(s string) string {
	re := regexp.MustCompile(`<[^>]*>`)
	return re.ReplaceAllString(s, "")
}
