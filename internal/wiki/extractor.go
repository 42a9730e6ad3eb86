package wiki

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"wikiquiz/internal/config"
	"wikiquiz/internal/domain"
	"wikiquiz/internal/logger"
	"wikiquiz/internal/util"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

const (
	summaryMaxChars      = 1000
	summaryParagraphs    = 3
	maxSections          = 5
	defaultTopicLimit    = 5
	internalLinkPrefix   = "/wiki/"
	contentSelector      = "#mw-content-text"
	headingTextSelector  = "span.mw-headline"
)

// Extractor scrapes Wikipedia articles into structured records. A single
// instance is safe for concurrent use; each Extract call performs exactly one
// GET with a bounded timeout and no retries.
type Extractor struct {
	client     *http.Client
	baseURL    string
	userAgent  string
	topicLimit int
}

// NewExtractor builds an Extractor from configuration. The HTTP client's
// timeout bounds the whole fetch; expiry surfaces as a scraping error, never
// a silent empty result.
func NewExtractor(cfg config.WikiConfig, topicLimit int) domain.ArticleExtractor {
	if topicLimit <= 0 {
		topicLimit = defaultTopicLimit
	}
	return &Extractor{
		client:     &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		topicLimit: topicLimit,
	}
}

// Extract fetches the article at rawURL and derives its structured record.
// Invalid URLs are rejected before any network call. Each extraction sub-step
// is best-effort: missing markup degrades to empty fields rather than
// aborting, because only the fetch itself is fatal.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (*domain.Article, error) {
	if !IsValidArticleURL(rawURL) {
		logger.Get().Warn("Rejected non-article URL", zap.String("url", rawURL))
		return nil, domain.NewInvalidSourceError(rawURL)
	}

	logger.Get().Info("Scraping Wikipedia article", zap.String("url", rawURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, domain.NewScrapingError("Failed to build request for Wikipedia article", err)
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		if urlErr, ok := err.(*url.Error); ok && urlErr.Timeout() {
			return nil, domain.NewScrapingError("Request timeout. Wikipedia took too long to respond.", err)
		}
		return nil, domain.NewScrapingError("Connection error. Could not reach Wikipedia.", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewScrapingError(
			fmt.Sprintf("Failed to fetch Wikipedia article: unexpected status %d", resp.StatusCode), nil)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, domain.NewScrapingError("Failed to parse Wikipedia article markup", err)
	}

	article := &domain.Article{
		Title:         e.extractTitle(doc),
		ImageURL:      e.extractImage(doc),
		Summary:       e.extractSummary(doc),
		Sections:      e.extractSections(doc),
		RelatedTopics: e.extractRelatedTopics(doc),
		Infobox:       e.extractInfobox(doc),
	}

	logger.Get().Info("Successfully scraped article",
		zap.String("title", article.Title),
		zap.Int("sections", len(article.Sections)),
		zap.Int("related_topics", len(article.RelatedTopics)),
	)
	return article, nil
}

func (e *Extractor) extractTitle(doc *goquery.Document) string {
	heading := doc.Find("h1.firstHeading").First()
	if heading.Length() > 0 {
		if title := strings.TrimSpace(heading.Text()); title != "" {
			return title
		}
	}
	return "Unknown Title"
}

// extractImage prefers the lead infobox image and falls back to the first
// image in the main content region.
func (e *Extractor) extractImage(doc *goquery.Document) string {
	img := doc.Find("table.infobox img").First()
	if img.Length() == 0 {
		img = doc.Find(contentSelector + " img").First()
	}
	if img.Length() == 0 {
		return ""
	}
	src, _ := img.Attr("src")
	if src == "" {
		return ""
	}
	return e.resolveImageURL(src)
}

// resolveImageURL converts Wikipedia image references to absolute URLs.
// Absolute inputs pass through unchanged, which makes resolution idempotent.
func (e *Extractor) resolveImageURL(src string) string {
	if strings.HasPrefix(src, "http") {
		return src
	}
	if strings.HasPrefix(src, "//") {
		return "https:" + src
	}
	return e.baseURL + src
}

// extractSummary joins the first few lead paragraphs, skipping citation
// markers, capped at 1000 characters.
func (e *Extractor) extractSummary(doc *goquery.Document) string {
	content := doc.Find(contentSelector)
	if content.Length() == 0 {
		return ""
	}

	var paragraphs []string
	content.Find("p").EachWithBreak(func(i int, p *goquery.Selection) bool {
		if i >= summaryParagraphs {
			return false
		}
		text := strings.TrimSpace(p.Text())
		if text != "" && !strings.HasPrefix(text, "[") {
			paragraphs = append(paragraphs, text)
		}
		return true
	})

	return util.Truncate(strings.Join(paragraphs, " "), summaryMaxChars)
}

// extractSections walks headings and paragraphs in document order. A heading
// closes the open section and opens a new one; paragraphs accumulate under
// the nearest preceding heading. Headings without any following paragraph
// text are dropped. At most 5 sections are kept.
func (e *Extractor) extractSections(doc *goquery.Document) []domain.ArticleSection {
	var sections []domain.ArticleSection
	content := doc.Find(contentSelector)
	if content.Length() == 0 {
		return sections
	}

	var current *domain.ArticleSection
	closeCurrent := func() {
		if current != nil && strings.TrimSpace(current.Content) != "" {
			current.Content = strings.TrimSpace(current.Content)
			sections = append(sections, *current)
		}
	}

	content.Find("h2, h3, p").Each(func(_ int, sel *goquery.Selection) {
		node := goquery.NodeName(sel)
		if node == "h2" || node == "h3" {
			title := headingLabel(sel)
			if title != "" {
				closeCurrent()
				current = &domain.ArticleSection{Title: title}
			}
			return
		}
		// paragraph
		if current == nil {
			return
		}
		text := strings.TrimSpace(sel.Text())
		if text != "" && !strings.HasPrefix(text, "[") {
			current.Content += " " + text
		}
	})
	closeCurrent()

	if len(sections) > maxSections {
		sections = sections[:maxSections]
	}
	return sections
}

// headingLabel returns the display label of a section heading. Wikipedia
// wraps it in span.mw-headline; headings without one are not section starts.
func headingLabel(heading *goquery.Selection) string {
	span := heading.Find(headingTextSelector).First()
	if span.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(span.Text())
}

// extractRelatedTopics scans every level-2/3 heading whose text mentions
// "see also" or "related" and collects internal article links from the next
// list in document order. The combined result is capped at the topic limit.
func (e *Extractor) extractRelatedTopics(doc *goquery.Document) []domain.RelatedTopic {
	var related []domain.RelatedTopic

	doc.Find("h2, h3").Each(func(_ int, heading *goquery.Selection) {
		text := strings.ToLower(strings.TrimSpace(heading.Text()))
		if !strings.Contains(text, "see also") && !strings.Contains(text, "related") {
			return
		}
		list := nextList(heading)
		if list == nil {
			return
		}
		list.Find("li").EachWithBreak(func(i int, li *goquery.Selection) bool {
			if i >= e.topicLimit {
				return false
			}
			link := li.Find("a").First()
			if link.Length() == 0 {
				return true
			}
			href, _ := link.Attr("href")
			if !strings.HasPrefix(href, internalLinkPrefix) {
				return true
			}
			related = append(related, domain.RelatedTopic{
				Title: strings.TrimSpace(link.Text()),
				URL:   e.baseURL + href,
			})
			return true
		})
	})

	if len(related) > e.topicLimit {
		related = related[:e.topicLimit]
	}
	return related
}

// nextList finds the first <ul> after the heading in document order,
// descending into following subtrees the way a flat forward scan would.
func nextList(heading *goquery.Selection) *goquery.Selection {
	if len(heading.Nodes) == 0 {
		return nil
	}
	for node := nextNode(heading.Nodes[0]); node != nil; node = nextNode(node) {
		if node.Type == html.ElementNode && node.Data == "ul" {
			return heading.Slice(0, 0).AddNodes(node)
		}
	}
	return nil
}

// nextNode yields the successor of n in document order.
func nextNode(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for n != nil {
		if n.NextSibling != nil {
			return n.NextSibling
		}
		n = n.Parent
	}
	return nil
}

// extractInfobox collects the key/value rows of the lead infobox table.
func (e *Extractor) extractInfobox(doc *goquery.Document) map[string]string {
	infobox := map[string]string{}
	table := doc.Find("table.infobox").First()
	if table.Length() == 0 {
		return infobox
	}
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("th, td")
		if cells.Length() < 2 {
			return
		}
		key := strings.TrimSpace(cells.Eq(0).Text())
		value := strings.TrimSpace(cells.Eq(1).Text())
		if key != "" {
			infobox[key] = value
		}
	})
	return infobox
}

var _ domain.ArticleExtractor = (*Extractor)(nil)
