package wiki

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"wikiquiz/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!DOCTYPE html>
<html>
<body>
<h1 class="firstHeading">Alan Turing</h1>
<table class="infobox">
  <tr><td><img src="//upload.wikimedia.org/turing.jpg"/></td></tr>
  <tr><th>Born</th><td>23 June 1912</td></tr>
  <tr><th>Fields</th><td>Mathematics</td></tr>
</table>
<div id="mw-content-text">
  <p>[1]</p>
  <p>Alan Turing was an English mathematician and computer scientist.</p>
  <p>He was highly influential in the development of theoretical computer science.</p>
  <p>This fourth paragraph is beyond the summary window.</p>
  <h2><span class="mw-headline">Early life</span></h2>
  <p>Turing was born in Maida Vale, London.</p>
  <p>[2]</p>
  <p>His father was in the Indian Civil Service.</p>
  <h2>Navigation heading without label span</h2>
  <p>This text continues the previous section.</p>
  <h3><span class="mw-headline">Education</span></h3>
  <p>He studied at King's College, Cambridge.</p>
  <h2><span class="mw-headline">Empty section</span></h2>
  <h2><span class="mw-headline">Legacy</span></h2>
  <p>Turing is widely considered the father of computer science.</p>
  <h2><span class="mw-headline">See also</span></h2>
  <ul>
    <li><a href="/wiki/Enigma_machine">Enigma machine</a></li>
    <li><a href="/wiki/Turing_test">Turing test</a></li>
    <li><a href="https://external.example.com/turing">External link</a></li>
    <li><a href="/wiki/Halting_problem">Halting problem</a></li>
  </ul>
</div>
</body>
</html>`

// rewriteTransport sends every request to the test server regardless of the
// request host, so extraction can target wikipedia.org URLs in tests.
type rewriteTransport struct {
	server *httptest.Server
	calls  int
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.calls++
	target, _ := url.Parse(t.server.URL)
	req.URL.Scheme = target.Scheme
	req.URL.Host = target.Host
	return t.server.Client().Transport.RoundTrip(req)
}

func newTestExtractor(server *httptest.Server) (*Extractor, *rewriteTransport) {
	transport := &rewriteTransport{server: server}
	return &Extractor{
		client:     &http.Client{Transport: transport, Timeout: 5 * time.Second},
		baseURL:    "https://en.wikipedia.org",
		userAgent:  "wikiquiz-test/1.0",
		topicLimit: 5,
	}, transport
}

func TestExtract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "wikiquiz-test/1.0", r.Header.Get("User-Agent"))
		w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	extractor, _ := newTestExtractor(server)
	article, err := extractor.Extract(context.Background(), "https://en.wikipedia.org/wiki/Alan_Turing")
	require.NoError(t, err)

	assert.Equal(t, "Alan Turing", article.Title)
	assert.Equal(t, "https://upload.wikimedia.org/turing.jpg", article.ImageURL)

	// Citation-marker paragraph is skipped; only the first 3 paragraph
	// elements are considered for the summary
	assert.Equal(t,
		"Alan Turing was an English mathematician and computer scientist. "+
			"He was highly influential in the development of theoretical computer science.",
		article.Summary)
	assert.LessOrEqual(t, len(article.Summary), 1000)

	// A heading without a label span does not start a section; the heading
	// with no paragraph text is dropped
	require.Len(t, article.Sections, 3)
	assert.Equal(t, "Early life", article.Sections[0].Title)
	assert.Equal(t,
		"Turing was born in Maida Vale, London. His father was in the Indian Civil Service. "+
			"This text continues the previous section.",
		article.Sections[0].Content)
	assert.Equal(t, "Education", article.Sections[1].Title)
	assert.Equal(t, "Legacy", article.Sections[2].Title)

	// Only internal wiki links survive; URLs are absolute
	require.Len(t, article.RelatedTopics, 3)
	assert.Equal(t, "Enigma machine", article.RelatedTopics[0].Title)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Enigma_machine", article.RelatedTopics[0].URL)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Turing_test", article.RelatedTopics[1].URL)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Halting_problem", article.RelatedTopics[2].URL)

	assert.Equal(t, "23 June 1912", article.Infobox["Born"])
	assert.Equal(t, "Mathematics", article.Infobox["Fields"])
}

func TestExtractInvalidURLSkipsNetwork(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	extractor, transport := newTestExtractor(server)
	_, err := extractor.Extract(context.Background(), "https://www.google.com")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrInvalidSource, domainErr.Code)
	assert.Equal(t, 0, transport.calls, "no network call should be attempted for an invalid URL")
}

func TestExtractServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	extractor, _ := newTestExtractor(server)
	_, err := extractor.Extract(context.Background(), "https://en.wikipedia.org/wiki/Alan_Turing")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrScraping, domainErr.Code)
}

func TestExtractConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	extractor, _ := newTestExtractor(server)
	_, err := extractor.Extract(context.Background(), "https://en.wikipedia.org/wiki/Alan_Turing")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrScraping, domainErr.Code)
}

func TestResolveImageURL(t *testing.T) {
	e := &Extractor{baseURL: "https://en.wikipedia.org"}

	tests := []struct {
		src  string
		want string
	}{
		{"https://upload.wikimedia.org/img.png", "https://upload.wikimedia.org/img.png"},
		{"http://upload.wikimedia.org/img.png", "http://upload.wikimedia.org/img.png"},
		{"//upload.wikimedia.org/img.png", "https://upload.wikimedia.org/img.png"},
		{"/static/images/img.png", "https://en.wikipedia.org/static/images/img.png"},
	}
	for _, tt := range tests {
		got := e.resolveImageURL(tt.src)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, got, e.resolveImageURL(got), "resolution must be idempotent on absolute URLs")
	}
}

func TestExtractSectionsCap(t *testing.T) {
	var b strings.Builder
	b.WriteString(`<div id="mw-content-text">`)
	for _, name := range []string{"One", "Two", "Three", "Four", "Five", "Six", "Seven"} {
		b.WriteString(`<h2><span class="mw-headline">` + name + `</span></h2><p>Content for ` + name + `.</p>`)
	}
	b.WriteString(`</div>`)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	require.NoError(t, err)

	e := &Extractor{baseURL: "https://en.wikipedia.org", topicLimit: 5}
	sections := e.extractSections(doc)
	require.Len(t, sections, 5)
	assert.Equal(t, "One", sections[0].Title)
	assert.Equal(t, "Five", sections[4].Title)
}

func TestExtractSummaryCap(t *testing.T) {
	long := strings.Repeat("w", 700)
	html := `<div id="mw-content-text"><p>` + long + `</p><p>` + long + `</p></div>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	e := &Extractor{baseURL: "https://en.wikipedia.org"}
	summary := e.extractSummary(doc)
	assert.Len(t, summary, 1000)
}

func TestExtractRelatedTopicsCombinedCap(t *testing.T) {
	var items strings.Builder
	for _, name := range []string{"A", "B", "C", "D"} {
		items.WriteString(`<li><a href="/wiki/` + name + `">` + name + `</a></li>`)
	}
	html := `<div id="mw-content-text">` +
		`<h2><span class="mw-headline">See also</span></h2><ul>` + items.String() + `</ul>` +
		`<h2><span class="mw-headline">Related articles</span></h2><ul>` + items.String() + `</ul>` +
		`</div>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	e := &Extractor{baseURL: "https://en.wikipedia.org", topicLimit: 5}
	topics := e.extractRelatedTopics(doc)
	require.Len(t, topics, 5, "topics accumulate across matching headings but are capped at the limit")
	assert.Equal(t, "https://en.wikipedia.org/wiki/A", topics[0].URL)
}

func TestExtractMissingEverything(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body><p>bare page</p></body></html>`))
	require.NoError(t, err)

	e := &Extractor{baseURL: "https://en.wikipedia.org", topicLimit: 5}
	assert.Equal(t, "Unknown Title", e.extractTitle(doc))
	assert.Empty(t, e.extractImage(doc))
	assert.Empty(t, e.extractSummary(doc))
	assert.Empty(t, e.extractSections(doc))
	assert.Empty(t, e.extractRelatedTopics(doc))
	assert.Empty(t, e.extractInfobox(doc))
}
