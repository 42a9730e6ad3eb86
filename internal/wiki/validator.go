package wiki

import (
	"net/url"
	"strings"
)

// IsValidArticleURL reports whether raw names a specific Wikipedia article.
// The check is purely syntactic: the host must contain "wikipedia.org", the
// path must contain "/wiki/" and must not be the bare namespace. It does not
// verify that the article exists.
func IsValidArticleURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return strings.Contains(parsed.Host, "wikipedia.org") &&
		strings.Contains(parsed.Path, "/wiki/") &&
		strings.TrimSpace(parsed.Path) != "/wiki/"
}
