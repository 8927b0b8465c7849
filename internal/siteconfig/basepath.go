package siteconfig

import "strings"

const (
	// BasePathToken marks where the deployment base path is substituted into a URL.
	BasePathToken = "${BASE_URL}"

	bareBasePathToken = "$BASE_URL"
)

// ResolveBasePath returns a copy of cfg with the base path substituted into
// every social link href. A trailing slash on basePath is dropped so that
// "/Blogs" and "/Blogs/" resolve "${BASE_URL}/atom.xml" to "/Blogs/atom.xml".
func ResolveBasePath(cfg Config, basePath string) Config {
	out := cfg.Clone()
	base := strings.TrimRight(basePath, "/")
	for i := range out.Site.SocialLinks {
		out.Site.SocialLinks[i].Href = expandBasePath(out.Site.SocialLinks[i].Href, base)
	}
	return out
}

// HasBasePathToken reports whether href still carries an unresolved base path.
func HasBasePathToken(href string) bool {
	return strings.Contains(href, BasePathToken) || indexBareToken(href, 0) >= 0
}

func expandBasePath(href, base string) string {
	href = strings.ReplaceAll(href, BasePathToken, base)

	var b strings.Builder
	start := 0
	for {
		i := indexBareToken(href, start)
		if i < 0 {
			break
		}
		b.WriteString(href[start:i])
		b.WriteString(base)
		start = i + len(bareBasePathToken)
	}
	if start == 0 {
		return href
	}
	b.WriteString(href[start:])
	return b.String()
}

// indexBareToken finds $BASE_URL at or after from where it is not the
// prefix of a longer name such as $BASE_URLS.
func indexBareToken(s string, from int) int {
	for from <= len(s) {
		i := strings.Index(s[from:], bareBasePathToken)
		if i < 0 {
			return -1
		}
		i += from
		end := i + len(bareBasePathToken)
		if end == len(s) || !isIdentByte(s[end]) {
			return i
		}
		from = end
	}
	return -1
}

func isIdentByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
