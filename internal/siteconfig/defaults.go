package siteconfig

// defaultConfig mirrors the template's own settings. The override in User is
// layered on top of it.
var defaultConfig = Config{
	Site: SiteConfig{
		Title:       "Astro Theme Pure",
		Subtitle:    "",
		Author:      "Pure",
		Description: "Stay hungry, stay foolish",
		Website:     "https://astro-pure.js.org/",
		SocialLinks: []SocialLink{
			{Name: "github", Href: "https://github.com/cworld1/astro-theme-pure"},
		},
	},
	Seo: SeoConfig{
		Twitter: "@cworld0",
	},
}

// knownSocialLinks lists the icon names the renderer ships with.
var knownSocialLinks = map[string]struct{}{
	"github":    {},
	"rss":       {},
	"twitter":   {},
	"x":         {},
	"email":     {},
	"linkedin":  {},
	"mastodon":  {},
	"telegram":  {},
	"weibo":     {},
	"zhihu":     {},
	"bilibili":  {},
	"youtube":   {},
	"instagram": {},
	"facebook":  {},
	"discord":   {},
	"steam":     {},
}

// Defaults returns a copy of the template defaults.
func Defaults() Config {
	return defaultConfig.Clone()
}

// IsKnownSocialLink reports whether the renderer has an icon for name.
func IsKnownSocialLink(name string) bool {
	_, ok := knownSocialLinks[name]
	return ok
}
