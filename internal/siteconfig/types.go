package siteconfig

// Config is the fully merged configuration handed to the site generator.
type Config struct {
	Site SiteConfig `json:"site" yaml:"site" toml:"site"`
	Seo  SeoConfig  `json:"seo" yaml:"seo" toml:"seo"`
}

// SiteConfig describes the site identity shown in page headers and feeds.
type SiteConfig struct {
	Title       string       `json:"title" yaml:"title" toml:"title"`
	Subtitle    string       `json:"subtitle,omitempty" yaml:"subtitle,omitempty" toml:"subtitle,omitempty"`
	Author      string       `json:"author" yaml:"author" toml:"author"`
	Description string       `json:"description" yaml:"description" toml:"description"`
	Website     string       `json:"website" yaml:"website" toml:"website"`
	SocialLinks []SocialLink `json:"socialLinks" yaml:"socialLinks" toml:"socialLinks"`
}

// SocialLink is a single icon link. Slice order is display order.
type SocialLink struct {
	Name string `json:"name" yaml:"name" toml:"name" mapstructure:"name"`
	Href string `json:"href" yaml:"href" toml:"href" mapstructure:"href"`
}

// SeoConfig holds search and share metadata. An empty Twitter means unset.
type SeoConfig struct {
	Twitter string `json:"twitter" yaml:"twitter" toml:"twitter"`
}

// UserConfig is a partial override of Config. Nil fields fall back to the
// defaults during Merge.
type UserConfig struct {
	Site *UserSiteConfig `mapstructure:"site"`
	Seo  *UserSeoConfig  `mapstructure:"seo"`
}

// UserSiteConfig is the partial form of SiteConfig. A non-nil SocialLinks
// slice replaces the default links entirely, even when empty.
type UserSiteConfig struct {
	Title       *string      `mapstructure:"title"`
	Subtitle    *string      `mapstructure:"subtitle"`
	Author      *string      `mapstructure:"author"`
	Description *string      `mapstructure:"description"`
	Website     *string      `mapstructure:"website"`
	SocialLinks []SocialLink `mapstructure:"socialLinks"`
}

// UserSeoConfig is the partial form of SeoConfig.
type UserSeoConfig struct {
	Twitter *string `mapstructure:"twitter"`
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c
	out.Site.SocialLinks = cloneLinks(c.Site.SocialLinks)
	return out
}

func cloneLinks(src []SocialLink) []SocialLink {
	if src == nil {
		return nil
	}
	out := make([]SocialLink, len(src))
	copy(out, src)
	return out
}

// String returns a pointer to s, for building UserConfig literals.
func String(s string) *string {
	return &s
}
