package siteconfig

// Merge layers override on top of defaults. Set override fields are copied
// verbatim; nil fields keep the default value. Neither argument is modified.
func Merge(defaults Config, override UserConfig) Config {
	out := defaults.Clone()

	if s := override.Site; s != nil {
		applyString(&out.Site.Title, s.Title)
		applyString(&out.Site.Subtitle, s.Subtitle)
		applyString(&out.Site.Author, s.Author)
		applyString(&out.Site.Description, s.Description)
		applyString(&out.Site.Website, s.Website)

		if s.SocialLinks != nil {
			out.Site.SocialLinks = cloneLinks(s.SocialLinks)
		}
	}

	if seo := override.Seo; seo != nil {
		applyString(&out.Seo.Twitter, seo.Twitter)
	}

	return out
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
