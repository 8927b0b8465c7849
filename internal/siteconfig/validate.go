package siteconfig

import (
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/multierr"
)

// Validate checks cfg against the generator's schema and returns every
// violation found, combined with multierr.
func Validate(cfg Config) error {
	var errs error

	site := cfg.Site
	for _, f := range []struct {
		name  string
		value string
	}{
		{"site.title", site.Title},
		{"site.author", site.Author},
		{"site.description", site.Description},
		{"site.website", site.Website},
	} {
		if isBlank(f.value) {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", f.name, ErrMissingField))
		}
	}

	if !isBlank(site.Website) && !isAbsoluteURL(site.Website) {
		errs = multierr.Append(errs, fmt.Errorf("site.website %q: %w", site.Website, ErrInvalidURL))
	}

	for i, link := range site.SocialLinks {
		field := fmt.Sprintf("site.socialLinks[%d]", i)
		if isBlank(link.Name) {
			errs = multierr.Append(errs, fmt.Errorf("%s.name: %w", field, ErrMissingField))
		} else if !IsKnownSocialLink(link.Name) {
			errs = multierr.Append(errs, fmt.Errorf("%s.name %q: %w", field, link.Name, ErrUnknownSocialLink))
		}

		if isBlank(link.Href) {
			errs = multierr.Append(errs, fmt.Errorf("%s.href: %w", field, ErrMissingField))
		} else if !isLinkTarget(link.Href) {
			errs = multierr.Append(errs, fmt.Errorf("%s.href %q: %w", field, link.Href, ErrInvalidURL))
		}
	}

	return errs
}

// Violations splits an error returned by Validate into individual violations.
func Violations(err error) []error {
	return multierr.Errors(err)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func isLinkTarget(href string) bool {
	if HasBasePathToken(href) {
		return true
	}
	if strings.HasPrefix(href, "mailto:") {
		return len(href) > len("mailto:")
	}
	if strings.HasPrefix(href, "/") {
		_, err := url.Parse(href)
		return err == nil
	}
	return isAbsoluteURL(href)
}
