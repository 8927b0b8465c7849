// Package siteconfig models the blog's site configuration: the template
// defaults, the partial override this repository owns, and the merge that
// produces what the site generator consumes at build time.
package siteconfig
