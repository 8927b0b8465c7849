package siteconfig

import "errors"

var (
	// ErrMissingField is returned when a required field is empty after merging.
	ErrMissingField = errors.New("required field is empty")
	// ErrInvalidURL is returned when the website or a social link href is not a usable URL.
	ErrInvalidURL = errors.New("invalid URL")
	// ErrUnknownSocialLink is returned when a social link name has no matching icon in the renderer.
	ErrUnknownSocialLink = errors.New("unknown social link name")
)
