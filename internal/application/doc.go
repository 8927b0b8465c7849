// Package application provides application initialization and dependency wiring.
// It resolves the site configuration from the built-in or file-based override
// and builds the snapshot store, handlers, router and HTTP server, keeping the
// main package focused on CLI parsing and orchestration.
package application
