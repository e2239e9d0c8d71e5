// Package application provides application initialization and dependency wiring.
// It builds the section registry, seeds the override store from configuration,
// and creates handlers, routers and the HTTP server, keeping the main package
// focused on CLI parsing and orchestration.
package application
