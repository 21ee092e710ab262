// Package site builds and validates the navigation document of a
// documentation site: metadata, sidebar tree, top navigation and social
// links.
//
// A Document is produced once by Build from a declarative Definition and is
// never mutated afterwards, so it can be shared freely between goroutines.
// Build either returns a complete Document or a *ValidationError listing
// every problem found; there are no partial results.
package site
