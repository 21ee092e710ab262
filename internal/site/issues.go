package site

import (
	"fmt"
	"net/url"
	"strings"

	ferrors "git.home.luguber.info/inful/navconfig/internal/foundation/errors"
)

// Issue is a single validation problem at a location such as
// "sidebar[2].items[0].link".
type Issue struct {
	Location string
	Message  string
}

func (i Issue) String() string {
	if i.Location == "" {
		return i.Message
	}
	return i.Location + ": " + i.Message
}

// ValidationError reports every problem found while building a Document.
// It unwraps to a ClassifiedError of category validation.
type ValidationError struct {
	Issues     []Issue
	classified *ferrors.ClassifiedError
}

func newValidationError(issues []Issue) *ValidationError {
	locations := make([]string, len(issues))
	for i, is := range issues {
		locations[i] = is.Location
	}
	return &ValidationError{
		Issues: issues,
		classified: ferrors.ValidationError("invalid site navigation").
			WithContext("issues", len(issues)).
			WithContext("locations", locations).
			Build(),
	}
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid site navigation: %d issue(s)", len(e.Issues))
	for _, is := range e.Issues {
		b.WriteString("\n  - ")
		b.WriteString(is.String())
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return e.classified }

// HasIssueAt reports whether an issue was recorded at location.
func (e *ValidationError) HasIssueAt(location string) bool {
	for _, is := range e.Issues {
		if is.Location == location {
			return true
		}
	}
	return false
}

type collector struct {
	issues []Issue
}

func (c *collector) add(location, format string, args ...any) {
	c.issues = append(c.issues, Issue{Location: location, Message: fmt.Sprintf(format, args...)})
}

func (c *collector) err() error {
	if len(c.issues) == 0 {
		return nil
	}
	return newValidationError(c.issues)
}

// checkTarget validates a navigation target: a site-rooted path or an
// absolute http(s) URL.
func checkTarget(target string) error {
	if target == "" {
		return fmt.Errorf("target is empty")
	}
	if isInternal(target) {
		return nil
	}
	if strings.HasPrefix(target, "/") {
		return fmt.Errorf("protocol-relative target %q is not allowed", target)
	}
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("target %q is not a valid URL: %w", target, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("target %q must start with \"/\" or be an http(s) URL", target)
	}
	if u.Host == "" {
		return fmt.Errorf("target %q has no host", target)
	}
	return nil
}

func isInternal(target string) bool {
	return strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//")
}
