package site

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// PathPlaceholder is replaced with the page path relative to the pages root.
const PathPlaceholder = ":path"

// DefaultEditLinkText is used when a definition leaves the edit link text empty.
const DefaultEditLinkText = "Suggest changes to this page"

var placeholderPattern = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`)

// sample used to check that a substituted pattern is still a URL.
const samplePagePath = "guide/example.md"

// EditLink describes how to build "edit this page" URLs.
type EditLink struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	Text    string `yaml:"text,omitempty" json:"text,omitempty"`
}

// Validate checks that the pattern is an absolute http(s) URL whose path
// contains exactly one well-formed :path placeholder. Colons outside the
// path (userinfo, port, query, fragment) are not placeholders.
func (e EditLink) Validate() error {
	sample, err := e.expand(samplePagePath)
	if err != nil {
		return err
	}
	if u, err := url.Parse(sample); err != nil || u.Host == "" {
		return fmt.Errorf("pattern %q does not produce a valid URL", e.Pattern)
	}
	return nil
}

// parse validates the pattern and returns it with the placeholder still in
// its escaped path.
func (e EditLink) parse() (*url.URL, error) {
	if e.Pattern == "" {
		return nil, fmt.Errorf("pattern is empty")
	}
	u, err := url.Parse(e.Pattern)
	if err != nil {
		return nil, fmt.Errorf("pattern %q is not a valid URL: %w", e.Pattern, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("pattern %q must produce an absolute http(s) URL", e.Pattern)
	}

	count := 0
	for _, m := range placeholderPattern.FindAllStringSubmatch(u.EscapedPath(), -1) {
		if m[1] != "path" {
			return nil, fmt.Errorf("unknown placeholder %q in pattern %q", m[0], e.Pattern)
		}
		count++
	}
	switch {
	case count == 0:
		return nil, fmt.Errorf("pattern %q has no %s placeholder in its path", e.Pattern, PathPlaceholder)
	case count > 1:
		return nil, fmt.Errorf("pattern %q has %d %s placeholders, expected exactly one", e.Pattern, count, PathPlaceholder)
	}
	return u, nil
}

// URL substitutes docPath into the pattern. Each segment of docPath is
// path-escaped, so characters such as '?' and '#' stay part of the file name.
func (e EditLink) URL(docPath string) (string, error) {
	out, err := e.expand(docPath)
	if err != nil {
		return "", fmt.Errorf("edit link: %w", err)
	}
	return out, nil
}

func (e EditLink) expand(docPath string) (string, error) {
	u, err := e.parse()
	if err != nil {
		return "", err
	}
	docPath = strings.TrimPrefix(strings.TrimPrefix(docPath, "./"), "/")
	if docPath == "" {
		return "", fmt.Errorf("page path is empty")
	}

	segments := strings.Split(docPath, "/")
	for i, seg := range segments {
		if seg == "" || seg == "." || seg == ".." {
			return "", fmt.Errorf("page path %q has an empty or relative segment", docPath)
		}
		segments[i] = url.PathEscape(seg)
	}

	rawPath := strings.Replace(u.EscapedPath(), PathPlaceholder, strings.Join(segments, "/"), 1)
	path, err := url.PathUnescape(rawPath)
	if err != nil {
		return "", err
	}
	u.Path, u.RawPath = path, rawPath
	return u.String(), nil
}
