package site

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/unicode/norm"

	"git.home.luguber.info/inful/navconfig/internal/foundation/normalization"
	"git.home.luguber.info/inful/navconfig/internal/logfields"
)

// VersionToken in a top navigation label is replaced with the build version.
const VersionToken = "{{version}}"

// ConventionalMaxDepth is the sidebar level, counting top-level entries as 1,
// above which Build logs a warning.
const ConventionalMaxDepth = 3

type buildOptions struct {
	version string
	icons   *normalization.Normalizer[string]
	logger  *slog.Logger
}

// Option customises Build.
type Option func(*buildOptions)

// WithVersion supplies the version string shown in the top navigation.
func WithVersion(v string) Option {
	return func(o *buildOptions) { o.version = strings.TrimSpace(v) }
}

// WithAllowedIcons replaces the social icon allow-list.
func WithAllowedIcons(icons ...string) Option {
	return func(o *buildOptions) { o.icons = iconSet(icons) }
}

// WithLogger sets the logger used for non-fatal warnings.
func WithLogger(l *slog.Logger) Option {
	return func(o *buildOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Build validates def and returns the immutable Document. On failure the
// error is a *ValidationError listing every issue.
func Build(def Definition, opts ...Option) (*Document, error) {
	o := buildOptions{
		icons:  iconSet(DefaultIcons()),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	b := &builder{opts: o}
	doc := &Document{
		version: o.version,
		meta:    b.metadata(def),
		sidebar: b.sidebar(def.Sidebar, "sidebar", 1),
		topNav:  b.topNav(def.TopNav),
		socials: b.socials(def.Socials),
	}
	if err := b.issues.err(); err != nil {
		return nil, err
	}
	return doc, nil
}

type builder struct {
	opts   buildOptions
	issues collector
}

func label(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func (b *builder) metadata(def Definition) Metadata {
	m := Metadata{
		Title:  label(def.Title),
		Banner: strings.TrimSpace(def.Banner),
		EditLink: EditLink{
			Pattern: strings.TrimSpace(def.EditLink.Pattern),
			Text:    label(def.EditLink.Text),
		},
	}
	if m.Title == "" {
		b.issues.add("title", "title is empty")
	}
	if m.EditLink.Text == "" {
		m.EditLink.Text = DefaultEditLinkText
	}
	if err := m.EditLink.Validate(); err != nil {
		b.issues.add("editLink.pattern", "%v", err)
	}
	for i, dest := range BannerLinks(m.Banner) {
		if err := checkTarget(dest); err != nil {
			b.issues.add(fmt.Sprintf("banner.links[%d]", i), "%v", err)
		}
	}
	return m
}

func (b *builder) sidebar(items []SidebarItem, at string, depth int) []SidebarEntry {
	out := make([]SidebarEntry, 0, len(items))
	for i, it := range items {
		loc := fmt.Sprintf("%s[%d]", at, i)
		text := label(it.Text)
		if text == "" {
			b.issues.add(loc+".text", "label is empty")
		}
		// Entries below the first too-deep level are covered by its warning.
		if depth == ConventionalMaxDepth+1 {
			b.opts.logger.Warn("Sidebar nesting deeper than conventional",
				logfields.Location(loc), slog.Int("depth", depth))
		}

		if !it.IsGroup() {
			if it.Collapsed != nil {
				b.issues.add(loc+".collapsed", "collapsed is only valid on groups")
			}
			target := strings.TrimSpace(it.Link)
			if err := checkTarget(target); err != nil {
				b.issues.add(loc+".link", "%v", err)
			}
			out = append(out, Link{Text: text, Link: target})
			continue
		}

		if it.Link != "" {
			b.issues.add(loc, "entry has both link and items")
		}
		if len(it.Items) == 0 {
			b.issues.add(loc+".items", "group has no items")
		}
		g := Group{Text: text, Items: b.sidebar(it.Items, loc+".items", depth+1)}
		if it.Collapsed != nil {
			g.Collapsed = *it.Collapsed
		}
		out = append(out, g)
	}
	return out
}

func (b *builder) topNav(defs []TopNavDef) []TopNavEntry {
	out := make([]TopNavEntry, 0, len(defs))
	for i, d := range defs {
		loc := fmt.Sprintf("topNav[%d]", i)
		e := TopNavEntry{
			Text: b.expandVersion(loc+".text", label(d.Text)),
			Link: strings.TrimSpace(d.Link),
		}
		if e.Text == "" {
			b.issues.add(loc+".text", "label is empty")
		}
		switch {
		case e.Link != "" && len(d.Items) > 0:
			b.issues.add(loc, "entry has both link and items")
		case e.Link == "" && len(d.Items) == 0:
			b.issues.add(loc, "entry needs a link or items")
		case e.Link != "":
			if err := checkTarget(e.Link); err != nil {
				b.issues.add(loc+".link", "%v", err)
			}
		}
		for j, it := range d.Items {
			iloc := fmt.Sprintf("%s.items[%d]", loc, j)
			item := TopNavItem{Text: label(it.Text), Link: strings.TrimSpace(it.Link)}
			if item.Text == "" {
				b.issues.add(iloc+".text", "label is empty")
			}
			if err := checkTarget(item.Link); err != nil {
				b.issues.add(iloc+".link", "%v", err)
			}
			e.Items = append(e.Items, item)
		}
		out = append(out, e)
	}
	return out
}

func (b *builder) expandVersion(loc, text string) string {
	if !strings.Contains(text, VersionToken) {
		return text
	}
	if b.opts.version == "" {
		b.issues.add(loc, "label uses %s but no version was supplied", VersionToken)
		return text
	}
	return strings.ReplaceAll(text, VersionToken, b.opts.version)
}

func (b *builder) socials(entries []SocialEntry) []SocialEntry {
	out := make([]SocialEntry, 0, len(entries))
	for i, s := range entries {
		loc := fmt.Sprintf("socials[%d]", i)
		icon, err := b.opts.icons.NormalizeWithError(s.Icon)
		if err != nil {
			b.issues.add(loc+".icon", "%v", err)
		}
		link := strings.TrimSpace(s.Link)
		if err := checkTarget(link); err != nil {
			b.issues.add(loc+".link", "%v", err)
		} else if isInternal(link) {
			b.issues.add(loc+".link", "social link %q must be an absolute URL", link)
		}
		out = append(out, SocialEntry{Icon: icon, Link: link})
	}
	return out
}
