package site

import "slices"

// SidebarEntry is one node of the sidebar tree. It is either a Link or a Group.
type SidebarEntry interface {
	Label() string
	isSidebarEntry()
}

// Link is a sidebar leaf pointing at a page or an external URL.
type Link struct {
	Text string
	Link string
}

// Group is a labelled, optionally collapsed list of sidebar entries.
type Group struct {
	Text      string
	Collapsed bool
	Items     []SidebarEntry
}

func (l Link) Label() string  { return l.Text }
func (g Group) Label() string { return g.Text }

func (Link) isSidebarEntry()  {}
func (Group) isSidebarEntry() {}

// TopNavItem is an entry of a top navigation dropdown.
type TopNavItem struct {
	Text string `yaml:"text" json:"text"`
	Link string `yaml:"link" json:"link"`
}

// TopNavEntry is a top navigation element. Exactly one of Link and Items is set.
type TopNavEntry struct {
	Text  string
	Link  string
	Items []TopNavItem
}

// IsDropdown reports whether the entry renders as a dropdown.
func (e TopNavEntry) IsDropdown() bool { return len(e.Items) > 0 }

// SocialEntry pairs a recognised icon identifier with a profile URL.
type SocialEntry struct {
	Icon string `yaml:"icon" json:"icon"`
	Link string `yaml:"link" json:"link"`
}

// Metadata holds the site-wide settings.
type Metadata struct {
	Title    string
	Banner   string
	EditLink EditLink
}

// Document is the validated, immutable navigation document.
type Document struct {
	meta    Metadata
	version string
	sidebar []SidebarEntry
	topNav  []TopNavEntry
	socials []SocialEntry
}

// Metadata returns the site metadata.
func (d *Document) Metadata() Metadata { return d.meta }

// Version returns the version string the document was built with.
func (d *Document) Version() string { return d.version }

// Sidebar returns a deep copy of the sidebar tree.
func (d *Document) Sidebar() []SidebarEntry { return cloneEntries(d.sidebar) }

// TopNav returns a deep copy of the top navigation.
func (d *Document) TopNav() []TopNavEntry {
	out := make([]TopNavEntry, len(d.topNav))
	for i, e := range d.topNav {
		e.Items = slices.Clone(e.Items)
		out[i] = e
	}
	return out
}

// Socials returns a copy of the social links.
func (d *Document) Socials() []SocialEntry { return slices.Clone(d.socials) }

// EditURL returns the edit URL for a page path relative to the pages root.
func (d *Document) EditURL(docPath string) (string, error) {
	return d.meta.EditLink.URL(docPath)
}

// WalkFunc is called for every sidebar entry. parents holds the labels of the
// enclosing groups, outermost first.
type WalkFunc func(entry SidebarEntry, parents []string) error

// Walk visits the sidebar depth-first in declaration order. It stops at the
// first error returned by fn.
func (d *Document) Walk(fn WalkFunc) error {
	return walk(d.sidebar, nil, fn)
}

func walk(entries []SidebarEntry, parents []string, fn WalkFunc) error {
	for _, e := range entries {
		if err := fn(e, parents); err != nil {
			return err
		}
		if g, ok := e.(Group); ok {
			if err := walk(g.Items, append(slices.Clone(parents), g.Text), fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Links returns every site-relative target referenced by the sidebar and top
// navigation, in declaration order, without duplicates.
func (d *Document) Links() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(target string) {
		if !isInternal(target) {
			return
		}
		if _, ok := seen[target]; ok {
			return
		}
		seen[target] = struct{}{}
		out = append(out, target)
	}
	_ = d.Walk(func(e SidebarEntry, _ []string) error {
		if l, ok := e.(Link); ok {
			add(l.Link)
		}
		return nil
	})
	for _, e := range d.topNav {
		add(e.Link)
		for _, it := range e.Items {
			add(it.Link)
		}
	}
	return out
}

func cloneEntries(entries []SidebarEntry) []SidebarEntry {
	if entries == nil {
		return nil
	}
	out := make([]SidebarEntry, len(entries))
	for i, e := range entries {
		if g, ok := e.(Group); ok {
			g.Items = cloneEntries(g.Items)
			out[i] = g
			continue
		}
		out[i] = e
	}
	return out
}
