package site

import (
	"encoding/json"
	"slices"
)

// Definition converts the document back to its declarative form, with every
// group's collapsed flag spelled out. Building the result again yields an
// equal document.
func (d *Document) Definition() Definition {
	def := Definition{
		Title:    d.meta.Title,
		Banner:   d.meta.Banner,
		EditLink: d.meta.EditLink,
		Sidebar:  sidebarItems(d.sidebar),
		Socials:  slices.Clone(d.socials),
	}
	for _, e := range d.topNav {
		def.TopNav = append(def.TopNav, TopNavDef{Text: e.Text, Link: e.Link, Items: slices.Clone(e.Items)})
	}
	return def
}

func sidebarItems(entries []SidebarEntry) []SidebarItem {
	out := make([]SidebarItem, 0, len(entries))
	for _, e := range entries {
		switch v := e.(type) {
		case Link:
			out = append(out, SidebarItem{Text: v.Text, Link: v.Link})
		case Group:
			out = append(out, SidebarItem{Text: v.Text, Collapsed: Bool(v.Collapsed), Items: sidebarItems(v.Items)})
		}
	}
	return out
}

// MarshalJSON renders the document in the shape static-site tools expect:
// title, banner, editLink, sidebar, topNav and socials at the top level.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Definition())
}
