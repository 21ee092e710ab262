package site

// Definition is the declarative input to Build. Field names follow the
// keys used in definition files.
type Definition struct {
	Title    string        `yaml:"title" json:"title"`
	Banner   string        `yaml:"banner,omitempty" json:"banner,omitempty"`
	EditLink EditLink      `yaml:"editLink" json:"editLink"`
	Sidebar  []SidebarItem `yaml:"sidebar" json:"sidebar"`
	TopNav   []TopNavDef   `yaml:"topNav,omitempty" json:"topNav,omitempty"`
	Socials  []SocialEntry `yaml:"socials,omitempty" json:"socials,omitempty"`
}

// SidebarItem is the loosely typed form of a sidebar entry. An item with
// Items is a group; an item with only Link is a link.
type SidebarItem struct {
	Text      string        `yaml:"text" json:"text"`
	Link      string        `yaml:"link,omitempty" json:"link,omitempty"`
	Collapsed *bool         `yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
	Items     []SidebarItem `yaml:"items,omitempty" json:"items,omitempty"`
}

// IsGroup reports whether the item declares children.
func (s SidebarItem) IsGroup() bool { return s.Items != nil }

// TopNavDef is the loosely typed form of a top navigation entry.
type TopNavDef struct {
	Text  string       `yaml:"text" json:"text"`
	Link  string       `yaml:"link,omitempty" json:"link,omitempty"`
	Items []TopNavItem `yaml:"items,omitempty" json:"items,omitempty"`
}

// Bool returns a pointer to b, for Collapsed literals.
func Bool(b bool) *bool { return &b }
