package export

import (
	"fmt"
	"hash/fnv"
	"log/slog"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/navconfig/internal/site"
)

// weights leave room for theme-provided entries between groups.
const (
	weightStep       = 10
	socialWeightBase = 900
)

// Hugo maps doc onto a hextra-flavoured Hugo configuration fragment:
// top navigation and socials become menu.main, the sidebar becomes
// menu.sidebar, banner and edit link become params.
func Hugo(doc *site.Document, opts ...Option) map[string]any {
	o := newOptions(opts)
	meta := doc.Metadata()
	params := map[string]any{
		"editURL": hugoEditURL(meta.EditLink, o.logger),
	}
	if meta.Banner != "" {
		params["banner"] = map[string]any{
			"key":     bannerKey(meta.Banner),
			"message": meta.Banner,
		}
	}

	return map[string]any{
		"title":  meta.Title,
		"params": params,
		"menu": map[string]any{
			"main":    hugoMain(doc),
			"sidebar": hugoSidebar(doc.Sidebar(), "", "sidebar"),
		},
	}
}

func hugoEditURL(e site.EditLink, logger *slog.Logger) map[string]any {
	base, suffix, _ := strings.Cut(e.Pattern, site.PathPlaceholder)
	if suffix != "" {
		// hextra appends the page path to base; anything after the
		// placeholder cannot be expressed.
		logger.Warn("Edit link pattern has text after the placeholder, disabling Hugo edit links",
			slog.String("pattern", e.Pattern))
		return map[string]any{"enable": false}
	}
	return map[string]any{"enable": true, "base": strings.TrimSuffix(base, "/"), "text": e.Text}
}

func hugoMain(doc *site.Document) []map[string]any {
	var entries []map[string]any
	for i, e := range doc.TopNav() {
		id := fmt.Sprintf("nav-%d", i)
		entry := map[string]any{
			"identifier": id,
			"name":       e.Text,
			"weight":     (i + 1) * weightStep,
		}
		if e.Link != "" {
			entry["url"] = e.Link
		}
		entries = append(entries, entry)
		for j, it := range e.Items {
			entries = append(entries, map[string]any{
				"identifier": fmt.Sprintf("%s-%d", id, j),
				"parent":     id,
				"name":       it.Text,
				"url":        it.Link,
				"weight":     (j + 1) * weightStep,
			})
		}
	}
	for i, s := range doc.Socials() {
		entries = append(entries, map[string]any{
			"identifier": "social-" + s.Icon,
			"name":       socialName(s.Icon),
			"url":        s.Link,
			"weight":     socialWeightBase + i,
			"params":     map[string]any{"icon": s.Icon},
		})
	}
	return entries
}

func hugoSidebar(entries []site.SidebarEntry, parent, prefix string) []map[string]any {
	var out []map[string]any
	for i, e := range entries {
		id := fmt.Sprintf("%s-%d", prefix, i)
		entry := map[string]any{
			"identifier": id,
			"name":       e.Label(),
			"weight":     (i + 1) * weightStep,
		}
		if parent != "" {
			entry["parent"] = parent
		}
		switch v := e.(type) {
		case site.Link:
			entry["url"] = v.Link
			out = append(out, entry)
		case site.Group:
			entry["params"] = map[string]any{"collapsed": v.Collapsed}
			out = append(out, entry)
			out = append(out, hugoSidebar(v.Items, id, id)...)
		}
	}
	return out
}

func socialName(icon string) string {
	switch icon {
	case "x":
		return "X"
	case "github":
		return "GitHub"
	}
	if icon == "" {
		return icon
	}
	return strings.ToUpper(icon[:1]) + icon[1:]
}

// bannerKey changes whenever the message changes.
func bannerKey(message string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(message))
	return "banner-" + strconv.FormatUint(uint64(h.Sum32()), 16)
}
