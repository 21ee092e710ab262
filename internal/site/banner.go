package site

import (
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// BannerLinks returns the link destinations found in banner markdown,
// including reference definitions, in document order without duplicates.
func BannerLinks(banner string) []string {
	if banner == "" {
		return nil
	}
	src := []byte(banner)
	ctx := parser.NewContext()
	root := goldmark.New().Parser().Parse(text.NewReader(src), parser.WithContext(ctx))

	var links []string
	seen := make(map[string]struct{})
	add := func(dest string) {
		if _, ok := seen[dest]; ok {
			return
		}
		seen[dest] = struct{}{}
		links = append(links, dest)
	}
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Link:
			add(string(node.Destination))
		case *gmast.AutoLink:
			add(string(node.URL(src)))
		}
		return gmast.WalkContinue, nil
	})
	for _, ref := range ctx.References() {
		add(string(ref.Destination()))
	}
	return links
}
