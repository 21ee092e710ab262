package site

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Walk(t *testing.T) {
	doc, err := Build(fixtureDefinition(), WithVersion("v1"))
	require.NoError(t, err)

	var visited []string
	err = doc.Walk(func(e SidebarEntry, parents []string) error {
		visited = append(visited, strings.Join(append(parents, e.Label()), "/"))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Getting Started",
		"Concept",
		"Contracts",
		"Contracts/Base",
		"Contracts/Base/BasexERC20",
		"Contracts/Kit",
		"Contracts/Kit/KitxERC20",
		"Contracts/Kit/ERC20xTransferWithAuthorize",
		"Contracts/Kit/ERC20WrappedxWithAuthorize",
		"Privacy & Terms",
	}, visited)

	stop := errors.New("stop")
	count := 0
	err = doc.Walk(func(SidebarEntry, []string) error {
		count++
		if count == 2 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, count)
}

func TestDocument_Links(t *testing.T) {
	doc, err := Build(fixtureDefinition(), WithVersion("v1"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/getting-started",
		"/concept",
		"/contracts/base/BasexERC20",
		"/contracts/kit/KitxERC20",
		"/contracts/kit/ERC20xTransferWithAuthorize",
		"/contracts/kit/ERC20WrappedxWithAuthorize",
		"/privacy-terms",
		"/getting-started#quick-start",
	}, doc.Links())
}

func TestDocument_AccessorsReturnCopies(t *testing.T) {
	doc, err := Build(fixtureDefinition(), WithVersion("v1"))
	require.NoError(t, err)

	sidebar := doc.Sidebar()
	sidebar[0] = Link{Text: "changed", Link: "/changed"}
	contracts := sidebar[2].(Group)
	contracts.Items[0] = Link{Text: "changed", Link: "/changed"}

	nav := doc.TopNav()
	nav[2].Items[0].Text = "changed"
	socials := doc.Socials()
	socials[0].Icon = "changed"

	assert.Equal(t, "Getting Started", doc.Sidebar()[0].Label())
	assert.Equal(t, "Base", doc.Sidebar()[2].(Group).Items[0].Label())
	assert.Equal(t, "Changelog", doc.TopNav()[2].Items[0].Text)
	assert.Equal(t, "x", doc.Socials()[0].Icon)
}

func TestDocument_MarshalJSON(t *testing.T) {
	def := fixtureDefinition()
	def.Sidebar = def.Sidebar[2:3]
	def.Sidebar[0].Items = def.Sidebar[0].Items[:1]
	def.TopNav = def.TopNav[:1]
	def.Socials = def.Socials[:1]
	doc, err := Build(def, WithVersion("v1"))
	require.NoError(t, err)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"title": "isol",
		"banner": "isol is open-source software. See [Privacy & Terms](/privacy-terms) for details.",
		"editLink": {"pattern": "`+editPattern+`", "text": "Suggest changes to this page"},
		"sidebar": [
			{"text": "Contracts", "collapsed": false, "items": [
				{"text": "Base", "collapsed": false, "items": [
					{"text": "BasexERC20", "link": "/contracts/base/BasexERC20"}
				]}
			]}
		],
		"topNav": [{"text": "Quick Start", "link": "/getting-started#quick-start"}],
		"socials": [{"icon": "x", "link": "https://x.com/thefactlab_org"}]
	}`, string(data))
}
