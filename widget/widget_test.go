package widget

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ygrebnov/easyui"
)

func fixedID(id string) easyui.ComponentOption {
	return easyui.WithIDGenerator(func(string) string { return id })
}

// parse renders markup back into a node tree and returns the <body> element.
func parse(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse %q: %v", markup, err)
	}
	body := findAll(doc, atom.Body)
	if len(body) != 1 {
		t.Fatalf("expected one body in %q", markup)
	}
	return body[0]
}

func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == a {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// elementChildren returns the element children of n.
func elementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

func TestZeroValueWidgets(t *testing.T) {
	tests := []struct {
		name   string
		render func() (string, error)
		want   string
	}{
		{
			name: "panel",
			render: func() (string, error) {
				b, err := NewPanelBuilder(&Panel{})
				if err != nil {
					return "", err
				}
				return b.SetHTMLAttribute("id", "x").Collapsible(true).Content("body").ToHTMLString()
			},
			want: `<div id="x" class="easyui-panel" data-options="collapsible:true">body</div>`,
		},
		{
			name: "menu",
			render: func() (string, error) {
				b, err := NewMenuBuilder(&Menu{})
				if err != nil {
					return "", err
				}
				return b.HTMLAttributes(map[string]any{"id": "x"}).Item("New").ToHTMLString()
			},
			want: `<div id="x" class="easyui-menu"><div>New</div></div>`,
		},
		{
			name: "tabs",
			render: func() (string, error) {
				b, err := NewTabsBuilder(&Tabs{})
				if err != nil {
					return "", err
				}
				return b.Options(map[string]any{"fit": true}).Name("x").Tab("A", "a").ToHTMLString()
			},
			want: `<div id="x" class="easyui-tabs" data-options="fit:true"><div title="A">a</div></div>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.render()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("render =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}
