// Markup queries over a rendered page.
// XPath via htmlquery, CSS via goquery/cascadia, both on the same node tree.

package selector

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
)

type Selector struct {
	raw   string
	xpath *xpath.Expr
	css   bool
}

// Compile parses raw as XPath when it starts with "/" or "(", otherwise as CSS.
func Compile(raw string) (Selector, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Selector{}, fmt.Errorf("empty selector")
	}

	if IsXPath(raw) {
		expr, err := xpath.Compile(raw)
		if err != nil {
			return Selector{}, fmt.Errorf("invalid xpath %q: %w", raw, err)
		}
		return Selector{raw: raw, xpath: expr}, nil
	}

	if _, err := cascadia.Compile(raw); err != nil {
		return Selector{}, fmt.Errorf("invalid css selector %q: %w", raw, err)
	}
	return Selector{raw: raw, css: true}, nil
}

// MustCompile is Compile for selectors known at build time.
func MustCompile(raw string) Selector {
	s, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return s
}

func IsXPath(raw string) bool {
	return strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "(")
}

func (s Selector) String() string {
	return s.raw
}

// Document is one parsed page.
type Document struct {
	root *html.Node
}

func Parse(r io.Reader) (*Document, error) {
	root, err := htmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{root: root}, nil
}

func (d *Document) nodes(s Selector) []*html.Node {
	switch {
	case s.xpath != nil:
		return htmlquery.QuerySelectorAll(d.root, s.xpath)
	case s.css:
		return goquery.NewDocumentFromNode(d.root).Find(s.raw).Nodes
	}
	return nil
}

// Texts returns the own text of every match in document order.
// A text() match yields the text node itself; an element match yields its
// direct text children only, so nested badges or ratings are left out.
func (d *Document) Texts(s Selector) []string {
	nodes := d.nodes(s)
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, ownText(n))
	}
	return out
}

// First returns the first match whose text is not blank.
func (d *Document) First(s Selector) (string, bool) {
	for _, text := range d.Texts(s) {
		if strings.TrimSpace(text) != "" {
			return text, true
		}
	}
	return "", false
}

func ownText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

// Attrs returns attribute name of every match that carries it.
func (d *Document) Attrs(s Selector, name string) []string {
	var out []string
	for _, n := range d.nodes(s) {
		for _, a := range n.Attr {
			if a.Key == name {
				out = append(out, a.Val)
				break
			}
		}
	}
	return out
}
