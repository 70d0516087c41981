package htmldoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML document plus the raw source it was parsed from.
// It is valid for the duration of one reconciliation call; callers must not
// retain it.
type Document struct {
	source  string
	doc     *goquery.Document
	hasHead bool
}

// Script is a non-owning handle to a script element carrying a src attribute.
type Script struct {
	sel *goquery.Selection
}

// Parse builds a Document from raw markup.
func Parse(markup string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	return &Document{
		source:  markup,
		doc:     doc,
		hasHead: sourceDeclaresHead(markup),
	}, nil
}

// Source returns the raw markup the document was parsed from, untouched.
func (d *Document) Source() string {
	return d.source
}

// HasHead reports whether the source markup itself declared a <head> element.
func (d *Document) HasHead() bool {
	return d.hasHead
}

// Scripts returns all script elements with a src attribute, in document order.
func (d *Document) Scripts() []*Script {
	var scripts []*Script
	d.doc.Find("script[src]").Each(func(_ int, s *goquery.Selection) {
		scripts = append(scripts, &Script{sel: s})
	})
	return scripts
}

// Src returns the script's src attribute value.
func (s *Script) Src() string {
	return s.sel.AttrOr("src", "")
}

// SetSrc rewrites the script's src attribute, leaving other attributes alone.
func (s *Script) SetSrc(url string) {
	s.sel.SetAttr("src", url)
}

// FindHeadComment searches the head element depth-first for a comment whose
// trimmed text equals token (case-sensitive). Returns nil when absent.
func (d *Document) FindHeadComment(token string) *html.Node {
	head := d.headNode()
	if head == nil {
		return nil
	}

	var found *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.CommentNode && strings.TrimSpace(n.Data) == token {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(head)

	return found
}

// ReplaceNode swaps old for repl within old's parent.
func (d *Document) ReplaceNode(old, repl *html.Node) {
	parent := old.Parent
	if parent == nil {
		return
	}
	parent.InsertBefore(repl, old)
	parent.RemoveChild(old)
}

// InsertHeadFirst inserts n as the first child of the head element.
// It reports false when the parsed tree has no head to insert into.
func (d *Document) InsertHeadFirst(n *html.Node) bool {
	head := d.headNode()
	if head == nil {
		return false
	}

	if head.FirstChild != nil {
		head.InsertBefore(n, head.FirstChild)
	} else {
		head.AppendChild(n)
	}
	return true
}

// Render serializes the document tree back to markup.
func (d *Document) Render() (string, error) {
	var buf bytes.Buffer
	for _, n := range d.doc.Selection.Nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("render markup: %w", err)
		}
	}
	return buf.String(), nil
}

// ScriptNode builds a detached <script src=...></script> element.
func ScriptNode(src string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     "script",
		DataAtom: atom.Script,
		Attr:     []html.Attribute{{Key: "src", Val: src}},
	}
}

func (d *Document) headNode() *html.Node {
	sel := d.doc.Find("head")
	if len(sel.Nodes) == 0 {
		return nil
	}
	return sel.Nodes[0]
}

// sourceDeclaresHead tokenizes raw markup looking for an explicit head tag.
func sourceDeclaresHead(markup string) bool {
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if atom.Lookup(name) == atom.Head {
				return true
			}
		}
	}
}
