// Package page holds an HTML document in memory and exposes the element operations the shortify
// frontend needs: selector lookup, text and value access, visibility and form serialization.
package page

import (
	"io"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed page. All element access goes through the document lock.
type Document struct {
	mu   sync.Mutex
	root *html.Node
	url  *url.URL
}

// Parse reads an HTML page; base is the address the page was loaded from and may be nil.
func Parse(r io.Reader, base *url.URL) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	if base == nil {
		base = &url.URL{}
	}
	return &Document{root: root, url: base}, nil
}

// URL returns the address the document was loaded from.
func (d *Document) URL() *url.URL {
	return d.url
}

// QuerySelector returns the first element matching sel in document order, or nil.
func (d *Document) QuerySelector(sel string) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.find(d.root, sel)
}

// Render writes the current state of the document.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return html.Render(w, d.root)
}

func (d *Document) find(scope *html.Node, sel string) *Element {
	s, err := parseSelector(sel)
	if err != nil {
		return nil
	}
	var found *html.Node
	walk(scope, func(n *html.Node) bool {
		if n != scope && s.matches(n, scope) {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil
	}
	return &Element{doc: d, node: found}
}

// walk visits n and its descendants depth-first until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

// Element is a reference to one element node of a Document.
type Element struct {
	doc  *Document
	node *html.Node
}

// Tag returns the lower-case element name.
func (e *Element) Tag() string {
	return e.node.Data
}

// QuerySelector looks for a descendant of e.
func (e *Element) QuerySelector(sel string) *Element {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.doc.find(e.node, sel)
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(key string) (string, bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return attr(e.node, key)
}

// SetAttr sets or adds the named attribute.
func (e *Element) SetAttr(key, val string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	setAttr(e.node, key, val)
}

// Value returns the current value of a form control.
func (e *Element) Value() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return controlValue(e.node)
}

// SetValue changes the value of a form control.
func (e *Element) SetValue(v string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	if e.node.DataAtom == atom.Textarea {
		replaceChildren(e.node, v)
		return
	}
	setAttr(e.node, "value", v)
}

// Text returns the text content of the element.
func (e *Element) Text() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return textContent(e.node)
}

// SetText replaces the children of the element with a single text node.
func (e *Element) SetText(s string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	replaceChildren(e.node, s)
}

// Show sets the display style to block.
func (e *Element) Show() {
	e.setDisplay("block")
}

// Hide sets the display style to none.
func (e *Element) Hide() {
	e.setDisplay("none")
}

// Visible reports whether the element's own display style is not none.
func (e *Element) Visible() bool {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	style, _ := attr(e.node, "style")
	display, _ := styleProperty(style, "display")
	return display != "none"
}

func (e *Element) setDisplay(v string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	style, _ := attr(e.node, "style")
	setAttr(e.node, "style", setStyleProperty(style, "display", v))
}

// Action returns the form destination resolved against the document URL.
func (e *Element) Action() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	action, _ := attr(e.node, "action")
	ref, err := url.Parse(strings.TrimSpace(action))
	if err != nil {
		return e.doc.url.String()
	}
	return e.doc.url.ResolveReference(ref).String()
}

// Method returns the upper-case form method; GET when missing or unknown.
func (e *Element) Method() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	method, _ := attr(e.node, "method")
	if strings.EqualFold(strings.TrimSpace(method), "post") {
		return "POST"
	}
	return "GET"
}

// Values collects the named, enabled controls of a form the way a browser would submit them.
func (e *Element) Values() url.Values {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	values := url.Values{}
	walk(e.node, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		name, ok := attr(n, "name")
		if !ok || name == "" {
			return true
		}
		if _, disabled := attr(n, "disabled"); disabled {
			return true
		}
		switch n.DataAtom {
		case atom.Input:
			typ, _ := attr(n, "type")
			switch strings.ToLower(typ) {
			case "submit", "button", "reset", "file", "image":
				return true
			case "checkbox", "radio":
				if _, checked := attr(n, "checked"); !checked {
					return true
				}
				if v, ok := attr(n, "value"); ok {
					values.Add(name, v)
				} else {
					values.Add(name, "on")
				}
				return true
			}
			values.Add(name, controlValue(n))
		case atom.Textarea:
			values.Add(name, textContent(n))
		case atom.Select:
			if v, ok := selectedOption(n); ok {
				values.Add(name, v)
			}
		}
		return true
	})
	return values
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func controlValue(n *html.Node) string {
	if n.DataAtom == atom.Textarea {
		return textContent(n)
	}
	v, _ := attr(n, "value")
	return v
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		return true
	})
	return sb.String()
}

func replaceChildren(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

func selectedOption(sel *html.Node) (string, bool) {
	var first, selected *html.Node
	walk(sel, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.DataAtom != atom.Option {
			return true
		}
		if first == nil {
			first = n
		}
		if _, ok := attr(n, "selected"); ok {
			selected = n
			return false
		}
		return true
	})
	if selected == nil {
		selected = first
	}
	if selected == nil {
		return "", false
	}
	if v, ok := attr(selected, "value"); ok {
		return v, true
	}
	return strings.TrimSpace(textContent(selected)), true
}
