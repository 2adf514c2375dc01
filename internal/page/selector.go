package page

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// compound is one selector step such as "h3.result" or "#linkForm".
type compound struct {
	tag     string
	id      string
	classes []string
}

// selector is a chain of compounds joined by the descendant combinator.
type selector []compound

func parseSelector(s string) (selector, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty selector")
	}
	sel := make(selector, 0, len(fields))
	for _, f := range fields {
		c, err := parseCompound(f)
		if err != nil {
			return nil, err
		}
		sel = append(sel, c)
	}
	return sel, nil
}

func parseCompound(s string) (compound, error) {
	var c compound
	i := strings.IndexAny(s, "#.")
	if i < 0 {
		c.tag = strings.ToLower(s)
		return c, nil
	}
	c.tag = strings.ToLower(s[:i])
	rest := s[i:]
	for rest != "" {
		kind := rest[0]
		rest = rest[1:]
		end := strings.IndexAny(rest, "#.")
		if end < 0 {
			end = len(rest)
		}
		name := rest[:end]
		rest = rest[end:]
		if name == "" {
			return c, fmt.Errorf("bad selector %q", s)
		}
		if kind == '#' {
			c.id = name
		} else {
			c.classes = append(c.classes, name)
		}
	}
	return c, nil
}

func (c compound) matches(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if c.tag != "" && c.tag != "*" && n.Data != c.tag {
		return false
	}
	if c.id != "" {
		if id, _ := attr(n, "id"); id != c.id {
			return false
		}
	}
	if len(c.classes) > 0 {
		class, _ := attr(n, "class")
		have := strings.Fields(class)
		for _, want := range c.classes {
			if !contains(have, want) {
				return false
			}
		}
	}
	return true
}

// matches checks n against the last compound and its ancestors below scope against the rest.
func (s selector) matches(n, scope *html.Node) bool {
	last := len(s) - 1
	if !s[last].matches(n) {
		return false
	}
	i := last - 1
	for p := n.Parent; p != nil && p != scope && i >= 0; p = p.Parent {
		if s[i].matches(p) {
			i--
		}
	}
	return i < 0
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
