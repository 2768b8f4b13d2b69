package svg2config

import "encoding/xml"

// node is a generic XML element, deep enough to represent an SVG
// document without a dedicated schema: every element, its attributes,
// and its children are preserved, and ancestor pointers are set after
// parsing so color/class resolution can walk upward.
type node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Nodes   []*node    `xml:",any"`

	parent *node
}

// attr returns the value of the named attribute on this element, or
// ("", false) if absent. Namespace prefixes are ignored.
func (n *node) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// parseSVG parses raw SVG bytes into a node tree rooted at the <svg>
// element, linking parent pointers for ancestor walks.
func parseSVG(data []byte) (*node, error) {
	var root node
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	linkParents(&root, nil)
	return &root, nil
}

func linkParents(n *node, parent *node) {
	n.parent = parent
	for _, c := range n.Nodes {
		linkParents(c, n)
	}
}

// walk visits every element in the tree, including the root, in
// document order.
func (n *node) walk(fn func(*node)) {
	fn(n)
	for _, c := range n.Nodes {
		c.walk(fn)
	}
}

// findAll returns every element in the tree (including the root) whose
// local tag name matches.
func (n *node) findAll(tag string) []*node {
	var out []*node
	n.walk(func(m *node) {
		if m.XMLName.Local == tag {
			out = append(out, m)
		}
	})
	return out
}
