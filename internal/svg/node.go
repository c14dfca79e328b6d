// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package svg

// Attr is a single element attribute. Attributes keep insertion order.
type Attr struct {
	Name  string
	Value string
}

// Node is an element of an in-memory SVG tree.
type Node struct {
	name     string
	attrs    []Attr
	children []*Node
	parent   *Node
}

// NewNode creates a detached element of the given kind, e.g. "g" or "path".
func NewNode(name string) *Node {
	return &Node{name: name}
}

func (n *Node) Name() string { return n.name }

func (n *Node) Parent() *Node { return n.parent }

// SetAttr sets or replaces the attribute and returns n for chaining.
func (n *Node) SetAttr(name, value string) *Node {

	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs[i].Value = value
			return n
		}
	}
	n.attrs = append(n.attrs, Attr{Name: name, Value: value})
	return n
}

func (n *Node) Attr(name string) (value string, found bool) {

	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs returns a copy of the attributes in insertion order.
func (n *Node) Attrs() []Attr {
	return append([]Attr(nil), n.attrs...)
}

// AppendChild attaches child as the last child of n, detaching it from any previous parent.
func (n *Node) AppendChild(child *Node) *Node {

	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// RemoveChild detaches child from n. It reports whether child was found.
func (n *Node) RemoveChild(child *Node) bool {

	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

func (n *Node) FirstChild() *Node {

	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

func (n *Node) ChildCount() int { return len(n.children) }

// Find returns the first descendant of n with the given element name, depth first.
func (n *Node) Find(name string) *Node {

	for _, c := range n.children {
		if c.name == name {
			return c
		}
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}
