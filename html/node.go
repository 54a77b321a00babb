// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// Modifications:
//  - Node reduced to the Document/Element/Text subset built by this parser.
//  - Elements carry a derived ElementKind and source-ordered attributes.

package html

// A NodeType is the type of a Node.
type NodeType int

const (
	DocumentNode NodeType = iota
	ElementNode
	TextNode
)

// String returns a string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case DocumentNode:
		return "DocumentNode"
	case ElementNode:
		return "ElementNode"
	case TextNode:
		return "TextNode"
	}
	return "InvalidNode"
}

// A Node is a node in the document tree. Children form a singly linked chain
// rooted at FirstChild; LastChild is maintained by AppendChild and is always
// reachable by walking NextSibling from FirstChild.
type Node struct {
	Parent, FirstChild, LastChild, PrevSibling, NextSibling *Node

	Type NodeType

	// Data is the text for a TextNode and the tag name for an ElementNode.
	// It is empty for a DocumentNode.
	Data string

	// Attr is the list of attributes of an ElementNode, in source order.
	Attr []Attribute
}

// ElementKind returns the classification of an ElementNode's tag name.
// Non-element nodes and elements with an unrecognized tag both report
// KindUnrecognized.
func (n *Node) ElementKind() ElementKind {
	if n.Type != ElementNode {
		return KindUnrecognized
	}
	return KindOf(n.Data)
}

// AppendChild adds a node c as the last child of n. It is the only place
// that links nodes into the tree, so FirstChild, LastChild and the sibling
// chain cannot go out of sync.
//
// It will panic if c already has a parent or siblings.
func (n *Node) AppendChild(c *Node) {
	if c.Parent != nil || c.PrevSibling != nil || c.NextSibling != nil {
		panic("html: AppendChild called for an attached child Node")
	}
	last := n.LastChild
	if last != nil {
		last.NextSibling = c
	} else {
		n.FirstChild = c
	}
	n.LastChild = c
	c.Parent = n
	c.PrevSibling = last
}

// A Window owns the Document root node for one parse.
type Window struct {
	document *Node
}

// NewWindow returns a Window with a fresh, empty Document node.
func NewWindow() *Window {
	return &Window{document: &Node{Type: DocumentNode}}
}

// Document returns the root node of the parsed document.
func (w *Window) Document() *Node {
	return w.document
}

// An ElementKind is a closed classification of an element by tag name.
type ElementKind int

const (
	// KindUnrecognized covers tags with no dedicated case and non-element
	// nodes. It is an ordinary state, not an error.
	KindUnrecognized ElementKind = iota
	KindHtml
	KindHead
	KindStyle
	KindScript
	KindBody
	KindP
	KindH1
	KindH2
	KindA
	KindText
)

var kindNames = map[ElementKind]string{
	KindHtml:   "html",
	KindHead:   "head",
	KindStyle:  "style",
	KindScript: "script",
	KindBody:   "body",
	KindP:      "p",
	KindH1:     "h1",
	KindH2:     "h2",
	KindA:      "a",
	KindText:   "text",
}

var kindByName = func() map[string]ElementKind {
	m := make(map[string]ElementKind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// KindOf maps a tag name to its ElementKind. The mapping is total: tags
// without a dedicated case map to KindUnrecognized.
func KindOf(tag string) ElementKind {
	return kindByName[tag]
}

// String returns the tag name for recognized kinds.
func (k ElementKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unrecognized"
}

// nodeStack is the stack of open elements.
type nodeStack []*Node

// pop pops the stack. It will panic if the stack is empty.
func (s *nodeStack) pop() *Node {
	i := len(*s)
	n := (*s)[i-1]
	*s = (*s)[:i-1]
	return n
}

// top returns the most recently pushed node, or nil if the stack is empty.
func (s *nodeStack) top() *Node {
	if i := len(*s); i > 0 {
		return (*s)[i-1]
	}
	return nil
}

// contains reports whether any open element has the given kind.
func (s nodeStack) contains(kind ElementKind) bool {
	for _, n := range s {
		if n.ElementKind() == kind {
			return true
		}
	}
	return false
}
