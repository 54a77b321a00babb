package html

import (
	"errors"
	"strings"

	"github.com/beevik/etree"
)

// ErrStackUnwind reports a structural invariant violation: the tree
// constructor was asked to unwind the stack of open elements to a kind that
// is not on it. It is recoverable; the offending token is dropped and the
// parse continues.
var ErrStackUnwind = errors.New("html: open-element stack is missing element")

// A ParseError wraps a structural invariant violation together with the
// location in the document where it happened, reconstructed from the stack
// of open elements.
type ParseError struct {
	err  error
	path string
	doc  *etree.Document
}

func newParseError(oe nodeStack, err error) *ParseError {
	return &ParseError{
		err:  err,
		path: stackPath(oe),
		doc:  buildErrorContext(oe),
	}
}

func (e *ParseError) Error() string {
	return e.path + ": " + e.err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.err
}

// HTMLContext renders the chain of open elements around the error as
// indented markup, with "..." marking the point the parser had reached.
func (e *ParseError) HTMLContext() string {
	e.doc.Indent(2)
	s, err := e.doc.WriteToString()
	if err != nil {
		return ""
	}
	return strings.TrimRight(s, "\n")
}

// stackPath formats the open elements as an XPath-like location, e.g.
// "/html/body/p".
func stackPath(oe nodeStack) string {
	var sb strings.Builder
	for _, n := range oe {
		if n.Type != ElementNode {
			continue
		}
		sb.WriteByte('/')
		sb.WriteString(n.Data)
	}
	if sb.Len() == 0 {
		return "/"
	}
	return sb.String()
}

// buildErrorContext creates an XML tree mirroring the chain of open elements
// to provide context for an error.
func buildErrorContext(oe nodeStack) *etree.Document {
	doc := etree.NewDocument()
	cur := &doc.Element
	for _, n := range oe {
		switch n.Type {
		case ElementNode:
			el := etree.NewElement(n.Data)
			for _, a := range n.Attr {
				el.CreateAttr(a.Name, a.Value)
			}
			cur.AddChild(el)
			cur = el
		case TextNode:
			cur.AddChild(etree.NewText(n.Data))
		}
	}
	cur.AddChild(etree.NewText("..."))
	return doc
}
