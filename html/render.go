package html

import "github.com/beevik/etree"

// Render serializes the document tree as indented markup. It is a debugging
// aid for logs and tests, not a spec-exact HTML serializer: the tree is
// mirrored into an etree document and pretty-printed.
func Render(w *Window) string {
	doc := etree.NewDocument()
	appendSubtree(&doc.Element, w.Document())
	doc.Indent(2)
	s, err := doc.WriteToString()
	if err != nil {
		return ""
	}
	return s
}

func appendSubtree(dst *etree.Element, n *Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case ElementNode:
			el := etree.NewElement(c.Data)
			for _, a := range c.Attr {
				el.CreateAttr(a.Name, a.Value)
			}
			dst.AddChild(el)
			appendSubtree(el, c)
		case TextNode:
			dst.AddChild(etree.NewText(c.Data))
		}
	}
}
