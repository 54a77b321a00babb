// This example demonstrates parsing HTML data and walking the resulting tree.
package html

import "fmt"

func Example() {
	w, err := Parse("<html><head></head><body><p>Hello World</p></body></html>")
	if err != nil {
		panic(err)
	}

	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			name := c.Data
			if c.Type == TextNode {
				name = fmt.Sprintf("%q", c.Data)
			}
			fmt.Printf("%*s%s\n", depth*2, "", name)
			walk(c, depth+1)
		}
	}
	walk(w.Document(), 0)

	// Output:
	// html
	//   head
	//   body
	//     p
	//       "Hello World"
}
