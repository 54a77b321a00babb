package html

import (
	"fmt"
	"strings"
)

// A TokenType is the type of a Token.
type TokenType int

const (
	// CharToken is a single literal character found outside a tag.
	CharToken TokenType = iota
	// StartTagToken is an opening tag, e.g. <a href="x">.
	StartTagToken
	// EndTagToken is a closing tag, e.g. </a>.
	EndTagToken
	// EOFToken terminates the token sequence. Once emitted, the Tokenizer
	// keeps emitting it on every subsequent call.
	EOFToken
)

// String returns a string representation of the TokenType.
func (t TokenType) String() string {
	switch t {
	case CharToken:
		return "Char"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case EOFToken:
		return "EOF"
	}
	return "Invalid"
}

// A Token is an atomic lexical unit: a character, a start tag, an end tag,
// or the end-of-input marker.
type Token struct {
	Type TokenType

	// Char is the literal character of a CharToken.
	Char rune

	// Name is the tag name of a StartTagToken or EndTagToken, lowercased.
	Name string

	// Attr lists the attributes of a StartTagToken in source order.
	Attr []Attribute

	// SelfClosing reports whether a StartTagToken ended with "/>".
	SelfClosing bool
}

// String returns a readable form of the token, for logs and tests.
func (t Token) String() string {
	switch t.Type {
	case CharToken:
		return fmt.Sprintf("Char(%q)", t.Char)
	case StartTagToken:
		var sb strings.Builder
		sb.WriteByte('<')
		sb.WriteString(t.Name)
		for _, a := range t.Attr {
			fmt.Fprintf(&sb, " %s=%q", a.Name, a.Value)
		}
		if t.SelfClosing {
			sb.WriteByte('/')
		}
		sb.WriteByte('>')
		return sb.String()
	case EndTagToken:
		return "</" + t.Name + ">"
	case EOFToken:
		return "EOF"
	}
	return "Invalid"
}

// An Attribute is a name-value pair on a start tag. Both fields are built
// character by character by the Tokenizer; a valueless attribute keeps an
// empty Value.
type Attribute struct {
	Name  string
	Value string
}

// appendRune adds one character to the name or to the value, depending on
// which part of the attribute the Tokenizer is currently in.
func (a *Attribute) appendRune(r rune, name bool) {
	if name {
		a.Name += string(r)
	} else {
		a.Value += string(r)
	}
}
