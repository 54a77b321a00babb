// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// Modifications:
//  - Insertion modes reduced to the subset handled by this engine.
//  - Stack unwinding to an absent element records a recoverable error
//    instead of aborting the parse.

package html

import (
	"errors"
	"fmt"
)

// A Parser drives the insertion-mode state machine over the token sequence
// and builds the document tree. It recovers from malformed markup silently:
// missing <html>, <head> and <body> are synthesized, unexpected end tags are
// dropped.
type Parser struct {
	// tokenizer provides the tokens for the Parser.
	tokenizer *Tokenizer
	// tok is the most recently read token.
	tok Token
	// window owns the Document root the tree is built under.
	window *Window
	// oe is the stack of open elements.
	oe nodeStack
	// im is the current insertion mode.
	im insertionMode
	// originalIM is the insertion mode to go back to after completing the
	// text insertion mode.
	originalIM insertionMode
	// errs captures structural invariant violations recovered from during
	// parsing.
	errs []error
}

// An insertionMode is the state transition function from a particular state
// in the tree constructor's state machine. It updates the Parser's fields
// depending on Parser.tok and returns whether the token was consumed.
type insertionMode func(*Parser) bool

// NewParser returns a Parser reading from the given Tokenizer. One Parser
// builds one Window.
func NewParser(t *Tokenizer) *Parser {
	return &Parser{
		tokenizer: t,
		window:    NewWindow(),
		im:        initialIM,
	}
}

// Parse tokenizes text and constructs its document tree. The returned Window
// is never nil; the error joins any structural invariant violations that were
// recovered from.
func Parse(text string) (*Window, error) {
	p := NewParser(NewTokenizer(text))
	w := p.ConstructTree()
	return w, errors.Join(p.errs...)
}

// ConstructTree runs the token loop to completion and returns the finished
// tree. It is synchronous and single-threaded; the tree is not shared with
// the caller until it returns.
func (p *Parser) ConstructTree() *Window {
	for {
		p.tok = p.tokenizer.Next()
		if p.tok.Type == EOFToken {
			return p.window
		}
		p.parseCurrentToken()
	}
}

// Errs returns the structural invariant violations recovered from so far.
func (p *Parser) Errs() []error {
	return p.errs
}

// parseCurrentToken runs the current token through the insertion modes until
// one of them consumes it.
func (p *Parser) parseCurrentToken() {
	consumed := false
	for !consumed {
		consumed = p.im(p)
	}
}

func initialIM(p *Parser) bool {
	// DOCTYPE is not tokenized specially, so its text arrives as character
	// tokens; they are dropped here.
	if p.tok.Type == CharToken {
		return true
	}
	p.im = beforeHTMLIM
	return false
}

func beforeHTMLIM(p *Parser) bool {
	switch p.tok.Type {
	case CharToken:
		if isSpaceOrNewline(p.tok.Char) {
			return true
		}
	case StartTagToken:
		if p.tok.Name == "html" {
			p.insertElement(p.tok.Name, p.tok.Attr)
			p.im = beforeHeadIM
			return true
		}
	}
	p.insertElement("html", nil)
	p.im = beforeHeadIM
	return false
}

func beforeHeadIM(p *Parser) bool {
	switch p.tok.Type {
	case CharToken:
		if isSpaceOrNewline(p.tok.Char) {
			return true
		}
	case StartTagToken:
		if p.tok.Name == "head" {
			p.insertElement(p.tok.Name, p.tok.Attr)
			p.im = inHeadIM
			return true
		}
	}
	p.insertElement("head", nil)
	p.im = inHeadIM
	return false
}

func inHeadIM(p *Parser) bool {
	switch p.tok.Type {
	case CharToken:
		if isSpaceOrNewline(p.tok.Char) {
			p.insertChar(p.tok.Char)
			return true
		}
	case StartTagToken:
		switch {
		case p.tok.Name == "style" || p.tok.Name == "script":
			p.insertElement(p.tok.Name, p.tok.Attr)
			p.originalIM = p.im
			p.im = textIM
			return true
		case p.tok.Name == "body" || KindOf(p.tok.Name) != KindUnrecognized:
			// A tag that belongs to the body while <head> is still open:
			// close the head and let AfterHead reinterpret the token.
			p.unwind(KindHead)
			p.im = afterHeadIM
			return false
		}
	case EndTagToken:
		if p.tok.Name == "head" {
			p.unwind(KindHead)
			p.im = afterHeadIM
			return true
		}
	}
	// Anything else inside <head> is dropped.
	return true
}

func afterHeadIM(p *Parser) bool {
	switch p.tok.Type {
	case CharToken:
		if isSpaceOrNewline(p.tok.Char) {
			p.insertChar(p.tok.Char)
			return true
		}
	case StartTagToken:
		if p.tok.Name == "body" {
			p.insertElement(p.tok.Name, p.tok.Attr)
			p.im = inBodyIM
			return true
		}
	}
	p.insertElement("body", nil)
	p.im = inBodyIM
	return false
}

func inBodyIM(p *Parser) bool {
	switch p.tok.Type {
	case CharToken:
		p.insertChar(p.tok.Char)
	case StartTagToken:
		switch p.tok.Name {
		case "p", "h1", "h2", "a":
			p.insertElement(p.tok.Name, p.tok.Attr)
		default:
			// Unknown start tags have no structural effect.
		}
	case EndTagToken:
		switch p.tok.Name {
		case "body":
			p.im = afterBodyIM
			if !p.oe.contains(KindBody) {
				// Stray </body>: drop the token.
				return true
			}
			p.unwind(KindBody)
		case "html":
			if p.popCurrentNode(KindBody) {
				p.im = afterBodyIM
				if !p.popCurrentNode(KindHtml) {
					p.errs = append(p.errs, p.structuralErr(KindHtml))
				}
				// Reinterpret </html> in AfterBody.
				return false
			}
		case "p", "h1", "h2", "a":
			p.unwind(KindOf(p.tok.Name))
		default:
			// Unknown end tags are dropped.
		}
	}
	return true
}

func textIM(p *Parser) bool {
	switch p.tok.Type {
	case CharToken:
		p.insertChar(p.tok.Char)
		return true
	case EndTagToken:
		switch p.tok.Name {
		case "style":
			p.unwind(KindStyle)
			p.im = p.originalIM
			return true
		case "script":
			p.unwind(KindScript)
			p.im = p.originalIM
			return true
		}
	}
	p.im = p.originalIM
	return false
}

func afterBodyIM(p *Parser) bool {
	switch p.tok.Type {
	case CharToken:
		return true
	case EndTagToken:
		if p.tok.Name == "html" {
			p.im = afterAfterBodyIM
			return true
		}
	}
	p.im = inBodyIM
	return false
}

func afterAfterBodyIM(p *Parser) bool {
	if p.tok.Type == CharToken {
		return true
	}
	p.im = inBodyIM
	return false
}

// insertElement builds an element node, appends it as the last child of the
// current open element (or of the Document if the stack is empty) and pushes
// it onto the stack of open elements. Elements stay open until a token
// explicitly pops them; there is no implicit auto-close on a following start
// tag.
func (p *Parser) insertElement(tag string, attrs []Attribute) {
	parent := p.oe.top()
	if parent == nil {
		parent = p.window.document
	}
	n := &Node{Type: ElementNode, Data: tag, Attr: attrs}
	parent.AppendChild(n)
	p.oe = append(p.oe, n)
}

// insertChar appends a character to the current trailing text node, or
// starts a new one. A bare space or newline with no preceding text is
// dropped. Text nodes join the stack of open elements, like in
// insertElement, so that following characters find them as the current node.
func (p *Parser) insertChar(c rune) {
	current := p.oe.top()
	if current == nil {
		return
	}
	if current.Type == TextNode {
		current.Data += string(c)
		return
	}
	if isSpaceOrNewline(c) {
		return
	}
	n := &Node{Type: TextNode, Data: string(c)}
	current.AppendChild(n)
	p.oe = append(p.oe, n)
}

// popCurrentNode pops the stack if its top element is of the given kind.
func (p *Parser) popCurrentNode(kind ElementKind) bool {
	n := p.oe.top()
	if n == nil || n.ElementKind() != kind {
		return false
	}
	p.oe.pop()
	return true
}

// popUntil pops the stack of open elements, discarding each popped node,
// until a node of the given kind has been popped. If no such element is on
// the stack it leaves the stack unchanged and reports ErrStackUnwind.
func (p *Parser) popUntil(kind ElementKind) error {
	if !p.oe.contains(kind) {
		return p.structuralErr(kind)
	}
	for {
		if n := p.oe.pop(); n.ElementKind() == kind {
			return nil
		}
	}
}

// unwind is popUntil with the error recorded instead of returned; stray end
// tags must not abort the parse.
func (p *Parser) unwind(kind ElementKind) {
	if err := p.popUntil(kind); err != nil {
		p.errs = append(p.errs, err)
	}
}

func (p *Parser) structuralErr(kind ElementKind) error {
	return newParseError(p.oe, fmt.Errorf("%w: %v", ErrStackUnwind, kind))
}

func isSpaceOrNewline(r rune) bool {
	return r == ' ' || r == '\n'
}
