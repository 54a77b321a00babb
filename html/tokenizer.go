package html

import "unicode"

// tokenizerState is a lexical state of the Tokenizer.
type tokenizerState int

const (
	dataState tokenizerState = iota
	tagOpenState
	endTagOpenState
	tagNameState
	beforeAttributeNameState
	attributeNameState
	afterAttributeNameState
	beforeAttributeValueState
	attributeValueDoubleQuotedState
	attributeValueSingleQuotedState
	attributeValueUnquotedState
	afterAttributeValueQuotedState
	selfClosingStartTagState
)

// A Tokenizer turns a complete input text into a finite sequence of Tokens.
// It is a lexical state machine over the whole buffer, not a streaming
// reader. Running out of input in any state degrades to an EOFToken; it
// never fails.
type Tokenizer struct {
	input []rune
	pos   int
	state tokenizerState

	// tag is the start or end tag token under construction.
	tag Token

	// done is set once an EOFToken has been emitted. The sequence is then
	// exhausted: Next keeps returning EOFToken instead of restarting.
	done bool
}

// NewTokenizer returns a Tokenizer for the given input text.
func NewTokenizer(text string) *Tokenizer {
	return &Tokenizer{input: []rune(text), state: dataState}
}

// Next produces the next token. After the end of input it returns a token
// of type EOFToken, and keeps doing so on every subsequent call.
func (t *Tokenizer) Next() Token {
	if t.done {
		return Token{Type: EOFToken}
	}

	for t.pos < len(t.input) {
		c := t.input[t.pos]
		t.pos++

		switch t.state {
		case dataState:
			if c == '<' {
				t.state = tagOpenState
				continue
			}
			return Token{Type: CharToken, Char: c}

		case tagOpenState:
			if c == '/' {
				t.state = endTagOpenState
				continue
			}
			if isLetter(c) {
				t.createTag(StartTagToken)
				t.reconsume(tagNameState)
				continue
			}
			// Stray "<" followed by junk: treat it as if the "<" had not
			// opened a tag and re-handle the character as data.
			t.reconsume(dataState)

		case endTagOpenState:
			if isLetter(c) {
				t.createTag(EndTagToken)
				t.reconsume(tagNameState)
				continue
			}
			if c == '>' {
				// "</>" has no name to close; drop it.
				t.state = dataState
				continue
			}
			// "</" followed by junk is dropped.
			t.reconsume(dataState)

		case tagNameState:
			switch {
			case isWhitespace(c):
				t.state = beforeAttributeNameState
			case c == '/':
				t.state = selfClosingStartTagState
			case c == '>':
				return t.emitTag()
			default:
				t.tag.Name += string(unicode.ToLower(c))
			}

		case beforeAttributeNameState:
			if c == '/' || c == '>' {
				t.reconsume(afterAttributeNameState)
				continue
			}
			if isWhitespace(c) {
				continue
			}
			t.startNewAttribute()
			t.reconsume(attributeNameState)

		case attributeNameState:
			switch {
			case isWhitespace(c) || c == '/' || c == '>':
				t.reconsume(afterAttributeNameState)
			case c == '=':
				t.state = beforeAttributeValueState
			default:
				t.appendAttribute(unicode.ToLower(c), true)
			}

		case afterAttributeNameState:
			switch {
			case isWhitespace(c):
				// ignore
			case c == '/':
				t.state = selfClosingStartTagState
			case c == '=':
				t.state = beforeAttributeValueState
			case c == '>':
				return t.emitTag()
			default:
				t.startNewAttribute()
				t.reconsume(attributeNameState)
			}

		case beforeAttributeValueState:
			switch {
			case isWhitespace(c):
				// ignore
			case c == '"':
				t.state = attributeValueDoubleQuotedState
			case c == '\'':
				t.state = attributeValueSingleQuotedState
			default:
				t.reconsume(attributeValueUnquotedState)
			}

		case attributeValueDoubleQuotedState:
			if c == '"' {
				t.state = afterAttributeValueQuotedState
				continue
			}
			t.appendAttribute(c, false)

		case attributeValueSingleQuotedState:
			if c == '\'' {
				t.state = afterAttributeValueQuotedState
				continue
			}
			t.appendAttribute(c, false)

		case attributeValueUnquotedState:
			switch {
			case isWhitespace(c):
				t.state = beforeAttributeNameState
			case c == '>':
				return t.emitTag()
			default:
				t.appendAttribute(c, false)
			}

		case afterAttributeValueQuotedState:
			switch {
			case isWhitespace(c):
				t.state = beforeAttributeNameState
			case c == '/':
				t.state = selfClosingStartTagState
			case c == '>':
				return t.emitTag()
			default:
				t.reconsume(beforeAttributeNameState)
			}

		case selfClosingStartTagState:
			if c == '>' {
				t.tag.SelfClosing = true
				return t.emitTag()
			}
			// A lone "/" inside a tag is tolerated: fall back to
			// attribute parsing.
			t.reconsume(beforeAttributeNameState)
		}
	}

	// End of input, possibly in the middle of a tag.
	t.done = true
	return Token{Type: EOFToken}
}

// reconsume switches state and re-handles the current character there.
func (t *Tokenizer) reconsume(s tokenizerState) {
	t.pos--
	t.state = s
}

func (t *Tokenizer) createTag(typ TokenType) {
	t.tag = Token{Type: typ}
}

func (t *Tokenizer) emitTag() Token {
	t.state = dataState
	tag := t.tag
	t.tag = Token{}
	return tag
}

func (t *Tokenizer) startNewAttribute() {
	t.tag.Attr = append(t.tag.Attr, Attribute{})
}

// appendAttribute adds a character to the newest attribute's name or value.
func (t *Tokenizer) appendAttribute(r rune, name bool) {
	t.tag.Attr[len(t.tag.Attr)-1].appendRune(r, name)
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '\f'
}
