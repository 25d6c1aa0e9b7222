package html

import (
	"io"
	"log/slog"
	"strings"
)

// state is one of the tokenizer states named in SPEC_FULL.md §4.3. The
// reduced subset keeps only the states needed to lex tags and their
// attributes; character-reference, comment, DOCTYPE and CDATA states are
// all out of scope.
type state int

const (
	dataState state = iota
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

// Option configures a Tokenizer or TreeBuilder.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes diagnostic records — attribute redeclaration, discarded
// unknown tags — to logger instead of discarding them. Grounded on the
// teacher's *slog.Logger field on pages.Handler, which defaults to a
// discarding handler when unset.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func newOptions(opts []Option) *options {
	// TODO: replace with slog.DiscardHandler once the module's Go floor
	// picks it up - https://go-review.googlesource.com/c/go/+/548335
	o := &options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Tokenizer is a lazy, non-restartable, pull-driven producer of HTML tokens
// over an input string. Calling Next repeatedly drives the state machine of
// SPEC_FULL.md §4.3 one character at a time; state that would otherwise be
// "between calls" local variables of a single big loop lives on the
// Tokenizer struct instead, since Next can return in the middle of
// assembling a tag.
type Tokenizer struct {
	input string
	pos   int

	st        state
	reconsume bool

	tok       Token          // the token under construction
	curAttr   Attribute      // the attribute under construction
	attrOpen  bool           // curAttr has been started and not yet committed
	haveAttrs map[string]int // index into tok.Attrs by name, for redeclaration detection

	opts *options
}

// NewTokenizer creates a Tokenizer over input, starting in the Data state.
func NewTokenizer(input string, opts ...Option) *Tokenizer {
	return &Tokenizer{
		input: input,
		st:    dataState,
		opts:  newOptions(opts),
	}
}

// isEOF reports whether the cursor has moved past the input. Per
// SPEC_FULL.md §9 open question 2, this uses the strict "pos > len" check
// from the original, which is false while the very last character is still
// being consumed — preserved verbatim rather than corrected to "pos >= len".
func (t *Tokenizer) isEOF() bool {
	return t.pos > len(t.input)
}

// consume returns the current character and advances the cursor, unless
// reconsume is set, in which case it returns the same character again
// without moving the cursor.
func (t *Tokenizer) consume() byte {
	if t.reconsume {
		t.reconsume = false
		return t.input[t.pos-1]
	}
	var c byte
	if t.pos < len(t.input) {
		c = t.input[t.pos]
	}
	t.pos++
	return c
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\n'
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func (t *Tokenizer) startAttr() {
	t.curAttr = Attribute{}
	t.attrOpen = true
}

// commitAttr appends the attribute under construction to the token, logging
// (rather than rejecting) a redeclaration — last write wins, same as the
// reduced subset's implicit policy for everything else. It does nothing when
// no attribute has been started since the last commit.
func (t *Tokenizer) commitAttr() {
	if !t.attrOpen {
		return
	}
	t.attrOpen = false
	if t.haveAttrs == nil {
		t.haveAttrs = make(map[string]int)
	}
	if i, ok := t.haveAttrs[t.curAttr.Name]; ok {
		t.opts.logger.Debug("attribute redeclared", "name", t.curAttr.Name, "tag", t.tok.Name)
		t.tok.Attrs[i] = t.curAttr
		return
	}
	t.haveAttrs[t.curAttr.Name] = len(t.tok.Attrs)
	t.tok.Attrs = append(t.tok.Attrs, t.curAttr)
}

func (t *Tokenizer) newStartTag() {
	t.tok = Token{Type: StartTagToken}
	t.haveAttrs = nil
}

func (t *Tokenizer) newEndTag() {
	t.tok = Token{Type: EndTagToken}
	t.haveAttrs = nil
}

// Next produces the next token. Once EOFToken has been emitted, every
// subsequent call returns EOFToken again: the sentinel is produced exactly
// once in the stream the tokenizer models, but Next itself stays safe to
// call past that point.
func (t *Tokenizer) Next() Token {
	for {
		c := t.consume()

		// EOF terminates the sequence from any state: "Tokenizer
		// encountering EOF within any state emits Eof" (SPEC_FULL.md §7).
		// Data, TagOpen, EndTagOpen, BeforeAttributeName and AttributeName
		// additionally name this explicitly in the per-state table; every
		// other state relies on this fallback rather than looping forever
		// on an unterminated tag.
		if t.isEOF() {
			return Token{Type: EOFToken}
		}

		switch t.st {
		case dataState:
			if c == '<' {
				t.st = tagOpenState
			} else {
				return Token{Type: CharToken, Data: string(c)}
			}

		case tagOpenState:
			switch {
			case c == '/':
				t.st = endTagOpenState
			case isAlpha(c):
				t.reconsume = true
				t.newStartTag()
				t.st = tagNameState
			default:
				t.reconsume = true
				t.st = dataState
			}

		case endTagOpenState:
			if isAlpha(c) {
				t.reconsume = true
				t.newEndTag()
				t.st = tagNameState
			}

		case tagNameState:
			switch {
			case isWhitespace(c):
				t.st = beforeAttributeNameState
			case c == '/':
				t.st = selfClosingStartTagState
			case c == '>':
				t.st = dataState
				return t.tok
			default:
				t.tok.Name += string(lower(c))
			}

		case beforeAttributeNameState:
			switch {
			case c == '/' || c == '>':
				t.reconsume = true
				t.st = afterAttributeNameState
			default:
				t.reconsume = true
				t.startAttr()
				t.st = attributeNameState
			}

		case attributeNameState:
			switch {
			case isWhitespace(c) || c == '/' || c == '>':
				t.reconsume = true
				t.st = afterAttributeNameState
			case c == '=':
				t.st = beforeAttributeValueState
			default:
				t.curAttr.Name += string(lower(c))
			}

		case afterAttributeNameState:
			switch {
			case isWhitespace(c):
				// stay
			case c == '/':
				t.commitAttr()
				t.st = selfClosingStartTagState
			case c == '=':
				t.st = beforeAttributeValueState
			case c == '>':
				t.commitAttr()
				t.st = dataState
				return t.tok
			default:
				t.commitAttr()
				t.reconsume = true
				t.startAttr()
				t.st = attributeNameState
			}

		case beforeAttributeValueState:
			switch {
			case isWhitespace(c):
				// stay
			case c == '"':
				t.st = attributeValueDoubleQuotedState
			case c == '\'':
				t.st = attributeValueSingleQuotedState
			default:
				t.reconsume = true
				t.st = attributeValueUnquotedState
			}

		case attributeValueDoubleQuotedState:
			if c == '"' {
				t.commitAttr()
				t.st = afterAttributeValueQuotedState
			} else {
				t.curAttr.Value += string(c)
			}

		case attributeValueSingleQuotedState:
			if c == '\'' {
				t.commitAttr()
				t.st = afterAttributeValueQuotedState
			} else {
				t.curAttr.Value += string(c)
			}

		case attributeValueUnquotedState:
			switch {
			case isWhitespace(c):
				t.commitAttr()
				t.st = beforeAttributeNameState
			case c == '>':
				t.commitAttr()
				t.st = dataState
				return t.tok
			default:
				t.curAttr.Value += string(c)
			}

		case afterAttributeValueQuotedState:
			switch {
			case isWhitespace(c):
				t.st = beforeAttributeNameState
			case c == '/':
				t.st = selfClosingStartTagState
			case c == '>':
				t.st = dataState
				return t.tok
			default:
				t.reconsume = true
				t.st = beforeAttributeNameState
			}

		case selfClosingStartTagState:
			if c == '>' {
				t.tok.SelfClosing = true
				t.st = dataState
				return t.tok
			}
		}
	}
}

// source form of the token as it would have appeared in input, up to
// lower-casing of names and normalization of attribute value quoting. Used
// by idempotence tests, not by the tokenizer itself.
func (t Token) sourceForm() string {
	switch t.Type {
	case CharToken:
		return t.Data
	case StartTagToken:
		var b strings.Builder
		b.WriteByte('<')
		b.WriteString(t.Name)
		for _, a := range t.Attrs {
			b.WriteByte(' ')
			b.WriteString(a.Name)
			b.WriteString(`="`)
			b.WriteString(a.Value)
			b.WriteByte('"')
		}
		if t.SelfClosing {
			b.WriteByte('/')
		}
		b.WriteByte('>')
		return b.String()
	case EndTagToken:
		return "</" + t.Name + ">"
	default:
		return ""
	}
}
