package css

// Tokenizer is a lazy, non-restartable, pull-driven producer of CSS tokens
// over an input string, in the same style as html.Tokenizer: a struct with
// a position cursor and a Next method, no goroutines or channels.
type Tokenizer struct {
	input string
	pos   int
}

// NewTokenizer creates a Tokenizer over input.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

func isIdentChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '_' || c == '-'
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Next returns the next token, and a second value reporting whether a
// token was produced at all: the CSS tokenizer has no EOF token variant of
// its own (unlike HTML's), so exhaustion is signaled by (Token{}, false)
// instead.
func (t *Tokenizer) Next() (Token, bool) {
	for t.pos < len(t.input) {
		c := t.input[t.pos]

		switch c {
		case ' ', '\n':
			t.pos++
			continue
		case '(':
			t.pos++
			return Token{Type: OpenParenthesis}, true
		case ')':
			t.pos++
			return Token{Type: CloseParenthesis}, true
		case '[':
			t.pos++
			return Token{Type: OpenBracket}, true
		case ']':
			t.pos++
			return Token{Type: CloseBracket}, true
		case ',':
			t.pos++
			return Token{Type: Delim, Ch: ','}, true
		case '.':
			t.pos++
			return Token{Type: Delim, Ch: '.'}, true
		case ':':
			t.pos++
			return Token{Type: Colon}, true
		case ';':
			t.pos++
			return Token{Type: SemiColon}, true
		case '{':
			t.pos++
			return Token{Type: OpenCurly}, true
		case '}':
			t.pos++
			return Token{Type: CloseCurly}, true
		case '"', '\'':
			return t.consumeString(), true
		case '#':
			return t.consumeHash(), true
		case '@':
			if tok, ok := t.consumeAtKeyword(); ok {
				return tok, true
			}
			t.pos++
			return Token{Type: Delim, Ch: '@'}, true
		default:
			switch {
			case isDigit(c):
				return t.consumeNumber(), true
			case isAlpha(c) || c == '_' || c == '-':
				return t.consumeIdent(), true
			default:
				t.pos++
				return Token{Type: Delim, Ch: c}, true
			}
		}
	}
	return Token{}, false
}

// consumeString implements the rule: a quote begins a string; characters
// are consumed up to (but not including) the next matching OR opposite
// quote character, and the closing quote is skipped. Mixing quote styles
// inside a string literal is not supported — this is the contract, not a
// simplification we introduced.
func (t *Tokenizer) consumeString() Token {
	t.pos++ // opening quote
	start := t.pos
	for t.pos < len(t.input) {
		c := t.input[t.pos]
		if c == '"' || c == '\'' {
			break
		}
		t.pos++
	}
	s := t.input[start:t.pos]
	if t.pos < len(t.input) {
		t.pos++ // closing quote
	}
	return Token{Type: StringToken, Str: s}
}

// consumeNumber accumulates a decimal number: an integer part and an
// optional fractional part introduced by '.'. A character that is neither
// a digit nor '.' ends the number and is left unconsumed, so the delimiter
// is re-lexed as its own token.
func (t *Tokenizer) consumeNumber() Token {
	var n float64
	floating := false
	fracDigit := 1.0

	for t.pos < len(t.input) {
		c := t.input[t.pos]
		switch {
		case isDigit(c):
			d := float64(c - '0')
			if floating {
				fracDigit /= 10
				n += d * fracDigit
			} else {
				n = n*10 + d
			}
		case c == '.' && !floating:
			floating = true
		default:
			return Token{Type: Number, Num: n, Percent: t.consumePercent()}
		}
		t.pos++
	}
	return Token{Type: Number, Num: n, Percent: t.consumePercent()}
}

// consumePercent consumes a trailing '%' immediately after a number, per
// original_source/saba_core/src/renderer/css/token.rs's percent-width
// handling (SPEC_FULL.md §4.5 domain-stack supplement).
func (t *Tokenizer) consumePercent() bool {
	if t.pos < len(t.input) && t.input[t.pos] == '%' {
		t.pos++
		return true
	}
	return false
}

// consumeHash builds a HashToken whose stored string includes the leading
// '#' (SPEC_FULL.md §9 open question 4 — asymmetric with AtKeyword, which
// excludes its '@').
func (t *Tokenizer) consumeHash() Token {
	start := t.pos
	t.pos++ // '#'
	for t.pos < len(t.input) && isIdentChar(t.input[t.pos]) {
		t.pos++
	}
	return Token{Type: HashToken, Str: t.input[start:t.pos]}
}

// consumeAtKeyword recognizes '@' followed by exactly three alphanumeric
// characters, the first alphabetic, as an AtKeyword whose stored string
// excludes the '@'. Anything else leaves '@' to be re-lexed as Delim('@').
func (t *Tokenizer) consumeAtKeyword() (Token, bool) {
	if t.pos+3 >= len(t.input) {
		return Token{}, false
	}
	a, b, c := t.input[t.pos+1], t.input[t.pos+2], t.input[t.pos+3]
	if !isAlpha(a) || !isAlnum(b) || !isAlnum(c) {
		return Token{}, false
	}
	start := t.pos + 1
	t.pos += 4
	for t.pos < len(t.input) && isIdentChar(t.input[t.pos]) {
		t.pos++
	}
	return Token{Type: AtKeyword, Str: t.input[start:t.pos]}, true
}

// consumeIdent builds an Ident token; identifier characters are the same
// closed set used by HashToken and AtKeyword.
func (t *Tokenizer) consumeIdent() Token {
	start := t.pos
	for t.pos < len(t.input) && isIdentChar(t.input[t.pos]) {
		t.pos++
	}
	return Token{Type: Ident, Str: t.input[start:t.pos]}
}
