package css

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func drain(t *Tokenizer) []Token {
	var toks []Token
	for {
		tok, ok := t.Next()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestTokenizerSymbols(t *testing.T) {
	toks := drain(NewTokenizer("(),.:;{}"))
	require.Equal(t, []Token{
		{Type: OpenParenthesis},
		{Type: CloseParenthesis},
		{Type: Delim, Ch: ','},
		{Type: Delim, Ch: '.'},
		{Type: Colon},
		{Type: SemiColon},
		{Type: OpenCurly},
		{Type: CloseCurly},
	}, toks)
}

func TestTokenizerIgnoresSpaceAndNewline(t *testing.T) {
	toks := drain(NewTokenizer("( \n)"))
	require.Equal(t, []Token{
		{Type: OpenParenthesis},
		{Type: CloseParenthesis},
	}, toks)
}

func TestTokenizerStrings(t *testing.T) {
	toks := drain(NewTokenizer(`'hello' "world"`))
	require.Equal(t, []Token{
		{Type: StringToken, Str: "hello"},
		{Type: StringToken, Str: "world"},
	}, toks)
}

func TestTokenizerStringStopsAtEitherQuote(t *testing.T) {
	// "mismatched' is the documented (if surprising) contract: a string
	// ends at the next matching OR opposite quote.
	toks := drain(NewTokenizer(`"mismatched'tail"`))
	require.Equal(t, StringToken, toks[0].Type)
	require.Equal(t, "mismatched", toks[0].Str)
}

func TestTokenizerNumbers(t *testing.T) {
	toks := drain(NewTokenizer("123 45.67"))
	require.Equal(t, []Token{
		{Type: Number, Num: 123},
		{Type: Number, Num: 45.67},
	}, toks)
}

func TestTokenizerHashKeepsPrefix(t *testing.T) {
	toks := drain(NewTokenizer("#main-nav"))
	require.Equal(t, []Token{{Type: HashToken, Str: "#main-nav"}}, toks)
}

func TestTokenizerAtKeywordDropsPrefix(t *testing.T) {
	toks := drain(NewTokenizer("@media"))
	require.Equal(t, []Token{{Type: AtKeyword, Str: "media"}}, toks)
}

func TestTokenizerBareAtIsDelim(t *testing.T) {
	toks := drain(NewTokenizer("@ x"))
	require.Equal(t, Delim, toks[0].Type)
	require.Equal(t, byte('@'), toks[0].Ch)
}

func TestTokenizerMediaQueryScenario(t *testing.T) {
	toks := drain(NewTokenizer("@media (hover:hover) {.bold { font-weight: 800; }"))
	require.Equal(t, []Token{
		{Type: AtKeyword, Str: "media"},
		{Type: OpenParenthesis},
		{Type: Ident, Str: "hover"},
		{Type: Colon},
		{Type: Ident, Str: "hover"},
		{Type: CloseParenthesis},
		{Type: OpenCurly},
		{Type: Delim, Ch: '.'},
		{Type: Ident, Str: "bold"},
		{Type: OpenCurly},
		{Type: Ident, Str: "font-weight"},
		{Type: Colon},
		{Type: Number, Num: 800},
		{Type: SemiColon},
		{Type: CloseCurly},
	}, toks)
}
