package html

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func drain(tz *Tokenizer) []Token {
	var toks []Token
	for {
		tok := tz.Next()
		toks = append(toks, tok)
		if tok.Type == EOFToken {
			return toks
		}
	}
}

func TestTokenizerPlainText(t *testing.T) {
	toks := drain(NewTokenizer("hi"))
	require.Equal(t, []Token{
		{Type: CharToken, Data: "h"},
		{Type: CharToken, Data: "i"},
		{Type: EOFToken},
	}, toks)
}

func TestTokenizerEmptyTag(t *testing.T) {
	toks := drain(NewTokenizer("<body></body>"))
	require.Equal(t, []Token{
		{Type: StartTagToken, Name: "body"},
		{Type: EndTagToken, Name: "body"},
		{Type: EOFToken},
	}, toks)
}

func TestTokenizerSelfClosingTag(t *testing.T) {
	toks := drain(NewTokenizer("<br/>"))
	require.Equal(t, []Token{
		{Type: StartTagToken, Name: "br", SelfClosing: true},
		{Type: EOFToken},
	}, toks)
}

func TestTokenizerAttributes(t *testing.T) {
	toks := drain(NewTokenizer(`<a HREF="x" target='y' disabled foo=bar>`))
	require.Len(t, toks, 2)
	tag := toks[0]
	require.Equal(t, StartTagToken, tag.Type)
	require.Equal(t, "a", tag.Name)
	require.Equal(t, []Attribute{
		{Name: "href", Value: "x"},
		{Name: "target", Value: "y"},
		{Name: "disabled", Value: ""},
		{Name: "foo", Value: "bar"},
	}, tag.Attrs)
}

func TestTokenizerTagAndAttrNamesAreLowercased(t *testing.T) {
	toks := drain(NewTokenizer(`<P CLASS="Loud"></P>`))
	require.Equal(t, "p", toks[0].Name)
	require.Equal(t, "class", toks[0].Attrs[0].Name)
	require.Equal(t, "Loud", toks[0].Attrs[0].Value, "attribute values retain case")
}

func TestTokenizerUnterminatedTagDoesNotHang(t *testing.T) {
	toks := drain(NewTokenizer(`<a href="unterminated`))
	require.Equal(t, EOFToken, toks[len(toks)-1].Type)
}

func TestTokenizerEOFSentinelIsStable(t *testing.T) {
	tz := NewTokenizer("x")
	require.Equal(t, CharToken, tz.Next().Type)
	require.Equal(t, EOFToken, tz.Next().Type)
	require.Equal(t, EOFToken, tz.Next().Type)
}

func TestTokenizerIdempotence(t *testing.T) {
	// Concatenating the source forms reproduces the input up to
	// lower-casing of tag/attribute names and quote normalization
	// (SPEC_FULL.md §8 invariant 6).
	input := `<a href=x>hi</a>`
	tz := NewTokenizer(input)
	var rebuilt string
	for {
		tok := tz.Next()
		if tok.Type == EOFToken {
			break
		}
		rebuilt += tok.sourceForm()
	}
	require.Equal(t, `<a href="x">hi</a>`, rebuilt)
}
