package html

import "golang.org/x/net/html/atom"

// ElementKind identifies which of the closed set of supported elements a
// Node of Type ElementNode represents. It is golang.org/x/net/html/atom's
// interned tag-name type, restricted at construction time (see
// elementKindForTag) to the eight tags the reduced subset understands.
// Reusing the real atom table — rather than a bespoke enum — gets tag
// comparisons for free and matches how the teacher package uses atom.Atom
// throughout its own tree-construction code.
type ElementKind = atom.Atom

// The closed set of elements the reduced tree constructor knows how to
// build, per SPEC_FULL.md §3.
const (
	Html  = atom.Html
	Head  = atom.Head
	Style = atom.Style
	Body  = atom.Body
	P     = atom.P
	A     = atom.A
	H1    = atom.H1
	H2    = atom.H2
)

// supportedKinds is the closed set used to validate a tag name before an
// element is constructed.
var supportedKinds = map[atom.Atom]bool{
	Html: true, Head: true, Style: true, Body: true,
	P: true, A: true, H1: true, H2: true,
}

// elementKindForTag resolves a lower-cased tag name to its ElementKind.
// Tags outside the closed set return InvalidTagError: the reduced subset
// intentionally does not support constructing elements from unknown tags.
func elementKindForTag(tag string) (ElementKind, error) {
	k := atom.Lookup([]byte(tag))
	if k == 0 || !supportedKinds[k] {
		return 0, &InvalidTagError{Tag: tag}
	}
	return k, nil
}
