package html

// insertionMode is the tree constructor's current state, selecting the
// dispatch table for the next token (SPEC_FULL.md §4.4 / GLOSSARY).
type insertionMode int

const (
	initialMode insertionMode = iota
	beforeHTMLMode
	beforeHeadMode
	inHeadMode
	afterHeadMode
	inBodyMode
	textMode
	afterBodyMode
	afterAfterBodyMode
)

// nodeStack is a LIFO list of element handles whose end tag has not yet
// been processed (GLOSSARY: "stack of open elements"). Grounded on the
// teacher's chtml/html/node.go nodeStack, generalized from golang.org/x/net/html.Node
// to this package's own Node type.
type nodeStack []*Node

func (s *nodeStack) push(n *Node) { *s = append(*s, n) }

func (s *nodeStack) pop() *Node {
	i := len(*s) - 1
	n := (*s)[i]
	*s = (*s)[:i]
	return n
}

func (s *nodeStack) top() *Node {
	if i := len(*s); i > 0 {
		return (*s)[i-1]
	}
	return nil
}

// TreeBuilder implements the tree-construction algorithm of SPEC_FULL.md
// §4.4: a second state machine, driven by the tokens of a Tokenizer, that
// builds a Window's DOM tree.
type TreeBuilder struct {
	tz *Tokenizer

	window     *Window
	im         insertionMode
	originalIM insertionMode
	oe         nodeStack // stack of open elements

	opts *options
}

// NewTreeBuilder creates a TreeBuilder that will consume tokens from tz.
func NewTreeBuilder(tz *Tokenizer, opts ...Option) *TreeBuilder {
	return &TreeBuilder{
		tz:     tz,
		window: NewWindow(),
		im:     initialMode,
		opts:   newOptions(opts),
	}
}

// ConstructTree drives the tree constructor to completion and returns the
// Window it built. This is the package's tree-construction entry point, mirroring
// SPEC_FULL.md §6's `HtmlParser::construct_tree(tokenizer) -> Window`.
func ConstructTree(tz *Tokenizer, opts ...Option) *Window {
	return NewTreeBuilder(tz, opts...).Run()
}

// top returns the current node: the top of the stack of open elements, or
// the Document if the stack is empty.
func (b *TreeBuilder) top() *Node {
	if n := b.oe.top(); n != nil {
		return n
	}
	return b.window.Document
}

// popTrailingText drops any Text entries off the top of the stack of open
// elements. A Text node is only ever pushed so further characters can be
// appended to it in place; it is never a valid parent for an element, so
// insertElement's step 1 removes it before choosing the insertion parent
// (SPEC_FULL.md §4.4 invariant 4).
func (b *TreeBuilder) popTrailingText() {
	for len(b.oe) > 0 && b.oe.top().Type == TextNode {
		b.oe.pop()
	}
}

// appendChild links child as the last sibling of parent's children, per the
// sibling-chain algorithm shared by insertElement and insertChar.
func appendChild(parent, child *Node) {
	child.Parent = parent
	if parent.FirstChild == nil {
		parent.FirstChild = child
	} else {
		last := parent.FirstChild
		for last.NextSibling != nil {
			last = last.NextSibling
		}
		last.NextSibling = child
		child.PrevSibling = last
	}
	parent.LastChild = child
}

// insertElement implements SPEC_FULL.md §4.4's insert-element algorithm: it
// resolves tag to an ElementKind, allocates the node, links it into the
// tree, and pushes it onto the stack of open elements.
func (b *TreeBuilder) insertElement(tag string, attrs []Attribute) (*Node, error) {
	kind, err := elementKindForTag(tag)
	if err != nil {
		return nil, err
	}

	b.popTrailingText()

	n := &Node{
		Type:   ElementNode,
		Kind:   kind,
		Attrs:  attrs,
		Window: b.window,
	}

	appendChild(b.top(), n)
	b.oe.push(n)
	return n, nil
}

// insertChar implements SPEC_FULL.md §4.4's insert-character algorithm.
func (b *TreeBuilder) insertChar(c byte) {
	if top := b.oe.top(); top != nil && top.Type == TextNode {
		top.Data += string(c)
		return
	}

	if c == ' ' || c == '\n' {
		return
	}

	n := &Node{Type: TextNode, Data: string(c), Window: b.window}
	appendChild(b.top(), n)
	b.oe.push(n)
}

// popToTagInclusive pops the stack of open elements until (and including)
// the topmost element of the given kind, if any is present.
func (b *TreeBuilder) popToTagInclusive(kind ElementKind) {
	for i := len(b.oe) - 1; i >= 0; i-- {
		if b.oe[i].Type == ElementNode && b.oe[i].Kind == kind {
			b.oe = b.oe[:i]
			return
		}
	}
}

// Run is the driver: pull tokens and dispatch on the current insertion
// mode until the token source is exhausted. Most modes advance the token
// and/or change mode; some reconsume the same token under a new mode by
// simply not pulling a new one on the next iteration.
func (b *TreeBuilder) Run() *Window {
	var tok Token
	haveTok := false

	for {
		if !haveTok {
			tok = b.tz.Next()
		}
		haveTok = false

		done := b.step(tok, func() { haveTok = true })
		if done {
			return b.window
		}
	}
}

// step dispatches tok under the current insertion mode. If the mode wants
// to reconsume tok under a new mode, it calls reconsume() instead of
// letting Run pull a fresh token on the next iteration. step returns true
// once construction should stop.
func (b *TreeBuilder) step(tok Token, reconsume func()) bool {
	switch b.im {
	case initialMode:
		if tok.Type == CharToken {
			return false
		}
		b.im = beforeHTMLMode
		reconsume()
		return false

	case beforeHTMLMode:
		switch {
		case tok.Type == CharToken && isWhitespace(tok.Data[0]):
			return false
		case tok.Type == StartTagToken && tok.Name == "html":
			if _, err := b.insertElement("html", tok.Attrs); err != nil {
				b.opts.logger.Error("insert element", "tag", tok.Name, "error", err)
			}
			b.im = beforeHeadMode
			return false
		case tok.Type == EOFToken:
			return true
		default:
			// synthesize an implicit <html> and reconsume in BeforeHead.
			if _, err := b.insertElement("html", nil); err != nil {
				b.opts.logger.Error("insert element", "tag", "html", "error", err)
			}
			b.im = beforeHeadMode
			reconsume()
			return false
		}

	case beforeHeadMode:
		switch {
		case tok.Type == CharToken && isWhitespace(tok.Data[0]):
			return false
		case tok.Type == StartTagToken && tok.Name == "head":
			if _, err := b.insertElement("head", tok.Attrs); err != nil {
				b.opts.logger.Error("insert element", "tag", tok.Name, "error", err)
			}
			b.im = inHeadMode
			return false
		case tok.Type == EOFToken:
			return true
		default:
			if _, err := b.insertElement("head", nil); err != nil {
				b.opts.logger.Error("insert element", "tag", "head", "error", err)
			}
			b.im = inHeadMode
			reconsume()
			return false
		}

	case inHeadMode:
		switch {
		case tok.Type == CharToken && isWhitespace(tok.Data[0]):
			b.insertChar(tok.Data[0])
			return false
		case tok.Type == StartTagToken && tok.Name == "style":
			if _, err := b.insertElement("style", tok.Attrs); err != nil {
				b.opts.logger.Error("insert element", "tag", tok.Name, "error", err)
			}
			b.originalIM = b.im
			b.im = textMode
			return false
		case tok.Type == StartTagToken && tok.Name == "body":
			b.popToTagInclusive(Head)
			b.im = afterHeadMode
			reconsume()
			return false
		case tok.Type == EndTagToken && tok.Name == "head":
			b.popToTagInclusive(Head)
			b.im = afterHeadMode
			return false
		case tok.Type == EOFToken:
			return true
		default:
			return false
		}

	case afterHeadMode:
		switch {
		case tok.Type == CharToken && isWhitespace(tok.Data[0]):
			b.insertChar(tok.Data[0])
			return false
		case tok.Type == StartTagToken && tok.Name == "body":
			if _, err := b.insertElement("body", tok.Attrs); err != nil {
				b.opts.logger.Error("insert element", "tag", tok.Name, "error", err)
			}
			b.im = inBodyMode
			return false
		case tok.Type == EOFToken:
			return true
		default:
			if _, err := b.insertElement("body", nil); err != nil {
				b.opts.logger.Error("insert element", "tag", "body", "error", err)
			}
			b.im = inBodyMode
			reconsume()
			return false
		}

	case inBodyMode:
		return b.stepInBody(tok)

	case textMode:
		switch {
		case tok.Type == CharToken:
			b.insertChar(tok.Data[0])
			return false
		case tok.Type == EndTagToken && tok.Name == "style":
			b.popToTagInclusive(Style)
			b.im = b.originalIM
			return false
		case tok.Type == EOFToken:
			return true
		default:
			b.im = b.originalIM
			reconsume()
			return false
		}

	case afterBodyMode:
		switch {
		case tok.Type == CharToken:
			return false
		case tok.Type == EndTagToken && tok.Name == "html":
			b.im = afterAfterBodyMode
			return false
		case tok.Type == EOFToken:
			return true
		default:
			b.im = inBodyMode
			reconsume()
			return false
		}

	case afterAfterBodyMode:
		switch {
		case tok.Type == CharToken:
			return false
		case tok.Type == EOFToken:
			return true
		default:
			b.im = inBodyMode
			reconsume()
			return false
		}
	}
	return true
}

// inBodyTags is the subset of the closed element set that InBody knows how
// to open and close: p, a, h1, h2.
var inBodyTags = map[string]ElementKind{
	"p": P, "a": A, "h1": H1, "h2": H2,
}

func (b *TreeBuilder) stepInBody(tok Token) bool {
	switch tok.Type {
	case StartTagToken:
		if _, ok := inBodyTags[tok.Name]; ok {
			if _, err := b.insertElement(tok.Name, tok.Attrs); err != nil {
				b.opts.logger.Error("insert element", "tag", tok.Name, "error", err)
			}
			return false
		}
		b.opts.logger.Debug("unknown start tag discarded in body", "tag", tok.Name)
		return false

	case EndTagToken:
		switch {
		case tok.Name == "body":
			b.popToTagInclusive(Body)
			b.im = afterBodyMode
			return false
		case tok.Name == "html":
			if top := b.oe.top(); top != nil && top.Type == ElementNode && top.Kind == Body {
				b.oe.pop()
				if top = b.oe.top(); top != nil && top.Type == ElementNode && top.Kind == Html {
					b.oe.pop()
				}
			}
			b.im = afterAfterBodyMode
			return false
		default:
			if kind, ok := inBodyTags[tok.Name]; ok {
				b.popToTagInclusive(kind)
				return false
			}
			b.opts.logger.Debug("unknown end tag discarded in body", "tag", tok.Name)
			return false
		}

	case CharToken:
		b.insertChar(tok.Data[0])
		return false

	case EOFToken:
		return true
	}
	return true
}
