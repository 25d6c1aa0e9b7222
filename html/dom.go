// Package html implements the reduced HTML5 tokenizer and tree-construction
// state machines described in SPEC_FULL.md, and the DOM data model they
// build into.
package html

// NodeType distinguishes the three DOM node variants the reduced subset
// supports. There is no CommentNode or DoctypeNode: the tokenizer never
// emits tokens for either, so the tree constructor never needs them.
type NodeType int

const (
	DocumentNode NodeType = iota
	ElementNode
	TextNode
)

// Attribute is a single name/value pair on an Element, built
// character-by-character by the tokenizer.
type Attribute struct {
	Name  string
	Value string
}

// Node is a single node in the DOM tree. Which fields are meaningful depends
// on Type: Kind and Attrs only apply to ElementNode, Data only to TextNode.
//
// Ownership discipline (SPEC_FULL.md §3): a node exclusively owns FirstChild
// and NextSibling. Parent, PrevSibling, LastChild and Window are weak
// back-references: they exist for traversal but nothing frees or copies a
// node because one of them points at it. Go's garbage collector makes the
// cycle-safety argument moot at the memory-management level, but the
// invariant still matters semantically — only the tree constructor may ever
// assign these fields, and it does so in exactly one direction at a time
// (see insertElement / insertChar in treebuilder.go).
type Node struct {
	Type NodeType

	Kind  ElementKind // ElementNode only
	Attrs []Attribute // ElementNode only
	Data  string      // TextNode only

	Parent      *Node // weak
	FirstChild  *Node // owning
	LastChild   *Node // weak
	PrevSibling *Node // weak
	NextSibling *Node // owning

	Window *Window // weak
}

// Attr looks up an attribute by name on an ElementNode. It returns ("",
// false) if Type is not ElementNode or no such attribute was set.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Document is the root node of a Window's tree. It is always a Node with
// Type == DocumentNode; Document exists as a distinct name only to make the
// Window's single entry point self-documenting.
type Document = Node

// Window owns the root Document node and is the single entry point through
// which a constructed tree is reached. Nothing outside the tree constructor
// creates a Window.
type Window struct {
	Document *Document
}

// NewWindow allocates a Window around a fresh, empty Document node.
func NewWindow() *Window {
	doc := &Node{Type: DocumentNode}
	w := &Window{Document: doc}
	doc.Window = w
	return w
}
