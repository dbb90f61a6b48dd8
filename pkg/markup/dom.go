package markup

import "strings"

// Node is one node in the element tree. Element nodes carry a tag name and
// attributes; text nodes carry only Text. The tree is built by Parse and is
// read-only afterwards: style resolution and layout attach their results to
// their own structures, never to the Node.
type Node struct {
	Type       NodeType
	TagName    string
	Attributes map[string]string
	Text       string
	Children   []*Node
	Parent     *Node // non-owning back-reference
}

type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

// Document is the root of a parsed markup tree. Root is a synthetic
// "document" element whose children are the top-level elements.
type Document struct {
	Root        *Node
	Stylesheets []string // CSS text from <style> elements, in document order
}

func NewDocument() *Document {
	return &Document{
		Root: &Node{
			Type:     ElementNode,
			TagName:  "document",
			Children: make([]*Node, 0),
		},
		Stylesheets: make([]string, 0),
	}
}

func (n *Node) GetAttribute(name string) (string, bool) {
	if n.Attributes == nil {
		return "", false
	}
	val, ok := n.Attributes[name]
	return val, ok
}

// ID returns the element's id attribute, or "" if unset.
func (n *Node) ID() string {
	id, _ := n.GetAttribute("id")
	return id
}

// Classes returns the element's class tokens.
func (n *Node) Classes() []string {
	class, ok := n.GetAttribute("class")
	if !ok {
		return nil
	}
	return strings.Fields(class)
}

// HasClass reports whether the element carries the given class token.
func (n *Node) HasClass(name string) bool {
	for _, c := range n.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// InlineStyle returns the raw style attribute text, or "" if unset.
func (n *Node) InlineStyle() string {
	style, _ := n.GetAttribute("style")
	return style
}

// AddChild appends a child node and sets up the parent relationship.
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// AppendText creates a text node child. Empty text is dropped.
func (n *Node) AppendText(text string) {
	if text == "" {
		return
	}
	n.Children = append(n.Children, &Node{
		Type:   TextNode,
		Text:   text,
		Parent: n,
	})
}

// TextContent returns the concatenated text of this node and its descendants.
func (n *Node) TextContent() string {
	if n.Type == TextNode {
		return n.Text
	}
	var sb strings.Builder
	for _, child := range n.Children {
		sb.WriteString(child.TextContent())
	}
	return sb.String()
}

// PreviousElementSibling returns the nearest preceding element sibling,
// or nil if there is none.
func (n *Node) PreviousElementSibling() *Node {
	if n.Parent == nil {
		return nil
	}
	var prev *Node
	for _, sibling := range n.Parent.Children {
		if sibling == n {
			return prev
		}
		if sibling.Type == ElementNode {
			prev = sibling
		}
	}
	return nil
}

// Walk visits n and every descendant in document order. Returning false from
// fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// DuplicateIDs returns every id value that appears on more than one element.
// Duplicate ids are a document defect but not an error; callers log them.
func (d *Document) DuplicateIDs() []string {
	seen := make(map[string]int)
	d.Root.Walk(func(n *Node) bool {
		if n.Type == ElementNode {
			if id := n.ID(); id != "" {
				seen[id]++
			}
		}
		return true
	})
	dups := make([]string, 0)
	for id, count := range seen {
		if count > 1 {
			dups = append(dups, id)
		}
	}
	return dups
}
