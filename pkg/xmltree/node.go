package xmltree

// Attr is a single name/value attribute pair.
type Attr struct {
	Name  string
	Value string
}

// Node is one element in a document tree: a tag, an ordered attribute list,
// optional text content, and ordered children. Nodes carry no schema
// knowledge; the builders in pkg/qualform are responsible for shape. A node
// is owned by its parent and trees never contain cycles.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	CDATA    bool
	Children []*Node
}

// New returns an empty element with the given tag.
func New(tag string) *Node {
	return &Node{Tag: tag}
}

// Element returns a leaf element carrying text content.
func Element(tag, text string) *Node {
	return &Node{Tag: tag, Text: text}
}

// SetAttr sets an attribute, replacing an existing value in place so the
// attribute order stays the order of first assignment.
func (n *Node) SetAttr(name, value string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

// Attr returns the value of the named attribute and whether it is set.
func (n *Node) Attr(name string) (string, bool) {
	for _, attr := range n.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// SetText replaces the node's text content.
func (n *Node) SetText(text string) *Node {
	n.Text = text
	n.CDATA = false
	return n
}

// SetCDATA replaces the node's text content with a literal CDATA section.
// The encoder emits it unescaped.
func (n *Node) SetCDATA(text string) *Node {
	n.Text = text
	n.CDATA = true
	return n
}

// AppendChild appends children in call order. Child order is significant in
// the rendered output.
func (n *Node) AppendChild(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}
