package dom

// Attr is the view over an AttributeNode. Attributes are owned by their
// element's attribute map and never appear in a child list; they have no
// tree parent.
type Attr Node

// AsNode returns the underlying Node.
func (a *Attr) AsNode() *Node {
	return (*Node)(a)
}

// Name returns the attribute's qualified name.
func (a *Attr) Name() Name {
	return a.AsNode().name
}

// Value returns the attribute value; the second result is false if no value
// has been set.
func (a *Attr) Value() (string, bool) {
	return a.AsNode().NodeValue()
}

// SetValue sets the attribute value. The attribute's name is unaffected.
func (a *Attr) SetValue(value string) error {
	return a.AsNode().SetNodeValue(value)
}

// UnsetValue clears the attribute value.
func (a *Attr) UnsetValue() error {
	return a.AsNode().UnsetNodeValue()
}

// Specified reports whether the attribute was explicitly given a value.
// Without DTD default-attribute support every attribute is explicit.
func (a *Attr) Specified() bool {
	return true
}
