package dom

// DocumentFragment is the view over a DocumentFragmentNode: a lightweight
// container for building sibling runs outside a document. Inserting a
// fragment into a tree moves its children, not the fragment itself.
type DocumentFragment Node

// AsNode returns the underlying Node.
func (df *DocumentFragment) AsNode() *Node {
	return (*Node)(df)
}
