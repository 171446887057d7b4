package dom

// Comment is the view over a CommentNode.
type Comment Node

// AsNode returns the underlying Node.
func (c *Comment) AsNode() *Node {
	return (*Node)(c)
}

// CharacterData returns the character-data view of the same node.
func (c *Comment) CharacterData() *CharacterData {
	return (*CharacterData)(c)
}
