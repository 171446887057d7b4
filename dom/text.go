package dom

// Text is the view over a TextNode. CDATA sections share the view, since
// CDATASection specializes Text.
type Text Node

// AsNode returns the underlying Node.
func (t *Text) AsNode() *Node {
	return (*Node)(t)
}

// CharacterData returns the character-data view of the same node.
func (t *Text) CharacterData() *CharacterData {
	return (*CharacterData)(t)
}

// Split breaks the node in two at offset. The original keeps the data before
// the offset; the returned node, of the same kind (Text or CDATA) and owned
// by the same document, carries the data at and after it. An offset at or
// past the end yields an empty new node. If the original has a parent the
// new node is inserted as its immediate next sibling; otherwise it is
// returned detached. Fails with SyntaxError on any other node kind.
func (t *Text) Split(offset int) (*Node, error) {
	n := t.AsNode()
	if n.nodeType != TextNode && n.nodeType != CDATASectionNode {
		return nil, ErrSyntax("split requires a Text or CDATASection node")
	}
	if offset < 0 {
		return nil, ErrIndexSize("offset must not be negative")
	}

	cd := t.CharacterData()
	newData := ""
	if length := cd.Length(); offset < length {
		var err error
		newData, err = cd.Substring(offset, length-offset)
		if err != nil {
			return nil, err
		}
		if err := cd.DeleteData(offset, length-offset); err != nil {
			return nil, err
		}
	}

	var newNode *Node
	if n.nodeType == TextNode {
		newNode = newCharacterDataNode(TextNode, "#text", n.ownerDoc, newData)
	} else {
		newNode = newCharacterDataNode(CDATASectionNode, "#cdata-section", n.ownerDoc, newData)
	}

	if n.parent != nil {
		if _, err := n.parent.InsertBefore(newNode, n.NextSibling()); err != nil {
			return nil, err
		}
	}
	return newNode, nil
}

// CDATASection is the view over a CDATASectionNode.
type CDATASection Node

// AsNode returns the underlying Node.
func (c *CDATASection) AsNode() *Node {
	return (*Node)(c)
}

// Text returns the Text view of the same node, through which Split and the
// character-data operations are available.
func (c *CDATASection) Text() *Text {
	return (*Text)(c)
}
