package dom

// Kind-checked conversions from the generic Node to its typed views. Each
// returns an InvalidStateError when the node is of the wrong kind; lenient
// call sites log the failure and fall back to a safe default instead of
// propagating it.

// AsElement converts n to an Element view.
func AsElement(n *Node) (*Element, error) {
	if n == nil || n.nodeType != ElementNode {
		return nil, ErrInvalidState("node is not an Element")
	}
	return (*Element)(n), nil
}

// AsAttr converts n to an Attr view.
func AsAttr(n *Node) (*Attr, error) {
	if n == nil || n.nodeType != AttributeNode {
		return nil, ErrInvalidState("node is not an Attr")
	}
	return (*Attr)(n), nil
}

// AsCharacterData converts n to a CharacterData view. Text, CDATA sections
// and comments all carry character data.
func AsCharacterData(n *Node) (*CharacterData, error) {
	if n == nil {
		return nil, ErrInvalidState("node is not character data")
	}
	switch n.nodeType {
	case TextNode, CDATASectionNode, CommentNode:
		return (*CharacterData)(n), nil
	}
	return nil, ErrInvalidState("node is not character data")
}

// AsText converts n to a Text view. CDATA sections are accepted too, since
// CDATASection specializes Text.
func AsText(n *Node) (*Text, error) {
	if n == nil || (n.nodeType != TextNode && n.nodeType != CDATASectionNode) {
		return nil, ErrInvalidState("node is not a Text node")
	}
	return (*Text)(n), nil
}

// AsCDATASection converts n to a CDATASection view.
func AsCDATASection(n *Node) (*CDATASection, error) {
	if n == nil || n.nodeType != CDATASectionNode {
		return nil, ErrInvalidState("node is not a CDATASection")
	}
	return (*CDATASection)(n), nil
}

// AsComment converts n to a Comment view.
func AsComment(n *Node) (*Comment, error) {
	if n == nil || n.nodeType != CommentNode {
		return nil, ErrInvalidState("node is not a Comment")
	}
	return (*Comment)(n), nil
}

// AsProcessingInstruction converts n to a ProcessingInstruction view.
func AsProcessingInstruction(n *Node) (*ProcessingInstruction, error) {
	if n == nil || n.nodeType != ProcessingInstructionNode {
		return nil, ErrInvalidState("node is not a ProcessingInstruction")
	}
	return (*ProcessingInstruction)(n), nil
}

// AsDocument converts n to a Document view.
func AsDocument(n *Node) (*Document, error) {
	if n == nil || n.nodeType != DocumentNode {
		return nil, ErrInvalidState("node is not a Document")
	}
	return (*Document)(n), nil
}

// AsDocumentType converts n to a DocumentType view.
func AsDocumentType(n *Node) (*DocumentType, error) {
	if n == nil || n.nodeType != DocumentTypeNode {
		return nil, ErrInvalidState("node is not a DocumentType")
	}
	return (*DocumentType)(n), nil
}

// AsDocumentFragment converts n to a DocumentFragment view.
func AsDocumentFragment(n *Node) (*DocumentFragment, error) {
	if n == nil || n.nodeType != DocumentFragmentNode {
		return nil, ErrInvalidState("node is not a DocumentFragment")
	}
	return (*DocumentFragment)(n), nil
}

// AsEntity converts n to an Entity view.
func AsEntity(n *Node) (*Entity, error) {
	if n == nil || n.nodeType != EntityNode {
		return nil, ErrInvalidState("node is not an Entity")
	}
	return (*Entity)(n), nil
}

// AsEntityReference converts n to an EntityReference view.
func AsEntityReference(n *Node) (*EntityReference, error) {
	if n == nil || n.nodeType != EntityReferenceNode {
		return nil, ErrInvalidState("node is not an EntityReference")
	}
	return (*EntityReference)(n), nil
}

// AsNotation converts n to a Notation view.
func AsNotation(n *Node) (*Notation, error) {
	if n == nil || n.nodeType != NotationNode {
		return nil, ErrInvalidState("node is not a Notation")
	}
	return (*Notation)(n), nil
}
