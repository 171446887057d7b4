// Package dom provides an in-memory, mutable tree representation of an XML
// document conforming to the DOM Level 2 Core interfaces: elements,
// attributes, character data, comments, processing instructions, entities,
// notations, and document type declarations.
//
// Every node in a tree is a *Node. Kind-specific operations are exposed
// through typed views (Element, Document, Text, ...) obtained with the As*
// conversion functions. Trees are not safe for concurrent mutation; callers
// that share a tree across goroutines must serialize access with one lock
// around the whole tree.
package dom

// NodeType identifies the kind of a Node. The numbering follows the DOM
// specification and is fixed at node creation.
type NodeType uint16

const (
	// ElementNode represents an Element.
	ElementNode NodeType = 1
	// AttributeNode represents an Attr.
	AttributeNode NodeType = 2
	// TextNode represents a Text node.
	TextNode NodeType = 3
	// CDATASectionNode represents a CDATASection.
	CDATASectionNode NodeType = 4
	// EntityReferenceNode represents an EntityReference.
	EntityReferenceNode NodeType = 5
	// EntityNode represents an Entity declared in the DTD.
	EntityNode NodeType = 6
	// ProcessingInstructionNode represents a ProcessingInstruction.
	ProcessingInstructionNode NodeType = 7
	// CommentNode represents a Comment.
	CommentNode NodeType = 8
	// DocumentNode represents a Document.
	DocumentNode NodeType = 9
	// DocumentTypeNode represents a DocumentType.
	DocumentTypeNode NodeType = 10
	// DocumentFragmentNode represents a DocumentFragment.
	DocumentFragmentNode NodeType = 11
	// NotationNode represents a Notation declared in the DTD.
	NotationNode NodeType = 12
)

// String returns the DOM constant name for the node type.
func (nt NodeType) String() string {
	switch nt {
	case ElementNode:
		return "ELEMENT_NODE"
	case AttributeNode:
		return "ATTRIBUTE_NODE"
	case TextNode:
		return "TEXT_NODE"
	case CDATASectionNode:
		return "CDATA_SECTION_NODE"
	case EntityReferenceNode:
		return "ENTITY_REFERENCE_NODE"
	case EntityNode:
		return "ENTITY_NODE"
	case ProcessingInstructionNode:
		return "PROCESSING_INSTRUCTION_NODE"
	case CommentNode:
		return "COMMENT_NODE"
	case DocumentNode:
		return "DOCUMENT_NODE"
	case DocumentTypeNode:
		return "DOCUMENT_TYPE_NODE"
	case DocumentFragmentNode:
		return "DOCUMENT_FRAGMENT_NODE"
	case NotationNode:
		return "NOTATION_NODE"
	default:
		return "UNKNOWN_NODE"
	}
}
