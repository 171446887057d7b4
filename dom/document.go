package dom

import (
	"github.com/sirupsen/logrus"
)

// Document is the view over a DocumentNode. It owns the doctype and
// document-element slots and is the factory for every other node kind; all
// nodes it creates are detached and record this document as their owner.
type Document Node

// AsNode returns the underlying Node.
func (d *Document) AsNode() *Node {
	return (*Node)(d)
}

func (d *Document) data() *documentData {
	if d.AsNode().document == nil {
		logrus.Warn(msgInvalidExtension)
		return &documentData{}
	}
	return d.AsNode().document
}

// DocType returns the document type declaration node, or nil.
func (d *Document) DocType() *Node {
	return d.data().docType
}

// DocumentElement returns the root element, or nil.
func (d *Document) DocumentElement() *Node {
	return d.data().documentElement
}

// Implementation returns the Implementation that created this document.
func (d *Document) Implementation() *Implementation {
	return d.data().implementation
}

// CreateElement creates a detached element with the given tag name.
func (d *Document) CreateElement(tagName string) (*Node, error) {
	name, err := ParseName(tagName)
	if err != nil {
		return nil, err
	}
	return newElementNode(d.AsNode(), name), nil
}

// CreateElementNS creates a detached element with a namespace-qualified name.
func (d *Document) CreateElementNS(namespaceURI, qualifiedName string) (*Node, error) {
	name, err := NewNameNS(namespaceURI, qualifiedName)
	if err != nil {
		return nil, err
	}
	return newElementNode(d.AsNode(), name), nil
}

// CreateAttribute creates a detached attribute with no value.
func (d *Document) CreateAttribute(name string) (*Node, error) {
	attrName, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	return newAttributeNode(d.AsNode(), attrName, nil), nil
}

// CreateAttributeWith creates a detached attribute with an initial value.
func (d *Document) CreateAttributeWith(name, value string) (*Node, error) {
	attrName, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	return newAttributeNode(d.AsNode(), attrName, &value), nil
}

// CreateAttributeNS creates a detached attribute with a namespace-qualified
// name and no value.
func (d *Document) CreateAttributeNS(namespaceURI, qualifiedName string) (*Node, error) {
	attrName, err := NewNameNS(namespaceURI, qualifiedName)
	if err != nil {
		return nil, err
	}
	return newAttributeNode(d.AsNode(), attrName, nil), nil
}

// CreateTextNode creates a detached text node holding data.
func (d *Document) CreateTextNode(data string) *Node {
	return newCharacterDataNode(TextNode, "#text", d.AsNode(), data)
}

// CreateCDATASection creates a detached CDATA section holding data.
func (d *Document) CreateCDATASection(data string) (*Node, error) {
	return newCharacterDataNode(CDATASectionNode, "#cdata-section", d.AsNode(), data), nil
}

// CreateComment creates a detached comment holding data.
func (d *Document) CreateComment(data string) *Node {
	return newCharacterDataNode(CommentNode, "#comment", d.AsNode(), data)
}

// CreateDocumentFragment creates an empty detached fragment.
func (d *Document) CreateDocumentFragment() (*Node, error) {
	return newNode(DocumentFragmentNode, Name{localName: "#document-fragment"}, d.AsNode()), nil
}

// CreateEntityReference creates a detached entity reference to name.
func (d *Document) CreateEntityReference(name string) (*Node, error) {
	refName, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	return newNode(EntityReferenceNode, refName, d.AsNode()), nil
}

// CreateProcessingInstruction creates a detached processing instruction. An
// empty data string means the instruction carries no data.
func (d *Document) CreateProcessingInstruction(target, data string) (*Node, error) {
	targetName, err := ParseName(target)
	if err != nil {
		return nil, err
	}
	return newProcessingInstructionNode(d.AsNode(), targetName, optional(data)), nil
}

// CreateEntity creates a detached Entity declaration node. Empty identifier
// strings mean the identifier is absent. Register the node with
// DocumentType.AddEntity.
func (d *Document) CreateEntity(name, publicID, systemID string) (*Node, error) {
	entityName, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	return newExternalIDNode(EntityNode, d.AsNode(), entityName, optional(publicID), optional(systemID)), nil
}

// CreateNotation creates a detached Notation declaration node. Register the
// node with DocumentType.AddNotation.
func (d *Document) CreateNotation(name, publicID, systemID string) (*Node, error) {
	notationName, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	return newExternalIDNode(NotationNode, d.AsNode(), notationName, optional(publicID), optional(systemID)), nil
}

// GetElementByID always returns nil. Without schema awareness no attribute
// can authoritatively be treated as an XML identifier, and guessing by the
// attribute name "id" would be wrong more often than right.
func (d *Document) GetElementByID(id string) *Node {
	return nil
}

// GetElementsByTagName returns all elements in the document matching
// tagName, in document order. The search is delegated to the document
// element; "*" matches every element.
func (d *Document) GetElementsByTagName(tagName string) []*Node {
	root := d.data().documentElement
	if root == nil {
		return nil
	}
	element, err := AsElement(root)
	if err != nil {
		logrus.Warn(msgInvalidNodeType)
		return nil
	}
	return element.GetElementsByTagName(tagName)
}

// GetElementsByTagNameNS returns all elements matching the namespace URI and
// local name, in document order, with "*" as a wildcard in either position.
func (d *Document) GetElementsByTagNameNS(namespaceURI, localName string) []*Node {
	root := d.data().documentElement
	if root == nil {
		return nil
	}
	element, err := AsElement(root)
	if err != nil {
		logrus.Warn(msgInvalidNodeType)
		return nil
	}
	return element.GetElementsByTagNameNS(namespaceURI, localName)
}
