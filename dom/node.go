package dom

import (
	"github.com/sirupsen/logrus"
)

// Warning messages for soft invariant violations. These are logged, not
// returned: lenient accessors degrade to a safe default so that malformed
// usage stays observable without crashing consumers.
const (
	msgInvalidNodeType  = "node type does not support this operation"
	msgInvalidExtension = "node extension does not match its node type"
	msgInvalidName      = "could not parse name"
)

// Node is the single concrete representation behind every node kind. The
// kind tag and name are fixed at creation; kind-specific state lives in
// exactly one of the extension fields. Child links are owning references in
// document order; parent and owner-document links are back-references.
type Node struct {
	nodeType NodeType
	name     Name
	value    *string
	parent   *Node
	ownerDoc *Node
	children []*Node

	// Extension data; at most one is non-nil, matching nodeType.
	element  *elementData
	document *documentData
	docType  *docTypeData
	external *externalID
}

// elementData holds Element state: the attribute map (sole owner of the
// element's attribute nodes; attributes are not children) and the
// prefix-to-URI bindings declared by xmlns attributes on this element.
type elementData struct {
	attributes map[Name]*Node
	namespaces map[string]string
}

// documentData holds Document state. The document element and doctype are
// held in dedicated slots rather than the generic child list, so the child
// list carries only comments and processing instructions.
type documentData struct {
	docType         *Node
	documentElement *Node
	implementation  *Implementation
}

// docTypeData holds DocumentType state.
type docTypeData struct {
	publicID       *string
	systemID       *string
	internalSubset *string
	entities       map[Name]*Node
	notations      map[Name]*Node
}

// externalID holds the public/system identifiers shared by Entity and
// Notation nodes.
type externalID struct {
	publicID *string
	systemID *string
}

func newNode(nodeType NodeType, name Name, ownerDoc *Node) *Node {
	return &Node{
		nodeType: nodeType,
		name:     name,
		ownerDoc: ownerDoc,
	}
}

func newElementNode(ownerDoc *Node, name Name) *Node {
	n := newNode(ElementNode, name, ownerDoc)
	n.element = &elementData{
		attributes: make(map[Name]*Node),
		namespaces: make(map[string]string),
	}
	return n
}

func newAttributeNode(ownerDoc *Node, name Name, value *string) *Node {
	n := newNode(AttributeNode, name, ownerDoc)
	n.value = value
	return n
}

func newCharacterDataNode(nodeType NodeType, nodeName string, ownerDoc *Node, data string) *Node {
	n := newNode(nodeType, Name{localName: nodeName}, ownerDoc)
	n.value = &data
	return n
}

func newProcessingInstructionNode(ownerDoc *Node, target Name, data *string) *Node {
	n := newNode(ProcessingInstructionNode, target, ownerDoc)
	n.value = data
	return n
}

func newDocumentNode(impl *Implementation) *Node {
	n := newNode(DocumentNode, Name{localName: "#document"}, nil)
	n.document = &documentData{implementation: impl}
	return n
}

func newDocumentTypeNode(name Name, publicID, systemID *string) *Node {
	n := newNode(DocumentTypeNode, name, nil)
	n.docType = &docTypeData{
		publicID:  publicID,
		systemID:  systemID,
		entities:  make(map[Name]*Node),
		notations: make(map[Name]*Node),
	}
	return n
}

func newExternalIDNode(nodeType NodeType, ownerDoc *Node, name Name, publicID, systemID *string) *Node {
	n := newNode(nodeType, name, ownerDoc)
	n.external = &externalID{publicID: publicID, systemID: systemID}
	return n
}

// NodeType returns the kind of the node.
func (n *Node) NodeType() NodeType {
	return n.nodeType
}

// Name returns the node's name. For elements and attributes this is the
// qualified name; for kinds without a meaningful name it is the DOM
// placeholder ("#text", "#document", ...).
func (n *Node) Name() Name {
	return n.name
}

// NodeName returns the canonical string form of the node's name.
func (n *Node) NodeName() string {
	return n.name.String()
}

// NodeValue returns the generic node value and whether one is set. The
// meaning depends on the kind: character data for Text/CDATA/Comment, the
// attribute value for Attr, the data for ProcessingInstruction.
func (n *Node) NodeValue() (string, bool) {
	if n.value == nil {
		return "", false
	}
	return *n.value, true
}

// SetNodeValue sets the node value.
func (n *Node) SetNodeValue(value string) error {
	n.value = &value
	return nil
}

// UnsetNodeValue clears the node value.
func (n *Node) UnsetNodeValue() error {
	n.value = nil
	return nil
}

// ParentNode returns the parent, or nil for detached nodes and for kinds
// that never have a parent (Attr, Document, DocumentFragment, Entity,
// Notation).
func (n *Node) ParentNode() *Node {
	return n.parent
}

// OwnerDocument returns the Document that created this node, or nil for
// Document nodes themselves and for nodes created without a document.
func (n *Node) OwnerDocument() *Node {
	return n.ownerDoc
}

// ChildNodes returns the children in document order. The returned slice is
// a copy; mutating it does not affect the tree.
func (n *Node) ChildNodes() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// HasChildNodes reports whether the node has any children.
func (n *Node) HasChildNodes() bool {
	return len(n.children) > 0
}

// PreviousSibling returns the node immediately preceding this one in its
// parent's child list, or nil at the boundary or for detached nodes.
func (n *Node) PreviousSibling() *Node {
	if n.parent == nil {
		return nil
	}
	idx := n.parent.indexOfChild(n)
	if idx <= 0 {
		return nil
	}
	return n.parent.children[idx-1]
}

// NextSibling returns the node immediately following this one in its
// parent's child list, or nil at the boundary or for detached nodes.
func (n *Node) NextSibling() *Node {
	if n.parent == nil {
		return nil
	}
	idx := n.parent.indexOfChild(n)
	if idx < 0 || idx+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[idx+1]
}

// Attributes returns a copy of the attribute map for Element nodes. For any
// other kind it logs a warning and returns an empty map.
func (n *Node) Attributes() map[Name]*Node {
	if n.nodeType != ElementNode || n.element == nil {
		logrus.Warn(msgInvalidNodeType)
		return map[Name]*Node{}
	}
	out := make(map[Name]*Node, len(n.element.attributes))
	for name, attr := range n.element.attributes {
		out[name] = attr
	}
	return out
}

// HasAttributes reports whether the node is an Element with at least one
// attribute.
func (n *Node) HasAttributes() bool {
	return n.nodeType == ElementNode && n.element != nil && len(n.element.attributes) > 0
}

// IsSupported reports whether the implementation behind this node's owner
// document supports the named feature. Nodes without an owner document fall
// back to a default Implementation.
func (n *Node) IsSupported(feature, version string) bool {
	if doc := n.documentNode(); doc != nil && doc.document != nil && doc.document.implementation != nil {
		return doc.document.implementation.HasFeature(feature, version)
	}
	var impl Implementation
	return impl.HasFeature(feature, version)
}

// AppendChild adds newChild to the end of this node's child list, detaching
// it from any previous parent first. It returns the appended node.
//
// It fails with HierarchyRequestError if this kind of node does not accept
// newChild's kind (or newChild is this node or one of its ancestors), and
// with WrongDocumentError if newChild was created by a different document.
func (n *Node) AppendChild(newChild *Node) (*Node, error) {
	return n.InsertBefore(newChild, nil)
}

// InsertBefore inserts newChild immediately before refChild in this node's
// child list. A nil refChild appends; a refChild that is not a child of this
// node also appends. The same validation as AppendChild applies.
//
// Inserting a DocumentFragment moves the fragment's children, one by one,
// instead of the fragment itself.
func (n *Node) InsertBefore(newChild, refChild *Node) (*Node, error) {
	if newChild == nil {
		return nil, ErrNotFound("no child node given")
	}
	if newChild.nodeType == DocumentFragmentNode {
		// Validate every fragment child up front so a rejected one does not
		// leave the fragment half moved.
		children := newChild.ChildNodes()
		for _, c := range children {
			if err := n.validateInsertion(c); err != nil {
				return nil, err
			}
		}
		for _, c := range children {
			if _, err := n.InsertBefore(c, refChild); err != nil {
				return nil, err
			}
		}
		return newChild, nil
	}
	if err := n.validateInsertion(newChild); err != nil {
		return nil, err
	}

	// Re-home the child before linking it in. A node attached elsewhere is
	// detached from its old parent first.
	if newChild.parent != nil {
		newChild.parent.detachChild(newChild)
	}
	owner := n.documentNode()

	if n.nodeType == DocumentNode {
		// The document element and doctype occupy dedicated slots; only
		// comments and processing instructions enter the child list.
		switch newChild.nodeType {
		case ElementNode:
			n.document.documentElement = newChild
			newChild.parent = n
			newChild.ownerDoc = owner
			return newChild, nil
		case DocumentTypeNode:
			n.document.docType = newChild
			newChild.parent = n
			newChild.ownerDoc = owner
			return newChild, nil
		}
	}

	newChild.parent = n
	newChild.ownerDoc = owner
	if refChild == nil {
		n.children = append(n.children, newChild)
		return newChild, nil
	}
	idx := n.indexOfChild(refChild)
	if idx < 0 {
		n.children = append(n.children, newChild)
		return newChild, nil
	}
	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = newChild
	return newChild, nil
}

// ReplaceChild replaces oldChild with newChild in this node's child list and
// returns the replaced node. Replacing a node with itself leaves the tree
// unchanged. It fails with NotFoundError if oldChild is not a child of this
// node; newChild is validated before anything is unlinked, so a rejected
// replacement leaves both nodes' links intact.
func (n *Node) ReplaceChild(newChild, oldChild *Node) (*Node, error) {
	if newChild == nil || oldChild == nil {
		return nil, ErrNotFound("no child node given")
	}
	inSlot := n.isSlotChild(oldChild)
	if !inSlot && n.indexOfChild(oldChild) < 0 {
		return nil, ErrNotFound("node to replace is not a child of this node")
	}
	if newChild == oldChild {
		return oldChild, nil
	}
	if err := n.validateReplacement(newChild, oldChild); err != nil {
		return nil, err
	}
	if newChild.parent != nil {
		newChild.parent.detachChild(newChild)
	}
	owner := n.documentNode()

	if n.nodeType == DocumentNode && n.document != nil {
		switch newChild.nodeType {
		case ElementNode, DocumentTypeNode:
			n.detachChild(oldChild)
			if newChild.nodeType == ElementNode {
				n.document.documentElement = newChild
			} else {
				n.document.docType = newChild
			}
			newChild.parent = n
			newChild.ownerDoc = owner
			return oldChild, nil
		}
		if inSlot {
			n.detachChild(oldChild)
			n.children = append(n.children, newChild)
			newChild.parent = n
			newChild.ownerDoc = owner
			return oldChild, nil
		}
	}

	// The index may have shifted if newChild was an earlier sibling.
	idx := n.indexOfChild(oldChild)
	n.children[idx] = newChild
	newChild.parent = n
	newChild.ownerDoc = owner
	oldChild.parent = nil
	return oldChild, nil
}

// isSlotChild reports whether child occupies one of the document's dedicated
// slots.
func (n *Node) isSlotChild(child *Node) bool {
	return n.nodeType == DocumentNode && n.document != nil &&
		(child == n.document.documentElement || child == n.document.docType)
}

// RemoveChild removes oldChild from this node and returns it. It fails with
// NotFoundError if oldChild is not a child of this node. Removing a
// document's root element or doctype clears the corresponding slot.
func (n *Node) RemoveChild(oldChild *Node) (*Node, error) {
	if oldChild == nil {
		return nil, ErrNotFound("no child node given")
	}
	if n.nodeType == DocumentNode && n.document != nil {
		if oldChild == n.document.documentElement {
			n.document.documentElement = nil
			oldChild.parent = nil
			return oldChild, nil
		}
		if oldChild == n.document.docType {
			n.document.docType = nil
			oldChild.parent = nil
			return oldChild, nil
		}
	}
	idx := n.indexOfChild(oldChild)
	if idx < 0 {
		return nil, ErrNotFound("node to remove is not a child of this node")
	}
	n.children = append(n.children[:idx], n.children[idx+1:]...)
	oldChild.parent = nil
	return oldChild, nil
}

// CloneNode returns a copy of this node, detached from any tree. The clone
// keeps the kind, name, value and, for elements, the attributes and
// namespace declarations. A deep clone also copies the subtree; for a
// document that includes the doctype and document element slots.
func (n *Node) CloneNode(deep bool) *Node {
	return n.clone(n.ownerDoc, deep)
}

// clone copies the node with owner as the copy's owner document. Cloning a
// document switches the owner to the new document for everything below it,
// so the cloned tree is never cross-document.
func (n *Node) clone(owner *Node, deep bool) *Node {
	clone := newNode(n.nodeType, n.name, owner)
	if n.value != nil {
		v := *n.value
		clone.value = &v
	}
	childOwner := owner
	switch {
	case n.element != nil:
		clone.element = &elementData{
			attributes: make(map[Name]*Node, len(n.element.attributes)),
			namespaces: make(map[string]string, len(n.element.namespaces)),
		}
		for name, attr := range n.element.attributes {
			clone.element.attributes[name] = attr.clone(owner, deep)
		}
		for prefix, uri := range n.element.namespaces {
			clone.element.namespaces[prefix] = uri
		}
	case n.document != nil:
		clone.document = &documentData{implementation: n.document.implementation}
		childOwner = clone
		if deep {
			if n.document.docType != nil {
				dt := n.document.docType.clone(childOwner, deep)
				dt.parent = clone
				clone.document.docType = dt
			}
			if n.document.documentElement != nil {
				root := n.document.documentElement.clone(childOwner, deep)
				root.parent = clone
				clone.document.documentElement = root
			}
		}
	case n.docType != nil:
		clone.docType = &docTypeData{
			publicID:       copyString(n.docType.publicID),
			systemID:       copyString(n.docType.systemID),
			internalSubset: copyString(n.docType.internalSubset),
			entities:       make(map[Name]*Node, len(n.docType.entities)),
			notations:      make(map[Name]*Node, len(n.docType.notations)),
		}
		for name, ent := range n.docType.entities {
			clone.docType.entities[name] = ent.clone(owner, deep)
		}
		for name, not := range n.docType.notations {
			clone.docType.notations[name] = not.clone(owner, deep)
		}
	case n.external != nil:
		clone.external = &externalID{
			publicID: copyString(n.external.publicID),
			systemID: copyString(n.external.systemID),
		}
	}
	if deep {
		for _, child := range n.children {
			c := child.clone(childOwner, deep)
			c.parent = clone
			clone.children = append(clone.children, c)
		}
	}
	return clone
}

// Normalize merges adjacent Text children into single nodes and removes
// empty Text children, recursing through the subtree. CDATA sections are
// left untouched.
func (n *Node) Normalize() {
	var normalized []*Node
	for _, child := range n.children {
		if child.nodeType == TextNode {
			data, _ := child.NodeValue()
			if data == "" {
				child.parent = nil
				continue
			}
			if len(normalized) > 0 && normalized[len(normalized)-1].nodeType == TextNode {
				prev := normalized[len(normalized)-1]
				merged, _ := prev.NodeValue()
				merged += data
				prev.value = &merged
				child.parent = nil
				continue
			}
		}
		normalized = append(normalized, child)
	}
	n.children = normalized
	for _, child := range n.children {
		child.Normalize()
	}
	if n.nodeType == DocumentNode && n.document != nil && n.document.documentElement != nil {
		n.document.documentElement.Normalize()
	}
}

// documentNode returns the Document owning this node: the node itself for
// documents, the owner document otherwise.
func (n *Node) documentNode() *Node {
	if n.nodeType == DocumentNode {
		return n
	}
	return n.ownerDoc
}

// indexOfChild locates child by identity in the child list, or -1.
func (n *Node) indexOfChild(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// detachChild unlinks child from this node without error reporting; used
// when re-homing a node that is being inserted elsewhere.
func (n *Node) detachChild(child *Node) {
	if n.nodeType == DocumentNode && n.document != nil {
		if n.document.documentElement == child {
			n.document.documentElement = nil
			child.parent = nil
			return
		}
		if n.document.docType == child {
			n.document.docType = nil
			child.parent = nil
			return
		}
	}
	if idx := n.indexOfChild(child); idx >= 0 {
		n.children = append(n.children[:idx], n.children[idx+1:]...)
	}
	child.parent = nil
}

func (n *Node) validateInsertion(newChild *Node) error {
	return n.validateReplacement(newChild, nil)
}

// validateReplacement checks newChild as a prospective child. A document slot
// occupied by replacing does not count as occupied; pass nil when inserting
// rather than replacing.
func (n *Node) validateReplacement(newChild, replacing *Node) error {
	if !isChildAllowed(n.nodeType, newChild.nodeType) {
		return ErrHierarchyRequest(newChild.nodeType.String() + " is not allowed under " + n.nodeType.String())
	}
	if n.isInclusiveAncestor(newChild) {
		return ErrHierarchyRequest("new child contains this node")
	}
	if n.nodeType == DocumentNode && n.document != nil {
		if newChild.nodeType == ElementNode && n.document.documentElement != nil && n.document.documentElement != replacing {
			return ErrHierarchyRequest("document already has a document element")
		}
		if newChild.nodeType == DocumentTypeNode && n.document.docType != nil && n.document.docType != replacing {
			return ErrHierarchyRequest("document already has a doctype")
		}
	}
	childOwner := newChild.ownerDoc
	parentOwner := n.documentNode()
	if childOwner != nil && parentOwner != nil && childOwner != parentOwner {
		return ErrWrongDocument("new child belongs to a different document")
	}
	return nil
}

// isInclusiveAncestor reports whether node is this node or an ancestor of it.
func (n *Node) isInclusiveAncestor(node *Node) bool {
	for current := n; current != nil; current = current.parent {
		if current == node {
			return true
		}
	}
	return false
}

// isChildAllowed encodes the parent/child kind compatibility table. Attr,
// Document, DocumentFragment, Entity and Notation appear in no row, so they
// can never gain a tree parent.
func isChildAllowed(parent, child NodeType) bool {
	switch parent {
	case DocumentNode:
		switch child {
		case ElementNode, CommentNode, ProcessingInstructionNode, DocumentTypeNode:
			return true
		}
	case DocumentFragmentNode, ElementNode, EntityReferenceNode, EntityNode:
		switch child {
		case ElementNode, TextNode, CommentNode, ProcessingInstructionNode,
			CDATASectionNode, EntityReferenceNode:
			return true
		}
	case AttributeNode:
		switch child {
		case TextNode, EntityReferenceNode:
			return true
		}
	}
	return false
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
