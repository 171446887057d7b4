package dom

import (
	"github.com/sirupsen/logrus"
)

// DocumentType is the view over a DocumentTypeNode: the document type
// declaration with its external identifiers and the entity and notation
// tables a parser fills in from the DTD.
type DocumentType Node

// AsNode returns the underlying Node.
func (dt *DocumentType) AsNode() *Node {
	return (*Node)(dt)
}

func (dt *DocumentType) data() *docTypeData {
	if dt.AsNode().docType == nil {
		logrus.Warn(msgInvalidExtension)
		return &docTypeData{
			entities:  make(map[Name]*Node),
			notations: make(map[Name]*Node),
		}
	}
	return dt.AsNode().docType
}

// Name returns the document type name.
func (dt *DocumentType) Name() Name {
	return dt.AsNode().name
}

// PublicID returns the public identifier of the external subset; the second
// result is false if none was specified.
func (dt *DocumentType) PublicID() (string, bool) {
	return fromOptional(dt.data().publicID)
}

// SystemID returns the system identifier of the external subset; the second
// result is false if none was specified.
func (dt *DocumentType) SystemID() (string, bool) {
	return fromOptional(dt.data().systemID)
}

// InternalSubset returns the internal subset text; the second result is
// false if none was specified.
func (dt *DocumentType) InternalSubset() (string, bool) {
	return fromOptional(dt.data().internalSubset)
}

// SetInternalSubset records the internal subset text.
func (dt *DocumentType) SetInternalSubset(subset string) {
	dt.data().internalSubset = &subset
}

// Entities returns a copy of the entity table, keyed by entity name.
func (dt *DocumentType) Entities() map[Name]*Node {
	return copyNodeMap(dt.data().entities)
}

// Notations returns a copy of the notation table, keyed by notation name.
func (dt *DocumentType) Notations() map[Name]*Node {
	return copyNodeMap(dt.data().notations)
}

// AddEntity registers an Entity node in the entity table, replacing any
// prior entity of the same name. Fails with InvalidStateError if entity is
// not an Entity node.
func (dt *DocumentType) AddEntity(entity *Node) error {
	if entity == nil || entity.nodeType != EntityNode {
		logrus.Warn(msgInvalidNodeType)
		return ErrInvalidState("argument is not an Entity node")
	}
	dt.data().entities[entity.Name()] = entity
	return nil
}

// AddNotation registers a Notation node in the notation table, replacing any
// prior notation of the same name. Fails with InvalidStateError if notation
// is not a Notation node.
func (dt *DocumentType) AddNotation(notation *Node) error {
	if notation == nil || notation.nodeType != NotationNode {
		logrus.Warn(msgInvalidNodeType)
		return ErrInvalidState("argument is not a Notation node")
	}
	dt.data().notations[notation.Name()] = notation
	return nil
}

func fromOptional(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

func copyNodeMap(m map[Name]*Node) map[Name]*Node {
	out := make(map[Name]*Node, len(m))
	for name, node := range m {
		out[name] = node
	}
	return out
}
