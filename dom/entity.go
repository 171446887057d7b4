package dom

import (
	"github.com/sirupsen/logrus"
)

// Entity is the view over an EntityNode: a parsed or unparsed entity
// declared in the DTD. When a replacement value is available its structure
// is held in the node's child list; otherwise the child list is empty.
// Entity nodes have no tree parent.
type Entity Node

// AsNode returns the underlying Node.
func (e *Entity) AsNode() *Node {
	return (*Node)(e)
}

func (e *Entity) ids() *externalID {
	if e.AsNode().external == nil {
		logrus.Warn(msgInvalidExtension)
		return &externalID{}
	}
	return e.AsNode().external
}

// PublicID returns the entity's public identifier; the second result is
// false if none was specified.
func (e *Entity) PublicID() (string, bool) {
	return fromOptional(e.ids().publicID)
}

// SystemID returns the entity's system identifier; the second result is
// false if none was specified.
func (e *Entity) SystemID() (string, bool) {
	return fromOptional(e.ids().systemID)
}

// EntityReference is the view over an EntityReferenceNode. The node's name
// is the name of the referenced entity.
type EntityReference Node

// AsNode returns the underlying Node.
func (er *EntityReference) AsNode() *Node {
	return (*Node)(er)
}

// Notation is the view over a NotationNode: a notation declared in the DTD,
// naming the format of an unparsed entity or a processing instruction
// target. Notation nodes have no tree parent.
type Notation Node

// AsNode returns the underlying Node.
func (n *Notation) AsNode() *Node {
	return (*Node)(n)
}

func (n *Notation) ids() *externalID {
	if n.AsNode().external == nil {
		logrus.Warn(msgInvalidExtension)
		return &externalID{}
	}
	return n.AsNode().external
}

// PublicID returns the notation's public identifier; the second result is
// false if none was specified.
func (n *Notation) PublicID() (string, bool) {
	return fromOptional(n.ids().publicID)
}

// SystemID returns the notation's system identifier; the second result is
// false if none was specified.
func (n *Notation) SystemID() (string, bool) {
	return fromOptional(n.ids().systemID)
}
