package dom

import (
	"github.com/sirupsen/logrus"
)

// Element is the view over an ElementNode. Attributes live in a map owned by
// the element, keyed by their Name; they are not part of the child list.
// Namespace-declaring attributes (xmlns, xmlns:p) additionally feed the
// element's prefix-to-URI bindings.
type Element Node

// AsNode returns the underlying Node.
func (e *Element) AsNode() *Node {
	return (*Node)(e)
}

func (e *Element) data() *elementData {
	if e.AsNode().element == nil {
		logrus.Warn(msgInvalidExtension)
		return &elementData{
			attributes: make(map[Name]*Node),
			namespaces: make(map[string]string),
		}
	}
	return e.AsNode().element
}

// TagName returns the element's qualified tag name.
func (e *Element) TagName() string {
	return e.AsNode().name.String()
}

// GetAttribute returns the value of the named attribute. The second result
// is false if the attribute is absent, has no value, or the name does not
// parse (logged, not an error).
func (e *Element) GetAttribute(name string) (string, bool) {
	attrName, err := ParseName(name)
	if err != nil {
		logrus.WithField("name", name).Warn(msgInvalidName)
		return "", false
	}
	return e.attributeValue(attrName)
}

// GetAttributeNS is GetAttribute with a namespace-qualified name.
func (e *Element) GetAttributeNS(namespaceURI, localName string) (string, bool) {
	attrName, err := NewNameNS(namespaceURI, localName)
	if err != nil {
		logrus.WithField("name", localName).Warn(msgInvalidName)
		return "", false
	}
	return e.attributeValue(attrName)
}

func (e *Element) attributeValue(attrName Name) (string, bool) {
	attr, ok := e.data().attributes[attrName]
	if !ok {
		return "", false
	}
	return attr.NodeValue()
}

// SetAttribute parses name, builds an attribute node owned by this element's
// document, and stores it via SetAttributeNode.
func (e *Element) SetAttribute(name, value string) error {
	attrName, err := ParseName(name)
	if err != nil {
		return err
	}
	attr := newAttributeNode(e.AsNode().ownerDoc, attrName, &value)
	_, err = e.SetAttributeNode(attr)
	return err
}

// SetAttributeNS is SetAttribute with a namespace-qualified name.
func (e *Element) SetAttributeNS(namespaceURI, qualifiedName, value string) error {
	attrName, err := NewNameNS(namespaceURI, qualifiedName)
	if err != nil {
		return err
	}
	attr := newAttributeNode(e.AsNode().ownerDoc, attrName, &value)
	_, err = e.SetAttributeNode(attr)
	return err
}

// SetAttributeNode stores attr in the element's attribute map, replacing any
// prior attribute of the same name, and returns the stored node. If the
// attribute declares a namespace its URI is bound to the declared prefix
// first. Fails with InvalidStateError if attr is not an Attr node.
func (e *Element) SetAttributeNode(attr *Node) (*Node, error) {
	if attr == nil || attr.nodeType != AttributeNode {
		logrus.Warn(msgInvalidNodeType)
		return nil, ErrInvalidState("attribute argument is not an Attr node")
	}
	name := attr.Name()
	if name.IsNamespaceDeclaration() {
		uri, _ := attr.NodeValue()
		e.data().namespaces[name.declaredPrefix()] = uri
	}
	e.data().attributes[name] = attr
	return attr, nil
}

// SetAttributeNodeNS is an alias of SetAttributeNode; the name already
// carries the namespace.
func (e *Element) SetAttributeNodeNS(attr *Node) (*Node, error) {
	return e.SetAttributeNode(attr)
}

// GetAttributeNode returns the named attribute node, or nil if absent or if
// the name does not parse (logged).
func (e *Element) GetAttributeNode(name string) *Node {
	attrName, err := ParseName(name)
	if err != nil {
		logrus.WithField("name", name).Warn(msgInvalidName)
		return nil
	}
	return e.data().attributes[attrName]
}

// GetAttributeNodeNS is GetAttributeNode with a namespace-qualified name.
func (e *Element) GetAttributeNodeNS(namespaceURI, localName string) *Node {
	attrName, err := NewNameNS(namespaceURI, localName)
	if err != nil {
		logrus.WithField("name", localName).Warn(msgInvalidName)
		return nil
	}
	return e.data().attributes[attrName]
}

// RemoveAttribute removes the named attribute. Removing an attribute that is
// not present is not an error. Removing a namespace declaration also drops
// the prefix binding it introduced.
func (e *Element) RemoveAttribute(name string) error {
	attrName, err := ParseName(name)
	if err != nil {
		return err
	}
	e.removeByName(attrName)
	return nil
}

// RemoveAttributeNS is RemoveAttribute with a namespace-qualified name.
func (e *Element) RemoveAttributeNS(namespaceURI, localName string) error {
	attrName, err := NewNameNS(namespaceURI, localName)
	if err != nil {
		return err
	}
	e.removeByName(attrName)
	return nil
}

func (e *Element) removeByName(attrName Name) {
	data := e.data()
	if _, ok := data.attributes[attrName]; !ok {
		return
	}
	delete(data.attributes, attrName)
	if attrName.IsNamespaceDeclaration() {
		delete(data.namespaces, attrName.declaredPrefix())
	}
}

// RemoveAttributeNode removes the given attribute node, located by identity,
// and returns it. Fails with NotFoundError if the node is not an attribute
// of this element.
func (e *Element) RemoveAttributeNode(attr *Node) (*Node, error) {
	data := e.data()
	for name, candidate := range data.attributes {
		if candidate == attr {
			e.removeByName(name)
			return attr, nil
		}
	}
	return nil, ErrNotFound("attribute is not owned by this element")
}

// HasAttribute reports whether the named attribute is present; false (with a
// logged warning) if the name does not parse.
func (e *Element) HasAttribute(name string) bool {
	attrName, err := ParseName(name)
	if err != nil {
		logrus.WithField("name", name).Warn(msgInvalidName)
		return false
	}
	_, ok := e.data().attributes[attrName]
	return ok
}

// HasAttributeNS is HasAttribute with a namespace-qualified name.
func (e *Element) HasAttributeNS(namespaceURI, localName string) bool {
	attrName, err := NewNameNS(namespaceURI, localName)
	if err != nil {
		logrus.WithField("name", localName).Warn(msgInvalidName)
		return false
	}
	_, ok := e.data().attributes[attrName]
	return ok
}

// LookupNamespaceURI resolves a namespace prefix against the xmlns
// declarations on this element and its ancestors. Pass "" for the default
// namespace. The second result is false if the prefix is unbound.
func (e *Element) LookupNamespaceURI(prefix string) (string, bool) {
	for n := e.AsNode(); n != nil; n = n.parent {
		if n.nodeType != ElementNode || n.element == nil {
			continue
		}
		if uri, ok := n.element.namespaces[prefix]; ok {
			return uri, true
		}
	}
	return "", false
}

// GetElementsByTagName returns this element and all descendant elements
// whose tag name matches tagName, in pre-order. The literal "*" matches any
// element.
func (e *Element) GetElementsByTagName(tagName string) []*Node {
	var results []*Node
	if tagNameMatch(e.AsNode().name.String(), tagName) {
		results = append(results, e.AsNode())
	}
	for _, child := range e.AsNode().children {
		childElement, err := AsElement(child)
		if err != nil {
			warnOnBrokenChild(child)
			continue
		}
		results = append(results, childElement.GetElementsByTagName(tagName)...)
	}
	return results
}

// GetElementsByTagNameNS returns this element and all descendant elements
// matching the namespace URI and local name, in pre-order, with "*" as a
// wildcard in either position.
func (e *Element) GetElementsByTagNameNS(namespaceURI, localName string) []*Node {
	var results []*Node
	name := e.AsNode().name
	if namespacedNameMatch(name.NamespaceURI(), name.LocalName(), namespaceURI, localName) {
		results = append(results, e.AsNode())
	}
	for _, child := range e.AsNode().children {
		childElement, err := AsElement(child)
		if err != nil {
			warnOnBrokenChild(child)
			continue
		}
		results = append(results, childElement.GetElementsByTagNameNS(namespaceURI, localName)...)
	}
	return results
}

// warnOnBrokenChild logs when a traversal meets a child of a kind that is
// not a legal element child at all. Legal non-element children (text,
// comments, ...) are skipped silently.
func warnOnBrokenChild(child *Node) {
	if !isChildAllowed(ElementNode, child.nodeType) {
		logrus.WithField("nodeType", child.nodeType).Warn(msgInvalidNodeType)
	}
}

const wildcard = "*"

// tagNameMatch compares a candidate tag name against a query, where the
// literal "*" on either side matches anything.
func tagNameMatch(test, against string) bool {
	return test == against || test == wildcard || against == wildcard
}

// namespacedNameMatch compares a candidate (namespace, local name) pair
// against a query pair. A candidate with no namespace matches only the
// wildcard namespace; local names match literally or via wildcard.
func namespacedNameMatch(testNS, testLocal, againstNS, againstLocal string) bool {
	localMatch := testLocal == againstLocal || testLocal == wildcard || againstLocal == wildcard
	if testNS == "" {
		return againstNS == wildcard && localMatch
	}
	return (testNS == againstNS || testNS == wildcard || againstNS == wildcard) && localMatch
}
