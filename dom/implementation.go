package dom

// Feature names and versions recognized by HasFeature.
const (
	FeatureCore = "Core"
	FeatureXML  = "XML"

	FeatureVersion1 = "1.0"
	FeatureVersion2 = "2.0"
)

// Implementation is the factory for documents and document types; it
// corresponds to the DOM DOMImplementation interface. It is stateless:
// construct one wherever needed and pass it by reference. Every Document
// records the Implementation that created it.
type Implementation struct{}

// CreateDocument creates a new Document with a root element named by the
// given namespace URI and qualified name. The optional docType node is
// installed as the document's doctype.
//
// The document is built in two steps: the Document node first, then its
// root element via CreateElementNS on the new document, so that the root's
// owner-document reference points back at the document that contains it.
func (impl *Implementation) CreateDocument(namespaceURI, qualifiedName string, docType *Node) (*Node, error) {
	if _, err := NewNameNS(namespaceURI, qualifiedName); err != nil {
		return nil, err
	}
	documentNode := newDocumentNode(impl)
	if docType != nil {
		if docType.nodeType != DocumentTypeNode {
			return nil, ErrInvalidState("doctype argument is not a DocumentType node")
		}
		docType.parent = documentNode
		docType.ownerDoc = documentNode
		documentNode.document.docType = docType
	}

	document, err := AsDocument(documentNode)
	if err != nil {
		return nil, err
	}
	root, err := document.CreateElementNS(namespaceURI, qualifiedName)
	if err != nil {
		return nil, err
	}
	root.parent = documentNode
	documentNode.document.documentElement = root
	return documentNode, nil
}

// CreateDocumentType creates a detached DocumentType node. Empty publicID or
// systemID strings mean the identifier is absent.
func (impl *Implementation) CreateDocumentType(qualifiedName, publicID, systemID string) (*Node, error) {
	name, err := ParseName(qualifiedName)
	if err != nil {
		return nil, err
	}
	return newDocumentTypeNode(name, optional(publicID), optional(systemID)), nil
}

// HasFeature reports whether the implementation supports the named feature.
// Recognized pairs are Core/XML at version 1.0 and Core at version 2.0.
func (impl *Implementation) HasFeature(feature, version string) bool {
	return ((feature == FeatureCore || feature == FeatureXML) && version == FeatureVersion1) ||
		(feature == FeatureCore && version == FeatureVersion2)
}

// optional maps "" to an unset value.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
