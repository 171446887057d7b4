package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Factories(t *testing.T) {
	doc := newTestDocument(t)

	element, err := doc.CreateElement("item")
	require.NoError(t, err)
	assert.Equal(t, ElementNode, element.NodeType())
	assert.Equal(t, "item", element.NodeName())
	assert.Nil(t, element.ParentNode())
	assert.Same(t, doc.AsNode(), element.OwnerDocument())

	text := doc.CreateTextNode("chars")
	assert.Equal(t, TextNode, text.NodeType())
	assert.Equal(t, "#text", text.NodeName())

	cdata, err := doc.CreateCDATASection("raw")
	require.NoError(t, err)
	assert.Equal(t, CDATASectionNode, cdata.NodeType())
	assert.Equal(t, "#cdata-section", cdata.NodeName())

	comment := doc.CreateComment("note")
	assert.Equal(t, CommentNode, comment.NodeType())
	assert.Equal(t, "#comment", comment.NodeName())

	fragment, err := doc.CreateDocumentFragment()
	require.NoError(t, err)
	assert.Equal(t, DocumentFragmentNode, fragment.NodeType())
	assert.Equal(t, "#document-fragment", fragment.NodeName())

	ref, err := doc.CreateEntityReference("amp")
	require.NoError(t, err)
	assert.Equal(t, EntityReferenceNode, ref.NodeType())
	assert.Equal(t, "amp", ref.NodeName())

	assert.Equal(t, "#document", doc.AsNode().NodeName())
}

func TestDocument_FactoriesRejectBadNames(t *testing.T) {
	doc := newTestDocument(t)

	_, err := doc.CreateElement("1bad")
	assert.Error(t, err)
	_, err = doc.CreateAttribute("")
	assert.Error(t, err)
	_, err = doc.CreateEntityReference("a b")
	assert.Error(t, err)
	_, err = doc.CreateProcessingInstruction("a:b:c", "")
	assert.Error(t, err)
	_, err = doc.CreateElementNS("", "ex:item")
	assert.Error(t, err)
}

func TestDocument_CreateProcessingInstruction(t *testing.T) {
	doc := newTestDocument(t)

	node, err := doc.CreateProcessingInstruction("xml-stylesheet", "href=\"a.css\"")
	require.NoError(t, err)
	pi, err := AsProcessingInstruction(node)
	require.NoError(t, err)
	assert.Equal(t, "xml-stylesheet", pi.Target())
	data, ok := pi.Data()
	assert.True(t, ok)
	assert.Equal(t, "href=\"a.css\"", data)
	assert.Equal(t, len(data), pi.Length())

	bare, err := doc.CreateProcessingInstruction("marker", "")
	require.NoError(t, err)
	barePI, err := AsProcessingInstruction(bare)
	require.NoError(t, err)
	_, ok = barePI.Data()
	assert.False(t, ok)
	assert.Equal(t, 0, barePI.Length())
}

func TestDocument_CreateAttributeVariants(t *testing.T) {
	doc := newTestDocument(t)

	bare, err := doc.CreateAttribute("id")
	require.NoError(t, err)
	_, ok := bare.NodeValue()
	assert.False(t, ok)

	valued, err := doc.CreateAttributeWith("id", "a1")
	require.NoError(t, err)
	value, ok := valued.NodeValue()
	assert.True(t, ok)
	assert.Equal(t, "a1", value)

	namespaced, err := doc.CreateAttributeNS("http://example.org/ns", "ex:id")
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/ns", namespaced.Name().NamespaceURI())
}

func TestDocument_GetElementByID(t *testing.T) {
	doc := newTestDocument(t)
	element, err := AsElement(doc.DocumentElement())
	require.NoError(t, err)
	require.NoError(t, element.SetAttribute("id", "a1"))
	assert.Nil(t, doc.GetElementByID("a1"))
}

func TestDocument_GetElementsByTagName(t *testing.T) {
	doc := newTestDocument(t)
	root := doc.DocumentElement()

	item, err := doc.CreateElement("item")
	require.NoError(t, err)
	_, err = root.AppendChild(item)
	require.NoError(t, err)

	matches := doc.GetElementsByTagName("item")
	require.Len(t, matches, 1)
	assert.Same(t, item, matches[0])

	all := doc.GetElementsByTagName("*")
	require.Len(t, all, 2)
	assert.Same(t, root, all[0])

	matches = doc.GetElementsByTagNameNS("http://example.org/", "root")
	require.Len(t, matches, 1)
	assert.Same(t, root, matches[0])
}

func TestDocument_EntitiesAndNotations(t *testing.T) {
	var impl Implementation
	docType, err := impl.CreateDocumentType("catalog", "", "catalog.dtd")
	require.NoError(t, err)
	docNode, err := impl.CreateDocument("", "catalog", docType)
	require.NoError(t, err)
	doc, err := AsDocument(docNode)
	require.NoError(t, err)

	dt, err := AsDocumentType(doc.DocType())
	require.NoError(t, err)

	entity, err := doc.CreateEntity("chapter1", "", "chapter1.xml")
	require.NoError(t, err)
	require.NoError(t, dt.AddEntity(entity))
	notation, err := doc.CreateNotation("gif", "image/gif", "")
	require.NoError(t, err)
	require.NoError(t, dt.AddNotation(notation))

	entities := dt.Entities()
	require.Len(t, entities, 1)
	assert.Same(t, entity, entities[entity.Name()])
	notations := dt.Notations()
	require.Len(t, notations, 1)
	assert.Same(t, notation, notations[notation.Name()])

	entityView, err := AsEntity(entity)
	require.NoError(t, err)
	_, ok := entityView.PublicID()
	assert.False(t, ok)
	systemID, ok := entityView.SystemID()
	assert.True(t, ok)
	assert.Equal(t, "chapter1.xml", systemID)

	notationView, err := AsNotation(notation)
	require.NoError(t, err)
	publicID, ok := notationView.PublicID()
	assert.True(t, ok)
	assert.Equal(t, "image/gif", publicID)
	_, ok = notationView.SystemID()
	assert.False(t, ok)

	// Only the matching kinds can be registered.
	err = dt.AddEntity(notation)
	require.Error(t, err)
	assert.Equal(t, "InvalidStateError", err.(*DOMError).Name)
	err = dt.AddNotation(entity)
	require.Error(t, err)
}

func TestDocumentType_InternalSubset(t *testing.T) {
	var impl Implementation
	docType, err := impl.CreateDocumentType("catalog", "", "")
	require.NoError(t, err)
	dt, err := AsDocumentType(docType)
	require.NoError(t, err)

	_, ok := dt.InternalSubset()
	assert.False(t, ok)
	dt.SetInternalSubset("<!ELEMENT catalog (item*)>")
	subset, ok := dt.InternalSubset()
	assert.True(t, ok)
	assert.Equal(t, "<!ELEMENT catalog (item*)>", subset)
}
