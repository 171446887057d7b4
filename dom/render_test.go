package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_ElementWithSortedAttributes(t *testing.T) {
	doc := newTestDocument(t)
	root := rootElement(t, doc)
	element, err := AsElement(root)
	require.NoError(t, err)

	require.NoError(t, element.SetAttribute("beta", "2"))
	require.NoError(t, element.SetAttribute("alpha", "1"))
	_, err = root.AppendChild(doc.CreateTextNode("hi"))
	require.NoError(t, err)

	assert.Equal(t, `<root alpha="1" beta="2">hi</root>`, root.String())
}

func TestRender_NestedElements(t *testing.T) {
	doc := newTestDocument(t)
	root := rootElement(t, doc)

	child, _ := doc.CreateElement("child")
	_, err := root.AppendChild(child)
	require.NoError(t, err)
	_, err = child.AppendChild(doc.CreateTextNode("data"))
	require.NoError(t, err)

	assert.Equal(t, "<root><child>data</child></root>", root.String())
}

func TestRender_CharacterDataKinds(t *testing.T) {
	doc := newTestDocument(t)

	assert.Equal(t, "plain", doc.CreateTextNode("plain").String())
	assert.Equal(t, "<!--note-->", doc.CreateComment("note").String())

	cdata, err := doc.CreateCDATASection("raw & unescaped")
	require.NoError(t, err)
	assert.Equal(t, "<![CDATA[raw & unescaped]]>", cdata.String())
}

func TestRender_ProcessingInstruction(t *testing.T) {
	doc := newTestDocument(t)

	pi, err := doc.CreateProcessingInstruction("xml-stylesheet", "href=\"a.css\"")
	require.NoError(t, err)
	assert.Equal(t, `<?xml-stylesheet href="a.css"?>`, pi.String())

	bare, err := doc.CreateProcessingInstruction("marker", "")
	require.NoError(t, err)
	assert.Equal(t, "<?marker?>", bare.String())
}

func TestRender_Attr(t *testing.T) {
	doc := newTestDocument(t)
	attr, err := doc.CreateAttributeWith("id", "a1")
	require.NoError(t, err)
	assert.Equal(t, `id="a1"`, attr.String())
}

func TestRender_DocumentType(t *testing.T) {
	var impl Implementation

	docType, err := impl.CreateDocumentType("html", "-//EX//DTD html//EN", "html.dtd")
	require.NoError(t, err)
	assert.Equal(t, `<!DOCTYPE html PUBLIC "-//EX//DTD html//EN" SYSTEM "html.dtd">`, docType.String())

	bare, err := impl.CreateDocumentType("html", "", "")
	require.NoError(t, err)
	assert.Equal(t, "<!DOCTYPE html>", bare.String())
}

func TestRender_DocumentOrder(t *testing.T) {
	var impl Implementation

	docType, err := impl.CreateDocumentType("root", "", "root.dtd")
	require.NoError(t, err)
	docNode, err := impl.CreateDocument("", "root", docType)
	require.NoError(t, err)
	doc, err := AsDocument(docNode)
	require.NoError(t, err)

	pi, err := doc.CreateProcessingInstruction("marker", "")
	require.NoError(t, err)
	_, err = docNode.AppendChild(pi)
	require.NoError(t, err)

	// Doctype first, then the prolog children, then the document element.
	assert.Equal(t, `<!DOCTYPE root SYSTEM "root.dtd"><?marker?><root></root>`, docNode.String())
}

func TestTreeString(t *testing.T) {
	doc := newTestDocument(t)
	root := rootElement(t, doc)
	element, err := AsElement(root)
	require.NoError(t, err)
	require.NoError(t, element.SetAttribute("id", "a1"))
	_, err = root.AppendChild(doc.CreateTextNode("data"))
	require.NoError(t, err)

	out := TreeString(doc.AsNode())
	assert.True(t, strings.Contains(out, "DOCUMENT_NODE"))
	assert.True(t, strings.Contains(out, "ELEMENT_NODE root"))
	assert.True(t, strings.Contains(out, `ATTRIBUTE_NODE id "a1"`))
	assert.True(t, strings.Contains(out, `TEXT_NODE #text "data"`))
}
