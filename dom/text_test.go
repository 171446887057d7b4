package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_Split(t *testing.T) {
	doc := newTestDocument(t)
	root := rootElement(t, doc)

	textNode := doc.CreateTextNode("hello world")
	_, err := root.AppendChild(textNode)
	require.NoError(t, err)

	text, err := AsText(textNode)
	require.NoError(t, err)
	newNode, err := text.Split(5)
	require.NoError(t, err)

	kept, _ := textNode.NodeValue()
	assert.Equal(t, "hello", kept)
	split, _ := newNode.NodeValue()
	assert.Equal(t, " world", split)
	assert.Equal(t, TextNode, newNode.NodeType())
	assert.Same(t, doc.AsNode(), newNode.OwnerDocument())
	assert.Same(t, newNode, textNode.NextSibling())
	assert.Same(t, root, newNode.ParentNode())
	assert.Len(t, root.ChildNodes(), 2)
}

func TestText_SplitDetached(t *testing.T) {
	doc := newTestDocument(t)

	textNode := doc.CreateTextNode("detached")
	text, err := AsText(textNode)
	require.NoError(t, err)
	newNode, err := text.Split(2)
	require.NoError(t, err)

	kept, _ := textNode.NodeValue()
	assert.Equal(t, "de", kept)
	split, _ := newNode.NodeValue()
	assert.Equal(t, "tached", split)
	assert.Nil(t, newNode.ParentNode())
}

func TestText_SplitPastEnd(t *testing.T) {
	doc := newTestDocument(t)

	textNode := doc.CreateTextNode("short")
	text, err := AsText(textNode)
	require.NoError(t, err)
	newNode, err := text.Split(100)
	require.NoError(t, err)

	kept, _ := textNode.NodeValue()
	assert.Equal(t, "short", kept)
	split, ok := newNode.NodeValue()
	assert.True(t, ok)
	assert.Equal(t, "", split)
}

func TestText_SplitNegativeOffset(t *testing.T) {
	doc := newTestDocument(t)
	text, err := AsText(doc.CreateTextNode("data"))
	require.NoError(t, err)
	_, err = text.Split(-1)
	require.Error(t, err)
	assert.Equal(t, "IndexSizeError", err.(*DOMError).Name)
}

func TestText_SplitKeepsCDATAKind(t *testing.T) {
	doc := newTestDocument(t)

	cdataNode, err := doc.CreateCDATASection("rawdata")
	require.NoError(t, err)
	cdata, err := AsCDATASection(cdataNode)
	require.NoError(t, err)
	newNode, err := cdata.Text().Split(3)
	require.NoError(t, err)

	assert.Equal(t, CDATASectionNode, newNode.NodeType())
	kept, _ := cdataNode.NodeValue()
	assert.Equal(t, "raw", kept)
	split, _ := newNode.NodeValue()
	assert.Equal(t, "data", split)
}

func TestText_SplitWrongKind(t *testing.T) {
	doc := newTestDocument(t)

	comment := doc.CreateComment("note")
	_, err := AsText(comment)
	require.Error(t, err)

	// Forcing the view onto the wrong kind still fails, with SyntaxError.
	_, err = (*Text)(comment).Split(1)
	require.Error(t, err)
	assert.Equal(t, "SyntaxError", err.(*DOMError).Name)
}
