package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCharacterData(t *testing.T, data string) *CharacterData {
	t.Helper()
	doc := newTestDocument(t)
	cd, err := AsCharacterData(doc.CreateTextNode(data))
	require.NoError(t, err)
	return cd
}

func TestCharacterData_Length(t *testing.T) {
	cd := newTestCharacterData(t, "0123456789")
	assert.Equal(t, 10, cd.Length())

	require.NoError(t, cd.UnsetData())
	assert.Equal(t, 0, cd.Length())
	_, ok := cd.Data()
	assert.False(t, ok)
}

func TestCharacterData_Substring(t *testing.T) {
	cd := newTestCharacterData(t, "0123456789")

	s, err := cd.Substring(0, 4)
	require.NoError(t, err)
	assert.Equal(t, "0123", s)

	s, err = cd.Substring(6, 100)
	require.NoError(t, err)
	assert.Equal(t, "6789", s)

	_, err = cd.Substring(10, 1)
	require.Error(t, err)
	assert.Equal(t, "IndexSizeError", err.(*DOMError).Name)

	_, err = cd.Substring(-1, 2)
	require.Error(t, err)
	_, err = cd.Substring(2, -1)
	require.Error(t, err)
}

func TestCharacterData_SubstringZeroCount(t *testing.T) {
	cd := newTestCharacterData(t, "")

	// A zero count never inspects the data, even at an absurd offset.
	s, err := cd.Substring(1000, 0)
	require.NoError(t, err)
	assert.Equal(t, "", s)

	require.NoError(t, cd.UnsetData())
	s, err = cd.Substring(1000, 0)
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestCharacterData_AppendData(t *testing.T) {
	cd := newTestCharacterData(t, "Hello")
	require.NoError(t, cd.AppendData(" World"))
	data, _ := cd.Data()
	assert.Equal(t, "Hello World", data)

	require.NoError(t, cd.AppendData(""))
	data, _ = cd.Data()
	assert.Equal(t, "Hello World", data)

	require.NoError(t, cd.UnsetData())
	require.NoError(t, cd.AppendData("fresh"))
	data, _ = cd.Data()
	assert.Equal(t, "fresh", data)
}

func TestCharacterData_InsertData(t *testing.T) {
	cd := newTestCharacterData(t, "Held")
	require.NoError(t, cd.InsertData(3, "p wante"))
	data, _ := cd.Data()
	assert.Equal(t, "Help wanted", data)

	err := cd.InsertData(100, "x")
	require.Error(t, err)
	assert.Equal(t, "IndexSizeError", err.(*DOMError).Name)

	require.NoError(t, cd.InsertData(100, ""))
}

func TestCharacterData_DeleteData(t *testing.T) {
	cd := newTestCharacterData(t, "0123456789")
	require.NoError(t, cd.DeleteData(2, 3))
	data, _ := cd.Data()
	assert.Equal(t, "0156789", data)

	require.NoError(t, cd.DeleteData(5, 100))
	data, _ = cd.Data()
	assert.Equal(t, "01567", data)

	require.NoError(t, cd.DeleteData(2, 0))
	data, _ = cd.Data()
	assert.Equal(t, "01567", data)
}

func TestCharacterData_ReplaceData(t *testing.T) {
	cd := newTestCharacterData(t, "0123456789")
	require.NoError(t, cd.ReplaceData(2, 3, "XYZ"))
	data, _ := cd.Data()
	assert.Equal(t, "01XYZ56789", data)

	require.NoError(t, cd.ReplaceData(0, 100, "gone"))
	data, _ = cd.Data()
	assert.Equal(t, "gone", data)

	err := cd.ReplaceData(-1, 0, "x")
	require.Error(t, err)
	assert.Equal(t, "IndexSizeError", err.(*DOMError).Name)
	err = cd.ReplaceData(100, 1, "x")
	require.Error(t, err)
	assert.Equal(t, "IndexSizeError", err.(*DOMError).Name)
}

func TestCharacterData_ReplaceDataWithoutValue(t *testing.T) {
	cd := newTestCharacterData(t, "ignored")
	require.NoError(t, cd.UnsetData())

	err := cd.ReplaceData(0, 1, "x")
	require.Error(t, err)
	assert.Equal(t, "IndexSizeError", err.(*DOMError).Name)

	require.NoError(t, cd.ReplaceData(0, 0, "set"))
	data, ok := cd.Data()
	assert.True(t, ok)
	assert.Equal(t, "set", data)
}

func TestAsCharacterData_Kinds(t *testing.T) {
	doc := newTestDocument(t)

	for _, n := range []*Node{
		doc.CreateTextNode("t"),
		doc.CreateComment("c"),
	} {
		_, err := AsCharacterData(n)
		assert.NoError(t, err)
	}
	cdata, err := doc.CreateCDATASection("d")
	require.NoError(t, err)
	_, err = AsCharacterData(cdata)
	assert.NoError(t, err)

	element, err := doc.CreateElement("e")
	require.NoError(t, err)
	_, err = AsCharacterData(element)
	require.Error(t, err)
	assert.Equal(t, "InvalidStateError", err.(*DOMError).Name)
}
