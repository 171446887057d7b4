package dom

// CharacterData is the view shared by Text, CDATASection and Comment nodes.
// All offsets and counts are byte offsets into the Go string holding the
// data; callers indexing by code points must convert before calling.
type CharacterData Node

// AsNode returns the underlying Node.
func (cd *CharacterData) AsNode() *Node {
	return (*Node)(cd)
}

// Data returns the character data; the second result is false if no data
// has been set.
func (cd *CharacterData) Data() (string, bool) {
	return cd.AsNode().NodeValue()
}

// SetData replaces the character data.
func (cd *CharacterData) SetData(data string) error {
	return cd.AsNode().SetNodeValue(data)
}

// UnsetData clears the character data.
func (cd *CharacterData) UnsetData() error {
	return cd.AsNode().UnsetNodeValue()
}

// Length returns the length of the data, or 0 if none is set.
func (cd *CharacterData) Length() int {
	data, ok := cd.Data()
	if !ok {
		return 0
	}
	return len(data)
}

// Substring extracts count bytes of data starting at offset. A zero count
// returns "" regardless of offset. If offset+count runs past the end, the
// remainder of the data is returned. Fails with IndexSizeError if there is
// no data, offset is out of range, or either argument is negative.
func (cd *CharacterData) Substring(offset, count int) (string, error) {
	if count == 0 {
		return "", nil
	}
	if offset < 0 || count < 0 {
		return "", ErrIndexSize("offset and count must not be negative")
	}
	data, ok := cd.Data()
	if !ok {
		return "", ErrIndexSize("node has no data")
	}
	if offset >= len(data) {
		return "", ErrIndexSize("offset is past the end of the data")
	}
	if offset+count >= len(data) {
		return data[offset:], nil
	}
	return data[offset : offset+count], nil
}

// AppendData concatenates data onto the existing value; appending "" is a
// no-op.
func (cd *CharacterData) AppendData(data string) error {
	if data == "" {
		return nil
	}
	existing, ok := cd.Data()
	if !ok {
		return cd.SetData(data)
	}
	return cd.SetData(existing + data)
}

// InsertData inserts data at offset; inserting "" is a no-op.
func (cd *CharacterData) InsertData(offset int, data string) error {
	if data == "" {
		return nil
	}
	return cd.ReplaceData(offset, 0, data)
}

// DeleteData removes count bytes starting at offset; a zero count is a
// no-op.
func (cd *CharacterData) DeleteData(offset, count int) error {
	if count == 0 {
		return nil
	}
	return cd.ReplaceData(offset, count, "")
}

// ReplaceData splices data into the range [offset, offset+count), extending
// to the end of the value when the range runs past it. With no existing
// value the call succeeds only for offset and count both zero, setting the
// value to data; otherwise it fails with IndexSizeError, as do out-of-range
// or negative offsets.
func (cd *CharacterData) ReplaceData(offset, count int, data string) error {
	if offset < 0 || count < 0 {
		return ErrIndexSize("offset and count must not be negative")
	}
	existing, ok := cd.Data()
	if !ok {
		if offset+count != 0 {
			return ErrIndexSize("node has no data")
		}
		return cd.SetData(data)
	}
	if offset >= len(existing) {
		return ErrIndexSize("offset is past the end of the data")
	}
	end := offset + count
	if end > len(existing) {
		end = len(existing)
	}
	return cd.SetData(existing[:offset] + data + existing[end:])
}
