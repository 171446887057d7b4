package dom

// ProcessingInstruction is the view over a ProcessingInstructionNode. The
// node's name is the instruction target; the node value is its data.
type ProcessingInstruction Node

// AsNode returns the underlying Node.
func (pi *ProcessingInstruction) AsNode() *Node {
	return (*Node)(pi)
}

// Target returns the processing instruction target.
func (pi *ProcessingInstruction) Target() string {
	return pi.AsNode().name.String()
}

// Data returns the instruction data; the second result is false if the
// instruction carries none.
func (pi *ProcessingInstruction) Data() (string, bool) {
	return pi.AsNode().NodeValue()
}

// SetData sets the instruction data.
func (pi *ProcessingInstruction) SetData(data string) error {
	return pi.AsNode().SetNodeValue(data)
}

// UnsetData clears the instruction data.
func (pi *ProcessingInstruction) UnsetData() error {
	return pi.AsNode().UnsetNodeValue()
}

// Length returns the length of the instruction data, or 0 if none is set.
func (pi *ProcessingInstruction) Length() int {
	data, ok := pi.Data()
	if !ok {
		return 0
	}
	return len(data)
}
