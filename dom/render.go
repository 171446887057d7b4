package dom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xlab/treeprint"
)

// String renders the node and its subtree as markup text. This is the
// diagnostic round-trip form, not a full serializer: no escaping or
// namespace fixup is performed. Attributes are rendered in qualified-name
// order so the output is deterministic.
func (n *Node) String() string {
	var sb strings.Builder
	n.render(&sb)
	return sb.String()
}

func (n *Node) render(sb *strings.Builder) {
	switch n.nodeType {
	case ElementNode:
		sb.WriteString("<")
		sb.WriteString(n.name.String())
		for _, attr := range n.sortedAttributes() {
			sb.WriteString(" ")
			attr.render(sb)
		}
		sb.WriteString(">")
		for _, child := range n.children {
			child.render(sb)
		}
		sb.WriteString("</")
		sb.WriteString(n.name.String())
		sb.WriteString(">")
	case AttributeNode:
		value, _ := n.NodeValue()
		fmt.Fprintf(sb, "%s=%q", n.name.String(), value)
	case TextNode:
		if data, ok := n.NodeValue(); ok {
			sb.WriteString(data)
		}
	case CDATASectionNode:
		if data, ok := n.NodeValue(); ok {
			sb.WriteString("<![CDATA[")
			sb.WriteString(data)
			sb.WriteString("]]>")
		}
	case ProcessingInstructionNode:
		sb.WriteString("<?")
		sb.WriteString(n.name.String())
		if data, ok := n.NodeValue(); ok {
			sb.WriteString(" ")
			sb.WriteString(data)
		}
		sb.WriteString("?>")
	case CommentNode:
		if data, ok := n.NodeValue(); ok {
			sb.WriteString("<!--")
			sb.WriteString(data)
			sb.WriteString("-->")
		}
	case DocumentNode:
		if n.document != nil {
			if n.document.docType != nil {
				n.document.docType.render(sb)
			}
			for _, child := range n.children {
				child.render(sb)
			}
			if n.document.documentElement != nil {
				n.document.documentElement.render(sb)
			}
		}
	case DocumentTypeNode:
		sb.WriteString("<!DOCTYPE ")
		sb.WriteString(n.name.String())
		if n.docType != nil {
			if n.docType.publicID != nil {
				fmt.Fprintf(sb, " PUBLIC %q", *n.docType.publicID)
			}
			if n.docType.systemID != nil {
				fmt.Fprintf(sb, " SYSTEM %q", *n.docType.systemID)
			}
		}
		sb.WriteString(">")
	}
}

// sortedAttributes returns the element's attributes ordered by qualified
// name.
func (n *Node) sortedAttributes() []*Node {
	if n.element == nil {
		return nil
	}
	attrs := make([]*Node, 0, len(n.element.attributes))
	for _, attr := range n.element.attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].name.String() < attrs[j].name.String()
	})
	return attrs
}

// TreeString renders the node's structure as an indented tree for
// debugging: one line per node with its kind, name, and value.
func TreeString(n *Node) string {
	tree := treeprint.NewWithRoot(treeLabel(n))
	addTreeChildren(tree, n)
	return tree.String()
}

func treeLabel(n *Node) string {
	label := fmt.Sprintf("%s %s", n.nodeType, n.name)
	if value, ok := n.NodeValue(); ok {
		label += fmt.Sprintf(" %q", value)
	}
	return label
}

func addTreeChildren(branch treeprint.Tree, n *Node) {
	for _, attr := range n.sortedAttributes() {
		branch.AddNode(treeLabel(attr))
	}
	if n.nodeType == DocumentNode && n.document != nil {
		if n.document.docType != nil {
			branch.AddNode(treeLabel(n.document.docType))
		}
	}
	for _, child := range n.children {
		sub := branch.AddBranch(treeLabel(child))
		addTreeChildren(sub, child)
	}
	if n.nodeType == DocumentNode && n.document != nil && n.document.documentElement != nil {
		root := n.document.documentElement
		sub := branch.AddBranch(treeLabel(root))
		addTreeChildren(sub, root)
	}
}
