package dom

import "strings"

// xmlnsName is the reserved name used to declare XML namespaces.
const xmlnsName = "xmlns"

// Name is an immutable, comparable value identifying a node: a local name
// with an optional namespace prefix and namespace URI. The zero value is not
// a valid name; construct one with ParseName or NewNameNS. Name is usable as
// a map key; equality is structural over all three parts.
type Name struct {
	namespaceURI string
	prefix       string
	localName    string
}

// ParseName parses an optionally prefixed qualified name such as "item" or
// "ns:item". It returns an InvalidCharacterError if the string is not a
// lexically valid XML name, or a NamespaceError if it has more than one
// colon or an empty prefix/local part.
func ParseName(qualifiedName string) (Name, error) {
	prefix, localName, err := splitQualified(qualifiedName)
	if err != nil {
		return Name{}, err
	}
	return Name{prefix: prefix, localName: localName}, nil
}

// NewNameNS constructs a namespace-qualified name from a namespace URI and a
// qualified name. A prefixed qualified name with an empty namespace URI is a
// NamespaceError.
func NewNameNS(namespaceURI, qualifiedName string) (Name, error) {
	prefix, localName, err := splitQualified(qualifiedName)
	if err != nil {
		return Name{}, err
	}
	if prefix != "" && namespaceURI == "" {
		return Name{}, ErrNamespace("prefixed name requires a namespace URI")
	}
	return Name{namespaceURI: namespaceURI, prefix: prefix, localName: localName}, nil
}

func splitQualified(qualifiedName string) (prefix, localName string, err error) {
	if qualifiedName == "" {
		return "", "", ErrInvalidCharacter("name cannot be empty")
	}
	parts := strings.Split(qualifiedName, ":")
	switch len(parts) {
	case 1:
		localName = parts[0]
	case 2:
		prefix, localName = parts[0], parts[1]
		if prefix == "" || localName == "" {
			return "", "", ErrNamespace("qualified name part cannot be empty")
		}
	default:
		return "", "", ErrNamespace("qualified name can have at most one colon")
	}
	if prefix != "" && !isValidNCName(prefix) {
		return "", "", ErrInvalidCharacter("invalid name prefix: " + prefix)
	}
	if !isValidNCName(localName) {
		return "", "", ErrInvalidCharacter("invalid local name: " + localName)
	}
	return prefix, localName, nil
}

// LocalName returns the local part of the name.
func (n Name) LocalName() string {
	return n.localName
}

// Prefix returns the namespace prefix, or "" if the name is unprefixed.
func (n Name) Prefix() string {
	return n.prefix
}

// NamespaceURI returns the namespace URI, or "" if the name is unqualified.
func (n Name) NamespaceURI() string {
	return n.namespaceURI
}

// IsNamespaceDeclaration reports whether the name declares a namespace: it
// is either the reserved name "xmlns" or carries the "xmlns" prefix.
func (n Name) IsNamespaceDeclaration() bool {
	return n.prefix == xmlnsName || (n.prefix == "" && n.localName == xmlnsName)
}

// declaredPrefix returns the prefix a namespace-declaring attribute binds:
// "p" for xmlns:p, and "" (the default namespace) for plain xmlns.
func (n Name) declaredPrefix() string {
	if n.prefix == xmlnsName {
		return n.localName
	}
	return ""
}

// String returns the canonical qualified form, "prefix:local" or "local",
// exactly as the name would appear in markup.
func (n Name) String() string {
	if n.prefix == "" {
		return n.localName
	}
	return n.prefix + ":" + n.localName
}

// isValidNCName reports whether s is a valid non-colonized XML name per the
// XML 1.0 (Fifth Edition) Name productions.
func isValidNCName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isNameStartChar(r) {
				return false
			}
		} else if !isNameChar(r) {
			return false
		}
	}
	return true
}

func isNameStartChar(r rune) bool {
	return r == '_' ||
		(r >= 'A' && r <= 'Z') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 0xC0 && r <= 0xD6) ||
		(r >= 0xD8 && r <= 0xF6) ||
		(r >= 0xF8 && r <= 0x2FF) ||
		(r >= 0x370 && r <= 0x37D) ||
		(r >= 0x37F && r <= 0x1FFF) ||
		(r >= 0x200C && r <= 0x200D) ||
		(r >= 0x2070 && r <= 0x218F) ||
		(r >= 0x2C00 && r <= 0x2FEF) ||
		(r >= 0x3001 && r <= 0xD7FF) ||
		(r >= 0xF900 && r <= 0xFDCF) ||
		(r >= 0xFDF0 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0xEFFFF)
}

func isNameChar(r rune) bool {
	return isNameStartChar(r) ||
		r == '-' || r == '.' ||
		(r >= '0' && r <= '9') ||
		r == 0xB7 ||
		(r >= 0x0300 && r <= 0x036F) ||
		(r >= 0x203F && r <= 0x2040)
}
