package xmldom

import (
	"encoding/xml"
	"fmt"
	"io"
	"unicode"

	"github.com/jacoelho/xbrl/internal/xmlnames"
)

// Parse builds an immutable element tree from XML input.
func Parse(r io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(r)

	var stack []*Element
	var root *Element
	rootClosed := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, fmt.Errorf("unexpected element %s after document end", t.Name.Local)
			}
			elem := &Element{
				namespace: t.Name.Space,
				local:     t.Name.Local,
				attrs:     convertAttrs(t.Attr),
				nsDecls:   namespaceDecls(t.Attr),
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				elem.parent = parent
				elem.siblingIndex = sameNameCount(parent, elem.namespace, elem.local)
				parent.children = append(parent.children, elem)
			} else {
				root = elem
			}
			stack = append(stack, elem)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
				if len(stack) == 0 && root != nil {
					rootClosed = true
				}
			}

		case xml.CharData:
			if len(stack) == 0 {
				if !isIgnorableOutsideRoot(string(t)) {
					return nil, fmt.Errorf("unexpected character data outside root element")
				}
				continue
			}
			stack[len(stack)-1].text += string(t)
		}
	}

	if root == nil {
		return nil, io.ErrUnexpectedEOF
	}

	return root, nil
}

func sameNameCount(parent *Element, namespace, local string) int {
	count := 0
	for _, child := range parent.children {
		if child.namespace == namespace && child.local == local {
			count++
		}
	}
	return count
}

func isIgnorableOutsideRoot(data string) bool {
	for _, r := range data {
		if r == '\uFEFF' {
			continue
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func convertAttrs(xmlAttrs []xml.Attr) []Attr {
	attrs := make([]Attr, 0, len(xmlAttrs))
	for _, a := range xmlAttrs {
		namespace := a.Name.Space
		switch {
		case namespace == xmlnames.XMLNSPrefix || (namespace == "" && a.Name.Local == xmlnames.XMLNSPrefix):
			namespace = xmlnames.XMLNSNamespace
		case namespace == xmlnames.XMLPrefix:
			namespace = xmlnames.XMLNamespace
		}
		attrs = append(attrs, Attr{
			namespace: namespace,
			local:     a.Name.Local,
			value:     a.Value,
		})
	}
	return attrs
}

// namespaceDecls extracts the prefix bindings declared on one element.
// encoding/xml reports xmlns="..." as an attribute with empty space and
// local name xmlns, and xmlns:p="..." with space xmlns and local name p.
func namespaceDecls(xmlAttrs []xml.Attr) map[string]string {
	var decls map[string]string
	for _, a := range xmlAttrs {
		var prefix string
		switch {
		case a.Name.Space == "" && a.Name.Local == xmlnames.XMLNSPrefix:
			prefix = ""
		case a.Name.Space == xmlnames.XMLNSPrefix:
			prefix = a.Name.Local
		default:
			continue
		}
		if prefix == xmlnames.XMLPrefix || prefix == xmlnames.XMLNSPrefix {
			continue
		}
		if decls == nil {
			decls = make(map[string]string, 1)
		}
		decls[prefix] = a.Value
	}
	return decls
}
