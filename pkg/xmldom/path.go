package xmldom

import (
	"fmt"
	"strings"
)

// PathStep is one step in a structural path: the resolved element name plus
// the zero-based index among preceding siblings with the same resolved name.
type PathStep struct {
	Namespace string
	Local     string
	Index     int
}

func (s PathStep) String() string {
	if s.Namespace == "" {
		return fmt.Sprintf("%s[%d]", s.Local, s.Index)
	}
	return fmt.Sprintf("{%s}%s[%d]", s.Namespace, s.Local, s.Index)
}

// Path addresses an element from the document root. The root element itself
// has the empty path. Paths are stable across re-parses of the same document
// and are the basis for element equality.
type Path []PathStep

// String renders the path in its canonical form: one /{namespace}local[i]
// segment per step, "/" for the root.
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	var sb strings.Builder
	for _, step := range p {
		sb.WriteByte('/')
		sb.WriteString(step.String())
	}
	return sb.String()
}

// Equal reports whether two paths address the same element position.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Resolve walks the path from root and returns the addressed element, or
// false if the path does not exist in the document.
func (p Path) Resolve(root *Element) (*Element, bool) {
	cur := root
	for _, step := range p {
		var next *Element
		for _, child := range cur.children {
			if child.namespace == step.Namespace && child.local == step.Local && child.siblingIndex == step.Index {
				next = child
				break
			}
		}
		if next == nil {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
