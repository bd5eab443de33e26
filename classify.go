package xbrl

import (
	"github.com/jacoelho/xbrl/errors"
	"github.com/jacoelho/xbrl/internal/xmlnames"
	"github.com/jacoelho/xbrl/pkg/qname"
	"github.com/jacoelho/xbrl/pkg/xmldom"
)

const (
	xbrliNamespace  = xmlnames.XbrliNamespace
	linkNamespace   = xmlnames.LinkNamespace
	xlinkNamespace  = xmlnames.XLinkNamespace
	xbrldiNamespace = xmlnames.XbrldiNamespace
)

// Classify builds the typed element tree for a generic element, bottom-up:
// children are classified before their parent so every variant constructor
// sees already-typed children. Classification is a pure function of the
// element's resolved name, attributes, and child names; malformed input is
// a hard error, never a silent fallback.
func Classify(node *xmldom.Element) (Elem, error) {
	children := node.Children()
	typed := make([]Elem, 0, len(children))
	for _, child := range children {
		classified, err := Classify(child)
		if err != nil {
			return nil, err
		}
		typed = append(typed, classified)
	}
	return classify(elem{node: node, children: typed})
}

func classify(base elem) (Elem, error) {
	switch base.node.NamespaceURI() {
	case xbrliNamespace:
		return classifyXbrli(base)
	case linkNamespace:
		return classifyLink(base)
	case xbrldiNamespace:
		return classifyXbrldi(base)
	default:
		return classifyOther(base)
	}
}

func classifyXbrli(base elem) (Elem, error) {
	switch base.node.LocalName() {
	case "xbrl":
		return newInstance(base)
	case "context":
		return newContext(base)
	case "entity":
		return newEntity(base)
	case "identifier":
		return newIdentifier(base)
	case "segment":
		return &Segment{elem: base}, nil
	case "scenario":
		return &Scenario{elem: base}, nil
	case "period":
		return newPeriod(base)
	case "unit":
		return newUnit(base)
	case "divide":
		return &Divide{elem: base}, nil
	case "measure":
		return newMeasure(base)
	default:
		return &OtherElem{elem: base}, nil
	}
}

func classifyLink(base elem) (Elem, error) {
	switch base.node.LocalName() {
	case "schemaRef":
		link, err := newSimpleLink(base)
		if err != nil {
			return nil, err
		}
		return &SchemaRef{simpleLink: link}, nil
	case "linkbaseRef":
		link, err := newSimpleLink(base)
		if err != nil {
			return nil, err
		}
		return &LinkbaseRef{simpleLink: link}, nil
	case "roleRef":
		link, err := newSimpleLink(base)
		if err != nil {
			return nil, err
		}
		return &RoleRef{simpleLink: link}, nil
	case "arcroleRef":
		link, err := newSimpleLink(base)
		if err != nil {
			return nil, err
		}
		return &ArcroleRef{simpleLink: link}, nil
	case "footnoteLink":
		return &FootnoteLink{extendedLink: extendedLink{elem: base}}, nil
	case "footnoteArc":
		arc, err := newArcElem(base)
		if err != nil {
			return nil, err
		}
		return &FootnoteArc{arcElem: arc}, nil
	case "footnote":
		resource, err := newResourceElem(base)
		if err != nil {
			return nil, err
		}
		return &Footnote{resourceElem: resource}, nil
	case "loc":
		locator, err := newLocatorElem(base)
		if err != nil {
			return nil, err
		}
		return &Loc{locatorElem: locator}, nil
	default:
		return classifyByXLinkType(base)
	}
}

func classifyXbrldi(base elem) (Elem, error) {
	switch base.node.LocalName() {
	case "explicitMember":
		return newExplicitMember(base)
	case "typedMember":
		return newTypedMember(base)
	default:
		return &OtherElem{elem: base}, nil
	}
}

func classifyOther(base elem) (Elem, error) {
	if isFactElement(base.node) {
		return classifyFact(base)
	}
	return classifyByXLinkType(base)
}

// isFactElement reports whether an element is a fact: its own namespace is
// not reserved and every ancestor below the document root is in a
// non-reserved namespace too (facts nest only inside tuples).
func isFactElement(node *xmldom.Element) bool {
	if xmlnames.IsReserved(node.NamespaceURI()) {
		return false
	}
	path := node.Path()
	for _, step := range path[:max(len(path)-1, 0)] {
		if xmlnames.IsReserved(step.Namespace) {
			return false
		}
	}
	return true
}

func classifyFact(base elem) (Elem, error) {
	if base.node.GetAttribute("contextRef") == "" {
		return newTuple(base), nil
	}
	if base.node.GetAttribute("unitRef") == "" {
		return newNonNumericItem(base)
	}
	// Numeric sub-classification, first match wins.
	switch {
	case isNilValue(base.node.GetAttributeNS(xmlnames.XSINamespace, "nil")):
		return newNilNumericItem(base)
	case hasFractionShape(base):
		return newFractionItem(base)
	default:
		return newNonFractionItem(base)
	}
}

func hasFractionShape(base elem) bool {
	for _, child := range base.children {
		if child.Name().Local == "numerator" {
			return true
		}
	}
	return false
}

// classifyByXLinkType layers the XLink capabilities onto elements outside
// the specifically modeled variants, using the xlink:type attribute alone.
func classifyByXLinkType(base elem) (Elem, error) {
	switch base.node.GetAttributeNS(xlinkNamespace, "type") {
	case xlinkTypeSimple:
		link, err := newSimpleLink(base)
		if err != nil {
			return nil, err
		}
		return &GenericSimpleLink{simpleLink: link}, nil
	case xlinkTypeExtended:
		return &GenericLink{extendedLink: extendedLink{elem: base}}, nil
	case xlinkTypeArc:
		arc, err := newArcElem(base)
		if err != nil {
			return nil, err
		}
		return &GenericArc{arcElem: arc}, nil
	case xlinkTypeLocator:
		locator, err := newLocatorElem(base)
		if err != nil {
			return nil, err
		}
		return &GenericLocator{locatorElem: locator}, nil
	case xlinkTypeResource:
		resource, err := newResourceElem(base)
		if err != nil {
			return nil, err
		}
		return &GenericResource{resourceElem: resource}, nil
	default:
		return &OtherElem{elem: base}, nil
	}
}

// OtherElem is any element outside the modeled variant set.
type OtherElem struct {
	elem
}

func structuralf(code errors.ErrorCode, node *xmldom.Element, format string, args ...any) error {
	return errors.StructuralList{errors.NewStructuralf(code, node.Path().String(), format, args...)}
}

func resolveQNameAttr(node *xmldom.Element, name string) (qname.QName, error) {
	value := node.GetAttribute(name)
	if value == "" {
		return qname.QName{}, structuralf(errors.ErrMalformedElement, node, "missing %s attribute", name)
	}
	resolved, err := qname.Resolve(value, node.Scope())
	if err != nil {
		return qname.QName{}, structuralf(errors.ErrUnboundPrefix, node, "%s attribute: %v", name, err)
	}
	return resolved, nil
}
