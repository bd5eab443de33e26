package xbrl

import (
	"github.com/jacoelho/xbrl/errors"
	"github.com/jacoelho/xbrl/pkg/qname"
)

// Unit is an xbrli:unit element referenced by numeric item facts through
// unitRef.
type Unit struct {
	elem
	id string
}

func newUnit(base elem) (*Unit, error) {
	id := base.node.GetAttribute("id")
	if id == "" {
		return nil, structuralf(errors.ErrMalformedElement, base.node, "unit without id attribute")
	}
	return &Unit{elem: base, id: id}, nil
}

// ID returns the unit identifier referenced by unitRef attributes.
func (u *Unit) ID() string { return u.id }

// Measures returns all measure values in the unit in document order. For a
// simple unit these are the direct measure children; for a divide unit both
// numerator and denominator measures are included.
func (u *Unit) Measures() []qname.QName {
	var measures []qname.QName
	for _, m := range DescendantsOf[*Measure](u) {
		measures = append(measures, m.Value())
	}
	return measures
}

// Divide returns the unit's divide child, or nil for a simple unit.
func (u *Unit) Divide() *Divide {
	divide, _ := FirstChildOf[*Divide](u)
	return divide
}

// Divide is an xbrli:divide element holding numerator and denominator
// measure lists.
type Divide struct {
	elem
}

func (d *Divide) measuresUnder(local string) []qname.QName {
	var measures []qname.QName
	for _, child := range d.children {
		if child.Name().Namespace != xbrliNamespace || child.Name().Local != local {
			continue
		}
		for _, m := range DescendantsOf[*Measure](child) {
			measures = append(measures, m.Value())
		}
	}
	return measures
}

// NumeratorMeasures returns the measures under unitNumerator in document
// order.
func (d *Divide) NumeratorMeasures() []qname.QName {
	return d.measuresUnder("unitNumerator")
}

// DenominatorMeasures returns the measures under unitDenominator in document
// order.
func (d *Divide) DenominatorMeasures() []qname.QName {
	return d.measuresUnder("unitDenominator")
}

// Measure is an xbrli:measure element whose QName-valued text is resolved
// against the element's own namespace scope at classification time.
type Measure struct {
	elem
	value qname.QName
}

func newMeasure(base elem) (*Measure, error) {
	value, err := qname.Resolve(base.node.TextContent(), base.node.Scope())
	if err != nil {
		return nil, structuralf(errors.ErrUnboundPrefix, base.node, "measure value: %v", err)
	}
	return &Measure{elem: base, value: value}, nil
}

// Value returns the resolved measure name.
func (m *Measure) Value() qname.QName { return m.value }
