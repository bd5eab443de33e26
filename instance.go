package xbrl

import (
	"github.com/jacoelho/xbrl/errors"
	"github.com/jacoelho/xbrl/pkg/qname"
)

// Instance is the xbrli:xbrl document root. Identifier and concept indexes
// over the direct children are built once at construction; recursive fact
// queries scan descendants on demand.
type Instance struct {
	elem

	contextsByID map[string]*Context
	unitsByID    map[string]*Unit

	topLevelFacts  []Fact
	topLevelItems  []ItemFact
	topLevelTuples []*Tuple

	topLevelItemsByName  map[qname.QName][]ItemFact
	topLevelTuplesByName map[qname.QName][]*Tuple
}

func newInstance(base elem) (*Instance, error) {
	inst := &Instance{
		elem:                 base,
		contextsByID:         make(map[string]*Context),
		unitsByID:            make(map[string]*Unit),
		topLevelItemsByName:  make(map[qname.QName][]ItemFact),
		topLevelTuplesByName: make(map[qname.QName][]*Tuple),
	}
	for _, child := range base.children {
		switch typed := child.(type) {
		case *Context:
			if _, exists := inst.contextsByID[typed.ID()]; exists {
				return nil, structuralf(errors.ErrDuplicateID, typed.GenericElem(), "duplicate context id %q", typed.ID())
			}
			inst.contextsByID[typed.ID()] = typed
		case *Unit:
			if _, exists := inst.unitsByID[typed.ID()]; exists {
				return nil, structuralf(errors.ErrDuplicateID, typed.GenericElem(), "duplicate unit id %q", typed.ID())
			}
			inst.unitsByID[typed.ID()] = typed
		case *Tuple:
			inst.topLevelFacts = append(inst.topLevelFacts, typed)
			inst.topLevelTuples = append(inst.topLevelTuples, typed)
			inst.topLevelTuplesByName[typed.ConceptName()] = append(inst.topLevelTuplesByName[typed.ConceptName()], typed)
		default:
			if item, ok := child.(ItemFact); ok {
				inst.topLevelFacts = append(inst.topLevelFacts, item)
				inst.topLevelItems = append(inst.topLevelItems, item)
				inst.topLevelItemsByName[item.ConceptName()] = append(inst.topLevelItemsByName[item.ConceptName()], item)
			}
		}
	}
	return inst, nil
}

// ContextByID returns the context with the given id. Lookups are O(1);
// duplicate ids are rejected at construction.
func (i *Instance) ContextByID(id string) (*Context, bool) {
	ctx, ok := i.contextsByID[id]
	return ctx, ok
}

// UnitByID returns the unit with the given id.
func (i *Instance) UnitByID(id string) (*Unit, bool) {
	unit, ok := i.unitsByID[id]
	return unit, ok
}

// Contexts returns the instance's contexts in document order.
func (i *Instance) Contexts() []*Context {
	return ChildrenOf[*Context](i)
}

// Units returns the instance's units in document order.
func (i *Instance) Units() []*Unit {
	return ChildrenOf[*Unit](i)
}

// TopLevelFacts returns the facts that are direct children of the root, in
// document order.
func (i *Instance) TopLevelFacts() []Fact {
	result := make([]Fact, len(i.topLevelFacts))
	copy(result, i.topLevelFacts)
	return result
}

// TopLevelItems returns the top-level item facts in document order.
func (i *Instance) TopLevelItems() []ItemFact {
	result := make([]ItemFact, len(i.topLevelItems))
	copy(result, i.topLevelItems)
	return result
}

// TopLevelTuples returns the top-level tuples in document order.
func (i *Instance) TopLevelTuples() []*Tuple {
	result := make([]*Tuple, len(i.topLevelTuples))
	copy(result, i.topLevelTuples)
	return result
}

// TopLevelItemsByName returns the top-level item facts with the given
// concept name, in document order.
func (i *Instance) TopLevelItemsByName(name qname.QName) []ItemFact {
	items := i.topLevelItemsByName[name]
	result := make([]ItemFact, len(items))
	copy(result, items)
	return result
}

// TopLevelTuplesByName returns the top-level tuples with the given concept
// name, in document order.
func (i *Instance) TopLevelTuplesByName(name qname.QName) []*Tuple {
	tuples := i.topLevelTuplesByName[name]
	result := make([]*Tuple, len(tuples))
	copy(result, tuples)
	return result
}

// AllFacts returns every fact in the instance, including facts nested in
// tuples, in document order. This is a full-tree scan.
func (i *Instance) AllFacts() []Fact {
	return DescendantsOf[Fact](i)
}

// AllItems returns every item fact in the instance, including nested ones,
// in document order.
func (i *Instance) AllItems() []ItemFact {
	return DescendantsOf[ItemFact](i)
}

// AllTuples returns every tuple in the instance, including nested ones, in
// document order.
func (i *Instance) AllTuples() []*Tuple {
	return DescendantsOf[*Tuple](i)
}

// SchemaRefs returns the link:schemaRef children in document order.
func (i *Instance) SchemaRefs() []*SchemaRef {
	return ChildrenOf[*SchemaRef](i)
}

// LinkbaseRefs returns the link:linkbaseRef children in document order.
func (i *Instance) LinkbaseRefs() []*LinkbaseRef {
	return ChildrenOf[*LinkbaseRef](i)
}

// RoleRefs returns the link:roleRef children in document order.
func (i *Instance) RoleRefs() []*RoleRef {
	return ChildrenOf[*RoleRef](i)
}

// ArcroleRefs returns the link:arcroleRef children in document order.
func (i *Instance) ArcroleRefs() []*ArcroleRef {
	return ChildrenOf[*ArcroleRef](i)
}

// FootnoteLinks returns the link:footnoteLink children in document order.
func (i *Instance) FootnoteLinks() []*FootnoteLink {
	return ChildrenOf[*FootnoteLink](i)
}
