package xbrl

import (
	"strings"
	"testing"

	xbrlerrors "github.com/jacoelho/xbrl/errors"
	"github.com/jacoelho/xbrl/pkg/qname"
)

func TestContextAndUnitIndexes(t *testing.T) {
	inst := parseInstance(t, sampleInstance)

	ctx, ok := inst.ContextByID("C1")
	if !ok {
		t.Fatal("ContextByID(C1) not found")
	}
	if ctx.ID() != "C1" {
		t.Fatalf("ID() = %s, want C1", ctx.ID())
	}
	if _, ok := inst.ContextByID("missing"); ok {
		t.Fatal("ContextByID(missing) found, want absent")
	}

	unit, ok := inst.UnitByID("U1")
	if !ok {
		t.Fatal("UnitByID(U1) not found")
	}
	measures := unit.Measures()
	if len(measures) != 1 || measures[0] != qname.New("http://www.xbrl.org/2003/iso4217", "USD") {
		t.Fatalf("Measures() = %v, want [{iso4217}USD]", measures)
	}
}

func TestIndexMatchesScan(t *testing.T) {
	inst := parseInstance(t, sampleInstance)
	for _, id := range []string{"C1", "C2"} {
		indexed, ok := inst.ContextByID(id)
		if !ok {
			t.Fatalf("ContextByID(%s) not found", id)
		}
		var scanned []*Context
		for _, ctx := range DescendantsOf[*Context](inst) {
			if ctx.ID() == id {
				scanned = append(scanned, ctx)
			}
		}
		if len(scanned) != 1 {
			t.Fatalf("scan for context %s found %d matches, want 1", id, len(scanned))
		}
		if !Equal(indexed, scanned[0]) {
			t.Fatalf("index and scan disagree for context %s", id)
		}
	}
}

func TestDuplicateContextIDFails(t *testing.T) {
	doc := `<xbrli:xbrl xmlns:xbrli="http://www.xbrl.org/2003/instance">
	  <xbrli:context id="C1">
	    <xbrli:entity><xbrli:identifier scheme="urn:s">E</xbrli:identifier></xbrli:entity>
	    <xbrli:period><xbrli:forever/></xbrli:period>
	  </xbrli:context>
	  <xbrli:context id="C1">
	    <xbrli:entity><xbrli:identifier scheme="urn:s">E</xbrli:identifier></xbrli:entity>
	    <xbrli:period><xbrli:forever/></xbrli:period>
	  </xbrli:context>
	</xbrli:xbrl>`
	_, err := Parse(strings.NewReader(doc))
	assertStructuralCode(t, err, xbrlerrors.ErrDuplicateID)
}

func TestDuplicateUnitIDFails(t *testing.T) {
	doc := `<xbrli:xbrl xmlns:xbrli="http://www.xbrl.org/2003/instance">
	  <xbrli:unit id="U1"><xbrli:measure>xbrli:pure</xbrli:measure></xbrli:unit>
	  <xbrli:unit id="U1"><xbrli:measure>xbrli:shares</xbrli:measure></xbrli:unit>
	</xbrli:xbrl>`
	_, err := Parse(strings.NewReader(doc))
	assertStructuralCode(t, err, xbrlerrors.ErrDuplicateID)
}

func TestTopLevelFactPartition(t *testing.T) {
	inst := parseInstance(t, sampleInstance)

	facts := inst.TopLevelFacts()
	items := inst.TopLevelItems()
	tuples := inst.TopLevelTuples()

	if len(items)+len(tuples) != len(facts) {
		t.Fatalf("partition sizes: %d items + %d tuples != %d facts", len(items), len(tuples), len(facts))
	}
	if len(items) != 4 || len(tuples) != 1 {
		t.Fatalf("partition = (%d items, %d tuples), want (4, 1)", len(items), len(tuples))
	}

	inFacts := func(e Elem) bool {
		for _, f := range facts {
			if Equal(f, e) {
				return true
			}
		}
		return false
	}
	for _, item := range items {
		if !inFacts(item) {
			t.Fatalf("item %s missing from top-level facts", item.Path())
		}
	}
	for _, tuple := range tuples {
		if !inFacts(tuple) {
			t.Fatalf("tuple %s missing from top-level facts", tuple.Path())
		}
	}
}

func TestAllFactsIncludesNested(t *testing.T) {
	inst := parseInstance(t, sampleInstance)

	if got := len(inst.AllFacts()); got != 6 {
		t.Fatalf("len(AllFacts()) = %d, want 6", got)
	}
	if got := len(inst.AllItems()); got != 5 {
		t.Fatalf("len(AllItems()) = %d, want 5", got)
	}
	if got := len(inst.AllTuples()); got != 1 {
		t.Fatalf("len(AllTuples()) = %d, want 1", got)
	}

	tuple := inst.TopLevelTuples()[0]
	childFacts := tuple.ChildFacts()
	if len(childFacts) != 1 || childFacts[0].ConceptName() != qname.New(gaapNS, "OwnerName") {
		t.Fatalf("ChildFacts() = %v, want one OwnerName item", childFacts)
	}
}

func TestConceptNameGrouping(t *testing.T) {
	doc := `<xbrli:xbrl xmlns:xbrli="http://www.xbrl.org/2003/instance" xmlns:gaap="http://example.com/gaap">
	  <xbrli:context id="C1">
	    <xbrli:entity><xbrli:identifier scheme="urn:s">E</xbrli:identifier></xbrli:entity>
	    <xbrli:period><xbrli:forever/></xbrli:period>
	  </xbrli:context>
	  <gaap:Note contextRef="C1">first</gaap:Note>
	  <gaap:Note contextRef="C1">second</gaap:Note>
	</xbrli:xbrl>`
	inst := parseInstance(t, doc)

	notes := inst.TopLevelItemsByName(qname.New(gaapNS, "Note"))
	if len(notes) != 2 {
		t.Fatalf("TopLevelItemsByName(Note) = %d items, want 2", len(notes))
	}
	first, ok := notes[0].(*NonNumericItem)
	if !ok {
		t.Fatalf("notes[0] is %T, want NonNumericItem", notes[0])
	}
	if first.Value() != "first" {
		t.Fatalf("grouping is not in document order: first value = %q", first.Value())
	}
}

func TestContextDimensions(t *testing.T) {
	inst := parseInstance(t, sampleInstance)
	ctx, _ := inst.ContextByID("C1")

	members := ctx.ExplicitDimensionMembers()
	want := map[qname.QName]qname.QName{
		qname.New(myNS, "D1"): qname.New(myNS, "M1"),
		qname.New(myNS, "D2"): qname.New(myNS, "M2"),
	}
	if len(members) != len(want) {
		t.Fatalf("ExplicitDimensionMembers() = %v, want %v", members, want)
	}
	for dim, member := range want {
		if members[dim] != member {
			t.Fatalf("member for %v = %v, want %v", dim, members[dim], member)
		}
	}

	segment := ctx.Segment()
	if segment == nil {
		t.Fatal("Segment() = nil, want segment")
	}
	if got := len(segment.ExplicitMembers()); got != 2 {
		t.Fatalf("segment ExplicitMembers() = %d, want 2", got)
	}
	if ctx.Scenario() != nil {
		t.Fatal("Scenario() != nil, want nil")
	}
}

func TestRepeatedDimensionLastWins(t *testing.T) {
	doc := `<xbrli:xbrl xmlns:xbrli="http://www.xbrl.org/2003/instance"
	    xmlns:xbrldi="http://xbrl.org/2006/xbrldi" xmlns:my="http://example.com/my">
	  <xbrli:context id="C1">
	    <xbrli:entity>
	      <xbrli:identifier scheme="urn:s">E</xbrli:identifier>
	      <xbrli:segment>
	        <xbrldi:explicitMember dimension="my:D1">my:M1</xbrldi:explicitMember>
	        <xbrldi:explicitMember dimension="my:D1">my:M2</xbrldi:explicitMember>
	      </xbrli:segment>
	    </xbrli:entity>
	    <xbrli:period><xbrli:forever/></xbrli:period>
	  </xbrli:context>
	</xbrli:xbrl>`
	inst := parseInstance(t, doc)
	ctx, _ := inst.ContextByID("C1")

	members := ctx.ExplicitDimensionMembers()
	if len(members) != 1 {
		t.Fatalf("ExplicitDimensionMembers() has %d entries, want 1", len(members))
	}
	if got := members[qname.New(myNS, "D1")]; got != qname.New(myNS, "M2") {
		t.Fatalf("member for D1 = %v, want last member M2", got)
	}
}

func TestEntityAndPeriodAccessors(t *testing.T) {
	inst := parseInstance(t, sampleInstance)

	ctx, _ := inst.ContextByID("C1")
	identifier := ctx.Entity().Identifier()
	if identifier.Scheme() != "http://example.com" || identifier.Value() != "E1" {
		t.Fatalf("identifier = (%s, %s), want (http://example.com, E1)", identifier.Scheme(), identifier.Value())
	}
	instant, ok := ctx.Period().(*InstantPeriod)
	if !ok {
		t.Fatalf("C1 period is %T, want InstantPeriod", ctx.Period())
	}
	if instant.Instant() != "2020-12-31" {
		t.Fatalf("Instant() = %q, want 2020-12-31", instant.Instant())
	}

	duration, _ := inst.ContextByID("C2")
	period, ok := duration.Period().(*StartEndDatePeriod)
	if !ok {
		t.Fatalf("C2 period is %T, want StartEndDatePeriod", duration.Period())
	}
	if period.StartDate() != "2020-01-01" || period.EndDate() != "2020-12-31" {
		t.Fatalf("period = (%s, %s)", period.StartDate(), period.EndDate())
	}
}

func TestInstanceLinkAccessors(t *testing.T) {
	inst := parseInstance(t, sampleInstance)

	refs := inst.SchemaRefs()
	if len(refs) != 1 || refs[0].Href() != "gaap.xsd" {
		t.Fatalf("SchemaRefs() = %v, want one ref to gaap.xsd", refs)
	}
	if got := len(inst.FootnoteLinks()); got != 1 {
		t.Fatalf("len(FootnoteLinks()) = %d, want 1", got)
	}
	if got := len(inst.LinkbaseRefs()); got != 0 {
		t.Fatalf("len(LinkbaseRefs()) = %d, want 0", got)
	}
}
