package xbrl

import (
	"fmt"
	"time"

	"github.com/jacoelho/xbrl/errors"
	"github.com/jacoelho/xbrl/pkg/qname"
	"github.com/jacoelho/xbrl/pkg/xmldom"
)

// Row is the tabular projection of one top-level item fact with its context
// and unit resolved.
type Row struct {
	Path             xmldom.Path
	Concept          qname.QName
	EntityScheme     string
	EntityIdentifier string
	Instant          *time.Time
	StartDate        *time.Time
	EndDate          *time.Time
	Dimensions       map[qname.QName]qname.QName
	Measures         []qname.QName
}

// ConvertToRows projects an instance to one row per top-level item fact, in
// document order. A contextRef or unitRef that resolves to nothing is a hard
// error naming the dangling id and the referencing fact's path; callers
// wanting lenient behavior must pre-filter facts.
func ConvertToRows(inst *Instance) ([]Row, error) {
	items := inst.TopLevelItems()
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		row, err := convertItem(inst, item)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func convertItem(inst *Instance, item ItemFact) (Row, error) {
	ctx, ok := inst.ContextByID(item.ContextRef())
	if !ok {
		return Row{}, errors.StructuralList{errors.NewStructuralf(errors.ErrMissingContext, item.Path().String(),
			"missing context %s", item.ContextRef())}
	}

	row := Row{
		Path:       item.Path(),
		Concept:    item.ConceptName(),
		Dimensions: ctx.ExplicitDimensionMembers(),
	}
	if identifier := ctx.Entity().Identifier(); identifier != nil {
		row.EntityScheme = identifier.Scheme()
		row.EntityIdentifier = identifier.Value()
	}
	if err := projectPeriod(ctx.Period(), &row); err != nil {
		return Row{}, err
	}

	if numeric, ok := item.(NumericItemFact); ok {
		unit, ok := inst.UnitByID(numeric.UnitRef())
		if !ok {
			return Row{}, errors.StructuralList{errors.NewStructuralf(errors.ErrMissingUnit, item.Path().String(),
				"missing unit %s", numeric.UnitRef())}
		}
		row.Measures = unit.Measures()
	}
	return row, nil
}

func projectPeriod(period Period, row *Row) error {
	switch p := period.(type) {
	case *InstantPeriod:
		instant, err := parseEndOfDay(p.Instant())
		if err != nil {
			return structuralf(errors.ErrMalformedPeriod, p.GenericElem(), "instant: %v", err)
		}
		row.Instant = &instant
	case *StartEndDatePeriod:
		start, err := parseStartOfDay(p.StartDate())
		if err != nil {
			return structuralf(errors.ErrMalformedPeriod, p.GenericElem(), "startDate: %v", err)
		}
		end, err := parseEndOfDay(p.EndDate())
		if err != nil {
			return structuralf(errors.ErrMalformedPeriod, p.GenericElem(), "endDate: %v", err)
		}
		row.StartDate = &start
		row.EndDate = &end
	case *ForeverPeriod:
		// No period bounds.
	}
	return nil
}

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
)

// parseStartOfDay interprets a period start: a plain date means the start of
// that calendar day.
func parseStartOfDay(lexical string) (time.Time, error) {
	return parsePeriodValue(lexical, 0)
}

// parseEndOfDay interprets an instant or period end: a plain date means the
// end of that calendar day, i.e. the start of the following day. Instants
// and period ends are exclusive upper bounds in XBRL.
func parseEndOfDay(lexical string) (time.Time, error) {
	return parsePeriodValue(lexical, 1)
}

func parsePeriodValue(lexical string, addDays int) (time.Time, error) {
	if t, err := time.Parse(dateTimeLayout, lexical); err == nil {
		// An explicit dateTime is already a point in time.
		return t, nil
	}
	t, err := time.Parse(dateLayout, lexical)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid period value %q", lexical)
	}
	return t.AddDate(0, 0, addDays), nil
}
