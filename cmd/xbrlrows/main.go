package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/jacoelho/xbrl"
	xbrlerrors "github.com/jacoelho/xbrl/errors"
	"github.com/jacoelho/xbrl/pkg/qname"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xbrlrows", flag.ContinueOnError)
	fs.SetOutput(stderr)
	separator := fs.String("sep", ";", "output field separator")
	fs.Usage = func() {
		_ = writef(stderr, "Usage: %s [-sep <separator>] <instance.xml>\n\n", os.Args[0])
		_ = writeln(stderr, "Projects an XBRL instance document to delimited rows, one per top-level item fact.")
		_ = writeln(stderr)
		_ = writeln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	remaining := fs.Args()
	if len(remaining) != 1 {
		if err := writeln(stderr, "error: exactly one instance file argument is required"); err != nil {
			return 1
		}
		fs.Usage()
		return 2
	}
	instancePath := remaining[0]

	inst, err := xbrl.LoadFile(instancePath)
	if err != nil {
		return reportError(stderr, "loading instance", err)
	}

	rows, err := xbrl.ConvertToRows(inst)
	if err != nil {
		return reportError(stderr, "projecting rows", err)
	}

	if err := writeRows(stdout, rows, *separator); err != nil {
		_ = writef(stderr, "error writing rows: %v\n", err)
		return 1
	}
	return 0
}

func reportError(stderr io.Writer, action string, err error) int {
	if structurals, ok := xbrlerrors.AsStructurals(err); ok {
		for _, s := range structurals {
			if writeErr := writeln(stderr, s.Error()); writeErr != nil {
				return 1
			}
		}
		return 1
	}
	_ = writef(stderr, "error %s: %v\n", action, err)
	return 1
}

// writeRows renders the projection: one header line with the fixed columns,
// one column per distinct dimension name sorted lexicographically, then
// Measures; one line per row with empty strings for absent fields and
// measures joined by ", ".
func writeRows(w io.Writer, rows []xbrl.Row, separator string) error {
	dimensions := collectDimensions(rows)

	header := []string{"Path", "Concept", "Scheme", "Identifier", "Instant", "Start date", "End date"}
	for _, dim := range dimensions {
		header = append(header, dim.String())
	}
	header = append(header, "Measures")
	if err := writeln(w, strings.Join(header, separator)); err != nil {
		return err
	}

	for _, row := range rows {
		fields := []string{
			row.Path.String(),
			row.Concept.String(),
			row.EntityScheme,
			row.EntityIdentifier,
			formatTime(row.Instant),
			formatTime(row.StartDate),
			formatTime(row.EndDate),
		}
		for _, dim := range dimensions {
			if member, ok := row.Dimensions[dim]; ok {
				fields = append(fields, member.String())
			} else {
				fields = append(fields, "")
			}
		}
		fields = append(fields, formatMeasures(row.Measures))
		if err := writeln(w, strings.Join(fields, separator)); err != nil {
			return err
		}
	}
	return nil
}

func collectDimensions(rows []xbrl.Row) []qname.QName {
	seen := make(map[qname.QName]bool)
	var dimensions []qname.QName
	for _, row := range rows {
		for dim := range row.Dimensions {
			if !seen[dim] {
				seen[dim] = true
				dimensions = append(dimensions, dim)
			}
		}
	}
	sort.Slice(dimensions, func(i, j int) bool {
		return dimensions[i].String() < dimensions[j].String()
	})
	return dimensions
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02T15:04:05")
}

func formatMeasures(measures []qname.QName) string {
	parts := make([]string, len(measures))
	for i, m := range measures {
		parts[i] = m.String()
	}
	return strings.Join(parts, ", ")
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
