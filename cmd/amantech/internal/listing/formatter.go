// Package listing formats content records for the command line.
package listing

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/nfrund/amantech/internal/content"
)

// Row is one record prepared for display.
type Row struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type kind struct {
	heading [3]string
	rows    func(*content.Catalog) []Row
}

var kinds = map[string]kind{
	"services": {[3]string{"ID", "TITLE", "DESCRIPTION"}, func(c *content.Catalog) []Row {
		var rows []Row
		for _, s := range c.Services() {
			rows = append(rows, Row{strconv.Itoa(s.ID), s.Title, s.Description})
		}
		return rows
	}},
	"featured": {[3]string{"ID", "NAME", "DESCRIPTION"}, func(c *content.Catalog) []Row {
		var rows []Row
		for _, p := range c.FeaturedProducts() {
			rows = append(rows, Row{strconv.Itoa(p.ID), p.Name, p.Description})
		}
		return rows
	}},
	"products": {[3]string{"ID", "NAME", "APPLICATIONS"}, func(c *content.Catalog) []Row {
		var rows []Row
		for _, p := range c.Products() {
			rows = append(rows, Row{strconv.Itoa(p.ID), p.Name, strings.Join(p.Applications, ", ")})
		}
		return rows
	}},
	"testimonials": {[3]string{"ID", "AUTHOR", "TEXT"}, func(c *content.Catalog) []Row {
		var rows []Row
		for _, t := range c.Testimonials() {
			rows = append(rows, Row{strconv.Itoa(t.ID), t.Author, t.Text})
		}
		return rows
	}},
	"milestones": {[3]string{"YEAR", "TITLE", "DESCRIPTION"}, func(c *content.Catalog) []Row {
		var rows []Row
		for _, m := range c.Milestones() {
			rows = append(rows, Row{m.Year, m.Title, m.Description})
		}
		return rows
	}},
	"links": {[3]string{"HREF", "LABEL", ""}, func(c *content.Catalog) []Row {
		var rows []Row
		for _, l := range c.QuickLinks() {
			rows = append(rows, Row{l.Href, l.Label, ""})
		}
		return rows
	}},
}

// Kinds returns the listable record kinds, sorted.
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KindsUsage is Kinds joined for a usage line.
func KindsUsage() string {
	return strings.Join(Kinds(), "|")
}

// Table is a kind's rows with their column headings.
type Table struct {
	Kind    string
	Heading [3]string
	Rows    []Row
}

// Rows extracts the records of one kind.
func Rows(cat *content.Catalog, name string) (Table, error) {
	k, ok := kinds[name]
	if !ok {
		return Table{}, fmt.Errorf("unknown content kind %q (one of %s)", name, strings.Join(Kinds(), ", "))
	}
	return Table{Kind: name, Heading: k.heading, Rows: k.rows(cat)}, nil
}

// DisplayTable writes t as an aligned table.
func DisplayTable(w io.Writer, t Table) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Heading[0], t.Heading[1], t.Heading[2])
	if len(t.Rows) == 0 {
		fmt.Fprintln(tw, "No records found")
		return
	}
	for _, r := range t.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Key, truncateString(r.Title, 30), truncateString(r.Detail, 50))
	}
}

// DisplayJSON writes t as indented JSON.
func DisplayJSON(w io.Writer, t Table) error {
	output := struct {
		Kind  string `json:"kind"`
		Rows  []Row  `json:"rows"`
		Count int    `json:"count"`
	}{
		Kind:  t.Kind,
		Rows:  t.Rows,
		Count: len(t.Rows),
	}
	if output.Rows == nil {
		output.Rows = []Row{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// Summary writes the record counts of every list.
func Summary(w io.Writer, cat *content.Catalog) {
	fmt.Fprintf(w, "   Company: %s\n", cat.Company().Name)
	fmt.Fprintf(w, "   Highlights: %d\n", len(cat.Highlights()))
	for _, name := range Kinds() {
		fmt.Fprintf(w, "   %s: %d\n", strings.ToUpper(name[:1])+name[1:], len(kinds[name].rows(cat)))
	}
}

// truncateString shortens s to maxLen runes, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	r := []rune(s)
	return string(r[:maxLen-3]) + "..."
}
