// Package completion maps a grammatical context to its ordered candidate
// set. Items are static templates: documentation is rendered once at
// startup, so serving a request is a table lookup.
package completion

import (
	"sort"
	"strings"

	"github.com/CleverFlare/cql-lsp/internal/resolver"
)

// ItemKind tags what a candidate is, mirroring the protocol's completion
// item kinds without depending on it.
type ItemKind int

const (
	Keyword ItemKind = iota
	Snippet
	TypeName
	Function
)

// Documentation is the structured source a candidate's help text is
// rendered from.
type Documentation struct {
	Synopsis string
	Example  string
	Notes    []string
}

// Markdown renders the sections into one Markdown block.
func (d Documentation) Markdown() string {
	var b strings.Builder
	b.WriteString(d.Synopsis)
	if d.Example != "" {
		b.WriteString("\n\n```cql\n")
		b.WriteString(d.Example)
		b.WriteString("\n```")
	}
	for _, note := range d.Notes {
		b.WriteString("\n\n")
		b.WriteString(note)
	}
	return b.String()
}

// Item is a single completion candidate. Items are shared templates;
// callers must not mutate them.
type Item struct {
	Label      string
	InsertText string // empty means insert the label verbatim
	Kind       ItemKind
	Deprecated bool
	// IsSnippet marks InsertText as using snippet placeholder syntax.
	IsSnippet bool
	Doc       Documentation

	// priority groups candidates: lower comes first, label order breaks
	// ties. Grammar-likely suggestions outrank exotic ones.
	priority int

	rendered string
}

// Documentation returns the pre-rendered Markdown for the item.
func (i Item) Documentation() string {
	return i.rendered
}

// Insert returns the text to insert when the item is accepted.
func (i Item) Insert() string {
	if i.InsertText != "" {
		return i.InsertText
	}
	return i.Label
}

var tables map[resolver.Kind][]Item

func init() {
	tables = map[resolver.Kind][]Item{
		resolver.StatementStart:    statementStart,
		resolver.PostCreate:        postCreate,
		resolver.PostDrop:          postDrop,
		resolver.PostAlter:         postAlter,
		resolver.CreateTableName:   createTableName,
		resolver.SelectColumns:     selectColumns,
		resolver.FromClause:        fromClause,
		resolver.WhereClause:       whereClause,
		resolver.ColumnDefinitions: columnDefinitions,
		resolver.InsertInto:        insertInto,
		// TableReference expects a table name; without schema introspection
		// there is nothing to offer. Suppressed must stay empty.
		resolver.TableReference: nil,
		resolver.Suppressed:     nil,
	}

	for kind, items := range tables {
		for i := range items {
			items[i].rendered = items[i].Doc.Markdown()
		}
		sort.SliceStable(items, func(a, b int) bool {
			if items[a].priority != items[b].priority {
				return items[a].priority < items[b].priority
			}
			return items[a].Label < items[b].Label
		})
		tables[kind] = items
	}
}

// Complete returns the ordered candidates for ctx. The same context always
// yields the same ordered list; suppressed and unknown contexts yield
// nothing.
func Complete(ctx resolver.Context) []Item {
	items := tables[ctx.Kind]
	if len(items) == 0 {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
