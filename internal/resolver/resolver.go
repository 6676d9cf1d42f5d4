// Package resolver classifies cursor positions: given a parse tree and a
// position it derives the grammatical context the completion engine keys on
// (statement start, right after CREATE, inside a column-definition list, and
// so on). Resolution never fails; unresolvable positions degrade to a safe
// default.
package resolver

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/CleverFlare/cql-lsp/internal/document"
)

// Kind is a discrete grammatical context tag.
type Kind int

const (
	// StatementStart expects a statement keyword: empty documents, the gap
	// after a completed statement, and every position nothing else claims.
	StatementStart Kind = iota
	// PostCreate expects an object kind right after CREATE.
	PostCreate
	// PostDrop expects an object kind right after DROP.
	PostDrop
	// PostAlter expects an object kind right after ALTER.
	PostAlter
	// CreateTableName sits after CREATE TABLE, before the table name.
	CreateTableName
	// SelectColumns is the projection list of a SELECT.
	SelectColumns
	// TableReference expects a table name (after FROM, INTO, UPDATE).
	TableReference
	// FromClause continues a FROM clause whose table is already written.
	FromClause
	// WhereClause sits inside a WHERE predicate.
	WhereClause
	// ColumnDefinitions sits inside the parenthesized column list of a
	// CREATE TABLE.
	ColumnDefinitions
	// InsertInto sits right after INSERT.
	InsertInto
	// Suppressed marks positions inside comments and literals where no
	// completion may be offered.
	Suppressed
)

var kindNames = map[Kind]string{
	StatementStart:    "statement-start",
	PostCreate:        "post-create",
	PostDrop:          "post-drop",
	PostAlter:         "post-alter",
	CreateTableName:   "create-table-name",
	SelectColumns:     "select-columns",
	TableReference:    "table-reference",
	FromClause:        "from-clause",
	WhereClause:       "where-clause",
	ColumnDefinitions: "column-definitions",
	InsertInto:        "insert-into",
	Suppressed:        "suppressed",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Context describes the syntactic situation at a cursor position. It is
// ephemeral: derived per request, never stored.
type Context struct {
	Kind Kind
	// Statement is the kind of the nearest enclosing statement or ERROR
	// node, empty at top level.
	Statement string
	// Node is the kind of the token that drove classification.
	Node string
	// AtBoundary reports whether the cursor sits at or past the end of that
	// token, i.e. the token is completely typed.
	AtBoundary bool
}

// keywordKinds maps a completely-typed keyword token to the context it
// opens. This is the "what was just typed" half of the dispatch table.
var keywordKinds = map[string]Kind{
	"keyword_create": PostCreate,
	"keyword_drop":   PostDrop,
	"keyword_alter":  PostAlter,
	"keyword_select": SelectColumns,
	"keyword_from":   TableReference,
	"keyword_into":   TableReference,
	"keyword_update": TableReference,
	"keyword_insert": InsertInto,
	"keyword_where":  WhereClause,
}

// Resolve derives the grammatical context at pos. tree may be nil (an
// unparsed document), in which case the statement-start default applies.
func Resolve(tree *sitter.Tree, source []byte, pos document.Position) Context {
	if tree == nil {
		return Context{Kind: StatementStart}
	}
	root := tree.RootNode()
	if root == nil || len(source) == 0 {
		return Context{Kind: StatementStart}
	}

	offset, err := document.OffsetInText(source, pos)
	if err != nil {
		// Degrade instead of failing: treat the cursor as end-of-document.
		offset = uint32(len(source))
	}

	leaf := descend(root, offset)

	// When the descent stops above the token level the cursor sits in
	// whitespace; the context of what was just typed wins, so classify the
	// last token before the cursor. A cursor at a token's leading edge has
	// typed none of it yet, so the same fallback applies.
	tok := leaf
	if tok.ChildCount() > 0 {
		tok = lastLeafBefore(tok, offset)
	} else if offset == tok.StartByte() {
		tok = lastLeafBefore(root, offset)
	}
	if tok == nil || tok.Type() == root.Type() {
		return Context{Kind: StatementStart}
	}

	ctx := Context{
		Node:       tok.Type(),
		AtBoundary: offset >= tok.EndByte(),
		Statement:  nearestStatementKind(tok),
	}
	ctx.Kind = classify(tok, offset, ctx.AtBoundary)
	return ctx
}

// descend walks from root toward the cursor, selecting at each level the
// child whose span holds the offset. A child ending exactly at the offset
// beats one starting there: right after typing a keyword the keyword's
// context applies, not the context of whatever follows.
func descend(root *sitter.Node, offset uint32) *sitter.Node {
	cur := root
	for {
		next := childAt(cur, offset)
		if next == nil {
			return cur
		}
		cur = next
	}
}

func childAt(n *sitter.Node, offset uint32) *sitter.Node {
	var containing *sitter.Node
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.EndByte() == offset && child.StartByte() < offset {
			return child
		}
		if child.StartByte() <= offset && offset < child.EndByte() {
			containing = child
		}
	}
	return containing
}

// lastLeafBefore returns the deepest token ending at or before offset, i.e.
// the last thing typed before the cursor.
func lastLeafBefore(n *sitter.Node, offset uint32) *sitter.Node {
	if n.ChildCount() == 0 {
		if n.EndByte() <= offset {
			return n
		}
		return nil
	}
	for i := int(n.ChildCount()) - 1; i >= 0; i-- {
		child := n.Child(i)
		if child.StartByte() >= offset {
			continue
		}
		if leaf := lastLeafBefore(child, offset); leaf != nil {
			return leaf
		}
	}
	return nil
}

func classify(tok *sitter.Node, offset uint32, atBoundary bool) Kind {
	if suppressedAt(tok, offset) {
		return Suppressed
	}

	if atBoundary {
		if kind, ok := keywordKinds[tok.Type()]; ok {
			return kind
		}
		if tok.Type() == "keyword_table" {
			if underCreate(tok) {
				return CreateTableName
			}
			return TableReference
		}
	}

	return enclosingClauseKind(tok, atBoundary)
}

// suppressedAt reports whether offset falls inside a comment or literal.
// Line comments swallow their trailing end (they run to end of line); block
// comments and literals stop suppressing once the cursor passes their
// closing delimiter.
func suppressedAt(tok *sitter.Node, offset uint32) bool {
	for cur := tok; cur != nil; cur = cur.Parent() {
		switch cur.Type() {
		case "comment":
			if offset > cur.StartByte() && offset <= cur.EndByte() {
				return true
			}
		case "marginalia", "literal":
			if offset > cur.StartByte() && offset < cur.EndByte() {
				return true
			}
		}
	}
	return false
}

// underCreate reports whether tok belongs to a CREATE statement, complete
// or still under error recovery.
func underCreate(tok *sitter.Node) bool {
	parent := tok.Parent()
	if parent == nil {
		return false
	}
	if kindHasPrefix(parent.Type(), "create") {
		return true
	}
	for i := 0; i < int(parent.ChildCount()); i++ {
		child := parent.Child(i)
		if child.StartByte() >= tok.StartByte() {
			break
		}
		if child.Type() == "keyword_create" {
			return true
		}
	}
	return false
}

// enclosingClauseKind walks tok's ancestors mapping the nearest clause node
// to a context. Reaching the root without a match is the statement-start
// default.
func enclosingClauseKind(tok *sitter.Node, atBoundary bool) Kind {
	identifierish := tok.Type() == "identifier" || tok.Type() == "object_reference"

	for cur := tok; cur != nil; cur = cur.Parent() {
		switch cur.Type() {
		case "column_definitions", "column_definition":
			return ColumnDefinitions
		case "where":
			return WhereClause
		case "from", "relation":
			if identifierish && !atBoundary {
				return TableReference
			}
			return FromClause
		case "select", "select_expression":
			return SelectColumns
		}
	}
	return StatementStart
}

// nearestStatementKind finds the closest statement or ERROR ancestor.
// Half-typed statements usually live under ERROR until the grammar can
// commit to a statement node.
func nearestStatementKind(tok *sitter.Node) string {
	for cur := tok; cur != nil; cur = cur.Parent() {
		if cur.Type() == "statement" || cur.Type() == "ERROR" {
			return cur.Type()
		}
	}
	return ""
}

func kindHasPrefix(kind, prefix string) bool {
	return len(kind) >= len(prefix) && kind[:len(prefix)] == prefix
}
