package resolver_test

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CleverFlare/cql-lsp/internal/document"
	"github.com/CleverFlare/cql-lsp/internal/parser"
	"github.com/CleverFlare/cql-lsp/internal/resolver"
)

func parse(t *testing.T, text string) *sitter.Tree {
	t.Helper()
	p := parser.New()
	t.Cleanup(func() { p.Close() })
	tree, err := p.Parse(context.Background(), []byte(text))
	require.NoError(t, err)
	return tree
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  document.Position
		want resolver.Kind
	}{
		{
			name: "empty document",
			text: "",
			pos:  document.Position{Line: 0, Character: 0},
			want: resolver.StatementStart,
		},
		{
			name: "before first keyword",
			text: "SELECT",
			pos:  document.Position{Line: 0, Character: 0},
			want: resolver.StatementStart,
		},
		{
			name: "leading edge of second keyword",
			text: "CREATE TABLE",
			pos:  document.Position{Line: 0, Character: 7},
			want: resolver.PostCreate,
		},
		{
			name: "after create keyword",
			text: "CREATE",
			pos:  document.Position{Line: 0, Character: 6},
			want: resolver.PostCreate,
		},
		{
			name: "after create and trailing space",
			text: "CREATE ",
			pos:  document.Position{Line: 0, Character: 7},
			want: resolver.PostCreate,
		},
		{
			name: "lowercase keywords",
			text: "create ",
			pos:  document.Position{Line: 0, Character: 7},
			want: resolver.PostCreate,
		},
		{
			name: "inside line comment",
			text: "-- CREATE",
			pos:  document.Position{Line: 0, Character: 5},
			want: resolver.Suppressed,
		},
		{
			name: "inside string literal",
			text: "SELECT 'abc';",
			pos:  document.Position{Line: 0, Character: 10},
			want: resolver.Suppressed,
		},
		{
			name: "after select keyword",
			text: "SELECT ",
			pos:  document.Position{Line: 0, Character: 7},
			want: resolver.SelectColumns,
		},
		{
			name: "after from keyword",
			text: "SELECT * FROM ",
			pos:  document.Position{Line: 0, Character: 14},
			want: resolver.TableReference,
		},
		{
			name: "after where keyword",
			text: "SELECT * FROM users WHERE ",
			pos:  document.Position{Line: 0, Character: 26},
			want: resolver.WhereClause,
		},
		{
			name: "after insert keyword",
			text: "INSERT ",
			pos:  document.Position{Line: 0, Character: 7},
			want: resolver.InsertInto,
		},
		{
			name: "after drop keyword",
			text: "DROP ",
			pos:  document.Position{Line: 0, Character: 5},
			want: resolver.PostDrop,
		},
		{
			name: "after alter keyword",
			text: "ALTER ",
			pos:  document.Position{Line: 0, Character: 6},
			want: resolver.PostAlter,
		},
		{
			name: "after create table",
			text: "CREATE TABLE ",
			pos:  document.Position{Line: 0, Character: 13},
			want: resolver.CreateTableName,
		},
		{
			name: "between column definitions",
			text: "CREATE TABLE users (id int, name text);",
			pos:  document.Position{Line: 0, Character: 27},
			want: resolver.ColumnDefinitions,
		},
		{
			name: "after complete statement",
			text: "SELECT 1; ",
			pos:  document.Position{Line: 0, Character: 10},
			want: resolver.StatementStart,
		},
		{
			name: "second line after comment",
			text: "-- users table\nCREATE ",
			pos:  document.Position{Line: 1, Character: 7},
			want: resolver.PostCreate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parse(t, tt.text)
			ctx := resolver.Resolve(tree, []byte(tt.text), tt.pos)
			assert.Equal(t, tt.want, ctx.Kind,
				"resolved to %s, want %s", ctx.Kind, tt.want)
		})
	}
}

func TestResolveNilTree(t *testing.T) {
	ctx := resolver.Resolve(nil, []byte("SELECT"), document.Position{})
	assert.Equal(t, resolver.StatementStart, ctx.Kind)
}

func TestResolveOutOfBoundsDegrades(t *testing.T) {
	// Resolution never fails: an unmappable position is treated as
	// end-of-document.
	tree := parse(t, "SELECT")
	var ctx resolver.Context
	assert.NotPanics(t, func() {
		ctx = resolver.Resolve(tree, []byte("SELECT"), document.Position{Line: 9, Character: 9})
	})
	assert.Equal(t, resolver.SelectColumns, ctx.Kind)
}

func TestResolveBoundaryFlag(t *testing.T) {
	tree := parse(t, "CREATE")
	ctx := resolver.Resolve(tree, []byte("CREATE"), document.Position{Line: 0, Character: 6})
	assert.True(t, ctx.AtBoundary)
	assert.Equal(t, "keyword_create", ctx.Node)
}
