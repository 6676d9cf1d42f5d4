package parser_test

import (
	"context"
	"testing"

	"github.com/CleverFlare/cql-lsp/internal/document"
	"github.com/CleverFlare/cql-lsp/internal/parser"
)

func TestFullParse(t *testing.T) {
	p := parser.New()
	defer p.Close()

	text := "SELECT * FROM users;"
	tree, err := p.Parse(context.Background(), []byte(text))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	root := tree.RootNode()
	if root == nil {
		t.Fatal("expected a root node")
	}
	if root.EndByte() != uint32(len(text)) {
		t.Errorf("root spans [0,%d), want [0,%d)", root.EndByte(), len(text))
	}
}

func TestIncrementalEquivalence(t *testing.T) {
	// An incremental reparse must be tree-equivalent to a full parse of the
	// resulting text.
	tests := []struct {
		name    string
		initial string
		change  document.Change
	}{
		{
			name:    "insert clause",
			initial: "SELECT * FROM users;",
			change: document.Change{
				Range: &document.Range{
					Start: document.Position{Line: 0, Character: 19},
					End:   document.Position{Line: 0, Character: 19},
				},
				Text: " WHERE id = 1",
			},
		},
		{
			name:    "delete clause",
			initial: "SELECT name FROM users WHERE id = 1;",
			change: document.Change{
				Range: &document.Range{
					Start: document.Position{Line: 0, Character: 22},
					End:   document.Position{Line: 0, Character: 35},
				},
				Text: "",
			},
		},
		{
			name:    "replace across lines",
			initial: "CREATE TABLE users (\n  id int\n);",
			change: document.Change{
				Range: &document.Range{
					Start: document.Position{Line: 1, Character: 2},
					End:   document.Position{Line: 1, Character: 8},
				},
				Text: "name text",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := parser.New()
			defer p.Close()

			buf := document.New(tt.initial)
			prev, err := p.Parse(context.Background(), buf.Bytes())
			if err != nil {
				t.Fatalf("initial parse failed: %v", err)
			}

			edits, err := buf.Apply([]document.Change{tt.change})
			if err != nil {
				t.Fatalf("apply failed: %v", err)
			}

			incremental, err := p.Reparse(context.Background(), prev, edits, buf.Bytes())
			if err != nil {
				t.Fatalf("reparse failed: %v", err)
			}

			fresh := parser.New()
			defer fresh.Close()
			full, err := fresh.Parse(context.Background(), buf.Bytes())
			if err != nil {
				t.Fatalf("full parse failed: %v", err)
			}

			if got, want := incremental.RootNode().String(), full.RootNode().String(); got != want {
				t.Errorf("incremental tree diverged from full parse\nincremental: %s\nfull:        %s", got, want)
			}
		})
	}
}

func TestEmptyThenInsertMatchesFreshOpen(t *testing.T) {
	// Editing [0,0)-[0,0) on an empty document and inserting "CREATE" must
	// yield the same tree as opening a document that already contains it.
	p := parser.New()
	defer p.Close()

	buf := document.New("")
	prev, err := p.Parse(context.Background(), buf.Bytes())
	if err != nil {
		t.Fatalf("empty parse failed: %v", err)
	}

	edits, err := buf.Apply([]document.Change{{
		Range: &document.Range{
			Start: document.Position{Line: 0, Character: 0},
			End:   document.Position{Line: 0, Character: 0},
		},
		Text: "CREATE",
	}})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	incremental, err := p.Reparse(context.Background(), prev, edits, buf.Bytes())
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}

	fresh := parser.New()
	defer fresh.Close()
	full, err := fresh.Parse(context.Background(), []byte("CREATE"))
	if err != nil {
		t.Fatalf("fresh parse failed: %v", err)
	}

	if got, want := incremental.RootNode().String(), full.RootNode().String(); got != want {
		t.Errorf("trees differ\nincremental: %s\nfresh:       %s", got, want)
	}
}

func TestReparseWithoutPreviousTree(t *testing.T) {
	p := parser.New()
	defer p.Close()

	tree, err := p.Reparse(context.Background(), nil, nil, []byte("SELECT 1;"))
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	if tree == nil || tree.RootNode() == nil {
		t.Fatal("expected a tree from the full-parse path")
	}
}
