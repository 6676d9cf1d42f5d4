package document_test

import (
	"errors"
	"testing"

	"github.com/CleverFlare/cql-lsp/internal/document"
)

func TestApplyInsert(t *testing.T) {
	buf := document.New("")
	if buf.Version() != 0 {
		t.Fatalf("expected version 0, got %d", buf.Version())
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

	if buf.Text() != "CREATE" {
		t.Errorf("expected 'CREATE', got %q", buf.Text())
	}
	if buf.Version() != 1 {
		t.Errorf("expected version 1, got %d", buf.Version())
	}
	if len(edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(edits))
	}

	edit := edits[0]
	if edit.StartByte != 0 || edit.OldEndByte != 0 || edit.NewEndByte != 6 {
		t.Errorf("unexpected edit bytes: %+v", edit)
	}
	if edit.NewEndPoint.Row != 0 || edit.NewEndPoint.Column != 6 {
		t.Errorf("unexpected new end point: %+v", edit.NewEndPoint)
	}
}

func TestApplyOrderedEdits(t *testing.T) {
	// Each edit applies against the buffer state left by its predecessor,
	// not against the original text.
	buf := document.New("abc")

	_, err := buf.Apply([]document.Change{
		{
			Range: &document.Range{
				Start: document.Position{Line: 0, Character: 0},
				End:   document.Position{Line: 0, Character: 1},
			},
			Text: "x",
		},
		{
			Range: &document.Range{
				Start: document.Position{Line: 0, Character: 1},
				End:   document.Position{Line: 0, Character: 2},
			},
			Text: "yy",
		},
	})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if buf.Text() != "xyyc" {
		t.Errorf("expected 'xyyc', got %q", buf.Text())
	}
	if buf.Version() != 1 {
		t.Errorf("one apply call must advance the version once, got %d", buf.Version())
	}
}

func TestApplyInvalidRange(t *testing.T) {
	tests := []struct {
		name   string
		change document.Change
	}{
		{
			name: "line out of bounds",
			change: document.Change{
				Range: &document.Range{
					Start: document.Position{Line: 5, Character: 0},
					End:   document.Position{Line: 5, Character: 0},
				},
			},
		},
		{
			name: "character out of bounds",
			change: document.Change{
				Range: &document.Range{
					Start: document.Position{Line: 0, Character: 99},
					End:   document.Position{Line: 0, Character: 99},
				},
			},
		},
		{
			name: "end before start",
			change: document.Change{
				Range: &document.Range{
					Start: document.Position{Line: 0, Character: 3},
					End:   document.Position{Line: 0, Character: 1},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := document.New("SELECT")
			_, err := buf.Apply([]document.Change{tt.change})
			if !errors.Is(err, document.ErrInvalidRange) {
				t.Fatalf("expected ErrInvalidRange, got %v", err)
			}
			if buf.Text() != "SELECT" {
				t.Errorf("failed apply must not mutate, got %q", buf.Text())
			}
			if buf.Version() != 0 {
				t.Errorf("failed apply must not advance version, got %d", buf.Version())
			}
		})
	}
}

func TestReplaceAll(t *testing.T) {
	buf := document.New("SELECT * FROM users;")

	edits := buf.ReplaceAll("CREATE TABLE users;")
	if buf.Text() != "CREATE TABLE users;" {
		t.Errorf("unexpected text %q", buf.Text())
	}
	if buf.Version() != 1 {
		t.Errorf("expected version 1, got %d", buf.Version())
	}
	if len(edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(edits))
	}
	if edits[0].OldEndByte != 20 || edits[0].NewEndByte != 19 {
		t.Errorf("unexpected edit bytes: %+v", edits[0])
	}
}

func TestByteOffsetUTF16(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pos     document.Position
		want    uint32
		wantErr bool
	}{
		{"ascii", "SELECT", document.Position{Line: 0, Character: 3}, 3, false},
		{"two byte rune", "héllo", document.Position{Line: 0, Character: 2}, 3, false},
		{"after surrogate pair", "a\U0001F600b", document.Position{Line: 0, Character: 3}, 5, false},
		{"inside surrogate pair", "a\U0001F600b", document.Position{Line: 0, Character: 2}, 0, true},
		{"second line", "SELECT *\nFROM t;", document.Position{Line: 1, Character: 4}, 13, false},
		{"line end", "ab\ncd", document.Position{Line: 0, Character: 2}, 2, false},
		{"past line end", "ab\ncd", document.Position{Line: 0, Character: 3}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := document.New(tt.text)
			got, err := buf.ByteOffset(tt.pos)
			if tt.wantErr {
				if !errors.Is(err, document.ErrInvalidRange) {
					t.Fatalf("expected ErrInvalidRange, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected offset %d, got %d", tt.want, got)
			}

			// The standalone translation must agree with the indexed one.
			standalone, err := document.OffsetInText([]byte(tt.text), tt.pos)
			if err != nil {
				t.Fatalf("OffsetInText failed: %v", err)
			}
			if standalone != got {
				t.Errorf("OffsetInText returned %d, buffer returned %d", standalone, got)
			}
		})
	}
}

func TestPositionForRoundTrip(t *testing.T) {
	text := "CREATE TABLE café (\n  id uuid\n);"
	buf := document.New(text)

	positions := []document.Position{
		{Line: 0, Character: 0},
		{Line: 0, Character: 14},
		{Line: 1, Character: 5},
		{Line: 2, Character: 2},
	}
	for _, pos := range positions {
		offset, err := buf.ByteOffset(pos)
		if err != nil {
			t.Fatalf("ByteOffset(%v) failed: %v", pos, err)
		}
		back := buf.PositionFor(offset)
		if back != pos {
			t.Errorf("round trip of %v via offset %d gave %v", pos, offset, back)
		}
	}
}

func TestEditAcrossLines(t *testing.T) {
	buf := document.New("SELECT *\nFROM users\nWHERE id = 1;")

	// Delete from middle of line 0 through middle of line 2.
	edits, err := buf.Apply([]document.Change{{
		Range: &document.Range{
			Start: document.Position{Line: 0, Character: 6},
			End:   document.Position{Line: 2, Character: 5},
		},
		Text: " 1",
	}})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if buf.Text() != "SELECT 1 id = 1;" {
		t.Errorf("unexpected text %q", buf.Text())
	}

	edit := edits[0]
	if edit.StartPoint.Row != 0 || edit.StartPoint.Column != 6 {
		t.Errorf("unexpected start point %+v", edit.StartPoint)
	}
	if edit.OldEndPoint.Row != 2 || edit.OldEndPoint.Column != 5 {
		t.Errorf("unexpected old end point %+v", edit.OldEndPoint)
	}
	if edit.NewEndPoint.Row != 0 || edit.NewEndPoint.Column != 8 {
		t.Errorf("unexpected new end point %+v", edit.NewEndPoint)
	}
}
