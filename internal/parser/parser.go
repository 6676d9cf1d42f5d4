// Package parser adapts tree-sitter's incremental parser to the document
// store: it turns byte-level edit records into tree adjustments so only the
// changed regions of a statement are re-parsed.
package parser

import (
	"context"
	"errors"
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/sql"

	"github.com/CleverFlare/cql-lsp/internal/document"
)

// lang is the grammar shared by every parser instance. The SQL grammar
// covers the CQL statement shapes the context rules inspect.
var lang = sql.GetLanguage()

// ErrParseFailed reports that the parser produced no tree at all. An
// error-tolerant grammar always yields a tree, so this is an internal
// defect, not a user-facing condition.
var ErrParseFailed = errors.New("parser produced no tree")

// Parser wraps a tree-sitter parser instance. One Parser belongs to one
// document; the store serializes calls per document, the mutex only guards
// against misuse.
type Parser struct {
	mu     sync.Mutex
	parser *sitter.Parser
}

// New creates a Parser for the default language.
func New() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(lang)
	return &Parser{parser: p}
}

// Parse performs a full parse of content.
func (p *Parser) Parse(ctx context.Context, content []byte) (*sitter.Tree, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.parse(ctx, content)
}

// Reparse produces the tree for content. With a previous tree it informs
// tree-sitter of the changed byte ranges so unaffected subtrees are reused;
// the result is structurally identical to a full parse of content. A nil
// previous tree, or an incremental failure, falls back to a full parse.
// prev is adjusted in place; a caller sharing prev must pass a copy.
func (p *Parser) Reparse(
	ctx context.Context,
	prev *sitter.Tree,
	edits []document.Edit,
	content []byte,
) (*sitter.Tree, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if prev == nil {
		return p.parse(ctx, content)
	}

	for _, e := range edits {
		prev.Edit(sitter.EditInput{
			StartIndex:  e.StartByte,
			OldEndIndex: e.OldEndByte,
			NewEndIndex: e.NewEndByte,
			StartPoint:  sitter.Point{Row: e.StartPoint.Row, Column: e.StartPoint.Column},
			OldEndPoint: sitter.Point{Row: e.OldEndPoint.Row, Column: e.OldEndPoint.Column},
			NewEndPoint: sitter.Point{Row: e.NewEndPoint.Row, Column: e.NewEndPoint.Column},
		})
	}

	tree, err := p.parser.ParseCtx(ctx, prev, content)
	if err != nil || tree == nil {
		return p.parse(ctx, content)
	}
	return tree, nil
}

func (p *Parser) parse(ctx context.Context, content []byte) (*sitter.Tree, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	if tree == nil {
		return nil, ErrParseFailed
	}
	return tree, nil
}

// Close frees the underlying parser. Trees handed out earlier stay valid;
// the binding reclaims them once their last reference drops.
func (p *Parser) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.parser != nil {
		p.parser.Close()
		p.parser = nil
	}
	return nil
}
