// Package store is the registry of open documents. It owns the only
// long-lived handles to text buffers and parse trees and guarantees that a
// reader never observes a tree that was not produced from the text it is
// paired with.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/tliron/commonlog"

	"github.com/CleverFlare/cql-lsp/internal/document"
	"github.com/CleverFlare/cql-lsp/internal/parser"
)

// ErrUnknownDocument reports an operation referencing a URI that is not
// currently open. Callers treat it as a no-op or empty result.
var ErrUnknownDocument = errors.New("unknown document")

// Snapshot is one internally-consistent view of a document: the tree, when
// present, was produced from exactly this text. Published trees are never
// edited afterwards, so a holder may keep a Snapshot across later changes;
// the binding reclaims the tree once the last reference drops.
type Snapshot struct {
	Text    string
	Tree    *sitter.Tree
	Version int32
}

// entry bundles the per-document state. Its lock serializes writers and
// makes the (text, tree, version) swap atomic for readers.
type entry struct {
	mu     sync.RWMutex
	buf    *document.Buffer
	parser *parser.Parser
	tree   *sitter.Tree
}

func (e *entry) snapshot() Snapshot {
	return Snapshot{
		Text:    e.buf.Text(),
		Tree:    e.tree,
		Version: e.buf.Version(),
	}
}

// Store maps document URIs to their buffer, parser and current tree. It is
// an injectable value, not a process-wide singleton, so tests can run
// independent instances in parallel.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*entry
	log  commonlog.Logger
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		docs: make(map[string]*entry),
		log:  commonlog.GetLogger("cql-lsp.store"),
	}
}

// Open registers a document and parses its initial text. Re-opening an
// already-open URI replaces it.
func (s *Store) Open(ctx context.Context, uri string, text string) error {
	e := &entry{
		buf:    document.New(text),
		parser: parser.New(),
	}

	tree, err := e.parser.Parse(ctx, e.buf.Bytes())
	if err != nil {
		return fmt.Errorf("open %s: %w", uri, err)
	}
	e.tree = tree

	s.mu.Lock()
	s.docs[uri] = e
	s.mu.Unlock()

	s.log.Debugf("opened %s (%d bytes)", uri, len(text))
	return nil
}

// Change applies ordered edits to a document's text, reparses incrementally,
// and swaps in the new (text, tree, version) tuple. Readers running
// concurrently observe either the whole old tuple or the whole new one.
func (s *Store) Change(ctx context.Context, uri string, changes []document.Change) error {
	e, err := s.get(uri)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	edits, err := e.buf.Apply(changes)
	if err != nil {
		return fmt.Errorf("change %s: %w", uri, err)
	}

	// Reparse adjusts the previous tree in place, and snapshot holders may
	// still be walking the published one, so it gets a private copy.
	prev := e.tree
	if prev != nil {
		prev = prev.Copy()
	}

	tree, err := e.parser.Reparse(ctx, prev, edits, e.buf.Bytes())
	if err != nil {
		// Text and version are already committed; the document is marked
		// unparsed until a later change succeeds.
		e.tree = nil
		return fmt.Errorf("change %s: %w", uri, err)
	}
	e.tree = tree
	return nil
}

// Replace substitutes a document's entire text, for clients using
// full-document synchronization. Versioning matches Change.
func (s *Store) Replace(ctx context.Context, uri string, text string) error {
	return s.Change(ctx, uri, []document.Change{{Text: text}})
}

// Close discards a document. Its tree is reclaimed once the last snapshot
// reference drops.
func (s *Store) Close(uri string) error {
	s.mu.Lock()
	e, ok := s.docs[uri]
	delete(s.docs, uri)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("close %s: %w", uri, ErrUnknownDocument)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.parser.Close()
	s.log.Debugf("closed %s", uri)
	return nil
}

// Snapshot returns the document's current (text, tree, version) tuple.
func (s *Store) Snapshot(uri string) (Snapshot, error) {
	e, err := s.get(uri)
	if err != nil {
		return Snapshot{}, err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshot(), nil
}

// Read runs fn against a consistent snapshot without the copy a retained
// Snapshot would cost callers that only need a short walk.
func (s *Store) Read(uri string, fn func(Snapshot)) error {
	e, err := s.get(uri)
	if err != nil {
		return err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	fn(e.snapshot())
	return nil
}

// CloseAll discards every open document, for server shutdown.
func (s *Store) CloseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for uri, e := range s.docs {
		e.mu.Lock()
		e.parser.Close()
		e.mu.Unlock()
		delete(s.docs, uri)
	}
}

func (s *Store) get(uri string) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.docs[uri]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDocument, uri)
	}
	return e, nil
}
