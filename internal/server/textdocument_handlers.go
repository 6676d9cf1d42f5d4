package server

import (
	"errors"
	"fmt"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/CleverFlare/cql-lsp/internal/document"
	"github.com/CleverFlare/cql-lsp/internal/store"
)

func (s *Server) textDocumentDidOpen(
	context *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	s.log.Debugf("open %s", uri)
	if err := s.store.Open(context.Context, uri, params.TextDocument.Text); err != nil {
		return err
	}
	s.mu.Lock()
	s.versions[uri] = params.TextDocument.Version
	s.mu.Unlock()
	return nil
}

func (s *Server) textDocumentDidChange(
	context *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	declared := params.TextDocument.Version

	s.mu.Lock()
	last, open := s.versions[uri]
	s.mu.Unlock()
	if open && declared <= last {
		return fmt.Errorf("stale didChange for %s: declared version %d, already at %d",
			uri, declared, last)
	}

	changes := make([]document.Change, 0, len(params.ContentChanges))
	for _, raw := range params.ContentChanges {
		switch event := raw.(type) {
		case protocol.TextDocumentContentChangeEvent:
			changes = append(changes, document.Change{
				Range: toDocumentRange(event.Range),
				Text:  event.Text,
			})
		case protocol.TextDocumentContentChangeEventWhole:
			changes = append(changes, document.Change{Text: event.Text})
		default:
			return fmt.Errorf("unexpected change event type %T", raw)
		}
	}

	err := s.store.Change(context.Context, uri, changes)
	if errors.Is(err, store.ErrUnknownDocument) {
		// Changes for documents we never opened are dropped, not fatal.
		s.log.Errorf("change for unopened document %s", uri)
		return nil
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.versions[uri] = declared
	s.mu.Unlock()
	return nil
}

func (s *Server) textDocumentDidClose(
	context *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	s.log.Debugf("close %s", uri)
	s.mu.Lock()
	delete(s.versions, uri)
	s.mu.Unlock()
	if err := s.store.Close(uri); err != nil && !errors.Is(err, store.ErrUnknownDocument) {
		return err
	}
	return nil
}

func toDocumentRange(r *protocol.Range) *document.Range {
	if r == nil {
		return nil
	}
	return &document.Range{
		Start: document.Position{Line: r.Start.Line, Character: r.Start.Character},
		End:   document.Position{Line: r.End.Line, Character: r.End.Character},
	}
}
