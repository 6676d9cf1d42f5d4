package server

import (
	"errors"
	"fmt"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/CleverFlare/cql-lsp/internal/completion"
	"github.com/CleverFlare/cql-lsp/internal/document"
	"github.com/CleverFlare/cql-lsp/internal/resolver"
	"github.com/CleverFlare/cql-lsp/internal/store"
)

func (s *Server) textDocumentCompletion(
	context *glsp.Context,
	params *protocol.CompletionParams,
) (any, error) {
	uri := params.TextDocument.URI
	pos := document.Position{Line: params.Position.Line, Character: params.Position.Character}

	var ctx resolver.Context
	err := s.store.Read(uri, func(snap store.Snapshot) {
		ctx = resolver.Resolve(snap.Tree, []byte(snap.Text), pos)
	})
	if errors.Is(err, store.ErrUnknownDocument) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items := completion.Complete(ctx)
	if max := s.config.MaxCompletionItems; max > 0 && len(items) > max {
		items = items[:max]
	}
	s.log.Debugf("completion at %s %d:%d: %s, %d items",
		uri, pos.Line, pos.Character, ctx.Kind, len(items))
	if len(items) == 0 {
		return nil, nil
	}

	out := make([]protocol.CompletionItem, len(items))
	for i, item := range items {
		out[i] = toProtocolItem(item, i)
	}
	return out, nil
}

func toProtocolItem(item completion.Item, rank int) protocol.CompletionItem {
	kind := protocolItemKind(item.Kind)
	insert := item.Insert()
	format := protocol.InsertTextFormatPlainText
	if item.IsSnippet {
		format = protocol.InsertTextFormatSnippet
	}
	// Client-side sorting is lexicographic, so the rank is zero-padded.
	sortText := fmt.Sprintf("%03d", rank)

	out := protocol.CompletionItem{
		Label:            item.Label,
		Kind:             &kind,
		InsertText:       &insert,
		InsertTextFormat: &format,
		SortText:         &sortText,
		Documentation: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: item.Documentation(),
		},
	}
	if item.Deprecated {
		out.Deprecated = &protocol.True
		out.Tags = []protocol.CompletionItemTag{protocol.CompletionItemTagDeprecated}
	}
	return out
}

func protocolItemKind(kind completion.ItemKind) protocol.CompletionItemKind {
	switch kind {
	case completion.Snippet:
		return protocol.CompletionItemKindSnippet
	case completion.TypeName:
		return protocol.CompletionItemKindClass
	case completion.Function:
		return protocol.CompletionItemKindFunction
	default:
		return protocol.CompletionItemKindKeyword
	}
}
