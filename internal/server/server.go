// Package server wires the protocol surface: it translates LSP requests
// into store, resolver and completion calls and translates the results
// back. No language logic lives here.
package server

import (
	"sync"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"

	"github.com/CleverFlare/cql-lsp/internal/config"
	"github.com/CleverFlare/cql-lsp/internal/store"
)

const lsName = "cql-lsp"

type Server struct {
	handler *protocol.Handler
	store   *store.Store
	config  config.Config
	version string
	log     commonlog.Logger

	// versions tracks the last client-declared version per open document,
	// so out-of-order didChange notifications are rejected instead of
	// corrupting the buffer.
	mu       sync.Mutex
	versions map[string]int32
}

// New builds a server around cfg. cfg may still change during initialize
// when the client sends initializationOptions.
func New(cfg config.Config, version string) *Server {
	s := &Server{
		store:    store.New(),
		config:   cfg,
		version:  version,
		log:      commonlog.GetLogger(lsName + ".server"),
		versions: make(map[string]int32),
	}
	s.handler = &protocol.Handler{
		Initialize:             s.initialize,
		Initialized:            s.initialized,
		Shutdown:               s.shutdown,
		SetTrace:               s.setTrace,
		TextDocumentDidOpen:    s.textDocumentDidOpen,
		TextDocumentDidChange:  s.textDocumentDidChange,
		TextDocumentDidClose:   s.textDocumentDidClose,
		TextDocumentCompletion: s.textDocumentCompletion,
	}
	return s
}

// Config returns the effective configuration, including anything merged in
// during initialize.
func (s *Server) Config() config.Config {
	return s.config
}

// RunStdio serves the protocol over stdin/stdout until the stream closes.
func (s *Server) RunStdio() error {
	return glspserver.NewServer(s.handler, lsName, false).RunStdio()
}
