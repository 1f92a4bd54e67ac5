package lsp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	lsp "github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"
	"src.mdkit.dev/pkg/md"
	"src.mdkit.dev/pkg/mdext"
)

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

type server struct {
	host *mdext.Host

	mutex sync.Mutex
	docs  map[lsp.DocumentURI]*document
}

// A parsed open document.
type document struct {
	doc *md.Document
	// Line on which each element of doc.Blocks starts.
	blockLines []int
	// Length of each line in UTF-16 code units.
	lineLens []int
}

// Returns the length of a line, or 0 for a line past the end. Preprocessors
// may change the number of lines, so block lines can go past the end.
func (d *document) lineLen(line int) int {
	if line < len(d.lineLens) {
		return d.lineLens[line]
	}
	return 0
}

func newServer(host *mdext.Host) *server {
	return &server{host: host, docs: make(map[lsp.DocumentURI]*document)}
}

func (s *server) handler() jsonrpc2.Handler {
	return routingHandler(map[string]method{
		"initialize":                  s.initialize,
		"shutdown":                    noop,
		"exit":                        exit,
		"textDocument/didOpen":        s.didOpen,
		"textDocument/didChange":      s.didChange,
		"textDocument/didClose":       s.didClose,
		"textDocument/documentSymbol": s.documentSymbol,
		"textDocument/hover":          s.hover,
		"mdkit/html":                  s.html,
		"mdkit/tree":                  s.tree,

		// Required by the protocol.
		"initialized": noop,
		// Called by clients even when server doesn't advertise support:
		// https://microsoft.github.io/language-server-protocol/specification#workspace_didChangeWatchedFiles
		"workspace/didChangeWatchedFiles": noop,
	})
}

type method func(context.Context, jsonrpc2.JSONRPC2, json.RawMessage) (any, error)

func noop(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return nil, nil
}

func exit(_ context.Context, conn jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return nil, conn.Close()
}

func routingHandler(methods map[string]method) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		fn, ok := methods[req.Method]
		if !ok {
			logger.Printf("unknown method %s", req.Method)
			return nil, errMethodNotFound
		}
		var params json.RawMessage
		if req.Params != nil {
			params = *req.Params
		}
		return fn(ctx, conn, params)
	})
}

// Handler implementations. These are all called synchronously.

func (s *server) initialize(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return &lsp.InitializeResult{
		Capabilities: lsp.ServerCapabilities{
			TextDocumentSync: &lsp.TextDocumentSyncOptionsOrKind{
				Options: &lsp.TextDocumentSyncOptions{
					OpenClose: true,
					Change:    lsp.TDSKFull,
				},
			},
			DocumentSymbolProvider: true,
			HoverProvider:          true,
		},
	}, nil
}

func (s *server) didOpen(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidOpenTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	s.update(params.TextDocument.URI, params.TextDocument.Text)
	return nil, nil
}

func (s *server) didChange(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidChangeTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil || len(params.ContentChanges) == 0 {
		return nil, errInvalidParams
	}
	// ContentChanges includes full text since the server is only advertised to
	// support that; see the initialize method.
	s.update(params.TextDocument.URI, params.ContentChanges[len(params.ContentChanges)-1].Text)
	return nil, nil
}

func (s *server) didClose(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidCloseTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.docs, params.TextDocument.URI)
	return nil, nil
}

func (s *server) update(uri lsp.DocumentURI, text string) {
	doc, blockLines := md.ParseWithLines(s.host.Preprocess(text))
	s.host.Postprocess(doc)
	d := &document{doc, blockLines, lineLens(text)}
	logger.Printf("%s: %d blocks", uri, len(doc.Blocks))

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.docs[uri] = d
}

func (s *server) document(uri lsp.DocumentURI) (*document, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	d, ok := s.docs[uri]
	if !ok {
		return nil, &jsonrpc2.Error{
			Code: jsonrpc2.CodeInvalidParams, Message: "unknown document " + string(uri)}
	}
	return d, nil
}

func (s *server) documentSymbol(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DocumentSymbolParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	d, err := s.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	type entry struct {
		section   *md.Section
		container string
	}
	var entries []entry
	var flatten func(sections []*md.Section, container string)
	flatten = func(sections []*md.Section, container string) {
		for _, sec := range sections {
			entries = append(entries, entry{sec, container})
			flatten(sec.Children, sec.Title)
		}
	}
	flatten(md.Outline(d.doc), "")

	symbols := make([]lsp.SymbolInformation, len(entries))
	for i, e := range entries {
		// A section extends to the next heading of the same or a lower level.
		endLine := len(d.lineLens) - 1
		for _, next := range entries[i+1:] {
			if next.section.Level <= e.section.Level {
				endLine = d.blockLines[next.section.Block] - 1
				break
			}
		}
		symbols[i] = lsp.SymbolInformation{
			Name: e.section.Title,
			Kind: lsp.SKString,
			Location: lsp.Location{
				URI: params.TextDocument.URI,
				Range: lsp.Range{
					Start: lsp.Position{Line: d.blockLines[e.section.Block]},
					End:   lsp.Position{Line: endLine, Character: d.lineLen(endLine)},
				},
			},
			ContainerName: e.container,
		}
	}
	return symbols, nil
}

func (s *server) hover(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.TextDocumentPositionParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	d, err := s.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	line := params.Position.Line
	for i, block := range d.doc.Blocks {
		h, ok := block.(*md.Heading)
		if !ok || d.blockLines[i] != line {
			continue
		}
		return lsp.Hover{
			Contents: []lsp.MarkedString{lsp.RawMarkedString(
				fmt.Sprintf("Heading level %d, anchor `#%s`", h.Level, h.ID))},
			Range: &lsp.Range{
				Start: lsp.Position{Line: line},
				End:   lsp.Position{Line: line, Character: d.lineLen(line)},
			},
		}, nil
	}
	return lsp.Hover{}, nil
}

type documentParams struct {
	TextDocument lsp.TextDocumentIdentifier `json:"textDocument"`
}

func (s *server) html(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params documentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	d, err := s.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	return md.RenderHTML(d.doc.Blocks), nil
}

func (s *server) tree(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params documentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	d, err := s.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	return md.TreeValue(d.doc.Blocks), nil
}

// Returns the length of each line of s in UTF-16 code units, which is how
// LSP positions count characters. Line terminators are not counted.
func lineLens(s string) []int {
	lines := strings.Split(s, "\n")
	lens := make([]int, len(lines))
	for i, line := range lines {
		for _, r := range strings.TrimSuffix(line, "\r") {
			if r <= 0xFFFF {
				// Encoded in UTF-16 with one unit
				lens[i]++
			} else {
				// Encoded in UTF-16 with two units
				lens[i] += 2
			}
		}
	}
	return lens
}
