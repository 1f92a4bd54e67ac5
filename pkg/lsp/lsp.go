// Package lsp implements a language server for Markdown documents.
package lsp

import (
	"context"
	"os"

	"github.com/sourcegraph/jsonrpc2"
	"src.mdkit.dev/pkg/logutil"
	"src.mdkit.dev/pkg/mdext"
	"src.mdkit.dev/pkg/prog"
)

var logger = logutil.GetLogger("[lsp] ")

// Program is the LSP subprogram.
type Program struct {
	run    bool
	config *string
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.run, "lsp", false, "run language server on stdin and stdout instead of converting files")
	p.config = fs.Config()
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	if !p.run {
		return prog.NextProgram()
	}
	cfg, err := mdext.ResolveConfig(*p.config)
	if err != nil {
		return err
	}
	host, err := mdext.NewHost(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := newServer(host)
	conn := jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(transport{fds[0], fds[1]}, jsonrpc2.VSCodeObjectCodec{}),
		s.handler())
	logger.Println("started")
	<-conn.DisconnectNotify()
	logger.Println("disconnected")
	return nil
}

type transport struct{ in, out *os.File }

func (c transport) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c transport) Write(p []byte) (int, error) { return c.out.Write(p) }

func (c transport) Close() error {
	if err := c.in.Close(); err != nil {
		c.out.Close()
		return err
	}
	return c.out.Close()
}
