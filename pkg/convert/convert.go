// Package convert implements the default subprogram of mdkit, which converts
// Markdown files.
package convert

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"src.mdkit.dev/pkg/errutil"
	"src.mdkit.dev/pkg/logutil"
	"src.mdkit.dev/pkg/md"
	"src.mdkit.dev/pkg/mdext"
	"src.mdkit.dev/pkg/prog"
	"src.mdkit.dev/pkg/sys"
)

var logger = logutil.GetLogger("[convert] ")

// Program is the converter subprogram. It handles every invocation, so it
// should be the last subprogram of a composite program.
type Program struct {
	tree      string
	trace     bool
	format    bool
	exts      string
	output    string
	overwrite bool

	json   *bool
	config *string
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.StringVar(&p.tree, "tree", "",
		"write the document tree in the given format (json or yaml) instead of HTML")
	fs.BoolVar(&p.trace, "trace", false,
		"write a debug dump of the document tree instead of HTML")
	fs.BoolVar(&p.format, "fmt", false,
		"write the document back as Markdown in canonical style instead of HTML")
	fs.StringVar(&p.exts, "ext", "",
		"comma-separated list of builtin extensions to enable after those in the config file; known extensions are "+
			strings.Join(mdext.Names(), ", "))
	fs.StringVar(&p.output, "o", "", "write to the given file instead of stdout")
	fs.BoolVar(&p.overwrite, "w", false, "with -fmt, write the result back to the source files")
	p.json = fs.JSON()
	p.config = fs.Config()
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	newEmitter, err := p.emitter()
	if err != nil {
		return prog.BadUsage(err.Error())
	}
	host, err := p.host()
	if err != nil {
		return err
	}
	if len(args) == 0 && sys.IsATTY(fds[0]) {
		return prog.BadUsage("no input files, and stdin is a terminal")
	}
	if p.overwrite {
		switch {
		case !p.format:
			return prog.BadUsage("-w requires -fmt")
		case p.output != "":
			return prog.BadUsage("-w conflicts with -o")
		case len(args) == 0:
			return prog.BadUsage("-w requires files")
		}
		return p.formatInPlace(fds, args, host)
	}

	// With -o, the output is only written after all the inputs have been
	// read, so that the output file may also be an input.
	var buf bytes.Buffer
	out := io.Writer(fds[1])
	if p.output != "" {
		out = &buf
	}

	e := newEmitter(out)
	var readErrs []error
	for _, src := range sources(args) {
		text, err := src.read(fds[0])
		if err != nil {
			logger.Printf("cannot read %s: %v", src.name, err)
			readErrs = append(readErrs, err)
			continue
		}
		logger.Printf("converting %s (%d bytes)", src.name, len(text))
		if err := e.emit(host.Parse(text)); err != nil {
			return err
		}
	}
	if err := e.close(); err != nil {
		return err
	}
	if p.output != "" {
		if err := os.WriteFile(p.output, buf.Bytes(), 0644); err != nil {
			return err
		}
	}
	if err := errutil.Multi(readErrs...); err != nil {
		fmt.Fprintln(fds[2], err)
		return prog.Exit(1)
	}
	return nil
}

func (p *Program) formatInPlace(fds [3]*os.File, files []string, host *mdext.Host) error {
	var errs []error
	for _, name := range files {
		text, err := os.ReadFile(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		formatted := md.Format(host.Parse(string(text)).Blocks)
		if formatted == string(text) {
			continue
		}
		logger.Printf("reformatting %s", name)
		if err := os.WriteFile(name, []byte(formatted), 0644); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errutil.Multi(errs...); err != nil {
		fmt.Fprintln(fds[2], err)
		return prog.Exit(1)
	}
	return nil
}

func (p *Program) emitter() (func(io.Writer) emitter, error) {
	tree := p.tree
	if *p.json {
		if tree != "" && tree != "json" {
			return nil, fmt.Errorf("-json conflicts with -tree %s", tree)
		}
		tree = "json"
	}
	modes := 0
	for _, on := range []bool{tree != "", p.trace, p.format} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return nil, errors.New("at most one of -tree, -trace and -fmt may be given")
	}
	switch {
	case tree == "json":
		return newJSONEmitter, nil
	case tree == "yaml":
		return newYAMLEmitter, nil
	case tree != "":
		return nil, fmt.Errorf("-tree must be json or yaml, got %q", tree)
	case p.trace:
		return textEmitter(func(doc *md.Document) string { return md.Trace(doc.Blocks) + "\n" }), nil
	case p.format:
		return textEmitter(func(doc *md.Document) string { return md.Format(doc.Blocks) }), nil
	default:
		return textEmitter(func(doc *md.Document) string { return md.RenderHTML(doc.Blocks) }), nil
	}
}

func (p *Program) host() (*mdext.Host, error) {
	cfg, err := mdext.ResolveConfig(*p.config)
	if err != nil {
		return nil, err
	}
	if p.exts != "" {
		for _, name := range strings.Split(p.exts, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Extensions = append(cfg.Extensions, name)
			}
		}
	}
	return mdext.NewHost(cfg)
}

type source struct {
	name  string
	stdin bool
}

func sources(args []string) []source {
	if len(args) == 0 {
		return []source{{name: "(stdin)", stdin: true}}
	}
	srcs := make([]source, len(args))
	for i, arg := range args {
		srcs[i] = source{name: arg}
	}
	return srcs
}

func (s source) read(stdin *os.File) (string, error) {
	var data []byte
	var err error
	if s.stdin {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(s.name)
	}
	return string(data), err
}
