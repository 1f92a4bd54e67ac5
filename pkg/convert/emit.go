package convert

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
	"src.mdkit.dev/pkg/md"
)

// Writes converted documents. Documents are written in order; close is called
// once after the last one.
type emitter interface {
	emit(doc *md.Document) error
	close() error
}

// Returns a constructor of an emitter that writes the string f returns for
// each document.
func textEmitter(f func(*md.Document) string) func(io.Writer) emitter {
	return func(w io.Writer) emitter { return &funcEmitter{w, f} }
}

type funcEmitter struct {
	w io.Writer
	f func(*md.Document) string
}

func (e *funcEmitter) emit(doc *md.Document) error {
	_, err := io.WriteString(e.w, e.f(doc))
	return err
}

func (e *funcEmitter) close() error { return nil }

// Writes the tree of each document as one indented JSON value.
type jsonEmitter struct{ enc *json.Encoder }

func newJSONEmitter(w io.Writer) emitter {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	// Code and URLs routinely contain <, > and &.
	enc.SetEscapeHTML(false)
	return jsonEmitter{enc}
}

func (e jsonEmitter) emit(doc *md.Document) error { return e.enc.Encode(md.TreeValue(doc.Blocks)) }

func (e jsonEmitter) close() error { return nil }

// Writes the tree of each document as a YAML document; documents after the
// first are preceded by "---".
type yamlEmitter struct{ enc *yaml.Encoder }

func newYAMLEmitter(w io.Writer) emitter {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return yamlEmitter{enc}
}

func (e yamlEmitter) emit(doc *md.Document) error { return e.enc.Encode(md.TreeValue(doc.Blocks)) }

func (e yamlEmitter) close() error { return e.enc.Close() }
