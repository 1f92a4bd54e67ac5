// Package mdext runs extensions around the Markdown parser.
//
// An extension can rewrite the source text before parsing, rewrite the
// document after parsing, or both. A Host applies its extensions in the order
// they were added.
package mdext

import (
	"src.mdkit.dev/pkg/logutil"
	"src.mdkit.dev/pkg/md"
)

var logger = logutil.GetLogger("[mdext] ")

// Extension is the interface implemented by all extensions. An extension
// should also implement at least one of Preprocessor and Postprocessor.
type Extension interface {
	Name() string
}

// Preprocessor is implemented by extensions that rewrite the source text. If
// the second return value is false, the text is left unchanged.
type Preprocessor interface {
	Extension
	Preprocess(text string) (string, bool)
}

// Postprocessor is implemented by extensions that modify the parsed document
// in place.
type Postprocessor interface {
	Extension
	Postprocess(doc *md.Document)
}

// Host holds a list of extensions. The zero value is a Host with no
// extensions, and is ready to use. A nil *Host also runs no extensions, but
// With must not be called on it. Extensions must be safe to call from
// multiple goroutines if the Host is used that way.
type Host struct {
	exts []Extension
}

// With appends an extension and returns the receiver, so that calls can be
// chained.
func (h *Host) With(ext Extension) *Host {
	h.exts = append(h.exts, ext)
	return h
}

// Names returns the names of the extensions, in order.
func (h *Host) Names() []string {
	if h == nil {
		return nil
	}
	names := make([]string, len(h.exts))
	for i, ext := range h.exts {
		names[i] = ext.Name()
	}
	return names
}

// Preprocess runs the Preprocess method of each extension that has one, each
// one seeing the output of the previous one.
func (h *Host) Preprocess(text string) string {
	if h == nil {
		return text
	}
	for _, ext := range h.exts {
		if p, ok := ext.(Preprocessor); ok {
			if out, changed := p.Preprocess(text); changed {
				logger.Printf("%s rewrote %d bytes to %d bytes", ext.Name(), len(text), len(out))
				text = out
			}
		}
	}
	return text
}

// Postprocess runs the Postprocess method of each extension that has one.
func (h *Host) Postprocess(doc *md.Document) {
	if h == nil {
		return
	}
	for _, ext := range h.exts {
		if p, ok := ext.(Postprocessor); ok {
			p.Postprocess(doc)
		}
	}
}

// Parse preprocesses text, parses it and postprocesses the result.
func (h *Host) Parse(text string) *md.Document {
	doc := md.Parse(h.Preprocess(text))
	h.Postprocess(doc)
	return doc
}

// ToHTML is like Parse, but renders the document as HTML.
func (h *Host) ToHTML(text string) string {
	return md.RenderHTML(h.Parse(text).Blocks)
}
