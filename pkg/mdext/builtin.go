package mdext

import (
	"fmt"
	"sort"
	"strings"

	"src.mdkit.dev/pkg/md"
)

// DefaultTabWidth is the tab width used by ExpandTabs when none is given.
const DefaultTabWidth = 4

// ExpandTabs replaces tabs with spaces up to the next tab stop. Tab stops are
// every Width columns, or every DefaultTabWidth columns if Width is not
// positive. Columns count runes.
type ExpandTabs struct {
	Width int
}

func (ExpandTabs) Name() string { return "expand-tabs" }

func (e ExpandTabs) Preprocess(text string) (string, bool) {
	if !strings.ContainsRune(text, '\t') {
		return text, false
	}
	width := e.Width
	if width <= 0 {
		width = DefaultTabWidth
	}
	var sb strings.Builder
	col := 0
	for _, r := range text {
		switch r {
		case '\n':
			sb.WriteByte('\n')
			col = 0
		case '\t':
			sb.WriteByte(' ')
			col++
			for col%width != 0 {
				sb.WriteByte(' ')
				col++
			}
		default:
			sb.WriteRune(r)
			col++
		}
	}
	return sb.String(), true
}

// SmartPunctuation replaces "---" with an em dash, "--" with an en dash and
// "..." with an ellipsis in text. Code and math are not changed.
type SmartPunctuation struct{}

var smartPunctuationReplacer = strings.NewReplacer(
	"---", "—",
	"--", "–",
	"...", "…",
)

func (SmartPunctuation) Name() string { return "smart-punctuation" }

func (SmartPunctuation) Postprocess(doc *md.Document) {
	md.Walk(doc.Blocks, func(n md.Node) bool {
		if t, ok := n.(*md.Text); ok {
			t.Content = smartPunctuationReplacer.Replace(t.Content)
		}
		return true
	})
}

// HeadingIDPrefix adds Prefix to the ID of every heading, including headings
// nested in blockquotes and custom blocks.
type HeadingIDPrefix struct {
	Prefix string
}

func (HeadingIDPrefix) Name() string { return "heading-id-prefix" }

func (e HeadingIDPrefix) Postprocess(doc *md.Document) {
	if e.Prefix == "" {
		return
	}
	md.Walk(doc.Blocks, func(n md.Node) bool {
		if h, ok := n.(*md.Heading); ok {
			h.ID = e.Prefix + h.ID
			// Headings don't contain other headings.
			return false
		}
		return true
	})
}

var builtins = map[string]func(cfg *Config) Extension{
	"expand-tabs":       func(cfg *Config) Extension { return ExpandTabs{Width: cfg.TabWidth} },
	"smart-punctuation": func(*Config) Extension { return SmartPunctuation{} },
	"heading-id-prefix": func(cfg *Config) Extension { return HeadingIDPrefix{Prefix: cfg.HeadingIDPrefix} },
}

// Names returns the names of the builtin extensions, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the builtin extension with the given name, configured from
// cfg. A nil cfg is treated like an empty one.
func Lookup(name string, cfg *Config) (Extension, error) {
	f, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown extension %q; known extensions are %s",
			name, strings.Join(Names(), ", "))
	}
	if cfg == nil {
		cfg = &Config{}
	}
	return f(cfg), nil
}
