package mdext_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.mdkit.dev/pkg/md"
	. "src.mdkit.dev/pkg/mdext"
	"src.mdkit.dev/pkg/tt"
)

var Args = tt.Args

func TestExpandTabs(t *testing.T) {
	tt.Test(t, tt.Fn("ExpandTabs{}.Preprocess", ExpandTabs{}.Preprocess), tt.Table{
		Args("no tabs").Rets("no tabs", false),
		Args("a\tb").Rets("a   b", true),
		Args("ab\tc").Rets("ab  c", true),
		Args("abcd\te").Rets("abcd    e", true),
		Args("\t- a\n\t\t- b").Rets("    - a\n        - b", true),
		Args("é\tx").Rets("é   x", true),
	})
	tt.Test(t, tt.Fn("ExpandTabs{Width: 2}.Preprocess", ExpandTabs{Width: 2}.Preprocess), tt.Table{
		Args("\tx\n\ty").Rets("  x\n  y", true),
		Args("a\tb").Rets("a b", true),
	})
}

func TestExpandTabs_MakesNestedList(t *testing.T) {
	h := (&Host{}).With(ExpandTabs{})
	doc := h.Parse("- a\n\t- b")
	list := doc.Blocks[0].(*md.List)
	if len(list.Items) != 1 || len(list.Items[0].Children) != 1 {
		t.Errorf("want one item with a nested list, got %s", md.Trace(doc.Blocks))
	}
}

func TestSmartPunctuation(t *testing.T) {
	h := (&Host{}).With(SmartPunctuation{})
	tt.Test(t, tt.Fn("ToHTML", h.ToHTML), tt.Table{
		Args("a -- b --- c...").Rets("<p>a – b — c…</p>\n"),
		Args("**wait...** `x--y` $a--b$").Rets(
			"<p><strong>wait…</strong> <code>x--y</code> <span class='math-inline'>\\( a--b \\)</span></p>\n"),
		Args("```\na -- b\n```").Rets("<pre><code>a -- b</code></pre>\n"),
		Args("----").Rets("<hr />\n"),
	})
}

func TestHeadingIDPrefix(t *testing.T) {
	doc := (&Host{}).With(HeadingIDPrefix{Prefix: "doc-"}).Parse("# A\n> ## B\n:::x\n### C\n:::")
	var ids []string
	md.Walk(doc.Blocks, func(n md.Node) bool {
		if h, ok := n.(*md.Heading); ok {
			ids = append(ids, h.ID)
		}
		return true
	})
	if diff := cmp.Diff([]string{"doc-a", "doc-b", "doc-c"}, ids); diff != "" {
		t.Errorf("IDs (-want +got):\n%s", diff)
	}
}

func TestHeadingIDPrefix_Empty(t *testing.T) {
	h := (&Host{}).With(HeadingIDPrefix{})
	if got, want := h.ToHTML("# A"), md.ToHTML("# A"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNames(t *testing.T) {
	want := []string{"expand-tabs", "heading-id-prefix", "smart-punctuation"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names (-want +got):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	cfg := &Config{HeadingIDPrefix: "p-", TabWidth: 8}
	tt.Test(t, tt.Fn("Lookup", Lookup), tt.Table{
		Args("expand-tabs", cfg).Rets(ExpandTabs{Width: 8}, nil),
		Args("heading-id-prefix", cfg).Rets(HeadingIDPrefix{Prefix: "p-"}, nil),
		Args("smart-punctuation", nil).Rets(SmartPunctuation{}, nil),
		Args("expand-tabs", nil).Rets(ExpandTabs{}, nil),
	})
	_, err := Lookup("emoji", cfg)
	if err == nil {
		t.Fatal("Lookup of unknown extension returns no error")
	}
	want := `unknown extension "emoji"; known extensions are expand-tabs, heading-id-prefix, smart-punctuation`
	if err.Error() != want {
		t.Errorf("got error %q, want %q", err, want)
	}
}
