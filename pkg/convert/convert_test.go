package convert_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
	. "src.mdkit.dev/pkg/convert"
	"src.mdkit.dev/pkg/env"
	"src.mdkit.dev/pkg/must"
	"src.mdkit.dev/pkg/prog/progtest"
	"src.mdkit.dev/pkg/testutil"
)

var (
	Test      = progtest.Test
	ThatMdkit = progtest.ThatMdkit
)

func TestProgram_Stdin(t *testing.T) {
	Test(t, &Program{},
		ThatMdkit().WithStdin("# Hi").WritesStdout(`<h1 id="hi">Hi</h1>`+"\n"),
		ThatMdkit().WithStdin("").WritesStdout(""),
		ThatMdkit().WithStdin("a\n\n---\n").WritesStdout("<p>a</p>\n<hr />\n"),
	)
}

func TestProgram_Files(t *testing.T) {
	testutil.InTempDir(t)
	must.WriteFile("a.md", "# A")
	must.WriteFile("b.md", "*b*")

	Test(t, &Program{},
		ThatMdkit("a.md", "b.md").
			WritesStdout(`<h1 id="a">A</h1>`+"\n<p><em>b</em></p>\n"),
		// Other files are still converted.
		ThatMdkit("a.md", "missing.md", "b.md").
			ExitsWith(1).
			WritesStdout(`<h1 id="a">A</h1>`+"\n<p><em>b</em></p>\n").
			WritesStderrContaining("missing.md"),
		ThatMdkit("missing1.md", "missing2.md").
			ExitsWith(1).
			WritesStderrContaining("multiple errors:\n  open missing1.md"),
	)
}

func TestProgram_Output(t *testing.T) {
	testutil.InTempDir(t)

	Test(t, &Program{},
		ThatMdkit("-o", "out.html").WithStdin("x").DoesNothing(),
		ThatMdkit("-o", "no/such/dir/out.html").WithStdin("x").
			ExitsWith(2).WritesStderrContaining("out.html"),
	)

	if got := must.ReadFileString("out.html"); got != "<p>x</p>\n" {
		t.Errorf("out.html has %q", got)
	}
}

func TestProgram_OutputIsAlsoInput(t *testing.T) {
	testutil.InTempDir(t)
	must.WriteFile("a.md", "# A")

	Test(t, &Program{},
		ThatMdkit("-o", "a.md", "a.md").DoesNothing(),
	)

	if got := must.ReadFileString("a.md"); got != `<h1 id="a">A</h1>`+"\n" {
		t.Errorf("a.md has %q", got)
	}
}

func TestProgram_OutputModes(t *testing.T) {
	Test(t, &Program{},
		ThatMdkit("-trace").WithStdin("# Hi").
			WritesStdout("Heading Level=1 ID=\"hi\"\n  Text \"Hi\"\n"),
		ThatMdkit("-fmt").WithStdin("3. a\n4. b\n* c").
			WritesStdout("1. a\n2. b\n\n- c\n"),
		ThatMdkit("-tree", "json").WithStdin("# Hi").WritesStdout(headingJSON),
		ThatMdkit("-json").WithStdin("# Hi").WritesStdout(headingJSON),
		ThatMdkit("-json", "-tree", "json").WithStdin("# Hi").WritesStdout(headingJSON),
		// HTML characters are not escaped.
		ThatMdkit("-json").WithStdin("`<a>`").
			WritesStdoutContaining(`"content": "<a>"`),

		ThatMdkit("-tree", "xml").
			ExitsWith(2).WritesStderrContaining("-tree must be json or yaml, got \"xml\"\nUsage:"),
		ThatMdkit("-trace", "-fmt").
			ExitsWith(2).WritesStderrContaining("at most one of -tree, -trace and -fmt may be given"),
		ThatMdkit("-json", "-tree", "yaml").
			ExitsWith(2).WritesStderrContaining("-json conflicts with -tree yaml"),
	)
}

var headingJSON = testutil.Dedent(`
	[
	  {
	    "children": [
	      {
	        "content": "Hi",
	        "type": "text"
	      }
	    ],
	    "id": "hi",
	    "level": 1,
	    "type": "heading"
	  }
	]
	`)

func TestProgram_YAML(t *testing.T) {
	testutil.InTempDir(t)
	must.WriteFile("a.md", "- [ ] a")
	must.WriteFile("b.md", "```go\nx\n```")

	exit, stdout, stderr := progtest.Run(&Program{}, "-tree", "yaml", "a.md", "b.md")
	if exit != 0 || stderr != "" {
		t.Fatalf("got exit %v, stderr %q", exit, stderr)
	}
	var docs []any
	dec := yaml.NewDecoder(strings.NewReader(stdout))
	for {
		var doc any
		if err := dec.Decode(&doc); err != nil {
			break
		}
		docs = append(docs, doc)
	}
	want := []any{
		[]any{map[string]any{
			"type": "list", "kind": "unordered",
			"items": []any{map[string]any{
				"checked":  false,
				"children": []any{},
				"content":  []any{map[string]any{"type": "text", "content": "a"}},
			}},
		}},
		[]any{map[string]any{
			"type": "codeBlock", "lang": "go", "filename": nil, "code": "x",
		}},
	}
	if diff := cmp.Diff(want, docs); diff != "" {
		t.Errorf("YAML documents (-want +got):\n%s\noutput:\n%s", diff, stdout)
	}
}

func TestProgram_Extensions(t *testing.T) {
	testutil.InTempDir(t)
	must.WriteFile("mdkit.yaml", "extensions: [heading-id-prefix]\nheadingIDPrefix: doc-\n")
	must.WriteFile("bad.yaml", "extensions: [nope]\n")

	t.Setenv(env.MDKIT_CONFIG, "")

	Test(t, &Program{},
		ThatMdkit("-ext", "smart-punctuation").WithStdin("a -- b").
			WritesStdout("<p>a – b</p>\n"),
		ThatMdkit("-ext", " expand-tabs , smart-punctuation ").WithStdin("- a...\n\t- b").
			WritesStdout("<ul>\n  <li>a…\n    <ul>\n      <li>b</li>\n    </ul>\n</li>\n</ul>\n"),
		ThatMdkit("-config", "mdkit.yaml").WithStdin("# A").
			WritesStdout(`<h1 id="doc-a">A</h1>`+"\n"),
		ThatMdkit("-config", "mdkit.yaml", "-ext", "smart-punctuation").WithStdin("# A...").
			WritesStdout(`<h1 id="doc-a">A…</h1>`+"\n"),

		ThatMdkit("-ext", "nope").
			ExitsWith(2).WritesStderrContaining(`unknown extension "nope"`),
		ThatMdkit("-config", "bad.yaml").
			ExitsWith(2).WritesStderrContaining(`unknown extension "nope"`),
		ThatMdkit("-config", "missing.yaml").
			ExitsWith(2).WritesStderrContaining("missing.yaml"),
	)
}

func TestProgram_FormatInPlace(t *testing.T) {
	testutil.InTempDir(t)
	must.WriteFile("a.md", "* x\n* y")
	must.WriteFile("b.md", "# Done\n")

	Test(t, &Program{},
		ThatMdkit("-fmt", "-w", "a.md", "b.md").DoesNothing(),
		ThatMdkit("-fmt", "-w", "missing.md").
			ExitsWith(1).WritesStderrContaining("missing.md"),

		ThatMdkit("-w", "a.md").ExitsWith(2).WritesStderrContaining("-w requires -fmt"),
		ThatMdkit("-fmt", "-w", "-o", "x", "a.md").ExitsWith(2).WritesStderrContaining("-w conflicts with -o"),
		ThatMdkit("-fmt", "-w").ExitsWith(2).WritesStderrContaining("-w requires files"),
	)

	if got := must.ReadFileString("a.md"); got != "- x\n- y\n" {
		t.Errorf("a.md has %q", got)
	}
	if got := must.ReadFileString("b.md"); got != "# Done\n" {
		t.Errorf("b.md has %q", got)
	}
}

func TestProgram_ConfigFromEnv(t *testing.T) {
	testutil.InTempDir(t)
	must.WriteFile("mdkit.yaml", "extensions: [smart-punctuation]\n")
	t.Setenv(env.MDKIT_CONFIG, "mdkit.yaml")

	Test(t, &Program{},
		ThatMdkit().WithStdin("a...").WritesStdout("<p>a…</p>\n"),
	)
}
