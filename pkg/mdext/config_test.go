package mdext_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.mdkit.dev/pkg/env"
	. "src.mdkit.dev/pkg/mdext"
	"src.mdkit.dev/pkg/must"
	"src.mdkit.dev/pkg/testutil"
)

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(strings.NewReader(testutil.Dedent(`
		extensions: [expand-tabs, heading-id-prefix]
		headingIDPrefix: doc-
		tabWidth: 8
		`)))
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Extensions:      []string{"expand-tabs", "heading-id-prefix"},
		HeadingIDPrefix: "doc-",
		TabWidth:        8,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestReadConfig_Empty(t *testing.T) {
	cfg, err := ReadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(&Config{}, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestReadConfig_Errors(t *testing.T) {
	for _, src := range []string{
		"extension: [expand-tabs]",
		"tabWidth: -1",
		"tabWidth: wide",
		"[not a map]",
	} {
		if _, err := ReadConfig(strings.NewReader(src)); err == nil {
			t.Errorf("ReadConfig(%q) returns no error", src)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	testutil.InTempDir(t)
	must.WriteFile("mdkit.yaml", "extensions: [smart-punctuation]\n")

	cfg, err := LoadConfig("mdkit.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"smart-punctuation"}, cfg.Extensions); diff != "" {
		t.Errorf("extensions (-want +got):\n%s", diff)
	}

	_, err = LoadConfig("missing.yaml")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got error %v, want one wrapping fs.ErrNotExist", err)
	}

	must.WriteFile("bad.yaml", "colour: red\n")
	_, err = LoadConfig("bad.yaml")
	if err == nil || !strings.HasPrefix(err.Error(), "bad.yaml: ") {
		t.Errorf("got error %v, want one starting with the file name", err)
	}
}

func TestNewHost(t *testing.T) {
	h, err := NewHost(&Config{Extensions: []string{"smart-punctuation", "heading-id-prefix"}, HeadingIDPrefix: "x-"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := h.ToHTML("# A... B"), `<h1 id="x-a-b">A… B</h1>`+"\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	h, err = NewHost(nil)
	if err != nil || len(h.Names()) != 0 {
		t.Errorf("NewHost(nil) returns %v, %v; want empty host", h.Names(), err)
	}

	if _, err := NewHost(&Config{Extensions: []string{"nope"}}); err == nil {
		t.Error("NewHost with unknown extension returns no error")
	}
}

func TestResolveConfig(t *testing.T) {
	testutil.InTempDir(t)
	must.WriteFile("flag.yaml", "tabWidth: 2\n")
	must.WriteFile("env.yaml", "tabWidth: 3\n")

	t.Setenv(env.MDKIT_CONFIG, "")
	cfg, err := ResolveConfig("")
	if err != nil || cfg.TabWidth != 0 {
		t.Errorf("with nothing set, got %v, %v", cfg, err)
	}

	t.Setenv(env.MDKIT_CONFIG, "env.yaml")
	cfg, err = ResolveConfig("")
	if err != nil || cfg.TabWidth != 3 {
		t.Errorf("with env var set, got %v, %v", cfg, err)
	}
	cfg, err = ResolveConfig("flag.yaml")
	if err != nil || cfg.TabWidth != 2 {
		t.Errorf("with flag and env var set, got %v, %v", cfg, err)
	}

	t.Setenv(env.MDKIT_CONFIG, "missing.yaml")
	if _, err := ResolveConfig(""); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("with missing file, got error %v", err)
	}
}
