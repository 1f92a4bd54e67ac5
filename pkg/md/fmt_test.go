package md_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	. "src.mdkit.dev/pkg/md"
)

var formatRoundTripTests = []string{
	"# Hello *world*\nSome **bold** text.",
	"- [x] done\n  - [ ] sub\n- plain",
	"3. c\n4. d\n* e",
	"| a | b |\n|:-:|--:|\n| 1 | 2 |\n| 3 |",
	"> # T\n>\n> body",
	":::tabs\n:::tab title=\"Rust\"\nCode\n:::\n:::",
	"```go main.go\nx := 1\n```",
	"$$\nE = mc^2\n$$",
	"[a *b*](u) ![alt](i.png) `c` $m$",
	"__u__ ~~s~~ ***bi***",
	"a\n\n---\n\nb",
	`a\b`,
}

func TestFormat_RoundTrip(t *testing.T) {
	for _, src := range formatRoundTripTests {
		want := Parse(src)
		formatted := Format(want.Blocks)
		if diff := cmp.Diff(want, Parse(formatted)); diff != "" {
			t.Errorf("input:\n%s\nformatted:\n%s\ndiff (-want +got):\n%s", src, formatted, diff)
		}
	}
}

func TestFormat_IsIdempotent(t *testing.T) {
	for _, src := range formatRoundTripTests {
		once := Format(Parse(src).Blocks)
		if twice := Format(Parse(once).Blocks); twice != once {
			t.Errorf("formatting again changes\n%s\nto\n%s", once, twice)
		}
	}
}

func TestFormat(t *testing.T) {
	src := dedent(`
		3. c
		4. d
		* e
		| a | b |
		|:-|-|
		| 1 |
		:::note  kind=warning   a=b
		> quote
		:::
		`)
	want := dedent(`
		1. c
		2. d

		- e

		| a | b |
		| :--- | --- |
		| 1 |

		:::note a="b" kind="warning"
		> quote
		:::
		`)
	if diff := cmp.Diff(want, Format(Parse(src).Blocks)); diff != "" {
		t.Errorf("Format (-want +got):\n%s", diff)
	}
}
