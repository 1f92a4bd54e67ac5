package md_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	. "src.mdkit.dev/pkg/md"
)

func TestOutline(t *testing.T) {
	doc := Parse("# A\n## B *b*\n### C\ntext\n## D\n# E\n> # Quoted")
	want := []*Section{
		{Title: "A", ID: "a", Level: 1, Block: 0, Children: []*Section{
			{Title: "B b", ID: "b-b", Level: 2, Block: 1, Children: []*Section{
				{Title: "C", ID: "c", Level: 3, Block: 2},
			}},
			{Title: "D", ID: "d", Level: 2, Block: 4},
		}},
		{Title: "E", ID: "e", Level: 1, Block: 5},
	}
	if diff := cmp.Diff(want, Outline(doc)); diff != "" {
		t.Errorf("Outline (-want +got):\n%s", diff)
	}
}

func TestOutline_SkippedLevels(t *testing.T) {
	doc := Parse("### deep\n# top\n### under top")
	want := []*Section{
		{Title: "deep", ID: "deep", Level: 3, Block: 0},
		{Title: "top", ID: "top", Level: 1, Block: 1, Children: []*Section{
			{Title: "under top", ID: "under-top", Level: 3, Block: 2},
		}},
	}
	if diff := cmp.Diff(want, Outline(doc)); diff != "" {
		t.Errorf("Outline (-want +got):\n%s", diff)
	}
}

func TestOutline_NoHeadings(t *testing.T) {
	if got := Outline(Parse("just text")); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
