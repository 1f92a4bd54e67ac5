package testutil

import "testing"

var dedentTests = []struct {
	name string
	in   string
	out  string
}{
	{
		name: "no leading newline, no trailing newline",
		in:   " \n  foo\n bar",
		out:  "\n foo\nbar",
	},
	{
		name: "leading newline, no trailing newline",
		in: `
			a
			 b
			c`,
		out: "a\n b\nc",
	},
	{
		name: "leading newline and trailing newline",
		in: `
			a
			 b
			c
			`,
		out: "a\n b\nc\n",
	},
	{
		name: "mixed indentation keeps the common part",
		in: `
				a
			b`,
		out: "\ta\nb",
	},
	{
		name: "blank lines do not limit the margin",
		in:   "\n\t\tx\n\n\t\ty\n",
		out:  "x\n\ny\n",
	},
}

func TestDedent(t *testing.T) {
	for _, test := range dedentTests {
		t.Run(test.name, func(t *testing.T) {
			got := Dedent(test.in)
			if got != test.out {
				t.Errorf("Dedent(%q) -> %q, want %q", test.in, got, test.out)
			}
		})
	}
}
