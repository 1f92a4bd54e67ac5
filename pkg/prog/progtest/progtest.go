// Package progtest contains utilities for testing subprograms.
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"src.mdkit.dev/pkg/must"
	"src.mdkit.dev/pkg/prog"
)

// Case is a test case for [Test].
type Case struct {
	args      []string
	stdin     string
	stdinFile *os.File
	want      result
}

type result struct {
	exitCode int
	stdout   output
	stderr   output
}

type output struct {
	content  string
	partial  bool
	matchAll bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + o.content
	}
	return o.content
}

// ThatMdkit returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with [Case.ExitsWith] and other methods, these expectations
// are changed.
func ThatMdkit(args ...string) Case {
	return Case{args: append([]string{"mdkit"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to stdin of
// the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// WithStdinFile returns an altered Case that uses the given file as stdin of
// the program, for example a pseudo terminal.
func (c Case) WithStdinFile(f *os.File) Case {
	c.stdinFile = f
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, for example:
//
//	ThatMdkit("-o", "out.html").WithStdin("# x").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exitCode = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program run
// to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program run
// to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// WritesAnyStderr returns an altered Case that accepts any output on stderr.
func (c Case) WritesAnyStderr() Case {
	c.want.stderr = output{matchAll: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			r := run(p, c)
			if r.exitCode != c.want.exitCode {
				t.Errorf("got exit code %v, want %v", r.exitCode, c.want.exitCode)
			}
			if !matchOutput(r.stdout.content, c.want.stdout) {
				t.Errorf("got stdout %q, want %s", r.stdout.content, c.want.stdout)
			}
			if !matchOutput(r.stderr.content, c.want.stderr) {
				t.Errorf("got stderr %q, want %s", r.stderr.content, c.want.stderr)
			}
		})
	}
}

// Run runs a Program with the given arguments. It returns the Program's exit
// code and output to stdout and stderr.
func Run(p prog.Program, args ...string) (exit int, stdout, stderr string) {
	r := run(p, ThatMdkit(args...))
	return r.exitCode, r.stdout.content, r.stderr.content
}

func run(p prog.Program, c Case) result {
	stdin := c.stdinFile
	if stdin == nil {
		r0, w0 := must.OK2(os.Pipe())
		// Write to the pipe concurrently so that a large input doesn't block
		// before the program starts reading.
		go func() {
			w0.WriteString(c.stdin)
			w0.Close()
		}()
		defer r0.Close()
		stdin = r0
	}
	r1, w1 := must.OK2(os.Pipe())
	r2, w2 := must.OK2(os.Pipe())
	// Read stdout and stderr concurrently to avoid the program blocking on a
	// full pipe buffer.
	stdout := readAllAsync(r1)
	stderr := readAllAsync(r2)

	exitCode := prog.Run([3]*os.File{stdin, w1, w2}, c.args, p)
	w1.Close()
	w2.Close()
	return result{exitCode, output{content: <-stdout}, output{content: <-stderr}}
}

func readAllAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		ch <- string(must.OK1(io.ReadAll(r)))
		r.Close()
	}()
	return ch
}

func matchOutput(got string, want output) bool {
	switch {
	case want.matchAll:
		return true
	case want.partial:
		return strings.Contains(got, want.content)
	default:
		return got == want.content
	}
}
