// Package tt supports table-driven tests with little boilerplate.
//
// A test table is a [Table] of cases built with [Args] and [Case.Rets]. [Test]
// calls the function under test with the arguments of each case and compares
// the return values with [cmp.Diff].
package tt

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Table represents a test table.
type Table []*Case

// Case represents a test case. It is created by [Args], and [Case.Rets] sets
// the expected return values.
type Case struct {
	args []any
	rets []any
}

// Args returns a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Rets sets the expected return values and returns the receiver. A value may be
// [Any], which matches anything.
func (c *Case) Rets(rets ...any) *Case {
	c.rets = rets
	return c
}

// FnToTest describes a function to test.
type FnToTest struct {
	name    string
	body    any
	argsFmt string
}

// Fn makes a new FnToTest with the given function name and body.
func Fn(name string, body any) *FnToTest {
	return &FnToTest{name: name, body: body}
}

// ArgsFmt sets the string for formatting arguments in error messages, and
// returns fn itself.
func (fn *FnToTest) ArgsFmt(s string) *FnToTest {
	fn.argsFmt = s
	return fn
}

// T is the subset of [testing.TB] used by Test.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Any matches any return value.
var Any any = anyMatcher{}

type anyMatcher struct{}

// Test calls fn with the arguments of each case, and reports an error for each
// case whose return values differ from the expected ones.
func Test(t T, fn *FnToTest, tests Table) {
	t.Helper()
	for _, test := range tests {
		rets := call(fn.body, test.args)
		want := make([]any, len(test.rets))
		copy(want, test.rets)
		for i := range want {
			if want[i] == Any && i < len(rets) {
				want[i] = rets[i]
			}
		}
		if diff := cmp.Diff(want, rets); diff != "" {
			var args string
			if fn.argsFmt == "" {
				args = sprintCommaDelimited(test.args)
			} else {
				args = fmt.Sprintf(fn.argsFmt, test.args...)
			}
			t.Errorf("%s(%s) returns (-want +got):\n%s", fn.name, args, diff)
		}
	}
}

func sprintCommaDelimited(args []any) string {
	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%#v", arg)
	}
	return sb.String()
}

func call(fn any, args []any) []any {
	fnValue := reflect.ValueOf(fn)
	argValues := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			// Use a zero value of the parameter type instead of an invalid
			// reflect.Value.
			argValues[i] = reflect.Zero(fnValue.Type().In(i))
		} else {
			argValues[i] = reflect.ValueOf(arg)
		}
	}
	retValues := fnValue.Call(argValues)
	rets := make([]any, len(retValues))
	for i, v := range retValues {
		rets[i] = v.Interface()
	}
	return rets
}
