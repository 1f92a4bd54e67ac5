// Package prog supports building the mdkit command out of subprograms.
//
// Each subprogram registers its flags on a shared [FlagSet], and [Composite]
// runs the subprograms in turn until one of them handles the invocation.
package prog

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"src.mdkit.dev/pkg/logutil"
)

// Program represents a subprogram.
type Program interface {
	// RegisterFlags registers the flags the subprogram understands.
	RegisterFlags(fs *FlagSet)
	// Run runs the subprogram with the non-flag arguments. It may return
	// special errors constructed by [NextProgram], [BadUsage] and [Exit].
	Run(fds [3]*os.File, args []string) error
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: mdkit [flags] [file...]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses command-line flags and runs the program. It returns the exit
// status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	fs := flag.NewFlagSet("mdkit", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	var log string
	var help bool
	fs.StringVar(&log, "log", "", "a file to write debug log to")
	fs.BoolVar(&help, "help", false, "show usage help and quit")

	p.RegisterFlags(&FlagSet{FlagSet: fs})

	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h or -help was
			// requested but *not* defined. mdkit defines -help, but not -h; so
			// this means that -h has been requested. Handle this by printing
			// the same message as an undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if log != "" {
		err = logutil.SetOutputFile(log)
		if err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}

	if help {
		usage(fds[1], fs)
		return 0
	}

	err = p.Run(fds, fs.Args())
	if err == nil {
		return 0
	}
	if errors.Is(err, ErrNoSuitableSubprogram) || isNextProgram(err) {
		fmt.Fprintln(fds[2], ErrNoSuitableSubprogram)
		return 2
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	var (
		badUsage badUsageError
		exit     exitError
	)
	switch {
	case errors.As(err, &badUsage):
		usage(fds[2], fs)
	case errors.As(err, &exit):
		return exit.exit
	}
	return 2
}

// Composite returns a Program made up from subprograms. It runs each of the
// subprograms in turn, until one of them returns an error that isn't created
// by [NextProgram]. The cleanup functions carried by such errors are run in
// reverse order before the composite program returns.
//
// If all subprograms return errors created by [NextProgram], the composite
// program returns [ErrNoSuitableSubprogram].
func Composite(programs ...Program) Program {
	return composite(programs)
}

type composite []Program

func (cp composite) RegisterFlags(fs *FlagSet) {
	for _, p := range cp {
		p.RegisterFlags(fs)
	}
}

func (cp composite) Run(fds [3]*os.File, args []string) error {
	var cleanups []func([3]*os.File)
	defer func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i](fds)
		}
	}()
	for _, p := range cp {
		err := p.Run(fds, args)
		var next *nextProgramError
		if !errors.As(err, &next) {
			return err
		}
		cleanups = append(cleanups, next.cleanups...)
	}
	return ErrNoSuitableSubprogram
}

// ErrNoSuitableSubprogram is returned by a composite program when none of its
// subprograms handles the invocation.
var ErrNoSuitableSubprogram = errors.New("internal error: no suitable subprogram")

// NextProgram returns a special error that may be returned by [Program.Run]
// when the program is part of a [Composite] program, indicating that the next
// program should be tried. The cleanup functions are run after the composite
// program finishes.
func NextProgram(cleanups ...func([3]*os.File)) error {
	return &nextProgramError{cleanups}
}

type nextProgramError struct{ cleanups []func([3]*os.File) }

func (e *nextProgramError) Error() string { return "internal error: next program" }

func isNextProgram(err error) bool {
	var next *nextProgramError
	return errors.As(err, &next)
}

// BadUsage returns a special error that may be returned by [Program.Run]. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by [Program.Run]. It
// causes the main function to exit with the given code without printing any
// error messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }
