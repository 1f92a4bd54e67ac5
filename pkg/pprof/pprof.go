// Package pprof adds profiling flags to mdkit.
package pprof

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"src.mdkit.dev/pkg/prog"
)

// Program handles the -cpuprofile and -memprofile flags. It never handles an
// invocation itself; the profiles are finished after the program that does
// has returned.
type Program struct {
	cpuProfile string
	memProfile string
}

func (p *Program) RegisterFlags(f *prog.FlagSet) {
	f.StringVar(&p.cpuProfile, "cpuprofile", "", "write CPU profile to file")
	f.StringVar(&p.memProfile, "memprofile", "", "write heap profile to file on exit")
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	var cleanups []func([3]*os.File)
	if p.cpuProfile != "" {
		f, err := os.Create(p.cpuProfile)
		if err != nil {
			warn(fds[2], "CPU", err)
		} else if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			warn(fds[2], "CPU", err)
		} else {
			cleanups = append(cleanups, func([3]*os.File) {
				pprof.StopCPUProfile()
				f.Close()
			})
		}
	}
	if p.memProfile != "" {
		f, err := os.Create(p.memProfile)
		if err != nil {
			warn(fds[2], "heap", err)
		} else {
			cleanups = append(cleanups, func(fds [3]*os.File) {
				runtime.GC()
				if err := pprof.WriteHeapProfile(f); err != nil {
					fmt.Fprintln(fds[2], "Warning: cannot write heap profile:", err)
				}
				f.Close()
			})
		}
	}
	return prog.NextProgram(cleanups...)
}

func warn(w *os.File, kind string, err error) {
	fmt.Fprintf(w, "Warning: cannot create %s profile: %v\n", kind, err)
	fmt.Fprintf(w, "Continuing without %s profiling.\n", kind)
}
