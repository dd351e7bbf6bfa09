// Package core holds process-level plumbing shared by the loops: panic recovery
// and terminal restoration on crash.
package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"

	"github.com/lixenwraith/hindsight/terminal"
)

var crashTerminal atomic.Pointer[terminal.Terminal]

// RegisterCrashTerminal sets the terminal HandleCrash restores before printing
func RegisterCrashTerminal(t terminal.Terminal) {
	crashTerminal.Store(&t)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if t := crashTerminal.Load(); t != nil {
		(*t).Fini()
	} else {
		terminal.EmergencyReset(os.Stdout)
	}

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// PanicError is a recovered loop panic
type PanicError struct {
	Name  string
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s: panic: %v", e.Name, e.Value)
}

// Guard wraps a loop body so a panic is returned as *PanicError instead of
// crashing the process, letting the supervisor shut the other loops down
func Guard(name string, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &PanicError{Name: name, Value: r, Stack: debug.Stack()}
			}
		}()
		return fn()
	}
}
