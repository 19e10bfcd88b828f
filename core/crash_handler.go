package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu      sync.Mutex
	crashRestore func()

	// Overridable for tests
	crashOutput io.Writer = os.Stderr
	crashExit             = os.Exit
)

// SetCrashRestore registers the hook that returns the terminal to a sane state
// before a crash report is printed, typically tcell.Screen.Fini
func SetCrashRestore(fn func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashRestore = fn
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	restore := crashRestore
	crashRestore = nil
	crashMu.Unlock()

	// Restore terminal to sane state immediately
	if restore != nil {
		restore()
	}

	fmt.Fprintf(crashOutput, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\r\n%s\r\n", debug.Stack())

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
