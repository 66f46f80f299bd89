package application

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// exit is replaced in tests
var exit = os.Exit

// handleCrash restores the terminal, prints the panic with its stack and exits
func handleCrash(screen tcell.Screen, stderr io.Writer, r any) {
	if r == nil {
		return
	}
	if screen != nil {
		screen.Fini()
	}
	// Raw mode may still be active on some terminals, use \r\n
	fmt.Fprintf(stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	exit(1)
}

// goSafe runs fn in a goroutine that restores the terminal if it panics
func (a *Application) goSafe(fn func()) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				handleCrash(a.screen, a.stderr, r)
			}
		}()
		fn()
	}()
}
