// Package terminal is a thin control facade over the process terminal.
//
// A Screen queues cursor moves, clears, cursor visibility toggles and
// text into an in-memory buffer; Execute writes the whole batch to the
// device at once. Initialize and Terminate toggle raw mode and must be
// paired; Enter and Run return a guard that restores cooked mode on
// every exit path:
//
//	err := terminal.Run(func(s *terminal.Screen) error {
//	    _ = s.MoveCursor(terminal.Position{X: 2, Y: 1})
//	    _ = s.Print("hello")
//	    return s.Execute()
//	})
//
// Every failure is an *IOError wrapping the operating system error.
package terminal
