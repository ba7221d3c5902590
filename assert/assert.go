// Package assert checks internal invariants. A failed check means a bug in
// this module, never bad input, so it panics. Build with the
// assertions_disabled tag to compile the checks away.
package assert

import "fmt"

// message renders the optional panic arguments. A leading string is treated
// as a format string for the rest.
func message(args []any) string {
	if len(args) == 0 {
		return "assertion failed"
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("assertion failed: %v", args)
}
