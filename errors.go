package everafter

import "fmt"

// panicf raises a programming-error panic: a contract violation that is
// fatal to the enclosing transaction and is not expected to be caught.
func panicf(format string, args ...any) {
	panic(fmt.Sprintf("everafter: "+format, args...))
}
