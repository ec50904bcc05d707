//go:build boxshadowdebug

package boxshadow

import "fmt"

// assertf panics when cond is false. Build with -tags boxshadowdebug to
// check geometry preconditions.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("boxshadow: " + fmt.Sprintf(format, args...))
	}
}
