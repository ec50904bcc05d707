//go:build !boxshadowdebug

package boxshadow

// assertf is compiled out unless the boxshadowdebug tag is set.
func assertf(bool, string, ...any) {}
