//go:build fenwickcheck

package fenwick

// debugChecks enables index and precondition assertions.
const debugChecks = true
