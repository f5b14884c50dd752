//go:build !fenwickcheck

package fenwick

// Assertions are compiled out; callers uphold the preconditions.
const debugChecks = false
