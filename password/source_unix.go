//go:build unix

package password

// System is the operating system's secure random source.
var System Source = URandom
