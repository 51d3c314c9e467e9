// Package platform isolates the per-OS differences between application
// bundle layouts: where the resource tree lives inside a bundle, how
// executables and shared libraries are named, and whether Unix permission
// bits apply. Everything above this package works with one neutral layout.
package platform
