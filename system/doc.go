// Package system holds the vector and time types shared by the other
// facades, plus the library's clock.
package system
