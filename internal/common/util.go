// Package common holds small utilities shared across chatline components.
package common

// WipeByteArray overwrites the slice with zeroes. Used for secrets read from
// the terminal so they do not linger in memory after submission.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
