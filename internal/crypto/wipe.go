package crypto

import "runtime"

// Wipe overwrites b with zeros in place.
func Wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}
