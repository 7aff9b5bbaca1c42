package session

import "errors"

// ErrSessionLocked is returned by field operations while the session holds
// no key.
var ErrSessionLocked = errors.New("vault session is locked")
