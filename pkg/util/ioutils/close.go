package ioutils

import (
	"io"
)

// QuiteClose closes c and drops the error. Use it in defers where nothing
// useful can be done about a failed close, e.g. response bodies.
func QuiteClose(c io.Closer) {
	if c == nil {
		return
	}
	_ = c.Close()
}
