package assert

import (
	"github.com/polygonengine/polygon/logging"
)

// T panics with the formatted message if check is false.
// Used for programmer errors that must never survive into a frame.
func T(check bool, msgf string, args ...any) {

	if check {
		return
	}

	logging.ErrLog.Panicf(msgf, args...)
}
