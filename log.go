package chess

import (
	"fmt"

	logging "github.com/op/go-logging"
)

// Structured logging (C16). Grounded on frankkopp-FrankyGo's
// internal/movegen package-level logger pattern (var log *logging.Logger,
// assigned once at init). Used for FEN parse failures (kind-1 errors,
// logged at WARNING before being returned to the caller) and for
// unrecoverable invariant breaches (kind-4, logged at CRITICAL before a
// panic). Never used on the hot path of GenerateMoves/MakeMove/
// IsAttackedBy themselves.
var log *logging.Logger

func init() {
	log = logging.MustGetLogger("chess")
}

// invariantBreach logs msg at CRITICAL and panics. Reserved for the kind-4
// errors of spec.md §7: occupancy desync, a pin map referring to an empty
// square. These indicate a bug in this package, not bad caller input.
func invariantBreach(msg string, args ...interface{}) {
	log.Criticalf(msg, args...)
	panic(fmt.Sprintf(msg, args...))
}
