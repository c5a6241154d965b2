package sheet

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoPunches is returned when punching out of a sheet with no events.
var ErrNoPunches = errors.New("not punched in, no punch-ins recorded")

// AlreadyPunchedInError is returned when punching in while an event is open.
// Since is the start of the open event.
type AlreadyPunchedInError struct {
	Since time.Time
}

func (e *AlreadyPunchedInError) Error() string {
	return fmt.Sprintf("already punched in at %s", e.Since.Format(time.RFC3339))
}

// AlreadyPunchedOutError is returned when punching out while the last event is
// already closed. Since is the stop of that event.
type AlreadyPunchedOutError struct {
	Since time.Time
}

func (e *AlreadyPunchedOutError) Error() string {
	return fmt.Sprintf("not punched in, last punched out at %s", e.Since.Format(time.RFC3339))
}
