package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

// HapticHeader tells API clients how long to vibrate after a toggle.
const HapticHeader = "X-Haptic-Pulse-Ms"

// headerHaptics forwards the pulse to the client as a response header; the
// client decides whether it can vibrate.
type headerHaptics struct {
	w http.ResponseWriter
}

func (h headerHaptics) Pulse(_ context.Context, d time.Duration) error {
	h.w.Header().Set(HapticHeader, strconv.FormatInt(d.Milliseconds(), 10))
	return nil
}
