package hunt

import (
	"context"
	"time"
)

// PulseDuration is the length of the tactile pulse after a toggle.
const PulseDuration = 10 * time.Millisecond

// ResetPrompt is the question asked before a location is cleared.
const ResetPrompt = "Start this hunt over?"

// Haptics issues a short tactile pulse. A nil Haptics means the runtime has none.
type Haptics interface {
	Pulse(ctx context.Context, d time.Duration) error
}

// Confirmer answers a blocking yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool { return f(ctx, prompt) }

// Confirmed is a Confirmer with a fixed answer, for callers that collected it up front.
type Confirmed bool

// Confirm returns the fixed answer.
func (c Confirmed) Confirm(context.Context, string) bool { return bool(c) }
