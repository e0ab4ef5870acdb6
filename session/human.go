package session

import (
	"context"
	"time"

	"github.com/ratel-online/uno/uno/game"
)

// Human is the seat a person plays from. Ask returns consts.ErrorsTimeout
// when timeout elapses without input; a zero timeout waits until ctx ends.
type Human interface {
	Write(text string) error
	Ask(ctx context.Context, prompt string, timeout time.Duration) (string, error)
	ShowState(state game.State) error
}
