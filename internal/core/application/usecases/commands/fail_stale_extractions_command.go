package commands

import (
	"errors"
	"time"

	"doctrack/internal/pkg/errs"
	"doctrack/internal/pkg/guard"
)

var ErrFailStaleExtractionsCommandIsNotConstructed = errors.New(
	"FailStaleExtractionsCommand must be created via NewFailStaleExtractionsCommand constructor",
)

// FailStaleExtractionsCommand gives up on documents the extraction engine
// has not answered for within timeout.
type FailStaleExtractionsCommand struct {
	timeout time.Duration

	guard guard.ConstructorGuard
}

func NewFailStaleExtractionsCommand(timeout time.Duration) (FailStaleExtractionsCommand, error) {
	if timeout <= 0 {
		return FailStaleExtractionsCommand{}, errs.NewValueIsOutOfRangeError("timeout", timeout, "1ns", "unbounded")
	}
	return FailStaleExtractionsCommand{
		timeout: timeout,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c FailStaleExtractionsCommand) Validate() error {
	return c.guard.Validate(ErrFailStaleExtractionsCommandIsNotConstructed)
}

func (c FailStaleExtractionsCommand) Timeout() time.Duration { return c.timeout }
