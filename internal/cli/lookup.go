package cli

import (
	"context"
	"fmt"
	"strings"

	apperr "github.com/matzehuels/gitwrapped/pkg/errors"
	"github.com/matzehuels/gitwrapped/pkg/render"
	"github.com/matzehuels/gitwrapped/pkg/wrapped"
)

// lookupError carries the user-facing text of a failed lookup while
// keeping the cause available to errors.Is.
type lookupError struct {
	msg string
	err error
}

func (e *lookupError) Error() string { return e.msg }
func (e *lookupError) Unwrap() error { return e.err }

// lookupErrorText is the message shown for a failed lookup, both on the
// command line and in the deck toast.
func lookupErrorText(username string, err error) string {
	if apperr.Is(err, apperr.ErrCodeUserNotFound) {
		return fmt.Sprintf("User %s not found. Try: %s", username, strings.Join(render.ExampleUsers, ", "))
	}
	return fmt.Sprintf("Could not load %s: %s", username, apperr.UserMessage(err))
}

// generate runs one lookup with an optional spinner on stderr.
func (c *CLI) generate(ctx context.Context, a *app, username string, spin bool) (*wrapped.ViewModel, bool, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	var s *Spinner
	if spin {
		s = newSpinnerWithContext(ctx, "Fetching "+username+"...")
		s.Start()
	}
	vm, cached, err := a.svc.Generate(ctx, username, c.refresh)
	if s != nil {
		s.Stop()
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, false, &lookupError{msg: lookupErrorText(username, err), err: err}
	}

	if cached {
		logger.Debug("served from cache", "login", vm.Profile.Login)
	} else {
		prog.done("Generated " + vm.Profile.Login)
	}
	return vm, cached, nil
}
