package cli

import (
	"context"

	"github.com/dmitrijs2005/docconvert/internal/models"
)

// SwitchMode prints the current mode when called without arguments, otherwise
// switches to the named mode. Switching always clears the payload, even when
// the mode does not change.
func (a *App) SwitchMode(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.println("Current mode:", a.Mode())
		return nil
	}

	mode, err := models.ParseMode(args[0])
	if err != nil {
		a.failure(err.Error())
		return err
	}

	a.session.SwitchTo(ctx, mode)
	a.printModeBanner(mode)
	return nil
}
