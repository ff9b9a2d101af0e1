// Package notify delivers the run's single summary as a desktop
// notification.
package notify

import (
	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"
)

// Desktop sends notifications through the platform notification service.
type Desktop struct {
	logger zerolog.Logger
}

// NewDesktop creates a Desktop notifier.
func NewDesktop(logger zerolog.Logger) *Desktop {
	return &Desktop{logger: logger}
}

// Notify shows a desktop notification. Delivery failures are logged, not
// returned; a missing notification daemon must never fail a tagging run.
func (d *Desktop) Notify(title, message string) {
	if err := beeep.Notify(title, message, ""); err != nil {
		d.logger.Warn().Err(err).Msg("failed to deliver desktop notification")
	}
}
