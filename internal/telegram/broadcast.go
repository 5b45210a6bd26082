package telegram

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/vlessops/vlessctl/internal/models"
	"github.com/vlessops/vlessctl/pkg/printer"
)

// FanOutResult tallies a broadcast across recipients.
type FanOutResult struct {
	Succeeded int
	Attempted int
}

// OK reports whether the broadcast counts as delivered: at least one success,
// or nothing to send in the first place.
func (r FanOutResult) OK() bool {
	return r.Attempted == 0 || r.Succeeded > 0
}

// BroadcastOptions tweaks broadcast behavior.
type BroadcastOptions struct {
	ShowProgress bool
}

// Broadcast sends the message to every recipient of the target, one at a
// time in list order. Per-recipient failures are reported and counted but
// never abort the loop; the deployment is already complete by the time this
// runs, so notification failure is non-fatal for the caller too.
func (c *Client) Broadcast(target models.NotificationTarget, text string, button models.ButtonLink, opts BroadcastOptions) FanOutResult {
	recipients := target.Recipients()
	result := FanOutResult{Attempted: len(recipients)}
	if len(recipients) == 0 {
		return result
	}

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		bar = progressbar.NewOptions(len(recipients),
			progressbar.OptionSetDescription("Notifying"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetItsString("messages"),
			progressbar.OptionClearOnFinish(),
		)
	}

	for _, id := range recipients {
		if err := c.SendMessage(id, text, button); err != nil {
			printer.PrintWarning(fmt.Sprintf("notification to %s failed: %v", id, err))
		} else {
			result.Succeeded++
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return result
}
