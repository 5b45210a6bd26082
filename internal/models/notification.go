package models

// Notification delivery modes.
const (
	NotifyNone    = "none"
	NotifyChannel = "channel"
	NotifyBot     = "bot"
	NotifyBoth    = "both"
)

// NotifyModes lists the selectable delivery modes in wizard order.
var NotifyModes = []string{NotifyNone, NotifyChannel, NotifyBot, NotifyBoth}

// NotificationTarget describes where deployment notifications are sent.
// The ID lists are parsed and validated once at the input boundary.
type NotificationTarget struct {
	Mode       string
	ChannelIDs []string
	ChatIDs    []string
}

// Enabled reports whether any notification should be sent.
func (t NotificationTarget) Enabled() bool {
	return t.Mode == NotifyChannel || t.Mode == NotifyBot || t.Mode == NotifyBoth
}

// Recipients returns the ordered recipient list for the target mode:
// channel IDs first, then chat IDs.
func (t NotificationTarget) Recipients() []string {
	switch t.Mode {
	case NotifyChannel:
		return t.ChannelIDs
	case NotifyBot:
		return t.ChatIDs
	case NotifyBoth:
		ids := make([]string, 0, len(t.ChannelIDs)+len(t.ChatIDs))
		ids = append(ids, t.ChannelIDs...)
		ids = append(ids, t.ChatIDs...)
		return ids
	default:
		return nil
	}
}
