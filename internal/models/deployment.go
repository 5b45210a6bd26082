package models

import "strings"

// maxButtonLabel is the widest label Telegram renders cleanly on one row.
const maxButtonLabel = 20

// ButtonLink is the single inline-keyboard button attached to every
// notification message.
type ButtonLink struct {
	URL         string
	DisplayName string
}

// NewButtonLink builds a button, truncating the display name to 20 runes
// with a trailing ellipsis when it is longer.
func NewButtonLink(url, displayName string) ButtonLink {
	runes := []rune(displayName)
	if len(runes) > maxButtonLabel {
		displayName = string(runes[:maxButtonLabel-1]) + "…"
	}
	return ButtonLink{URL: url, DisplayName: displayName}
}

// ChannelButton derives a button label from a channel URL: "@name" for t.me
// links, the bare host otherwise.
func ChannelButton(channelURL string) ButtonLink {
	name := channelURL
	trimmed := strings.TrimPrefix(strings.TrimPrefix(channelURL, "https://"), "http://")
	if rest, ok := strings.CutPrefix(trimmed, "t.me/"); ok {
		name = "@" + rest
	} else if host, _, _ := strings.Cut(trimmed, "/"); host != "" {
		name = host
	}
	return NewButtonLink(channelURL, name)
}

// DeploymentResult is assembled only after every deployment step has
// succeeded and is read-only thereafter. Both the console summary and the
// Telegram message render from the same record.
type DeploymentResult struct {
	ProjectID   string
	ServiceName string
	Region      string
	CPU         string
	Memory      string
	Domain      string
	VlessLink   string
	ExpiryLabel string
}
