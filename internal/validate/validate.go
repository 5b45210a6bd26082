// Package validate checks operator-supplied identifiers against the fixed
// formats the deployment pipeline expects. Validation is deliberately
// permissive regex matching: errors are caught interactively and re-prompted,
// never deferred.
package validate

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	uuidRe     = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	botTokenRe = regexp.MustCompile(`^[0-9]{8,10}:[A-Za-z0-9_-]{35}$`)
	chatIDRe   = regexp.MustCompile(`^-?[0-9]+$`)
	tmeURLRe   = regexp.MustCompile(`^https?://t\.me/\w+$`)
	genURLRe   = regexp.MustCompile(`^https?://[A-Za-z0-9][A-Za-z0-9.-]*\.[A-Za-z]{2,}(/\S*)?$`)
)

// UUID checks the canonical 8-4-4-4-12 hex-with-hyphens form.
func UUID(s string) error {
	if !uuidRe.MatchString(s) {
		return fmt.Errorf("invalid UUID %q: expected 8-4-4-4-12 hex format", s)
	}
	return nil
}

// BotToken checks the Telegram bot token form <numeric id>:<35-char secret>.
func BotToken(s string) error {
	if !botTokenRe.MatchString(s) {
		return fmt.Errorf("invalid bot token: expected <8-10 digits>:<35 chars>")
	}
	return nil
}

// IDList parses a comma-separated list of Telegram chat/channel IDs. Elements
// are trimmed and empties discarded; every remaining element must be an
// optionally-signed integer. Validation is all-or-nothing and the returned
// list is the single parsed representation used downstream.
func IDList(s string) ([]string, error) {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !chatIDRe.MatchString(part) {
			return nil, fmt.Errorf("invalid chat ID %q: must be numeric", part)
		}
		ids = append(ids, part)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no chat IDs found in %q", s)
	}
	return ids, nil
}

// URL accepts a t.me link or a generic http(s) URL with a dotted host.
func URL(s string) error {
	if tmeURLRe.MatchString(s) || genURLRe.MatchString(s) {
		return nil
	}
	return fmt.Errorf("invalid URL %q: expected https://t.me/<name> or https://<host>/<path>", s)
}

// ServiceName requires a non-empty name.
func ServiceName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("service name must not be empty")
	}
	return nil
}
