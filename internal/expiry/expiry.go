// Package expiry turns a deployment lifetime like "5h30m" into a
// human-readable expiry timestamp in the notification audience's time zone.
package expiry

import (
	"regexp"
	"strconv"
	"time"
)

var (
	hoursRe   = regexp.MustCompile(`([0-9]+)h`)
	minutesRe = regexp.MustCompile(`([0-9]+)m`)
)

// Zone is the fixed UTC+6:30 presentation zone. The target zone has no
// daylight-saving transitions, so a constant offset is exact.
var Zone = time.FixedZone("UTC+6:30", 6*3600+30*60)

// fallbackLabel is returned when the timestamp cannot be rendered.
const fallbackLabel = "unknown"

// ParseDuration extracts the hours and minutes components independently and
// sums them. A missing unit contributes zero; anything else in the string is
// ignored.
func ParseDuration(text string) time.Duration {
	var d time.Duration
	if m := hoursRe.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		d += time.Duration(h) * time.Hour
	}
	if m := minutesRe.FindStringSubmatch(text); m != nil {
		min, _ := strconv.Atoi(m[1])
		d += time.Duration(min) * time.Minute
	}
	return d
}

// Label formats now+d as a 12-hour clock timestamp in Zone.
func Label(d time.Duration, now time.Time) string {
	if now.IsZero() {
		return fallbackLabel
	}
	return now.Add(d).In(Zone).Format("Jan 2, 2006 3:04 PM")
}
