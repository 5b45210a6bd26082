package models

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestMemoryInBand(t *testing.T) {
	tests := []struct {
		cpu    string
		memory string
		want   bool
	}{
		{"1", "512Mi", true},
		{"1", "2Gi", true},
		{"1", "4Gi", false},
		{"2", "512Mi", false},
		{"2", "4Gi", true},
		{"4", "16Gi", false},
		{"8", "4Gi", true},
		{"8", "2Gi", false},
		{"8", "16Gi", true},
		// Unknown tiers stay soft.
		{"16", "512Mi", true},
	}
	for _, tt := range tests {
		t.Run(tt.cpu+"/"+tt.memory, func(t *testing.T) {
			if got := MemoryInBand(tt.cpu, tt.memory); got != tt.want {
				t.Errorf("MemoryInBand(%q, %q) = %v, want %v", tt.cpu, tt.memory, got, tt.want)
			}
		})
	}
}

func TestMemoryBand(t *testing.T) {
	min, max, ok := MemoryBand("4")
	if !ok || min != "2Gi" || max != "8Gi" {
		t.Errorf("MemoryBand(4) = %q-%q ok=%v, want 2Gi-8Gi", min, max, ok)
	}
	if _, _, ok := MemoryBand("3"); ok {
		t.Error("MemoryBand(3) should not be known")
	}
}

func TestRecipientsOrdering(t *testing.T) {
	target := NotificationTarget{
		Mode:       NotifyBoth,
		ChannelIDs: []string{"-1001", "-1002"},
		ChatIDs:    []string{"111"},
	}
	want := []string{"-1001", "-1002", "111"}
	if got := target.Recipients(); !reflect.DeepEqual(got, want) {
		t.Errorf("Recipients() = %v, want %v", got, want)
	}

	target.Mode = NotifyChannel
	if got := target.Recipients(); !reflect.DeepEqual(got, []string{"-1001", "-1002"}) {
		t.Errorf("channel-only Recipients() = %v", got)
	}

	target.Mode = NotifyBot
	if got := target.Recipients(); !reflect.DeepEqual(got, []string{"111"}) {
		t.Errorf("bot-only Recipients() = %v", got)
	}

	target.Mode = NotifyNone
	if got := target.Recipients(); got != nil {
		t.Errorf("none Recipients() = %v, want nil", got)
	}
}

func TestNotificationTargetEnabled(t *testing.T) {
	if (NotificationTarget{Mode: NotifyNone}).Enabled() {
		t.Error("none should not be enabled")
	}
	if (NotificationTarget{}).Enabled() {
		t.Error("zero value should not be enabled")
	}
	if !(NotificationTarget{Mode: NotifyBoth}).Enabled() {
		t.Error("both should be enabled")
	}
}

func TestNewButtonLinkTruncation(t *testing.T) {
	long := strings.Repeat("x", 30)
	b := NewButtonLink("https://t.me/example", long)
	if n := utf8.RuneCountInString(b.DisplayName); n > 20 {
		t.Errorf("display name is %d runes, want <= 20", n)
	}
	if !strings.HasSuffix(b.DisplayName, "…") {
		t.Errorf("truncated name %q should end with ellipsis", b.DisplayName)
	}

	short := NewButtonLink("https://t.me/example", "Join us")
	if short.DisplayName != "Join us" {
		t.Errorf("short name should pass through, got %q", short.DisplayName)
	}
}

func TestChannelButton(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://t.me/examplechannel", "@examplechannel"},
		{"https://example.com/path", "example.com"},
		{"https://averyveryverylongchannelname.example.com", "averyveryverylongch…"},
	}
	for _, tt := range tests {
		b := ChannelButton(tt.url)
		if b.DisplayName != tt.want {
			t.Errorf("ChannelButton(%q).DisplayName = %q, want %q", tt.url, b.DisplayName, tt.want)
		}
		if b.URL != tt.url {
			t.Errorf("ChannelButton(%q).URL = %q", tt.url, b.URL)
		}
	}
}
