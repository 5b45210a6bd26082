package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vlessops/vlessctl/internal/config"
	"github.com/vlessops/vlessctl/internal/models"
)

func flagConfig(t *testing.T, flags map[string]string) (models.Configuration, error) {
	t.Helper()
	cmd := &cobra.Command{Use: "deploy"}
	registerDeployFlags(cmd)
	for k, v := range flags {
		require.NoError(t, cmd.Flags().Set(k, v))
	}
	cfg := &config.Config{
		UUID:       "123e4567-e89b-12d3-a456-426614174000",
		HostDomain: "m.example.com",
	}
	return configurationFromFlags(cmd, cfg)
}

func TestConfigurationFromFlagsMinimal(t *testing.T) {
	conf, err := flagConfig(t, map[string]string{
		"region":       "us-central1",
		"cpu":          "2",
		"memory":       "2Gi",
		"service-name": "my-proxy",
		"notify":       "none",
	})
	require.NoError(t, err)
	assert.Equal(t, "us-central1", conf.Region)
	assert.Equal(t, "123e4567-e89b-12d3-a456-426614174000", conf.UUID, "UUID falls back to config default")
	assert.Equal(t, "m.example.com", conf.HostDomain)
	assert.False(t, conf.Notify.Enabled())
}

func TestConfigurationFromFlagsUnknownRegion(t *testing.T) {
	_, err := flagConfig(t, map[string]string{
		"region":       "mars-north1",
		"cpu":          "2",
		"memory":       "2Gi",
		"service-name": "my-proxy",
		"notify":       "none",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown region")
}

func TestConfigurationFromFlagsNotifyRequiresToken(t *testing.T) {
	_, err := flagConfig(t, map[string]string{
		"region":       "us-central1",
		"cpu":          "2",
		"memory":       "2Gi",
		"service-name": "my-proxy",
		"notify":       "channel",
		"channel-ids":  "-1001234",
		"channel-url":  "https://t.me/example",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bot token")
}

func TestConfigurationFromFlagsBoth(t *testing.T) {
	conf, err := flagConfig(t, map[string]string{
		"region":       "us-central1",
		"cpu":          "2",
		"memory":       "2Gi",
		"service-name": "my-proxy",
		"notify":       "both",
		"channel-ids":  "-1001234, -1005678",
		"chat-ids":     "111",
		"bot-token":    "1234567890:ABCdefGHIjklMNOpqrSTUvwxYZ0123_-456",
		"channel-url":  "https://t.me/example",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"-1001234", "-1005678"}, conf.Notify.ChannelIDs)
	assert.Equal(t, []string{"111"}, conf.Notify.ChatIDs)
	assert.Equal(t, []string{"-1001234", "-1005678", "111"}, conf.Notify.Recipients())
}
