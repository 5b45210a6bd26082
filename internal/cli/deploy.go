package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vlessops/vlessctl/internal/cli/tui"
	"github.com/vlessops/vlessctl/internal/config"
	"github.com/vlessops/vlessctl/internal/deploy"
	"github.com/vlessops/vlessctl/internal/models"
	"github.com/vlessops/vlessctl/internal/telegram"
	"github.com/vlessops/vlessctl/internal/validate"
	"github.com/vlessops/vlessctl/pkg/printer"
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Build and deploy the VLESS service",
	Long: `Deploy the VLESS proxy to Cloud Run.

Without flags an interactive wizard collects the configuration. Pass
--non-interactive together with the configuration flags for scripted use.

Example:
  vlessctl deploy
  vlessctl deploy --non-interactive --region us-central1 --cpu 2 --memory 2Gi \
    --service-name my-proxy --notify none`,
	RunE: runDeploy,
}

func runDeploy(cmd *cobra.Command, args []string) error {
	cfg := config.NewConfig()
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		cfg.Verbose = true
	}

	nonInteractive, _ := cmd.Flags().GetBool("non-interactive")
	var conf models.Configuration
	if nonInteractive {
		c, err := configurationFromFlags(cmd, cfg)
		if err != nil {
			return err
		}
		conf = c
	} else {
		c, ok, err := tui.Run(cfg)
		if err != nil {
			return err
		}
		if !ok {
			printer.PrintInfo("Aborted.")
			return nil
		}
		conf = c
	}

	runner := deploy.NewExecRunner(cfg.Verbose)
	orchestrator := deploy.NewOrchestrator(runner, cfg.SourceRepo, cfg.WorkDir, cfg.Lifetime)

	result, err := orchestrator.Deploy(conf)
	if err != nil {
		return fmt.Errorf("deployment failed: %w", err)
	}

	console := deploy.ConsoleMessage(result)
	if err := os.WriteFile(cfg.OutputFile, []byte(console), 0o644); err != nil {
		printer.PrintWarning(fmt.Sprintf("could not write %s: %v", cfg.OutputFile, err))
	} else {
		printer.PrintSuccess("Saved summary to " + cfg.OutputFile)
	}
	printer.PrintInfo("\n" + console)

	if conf.Notify.Enabled() {
		notify(conf, result)
	}
	return nil
}

// notify broadcasts the Telegram form of the result. Failures here never
// fail the command; the service is already live.
func notify(conf models.Configuration, result *models.DeploymentResult) {
	client := telegram.NewClient(conf.BotToken)
	button := models.ChannelButton(conf.ChannelURL)
	res := client.Broadcast(conf.Notify, deploy.TelegramMessage(result), button,
		telegram.BroadcastOptions{ShowProgress: true})
	if res.OK() {
		printer.PrintSuccess(fmt.Sprintf("Notified %d/%d recipients", res.Succeeded, res.Attempted))
	} else {
		printer.PrintWarning("all notifications failed; the deployment itself is complete")
	}
}

// configurationFromFlags builds and validates a Configuration without the
// wizard. The memory band check stays a soft warning here too.
func configurationFromFlags(cmd *cobra.Command, cfg *config.Config) (models.Configuration, error) {
	var conf models.Configuration
	conf.Region, _ = cmd.Flags().GetString("region")
	conf.CPU, _ = cmd.Flags().GetString("cpu")
	conf.Memory, _ = cmd.Flags().GetString("memory")
	conf.ServiceName, _ = cmd.Flags().GetString("service-name")
	conf.UUID, _ = cmd.Flags().GetString("uuid")
	conf.HostDomain, _ = cmd.Flags().GetString("domain")
	conf.BotToken, _ = cmd.Flags().GetString("bot-token")
	conf.ChannelURL, _ = cmd.Flags().GetString("channel-url")
	mode, _ := cmd.Flags().GetString("notify")

	if conf.UUID == "" {
		conf.UUID = cfg.UUID
	}
	if conf.HostDomain == "" {
		conf.HostDomain = cfg.HostDomain
	}
	if conf.BotToken == "" {
		conf.BotToken = cfg.BotToken
	}

	if !contains(models.Regions, conf.Region) {
		return conf, fmt.Errorf("unknown region %q", conf.Region)
	}
	if !contains(models.CPUTiers, conf.CPU) {
		return conf, fmt.Errorf("unknown CPU tier %q (choose one of %v)", conf.CPU, models.CPUTiers)
	}
	if !contains(models.MemoryTiers, conf.Memory) {
		return conf, fmt.Errorf("unknown memory tier %q (choose one of %v)", conf.Memory, models.MemoryTiers)
	}
	if !models.MemoryInBand(conf.CPU, conf.Memory) {
		min, max, _ := models.MemoryBand(conf.CPU)
		printer.PrintWarning(fmt.Sprintf("%s is outside the recommended %s-%s band for %s vCPU",
			conf.Memory, min, max, conf.CPU))
	}
	if err := validate.ServiceName(conf.ServiceName); err != nil {
		return conf, err
	}
	if err := validate.UUID(conf.UUID); err != nil {
		return conf, err
	}

	if !contains(models.NotifyModes, mode) {
		return conf, fmt.Errorf("unknown notify mode %q (choose one of %v)", mode, models.NotifyModes)
	}
	conf.Notify = models.NotificationTarget{Mode: mode}
	if conf.Notify.Enabled() {
		if err := validate.BotToken(conf.BotToken); err != nil {
			return conf, err
		}
		if err := validate.URL(conf.ChannelURL); err != nil {
			return conf, err
		}
		channelIDs, _ := cmd.Flags().GetString("channel-ids")
		chatIDs, _ := cmd.Flags().GetString("chat-ids")
		if mode == models.NotifyChannel || mode == models.NotifyBoth {
			ids, err := validate.IDList(channelIDs)
			if err != nil {
				return conf, err
			}
			conf.Notify.ChannelIDs = ids
		}
		if mode == models.NotifyBot || mode == models.NotifyBoth {
			ids, err := validate.IDList(chatIDs)
			if err != nil {
				return conf, err
			}
			conf.Notify.ChatIDs = ids
		}
	}
	return conf, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func init() {
	registerDeployFlags(deployCmd)
}

func registerDeployFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("non-interactive", false, "Skip the wizard and read configuration from flags")
	cmd.Flags().Bool("verbose", false, "Print external commands as they run")
	cmd.Flags().String("region", "", "Cloud Run region")
	cmd.Flags().String("cpu", "1", "CPU tier (1, 2, 4, 8)")
	cmd.Flags().String("memory", "512Mi", "Memory tier (512Mi through 16Gi)")
	cmd.Flags().String("service-name", "", "Cloud Run service name")
	cmd.Flags().String("uuid", "", "Client UUID (generated when omitted)")
	cmd.Flags().String("domain", "", "Host domain for the connection link")
	cmd.Flags().String("notify", "none", "Notification mode (none, channel, bot, both)")
	cmd.Flags().String("channel-ids", "", "Comma-separated Telegram channel IDs")
	cmd.Flags().String("chat-ids", "", "Comma-separated Telegram chat IDs")
	cmd.Flags().String("bot-token", "", "Telegram bot token")
	cmd.Flags().String("channel-url", "", "Channel URL for the notification button")
}
