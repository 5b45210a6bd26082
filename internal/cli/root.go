package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vlessctl",
	Short: "Deploy a VLESS proxy to Cloud Run",
	Long: `vlessctl is a CLI tool that builds and deploys a VLESS proxy service to
Cloud Run and announces the connection details on Telegram.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(deployCmd)
	rootCmd.AddCommand(versionCmd)
}
