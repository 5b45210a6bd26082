package deploy

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/vlessops/vlessctl/internal/models"
)

// consoleWidth is the wrap target for the plain-text summary.
const consoleWidth = 80

// VlessLink assembles the client connection URI from the deployed domain and
// the configured identity. Path and query are fixed by the server image.
func VlessLink(uuid, hostDomain, domain, name string) string {
	return fmt.Sprintf(
		"vless://%s@%s:443?encryption=none&security=tls&sni=%s&type=ws&host=%s&path=%%2Fvless#%s",
		uuid, hostDomain, domain, domain, name,
	)
}

// ConsoleMessage renders the plain-text summary written to the info file and
// printed after a successful run.
func ConsoleMessage(r *models.DeploymentResult) string {
	var sb strings.Builder
	sb.WriteString("Deployment complete\n")
	sb.WriteString(strings.Repeat("=", 40) + "\n")
	fmt.Fprintf(&sb, "Project:  %s\n", r.ProjectID)
	fmt.Fprintf(&sb, "Service:  %s\n", r.ServiceName)
	fmt.Fprintf(&sb, "Region:   %s\n", r.Region)
	fmt.Fprintf(&sb, "CPU:      %s vCPU\n", r.CPU)
	fmt.Fprintf(&sb, "Memory:   %s\n", r.Memory)
	fmt.Fprintf(&sb, "Domain:   %s\n", r.Domain)
	fmt.Fprintf(&sb, "Expires:  %s\n", r.ExpiryLabel)
	sb.WriteString("\nConnection link:\n")
	sb.WriteString(r.VlessLink + "\n")
	return wordwrap.String(sb.String(), consoleWidth)
}

// TelegramMessage renders the Markdown form sent to every notification
// recipient.
func TelegramMessage(r *models.DeploymentResult) string {
	var sb strings.Builder
	sb.WriteString("*New deployment ready*\n\n")
	fmt.Fprintf(&sb, "*Service:* `%s`\n", r.ServiceName)
	fmt.Fprintf(&sb, "*Region:* `%s`\n", r.Region)
	fmt.Fprintf(&sb, "*Specs:* `%s vCPU / %s`\n", r.CPU, r.Memory)
	fmt.Fprintf(&sb, "*Expires:* `%s`\n\n", r.ExpiryLabel)
	fmt.Fprintf(&sb, "```\n%s\n```", r.VlessLink)
	return sb.String()
}
