// Package deploy drives the external tools that build and ship the service:
// gcloud for APIs, Cloud Build, and Cloud Run, git for fetching the source.
package deploy

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/stoewer/go-strcase"
	"github.com/vlessops/vlessctl/internal/expiry"
	"github.com/vlessops/vlessctl/internal/models"
	"github.com/vlessops/vlessctl/pkg/printer"
)

const totalSteps = 6

// Orchestrator sequences the deployment pipeline. Every step short-circuits
// the run on failure; the working directory is removed on all exits.
type Orchestrator struct {
	runner     Runner
	sourceRepo string
	workDir    string
	lifetime   string

	// now is swappable in tests.
	now func() time.Time
}

// NewOrchestrator builds an orchestrator around a command runner.
func NewOrchestrator(runner Runner, sourceRepo, workDir, lifetime string) *Orchestrator {
	return &Orchestrator{
		runner:     runner,
		sourceRepo: sourceRepo,
		workDir:    workDir,
		lifetime:   lifetime,
		now:        time.Now,
	}
}

// CheckPrerequisites verifies the required tools are installed and an active
// gcloud project is configured, returning the project ID. It runs before any
// side effect.
func (o *Orchestrator) CheckPrerequisites() (string, error) {
	for _, tool := range []string{"gcloud", "git"} {
		if err := o.runner.LookPath(tool); err != nil {
			return "", err
		}
	}
	project, err := o.runner.Output("gcloud", "config", "get-value", "project")
	if err != nil {
		return "", fmt.Errorf("failed to read active gcloud project: %w", err)
	}
	if project == "" || project == "(unset)" {
		return "", fmt.Errorf("no active gcloud project configured; run 'gcloud config set project <id>'")
	}
	return project, nil
}

// Deploy runs the full pipeline and assembles the result record. conf must
// already be validated and confirmed.
func (o *Orchestrator) Deploy(conf models.Configuration) (*models.DeploymentResult, error) {
	defer o.Cleanup()

	printer.PrintStep(1, totalSteps, "Checking prerequisites")
	project, err := o.CheckPrerequisites()
	if err != nil {
		return nil, err
	}

	printer.PrintStep(2, totalSteps, "Enabling required cloud APIs")
	if err := o.runner.Run("gcloud", "services", "enable",
		"run.googleapis.com", "cloudbuild.googleapis.com"); err != nil {
		return nil, fmt.Errorf("failed to enable cloud APIs: %w", err)
	}

	printer.PrintStep(3, totalSteps, "Fetching source repository")
	if err := o.fetchSource(); err != nil {
		return nil, err
	}

	service := strcase.KebabCase(conf.ServiceName)
	image := fmt.Sprintf("gcr.io/%s/%s", project, service)

	printer.PrintStep(4, totalSteps, "Building container image")
	if err := o.runner.Run("gcloud", "builds", "submit", o.workDir, "--tag", image); err != nil {
		return nil, fmt.Errorf("container build failed: %w", err)
	}

	printer.PrintStep(5, totalSteps, "Deploying to Cloud Run")
	if err := o.runner.Run("gcloud", "run", "deploy", service,
		"--image", image,
		"--platform", "managed",
		"--region", conf.Region,
		"--cpu", conf.CPU,
		"--memory", conf.Memory,
		"--port", "8080",
		"--allow-unauthenticated",
		"--quiet"); err != nil {
		return nil, fmt.Errorf("service deployment failed: %w", err)
	}

	printer.PrintStep(6, totalSteps, "Resolving service URL")
	domain, err := o.serviceDomain(service, conf.Region)
	if err != nil {
		return nil, err
	}

	return &models.DeploymentResult{
		ProjectID:   project,
		ServiceName: service,
		Region:      conf.Region,
		CPU:         conf.CPU,
		Memory:      conf.Memory,
		Domain:      domain,
		VlessLink:   VlessLink(conf.UUID, conf.HostDomain, domain, service),
		ExpiryLabel: expiry.Label(expiry.ParseDuration(o.lifetime), o.now()),
	}, nil
}

// fetchSource clones the source repository into a fresh working directory,
// removing any leftover from a prior run first.
func (o *Orchestrator) fetchSource() error {
	if err := os.RemoveAll(o.workDir); err != nil {
		return fmt.Errorf("failed to remove stale working directory %s: %w", o.workDir, err)
	}
	if err := o.runner.Run("git", "clone", o.sourceRepo, o.workDir); err != nil {
		return fmt.Errorf("failed to clone %s (ensure the repository is public): %w", o.sourceRepo, err)
	}
	return nil
}

// serviceDomain queries the deployed service URL and strips the scheme.
func (o *Orchestrator) serviceDomain(service, region string) (string, error) {
	url, err := o.runner.Output("gcloud", "run", "services", "describe", service,
		"--platform", "managed",
		"--region", region,
		"--format", "value(status.url)")
	if err != nil {
		return "", fmt.Errorf("failed to query service URL: %w", err)
	}
	domain := strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "http://")
	if domain == "" {
		return "", fmt.Errorf("service %s reported an empty URL", service)
	}
	return domain, nil
}

// Cleanup removes the working directory. Safe to call repeatedly.
func (o *Orchestrator) Cleanup() {
	_ = os.RemoveAll(o.workDir)
}
