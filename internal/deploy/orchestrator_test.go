package deploy

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vlessops/vlessctl/internal/models"
)

// fakeRunner records invocations and serves scripted results.
type fakeRunner struct {
	calls   []string
	missing map[string]bool
	failOn  string
	outputs map[string]string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		outputs: map[string]string{
			"gcloud config get-value project": "test-project",
			"gcloud run services describe":    "https://my-service-abc123-uc.a.run.app",
		},
	}
}

func (f *fakeRunner) record(name string, args ...string) string {
	call := name + " " + strings.Join(args, " ")
	f.calls = append(f.calls, call)
	return call
}

func (f *fakeRunner) LookPath(name string) error {
	if f.missing[name] {
		return fmt.Errorf("%s command not found in PATH", name)
	}
	return nil
}

func (f *fakeRunner) Run(name string, args ...string) error {
	call := f.record(name, args...)
	if f.failOn != "" && strings.Contains(call, f.failOn) {
		return fmt.Errorf("exit status 1")
	}
	return nil
}

func (f *fakeRunner) Output(name string, args ...string) (string, error) {
	call := f.record(name, args...)
	if f.failOn != "" && strings.Contains(call, f.failOn) {
		return "", fmt.Errorf("exit status 1")
	}
	for prefix, out := range f.outputs {
		if strings.HasPrefix(call, prefix) {
			return out, nil
		}
	}
	return "", nil
}

func testConfiguration() models.Configuration {
	return models.Configuration{
		Region:      "asia-southeast1",
		CPU:         "2",
		Memory:      "2Gi",
		ServiceName: "My Proxy",
		UUID:        "123e4567-e89b-12d3-a456-426614174000",
		HostDomain:  "m.example.com",
	}
}

func newTestOrchestrator(t *testing.T, runner Runner) *Orchestrator {
	t.Helper()
	o := NewOrchestrator(runner, "https://github.com/vlessops/vless-cloudrun.git", t.TempDir(), "5h30m")
	o.now = func() time.Time {
		return time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	}
	return o
}

func TestDeployPipelineOrder(t *testing.T) {
	runner := newFakeRunner()
	o := newTestOrchestrator(t, runner)

	result, err := o.Deploy(testConfiguration())
	require.NoError(t, err)

	// Steps run in contract order: project check, API enable, clone, build,
	// deploy, describe.
	require.Len(t, runner.calls, 6)
	assert.Contains(t, runner.calls[0], "gcloud config get-value project")
	assert.Contains(t, runner.calls[1], "gcloud services enable run.googleapis.com cloudbuild.googleapis.com")
	assert.Contains(t, runner.calls[2], "git clone https://github.com/vlessops/vless-cloudrun.git")
	assert.Contains(t, runner.calls[3], "gcloud builds submit")
	assert.Contains(t, runner.calls[3], "--tag gcr.io/test-project/my-proxy")
	assert.Contains(t, runner.calls[4], "gcloud run deploy my-proxy")
	assert.Contains(t, runner.calls[4], "--region asia-southeast1")
	assert.Contains(t, runner.calls[4], "--cpu 2")
	assert.Contains(t, runner.calls[4], "--memory 2Gi")
	assert.Contains(t, runner.calls[5], "gcloud run services describe my-proxy")

	assert.Equal(t, "test-project", result.ProjectID)
	assert.Equal(t, "my-proxy", result.ServiceName)
	assert.Equal(t, "my-service-abc123-uc.a.run.app", result.Domain, "scheme is stripped")
	// 12:00 UTC + 5h30m lifetime, presented in UTC+6:30.
	assert.Equal(t, "Jan 2, 2024 12:00 AM", result.ExpiryLabel)
}

func TestDeployVlessLink(t *testing.T) {
	runner := newFakeRunner()
	o := newTestOrchestrator(t, runner)

	result, err := o.Deploy(testConfiguration())
	require.NoError(t, err)

	want := "vless://123e4567-e89b-12d3-a456-426614174000@m.example.com:443" +
		"?encryption=none&security=tls&sni=my-service-abc123-uc.a.run.app" +
		"&type=ws&host=my-service-abc123-uc.a.run.app&path=%2Fvless#my-proxy"
	assert.Equal(t, want, result.VlessLink)
}

func TestDeployShortCircuitsOnBuildFailure(t *testing.T) {
	runner := newFakeRunner()
	runner.failOn = "builds submit"
	o := newTestOrchestrator(t, runner)

	_, err := o.Deploy(testConfiguration())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "container build failed")

	for _, call := range runner.calls {
		assert.NotContains(t, call, "run deploy", "deploy must not run after a failed build")
	}
}

func TestDeployCloneFailureMentionsPublicRepo(t *testing.T) {
	runner := newFakeRunner()
	runner.failOn = "git clone"
	o := newTestOrchestrator(t, runner)

	_, err := o.Deploy(testConfiguration())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ensure the repository is public")
}

func TestCheckPrerequisitesMissingTool(t *testing.T) {
	runner := newFakeRunner()
	runner.missing = map[string]bool{"gcloud": true}
	o := newTestOrchestrator(t, runner)

	_, err := o.CheckPrerequisites()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gcloud")
	assert.Empty(t, runner.calls, "no external call before prerequisites pass")
}

func TestCheckPrerequisitesUnsetProject(t *testing.T) {
	runner := newFakeRunner()
	runner.outputs["gcloud config get-value project"] = "(unset)"
	o := newTestOrchestrator(t, runner)

	_, err := o.CheckPrerequisites()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no active gcloud project")
}

func TestDeployEmptyServiceURL(t *testing.T) {
	runner := newFakeRunner()
	runner.outputs["gcloud run services describe"] = ""
	o := newTestOrchestrator(t, runner)

	_, err := o.Deploy(testConfiguration())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty URL")
}
