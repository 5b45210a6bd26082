package deploy

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/vlessops/vlessctl/pkg/printer"
)

// Runner abstracts external tool invocation so the orchestration pipeline can
// be tested without real gcloud/git access.
type Runner interface {
	// LookPath reports whether the named tool is on PATH.
	LookPath(name string) error
	// Run executes a command, streaming its output to the console.
	Run(name string, args ...string) error
	// Output executes a command and returns its trimmed stdout.
	Output(name string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	Verbose bool
}

// NewExecRunner returns a configured command runner.
func NewExecRunner(verbose bool) *ExecRunner {
	return &ExecRunner{Verbose: verbose}
}

func (r *ExecRunner) LookPath(name string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s command not found in PATH", name)
	}
	return nil
}

func (r *ExecRunner) Run(name string, args ...string) error {
	if r.Verbose {
		printer.PrintInfo(fmt.Sprintf("Running: %s %s", name, strings.Join(args, " ")))
	}
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (r *ExecRunner) Output(name string, args ...string) (string, error) {
	if r.Verbose {
		printer.PrintInfo(fmt.Sprintf("Running: %s %s", name, strings.Join(args, " ")))
	}
	cmd := exec.Command(name, args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return strings.TrimSpace(string(out)), nil
}
