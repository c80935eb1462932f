// Package taskwarrior drives the Taskwarrior command line client.
package taskwarrior

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/core/ports"
	"go.trai.ch/zerr"
)

// Client implements ports.TaskManager by running the task binary.
type Client struct {
	binary string
	logger ports.Logger
}

// NewClient creates a Client that runs binary, resolved through PATH when it is not a path.
func NewClient(binary string, logger ports.Logger) *Client {
	return &Client{binary: binary, logger: logger}
}

// Export runs `task <filters...> export` and decodes the JSON array it prints.
func (c *Client) Export(ctx context.Context, filters []string) ([]domain.PendingTask, error) {
	args := append(slices.Clone(filters), "export")

	out, err := c.run(ctx, args...)
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.PendingTask, 0)
	if strings.TrimSpace(out) == "" {
		return tasks, nil
	}
	if err := json.Unmarshal([]byte(out), &tasks); err != nil {
		err = zerr.Wrap(err, domain.ErrTaskExportParseFailed.Error())
		return nil, zerr.With(err, "filters", strings.Join(filters, " "))
	}

	return tasks, nil
}

// Complete runs `task <id> done` and returns its standard output verbatim.
func (c *Client) Complete(ctx context.Context, id int) (string, error) {
	return c.run(ctx, strconv.Itoa(id), "done")
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary, args...) //nolint:gosec // binary comes from user settings

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		wrapped := zerr.Wrap(err, domain.ErrTaskManagerFailed.Error())
		wrapped = zerr.With(wrapped, "command", c.binary+" "+strings.Join(args, " "))
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		return "", zerr.With(wrapped, "stderr", strings.TrimSpace(stderr.String()))
	}

	for _, line := range strings.Split(strings.TrimSpace(stderr.String()), "\n") {
		if line = strings.TrimSuffix(line, "\r"); line != "" {
			c.logger.Warn(line)
		}
	}

	return stdout.String(), nil
}
