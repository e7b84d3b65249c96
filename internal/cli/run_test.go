// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torarvid/nova/internal/awsauth"
)

// stubCredentials makes credential acquisition succeed without AWS.
func stubCredentials(t *testing.T) {
	t.Helper()
	orig := acquireCredentials
	t.Cleanup(func() { acquireCredentials = orig })
	acquireCredentials = func(ctx context.Context, opts awsauth.Options) (*awsauth.Context, error) {
		return &awsauth.Context{
			Account: "123456789012",
			ARN:     "arn:aws:iam::123456789012:user/deployer",
			UserID:  "AIDAEXAMPLE",
		}, nil
	}
}

func writeParams(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunUnknownCommandExitsZeroWithUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"launch", "--stack", "x"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), `unknown command "launch"`)
	assert.NotContains(t, stderr.String(), "unknown flag")
	assert.Contains(t, stderr.String(), "Usage: nova [program options] <command>")
}

func TestRunFlagsBeforeUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"--verbose", "launch", "--stack", "x"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), `unknown command "launch"`)
}

func TestRunNoArgumentsShowsUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(nil, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "Commands:")
	assert.Contains(t, stderr.String(), "deploy")
}

func TestRunInvalidOutputFormatExitsZeroWithUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"--output", "xml", "render"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), `invalid output format "xml"`)
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"--version"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "nova version")
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"--help"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "Program options:")
}

func TestRunBadProgramFlagExitsZeroWithUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"--no-such-option", "render"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "Usage: nova")
}

func TestRunRenderEndToEnd(t *testing.T) {
	stubCredentials(t)
	base := writeParams(t, "base.yaml", "stage: dev\ndb:\n  port: 5432\n")
	override := writeParams(t, "prod.yaml", "stage: prod\n")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"--params", base, "--params", override, "render"}, &stdout, &stderr)

	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "stage: prod")
	assert.Contains(t, stdout.String(), "port: 5432")
}

func TestRunWhoamiJSON(t *testing.T) {
	stubCredentials(t)

	var stdout, stderr bytes.Buffer
	code := Run([]string{"--output", "json", "whoami"}, &stdout, &stderr)

	require.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), `"account": "123456789012"`)
}

func TestRunCredentialFailureExitsOneWithoutConstructingCommand(t *testing.T) {
	orig := acquireCredentials
	t.Cleanup(func() { acquireCredentials = orig })
	acquireCredentials = func(ctx context.Context, opts awsauth.Options) (*awsauth.Context, error) {
		return nil, &awsauth.CredentialError{Err: errors.New("refresh failed")}
	}

	base := writeParams(t, "base.yaml", "stage: prod\n")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"--params", base, "render"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String(), "no command output may be produced")
	assert.Contains(t, stderr.String(), "profile or the required environment variables")
}

func TestRunMissingParamsFileExitsOne(t *testing.T) {
	stubCredentials(t)

	var stdout, stderr bytes.Buffer
	code := Run([]string{"--params", "/does/not/exist.yaml", "render"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "/does/not/exist.yaml")
}

func TestRunCommandConstructionFailureExitsOne(t *testing.T) {
	stubCredentials(t)

	// deploy without --prefix fails during construction and shows the
	// command usage, not the program usage.
	var stdout, stderr bytes.Buffer
	code := Run([]string{"deploy"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "parameter prefix cannot be empty")
	assert.Contains(t, stderr.String(), "Usage: nova [program options] deploy")
}

func TestRunCommandHelpExitsZero(t *testing.T) {
	stubCredentials(t)

	var stdout, stderr bytes.Buffer
	code := Run([]string{"deploy", "--help"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "--prefix")
}

func TestRunProfileAndRoleReachBootstrap(t *testing.T) {
	var gotOpts awsauth.Options
	orig := acquireCredentials
	t.Cleanup(func() { acquireCredentials = orig })
	acquireCredentials = func(ctx context.Context, opts awsauth.Options) (*awsauth.Context, error) {
		gotOpts = opts
		return &awsauth.Context{}, nil
	}

	var stdout, stderr bytes.Buffer
	code := Run([]string{
		"--profile", "ci",
		"--role", "arn:aws:iam::123456789012:role/deployer",
		"whoami",
	}, &stdout, &stderr)

	require.Equal(t, 0, code)
	assert.Equal(t, "ci", gotOpts.Profile)
	assert.Equal(t, "arn:aws:iam::123456789012:role/deployer", gotOpts.Role)
}

func TestRunInvalidRoleIsUsageError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"--role", "not-an-arn", "whoami"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "invalid role ARN format")
}
