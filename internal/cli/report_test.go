// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torarvid/nova/internal/awsauth"
)

func TestReportCredentialErrorTerseByDefault(t *testing.T) {
	var stderr bytes.Buffer
	reporter := &Reporter{Stderr: &stderr}

	reporter.Report(&awsauth.CredentialError{Err: errors.New("ExpiredToken: long diagnostic")})

	assert.Contains(t, stderr.String(), "profile or the required environment variables")
	assert.NotContains(t, stderr.String(), "ExpiredToken")
}

func TestReportCredentialErrorFullWhenDebugging(t *testing.T) {
	var stderr bytes.Buffer
	reporter := &Reporter{Debug: true, Stderr: &stderr}

	reporter.Report(&awsauth.CredentialError{Err: errors.New("ExpiredToken: long diagnostic")})

	assert.Contains(t, stderr.String(), "ExpiredToken: long diagnostic")
}

func TestReportConstructionErrorShowsCommandUsage(t *testing.T) {
	var stderr bytes.Buffer
	reporter := &Reporter{Stderr: &stderr}

	reporter.Report(&ConstructionError{
		Command: "deploy",
		Usage:   "Usage: nova [program options] deploy [options]\n",
		Err:     errors.New("parameter prefix cannot be empty"),
	})

	assert.Contains(t, stderr.String(), "deploy: parameter prefix cannot be empty")
	assert.Contains(t, stderr.String(), "Usage: nova [program options] deploy")
}

func TestReportExecutionErrorShowsCommandUsage(t *testing.T) {
	var stderr bytes.Buffer
	reporter := &Reporter{Stderr: &stderr}

	reporter.Report(&ExecutionError{
		Command: "deploy",
		Usage:   "Usage: nova [program options] deploy [options]\n",
		Err:     errors.New("put failed"),
	})

	assert.Contains(t, stderr.String(), "deploy: put failed")
	assert.Contains(t, stderr.String(), "Usage: nova [program options] deploy")
}

func TestReportJSONEnvelope(t *testing.T) {
	var stderr bytes.Buffer
	reporter := &Reporter{JSON: true, Stderr: &stderr}

	reporter.Report(&ExecutionError{Command: "deploy", Err: errors.New("put failed")})

	var envelope map[string]map[string]string
	require.NoError(t, json.Unmarshal(stderr.Bytes(), &envelope))
	assert.Equal(t, "deploy: put failed", envelope["error"]["message"])
}

func TestReportPlainError(t *testing.T) {
	var stderr bytes.Buffer
	reporter := &Reporter{Stderr: &stderr}

	reporter.Report(errors.New("something else"))

	assert.Equal(t, "Error: something else\n", stderr.String())
}
