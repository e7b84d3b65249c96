// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

// Package paramstore is a thin client for SSM Parameter Store, the target
// that nova publishes merged deployment configuration to.
package paramstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/smithy-go"

	"github.com/torarvid/nova/internal/awsauth"
)

// ErrNotFound is returned when a parameter does not exist.
var ErrNotFound = errors.New("parameter not found")

// API defines the interface for the SSM operations nova uses
type API interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
	PutParameter(ctx context.Context, params *ssm.PutParameterInput, optFns ...func(*ssm.Options)) (*ssm.PutParameterOutput, error)
	DeleteParameter(ctx context.Context, params *ssm.DeleteParameterInput, optFns ...func(*ssm.Options)) (*ssm.DeleteParameterOutput, error)
}

// Client wraps the SSM API for one region.
type Client struct {
	SSM API
}

// NewClientFunc is the type for the client creation function
type NewClientFunc func(cctx *awsauth.Context, region string) (*Client, error)

// DefaultNewClient builds a client from the bootstrap credential context.
// The region falls back to the context's own region when none is given.
var DefaultNewClient NewClientFunc = func(cctx *awsauth.Context, region string) (*Client, error) {
	if region == "" {
		region = cctx.Config.Region
	}
	if region == "" {
		return nil, fmt.Errorf("region is required")
	}

	return &Client{
		SSM: ssm.NewFromConfig(cctx.Config, func(o *ssm.Options) {
			o.Region = region
		}),
	}, nil
}

// NewClient is the function used to create Parameter Store clients. Tests
// override it to inject mocks.
var NewClient = DefaultNewClient

// Get retrieves a parameter value, decrypting SecureString values.
func (c *Client) Get(ctx context.Context, name string) (string, error) {
	withDecryption := true
	output, err := c.SSM.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           &name,
		WithDecryption: &withDecryption,
	})
	if err != nil {
		var pnf *ssmtypes.ParameterNotFound
		if errors.As(err, &pnf) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", fmt.Errorf("failed to get parameter %s: %w", name, err)
	}

	if output.Parameter == nil || output.Parameter.Value == nil {
		return "", fmt.Errorf("parameter %s has no value", name)
	}
	return *output.Parameter.Value, nil
}

// Put writes a parameter. Secure selects the SecureString type, optionally
// encrypted with the given KMS key.
func (c *Client) Put(ctx context.Context, name, value, description string, secure bool, kmsKeyID string, overwrite bool) error {
	paramType := ssmtypes.ParameterTypeString
	if secure {
		paramType = ssmtypes.ParameterTypeSecureString
	}

	input := &ssm.PutParameterInput{
		Name:      &name,
		Value:     &value,
		Type:      paramType,
		Overwrite: &overwrite,
	}
	if description != "" {
		input.Description = &description
	}
	if kmsKeyID != "" {
		input.KeyId = &kmsKeyID
	}

	if _, err := c.SSM.PutParameter(ctx, input); err != nil {
		var exists *ssmtypes.ParameterAlreadyExists
		if errors.As(err, &exists) {
			return fmt.Errorf("parameter %s already exists, use --overwrite to replace it", name)
		}
		return fmt.Errorf("failed to put parameter %s: %w", name, err)
	}
	return nil
}

// Delete removes a parameter.
func (c *Client) Delete(ctx context.Context, name string) error {
	_, err := c.SSM.DeleteParameter(ctx, &ssm.DeleteParameterInput{Name: &name})
	if err != nil {
		var pnf *ssmtypes.ParameterNotFound
		if errors.As(err, &pnf) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		var ae smithy.APIError
		if errors.As(err, &ae) && ae.ErrorCode() == "AccessDeniedException" {
			return fmt.Errorf("insufficient permissions to delete parameter %s", name)
		}
		return fmt.Errorf("failed to delete parameter %s: %w", name, err)
	}
	return nil
}
