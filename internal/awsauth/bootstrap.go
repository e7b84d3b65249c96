// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

// Package awsauth acquires the AWS credential context that command units
// use to reach external services.
//
// Credentials come from a named shared-config profile when one is given,
// otherwise from the standard environment-variable chain. The resolved
// context is an explicit value passed into each command; nothing in this
// package installs process-wide state.
package awsauth

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// CredentialError wraps a credential acquisition failure behind one
// actionable message. The underlying cause stays reachable through Unwrap
// for debug output.
type CredentialError struct {
	Err error
}

func (e *CredentialError) Error() string {
	return "unable to resolve AWS credentials, make sure you provide a profile or the required environment variables"
}

func (e *CredentialError) Unwrap() error { return e.Err }

// Options controls how the credential context is acquired.
type Options struct {
	// Profile is the shared-config profile to use. Empty means the
	// environment-variable chain.
	Profile string
	// Role is an optional IAM role ARN to assume on top of the base
	// credentials.
	Role string
}

// Context is the resolved credential context. It is write-once: built here
// during bootstrap and read-only for the rest of the process.
type Context struct {
	Config aws.Config

	// Caller identity, resolved during bootstrap.
	Account string
	ARN     string
	UserID  string
}

// STSAPI is the subset of the STS client used during bootstrap: identity
// lookup and role assumption.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
	AssumeRole(ctx context.Context, params *sts.AssumeRoleInput, optFns ...func(*sts.Options)) (*sts.AssumeRoleOutput, error)
}

// NewSTSClientFunc is the type for the STS client constructor.
type NewSTSClientFunc func(aws.Config) STSAPI

// DefaultNewSTSClient is the default implementation of NewSTSClientFunc.
var DefaultNewSTSClient NewSTSClientFunc = func(cfg aws.Config) STSAPI {
	return sts.NewFromConfig(cfg)
}

// NewSTSClient is the function used to create the STS client. Tests
// override it to avoid network calls.
var NewSTSClient = DefaultNewSTSClient

// Bootstrap resolves the credential context. It loads the credential chain,
// optionally wraps it in an assume-role provider, forces one refresh so a
// bad chain fails here rather than inside a command, and records the caller
// identity. Every failure is reported as a CredentialError.
func Bootstrap(ctx context.Context, opts Options) (*Context, error) {
	var loadOpts []func(*config.LoadOptions) error
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, &CredentialError{Err: err}
	}

	if opts.Role != "" {
		provider := stscreds.NewAssumeRoleProvider(NewSTSClient(cfg), opts.Role)
		cfg.Credentials = aws.NewCredentialsCache(provider)
	}

	if cfg.Credentials == nil {
		return nil, &CredentialError{Err: errors.New("no credential provider in chain")}
	}
	if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
		return nil, &CredentialError{Err: err}
	}

	identity, err := NewSTSClient(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, &CredentialError{Err: err}
	}

	cctx := &Context{Config: cfg}
	if identity.Account != nil {
		cctx.Account = *identity.Account
	}
	if identity.Arn != nil {
		cctx.ARN = *identity.Arn
	}
	if identity.UserId != nil {
		cctx.UserID = *identity.UserId
	}
	return cctx, nil
}
