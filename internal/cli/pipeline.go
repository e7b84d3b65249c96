// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

package cli

import (
	"context"

	"github.com/torarvid/nova/internal/awsauth"
	"github.com/torarvid/nova/internal/params"
)

// Pipeline branch names, recorded on PipelineError for failure attribution.
const (
	BranchParams      = "params"
	BranchCredentials = "credentials"
)

// PipelineError wraps a bootstrap branch failure and names the branch it
// came from.
type PipelineError struct {
	Branch string
	Err    error
}

func (e *PipelineError) Error() string { return e.Err.Error() }

func (e *PipelineError) Unwrap() error { return e.Err }

// bootstrapResult is the join of the two bootstrap preconditions.
type bootstrapResult struct {
	Params map[string]any
	Creds  *awsauth.Context
}

// loadParams and acquireCredentials are the two pipeline branches, held in
// vars so tests can substitute them.
var (
	loadParams         = params.Load
	acquireCredentials = awsauth.Bootstrap
)

// bootstrap runs the parameter load and the credential acquisition as
// independently progressing operations and joins them at one point. This is
// a join, not a race: both must succeed before any command runs. When a
// branch fails, the pipeline fails with that branch's error and the other
// branch's outcome is discarded; when both fail, the credential error wins.
func bootstrap(ctx context.Context, sourcePaths []string, authOpts awsauth.Options) (*bootstrapResult, error) {
	type paramsOutcome struct {
		tree map[string]any
		err  error
	}
	type credsOutcome struct {
		cctx *awsauth.Context
		err  error
	}

	paramsCh := make(chan paramsOutcome, 1)
	credsCh := make(chan credsOutcome, 1)

	go func() {
		tree, err := loadParams(ctx, sourcePaths)
		paramsCh <- paramsOutcome{tree: tree, err: err}
	}()
	go func() {
		cctx, err := acquireCredentials(ctx, authOpts)
		credsCh <- credsOutcome{cctx: cctx, err: err}
	}()

	paramsOut := <-paramsCh
	credsOut := <-credsCh

	if credsOut.err != nil {
		return nil, &PipelineError{Branch: BranchCredentials, Err: credsOut.err}
	}
	if paramsOut.err != nil {
		return nil, &PipelineError{Branch: BranchParams, Err: paramsOut.err}
	}

	return &bootstrapResult{Params: paramsOut.tree, Creds: credsOut.cctx}, nil
}
