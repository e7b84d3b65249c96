// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

package awsauth

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// MockSTSClient implements STSAPI for testing
type MockSTSClient struct {
	GetCallerIdentityFunc func(context.Context, *sts.GetCallerIdentityInput, ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
	AssumeRoleFunc        func(context.Context, *sts.AssumeRoleInput, ...func(*sts.Options)) (*sts.AssumeRoleOutput, error)
}

func (m *MockSTSClient) GetCallerIdentity(ctx context.Context, input *sts.GetCallerIdentityInput, opts ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	if m.GetCallerIdentityFunc != nil {
		return m.GetCallerIdentityFunc(ctx, input, opts...)
	}
	return nil, fmt.Errorf("GetCallerIdentity not implemented")
}

func (m *MockSTSClient) AssumeRole(ctx context.Context, input *sts.AssumeRoleInput, opts ...func(*sts.Options)) (*sts.AssumeRoleOutput, error) {
	if m.AssumeRoleFunc != nil {
		return m.AssumeRoleFunc(ctx, input, opts...)
	}
	return nil, fmt.Errorf("AssumeRole not implemented")
}
