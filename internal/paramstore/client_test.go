// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

package paramstore

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torarvid/nova/internal/awsauth"
)

func TestDefaultNewClientRequiresRegion(t *testing.T) {
	cctx := &awsauth.Context{Config: aws.Config{}}
	_, err := DefaultNewClient(cctx, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "region is required")
}

func TestDefaultNewClientFallsBackToContextRegion(t *testing.T) {
	cctx := &awsauth.Context{Config: aws.Config{Region: "eu-central-1"}}
	client, err := DefaultNewClient(cctx, "")
	require.NoError(t, err)
	assert.NotNil(t, client.SSM)
}

func TestGet(t *testing.T) {
	tests := []struct {
		name     string
		mock     *MockSSMClient
		want     string
		wantErr  bool
		notFound bool
	}{
		{
			name: "value returned",
			mock: &MockSSMClient{
				GetParamFunc: func(ctx context.Context, input *ssm.GetParameterInput, opts ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
					assert.Equal(t, "/nova/api/db/host", *input.Name)
					return &ssm.GetParameterOutput{
						Parameter: &ssmtypes.Parameter{Value: aws.String("db.internal")},
					}, nil
				},
			},
			want: "db.internal",
		},
		{
			name: "missing parameter",
			mock: &MockSSMClient{
				GetParamFunc: func(ctx context.Context, input *ssm.GetParameterInput, opts ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
					return nil, &ssmtypes.ParameterNotFound{}
				},
			},
			wantErr:  true,
			notFound: true,
		},
		{
			name: "nil value",
			mock: &MockSSMClient{
				GetParamFunc: func(ctx context.Context, input *ssm.GetParameterInput, opts ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
					return &ssm.GetParameterOutput{}, nil
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &Client{SSM: tt.mock}
			got, err := client.Get(context.Background(), "/nova/api/db/host")
			if tt.wantErr {
				require.Error(t, err)
				if tt.notFound {
					assert.ErrorIs(t, err, ErrNotFound)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPutSecureString(t *testing.T) {
	var got *ssm.PutParameterInput
	client := &Client{SSM: &MockSSMClient{
		PutParamFunc: func(ctx context.Context, input *ssm.PutParameterInput, opts ...func(*ssm.Options)) (*ssm.PutParameterOutput, error) {
			got = input
			return &ssm.PutParameterOutput{}, nil
		},
	}}

	err := client.Put(context.Background(), "/nova/api/db/password", "hunter2",
		"managed by nova", true, "alias/nova", true)
	require.NoError(t, err)

	assert.Equal(t, ssmtypes.ParameterTypeSecureString, got.Type)
	assert.Equal(t, "alias/nova", *got.KeyId)
	assert.Equal(t, "managed by nova", *got.Description)
	assert.True(t, *got.Overwrite)
}

func TestPutExistingWithoutOverwrite(t *testing.T) {
	client := &Client{SSM: &MockSSMClient{
		PutParamFunc: func(ctx context.Context, input *ssm.PutParameterInput, opts ...func(*ssm.Options)) (*ssm.PutParameterOutput, error) {
			return nil, &ssmtypes.ParameterAlreadyExists{}
		},
	}}

	err := client.Put(context.Background(), "/nova/api/stage", "prod", "", false, "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--overwrite")
}

func TestDeleteMissingParameter(t *testing.T) {
	client := &Client{SSM: &MockSSMClient{
		DeleteParamFunc: func(ctx context.Context, input *ssm.DeleteParameterInput, opts ...func(*ssm.Options)) (*ssm.DeleteParameterOutput, error) {
			return nil, &ssmtypes.ParameterNotFound{}
		},
	}}

	err := client.Delete(context.Background(), "/nova/api/stage")
	assert.ErrorIs(t, err, ErrNotFound)
}
