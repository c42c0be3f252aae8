/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDynamoDBClientStaticCredentials(t *testing.T) {
	ctx := context.Background()
	client, err := NewDynamoDBClient(ctx, ClientConfig{
		Region:       "ap-south-1",
		AccessKey:    "ASIATEMPKEY",
		SecretKey:    "temp-secret",
		SessionToken: "session-token-value",
	})
	require.NoError(t, err)

	opts := client.Options()
	assert.Equal(t, "ap-south-1", opts.Region)
	require.NotNil(t, opts.Credentials)

	creds, err := opts.Credentials.Retrieve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ASIATEMPKEY", creds.AccessKeyID)
	assert.Equal(t, "temp-secret", creds.SecretAccessKey)
	assert.Equal(t, "session-token-value", creds.SessionToken, "temporary credentials need their session token")
}

func TestNewDynamoDBClientLongTermCredentials(t *testing.T) {
	ctx := context.Background()
	client, err := NewDynamoDBClient(ctx, ClientConfig{
		Region:    "eu-west-1",
		AccessKey: "AKIDEXAMPLE",
		SecretKey: "secret",
	})
	require.NoError(t, err)

	creds, err := client.Options().Credentials.Retrieve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "AKIDEXAMPLE", creds.AccessKeyID)
	assert.Empty(t, creds.SessionToken)
}

func TestNewDynamoDBClientEndpointOverride(t *testing.T) {
	client, err := NewDynamoDBClient(context.Background(), ClientConfig{
		Region:    "ap-south-1",
		AccessKey: "local",
		SecretKey: "local",
		Endpoint:  "http://localhost:8000",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", aws.ToString(client.Options().BaseEndpoint))
}
