/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ClientConfig carries what is needed to build a DynamoDB client.
type ClientConfig struct {
	Region string
	// AccessKey and SecretKey select static credentials when both are set.
	// Otherwise the SDK's default credential chain is used.
	AccessKey string
	SecretKey string
	// SessionToken accompanies temporary credentials (assume-role, SSO).
	SessionToken string
	// Endpoint overrides the service endpoint, e.g. http://localhost:8000 for DynamoDB Local.
	Endpoint string
}

// ScanAPI is the subset of the DynamoDB client used by the gateway.
// *dynamodb.Client satisfies it.
type ScanAPI interface {
	Scan(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error)
}

var _ ScanAPI = (*sdk.Client)(nil)

// NewDynamoDBClient initializes a DynamoDB client for the configured region.
func NewDynamoDBClient(ctx context.Context, cc ClientConfig) (*sdk.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cc.Region),
	}
	if cc.AccessKey != "" && cc.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cc.AccessKey, cc.SecretKey, cc.SessionToken),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	var clientOpts []func(*sdk.Options)
	if cc.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *sdk.Options) {
			o.BaseEndpoint = aws.String(cc.Endpoint)
		})
	}

	return sdk.NewFromConfig(cfg, clientOpts...), nil
}
