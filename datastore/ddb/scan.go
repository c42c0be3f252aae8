/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"

	"github.com/suparena/ddbgateway/datastore"
	"github.com/suparena/ddbgateway/errors"
	"github.com/suparena/ddbgateway/storagemodels"
)

// ScanGateway implements datastore.Scanner on top of DynamoDB's Scan API.
// Each call issues exactly one Scan request: no retries and no pagination.
type ScanGateway struct {
	client         ScanAPI
	limit          int32
	consistentRead bool
	logger         logrus.FieldLogger
}

var _ datastore.Scanner = (*ScanGateway)(nil)

// Option configures a ScanGateway.
type Option func(*ScanGateway)

// WithScanLimit caps the number of items evaluated by a single Scan call.
// Zero leaves the limit to DynamoDB's 1 MB page size.
func WithScanLimit(limit int32) Option {
	return func(g *ScanGateway) {
		g.limit = limit
	}
}

// WithConsistentRead requests strongly consistent scans.
func WithConsistentRead(consistent bool) Option {
	return func(g *ScanGateway) {
		g.consistentRead = consistent
	}
}

// WithLogger sets the logger used for per-scan debug entries.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(g *ScanGateway) {
		g.logger = logger
	}
}

// NewScanGateway constructs a ScanGateway around the given client.
func NewScanGateway(client ScanAPI, opts ...Option) *ScanGateway {
	g := &ScanGateway{
		client: client,
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ScanTable scans tableName once and decodes the returned page.
func (g *ScanGateway) ScanTable(ctx context.Context, tableName string) (*storagemodels.ScanResult, error) {
	if tableName == "" {
		return nil, errors.NewValidationError("tableName", "must not be empty")
	}

	params := g.scanParams(tableName)
	input := &sdk.ScanInput{
		TableName:      aws.String(params.TableName),
		Limit:          params.Limit,
		ConsistentRead: params.ConsistentRead,
	}

	start := time.Now()
	out, err := g.client.Scan(ctx, input)
	if err != nil {
		return nil, errors.NewScanFailedError(tableName, err)
	}

	result, err := decodeScanOutput(out)
	if err != nil {
		return nil, errors.NewScanFailedError(tableName, err)
	}

	g.logger.WithFields(logrus.Fields{
		"table":        tableName,
		"count":        result.Count,
		"scannedCount": result.ScannedCount,
		"truncated":    result.Truncated(),
		"duration":     time.Since(start),
	}).Debug("scan completed")

	return result, nil
}

func (g *ScanGateway) scanParams(tableName string) *storagemodels.ScanParams {
	params := &storagemodels.ScanParams{TableName: tableName}
	if g.limit > 0 {
		params.Limit = aws.Int32(g.limit)
	}
	if g.consistentRead {
		params.ConsistentRead = aws.Bool(true)
	}
	return params
}

// decodeScanOutput converts raw attribute values into plain records, keeping
// the store's item order and passing the page metadata through.
func decodeScanOutput(out *sdk.ScanOutput) (*storagemodels.ScanResult, error) {
	if out == nil {
		return nil, fmt.Errorf("empty scan output")
	}

	items := make([]storagemodels.Record, 0, len(out.Items))
	for i, raw := range out.Items {
		record, err := decodeRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal item %d: %w", i, err)
		}
		items = append(items, record)
	}

	result := &storagemodels.ScanResult{
		Items:        items,
		Count:        out.Count,
		ScannedCount: out.ScannedCount,
	}

	if len(out.LastEvaluatedKey) > 0 {
		key, err := decodeRecord(out.LastEvaluatedKey)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal LastEvaluatedKey: %w", err)
		}
		result.LastEvaluatedKey = key
	}

	return result, nil
}

func decodeRecord(raw map[string]types.AttributeValue) (storagemodels.Record, error) {
	record := storagemodels.Record{}
	if err := attributevalue.UnmarshalMap(raw, &record); err != nil {
		return nil, err
	}
	return record, nil
}
