/*
Package datastore defines the gateway contract between the HTTP layer and the
remote key-value store.

	type Scanner interface {
	    ScanTable(ctx context.Context, tableName string) (*storagemodels.ScanResult, error)
	}

Implementations:
  - ddb: DynamoDB implementation backed by aws-sdk-go-v2
  - mock: In-memory mock implementation for testing
*/
package datastore
