/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

// Record is a single item decoded from DynamoDB attribute values into plain
// JSON-compatible values. Its shape is owned by whoever wrote the table.
type Record = map[string]any

// ScanResult mirrors the output of a document-client scan: the items in store
// order plus the metadata DynamoDB returned alongside them.
type ScanResult struct {
	// Items holds the decoded records, in the order the store returned them.
	Items []Record `json:"Items"`
	// Count is the number of items after any filter was applied.
	Count int32 `json:"Count"`
	// ScannedCount is the number of items evaluated before filtering.
	ScannedCount int32 `json:"ScannedCount"`
	// LastEvaluatedKey is set when the store truncated the scan.
	LastEvaluatedKey Record `json:"LastEvaluatedKey,omitempty"`
}

// Truncated reports whether the store stopped before reaching the end of the table.
func (r *ScanResult) Truncated() bool {
	return len(r.LastEvaluatedKey) > 0
}

// ScanParams defines parameters for a DynamoDB Scan operation.
type ScanParams struct {
	// TableName is the DynamoDB table name.
	TableName string
	// Limit defines an optional limit per scan page.
	Limit *int32
	// ConsistentRead requests a strongly consistent scan.
	ConsistentRead *bool
}
