/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/ddbgateway/storagemodels"
)

// Scanner reads every item of a table in a single round trip.
type Scanner interface {
	// ScanTable returns the first page of a full-table scan. Any remote
	// failure is reported as an error matching errors.ErrScanFailed.
	ScanTable(ctx context.Context, tableName string) (*storagemodels.ScanResult, error)
}
