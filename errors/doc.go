/*
Package errors provides semantic error types for the DynamoDB gateway.

The package defines the error kinds the gateway distinguishes. They can be
checked using the standard errors.Is() function or the provided helpers.

Common Errors:

	var (
	    ErrScanFailed   = errors.New("scan failed")
	    ErrInvalidInput = errors.New("invalid input")
	)

Usage:

	result, err := scanner.ScanTable(ctx, "my-table")
	if err != nil {
	    if errors.IsScanFailed(err) {
	        // remote call failed, the cause is available through errors.Unwrap
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewScanFailedError("my-table", cause)
	err := errors.NewValidationError("port", "must be between 1 and 65535")

ScanFailedError does not distinguish throttling from access denial
or a missing table.
*/
package errors
