/*
Package ddb provides a DynamoDB implementation of the datastore.Scanner interface.

The ScanGateway issues a single Scan call per invocation and decodes the page
into plain records:

	client, err := ddb.NewDynamoDBClient(ctx, ddb.ClientConfig{Region: "ap-south-1"})
	if err != nil {
	    return err
	}
	gw := ddb.NewScanGateway(client, ddb.WithScanLimit(100))
	result, err := gw.ScanTable(ctx, "my-table")

There is no retry, backoff or pagination. When DynamoDB truncates the scan,
only the first page is returned and ScanResult.LastEvaluatedKey is populated.
Every remote failure surfaces as errors.ErrScanFailed.

ScanAPI narrows *dynamodb.Client to the one method the gateway calls, so tests
can substitute a fake client.
*/
package ddb
