/*
Package storagemodels defines the data structures shared by the gateway layers.

Key Types:

ScanResult:
The decoded output of a single DynamoDB Scan call. It serializes with the same
field names a document client uses, so callers see:

	{
	    "Items": [{"id": "1", "name": "first"}],
	    "Count": 1,
	    "ScannedCount": 1
	}

LastEvaluatedKey is only present when DynamoDB truncated the page.

ScanParams:
Parameters for building a Scan request:

	params := &ScanParams{
	    TableName: "my-table",
	    Limit:     aws.Int32(100),
	}
*/
package storagemodels
