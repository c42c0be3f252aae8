/*
Package ddbgateway is a thin HTTP gateway in front of a single DynamoDB table.

It serves one route, GET /testdb, which scans the configured table once and
returns the page as JSON:

	{"success": true, "data": {"Items": [...], "Count": 3, "ScannedCount": 3}}

Any failure of the remote call is logged in full and reported to the client as

	{"success": false, "error": "Failed to fetch data from DynamoDB"}

with status 500. Every response allows any origin.

Packages:
  - config: startup configuration (YAML, .env, environment, flags)
  - datastore: the Scanner contract; ddb implements it on DynamoDB, mock in memory
  - httpapi: gin router, middleware and response envelope
  - errors: semantic error kinds

Basic Usage:

	cfg, _ := config.Load(config.LoadOptions{EnvFile: ".env"})
	logger := config.NewLogger(cfg, nil)
	srv, _ := ddbgateway.NewDynamoDBServer(ctx, cfg, logger)
	err := srv.ListenAndServe(ctx)

Scans are not paginated: if DynamoDB truncates the result, only the first page
is returned and data.LastEvaluatedKey tells the caller so.
*/
package ddbgateway
