/*
Package config loads the gateway's startup configuration.

Sources are applied in order, each overriding the previous one:

	defaults -> YAML file -> .env file -> environment -> command-line flags

Load handles the first four; the command applies flag overrides before calling
Validate. The resulting Config is passed by pointer into constructors and is
never mutated once the server is running.

Example YAML:

	port: 8080
	region: ap-south-1
	table_name: my-table
	scan_limit: 0
	log_level: info
	log_format: json
*/
package config
