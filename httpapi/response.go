/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package httpapi

import (
	"github.com/suparena/ddbgateway/storagemodels"
)

// ScanFailedMessage is the only failure detail ever returned to clients.
const ScanFailedMessage = "Failed to fetch data from DynamoDB"

// Response is the JSON envelope of every handler outcome. Data is set only
// on success and Error only on failure.
type Response struct {
	Success bool                      `json:"success"`
	Data    *storagemodels.ScanResult `json:"data,omitempty"`
	Error   string                    `json:"error,omitempty"`
}

// Succeeded wraps a scan result.
func Succeeded(data *storagemodels.ScanResult) Response {
	return Response{Success: true, Data: data}
}

// Failed wraps a client-facing error message.
func Failed(message string) Response {
	return Response{Success: false, Error: message}
}
